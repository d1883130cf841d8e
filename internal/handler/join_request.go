package handler

import (
	"context"
	"errors"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/koffi-dev/gainpulse/internal/domain"
)

// handleJoinRequest records a self-reported task completion when a known
// user requests to join a task's channel. The join request itself is left
// for the channel admins; only the completion bookkeeping happens here.
func (h *Handler) handleJoinRequest(ctx context.Context, b *bot.Bot, update *models.Update) {
	jr := update.ChatJoinRequest

	if _, err := h.users.Get(ctx, jr.From.ID); err != nil {
		if !errors.Is(err, domain.ErrUserNotFound) {
			slog.Error("load user for join request", "error", err, "user_id", jr.From.ID)
		}
		return
	}

	if err := h.tasks.CompleteJoinRequest(ctx, jr.From.ID, jr.Chat.ID); err != nil {
		slog.Error("record join-request completion", "error", err,
			"user_id", jr.From.ID, "chat_id", jr.Chat.ID)
	}
}
