package handler

import (
	"context"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// handleChannel logs the origin chat id of a forwarded message. Debug aid
// for wiring task channels; no state change.
func (h *Handler) handleChannel(ctx context.Context, b *bot.Bot, update *models.Update) {
	msg := update.Message
	if msg == nil || msg.ReplyToMessage == nil || msg.ReplyToMessage.ForwardOrigin == nil {
		return
	}

	origin := msg.ReplyToMessage.ForwardOrigin
	if origin.Type == models.MessageOriginTypeChannel && origin.MessageOriginChannel != nil {
		slog.Info("forward origin", "chat_id", origin.MessageOriginChannel.Chat.ID)
	}
}
