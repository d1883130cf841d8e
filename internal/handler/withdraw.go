package handler

import (
	"context"
	"errors"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/koffi-dev/gainpulse/internal/domain"
	"github.com/koffi-dev/gainpulse/internal/i18n"
)

func (h *Handler) handleWithdrawStart(ctx context.Context, b *bot.Bot, chatID int64, t *i18n.Messages, user *domain.User) {
	err := h.withdraw.Initiate(ctx, user)
	switch {
	case errors.Is(err, domain.ErrBelowMinimum):
		b.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: t.BelowMinimum(user.Amount)})
	case errors.Is(err, domain.ErrNoAccountNumber):
		b.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: t.NeedNumber})
	case err != nil:
		slog.Error("initiate withdrawal", "error", err, "user_id", user.TelegramID)
	default:
		b.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: t.WithdrawAsk})
	}
}

// handleWithdrawConfirm settles the amount the user typed while in the
// withdrawing state. Rejections keep that state so the user can retry with
// another amount.
func (h *Handler) handleWithdrawConfirm(ctx context.Context, b *bot.Bot, chatID int64, t *i18n.Messages, user *domain.User, sum int64) {
	err := h.withdraw.Confirm(ctx, user, sum)
	switch {
	case errors.Is(err, domain.ErrInsufficientBalance):
		b.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: t.Insufficient(user.Amount)})
	case errors.Is(err, domain.ErrBelowMinimum):
		b.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: t.MinimumText})
	case errors.Is(err, domain.ErrNotEnoughInvites):
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:    chatID,
			Text:      t.MinUsers(user.FirstName, user.InvitedUsers),
			ParseMode: models.ParseModeHTML,
		})
	case err != nil:
		slog.Error("confirm withdrawal", "error", err, "user_id", user.TelegramID, "amount", sum)
	default:
		b.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: t.WithdrawOK})
	}
}
