package handler

import (
	"context"
	"log/slog"

	"github.com/go-telegram/bot"

	"github.com/koffi-dev/gainpulse/internal/domain"
	"github.com/koffi-dev/gainpulse/internal/i18n"
)

func (h *Handler) handleBonus(ctx context.Context, b *bot.Bot, chatID int64, lang i18n.Lang, user *domain.User) {
	t := i18n.T(lang)

	res, err := h.bonus.Claim(ctx, user)
	if err != nil {
		slog.Error("claim bonus", "error", err, "user_id", user.TelegramID)
		return
	}

	if res.Won {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   t.BonusWin,
		})
		return
	}

	h.sendMainMenu(ctx, b, chatID, lang, t.BonusWait(res.Hours, res.Minutes, res.Seconds))
}
