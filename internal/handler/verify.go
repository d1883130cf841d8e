package handler

import (
	"context"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/koffi-dev/gainpulse/internal/i18n"
)

// handleVerify re-runs the channel-membership check when the user presses
// the signup button.
func (h *Handler) handleVerify(ctx context.Context, b *bot.Bot, update *models.Update) {
	cb := update.CallbackQuery
	if cb == nil {
		return
	}
	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{CallbackQueryID: cb.ID})

	msg := cb.Message.Message
	if msg == nil {
		return
	}

	lang := i18n.Resolve(cb.From.LanguageCode)
	t := i18n.T(lang)

	if !h.membership.Verify(ctx, cb.From.ID) {
		b.SendMessage(ctx, &bot.SendMessageParams{ChatID: msg.Chat.ID, Text: t.Invalid})
		return
	}

	h.sendMainMenu(ctx, b, msg.Chat.ID, lang, t.Welcome)
}

// handleAddNumber prompts for the payout account number; the next text
// message from the user is stored as the answer.
func (h *Handler) handleAddNumber(ctx context.Context, b *bot.Bot, update *models.Update) {
	cb := update.CallbackQuery
	if cb == nil {
		return
	}
	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{CallbackQueryID: cb.ID})

	msg := cb.Message.Message
	if msg == nil {
		return
	}

	t := i18n.T(i18n.Resolve(cb.From.LanguageCode))

	if err := h.users.BeginAddingNumber(ctx, cb.From.ID); err != nil {
		slog.Error("begin adding number", "error", err, "user_id", cb.From.ID)
		return
	}

	b.SendMessage(ctx, &bot.SendMessageParams{ChatID: msg.Chat.ID, Text: t.GetNumber})
}
