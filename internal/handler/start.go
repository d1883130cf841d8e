package handler

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/koffi-dev/gainpulse/internal/i18n"
	tg "github.com/koffi-dev/gainpulse/internal/telegram"
)

func (h *Handler) handleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.From == nil || update.Message.Chat.Type != "private" {
		return
	}

	from := update.Message.From
	chatID := update.Message.Chat.ID
	lang := i18n.Resolve(from.LanguageCode)
	t := i18n.T(lang)

	// Deep link payload, e.g. "/start ref_123456789"
	payload := ""
	if parts := strings.SplitN(update.Message.Text, " ", 2); len(parts) > 1 {
		payload = parts[1]
	}

	_, created, inviterName, err := h.users.FindOrCreate(ctx, from.ID, from.FirstName, payload)
	if err != nil {
		slog.Error("find or create user", "error", err, "user_id", from.ID)
		return
	}

	if created && inviterName != "" {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   t.InvitedBy(inviterName),
		})
	}

	if !h.membership.Verify(ctx, from.ID) {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:    chatID,
			Text:      t.Start,
			ParseMode: models.ParseModeHTML,
			ReplyMarkup: tg.InlineKeyboard(
				tg.ButtonRow(tg.InlineButton(t.BtnVerify, fmt.Sprintf("verify_%d", from.ID))),
			),
		})
		return
	}

	h.sendMainMenu(ctx, b, chatID, lang, t.Menu)
}

// sendMainMenu sends a message carrying the main reply keyboard for the
// locale.
func (h *Handler) sendMainMenu(ctx context.Context, b *bot.Bot, chatID int64, lang i18n.Lang, text string) {
	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        text,
		ReplyMarkup: tg.ReplyKeyboard(i18n.MainKeyboard(lang)),
	})
}
