package handler

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/koffi-dev/gainpulse/internal/domain"
	"github.com/koffi-dev/gainpulse/internal/i18n"
	"github.com/koffi-dev/gainpulse/internal/middleware"
	tg "github.com/koffi-dev/gainpulse/internal/telegram"
)

// handleText dispatches free-form private messages: first on the literal
// menu-button captions (matched across both locales), then on the user's
// conversational status for answers the bot asked for.
func (h *Handler) handleText(ctx context.Context, b *bot.Bot, update *models.Update) {
	msg := update.Message
	if msg == nil || msg.From == nil || msg.Chat.Type != "private" {
		return
	}

	user := middleware.GetUser(ctx)
	if user == nil {
		return
	}

	chatID := msg.Chat.ID
	lang := i18n.Resolve(msg.From.LanguageCode)
	t := i18n.T(lang)

	if button, ok := i18n.MatchButton(msg.Text); ok {
		switch button {
		case i18n.BtnBonus:
			h.handleBonus(ctx, b, chatID, lang, user)
		case i18n.BtnBalance:
			h.sendMainMenu(ctx, b, chatID, lang, t.Account(user.Amount, user.InvitedUsers))
		case i18n.BtnShare:
			link := fmt.Sprintf("https://t.me/%s?start=ref_%d", h.botUsername, user.TelegramID)
			h.sendMainMenu(ctx, b, chatID, lang, t.Share(link))
		case i18n.BtnProcedure:
			h.sendMainMenu(ctx, b, chatID, lang, t.Procedure)
		case i18n.BtnAddNumber:
			h.showAccountSettings(ctx, b, chatID, t, user)
		case i18n.BtnWithdraw:
			h.handleWithdrawStart(ctx, b, chatID, t, user)
		case i18n.BtnTasks:
			h.showTasks(ctx, b, chatID, lang, user)
		}
		return
	}

	switch user.Status {
	case domain.StatusAddingNumber:
		if err := h.users.SaveAccountNumber(ctx, user.TelegramID, msg.Text); err != nil {
			slog.Error("save account number", "error", err, "user_id", user.TelegramID)
			return
		}
		h.sendMainMenu(ctx, b, chatID, lang, t.NewNumber)

	case domain.StatusWithdrawing:
		sum, err := strconv.ParseInt(msg.Text, 10, 64)
		if err != nil || sum <= 0 {
			return
		}
		h.handleWithdrawConfirm(ctx, b, chatID, t, user, sum)
	}
}

// showAccountSettings displays the stored payout number with an inline button
// to change it.
func (h *Handler) showAccountSettings(ctx context.Context, b *bot.Bot, chatID int64, t *i18n.Messages, user *domain.User) {
	number := ""
	if user.AccountNumber != nil {
		number = *user.AccountNumber
	}
	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   t.Settings(number),
		ReplyMarkup: tg.InlineKeyboard(
			tg.ButtonRow(tg.InlineButton(t.BtnAddNum, fmt.Sprintf("addNum_%d", user.TelegramID))),
		),
	})
}
