package handler

import (
	"context"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// Register registers all command, text and callback handlers on the bot
// instance. Chat-join-request updates have no registry slot in the framework
// and arrive through HandleDefault.
func (h *Handler) Register() {
	// Commands
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypePrefix, h.handleStart)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/channel", bot.MatchTypePrefix, h.handleChannel)

	// Callbacks
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "verify_", bot.MatchTypePrefix, h.handleVerify)
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "addNum", bot.MatchTypePrefix, h.handleAddNumber)
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "task_", bot.MatchTypePrefix, h.handleTaskCheck)

	// Menu buttons and status-driven replies
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "", bot.MatchTypePrefix, func(ctx context.Context, b *bot.Bot, update *models.Update) {
		if update.Message == nil || strings.HasPrefix(update.Message.Text, "/") {
			return
		}
		h.handleText(ctx, b, update)
	})
}

// HandleDefault routes update kinds the handler registry cannot match.
func (h *Handler) HandleDefault(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.ChatJoinRequest != nil {
		h.handleJoinRequest(ctx, b, update)
	}
}
