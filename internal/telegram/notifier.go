package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/koffi-dev/gainpulse/internal/config"
)

// Notifier posts operational notifications to the fixed ops chat.
type Notifier struct {
	bot         *bot.Bot
	cfg         *config.Config
	botUsername string
}

func NewNotifier(b *bot.Bot, cfg *config.Config, botUsername string) *Notifier {
	return &Notifier{bot: b, cfg: cfg, botUsername: botUsername}
}

// NotifyWithdrawal announces an approved withdrawal in the ops chat and
// attaches a random emoji reaction to it. Both calls are best effort; a
// failure never blocks the withdrawal itself.
func (n *Notifier) NotifyWithdrawal(ctx context.Context, telegramID int64, firstName string, amount int64) {
	if n.cfg.OpsChatID == 0 {
		return
	}

	text := fmt.Sprintf(
		"⚔ NOUVEAU RETRAIT ⚔\n\n"+
			"▪️ Status : Approuvé ✅\n"+
			"▪️ User Identifiant: %d\n"+
			"▪️ Retrait effectué par: %s\n"+
			"▪️ Montant Retiré : %d FCFA\n\n"+
			"🤴 Bot @%s",
		telegramID, firstName, amount, n.botUsername,
	)

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	msg, err := n.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:              n.cfg.OpsChatID,
		Text:                text,
		DisableNotification: true,
	})
	if err != nil {
		slog.Error("send withdrawal notification", "error", err)
		return
	}

	emoji := config.WithdrawalReactions[rand.Intn(len(config.WithdrawalReactions))]
	_, err = n.bot.SetMessageReaction(ctx, &bot.SetMessageReactionParams{
		ChatID:    n.cfg.OpsChatID,
		MessageID: msg.ID,
		Reaction: []models.ReactionType{
			{ReactionTypeEmoji: &models.ReactionTypeEmoji{Type: "emoji", Emoji: emoji}},
		},
	})
	if err != nil {
		slog.Warn("set withdrawal reaction", "error", err)
	}
}
