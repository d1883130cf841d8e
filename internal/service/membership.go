package service

import (
	"context"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// ChatMemberAPI is the single Bot API call the verifier needs. *bot.Bot
// satisfies it.
type ChatMemberAPI interface {
	GetChatMember(ctx context.Context, params *bot.GetChatMemberParams) (*models.ChatMember, error)
}

// MembershipService gates access on current membership in the configured
// verification channels.
type MembershipService struct {
	api      ChatMemberAPI
	channels []int64
}

func NewMembershipService(api ChatMemberAPI, channels []int64) *MembershipService {
	return &MembershipService{api: api, channels: channels}
}

// IsMember reports whether the user currently belongs to the chat. A failed
// lookup (user never interacted with the channel, bot lacks access) counts
// as not a member so the check stays total.
func (s *MembershipService) IsMember(ctx context.Context, chatID, telegramID int64) bool {
	member, err := s.api.GetChatMember(ctx, &bot.GetChatMemberParams{
		ChatID: chatID,
		UserID: telegramID,
	})
	if err != nil {
		slog.Debug("chat member lookup failed", "chat_id", chatID, "user_id", telegramID, "error", err)
		return false
	}
	return member.Type != models.ChatMemberTypeLeft && member.Type != models.ChatMemberTypeBanned
}

// Verify reports whether the user is a current member of every verification
// channel.
func (s *MembershipService) Verify(ctx context.Context, telegramID int64) bool {
	for _, chatID := range s.channels {
		if !s.IsMember(ctx, chatID, telegramID) {
			return false
		}
	}
	return true
}
