package service

import (
	"context"
	"errors"
	"testing"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/require"
)

type chatMemberAPIMock struct {
	fn func(ctx context.Context, params *bot.GetChatMemberParams) (*models.ChatMember, error)
}

func (m *chatMemberAPIMock) GetChatMember(ctx context.Context, params *bot.GetChatMemberParams) (*models.ChatMember, error) {
	return m.fn(ctx, params)
}

func memberOf(statuses map[int64]models.ChatMemberType) *chatMemberAPIMock {
	return &chatMemberAPIMock{
		fn: func(ctx context.Context, params *bot.GetChatMemberParams) (*models.ChatMember, error) {
			chatID, ok := params.ChatID.(int64)
			if !ok {
				return nil, errors.New("unexpected chat id type")
			}
			memberType, ok := statuses[chatID]
			if !ok {
				return nil, errors.New("chat not found")
			}
			return &models.ChatMember{Type: memberType}, nil
		},
	}
}

func TestVerifyMemberOfBothChannels(t *testing.T) {
	api := memberOf(map[int64]models.ChatMemberType{
		-1001: models.ChatMemberTypeMember,
		-1002: models.ChatMemberTypeAdministrator,
	})
	svc := NewMembershipService(api, []int64{-1001, -1002})

	require.True(t, svc.Verify(context.Background(), 42))
}

func TestVerifyLeftInOneChannel(t *testing.T) {
	api := memberOf(map[int64]models.ChatMemberType{
		-1001: models.ChatMemberTypeMember,
		-1002: models.ChatMemberTypeLeft,
	})
	svc := NewMembershipService(api, []int64{-1001, -1002})

	require.False(t, svc.Verify(context.Background(), 42))
}

func TestVerifyBannedCountsAsNotMember(t *testing.T) {
	api := memberOf(map[int64]models.ChatMemberType{
		-1001: models.ChatMemberTypeBanned,
		-1002: models.ChatMemberTypeMember,
	})
	svc := NewMembershipService(api, []int64{-1001, -1002})

	require.False(t, svc.Verify(context.Background(), 42))
}

func TestVerifyLookupFailureIsNotMember(t *testing.T) {
	api := &chatMemberAPIMock{
		fn: func(ctx context.Context, params *bot.GetChatMemberParams) (*models.ChatMember, error) {
			return nil, errors.New("user never interacted with the channel")
		},
	}
	svc := NewMembershipService(api, []int64{-1001, -1002})

	require.False(t, svc.Verify(context.Background(), 42))
}

func TestIsMemberRestrictedStillCounts(t *testing.T) {
	api := memberOf(map[int64]models.ChatMemberType{
		-1001: models.ChatMemberTypeRestricted,
	})
	svc := NewMembershipService(api, []int64{-1001})

	require.True(t, svc.IsMember(context.Background(), -1001, 42))
}
