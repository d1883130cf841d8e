package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/koffi-dev/gainpulse/internal/domain"
)

type bonusStoreMock struct {
	grantFn func(ctx context.Context, telegramID int64, reward int64) error
}

func (m *bonusStoreMock) GrantBonus(ctx context.Context, telegramID int64, reward int64) error {
	if m.grantFn != nil {
		return m.grantFn(ctx, telegramID, reward)
	}
	return nil
}

func TestBonusClaimAfterCooldown(t *testing.T) {
	now := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	var grantedReward int64
	grants := 0

	svc := &BonusService{
		store: &bonusStoreMock{
			grantFn: func(ctx context.Context, telegramID int64, reward int64) error {
				grants++
				grantedReward = reward
				return nil
			},
		},
		now: func() time.Time { return now },
	}

	user := &domain.User{TelegramID: 42, LastBonusDate: now.Add(-2 * time.Hour)}
	res, err := svc.Claim(context.Background(), user)
	require.NoError(t, err)
	require.True(t, res.Won)
	require.Equal(t, int64(750), grantedReward)
	require.Equal(t, 1, grants)
}

func TestBonusClaimSentinelDateAlwaysWins(t *testing.T) {
	svc := &BonusService{
		store: &bonusStoreMock{},
		now:   time.Now,
	}

	user := &domain.User{TelegramID: 42, LastBonusDate: domain.BonusSentinel}
	res, err := svc.Claim(context.Background(), user)
	require.NoError(t, err)
	require.True(t, res.Won)
}

func TestBonusClaimCooldownCountdown(t *testing.T) {
	now := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	grants := 0

	svc := &BonusService{
		store: &bonusStoreMock{
			grantFn: func(ctx context.Context, telegramID int64, reward int64) error {
				grants++
				return nil
			},
		},
		now: func() time.Time { return now },
	}

	// Claimed 30m ago: 1h29m30s left until the 2h mark.
	user := &domain.User{TelegramID: 42, LastBonusDate: now.Add(-30*time.Minute - 30*time.Second)}
	res, err := svc.Claim(context.Background(), user)
	require.NoError(t, err)
	require.False(t, res.Won)
	require.Zero(t, grants)
	require.Equal(t, 1, res.Hours)
	require.Equal(t, 29, res.Minutes)
	require.Equal(t, 30, res.Seconds)
}
