package service

import (
	"context"
	"fmt"
	"time"

	"github.com/koffi-dev/gainpulse/internal/config"
	"github.com/koffi-dev/gainpulse/internal/domain"
)

type BonusStore interface {
	GrantBonus(ctx context.Context, telegramID int64, reward int64) error
}

type BonusService struct {
	store BonusStore
	now   func() time.Time
}

func NewBonusService(store BonusStore) *BonusService {
	return &BonusService{store: store, now: time.Now}
}

// BonusResult reports either a granted bonus or the time remaining until the
// next claim becomes available.
type BonusResult struct {
	Won     bool
	Hours   int
	Minutes int
	Seconds int
}

// Claim grants the periodic bonus if the cooldown has elapsed since the
// user's last claim, otherwise reports the floored countdown to eligibility.
// New users carry the sentinel last_bonus_date, so their first claim always
// wins.
func (s *BonusService) Claim(ctx context.Context, user *domain.User) (*BonusResult, error) {
	elapsed := s.now().Sub(user.LastBonusDate)
	if elapsed >= config.BonusCooldown {
		if err := s.store.GrantBonus(ctx, user.TelegramID, config.BonusReward); err != nil {
			return nil, fmt.Errorf("grant bonus: %w", err)
		}
		return &BonusResult{Won: true}, nil
	}

	remaining := config.BonusCooldown - elapsed
	return &BonusResult{
		Hours:   int(remaining.Hours()) % 24,
		Minutes: int(remaining.Minutes()) % 60,
		Seconds: int(remaining.Seconds()) % 60,
	}, nil
}
