package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/koffi-dev/gainpulse/internal/config"
	"github.com/koffi-dev/gainpulse/internal/domain"
)

// UserStore is the subset of repository queries the user service needs.
type UserStore interface {
	GetUserByTelegramID(ctx context.Context, telegramID int64) (*domain.User, error)
	CreateUser(ctx context.Context, telegramID int64, firstName string) (*domain.User, error)
	CreditReferral(ctx context.Context, inviterTelegramID int64, reward int64) (string, error)
	SetStatus(ctx context.Context, telegramID int64, status domain.Status) error
	SetAccountNumber(ctx context.Context, telegramID int64, number string) error
}

type UserService struct {
	store UserStore
}

func NewUserService(store UserStore) *UserService {
	return &UserService{store: store}
}

// FindOrCreate returns the existing user row, or creates one. On creation a
// referral payload ("ref_<inviter telegram id>") credits the inviter and
// surfaces their name so the caller can announce the referral. An inviter id
// that resolves to no row is a logged no-op.
func (s *UserService) FindOrCreate(ctx context.Context, telegramID int64, firstName, payload string) (user *domain.User, created bool, inviterName string, err error) {
	user, err = s.store.GetUserByTelegramID(ctx, telegramID)
	if err == nil {
		return user, false, "", nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, false, "", fmt.Errorf("find user: %w", err)
	}

	if inviterID, ok := parseReferralPayload(payload); ok {
		name, err := s.store.CreditReferral(ctx, inviterID, config.ReferralReward)
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			slog.Warn("referral payload names unknown inviter", "inviter_id", inviterID)
		case err != nil:
			slog.Error("credit referral", "error", err, "inviter_id", inviterID)
		default:
			inviterName = name
		}
	}

	user, err = s.store.CreateUser(ctx, telegramID, firstName)
	if err != nil {
		return nil, false, "", fmt.Errorf("create user: %w", err)
	}
	return user, true, inviterName, nil
}

func (s *UserService) Get(ctx context.Context, telegramID int64) (*domain.User, error) {
	return s.store.GetUserByTelegramID(ctx, telegramID)
}

// BeginAddingNumber marks the user so their next text message is stored as
// the payout account number.
func (s *UserService) BeginAddingNumber(ctx context.Context, telegramID int64) error {
	return s.store.SetStatus(ctx, telegramID, domain.StatusAddingNumber)
}

func (s *UserService) SaveAccountNumber(ctx context.Context, telegramID int64, number string) error {
	return s.store.SetAccountNumber(ctx, telegramID, number)
}

func parseReferralPayload(payload string) (int64, bool) {
	if !strings.HasPrefix(payload, config.ReferralPrefix) {
		return 0, false
	}
	id, err := strconv.ParseInt(payload[len(config.ReferralPrefix):], 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
