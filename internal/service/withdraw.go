package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/koffi-dev/gainpulse/internal/config"
	"github.com/koffi-dev/gainpulse/internal/domain"
)

type WithdrawStore interface {
	SetStatus(ctx context.Context, telegramID int64, status domain.Status) error
	WithdrawBalance(ctx context.Context, telegramID int64, amount int64) error
	CreateWithdrawal(ctx context.Context, telegramID int64, amount int64) (uuid.UUID, error)
}

// WithdrawNotifier posts the approval notification to the operations chat.
type WithdrawNotifier interface {
	NotifyWithdrawal(ctx context.Context, telegramID int64, firstName string, amount int64)
}

type WithdrawService struct {
	store    WithdrawStore
	notifier WithdrawNotifier
}

func NewWithdrawService(store WithdrawStore, notifier WithdrawNotifier) *WithdrawService {
	return &WithdrawService{store: store, notifier: notifier}
}

// Initiate checks eligibility and moves the user into the withdrawing state
// so their next message is read as the requested amount.
func (s *WithdrawService) Initiate(ctx context.Context, user *domain.User) error {
	if user.Amount < config.MinWithdrawal {
		return domain.ErrBelowMinimum
	}
	if !user.HasAccountNumber() {
		return domain.ErrNoAccountNumber
	}
	return s.store.SetStatus(ctx, user.TelegramID, domain.StatusWithdrawing)
}

// Confirm validates the requested sum and, if eligible, debits the balance
// and notifies the operations chat. Rejections leave the user in the
// withdrawing state; check order is balance, minimum, then invite count.
func (s *WithdrawService) Confirm(ctx context.Context, user *domain.User, sum int64) error {
	if sum > user.Amount {
		return domain.ErrInsufficientBalance
	}
	if sum < config.MinWithdrawal {
		return domain.ErrBelowMinimum
	}
	if user.InvitedUsers < config.MinInvitedUsers {
		return domain.ErrNotEnoughInvites
	}

	// Conditional update: a racing confirmation that already drained the
	// balance fails here instead of going negative.
	if err := s.store.WithdrawBalance(ctx, user.TelegramID, sum); err != nil {
		return fmt.Errorf("debit balance: %w", err)
	}

	if _, err := s.store.CreateWithdrawal(ctx, user.TelegramID, sum); err != nil {
		slog.Error("record withdrawal", "error", err, "user_id", user.TelegramID, "amount", sum)
	}

	s.notifier.NotifyWithdrawal(ctx, user.TelegramID, user.FirstName, sum)
	return nil
}
