package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/koffi-dev/gainpulse/internal/domain"
)

type withdrawStoreMock struct {
	setStatusFn        func(ctx context.Context, telegramID int64, status domain.Status) error
	withdrawBalanceFn  func(ctx context.Context, telegramID int64, amount int64) error
	createWithdrawalFn func(ctx context.Context, telegramID int64, amount int64) (uuid.UUID, error)
}

func (m *withdrawStoreMock) SetStatus(ctx context.Context, telegramID int64, status domain.Status) error {
	if m.setStatusFn != nil {
		return m.setStatusFn(ctx, telegramID, status)
	}
	return nil
}

func (m *withdrawStoreMock) WithdrawBalance(ctx context.Context, telegramID int64, amount int64) error {
	if m.withdrawBalanceFn != nil {
		return m.withdrawBalanceFn(ctx, telegramID, amount)
	}
	return nil
}

func (m *withdrawStoreMock) CreateWithdrawal(ctx context.Context, telegramID int64, amount int64) (uuid.UUID, error) {
	if m.createWithdrawalFn != nil {
		return m.createWithdrawalFn(ctx, telegramID, amount)
	}
	return uuid.New(), nil
}

type notifierMock struct {
	calls   int
	lastSum int64
}

func (m *notifierMock) NotifyWithdrawal(ctx context.Context, telegramID int64, firstName string, amount int64) {
	m.calls++
	m.lastSum = amount
}

func accountNumber(n string) *string { return &n }

func TestInitiateBelowMinimum(t *testing.T) {
	statusSet := false
	svc := NewWithdrawService(&withdrawStoreMock{
		setStatusFn: func(ctx context.Context, telegramID int64, status domain.Status) error {
			statusSet = true
			return nil
		},
	}, &notifierMock{})

	user := &domain.User{TelegramID: 42, Amount: 39999, AccountNumber: accountNumber("0700000000")}
	err := svc.Initiate(context.Background(), user)
	require.ErrorIs(t, err, domain.ErrBelowMinimum)
	require.False(t, statusSet)
}

func TestInitiateNoAccountNumber(t *testing.T) {
	svc := NewWithdrawService(&withdrawStoreMock{}, &notifierMock{})

	user := &domain.User{TelegramID: 42, Amount: 50000}
	err := svc.Initiate(context.Background(), user)
	require.ErrorIs(t, err, domain.ErrNoAccountNumber)
}

func TestInitiateMovesUserToWithdrawing(t *testing.T) {
	var gotStatus domain.Status
	svc := NewWithdrawService(&withdrawStoreMock{
		setStatusFn: func(ctx context.Context, telegramID int64, status domain.Status) error {
			gotStatus = status
			return nil
		},
	}, &notifierMock{})

	user := &domain.User{TelegramID: 42, Amount: 50000, AccountNumber: accountNumber("0700000000")}
	require.NoError(t, svc.Initiate(context.Background(), user))
	require.Equal(t, domain.StatusWithdrawing, gotStatus)
}

// Rejection precedence: balance first, then minimum, then invite count.
func TestConfirmRejectionOrdering(t *testing.T) {
	svc := NewWithdrawService(&withdrawStoreMock{}, &notifierMock{})
	ctx := context.Background()

	// Sum exceeds balance; also below the minimum, but insufficient wins.
	user := &domain.User{TelegramID: 42, Amount: 10000, InvitedUsers: 0}
	require.ErrorIs(t, svc.Confirm(ctx, user, 20000), domain.ErrInsufficientBalance)

	// Within balance but below minimum; invite count also short, minimum wins.
	user = &domain.User{TelegramID: 42, Amount: 50000, InvitedUsers: 0}
	require.ErrorIs(t, svc.Confirm(ctx, user, 30000), domain.ErrBelowMinimum)

	// Only the invite count is short.
	user = &domain.User{TelegramID: 42, Amount: 50000, InvitedUsers: 4}
	require.ErrorIs(t, svc.Confirm(ctx, user, 40000), domain.ErrNotEnoughInvites)
}

func TestConfirmSuccess(t *testing.T) {
	var debited int64
	recorded := false
	notifier := &notifierMock{}

	svc := NewWithdrawService(&withdrawStoreMock{
		withdrawBalanceFn: func(ctx context.Context, telegramID int64, amount int64) error {
			debited = amount
			return nil
		},
		createWithdrawalFn: func(ctx context.Context, telegramID int64, amount int64) (uuid.UUID, error) {
			recorded = true
			return uuid.New(), nil
		},
	}, notifier)

	user := &domain.User{TelegramID: 42, FirstName: "Ada", Amount: 40000, InvitedUsers: 5}
	require.NoError(t, svc.Confirm(context.Background(), user, 40000))
	require.Equal(t, int64(40000), debited)
	require.True(t, recorded)
	require.Equal(t, 1, notifier.calls)
	require.Equal(t, int64(40000), notifier.lastSum)
}

func TestConfirmRacingDebitSurfacesInsufficient(t *testing.T) {
	notifier := &notifierMock{}
	svc := NewWithdrawService(&withdrawStoreMock{
		withdrawBalanceFn: func(ctx context.Context, telegramID int64, amount int64) error {
			return domain.ErrInsufficientBalance
		},
	}, notifier)

	user := &domain.User{TelegramID: 42, Amount: 40000, InvitedUsers: 5}
	err := svc.Confirm(context.Background(), user, 40000)
	require.ErrorIs(t, err, domain.ErrInsufficientBalance)
	require.Zero(t, notifier.calls)
}
