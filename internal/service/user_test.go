package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/koffi-dev/gainpulse/internal/domain"
)

type userStoreMock struct {
	getFn              func(ctx context.Context, telegramID int64) (*domain.User, error)
	createFn           func(ctx context.Context, telegramID int64, firstName string) (*domain.User, error)
	creditReferralFn   func(ctx context.Context, inviterTelegramID int64, reward int64) (string, error)
	setStatusFn        func(ctx context.Context, telegramID int64, status domain.Status) error
	setAccountNumberFn func(ctx context.Context, telegramID int64, number string) error
}

func (m *userStoreMock) GetUserByTelegramID(ctx context.Context, telegramID int64) (*domain.User, error) {
	if m.getFn != nil {
		return m.getFn(ctx, telegramID)
	}
	return nil, domain.ErrUserNotFound
}

func (m *userStoreMock) CreateUser(ctx context.Context, telegramID int64, firstName string) (*domain.User, error) {
	if m.createFn != nil {
		return m.createFn(ctx, telegramID, firstName)
	}
	return &domain.User{TelegramID: telegramID, FirstName: firstName, Status: domain.StatusIdle, LastBonusDate: domain.BonusSentinel}, nil
}

func (m *userStoreMock) CreditReferral(ctx context.Context, inviterTelegramID int64, reward int64) (string, error) {
	if m.creditReferralFn != nil {
		return m.creditReferralFn(ctx, inviterTelegramID, reward)
	}
	return "", domain.ErrUserNotFound
}

func (m *userStoreMock) SetStatus(ctx context.Context, telegramID int64, status domain.Status) error {
	if m.setStatusFn != nil {
		return m.setStatusFn(ctx, telegramID, status)
	}
	return nil
}

func (m *userStoreMock) SetAccountNumber(ctx context.Context, telegramID int64, number string) error {
	if m.setAccountNumberFn != nil {
		return m.setAccountNumberFn(ctx, telegramID, number)
	}
	return nil
}

func TestFindOrCreateExistingUser(t *testing.T) {
	existing := &domain.User{TelegramID: 42, FirstName: "Ada"}
	created := false

	svc := NewUserService(&userStoreMock{
		getFn: func(ctx context.Context, telegramID int64) (*domain.User, error) {
			return existing, nil
		},
		createFn: func(ctx context.Context, telegramID int64, firstName string) (*domain.User, error) {
			created = true
			return nil, nil
		},
	})

	user, isNew, inviterName, err := svc.FindOrCreate(context.Background(), 42, "Ada", "ref_7")
	require.NoError(t, err)
	require.False(t, isNew)
	require.Empty(t, inviterName)
	require.Same(t, existing, user)
	require.False(t, created, "existing user must not be re-created or re-credit the inviter")
}

func TestFindOrCreateWithReferral(t *testing.T) {
	var creditedID, creditedReward int64
	var credits int

	svc := NewUserService(&userStoreMock{
		creditReferralFn: func(ctx context.Context, inviterTelegramID int64, reward int64) (string, error) {
			credits++
			creditedID = inviterTelegramID
			creditedReward = reward
			return "Grace", nil
		},
	})

	user, isNew, inviterName, err := svc.FindOrCreate(context.Background(), 42, "Ada", "ref_777")
	require.NoError(t, err)
	require.True(t, isNew)
	require.Equal(t, "Grace", inviterName)
	require.Equal(t, int64(777), creditedID)
	require.Equal(t, int64(5500), creditedReward)
	require.Equal(t, 1, credits)
	require.Equal(t, domain.BonusSentinel, user.LastBonusDate)
}

func TestFindOrCreateUnknownInviterIsNoOp(t *testing.T) {
	svc := NewUserService(&userStoreMock{
		creditReferralFn: func(ctx context.Context, inviterTelegramID int64, reward int64) (string, error) {
			return "", domain.ErrUserNotFound
		},
	})

	user, isNew, inviterName, err := svc.FindOrCreate(context.Background(), 42, "Ada", "ref_999")
	require.NoError(t, err)
	require.True(t, isNew)
	require.Empty(t, inviterName)
	require.NotNil(t, user)
}

func TestFindOrCreateNoPayload(t *testing.T) {
	credits := 0
	svc := NewUserService(&userStoreMock{
		creditReferralFn: func(ctx context.Context, inviterTelegramID int64, reward int64) (string, error) {
			credits++
			return "Grace", nil
		},
	})

	_, isNew, inviterName, err := svc.FindOrCreate(context.Background(), 42, "Ada", "")
	require.NoError(t, err)
	require.True(t, isNew)
	require.Empty(t, inviterName)
	require.Zero(t, credits)
}

func TestParseReferralPayload(t *testing.T) {
	id, ok := parseReferralPayload("ref_123456789")
	require.True(t, ok)
	require.Equal(t, int64(123456789), id)

	_, ok = parseReferralPayload("promo_123")
	require.False(t, ok)

	_, ok = parseReferralPayload("ref_notanumber")
	require.False(t, ok)

	_, ok = parseReferralPayload("")
	require.False(t, ok)
}
