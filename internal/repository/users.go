package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/koffi-dev/gainpulse/internal/domain"
)

const userColumns = `id, telegram_id, first_name, amount, invited_users, account_number,
	status, last_bonus_date, has_withdrawn, created_at, updated_at`

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID, &u.TelegramID, &u.FirstName, &u.Amount, &u.InvitedUsers,
		&u.AccountNumber, &u.Status, &u.LastBonusDate, &u.HasWithdrawn,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *Store) GetUserByTelegramID(ctx context.Context, telegramID int64) (*domain.User, error) {
	row := s.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE telegram_id = $1`, telegramID)

	u, err := scanUser(row)
	if err == pgx.ErrNoRows {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

func (s *Store) CreateUser(ctx context.Context, telegramID int64, firstName string) (*domain.User, error) {
	row := s.db.QueryRow(ctx, `
		INSERT INTO users (telegram_id, first_name, status, last_bonus_date)
		VALUES ($1, $2, $3, $4)
		RETURNING `+userColumns,
		telegramID, firstName, domain.StatusIdle, domain.BonusSentinel)

	u, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

// CreditReferral atomically rewards the inviter for a new signup and returns
// the inviter's display name for the announcement message.
func (s *Store) CreditReferral(ctx context.Context, inviterTelegramID int64, reward int64) (string, error) {
	var firstName string
	err := s.db.QueryRow(ctx, `
		UPDATE users
		SET invited_users = invited_users + 1,
		    amount = amount + $2,
		    updated_at = NOW()
		WHERE telegram_id = $1
		RETURNING first_name`,
		inviterTelegramID, reward).Scan(&firstName)
	if err == pgx.ErrNoRows {
		return "", domain.ErrUserNotFound
	}
	if err != nil {
		return "", fmt.Errorf("credit referral: %w", err)
	}
	return firstName, nil
}

func (s *Store) SetStatus(ctx context.Context, telegramID int64, status domain.Status) error {
	_, err := s.db.Exec(ctx,
		`UPDATE users SET status = $2, updated_at = NOW() WHERE telegram_id = $1`,
		telegramID, status)
	if err != nil {
		return fmt.Errorf("set status: %w", err)
	}
	return nil
}

// SetAccountNumber stores the payout account number and returns the user to
// the idle state in one statement.
func (s *Store) SetAccountNumber(ctx context.Context, telegramID int64, number string) error {
	_, err := s.db.Exec(ctx, `
		UPDATE users
		SET account_number = $2, status = $3, updated_at = NOW()
		WHERE telegram_id = $1`,
		telegramID, number, domain.StatusIdle)
	if err != nil {
		return fmt.Errorf("set account number: %w", err)
	}
	return nil
}

// GrantBonus credits the periodic bonus and stamps last_bonus_date in a
// single statement.
func (s *Store) GrantBonus(ctx context.Context, telegramID int64, reward int64) error {
	_, err := s.db.Exec(ctx, `
		UPDATE users
		SET amount = amount + $2, last_bonus_date = NOW(), updated_at = NOW()
		WHERE telegram_id = $1`,
		telegramID, reward)
	if err != nil {
		return fmt.Errorf("grant bonus: %w", err)
	}
	return nil
}

func (s *Store) CreditReward(ctx context.Context, telegramID int64, reward int64) error {
	_, err := s.db.Exec(ctx,
		`UPDATE users SET amount = amount + $2, updated_at = NOW() WHERE telegram_id = $1`,
		telegramID, reward)
	if err != nil {
		return fmt.Errorf("credit reward: %w", err)
	}
	return nil
}

// WithdrawBalance performs the payout debit as one conditional update so two
// racing withdrawal confirmations cannot both pass the balance check.
func (s *Store) WithdrawBalance(ctx context.Context, telegramID int64, amount int64) error {
	tag, err := s.db.Exec(ctx, `
		UPDATE users
		SET amount = amount - $2,
		    status = $3,
		    has_withdrawn = TRUE,
		    updated_at = NOW()
		WHERE telegram_id = $1 AND amount >= $2`,
		telegramID, amount, domain.StatusIdle)
	if err != nil {
		return fmt.Errorf("withdraw balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrInsufficientBalance
	}
	return nil
}
