package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

func (s *Store) CreateWithdrawal(ctx context.Context, telegramID int64, amount int64) (uuid.UUID, error) {
	id := uuid.New()
	_, err := s.db.Exec(ctx,
		`INSERT INTO withdrawals (id, user_id, amount) VALUES ($1, $2, $3)`,
		id, telegramID, amount)
	if err != nil {
		return uuid.Nil, fmt.Errorf("create withdrawal: %w", err)
	}
	return id, nil
}
