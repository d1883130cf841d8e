package domain

import (
	"time"

	"github.com/google/uuid"
)

// Withdrawal is the audit record of an approved payout.
type Withdrawal struct {
	ID        uuid.UUID
	UserID    int64
	Amount    int64
	CreatedAt time.Time
}
