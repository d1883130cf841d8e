package domain

import "time"

// Status is the per-user conversational state cursor. The bot asks a question
// (account number, withdrawal amount) and the next free-text message from that
// user is interpreted according to this value.
type Status string

const (
	StatusIdle         Status = "idle"
	StatusAddingNumber Status = "adding_number"
	StatusWithdrawing  Status = "withdrawing"
)

// BonusSentinel is the last_bonus_date assigned to freshly created users so
// that their first bonus claim always succeeds.
var BonusSentinel = time.Date(2000, time.December, 1, 0, 0, 0, 0, time.UTC)

type User struct {
	ID            int64
	TelegramID    int64
	FirstName     string
	Amount        int64
	InvitedUsers  int
	AccountNumber *string
	Status        Status
	LastBonusDate time.Time
	HasWithdrawn  bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (u *User) HasAccountNumber() bool {
	return u.AccountNumber != nil && *u.AccountNumber != ""
}
