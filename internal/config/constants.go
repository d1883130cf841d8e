package config

import "time"

const (
	// Referral program
	ReferralReward = 5500
	ReferralPrefix = "ref_"

	// Periodic bonus
	BonusReward   = 750
	BonusCooldown = 2 * time.Hour

	// Withdrawals
	MinWithdrawal   = 40000
	MinInvitedUsers = 5

	// Tasks
	MaxCompletedTasks = 2
	TaskPageSize      = 2
)

// WithdrawalReactions is the pool of emoji reactions attached to the
// ops-chat notification, picked uniformly at random.
var WithdrawalReactions = []string{"👍", "🔥", "🎉", "❤"}
