package domain

import "time"

// TaskKind selects how completion of a task is established.
type TaskKind string

const (
	// TaskKindSelfReported tasks are completed out of band: the user sends a
	// join request to the task's channel and the bot records the completion
	// when the chat_join_request update arrives.
	TaskKindSelfReported TaskKind = "self_reported"

	// TaskKindMembershipChecked tasks are completed by a live chat-member
	// lookup against the task's channel at evaluation time.
	TaskKindMembershipChecked TaskKind = "membership_checked"
)

type Task struct {
	ID       string
	Link     string
	Reward   int64
	Priority int
	ChatID   *int64
	Kind     TaskKind
}

// UserTask records that a user has completed a task. At most one row exists
// per (user, task) pair; Rewarded flips to true exactly once, when the reward
// is credited.
type UserTask struct {
	UserID      int64
	TaskID      string
	Rewarded    bool
	CompletedAt time.Time
}
