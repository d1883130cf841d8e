package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/koffi-dev/gainpulse/internal/config"
	"github.com/koffi-dev/gainpulse/internal/domain"
)

type TaskStore interface {
	GetTask(ctx context.Context, id string) (*domain.Task, error)
	GetTaskByChatID(ctx context.Context, chatID int64) (*domain.Task, error)
	ListAvailableTasks(ctx context.Context, telegramID int64, limit int) ([]*domain.Task, error)
	CountCompletedTasks(ctx context.Context, telegramID int64) (int, error)
	HasCompletedTask(ctx context.Context, telegramID int64, taskID string) (bool, error)
	CreateTaskCompletion(ctx context.Context, telegramID int64, taskID string) error
	ClaimTaskReward(ctx context.Context, telegramID int64, taskID string) (bool, error)
	CreditReward(ctx context.Context, telegramID int64, reward int64) error
}

// MembershipChecker reports whether a user currently belongs to a channel.
type MembershipChecker interface {
	IsMember(ctx context.Context, chatID, telegramID int64) bool
}

type TaskService struct {
	store      TaskStore
	membership MembershipChecker
}

func NewTaskService(store TaskStore, membership MembershipChecker) *TaskService {
	return &TaskService{store: store, membership: membership}
}

// Available returns the tasks currently offered to the user, highest priority
// first. A user may complete at most two tasks in total.
func (s *TaskService) Available(ctx context.Context, telegramID int64) ([]*domain.Task, error) {
	count, err := s.store.CountCompletedTasks(ctx, telegramID)
	if err != nil {
		return nil, fmt.Errorf("count completed: %w", err)
	}
	if count >= config.MaxCompletedTasks {
		return nil, domain.ErrTaskLimitReached
	}
	return s.store.ListAvailableTasks(ctx, telegramID, config.TaskPageSize)
}

// EvalResult is the outcome of one evaluator run over a task list.
type EvalResult struct {
	Completed []*domain.Task
	Remaining []*domain.Task
	Granted   int64
}

// Evaluate walks the task identifiers from a Check button press and settles
// each one. Self-reported tasks are complete iff their completion row was
// recorded earlier by a join request; membership-checked tasks are settled by
// a live chat-member lookup, recording the completion on the spot. Rewards
// are credited only when the completion's reward claim is won, so re-running
// the evaluator never pays twice. Unknown identifiers are skipped.
func (s *TaskService) Evaluate(ctx context.Context, telegramID int64, taskIDs []string) (*EvalResult, error) {
	res := &EvalResult{}

	for _, id := range taskIDs {
		task, err := s.store.GetTask(ctx, id)
		if errors.Is(err, domain.ErrTaskNotFound) {
			slog.Warn("callback names unknown task", "task_id", id)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("get task %s: %w", id, err)
		}

		done, err := s.settle(ctx, telegramID, task)
		if err != nil {
			return nil, err
		}
		if !done {
			res.Remaining = append(res.Remaining, task)
			continue
		}

		won, err := s.store.ClaimTaskReward(ctx, telegramID, task.ID)
		if err != nil {
			return nil, fmt.Errorf("claim reward for %s: %w", task.ID, err)
		}
		if won {
			if err := s.store.CreditReward(ctx, telegramID, task.Reward); err != nil {
				return nil, fmt.Errorf("credit reward for %s: %w", task.ID, err)
			}
			res.Granted += task.Reward
		}
		res.Completed = append(res.Completed, task)
	}

	return res, nil
}

func (s *TaskService) settle(ctx context.Context, telegramID int64, task *domain.Task) (bool, error) {
	switch task.Kind {
	case domain.TaskKindSelfReported:
		done, err := s.store.HasCompletedTask(ctx, telegramID, task.ID)
		if err != nil {
			return false, fmt.Errorf("check completion for %s: %w", task.ID, err)
		}
		return done, nil

	case domain.TaskKindMembershipChecked:
		if task.ChatID == nil {
			slog.Warn("membership-checked task has no chat", "task_id", task.ID)
			return false, nil
		}
		if !s.membership.IsMember(ctx, *task.ChatID, telegramID) {
			return false, nil
		}
		if err := s.store.CreateTaskCompletion(ctx, telegramID, task.ID); err != nil {
			return false, fmt.Errorf("record completion for %s: %w", task.ID, err)
		}
		return true, nil

	default:
		slog.Warn("task has unknown kind", "task_id", task.ID, "kind", task.Kind)
		return false, nil
	}
}

// CompleteJoinRequest records a self-reported completion for the task bound
// to the chat the join request targets.
func (s *TaskService) CompleteJoinRequest(ctx context.Context, telegramID, chatID int64) error {
	task, err := s.store.GetTaskByChatID(ctx, chatID)
	if errors.Is(err, domain.ErrTaskNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("resolve task for chat %d: %w", chatID, err)
	}
	return s.store.CreateTaskCompletion(ctx, telegramID, task.ID)
}
