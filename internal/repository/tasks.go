package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/koffi-dev/gainpulse/internal/domain"
)

const taskColumns = `id, link, reward, priority, chat_id, kind`

func scanTask(row pgx.Row) (*domain.Task, error) {
	var t domain.Task
	err := row.Scan(&t.ID, &t.Link, &t.Reward, &t.Priority, &t.ChatID, &t.Kind)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *Store) GetTask(ctx context.Context, id string) (*domain.Task, error) {
	row := s.db.QueryRow(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE id = $1`, id)

	t, err := scanTask(row)
	if err == pgx.ErrNoRows {
		return nil, domain.ErrTaskNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}
	return t, nil
}

// GetTaskByChatID returns the first task bound to the given channel. Used to
// resolve chat-join-request updates back to the task they complete.
func (s *Store) GetTaskByChatID(ctx context.Context, chatID int64) (*domain.Task, error) {
	row := s.db.QueryRow(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE chat_id = $1 LIMIT 1`, chatID)

	t, err := scanTask(row)
	if err == pgx.ErrNoRows {
		return nil, domain.ErrTaskNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get task by chat: %w", err)
	}
	return t, nil
}

// ListAvailableTasks returns the highest-priority tasks the user has not yet
// completed.
func (s *Store) ListAvailableTasks(ctx context.Context, telegramID int64, limit int) ([]*domain.Task, error) {
	rows, err := s.db.Query(ctx, `
		SELECT `+taskColumns+` FROM tasks
		WHERE id NOT IN (SELECT task_id FROM user_tasks WHERE user_id = $1)
		ORDER BY priority DESC
		LIMIT $2`,
		telegramID, limit)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*domain.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (s *Store) CountCompletedTasks(ctx context.Context, telegramID int64) (int, error) {
	var count int
	err := s.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM user_tasks WHERE user_id = $1`, telegramID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count completed tasks: %w", err)
	}
	return count, nil
}

func (s *Store) HasCompletedTask(ctx context.Context, telegramID int64, taskID string) (bool, error) {
	var exists bool
	err := s.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM user_tasks WHERE user_id = $1 AND task_id = $2)`,
		telegramID, taskID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check task completion: %w", err)
	}
	return exists, nil
}

// CreateTaskCompletion records a completion. The primary key makes the row
// unique per (user, task); repeated calls are no-ops.
func (s *Store) CreateTaskCompletion(ctx context.Context, telegramID int64, taskID string) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO user_tasks (user_id, task_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, task_id) DO NOTHING`,
		telegramID, taskID)
	if err != nil {
		return fmt.Errorf("create task completion: %w", err)
	}
	return nil
}

// ClaimTaskReward flips the rewarded flag and reports whether this call won
// the claim. The reward is credited at most once per completion no matter how
// often the evaluator re-runs.
func (s *Store) ClaimTaskReward(ctx context.Context, telegramID int64, taskID string) (bool, error) {
	tag, err := s.db.Exec(ctx, `
		UPDATE user_tasks SET rewarded = TRUE
		WHERE user_id = $1 AND task_id = $2 AND NOT rewarded`,
		telegramID, taskID)
	if err != nil {
		return false, fmt.Errorf("claim task reward: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
