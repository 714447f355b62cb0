package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sadopc/focuscal/internal/session"
)

// ErrNotFound reports an update or delete against a task id the store
// does not know.
var ErrNotFound = errors.New("task not found in store")

// InsertTask persists a task and assigns its store identity. The
// caller's (placeholder) id is discarded.
func (s *Store) InsertTask(t session.Task) (session.Task, error) {
	t.ID = uuid.NewString()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.Exec(
		`INSERT INTO tasks (id, owner_id, title, date, duration_minutes, target_instances, completed_instances, completed, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.OwnerID, t.Title, string(t.Date), t.DurationMinutes,
		t.TargetInstances, t.CompletedInstances, boolToInt(t.Completed),
		t.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return session.Task{}, fmt.Errorf("insert task: %w", err)
	}
	return s.GetTask(t.ID)
}

func (s *Store) GetTask(id string) (session.Task, error) {
	row := s.db.QueryRow(
		`SELECT id, owner_id, title, date, duration_minutes, target_instances, completed_instances, completed, created_at
		 FROM tasks WHERE id = ?`, id,
	)
	t, err := scanTask(row)
	if err != nil {
		return session.Task{}, fmt.Errorf("get task %s: %w", id, err)
	}
	return t, nil
}

// ListTasks returns the owner's tasks ordered by creation time ascending.
func (s *Store) ListTasks(ownerID string) ([]session.Task, error) {
	rows, err := s.db.Query(
		`SELECT id, owner_id, title, date, duration_minutes, target_instances, completed_instances, completed, created_at
		 FROM tasks WHERE owner_id = ? ORDER BY created_at, id`, ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []session.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (s *Store) UpdateTaskCompleted(id string, completed bool) error {
	res, err := s.db.Exec(
		`UPDATE tasks SET completed = ? WHERE id = ?`, boolToInt(completed), id,
	)
	if err != nil {
		return fmt.Errorf("update task completed: %w", err)
	}
	return checkAffected(res)
}

func (s *Store) UpdateTaskInstances(id string, completedInstances int) error {
	res, err := s.db.Exec(
		`UPDATE tasks SET completed_instances = ? WHERE id = ?`, completedInstances, id,
	)
	if err != nil {
		return fmt.Errorf("update task instances: %w", err)
	}
	return checkAffected(res)
}

func (s *Store) DeleteTask(id string) error {
	res, err := s.db.Exec(`DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return checkAffected(res)
}

// DeleteCompleted removes every completed task belonging to the owner.
func (s *Store) DeleteCompleted(ownerID string) error {
	_, err := s.db.Exec(
		`DELETE FROM tasks WHERE owner_id = ? AND completed = 1`, ownerID,
	)
	if err != nil {
		return fmt.Errorf("delete completed tasks: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (session.Task, error) {
	var t session.Task
	var date, createdAt string
	var completed int
	err := row.Scan(&t.ID, &t.OwnerID, &t.Title, &date, &t.DurationMinutes,
		&t.TargetInstances, &t.CompletedInstances, &completed, &createdAt)
	if err != nil {
		return session.Task{}, err
	}
	t.Date = session.Date(date)
	t.Completed = completed == 1
	t.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return t, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func checkAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
