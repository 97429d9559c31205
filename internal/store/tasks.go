package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"tasktrack/internal/model"
)

const taskColumns = "id, owner_id, title, completed, created_at"

// MinTitleLen is the minimum trimmed title length accepted by Rename.
// Creation enforces only presence; the length contract at creation time
// lives in request binding and in the client.
const MinTitleLen = 3

func scanTask(row interface{ Scan(...any) error }) (model.Task, error) {
	var t model.Task
	var completed int
	var createdAt int64
	if err := row.Scan(&t.ID, &t.Owner, &t.Title, &completed, &createdAt); err != nil {
		return model.Task{}, err
	}
	t.Completed = completed != 0
	t.CreatedAt = time.Unix(0, createdAt).UTC()
	return t, nil
}

// List returns one page of owner's tasks matching opts, together with the
// total count of matching tasks and the page count. A page past the end
// yields an empty slice, not an error.
func (s *Store) List(ctx context.Context, owner string, opts model.ListOptions) (model.Page, error) {
	opts = opts.Normalize()

	where := "owner_id = ?"
	args := []any{owner}
	if opts.Completed != nil {
		where += " AND completed = ?"
		if *opts.Completed {
			args = append(args, 1)
		} else {
			args = append(args, 0)
		}
	}

	var total int
	countQuery := "SELECT COUNT(*) FROM tasks WHERE " + where
	if err := s.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return model.Page{}, err
	}

	order := "DESC"
	if opts.Sort == model.SortOldest {
		order = "ASC"
	}
	query := fmt.Sprintf(
		"SELECT %s FROM tasks WHERE %s ORDER BY created_at %s LIMIT ? OFFSET ?",
		taskColumns, where, order,
	)
	offset := (opts.Page - 1) * opts.Limit
	rows, err := s.db.QueryContext(ctx, query, append(args, opts.Limit, offset)...)
	if err != nil {
		return model.Page{}, err
	}
	defer rows.Close()

	tasks := []model.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return model.Page{}, err
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return model.Page{}, err
	}

	return model.Page{
		Tasks:      tasks,
		Page:       opts.Page,
		TotalPages: (total + opts.Limit - 1) / opts.Limit,
		Total:      total,
	}, nil
}

// Create inserts a new, uncompleted task for owner and returns it.
func (s *Store) Create(ctx context.Context, owner, title string) (model.Task, error) {
	if title == "" {
		return model.Task{}, &ValidationError{Msg: "title is required"}
	}
	t := model.Task{
		ID:        uuid.NewString(),
		Owner:     owner,
		Title:     title,
		Completed: false,
		CreatedAt: time.Now().UTC(),
	}
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO tasks (id, owner_id, title, completed, created_at) VALUES (?, ?, ?, 0, ?)",
		t.ID, t.Owner, t.Title, t.CreatedAt.UnixNano(),
	)
	if err != nil {
		return model.Task{}, err
	}
	return t, nil
}

// Rename replaces the title of the task matching id and owner. Only the
// title changes; id, owner and created_at are untouched.
func (s *Store) Rename(ctx context.Context, owner, id, title string) (model.Task, error) {
	if len(strings.TrimSpace(title)) < MinTitleLen {
		return model.Task{}, &ValidationError{Msg: fmt.Sprintf("title must be at least %d characters", MinTitleLen)}
	}
	row := s.db.QueryRowContext(ctx,
		"UPDATE tasks SET title = ? WHERE id = ? AND owner_id = ? RETURNING "+taskColumns,
		title, id, owner,
	)
	t, err := scanTask(row)
	if err == sql.ErrNoRows {
		return model.Task{}, ErrNotFound
	}
	if err != nil {
		return model.Task{}, err
	}
	return t, nil
}

// ToggleCompletion flips the completed flag of the task matching id and
// owner. The flip happens inside a single UPDATE so concurrent toggles on
// the same id each observe a consistent prior state.
func (s *Store) ToggleCompletion(ctx context.Context, owner, id string) (model.Task, error) {
	row := s.db.QueryRowContext(ctx,
		"UPDATE tasks SET completed = NOT completed WHERE id = ? AND owner_id = ? RETURNING "+taskColumns,
		id, owner,
	)
	t, err := scanTask(row)
	if err == sql.ErrNoRows {
		return model.Task{}, ErrNotFound
	}
	if err != nil {
		return model.Task{}, err
	}
	return t, nil
}

// Delete permanently removes the task matching id and owner. The id is
// never reused: ids are random UUIDs, not a counter.
func (s *Store) Delete(ctx context.Context, owner, id string) error {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM tasks WHERE id = ? AND owner_id = ?",
		id, owner,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
