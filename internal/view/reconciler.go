package view

import (
	"context"
	"errors"
	"strings"

	"tasktrack/internal/model"
)

// ErrTitleTooShort is reported when a title fails the local length check.
// No network call is made in that case.
var ErrTitleTooShort = errors.New("title must be at least 3 characters")

// MinTitleLen mirrors the store's rename invariant so bad titles are
// rejected before they cost a round trip.
const MinTitleLen = 3

// Reconciler owns the displayed page of tasks and keeps it in sync with
// the server. Toggle and Delete apply optimistically and roll back to a
// pre-mutation snapshot on failure; Add and Rename wait for the server.
//
// Methods block until the underlying call resolves; callers serialize
// dependent actions by ordinary sequencing. It is not safe for concurrent
// use from multiple goroutines.
type Reconciler struct {
	svc Service

	tasks      []model.Task
	page       int
	totalPages int
	total      int
	completed  *bool
	sort       string
	limit      int
	loading    bool

	// Inline edit state: at most one task at a time.
	editID string
	draft  string
}

// New returns a Reconciler with default pagination and no filter. Call
// Refresh to load the first page.
func New(svc Service) *Reconciler {
	return &Reconciler{
		svc:   svc,
		page:  model.DefaultPage,
		limit: model.DefaultLimit,
		sort:  model.SortLatest,
	}
}

// Tasks returns a copy of the current page, in server order.
func (r *Reconciler) Tasks() []model.Task {
	return append([]model.Task(nil), r.tasks...)
}

// Page returns the current page number.
func (r *Reconciler) Page() int { return r.page }

// TotalPages returns the page count reported by the last refresh.
func (r *Reconciler) TotalPages() int { return r.totalPages }

// Total returns the matching-task count reported by the last refresh.
func (r *Reconciler) Total() int { return r.total }

// Loading reports whether a refresh is in flight.
func (r *Reconciler) Loading() bool { return r.loading }

// Filter returns the current completion filter; nil means no filter.
func (r *Reconciler) Filter() *bool { return r.completed }

// Sort returns the current sort order.
func (r *Reconciler) Sort() string { return r.sort }

func (r *Reconciler) options() model.ListOptions {
	return model.ListOptions{
		Page:      r.page,
		Limit:     r.limit,
		Completed: r.completed,
		Sort:      r.sort,
	}
}

// Refresh fetches the current page from the server and replaces the local
// list. On failure the previously rendered state is left untouched.
func (r *Reconciler) Refresh(ctx context.Context) error {
	r.loading = true
	defer func() { r.loading = false }()

	page, err := r.svc.ListTasks(ctx, r.options())
	if err != nil {
		return err
	}
	r.tasks = page.Tasks
	r.totalPages = page.TotalPages
	r.total = page.Total
	return nil
}

// SetPage moves to page p (clamped to 1) and refreshes.
func (r *Reconciler) SetPage(ctx context.Context, p int) error {
	if p < 1 {
		p = 1
	}
	r.page = p
	return r.Refresh(ctx)
}

// NextPage advances one page unless already on the last known page.
func (r *Reconciler) NextPage(ctx context.Context) error {
	if r.totalPages > 0 && r.page >= r.totalPages {
		return nil
	}
	return r.SetPage(ctx, r.page+1)
}

// PrevPage goes back one page unless already on the first.
func (r *Reconciler) PrevPage(ctx context.Context) error {
	if r.page <= 1 {
		return nil
	}
	return r.SetPage(ctx, r.page-1)
}

// SetFilter replaces the completion filter, resets to page 1 and refreshes.
func (r *Reconciler) SetFilter(ctx context.Context, completed *bool) error {
	r.completed = completed
	r.page = 1
	return r.Refresh(ctx)
}

// SetSort replaces the sort order, resets to page 1 and refreshes.
func (r *Reconciler) SetSort(ctx context.Context, sort string) error {
	r.sort = sort
	r.page = 1
	return r.Refresh(ctx)
}

// Add creates a task, then jumps back to page 1 and refreshes so the new
// task is visible. Titles shorter than MinTitleLen after trimming are
// rejected locally without a network call; on server failure the caller's
// pending input stays intact for correction.
func (r *Reconciler) Add(ctx context.Context, title string) error {
	if len(strings.TrimSpace(title)) < MinTitleLen {
		return ErrTitleTooShort
	}
	if _, err := r.svc.CreateTask(ctx, title); err != nil {
		return err
	}
	r.page = 1
	return r.Refresh(ctx)
}

// snapshot captures the list by value; restoring it undoes any in-place
// optimistic mutation wholesale.
func (r *Reconciler) snapshot() []model.Task {
	return append([]model.Task(nil), r.tasks...)
}

// Toggle optimistically flips the task's completed flag, then confirms with
// the server. On failure the list is restored to the snapshot taken before
// the flip. The server's returned task is not re-applied: only the boolean
// differs, and it already matches.
func (r *Reconciler) Toggle(ctx context.Context, id string) error {
	prev := r.snapshot()
	for i := range r.tasks {
		if r.tasks[i].ID == id {
			r.tasks[i].Completed = !r.tasks[i].Completed
			break
		}
	}
	if _, err := r.svc.ToggleTask(ctx, id); err != nil {
		r.tasks = prev
		return err
	}
	return nil
}

// Delete optimistically removes the task, then confirms with the server.
// Success triggers a refresh so pagination counts are fixed up; failure
// restores the snapshot.
func (r *Reconciler) Delete(ctx context.Context, id string) error {
	prev := r.snapshot()
	kept := r.tasks[:0:0]
	for _, t := range r.tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	r.tasks = kept
	if err := r.svc.DeleteTask(ctx, id); err != nil {
		r.tasks = prev
		return err
	}
	return r.Refresh(ctx)
}

// Rename is not optimistic: it waits for the server, then replaces the
// matching task in place with the returned value. The length check mirrors
// the store's invariant and short-circuits locally.
func (r *Reconciler) Rename(ctx context.Context, id, title string) error {
	if len(strings.TrimSpace(title)) < MinTitleLen {
		return ErrTitleTooShort
	}
	updated, err := r.svc.RenameTask(ctx, id, title)
	if err != nil {
		return err
	}
	for i := range r.tasks {
		if r.tasks[i].ID == id {
			r.tasks[i] = updated
			break
		}
	}
	return nil
}
