package store

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"tasktrack/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// mustCreate creates a task and nudges the clock so created_at values are
// strictly increasing even on coarse clocks.
func mustCreate(t *testing.T, s *Store, owner, title string) model.Task {
	t.Helper()
	task, err := s.Create(context.Background(), owner, title)
	if err != nil {
		t.Fatalf("create %q: %v", title, err)
	}
	time.Sleep(time.Millisecond)
	return task
}

func titles(tasks []model.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.Title
	}
	return out
}

func TestCreateDefaults(t *testing.T) {
	s := newTestStore(t)

	task := mustCreate(t, s, "owner-a", "Buy milk")
	if task.ID == "" {
		t.Fatal("expected an assigned id")
	}
	if task.Completed {
		t.Fatal("new task must start uncompleted")
	}
	if task.Owner != "owner-a" {
		t.Fatalf("owner = %q", task.Owner)
	}
	if task.CreatedAt.IsZero() {
		t.Fatal("expected createdAt to be set")
	}
}

func TestCreateRequiresTitle(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Create(context.Background(), "owner-a", "")
	if !IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestListPaginationAndSort(t *testing.T) {
	s := newTestStore(t)
	owner := "owner-a"
	mustCreate(t, s, owner, "Buy milk")
	mustCreate(t, s, owner, "Write report")
	mustCreate(t, s, owner, "Call mom")

	page, err := s.List(context.Background(), owner, model.ListOptions{Page: 1, Limit: 2, Sort: model.SortLatest})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	got := titles(page.Tasks)
	want := []string{"Call mom", "Write report"}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("page 1 = %v, want %v", got, want)
	}
	if page.Total != 3 {
		t.Fatalf("total = %d, want 3", page.Total)
	}
	if page.TotalPages != 2 {
		t.Fatalf("totalPages = %d, want 2", page.TotalPages)
	}

	page2, err := s.List(context.Background(), owner, model.ListOptions{Page: 2, Limit: 2})
	if err != nil {
		t.Fatalf("list page 2: %v", err)
	}
	if got := titles(page2.Tasks); len(got) != 1 || got[0] != "Buy milk" {
		t.Fatalf("page 2 = %v, want [Buy milk]", got)
	}

	oldest, err := s.List(context.Background(), owner, model.ListOptions{Limit: 10, Sort: model.SortOldest})
	if err != nil {
		t.Fatalf("list oldest: %v", err)
	}
	if got := titles(oldest.Tasks); got[0] != "Buy milk" {
		t.Fatalf("oldest first = %v", got)
	}
}

func TestListPagePastEndIsEmptyNotError(t *testing.T) {
	s := newTestStore(t)
	owner := "owner-a"
	mustCreate(t, s, owner, "only one")

	page, err := s.List(context.Background(), owner, model.ListOptions{Page: 99, Limit: 5})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(page.Tasks) != 0 {
		t.Fatalf("expected empty page, got %v", titles(page.Tasks))
	}
	if page.Total != 1 || page.TotalPages != 1 {
		t.Fatalf("total=%d totalPages=%d", page.Total, page.TotalPages)
	}
}

func TestListCompletedFilter(t *testing.T) {
	s := newTestStore(t)
	owner := "owner-a"
	milk := mustCreate(t, s, owner, "Buy milk")
	mustCreate(t, s, owner, "Write report")

	if _, err := s.ToggleCompletion(context.Background(), owner, milk.ID); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	done := true
	page, err := s.List(context.Background(), owner, model.ListOptions{Completed: &done, Limit: 10})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if got := titles(page.Tasks); len(got) != 1 || got[0] != "Buy milk" {
		t.Fatalf("completed filter = %v, want [Buy milk]", got)
	}
	if page.Total != 1 {
		t.Fatalf("filtered total = %d, want 1", page.Total)
	}

	open := false
	page, err = s.List(context.Background(), owner, model.ListOptions{Completed: &open, Limit: 10})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if got := titles(page.Tasks); len(got) != 1 || got[0] != "Write report" {
		t.Fatalf("open filter = %v, want [Write report]", got)
	}
}

func TestOwnerIsolation(t *testing.T) {
	s := newTestStore(t)
	theirs := mustCreate(t, s, "owner-b", "B's secret")

	// A task under another owner must be indistinguishable from a missing
	// one, for every single-task operation.
	if _, err := s.ToggleCompletion(context.Background(), "owner-a", theirs.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("toggle foreign task: %v, want ErrNotFound", err)
	}
	if _, err := s.Rename(context.Background(), "owner-a", theirs.ID, "stolen"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("rename foreign task: %v, want ErrNotFound", err)
	}
	if err := s.Delete(context.Background(), "owner-a", theirs.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("delete foreign task: %v, want ErrNotFound", err)
	}

	page, err := s.List(context.Background(), "owner-a", model.ListOptions{Limit: 10})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(page.Tasks) != 0 {
		t.Fatalf("owner-a sees %v", titles(page.Tasks))
	}

	// The untouched task is still intact for its owner.
	kept, err := s.Rename(context.Background(), "owner-b", theirs.ID, "still mine")
	if err != nil {
		t.Fatalf("owner-b rename: %v", err)
	}
	if kept.Title != "still mine" {
		t.Fatalf("title = %q", kept.Title)
	}
}

func TestToggleIsItsOwnInverse(t *testing.T) {
	s := newTestStore(t)
	owner := "owner-a"
	task := mustCreate(t, s, owner, "Buy milk")

	once, err := s.ToggleCompletion(context.Background(), owner, task.ID)
	if err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	if !once.Completed {
		t.Fatal("first toggle should complete the task")
	}

	twice, err := s.ToggleCompletion(context.Background(), owner, task.ID)
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if twice.Completed != task.Completed {
		t.Fatal("double toggle must restore the original completed value")
	}
	if !twice.CreatedAt.Equal(task.CreatedAt) {
		t.Fatalf("createdAt changed: %v -> %v", task.CreatedAt, twice.CreatedAt)
	}
}

func TestConcurrentTogglesAreNotLost(t *testing.T) {
	s := newTestStore(t)
	owner := "owner-a"
	task := mustCreate(t, s, owner, "Buy milk")

	// An even number of flips must land back on the original value: the
	// flip is a single UPDATE, so no flip can overwrite another.
	const n = 16
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.ToggleCompletion(context.Background(), owner, task.ID); err != nil {
				t.Errorf("toggle: %v", err)
			}
		}()
	}
	wg.Wait()

	page, err := s.List(context.Background(), owner, model.ListOptions{Limit: 1})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if page.Tasks[0].Completed {
		t.Fatalf("after %d toggles completed = true, want false", n)
	}
}

func TestRenameChangesOnlyTitle(t *testing.T) {
	s := newTestStore(t)
	owner := "owner-a"
	task := mustCreate(t, s, owner, "Buy milk")

	renamed, err := s.Rename(context.Background(), owner, task.ID, "Buy oat milk")
	if err != nil {
		t.Fatalf("rename: %v", err)
	}
	if renamed.Title != "Buy oat milk" {
		t.Fatalf("title = %q", renamed.Title)
	}
	if renamed.ID != task.ID || renamed.Owner != task.Owner || !renamed.CreatedAt.Equal(task.CreatedAt) {
		t.Fatalf("rename touched immutable fields: %+v vs %+v", renamed, task)
	}
}

func TestRenameRejectsShortTitles(t *testing.T) {
	s := newTestStore(t)
	owner := "owner-a"
	task := mustCreate(t, s, owner, "Buy milk")

	for _, title := range []string{"", "ab", "  ab  ", " \t "} {
		if _, err := s.Rename(context.Background(), owner, task.ID, title); !IsValidation(err) {
			t.Fatalf("rename %q: %v, want ValidationError", title, err)
		}
	}

	// The task is untouched after rejected renames.
	page, _ := s.List(context.Background(), owner, model.ListOptions{Limit: 1})
	if page.Tasks[0].Title != "Buy milk" {
		t.Fatalf("title mutated to %q", page.Tasks[0].Title)
	}
}

func TestDeleteIsTerminal(t *testing.T) {
	s := newTestStore(t)
	owner := "owner-a"
	task := mustCreate(t, s, owner, "Buy milk")

	if err := s.Delete(context.Background(), owner, task.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	page, err := s.List(context.Background(), owner, model.ListOptions{Limit: 10})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, got := range page.Tasks {
		if got.ID == task.ID {
			t.Fatal("deleted id still listed")
		}
	}

	if err := s.Delete(context.Background(), owner, task.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete: %v, want ErrNotFound", err)
	}
}
