// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"tasktrack/internal/model"
	"tasktrack/internal/store"
)

// FakeService is an in-memory implementation of view.Service. It mirrors
// the server's pagination, filtering and validation rules so reconciler
// tests run without a network or a database.
type FakeService struct {
	tasks  []model.Task
	nextID int
	now    time.Time

	// Per-method error injection.
	ListErr   error
	CreateErr error
	ToggleErr error
	RenameErr error
	DeleteErr error

	// Call counters, for asserting that local validation short-circuits.
	ListCalls   int
	CreateCalls int
	ToggleCalls int
	RenameCalls int
	DeleteCalls int
}

// NewFakeService returns an empty FakeService.
func NewFakeService() *FakeService {
	return &FakeService{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
}

// Seed adds a task directly, bypassing validation. Later seeds get later
// creation times.
func (f *FakeService) Seed(title string, completed bool) model.Task {
	f.nextID++
	f.now = f.now.Add(time.Second)
	t := model.Task{
		ID:        fmt.Sprintf("task-%d", f.nextID),
		Title:     title,
		Completed: completed,
		CreatedAt: f.now,
	}
	f.tasks = append(f.tasks, t)
	return t
}

// All returns every stored task, unsorted and unpaginated.
func (f *FakeService) All() []model.Task {
	return append([]model.Task(nil), f.tasks...)
}

// ListTasks implements view.Service.
func (f *FakeService) ListTasks(ctx context.Context, opts model.ListOptions) (model.Page, error) {
	f.ListCalls++
	if f.ListErr != nil {
		return model.Page{}, f.ListErr
	}
	opts = opts.Normalize()

	matched := []model.Task{}
	for _, t := range f.tasks {
		if opts.Completed != nil && t.Completed != *opts.Completed {
			continue
		}
		matched = append(matched, t)
	}
	sort.SliceStable(matched, func(i, j int) bool {
		if opts.Sort == model.SortOldest {
			return matched[i].CreatedAt.Before(matched[j].CreatedAt)
		}
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := len(matched)
	start := (opts.Page - 1) * opts.Limit
	if start > total {
		start = total
	}
	end := start + opts.Limit
	if end > total {
		end = total
	}

	return model.Page{
		Tasks:      append([]model.Task{}, matched[start:end]...),
		Page:       opts.Page,
		TotalPages: (total + opts.Limit - 1) / opts.Limit,
		Total:      total,
	}, nil
}

// CreateTask implements view.Service.
func (f *FakeService) CreateTask(ctx context.Context, title string) (model.Task, error) {
	f.CreateCalls++
	if f.CreateErr != nil {
		return model.Task{}, f.CreateErr
	}
	if title == "" {
		return model.Task{}, &store.ValidationError{Msg: "title is required"}
	}
	return f.Seed(title, false), nil
}

// ToggleTask implements view.Service.
func (f *FakeService) ToggleTask(ctx context.Context, id string) (model.Task, error) {
	f.ToggleCalls++
	if f.ToggleErr != nil {
		return model.Task{}, f.ToggleErr
	}
	for i := range f.tasks {
		if f.tasks[i].ID == id {
			f.tasks[i].Completed = !f.tasks[i].Completed
			return f.tasks[i], nil
		}
	}
	return model.Task{}, store.ErrNotFound
}

// RenameTask implements view.Service.
func (f *FakeService) RenameTask(ctx context.Context, id, title string) (model.Task, error) {
	f.RenameCalls++
	if f.RenameErr != nil {
		return model.Task{}, f.RenameErr
	}
	if len(strings.TrimSpace(title)) < store.MinTitleLen {
		return model.Task{}, &store.ValidationError{Msg: "title too short"}
	}
	for i := range f.tasks {
		if f.tasks[i].ID == id {
			f.tasks[i].Title = title
			return f.tasks[i], nil
		}
	}
	return model.Task{}, store.ErrNotFound
}

// DeleteTask implements view.Service.
func (f *FakeService) DeleteTask(ctx context.Context, id string) error {
	f.DeleteCalls++
	if f.DeleteErr != nil {
		return f.DeleteErr
	}
	for i := range f.tasks {
		if f.tasks[i].ID == id {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}
