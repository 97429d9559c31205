// Package view holds the client-side page state and its synchronization
// with the server.
package view

import (
	"context"

	"tasktrack/internal/model"
)

// Service is the backend seam the Reconciler talks through. The HTTP
// client implements it; tests substitute an in-memory fake.
type Service interface {
	// ListTasks returns one page of the caller's tasks.
	ListTasks(ctx context.Context, opts model.ListOptions) (model.Page, error)

	// CreateTask creates an uncompleted task and returns it.
	CreateTask(ctx context.Context, title string) (model.Task, error)

	// ToggleTask flips the completed flag and returns the updated task.
	ToggleTask(ctx context.Context, id string) (model.Task, error)

	// RenameTask replaces the title and returns the updated task.
	RenameTask(ctx context.Context, id, title string) (model.Task, error)

	// DeleteTask permanently removes the task.
	DeleteTask(ctx context.Context, id string) error
}
