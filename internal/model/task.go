// Package model holds the types shared by the store, the HTTP surface,
// and the client.
package model

import "time"

// Task is the sole entity. ID and Owner are assigned at creation and never
// change; CreatedAt is the sole sort key.
type Task struct {
	ID        string    `json:"id"`
	Owner     string    `json:"-"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
}

// Sort orders for listing tasks.
const (
	SortLatest = "latest"
	SortOldest = "oldest"
)

// Default pagination values applied when a request leaves them unset.
const (
	DefaultPage  = 1
	DefaultLimit = 5
)

// ListOptions narrows and pages a listing. Completed nil means no
// completion filter.
type ListOptions struct {
	Page      int
	Limit     int
	Completed *bool
	Sort      string
}

// Normalize fills zero values with defaults and clamps out-of-range input.
func (o ListOptions) Normalize() ListOptions {
	if o.Page < 1 {
		o.Page = DefaultPage
	}
	if o.Limit < 1 {
		o.Limit = DefaultLimit
	}
	if o.Sort != SortOldest {
		o.Sort = SortLatest
	}
	return o
}

// Page is a bounded, ordered slice of one owner's tasks plus pagination
// metadata. Derived per request, never persisted.
type Page struct {
	Tasks      []Task `json:"tasks"`
	Page       int    `json:"page"`
	TotalPages int    `json:"totalPages"`
	Total      int    `json:"total"`
}
