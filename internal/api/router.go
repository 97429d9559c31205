// Package api wires the REST surface over the task store.
package api

import (
	"github.com/gin-gonic/gin"

	"tasktrack/internal/auth"
	"tasktrack/internal/store"
)

// Handlers carries the dependencies shared by all route handlers.
type Handlers struct {
	store  *store.Store
	tokens *auth.Tokens
}

// NewRouter builds the gin engine with all routes attached. The /tasks
// routes sit behind the auth middleware; the store itself never sees an
// unauthenticated request.
func NewRouter(s *store.Store, tokens *auth.Tokens) *gin.Engine {
	h := &Handlers{store: s, tokens: tokens}

	r := gin.Default()

	r.POST("/auth/signup", h.Signup)
	r.POST("/auth/login", h.Login)

	tasks := r.Group("/tasks", auth.Middleware(tokens))
	tasks.GET("", h.ListTasks)
	tasks.POST("", h.CreateTask)
	tasks.PATCH("/:id", h.ToggleTask)
	tasks.PATCH("/:id/title", h.RenameTask)
	tasks.DELETE("/:id", h.DeleteTask)

	return r
}
