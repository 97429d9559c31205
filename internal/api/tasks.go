package api

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tasktrack/internal/auth"
	"tasktrack/internal/model"
	"tasktrack/internal/store"
)

// writeStoreError maps the store's error taxonomy onto fixed status/message
// pairs. Raw faults are logged server-side and never reach the client.
func writeStoreError(c *gin.Context, err error) {
	var ve *store.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"message": ve.Msg})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Task not found"})
	default:
		log.Printf("task store error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
	}
}

// ListTasks handles GET /tasks. Unparseable page/limit values fall back to
// the defaults; an out-of-range page yields an empty list, never an error.
func (h *Handlers) ListTasks(c *gin.Context) {
	opts := model.ListOptions{
		Sort: c.DefaultQuery("sort", model.SortLatest),
	}
	if page, err := strconv.Atoi(c.Query("page")); err == nil {
		opts.Page = page
	}
	if limit, err := strconv.Atoi(c.Query("limit")); err == nil {
		opts.Limit = limit
	}
	switch c.Query("completed") {
	case "true":
		completed := true
		opts.Completed = &completed
	case "false":
		completed := false
		opts.Completed = &completed
	}

	page, err := h.store.List(c.Request.Context(), auth.Owner(c), opts)
	if err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

type createTaskRequest struct {
	Title string `json:"title" binding:"required"`
}

// CreateTask handles POST /tasks. Binding rejects bodies without a title
// before the store is involved.
func (h *Handlers) CreateTask(c *gin.Context) {
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "title is required"})
		return
	}
	task, err := h.store.Create(c.Request.Context(), auth.Owner(c), req.Title)
	if err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

// ToggleTask handles PATCH /tasks/:id, flipping the completed flag.
func (h *Handlers) ToggleTask(c *gin.Context) {
	task, err := h.store.ToggleCompletion(c.Request.Context(), auth.Owner(c), c.Param("id"))
	if err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

type renameTaskRequest struct {
	Title string `json:"title" binding:"required"`
}

// RenameTask handles PATCH /tasks/:id/title. The store enforces the
// minimum trimmed length.
func (h *Handlers) RenameTask(c *gin.Context) {
	var req renameTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "title is required"})
		return
	}
	task, err := h.store.Rename(c.Request.Context(), auth.Owner(c), c.Param("id"), req.Title)
	if err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// DeleteTask handles DELETE /tasks/:id.
func (h *Handlers) DeleteTask(c *gin.Context) {
	if err := h.store.Delete(c.Request.Context(), auth.Owner(c), c.Param("id")); err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}
