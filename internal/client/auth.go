package client

import (
	"context"
	"net/http"

	"tasktrack/internal/model"
)

// Session is the result of signing up or logging in.
type Session struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

// Signup registers a new account and returns its session.
func (c *Client) Signup(ctx context.Context, name, email, password string) (Session, error) {
	var s Session
	err := c.do(ctx, http.MethodPost, "/auth/signup", map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	}, &s)
	return s, err
}

// Login authenticates an existing account and returns its session.
func (c *Client) Login(ctx context.Context, email, password string) (Session, error) {
	var s Session
	err := c.do(ctx, http.MethodPost, "/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, &s)
	return s, err
}
