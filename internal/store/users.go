package store

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"tasktrack/internal/model"
)

// CreateUser registers a new account. The password is stored as a bcrypt
// hash and never leaves this package in clear form.
func (s *Store) CreateUser(ctx context.Context, name, email, password string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || email == "" || password == "" {
		return model.User{}, &ValidationError{Msg: "name, email and password are required"}
	}

	var exists int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM users WHERE email = ?", email).Scan(&exists)
	if err != nil {
		return model.User{}, err
	}
	if exists > 0 {
		return model.User{}, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return model.User{}, err
	}

	u := model.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	_, err = s.db.ExecContext(ctx,
		"INSERT INTO users (id, name, email, password_hash, created_at) VALUES (?, ?, ?, ?, ?)",
		u.ID, u.Name, u.Email, u.PasswordHash, u.CreatedAt.UnixNano(),
	)
	if err != nil {
		return model.User{}, err
	}
	return u, nil
}

// Authenticate checks email and password and returns the matching user.
// Wrong email and wrong password both yield ErrBadCredentials.
func (s *Store) Authenticate(ctx context.Context, email, password string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var u model.User
	var createdAt int64
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, email, password_hash, created_at FROM users WHERE email = ?",
		email,
	).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &createdAt)
	if err == sql.ErrNoRows {
		return model.User{}, ErrBadCredentials
	}
	if err != nil {
		return model.User{}, err
	}
	u.CreatedAt = time.Unix(0, createdAt).UTC()

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return model.User{}, ErrBadCredentials
	}
	return u, nil
}
