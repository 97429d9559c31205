package store

import (
	"context"
	"errors"
	"testing"
)

func TestCreateUserAndAuthenticate(t *testing.T) {
	s := newTestStore(t)

	u, err := s.CreateUser(context.Background(), "Ada", "Ada@Example.com", "correct horse")
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if u.Email != "ada@example.com" {
		t.Fatalf("email not normalized: %q", u.Email)
	}
	if u.PasswordHash == "correct horse" {
		t.Fatal("password stored in clear")
	}

	got, err := s.Authenticate(context.Background(), "ada@example.com", "correct horse")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if got.ID != u.ID {
		t.Fatalf("id = %q, want %q", got.ID, u.ID)
	}
}

func TestAuthenticateRejectsBadCredentials(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.CreateUser(context.Background(), "Ada", "ada@example.com", "correct horse"); err != nil {
		t.Fatalf("create user: %v", err)
	}

	if _, err := s.Authenticate(context.Background(), "ada@example.com", "wrong"); !errors.Is(err, ErrBadCredentials) {
		t.Fatalf("wrong password: %v", err)
	}
	if _, err := s.Authenticate(context.Background(), "nobody@example.com", "correct horse"); !errors.Is(err, ErrBadCredentials) {
		t.Fatalf("unknown email: %v", err)
	}
}

func TestCreateUserRejectsDuplicateEmail(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.CreateUser(context.Background(), "Ada", "ada@example.com", "correct horse"); err != nil {
		t.Fatalf("create user: %v", err)
	}
	if _, err := s.CreateUser(context.Background(), "Imposter", "ADA@example.com", "other pass"); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("duplicate email: %v, want ErrEmailTaken", err)
	}
}
