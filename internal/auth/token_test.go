package auth

import (
	"errors"
	"testing"
)

func TestIssueAndParse(t *testing.T) {
	tokens := NewTokens("test-secret")

	raw, err := tokens.Issue("user-1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	userID, err := tokens.Parse(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if userID != "user-1" {
		t.Fatalf("userID = %q, want user-1", userID)
	}
}

func TestParseRejectsForgedToken(t *testing.T) {
	raw, err := NewTokens("secret-a").Issue("user-1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := NewTokens("secret-b").Parse(raw); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("parse with wrong secret: %v, want ErrInvalidToken", err)
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	if _, err := NewTokens("secret").Parse("not-a-token"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("parse garbage: %v, want ErrInvalidToken", err)
	}
}
