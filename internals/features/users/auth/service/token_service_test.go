package service

import (
	"testing"

	"github.com/google/uuid"

	"quizmaster_backend/internals/configs"
)

func TestIssueVerifyRoundTrip(t *testing.T) {
	configs.JWTSecret = "test-secret"

	userID := uuid.New()
	token, err := IssueToken(userID, "admin")
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	gotID, gotRole, err := VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken: %v", err)
	}
	if gotID != userID {
		t.Errorf("userID = %s, want %s", gotID, userID)
	}
	if gotRole != "admin" {
		t.Errorf("role = %q, want admin", gotRole)
	}
}

func TestVerifyTamperedToken(t *testing.T) {
	configs.JWTSecret = "test-secret"

	token, err := IssueToken(uuid.New(), "user")
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	tampered := token[:len(token)-2] + "xx"
	if _, _, err := VerifyToken(tampered); err == nil {
		t.Fatal("expected error for tampered token")
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	configs.JWTSecret = "secret-a"
	token, err := IssueToken(uuid.New(), "user")
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	configs.JWTSecret = "secret-b"
	if _, _, err := VerifyToken(token); err == nil {
		t.Fatal("expected error with different secret")
	}
}

func TestIssueWithoutSecret(t *testing.T) {
	configs.JWTSecret = ""
	if _, err := IssueToken(uuid.New(), "user"); err == nil {
		t.Fatal("expected error without JWT_SECRET")
	}
}
