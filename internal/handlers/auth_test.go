package handlers

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"example.com/debt-payoff-planner/internal/auth"
	"example.com/debt-payoff-planner/internal/models"
)

// TestNormalizeEmail проверяет нормализацию email.
func TestNormalizeEmail(t *testing.T) {
	if got := normalizeEmail("  User@Example.COM "); got != "user@example.com" {
		t.Fatalf("expected user@example.com, got %q", got)
	}
}

// TestRefreshUsable проверяет условия годности сохраненного refresh-токена.
func TestRefreshUsable(t *testing.T) {
	userID := uuid.New()
	raw := "refresh-token-value"
	stored := models.RefreshToken{
		UserID:    userID,
		TokenHash: auth.HashToken(raw),
		ExpiresAt: time.Now().Add(time.Hour),
	}

	if !refreshUsable(stored, userID, raw) {
		t.Fatal("expected token to be usable")
	}

	revokedAt := time.Now()
	revoked := stored
	revoked.RevokedAt = &revokedAt
	if refreshUsable(revoked, userID, raw) {
		t.Fatal("expected revoked token to be rejected")
	}

	expired := stored
	expired.ExpiresAt = time.Now().Add(-time.Minute)
	if refreshUsable(expired, userID, raw) {
		t.Fatal("expected expired token to be rejected")
	}

	if refreshUsable(stored, uuid.New(), raw) {
		t.Fatal("expected foreign token to be rejected")
	}

	if refreshUsable(stored, userID, "another-token") {
		t.Fatal("expected hash mismatch to be rejected")
	}
}

// TestNormalizeName проверяет нормализацию имени пользователя.
func TestNormalizeName(t *testing.T) {
	if got := normalizeName(nil); got != nil {
		t.Fatalf("expected nil, got %v", *got)
	}

	empty := "   "
	if got := normalizeName(&empty); got != nil {
		t.Fatalf("expected nil for blank name, got %q", *got)
	}

	raw := "  Alex  "
	got := normalizeName(&raw)
	if got == nil || *got != "Alex" {
		t.Fatalf("expected Alex, got %v", got)
	}
}
