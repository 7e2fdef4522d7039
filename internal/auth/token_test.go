package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func newTestManager() *TokenManager {
	return NewTokenManager("test-secret", "fitness4all", 15*time.Minute, 7*24*time.Hour)
}

func TestTokenRoundTrip(t *testing.T) {
	manager := newTestManager()
	userID := uuid.New()
	refreshID := uuid.New()

	pair, err := manager.NewTokenPair(userID, refreshID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := manager.ParseAccessToken(pair.AccessToken)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.Subject != userID.String() {
		t.Fatalf("expected subject %s, got %s", userID, claims.Subject)
	}

	refreshClaims, err := manager.ParseRefreshToken(pair.RefreshToken)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if refreshClaims.ID != refreshID.String() {
		t.Fatalf("expected token id %s, got %s", refreshID, refreshClaims.ID)
	}
}

func TestTokenTypeMismatch(t *testing.T) {
	manager := newTestManager()

	pair, err := manager.NewTokenPair(uuid.New(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := manager.ParseAccessToken(pair.RefreshToken); err == nil {
		t.Fatal("a refresh token must not pass as an access token")
	}
	if _, err := manager.ParseRefreshToken(pair.AccessToken); err == nil {
		t.Fatal("an access token must not pass as a refresh token")
	}
}

func TestTokenWrongSecret(t *testing.T) {
	pair, err := newTestManager().NewTokenPair(uuid.New(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	other := NewTokenManager("other-secret", "fitness4all", time.Minute, time.Hour)
	if _, err := other.ParseAccessToken(pair.AccessToken); err == nil {
		t.Fatal("expected signature validation to fail")
	}
}

func TestHashTokenCompare(t *testing.T) {
	hash := HashToken("some-refresh-token")

	if !CompareTokenHash(hash, "some-refresh-token") {
		t.Fatal("expected hash to match its token")
	}
	if CompareTokenHash(hash, "another-token") {
		t.Fatal("expected mismatch for a different token")
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("correct horse battery")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := ComparePassword(hash, "correct horse battery"); err != nil {
		t.Fatalf("expected password to match: %v", err)
	}
	if err := ComparePassword(hash, "wrong"); err == nil {
		t.Fatal("expected mismatch error")
	}
}
