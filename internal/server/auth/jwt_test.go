package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/taskflow/taskflow/internal/common"
)

func TestGenerateAndParse_Success(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")
	userID := "user-123"

	tok, err := GenerateToken(userID, "alice@example.com", secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	gotUserID, err := GetUserIDFromToken(tok, secret)
	if err != nil {
		t.Fatalf("GetUserIDFromToken error: %v", err)
	}
	if gotUserID != userID {
		t.Fatalf("userID mismatch: got %q want %q", gotUserID, userID)
	}
}

func TestGetUserIDFromToken_Expired(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")

	tok, err := GenerateToken("u1", "u1@example.com", secret, -1*time.Second)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	_, err = GetUserIDFromToken(tok, secret)
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected common.ErrInvalidToken for expired token, got %v", err)
	}
}

func TestGetUserIDFromToken_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := GenerateToken("u2", "u2@example.com", []byte("right-secret"), time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	_, err = GetUserIDFromToken(tok, []byte("wrong-secret"))
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected common.ErrInvalidToken for invalid signature, got %v", err)
	}
}

func TestGetUserIDFromToken_MalformedString(t *testing.T) {
	t.Parallel()

	_, err := GetUserIDFromToken("not.a.jwt", []byte("k"))
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected common.ErrInvalidToken for malformed token, got %v", err)
	}
}

func TestGetUserIDFromToken_TamperedCharacter(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")
	tok, err := GenerateToken("u3", "u3@example.com", secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	// Flip one character of the payload segment.
	i := strings.Index(tok, ".") + 1
	altered := tok[:i]
	if tok[i] == 'A' {
		altered += "B"
	} else {
		altered += "A"
	}
	altered += tok[i+1:]

	if _, err := GetUserIDFromToken(altered, secret); !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected common.ErrInvalidToken for tampered token, got %v", err)
	}
}

// Failure modes must be indistinguishable through the returned error.
func TestGetUserIDFromToken_UniformError(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")

	expired, err := GenerateToken("u4", "u4@example.com", secret, -1*time.Second)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}
	forged, err := GenerateToken("u4", "u4@example.com", []byte("other"), time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	for _, tok := range []string{expired, forged, "garbage"} {
		_, err := GetUserIDFromToken(tok, secret)
		if err == nil || err.Error() != common.ErrInvalidToken.Error() {
			t.Fatalf("expected uniform %v, got %v", common.ErrInvalidToken, err)
		}
	}
}

func TestGenerateToken_ValidAtBoundary(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")

	// Comfortably inside the validity window.
	tok, err := GenerateToken("u5", "u5@example.com", secret, 2*time.Second)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}
	if _, err := GetUserIDFromToken(tok, secret); err != nil {
		t.Fatalf("token should still be valid: %v", err)
	}
}
