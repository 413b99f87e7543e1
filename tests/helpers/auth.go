package helpers

import (
	"net/http"
	"testing"

	"github.com/gobodhi/tour-cms/internal/services"
)

// SessionCookie issues a signed session cookie for a user id, the way a
// successful GitHub callback would
func SessionCookie(t *testing.T, secret, userID string) *http.Cookie {
	t.Helper()

	token, err := services.NewSessionToken(secret, userID)
	if err != nil {
		t.Fatalf("Failed to issue session token: %v", err)
	}

	return &http.Cookie{
		Name:  services.SessionCookie,
		Value: token,
	}
}
