// middleware/auth_test.go
package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/aburayhan-bpi/assetwise-server/config"
	"github.com/aburayhan-bpi/assetwise-server/utils"
)

func TestMain(m *testing.M) {
	config.JWTKey = []byte("test-secret")
	config.JWTExpiration = time.Hour
	os.Exit(m.Run())
}

func TestAuthMiddlewareRejectsUnauthenticated(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		headers map[string]string
	}{
		{"no authorization header", nil},
		{"malformed header", map[string]string{"Authorization": "token abc"}},
		{"garbage token", map[string]string{"Authorization": "Bearer not-a-jwt"}},
		// An Upgrade header must not stand in for credentials; the
		// websocket handshake authenticates separately on its own route.
		{"upgrade header without token", map[string]string{
			"Upgrade":    "websocket",
			"Connection": "Upgrade",
		}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			reached := false
			wrapped := AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				reached = true
			}))

			req := httptest.NewRequest(http.MethodGet, "/users", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			rr := httptest.NewRecorder()
			wrapped.ServeHTTP(rr, req)

			if reached {
				t.Fatal("handler was reached without valid credentials")
			}
			if rr.Code != http.StatusUnauthorized {
				t.Errorf("status: got %d, want %d", rr.Code, http.StatusUnauthorized)
			}
		})
	}
}

func TestAuthMiddlewarePassesClaims(t *testing.T) {
	t.Parallel()
	token, err := utils.GenerateJWT("hr@corp.com", "Jess", "hr")
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	var gotEmail, gotRole string
	wrapped := AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotEmail, _ = r.Context().Value("userEmail").(string)
		gotRole, _ = r.Context().Value("userRole").(string)
	}))

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	wrapped.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rr.Code, http.StatusOK)
	}
	if gotEmail != "hr@corp.com" {
		t.Errorf("userEmail: got %q, want %q", gotEmail, "hr@corp.com")
	}
	if gotRole != "hr" {
		t.Errorf("userRole: got %q, want %q", gotRole, "hr")
	}
}
