// handlers/health_handler_test.go
package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	gws "github.com/gorilla/websocket"

	"github.com/aburayhan-bpi/assetwise-server/config"
	"github.com/aburayhan-bpi/assetwise-server/utils"
	"github.com/aburayhan-bpi/assetwise-server/websocket"
)

func TestMain(m *testing.M) {
	config.JWTKey = []byte("test-secret")
	config.JWTExpiration = time.Hour
	os.Exit(m.Run())
}

func wsHandler() *Handler {
	return New(nil, nil, websocket.NewHub())
}

func TestServeWSRejectsUnauthenticated(t *testing.T) {
	t.Parallel()

	otherToken, err := utils.GenerateJWT("intruder@other.com", "Sam", "hr")
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	tests := []struct {
		name   string
		query  url.Values
		status int
	}{
		{"missing email", url.Values{"token": {otherToken}}, http.StatusBadRequest},
		{"missing token", url.Values{"email": {"hr@corp.com"}}, http.StatusUnauthorized},
		{"garbage token", url.Values{"email": {"hr@corp.com"}, "token": {"not-a-jwt"}}, http.StatusUnauthorized},
		{"token for another tenant", url.Values{"email": {"hr@corp.com"}, "token": {otherToken}}, http.StatusForbidden},
	}

	h := wsHandler()
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, "/ws?"+tt.query.Encode(), nil)
			rr := httptest.NewRecorder()
			h.ServeWS(rr, req)

			if rr.Code != tt.status {
				t.Errorf("status: got %d, want %d", rr.Code, tt.status)
			}
		})
	}
}

func TestServeWSAcceptsOwnTenant(t *testing.T) {
	t.Parallel()
	h := wsHandler()
	srv := httptest.NewServer(http.HandlerFunc(h.ServeWS))
	defer srv.Close()

	token, err := utils.GenerateJWT("hr@corp.com", "Jess", "hr")
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	q := url.Values{"email": {"hr@corp.com"}, "token": {token}}
	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "?" + q.Encode()

	conn, resp, err := gws.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	if resp.StatusCode != http.StatusSwitchingProtocols {
		t.Errorf("handshake status: got %d, want %d", resp.StatusCode, http.StatusSwitchingProtocols)
	}
}
