// handlers/health_handler.go
package handlers

import (
	"net/http"
	"time"

	"github.com/aburayhan-bpi/assetwise-server/utils"
)

var startTime = time.Now()

// Root is the liveness string for the bare path.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("AssetWise server is running.."))
}

// HealthCheck reports process health.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
		"uptime":    time.Since(startTime).String(),
	})
}

// ServeWS upgrades a dashboard connection for the tenant in the query.
// Browsers cannot set headers on a websocket handshake, so the token
// rides in the query string instead of an Authorization header.
func (h *Handler) ServeWS(w http.ResponseWriter, r *http.Request) {
	tenant := r.URL.Query().Get("email")
	if tenant == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "email required")
		return
	}

	claims, err := utils.ValidateJWT(r.URL.Query().Get("token"))
	if err != nil || claims == nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "unauthorized access")
		return
	}
	if claims.Email != tenant {
		utils.RespondWithError(w, http.StatusForbidden, "forbidden")
		return
	}

	h.hub.ServeWS(w, r, tenant)
}
