// handlers/handlers.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/aburayhan-bpi/assetwise-server/inventory"
	"github.com/aburayhan-bpi/assetwise-server/storage"
	"github.com/aburayhan-bpi/assetwise-server/utils"
	"github.com/aburayhan-bpi/assetwise-server/websocket"
)

// Handler carries the injected dependencies every endpoint needs: the
// store client, the lifecycle core and the activity hub.
type Handler struct {
	store *storage.Store
	inv   *inventory.Service
	hub   *websocket.Hub
}

func New(store *storage.Store, inv *inventory.Service, hub *websocket.Hub) *Handler {
	return &Handler{store: store, inv: inv, hub: hub}
}

// callerEmail returns the authenticated email from the request context.
func callerEmail(r *http.Request) string {
	email, _ := r.Context().Value("userEmail").(string)
	return email
}

func callerRole(r *http.Request) string {
	role, _ := r.Context().Value("userRole").(string)
	return role
}

// respondCoreError maps the lifecycle core's sentinel errors to HTTP.
func respondCoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, inventory.ErrNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "not found")
	case errors.Is(err, inventory.ErrOutOfStock):
		utils.RespondWithError(w, http.StatusConflict, "asset out of stock")
	case errors.Is(err, inventory.ErrInvalidTransition):
		utils.RespondWithError(w, http.StatusBadRequest, "invalid status transition")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "database operation failed")
	}
}
