// handlers/jwt_handler.go
package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/aburayhan-bpi/assetwise-server/utils"
)

// IssueToken signs a bearer token for the identity in the request body.
func (h *Handler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Email string `json:"email"`
		Name  string `json:"name"`
		Role  string `json:"role"`
	}
	if err := utils.ParseJSON(r, &payload); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid payload")
		return
	}

	payload.Email = strings.TrimSpace(payload.Email)
	if payload.Email == "" || !strings.Contains(payload.Email, "@") {
		utils.RespondWithError(w, http.StatusBadRequest, "valid email required")
		return
	}

	token, err := utils.GenerateJWT(payload.Email, payload.Name, payload.Role)
	if err != nil {
		log.Printf("JWT generation error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to generate token")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"token": token})
}
