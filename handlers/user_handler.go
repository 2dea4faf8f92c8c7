// handlers/user_handler.go
package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/aburayhan-bpi/assetwise-server/inventory"
	"github.com/aburayhan-bpi/assetwise-server/models"
	"github.com/aburayhan-bpi/assetwise-server/utils"
)

// RegisterEmployee upserts an employee account by email. Registering an
// existing email returns the existing record with 200.
func (h *Handler) RegisterEmployee(w http.ResponseWriter, r *http.Request) {
	h.registerUser(w, r, "employee")
}

// RegisterHR upserts an HR account by email.
func (h *Handler) RegisterHR(w http.ResponseWriter, r *http.Request) {
	h.registerUser(w, r, "hr")
}

func (h *Handler) registerUser(w http.ResponseWriter, r *http.Request, defaultRole string) {
	var user models.User
	if err := utils.ParseJSON(r, &user); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid payload")
		return
	}

	user.Email = strings.TrimSpace(user.Email)
	if user.Email == "" || !strings.Contains(user.Email, "@") {
		utils.RespondWithError(w, http.StatusBadRequest, "valid email required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	existing, err := h.store.UserByEmail(ctx, user.Email)
	if err == nil {
		utils.RespondWithJSON(w, http.StatusOK, existing)
		return
	}
	if !errors.Is(err, inventory.ErrNotFound) {
		log.Printf("user lookup error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "database operation failed")
		return
	}

	if user.Role == "" {
		user.Role = defaultRole
	}
	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now().UTC()

	if err := h.store.InsertUser(ctx, &user); err != nil {
		log.Printf("user insert error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to create user")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, user)
}

// ListUsers returns all users.
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	users, err := h.store.ListUsers(ctx)
	if err != nil {
		log.Printf("users Find error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "database query failed")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, users)
}

// UpdateHR applies a partial update to an HR account: package, limit and
// company photo.
func (h *Handler) UpdateHR(w http.ResponseWriter, r *http.Request) {
	userID, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid user id format")
		return
	}

	var req struct {
		Package      *string `json:"package,omitempty"`
		Limit        *int    `json:"limit,omitempty"`
		CompanyPhoto *string `json:"companyPhoto,omitempty"`
	}
	if err := utils.ParseJSON(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid payload")
		return
	}

	set := bson.M{}
	if req.Package != nil {
		set["package"] = *req.Package
	}
	if req.Limit != nil {
		if *req.Limit < 0 {
			utils.RespondWithError(w, http.StatusBadRequest, "limit must not be negative")
			return
		}
		set["limit"] = *req.Limit
	}
	if req.CompanyPhoto != nil {
		set["companyPhoto"] = *req.CompanyPhoto
	}
	if len(set) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "no fields to update")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := h.store.UpdateUser(ctx, userID, set); err != nil {
		respondCoreError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "updated"})
}

// UpdateName changes a user's display name.
func (h *Handler) UpdateName(w http.ResponseWriter, r *http.Request) {
	userID, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid user id format")
		return
	}

	var req struct {
		Name string `json:"name"`
	}
	if err := utils.ParseJSON(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "name required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := h.store.UpdateUser(ctx, userID, bson.M{"name": req.Name}); err != nil {
		respondCoreError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "updated"})
}
