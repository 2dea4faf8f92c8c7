// handlers/team_handler.go
package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/aburayhan-bpi/assetwise-server/inventory"
	"github.com/aburayhan-bpi/assetwise-server/models"
	"github.com/aburayhan-bpi/assetwise-server/utils"
)

// AddEmployee adds one employee to the caller's team.
func (h *Handler) AddEmployee(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Email string `json:"email"`
	}
	if err := utils.ParseJSON(r, &payload); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if payload.Email == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "email required")
		return
	}

	h.addMembers(w, r, []string{payload.Email})
}

// AddSelectedEmployees adds a batch of employees to the caller's team.
func (h *Handler) AddSelectedEmployees(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Emails []string `json:"emails"`
	}
	if err := utils.ParseJSON(r, &payload); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if len(payload.Emails) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "emails required")
		return
	}

	h.addMembers(w, r, payload.Emails)
}

// addMembers creates the team lazily on first use, appends only the
// members not already present and stamps affiliatedWith on those.
func (h *Handler) addMembers(w http.ResponseWriter, r *http.Request, emails []string) {
	hrEmail := callerEmail(r)
	if role := callerRole(r); role != "hr" && role != "admin" {
		utils.RespondWithError(w, http.StatusForbidden, "insufficient permissions")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	team, err := h.store.TeamByHREmail(ctx, hrEmail)
	if err != nil && !errors.Is(err, inventory.ErrNotFound) {
		log.Printf("team lookup error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "database query failed")
		return
	}

	existing := make(map[string]bool)
	if team != nil {
		for _, m := range team.Members {
			existing[m.Email] = true
		}
	}

	var newMembers []models.TeamMember
	for _, email := range emails {
		if existing[email] {
			continue
		}
		user, err := h.store.UserByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, inventory.ErrNotFound) {
				utils.RespondWithError(w, http.StatusNotFound, "user not found: "+email)
				return
			}
			log.Printf("user lookup error: %v", err)
			utils.RespondWithError(w, http.StatusInternalServerError, "database query failed")
			return
		}
		// A member may belong to at most one team at a time.
		if user.AffiliatedWith != "" && user.AffiliatedWith != hrEmail {
			utils.RespondWithError(w, http.StatusBadRequest, "user already belongs to another team: "+email)
			return
		}
		newMembers = append(newMembers, models.TeamMember{
			UserID: user.ID,
			Email:  user.Email,
			Name:   user.Name,
		})
		existing[email] = true
	}

	if len(newMembers) == 0 {
		utils.RespondWithJSON(w, http.StatusOK, map[string]interface{}{"added": 0})
		return
	}

	if team == nil {
		team = &models.Team{
			HREmail: hrEmail,
			Members: newMembers,
		}
		if err := h.store.InsertTeam(ctx, team); err != nil {
			log.Printf("team insert error: %v", err)
			utils.RespondWithError(w, http.StatusInternalServerError, "failed to create team")
			return
		}
	} else {
		if err := h.store.AddTeamMembers(ctx, hrEmail, newMembers); err != nil {
			log.Printf("team update error: %v", err)
			utils.RespondWithError(w, http.StatusInternalServerError, "failed to update team")
			return
		}
	}

	// Affiliation stamps are independent writes; a failed one is logged
	// and the rest still proceed.
	for _, member := range newMembers {
		if err := h.store.SetAffiliation(ctx, member.UserID, hrEmail); err != nil {
			log.Printf("affiliation stamp failed for %s: %v", member.Email, err)
		}
	}

	h.store.InsertAudit(ctx, &models.AuditLog{
		HREmail:    hrEmail,
		ActorEmail: hrEmail,
		Action:     "team_members_add",
		EntityType: "team",
		EntityID:   team.ID,
		Details:    bson.M{"added": len(newMembers)},
	})

	utils.RespondWithJSON(w, http.StatusOK, map[string]interface{}{"added": len(newMembers)})
}

// GetTeam returns the team of the HR in the path.
func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	hrEmail := mux.Vars(r)["email"]

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	team, err := h.store.TeamByHREmail(ctx, hrEmail)
	if err != nil {
		respondCoreError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, team)
}

// MyTeam returns the team the caller belongs to.
func (h *Handler) MyTeam(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	user, err := h.store.UserByEmail(ctx, callerEmail(r))
	if err != nil {
		respondCoreError(w, err)
		return
	}
	if user.AffiliatedWith == "" {
		utils.RespondWithError(w, http.StatusNotFound, "not affiliated with any team")
		return
	}

	team, err := h.store.TeamByHREmail(ctx, user.AffiliatedWith)
	if err != nil {
		respondCoreError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, team)
}

// RemoveTeamMember clears a member's affiliation and pulls them from the
// caller's team. The two writes are independent: a partial failure is
// logged rather than rolled back.
func (h *Handler) RemoveTeamMember(w http.ResponseWriter, r *http.Request) {
	hrEmail := callerEmail(r)
	if role := callerRole(r); role != "hr" && role != "admin" {
		utils.RespondWithError(w, http.StatusForbidden, "insufficient permissions")
		return
	}

	userID, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid user id format")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	affiliationErr := h.store.SetAffiliation(ctx, userID, "")
	if affiliationErr != nil && !errors.Is(affiliationErr, inventory.ErrNotFound) {
		log.Printf("affiliation clear failed for %s: %v", userID.Hex(), affiliationErr)
	}

	if err := h.store.PullTeamMember(ctx, hrEmail, userID); err != nil {
		if errors.Is(err, inventory.ErrNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "team not found")
			return
		}
		log.Printf("team member pull failed: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to update team")
		return
	}

	h.store.InsertAudit(ctx, &models.AuditLog{
		HREmail:    hrEmail,
		ActorEmail: hrEmail,
		Action:     "team_member_remove",
		EntityType: "team",
		EntityID:   userID,
	})

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "removed"})
}
