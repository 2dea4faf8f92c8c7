// handlers/request_handler.go
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
	"github.com/aburayhan-bpi/assetwise-server/metrics"
	"github.com/aburayhan-bpi/assetwise-server/models"
	"github.com/aburayhan-bpi/assetwise-server/utils"
)

// CreateRequest submits an asset request for the requester in the path.
// One unit is reserved immediately; an asset with no stock left is
// rejected with 409.
func (h *Handler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	requesterEmail := mux.Vars(r)["email"]
	if requesterEmail != callerEmail(r) {
		utils.RespondWithError(w, http.StatusForbidden, "cannot request assets for another user")
		return
	}

	var payload struct {
		AssetID string `json:"assetId"`
		Note    string `json:"note,omitempty"`
	}
	if err := utils.ParseJSON(r, &payload); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid payload")
		return
	}

	assetID, err := primitive.ObjectIDFromHex(payload.AssetID)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid asset id format")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	requester, err := h.store.UserByEmail(ctx, requesterEmail)
	if err != nil {
		respondCoreError(w, err)
		return
	}
	if requester.AffiliatedWith == "" {
		utils.RespondWithError(w, http.StatusForbidden, "requester is not affiliated with any HR")
		return
	}

	request := &models.AssetRequest{
		AssetID:                 assetID,
		RequesterEmail:          requester.Email,
		RequesterName:           requester.Name,
		RequesterAffiliatedWith: requester.AffiliatedWith,
		Note:                    payload.Note,
	}

	if err := h.inv.CreateRequest(ctx, request); err != nil {
		respondCoreError(w, err)
		return
	}

	metrics.RecordTransition(inventory.StatusPending)
	h.hub.SendRequestCreated(request.RequesterAffiliatedWith, request, request.RequesterEmail)
	h.store.InsertAudit(ctx, &models.AuditLog{
		HREmail:    request.RequesterAffiliatedWith,
		ActorEmail: request.RequesterEmail,
		Action:     "request_create",
		EntityType: "assetRequest",
		EntityID:   request.ID,
		Details:    bson.M{"productName": request.ProductName},
	})

	utils.RespondWithJSON(w, http.StatusCreated, request)
}

// ListMyRequests returns the caller's own requests with optional filters.
func (h *Handler) ListMyRequests(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := inventory.RequestFilter{
		RequesterEmail: callerEmail(r),
		ProductName:    q.Get("search"),
		Status:         q.Get("status"),
		ProductType:    q.Get("productType"),
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	requests, err := h.store.ListRequests(ctx, filter, 0)
	if err != nil {
		log.Printf("requests Find error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "database query failed")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, requests)
}

// ListAllRequests returns the caller's tenant requests with optional
// filters; the free-text search matches requester name or email.
func (h *Handler) ListAllRequests(w http.ResponseWriter, r *http.Request) {
	if role := callerRole(r); role != "hr" && role != "admin" {
		utils.RespondWithError(w, http.StatusForbidden, "insufficient permissions")
		return
	}

	q := r.URL.Query()
	filter := inventory.RequestFilter{
		HREmail:     callerEmail(r),
		Search:      q.Get("search"),
		Status:      q.Get("status"),
		ProductType: q.Get("productType"),
		ProductName: q.Get("productName"),
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	requests, err := h.store.ListRequests(ctx, filter, 0)
	if err != nil {
		log.Printf("requests Find error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "database query failed")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, requests)
}

// UpdateRequestStatus moves a pending request to approved or rejected.
// HR only; rejecting releases the reserved unit.
func (h *Handler) UpdateRequestStatus(w http.ResponseWriter, r *http.Request) {
	if role := callerRole(r); role != "hr" && role != "admin" {
		utils.RespondWithError(w, http.StatusForbidden, "insufficient permissions")
		return
	}

	requestID, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request id format")
		return
	}

	var payload struct {
		Status string `json:"status"`
	}
	if err := utils.ParseJSON(r, &payload); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if payload.Status != inventory.StatusApproved && payload.Status != inventory.StatusRejected {
		utils.RespondWithError(w, http.StatusBadRequest, "status must be approved or rejected")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	current, err := h.store.RequestByID(ctx, requestID)
	if err != nil {
		respondCoreError(w, err)
		return
	}
	if current.RequesterAffiliatedWith != callerEmail(r) {
		utils.RespondWithError(w, http.StatusForbidden, "access denied to this request")
		return
	}

	h.transition(w, r, ctx, requestID, current, payload.Status)
}

// CancelRequest cancels the caller's own pending or approved request and
// releases the reserved unit.
func (h *Handler) CancelRequest(w http.ResponseWriter, r *http.Request) {
	requestID, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request id format")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	current, err := h.store.RequestByID(ctx, requestID)
	if err != nil {
		respondCoreError(w, err)
		return
	}
	if current.RequesterEmail != callerEmail(r) {
		utils.RespondWithError(w, http.StatusForbidden, "access denied to this request")
		return
	}

	h.transition(w, r, ctx, requestID, current, inventory.StatusCancelled)
}

// ReturnRequest marks the caller's approved request as returned and
// restores the unit to stock.
func (h *Handler) ReturnRequest(w http.ResponseWriter, r *http.Request) {
	requestID, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request id format")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	current, err := h.store.RequestByID(ctx, requestID)
	if err != nil {
		respondCoreError(w, err)
		return
	}
	if current.RequesterEmail != callerEmail(r) {
		utils.RespondWithError(w, http.StatusForbidden, "access denied to this request")
		return
	}

	h.transition(w, r, ctx, requestID, current, inventory.StatusReturned)
}

func (h *Handler) transition(w http.ResponseWriter, r *http.Request, ctx context.Context, requestID primitive.ObjectID, current *models.AssetRequest, target string) {
	oldStatus := current.Status

	updated, err := h.inv.SetStatus(ctx, requestID, target)
	if err != nil {
		if !errors.Is(err, inventory.ErrInvalidTransition) && !errors.Is(err, inventory.ErrNotFound) {
			log.Printf("request transition error: %v", err)
		}
		respondCoreError(w, err)
		return
	}

	metrics.RecordTransition(target)
	h.hub.SendRequestStatusChange(updated.RequesterAffiliatedWith, requestID.Hex(), oldStatus, target)
	h.store.InsertAudit(ctx, &models.AuditLog{
		HREmail:    updated.RequesterAffiliatedWith,
		ActorEmail: callerEmail(r),
		Action:     "request_status_change",
		EntityType: "assetRequest",
		EntityID:   requestID,
		Details:    bson.M{"oldStatus": oldStatus, "newStatus": target},
	})

	utils.RespondWithJSON(w, http.StatusOK, updated)
}
