// handlers/asset_handler.go
package handlers

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/aburayhan-bpi/assetwise-server/models"
	"github.com/aburayhan-bpi/assetwise-server/storage"
	"github.com/aburayhan-bpi/assetwise-server/utils"
)

func validProductType(t string) bool {
	return t == models.ProductTypeReturnable || t == models.ProductTypeNonReturnable
}

type CreateAssetRequest struct {
	ProductName     string `json:"productName"`
	ProductType     string `json:"productType"`
	ProductQuantity int64  `json:"productQuantity"`
}

// CreateAsset adds an asset to the caller's tenant. HR only.
func (h *Handler) CreateAsset(w http.ResponseWriter, r *http.Request) {
	email := callerEmail(r)
	role := callerRole(r)
	if role != "hr" && role != "admin" {
		utils.RespondWithError(w, http.StatusForbidden, "insufficient permissions to create asset")
		return
	}

	var req CreateAssetRequest
	if err := utils.ParseJSON(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid payload")
		return
	}

	req.ProductName = strings.TrimSpace(req.ProductName)
	if req.ProductName == "" || req.ProductType == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "missing required fields: productName and productType")
		return
	}
	if !validProductType(req.ProductType) {
		utils.RespondWithError(w, http.StatusBadRequest, "productType must be returnable or non-returnable")
		return
	}
	if req.ProductQuantity < 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "productQuantity must not be negative")
		return
	}

	asset := models.Asset{
		ID:              primitive.NewObjectID(),
		ProductName:     req.ProductName,
		ProductType:     req.ProductType,
		ProductQuantity: req.ProductQuantity,
		Email:           email,
		DateAdded:       time.Now().UTC(),
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := h.store.InsertAsset(ctx, &asset); err != nil {
		log.Printf("asset insert error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to create asset")
		return
	}

	h.store.InsertAudit(ctx, &models.AuditLog{
		HREmail:    email,
		ActorEmail: email,
		Action:     "asset_create",
		EntityType: "asset",
		EntityID:   asset.ID,
		Details: bson.M{
			"productName":     asset.ProductName,
			"productType":     asset.ProductType,
			"productQuantity": asset.ProductQuantity,
		},
	})

	utils.RespondWithJSON(w, http.StatusCreated, asset)
}

// ListAssets returns assets matching the optional search, filter, sort and
// tenant parameters.
func (h *Handler) ListAssets(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	email := q.Get("email")
	if email == "" {
		email = callerEmail(r)
	}

	filter := storage.AssetFilter{
		Email:        email,
		Search:       q.Get("search"),
		FilterOption: q.Get("filterOption"),
		SortOption:   q.Get("sortOption"),
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	assets, err := h.store.ListAssets(ctx, filter)
	if err != nil {
		log.Printf("assets Find error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "database query failed")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, assets)
}

// GetAsset returns one asset by id.
func (h *Handler) GetAsset(w http.ResponseWriter, r *http.Request) {
	assetID, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid asset id format")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	asset, err := h.store.AssetByID(ctx, assetID)
	if err != nil {
		respondCoreError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, asset)
}

type UpdateAssetRequest struct {
	ProductName     *string `json:"productName,omitempty"`
	ProductType     *string `json:"productType,omitempty"`
	ProductQuantity *int64  `json:"productQuantity,omitempty"`
}

// UpdateAsset applies a partial update to an asset owned by the caller.
func (h *Handler) UpdateAsset(w http.ResponseWriter, r *http.Request) {
	email := callerEmail(r)
	assetID, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid asset id format")
		return
	}

	var req UpdateAssetRequest
	if err := utils.ParseJSON(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid payload")
		return
	}

	set := bson.M{}
	if req.ProductName != nil {
		name := strings.TrimSpace(*req.ProductName)
		if name == "" {
			utils.RespondWithError(w, http.StatusBadRequest, "productName must not be empty")
			return
		}
		set["productName"] = name
	}
	if req.ProductType != nil {
		if !validProductType(*req.ProductType) {
			utils.RespondWithError(w, http.StatusBadRequest, "productType must be returnable or non-returnable")
			return
		}
		set["productType"] = *req.ProductType
	}
	if req.ProductQuantity != nil {
		if *req.ProductQuantity < 0 {
			utils.RespondWithError(w, http.StatusBadRequest, "productQuantity must not be negative")
			return
		}
		set["productQuantity"] = *req.ProductQuantity
	}
	if len(set) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "no fields to update")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	asset, err := h.store.AssetByID(ctx, assetID)
	if err != nil {
		respondCoreError(w, err)
		return
	}
	if asset.Email != email {
		utils.RespondWithError(w, http.StatusForbidden, "access denied to this asset")
		return
	}

	if err := h.store.UpdateAsset(ctx, assetID, set); err != nil {
		respondCoreError(w, err)
		return
	}

	h.store.InsertAudit(ctx, &models.AuditLog{
		HREmail:    email,
		ActorEmail: email,
		Action:     "asset_update",
		EntityType: "asset",
		EntityID:   assetID,
		Details:    set,
	})

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "updated"})
}

// DeleteAsset removes an asset owned by the caller.
func (h *Handler) DeleteAsset(w http.ResponseWriter, r *http.Request) {
	email := callerEmail(r)
	assetID, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid asset id format")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	asset, err := h.store.AssetByID(ctx, assetID)
	if err != nil {
		respondCoreError(w, err)
		return
	}
	if asset.Email != email {
		utils.RespondWithError(w, http.StatusForbidden, "access denied to this asset")
		return
	}

	if err := h.store.DeleteAsset(ctx, assetID); err != nil {
		respondCoreError(w, err)
		return
	}

	h.store.InsertAudit(ctx, &models.AuditLog{
		HREmail:    email,
		ActorEmail: email,
		Action:     "asset_delete",
		EntityType: "asset",
		EntityID:   assetID,
		Details:    bson.M{"productName": asset.ProductName},
	})

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "deleted"})
}
