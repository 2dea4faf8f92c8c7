// handlers/report_handler.go
package handlers

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/aburayhan-bpi/assetwise-server/inventory"
	"github.com/aburayhan-bpi/assetwise-server/utils"
)

// TopRequestedAssets returns the four most-requested assets of the
// caller's tenant.
func (h *Handler) TopRequestedAssets(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	rows, err := h.store.TopRequestedAssets(ctx, callerEmail(r))
	if err != nil {
		log.Printf("top requested aggregation error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "database query failed")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, rows)
}

// LimitedStockAssets lists the tenant's assets with fewer than 10 units.
func (h *Handler) LimitedStockAssets(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	assets, err := h.store.LimitedStockAssets(ctx, callerEmail(r))
	if err != nil {
		log.Printf("limited stock query error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "database query failed")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, assets)
}

// TopQuantityAssets lists the tenant's ten best-stocked assets.
func (h *Handler) TopQuantityAssets(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	assets, err := h.store.TopQuantityAssets(ctx, callerEmail(r))
	if err != nil {
		log.Printf("top quantity query error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "database query failed")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, assets)
}

// TypeShare is one slice of the returnable / non-returnable distribution.
type TypeShare struct {
	Title      string `json:"title"`
	Percentage string `json:"percentage"`
}

// typePercentages computes the request distribution between product types,
// rounded to two decimal places. A tenant with no requests gets zero for
// both shares.
func typePercentages(returnable, nonReturnable int64) []TypeShare {
	total := returnable + nonReturnable
	retPct, nonRetPct := 0.0, 0.0
	if total > 0 {
		retPct = float64(returnable) / float64(total) * 100
		nonRetPct = float64(nonReturnable) / float64(total) * 100
	}
	return []TypeShare{
		{Title: "returnable", Percentage: fmt.Sprintf("%.2f", retPct)},
		{Title: "non-returnable", Percentage: fmt.Sprintf("%.2f", nonRetPct)},
	}
}

// ProductTypeState reports what share of the tenant's requests target
// returnable vs non-returnable products.
func (h *Handler) ProductTypeState(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	returnable, nonReturnable, err := h.store.TypeCounts(ctx, callerEmail(r))
	if err != nil {
		log.Printf("type counts error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "database query failed")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, typePercentages(returnable, nonReturnable))
}

// PendingRequests returns the tenant's five newest pending requests.
func (h *Handler) PendingRequests(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	requests, err := h.store.ListRequests(ctx, inventory.RequestFilter{
		HREmail: callerEmail(r),
		Status:  inventory.StatusPending,
	}, 5)
	if err != nil {
		log.Printf("pending requests query error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "database query failed")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, requests)
}

// MonthlyRequests returns the caller's requests made this calendar month.
func (h *Handler) MonthlyRequests(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	requests, err := h.store.MonthlyRequests(ctx, callerEmail(r))
	if err != nil {
		log.Printf("monthly requests query error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "database query failed")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, requests)
}

// PendingAssets returns the caller's own pending requests.
func (h *Handler) PendingAssets(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	requests, err := h.store.ListRequests(ctx, inventory.RequestFilter{
		RequesterEmail: callerEmail(r),
		Status:         inventory.StatusPending,
	}, 0)
	if err != nil {
		log.Printf("pending assets query error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "database query failed")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, requests)
}

// RejectedRequests returns the caller's own rejected requests.
func (h *Handler) RejectedRequests(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	requests, err := h.store.ListRequests(ctx, inventory.RequestFilter{
		RequesterEmail: callerEmail(r),
		Status:         inventory.StatusRejected,
	}, 0)
	if err != nil {
		log.Printf("rejected requests query error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "database query failed")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, requests)
}

// ListAudit returns the tenant's audit trail.
func (h *Handler) ListAudit(w http.ResponseWriter, r *http.Request) {
	if role := callerRole(r); role != "hr" && role != "admin" {
		utils.RespondWithError(w, http.StatusForbidden, "insufficient permissions")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	entries, err := h.store.ListAudit(ctx, callerEmail(r))
	if err != nil {
		log.Printf("audit query error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "database query failed")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, entries)
}
