// routes/routes.go
package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/aburayhan-bpi/assetwise-server/handlers"
	"github.com/aburayhan-bpi/assetwise-server/metrics"
	"github.com/aburayhan-bpi/assetwise-server/middleware"
)

// HTTP method constants for better maintainability
var (
	MethodsGetOnly    = []string{"GET", "OPTIONS"}
	MethodsPostOnly   = []string{"POST", "OPTIONS"}
	MethodsPatchOnly  = []string{"PATCH", "OPTIONS"}
	MethodsDeleteOnly = []string{"DELETE", "OPTIONS"}
)

func RegisterRoutes(r *mux.Router, h *handlers.Handler) {
	// protected wraps a handler with bearer-token verification. The
	// spec'd paths share no common prefix, so each protected endpoint
	// is wrapped individually instead of using a subrouter.
	protected := func(fn http.HandlerFunc) http.Handler {
		return middleware.AuthMiddleware(fn)
	}

	// ====================
	// PUBLIC
	// ====================
	r.HandleFunc("/", h.Root).Methods(MethodsGetOnly...)
	r.HandleFunc("/health", h.HealthCheck).Methods(MethodsGetOnly...)
	r.Handle("/metrics", metrics.Handler()).Methods(MethodsGetOnly...)
	r.HandleFunc("/jwt", h.IssueToken).Methods(MethodsPostOnly...)
	r.HandleFunc("/employee", h.RegisterEmployee).Methods(MethodsPostOnly...)
	r.HandleFunc("/hr", h.RegisterHR).Methods(MethodsPostOnly...)
	r.HandleFunc("/ws", h.ServeWS).Methods(MethodsGetOnly...)

	// ====================
	// USERS
	// ====================
	r.Handle("/users", protected(h.ListUsers)).Methods(MethodsGetOnly...)
	r.Handle("/update-hr/{id}", protected(h.UpdateHR)).Methods(MethodsPatchOnly...)
	r.Handle("/update-name/{id}", protected(h.UpdateName)).Methods(MethodsPatchOnly...)

	// ====================
	// ASSETS
	// ====================
	r.Handle("/assets", protected(h.ListAssets)).Methods(MethodsGetOnly...)
	r.Handle("/assets", protected(h.CreateAsset)).Methods(MethodsPostOnly...)
	r.Handle("/assets/{id}", protected(h.GetAsset)).Methods(MethodsGetOnly...)
	r.Handle("/assets/{id}", protected(h.UpdateAsset)).Methods(MethodsPatchOnly...)
	r.Handle("/assets/{id}", protected(h.DeleteAsset)).Methods(MethodsDeleteOnly...)

	// ====================
	// ASSET REQUEST LIFECYCLE
	// ====================
	r.Handle("/request-asset/{email}", protected(h.CreateRequest)).Methods(MethodsPostOnly...)
	r.Handle("/my-req-assets", protected(h.ListMyRequests)).Methods(MethodsGetOnly...)
	r.Handle("/all-requests", protected(h.ListAllRequests)).Methods(MethodsGetOnly...)
	r.Handle("/update-asset-status/{id}", protected(h.UpdateRequestStatus)).Methods(MethodsPatchOnly...)
	r.Handle("/cancel-request/{id}", protected(h.CancelRequest)).Methods(MethodsPatchOnly...)
	r.Handle("/return-request/{id}", protected(h.ReturnRequest)).Methods(MethodsPatchOnly...)

	// ====================
	// REPORTS
	// ====================
	r.Handle("/top-most-requested", protected(h.TopRequestedAssets)).Methods(MethodsGetOnly...)
	r.Handle("/limited-stock-assets", protected(h.LimitedStockAssets)).Methods(MethodsGetOnly...)
	r.Handle("/top-quantity-assets", protected(h.TopQuantityAssets)).Methods(MethodsGetOnly...)
	r.Handle("/product-type-state", protected(h.ProductTypeState)).Methods(MethodsGetOnly...)
	r.Handle("/pending-requests", protected(h.PendingRequests)).Methods(MethodsGetOnly...)
	r.Handle("/monthly-requests", protected(h.MonthlyRequests)).Methods(MethodsGetOnly...)
	r.Handle("/pending-assets", protected(h.PendingAssets)).Methods(MethodsGetOnly...)
	r.Handle("/rejected-requests", protected(h.RejectedRequests)).Methods(MethodsGetOnly...)
	r.Handle("/audit", protected(h.ListAudit)).Methods(MethodsGetOnly...)

	// ====================
	// TEAMS
	// ====================
	r.Handle("/add-employee", protected(h.AddEmployee)).Methods(MethodsPostOnly...)
	r.Handle("/add-selected-employees", protected(h.AddSelectedEmployees)).Methods(MethodsPostOnly...)
	r.Handle("/team/{email}", protected(h.GetTeam)).Methods(MethodsGetOnly...)
	r.Handle("/my-team", protected(h.MyTeam)).Methods(MethodsGetOnly...)
	r.Handle("/delete-team-member/{id}", protected(h.RemoveTeamMember)).Methods(MethodsDeleteOnly...)

	// ====================
	// PAYMENTS
	// ====================
	r.Handle("/create-payment-intent", protected(h.CreatePaymentIntent)).Methods(MethodsPostOnly...)
	r.Handle("/payment", protected(h.RecordPayment)).Methods(MethodsPostOnly...)
	r.Handle("/payment/{email}", protected(h.ListPayments)).Methods(MethodsGetOnly...)
	r.Handle("/update-payment/{id}", protected(h.UpdatePayment)).Methods(MethodsPatchOnly...)
}
