// handlers/payment_handler.go
package handlers

import (
	"context"
	"log"
	"math"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/aburayhan-bpi/assetwise-server/models"
	"github.com/aburayhan-bpi/assetwise-server/utils"
)

// amountInCents converts a dollar price into Stripe's integer
// minor-unit amount. Rounding avoids float truncation: 19.99*100 is
// 1998.999..., which a bare int64 conversion would cut to 1998.
func amountInCents(price float64) int64 {
	return int64(math.Round(price * 100))
}

// CreatePaymentIntent creates a card-only USD payment intent for the
// given price and returns its client secret.
func (h *Handler) CreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Price float64 `json:"price"`
	}
	if err := utils.ParseJSON(r, &payload); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if payload.Price <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "price must be positive")
		return
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountInCents(payload.Price)),
		Currency: stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{
			"card",
		}),
	}
	params.SetIdempotencyKey(uuid.NewString())

	intent, err := paymentintent.New(params)
	if err != nil {
		log.Printf("payment intent creation failed: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to create payment intent")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{
		"clientSecret": intent.ClientSecret,
	})
}

// RecordPayment stores a completed payment. The (email, limit) pair is a
// uniqueness key: buying the same tier twice is rejected.
func (h *Handler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	var payment models.Payment
	if err := utils.ParseJSON(r, &payment); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if payment.Email == "" || payment.TransactionID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "email and transactionId required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	exists, err := h.store.PaymentExists(ctx, payment.Email, payment.Limit)
	if err != nil {
		log.Printf("payment lookup error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "database query failed")
		return
	}
	if exists {
		utils.RespondWithError(w, http.StatusBadRequest, "payment already recorded for this package")
		return
	}

	payment.ID = primitive.NewObjectID()
	if payment.Date.IsZero() {
		payment.Date = time.Now().UTC()
	}
	if payment.Status == "" {
		payment.Status = "paid"
	}

	if err := h.store.InsertPayment(ctx, &payment); err != nil {
		log.Printf("payment insert error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to record payment")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, payment)
}

// ListPayments returns the payments recorded for an email, newest first.
func (h *Handler) ListPayments(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	payments, err := h.store.PaymentsByEmail(ctx, email)
	if err != nil {
		log.Printf("payments query error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "database query failed")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, payments)
}

// UpdatePayment changes a payment's status.
func (h *Handler) UpdatePayment(w http.ResponseWriter, r *http.Request) {
	paymentID, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid payment id format")
		return
	}

	var payload struct {
		Status string `json:"status"`
	}
	if err := utils.ParseJSON(r, &payload); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if payload.Status == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "status required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := h.store.UpdatePaymentStatus(ctx, paymentID, payload.Status); err != nil {
		respondCoreError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "updated"})
}
