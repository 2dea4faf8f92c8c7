// inventory/service_test.go
package inventory

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/aburayhan-bpi/assetwise-server/models"
)

var errInsertFailed = errors.New("insert failed")

func newRequest(assetID primitive.ObjectID) *models.AssetRequest {
	return &models.AssetRequest{
		AssetID:                 assetID,
		RequesterEmail:          "emp@example.com",
		RequesterName:           "Test Employee",
		RequesterAffiliatedWith: "hr@example.com",
	}
}

func TestCreateRequestReservesUnit(t *testing.T) {
	t.Parallel()
	store := newMemStore()
	svc := NewService(store)
	assetID := store.addAsset("Laptop", models.ProductTypeReturnable, 3)

	req := newRequest(assetID)
	if err := svc.CreateRequest(context.Background(), req); err != nil {
		t.Fatalf("CreateRequest: %v", err)
	}

	if req.Status != StatusPending {
		t.Errorf("status: got %q, want %q", req.Status, StatusPending)
	}
	if req.ProductName != "Laptop" {
		t.Errorf("productName: got %q, want %q", req.ProductName, "Laptop")
	}
	if got := store.quantity(assetID); got != 2 {
		t.Errorf("quantity after create: got %d, want 2", got)
	}
}

func TestCreateRequestUnknownAsset(t *testing.T) {
	t.Parallel()
	store := newMemStore()
	svc := NewService(store)

	err := svc.CreateRequest(context.Background(), newRequest(primitive.NewObjectID()))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestCreateRequestOutOfStock(t *testing.T) {
	t.Parallel()
	store := newMemStore()
	svc := NewService(store)
	assetID := store.addAsset("Monitor", models.ProductTypeReturnable, 1)

	if err := svc.CreateRequest(context.Background(), newRequest(assetID)); err != nil {
		t.Fatalf("first CreateRequest: %v", err)
	}

	err := svc.CreateRequest(context.Background(), newRequest(assetID))
	if !errors.Is(err, ErrOutOfStock) {
		t.Errorf("got %v, want ErrOutOfStock", err)
	}
	if got := store.quantity(assetID); got != 0 {
		t.Errorf("quantity: got %d, want 0", got)
	}
}

func TestCreateRequestCompensatesFailedInsert(t *testing.T) {
	t.Parallel()
	store := newMemStore()
	svc := NewService(store)
	assetID := store.addAsset("Keyboard", models.ProductTypeNonReturnable, 2)

	store.failInsert = true
	err := svc.CreateRequest(context.Background(), newRequest(assetID))
	if !errors.Is(err, errInsertFailed) {
		t.Fatalf("got %v, want insert failure", err)
	}
	if got := store.quantity(assetID); got != 2 {
		t.Errorf("quantity after compensation: got %d, want 2", got)
	}
}

func TestApproveKeepsQuantity(t *testing.T) {
	t.Parallel()
	store := newMemStore()
	svc := NewService(store)
	assetID := store.addAsset("Laptop", models.ProductTypeReturnable, 3)

	req := newRequest(assetID)
	if err := svc.CreateRequest(context.Background(), req); err != nil {
		t.Fatalf("CreateRequest: %v", err)
	}

	updated, err := svc.SetStatus(context.Background(), req.ID, StatusApproved)
	if err != nil {
		t.Fatalf("SetStatus(approved): %v", err)
	}
	if updated.Status != StatusApproved {
		t.Errorf("status: got %q, want %q", updated.Status, StatusApproved)
	}
	if updated.ApprovalDate == nil {
		t.Error("approvalDate not stamped")
	}
	if got := store.quantity(assetID); got != 2 {
		t.Errorf("quantity after approve: got %d, want 2", got)
	}
}

func TestRejectReleasesUnit(t *testing.T) {
	t.Parallel()
	store := newMemStore()
	svc := NewService(store)
	assetID := store.addAsset("Laptop", models.ProductTypeReturnable, 3)

	req := newRequest(assetID)
	if err := svc.CreateRequest(context.Background(), req); err != nil {
		t.Fatalf("CreateRequest: %v", err)
	}
	before := store.quantity(assetID)

	updated, err := svc.SetStatus(context.Background(), req.ID, StatusRejected)
	if err != nil {
		t.Fatalf("SetStatus(rejected): %v", err)
	}
	if updated.RejectedDate == nil {
		t.Error("rejectedDate not stamped")
	}
	if got := store.quantity(assetID); got != before+1 {
		t.Errorf("quantity after reject: got %d, want %d", got, before+1)
	}
}

func TestCancelFromPendingAndApproved(t *testing.T) {
	t.Parallel()
	for _, approveFirst := range []bool{false, true} {
		store := newMemStore()
		svc := NewService(store)
		assetID := store.addAsset("Chair", models.ProductTypeNonReturnable, 5)

		req := newRequest(assetID)
		if err := svc.CreateRequest(context.Background(), req); err != nil {
			t.Fatalf("CreateRequest: %v", err)
		}
		if approveFirst {
			if _, err := svc.SetStatus(context.Background(), req.ID, StatusApproved); err != nil {
				t.Fatalf("SetStatus(approved): %v", err)
			}
		}

		updated, err := svc.CancelRequest(context.Background(), req.ID)
		if err != nil {
			t.Fatalf("CancelRequest (approveFirst=%v): %v", approveFirst, err)
		}
		if updated.CancelledDate == nil {
			t.Error("cancelledDate not stamped")
		}
		if got := store.quantity(assetID); got != 5 {
			t.Errorf("quantity after cancel (approveFirst=%v): got %d, want 5", approveFirst, got)
		}
	}
}

// Walks a returnable asset through a full loan: quantity 3 drops to 2
// on request, stays 2 on approval, comes back to 3 on return, after
// which any further transition fails.
func TestApproveThenReturnRestoresUnit(t *testing.T) {
	t.Parallel()
	store := newMemStore()
	svc := NewService(store)
	assetID := store.addAsset("Laptop", models.ProductTypeReturnable, 3)

	req := newRequest(assetID)
	if err := svc.CreateRequest(context.Background(), req); err != nil {
		t.Fatalf("CreateRequest: %v", err)
	}
	if got := store.quantity(assetID); got != 2 {
		t.Fatalf("quantity after create: got %d, want 2", got)
	}

	if _, err := svc.SetStatus(context.Background(), req.ID, StatusApproved); err != nil {
		t.Fatalf("SetStatus(approved): %v", err)
	}
	if got := store.quantity(assetID); got != 2 {
		t.Fatalf("quantity after approve: got %d, want 2", got)
	}

	updated, err := svc.ReturnRequest(context.Background(), req.ID)
	if err != nil {
		t.Fatalf("ReturnRequest: %v", err)
	}
	if updated.ReturnedDate == nil {
		t.Error("returnedDate not stamped")
	}
	if got := store.quantity(assetID); got != 3 {
		t.Fatalf("quantity after return: got %d, want 3", got)
	}

	if _, err := svc.CancelRequest(context.Background(), req.ID); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("cancel after return: got %v, want ErrInvalidTransition", err)
	}
}

func TestTerminalStatesAreImmutable(t *testing.T) {
	t.Parallel()
	targets := []string{StatusPending, StatusApproved, StatusRejected, StatusCancelled, StatusReturned}

	for _, terminal := range []string{StatusRejected, StatusCancelled, StatusReturned} {
		store := newMemStore()
		svc := NewService(store)
		assetID := store.addAsset("Dock", models.ProductTypeReturnable, 2)

		req := newRequest(assetID)
		req.ID = primitive.NewObjectID()
		req.Status = terminal
		req.AssetID = assetID
		store.requests[req.ID] = req

		for _, target := range targets {
			if _, err := svc.SetStatus(context.Background(), req.ID, target); !errors.Is(err, ErrInvalidTransition) {
				t.Errorf("SetStatus(%s -> %s): got %v, want ErrInvalidTransition", terminal, target, err)
			}
		}
	}
}

func TestSetStatusUnknownRequest(t *testing.T) {
	t.Parallel()
	store := newMemStore()
	svc := NewService(store)

	_, err := svc.SetStatus(context.Background(), primitive.NewObjectID(), StatusApproved)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

// Walks a mixed sequence of lifecycles and checks the stock invariant at
// every quiescent point: quantity + open requests == original stock.
func TestQuantityInvariant(t *testing.T) {
	t.Parallel()
	store := newMemStore()
	svc := NewService(store)
	const initial = 5
	assetID := store.addAsset("Headset", models.ProductTypeReturnable, initial)

	check := func(step string) {
		t.Helper()
		got := store.quantity(assetID) + store.openRequests(assetID)
		if got != initial {
			t.Fatalf("%s: quantity+open = %d, want %d", step, got, initial)
		}
	}

	reqs := make([]*models.AssetRequest, 4)
	for i := range reqs {
		reqs[i] = newRequest(assetID)
		if err := svc.CreateRequest(context.Background(), reqs[i]); err != nil {
			t.Fatalf("CreateRequest %d: %v", i, err)
		}
		check("after create")
	}

	if _, err := svc.SetStatus(context.Background(), reqs[0].ID, StatusApproved); err != nil {
		t.Fatal(err)
	}
	check("after approve")

	if _, err := svc.SetStatus(context.Background(), reqs[1].ID, StatusRejected); err != nil {
		t.Fatal(err)
	}
	check("after reject")

	if _, err := svc.CancelRequest(context.Background(), reqs[2].ID); err != nil {
		t.Fatal(err)
	}
	check("after cancel")

	if _, err := svc.ReturnRequest(context.Background(), reqs[0].ID); err != nil {
		t.Fatal(err)
	}
	check("after return")

	// Only reqs[3] is still open.
	if got := store.quantity(assetID); got != initial-1 {
		t.Errorf("final quantity: got %d, want %d", got, initial-1)
	}
}
