// inventory/memstore_test.go
package inventory

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/aburayhan-bpi/assetwise-server/models"
)

// memStore implements Store in memory with the same conditional-update
// semantics the Mongo-backed store provides.
type memStore struct {
	mu       sync.Mutex
	assets   map[primitive.ObjectID]*models.Asset
	requests map[primitive.ObjectID]*models.AssetRequest

	failInsert bool
}

func newMemStore() *memStore {
	return &memStore{
		assets:   make(map[primitive.ObjectID]*models.Asset),
		requests: make(map[primitive.ObjectID]*models.AssetRequest),
	}
}

func (m *memStore) addAsset(name, productType string, quantity int64) primitive.ObjectID {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := primitive.NewObjectID()
	m.assets[id] = &models.Asset{
		ID:              id,
		ProductName:     name,
		ProductType:     productType,
		ProductQuantity: quantity,
		Email:           "hr@example.com",
		DateAdded:       time.Now().UTC(),
	}
	return id
}

func (m *memStore) quantity(id primitive.ObjectID) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.assets[id].ProductQuantity
}

// openRequests counts requests against the asset in a non-terminal-minus-
// returned sense: pending or approved, i.e. still holding a reserved unit.
func (m *memStore) openRequests(assetID primitive.ObjectID) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, req := range m.requests {
		if req.AssetID == assetID && (req.Status == StatusPending || req.Status == StatusApproved) {
			n++
		}
	}
	return n
}

func (m *memStore) AssetByID(_ context.Context, id primitive.ObjectID) (*models.Asset, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	asset, ok := m.assets[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *asset
	return &copied, nil
}

func (m *memStore) ReserveUnit(_ context.Context, assetID primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	asset, ok := m.assets[assetID]
	if !ok {
		return ErrNotFound
	}
	if asset.ProductQuantity <= 0 {
		return ErrOutOfStock
	}
	asset.ProductQuantity--
	return nil
}

func (m *memStore) ReleaseUnit(_ context.Context, assetID primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	asset, ok := m.assets[assetID]
	if !ok {
		return ErrNotFound
	}
	asset.ProductQuantity++
	return nil
}

func (m *memStore) InsertRequest(_ context.Context, req *models.AssetRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failInsert {
		return errInsertFailed
	}
	if req.ID.IsZero() {
		req.ID = primitive.NewObjectID()
	}
	copied := *req
	m.requests[req.ID] = &copied
	return nil
}

func (m *memStore) RequestByID(_ context.Context, id primitive.ObjectID) (*models.AssetRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	req, ok := m.requests[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *req
	return &copied, nil
}

func (m *memStore) TransitionRequest(_ context.Context, id primitive.ObjectID, from, to string, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	req, ok := m.requests[id]
	if !ok {
		return ErrNotFound
	}
	if req.Status != from {
		return ErrInvalidTransition
	}
	req.Status = to
	switch to {
	case StatusApproved:
		req.ApprovalDate = &at
	case StatusRejected:
		req.RejectedDate = &at
	case StatusCancelled:
		req.CancelledDate = &at
	case StatusReturned:
		req.ReturnedDate = &at
	}
	return nil
}
