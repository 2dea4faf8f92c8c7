// inventory/service.go
package inventory

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/aburayhan-bpi/assetwise-server/models"
)

// Store is the slice of the persistent store the lifecycle core depends on.
// ReserveUnit must be an atomic conditional decrement: it decrements the
// asset's quantity only while it is above zero, returning ErrOutOfStock
// otherwise, so two concurrent requests can never drive the count negative.
// TransitionRequest must write the new status only if the request still
// holds the observed current status, returning ErrInvalidTransition when a
// concurrent transition got there first.
type Store interface {
	AssetByID(ctx context.Context, id primitive.ObjectID) (*models.Asset, error)
	ReserveUnit(ctx context.Context, assetID primitive.ObjectID) error
	ReleaseUnit(ctx context.Context, assetID primitive.ObjectID) error
	InsertRequest(ctx context.Context, req *models.AssetRequest) error
	RequestByID(ctx context.Context, id primitive.ObjectID) (*models.AssetRequest, error)
	TransitionRequest(ctx context.Context, id primitive.ObjectID, from, to string, at time.Time) error
}

// Service owns the asset-request state machine and keeps productQuantity
// consistent with the set of open requests: at any quiescent point,
// quantity + count(requests in {pending, approved}) equals the asset's
// original stock.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// CreateRequest reserves one unit of the asset and records a new pending
// request. The reservation happens at request time, not at approval, so
// concurrent requesters see accurate remaining stock. If the request
// insert fails after the reservation, the unit is released again.
func (s *Service) CreateRequest(ctx context.Context, req *models.AssetRequest) error {
	asset, err := s.store.AssetByID(ctx, req.AssetID)
	if err != nil {
		return err
	}

	req.ProductName = asset.ProductName
	req.ProductType = asset.ProductType
	req.Status = StatusPending
	if req.RequestDate.IsZero() {
		req.RequestDate = time.Now().UTC()
	}

	if err := s.store.ReserveUnit(ctx, req.AssetID); err != nil {
		return err
	}

	if err := s.store.InsertRequest(ctx, req); err != nil {
		// Hand the reserved unit back so the count stays consistent.
		if relErr := s.store.ReleaseUnit(ctx, req.AssetID); relErr != nil {
			return relErr
		}
		return err
	}

	return nil
}

// SetStatus moves a request to target, enforcing the transition table and
// applying the matching quantity effect. The quantity write happens first;
// if the status write then loses a race with a concurrent transition, the
// quantity change is reverted.
func (s *Service) SetStatus(ctx context.Context, requestID primitive.ObjectID, target string) (*models.AssetRequest, error) {
	req, err := s.store.RequestByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if !CanTransition(req.Status, target) {
		return nil, ErrInvalidTransition
	}

	release := releasesUnit(target)
	if release {
		if err := s.store.ReleaseUnit(ctx, req.AssetID); err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	if err := s.store.TransitionRequest(ctx, requestID, req.Status, target, now); err != nil {
		if release {
			// The released unit belongs to whichever transition won;
			// take it back.
			if resErr := s.store.ReserveUnit(ctx, req.AssetID); resErr != nil {
				return nil, resErr
			}
		}
		return nil, err
	}

	req.Status = target
	switch target {
	case StatusApproved:
		req.ApprovalDate = &now
	case StatusRejected:
		req.RejectedDate = &now
	case StatusCancelled:
		req.CancelledDate = &now
	case StatusReturned:
		req.ReturnedDate = &now
	}
	return req, nil
}

// CancelRequest moves a pending or approved request to cancelled and
// stamps the cancellation date.
func (s *Service) CancelRequest(ctx context.Context, requestID primitive.ObjectID) (*models.AssetRequest, error) {
	return s.SetStatus(ctx, requestID, StatusCancelled)
}

// ReturnRequest moves an approved request to returned and stamps the
// return date.
func (s *Service) ReturnRequest(ctx context.Context, requestID primitive.ObjectID) (*models.AssetRequest, error) {
	return s.SetStatus(ctx, requestID, StatusReturned)
}
