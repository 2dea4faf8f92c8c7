// storage/requests.go
package storage

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/aburayhan-bpi/assetwise-server/inventory"
	"github.com/aburayhan-bpi/assetwise-server/metrics"
	"github.com/aburayhan-bpi/assetwise-server/models"
)

var transitionDateField = map[string]string{
	inventory.StatusApproved:  "approvalDate",
	inventory.StatusRejected:  "rejectedDate",
	inventory.StatusCancelled: "cancelledDate",
	inventory.StatusReturned:  "returnedDate",
}

func (s *Store) InsertRequest(ctx context.Context, req *models.AssetRequest) error {
	defer metrics.TrackDBOperation("requests.insert")(time.Now())
	if req.ID.IsZero() {
		req.ID = primitive.NewObjectID()
	}
	_, err := s.requests.InsertOne(ctx, req)
	return err
}

func (s *Store) RequestByID(ctx context.Context, id primitive.ObjectID) (*models.AssetRequest, error) {
	defer metrics.TrackDBOperation("requests.findOne")(time.Now())
	var req models.AssetRequest
	if err := s.requests.FindOne(ctx, bson.M{"_id": id}).Decode(&req); err != nil {
		return nil, mapFindErr(err)
	}
	return &req, nil
}

// TransitionRequest writes the new status and stamps the matching
// transition date, conditional on the request still holding the observed
// current status. A missed match means a concurrent transition won.
func (s *Store) TransitionRequest(ctx context.Context, id primitive.ObjectID, from, to string, at time.Time) error {
	defer metrics.TrackDBOperation("requests.transition")(time.Now())
	set := bson.M{"status": to}
	if field, ok := transitionDateField[to]; ok {
		set[field] = at
	}

	res, err := s.requests.UpdateOne(ctx,
		bson.M{"_id": id, "status": from},
		bson.M{"$set": set},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		count, err := s.requests.CountDocuments(ctx, bson.M{"_id": id})
		if err != nil {
			return err
		}
		if count == 0 {
			return inventory.ErrNotFound
		}
		return inventory.ErrInvalidTransition
	}
	return nil
}

// ListRequests returns requests matching the filter, newest first.
// A limit of 0 means no limit.
func (s *Store) ListRequests(ctx context.Context, f inventory.RequestFilter, limit int64) ([]models.AssetRequest, error) {
	defer metrics.TrackDBOperation("requests.find")(time.Now())
	opts := options.Find().SetSort(bson.D{{Key: "requestDate", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := s.requests.Find(ctx, f.BSON(), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var requests []models.AssetRequest
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, err
	}
	if requests == nil {
		requests = []models.AssetRequest{}
	}
	return requests, nil
}

// MonthlyRequests returns the requester's requests made in the current
// calendar month, newest first.
func (s *Store) MonthlyRequests(ctx context.Context, requesterEmail string) ([]models.AssetRequest, error) {
	defer metrics.TrackDBOperation("requests.monthly")(time.Now())
	now := time.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	filter := bson.M{
		"requesterEmail": requesterEmail,
		"requestDate":    bson.M{"$gte": monthStart},
	}
	opts := options.Find().SetSort(bson.D{{Key: "requestDate", Value: -1}})

	cursor, err := s.requests.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var requests []models.AssetRequest
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, err
	}
	if requests == nil {
		requests = []models.AssetRequest{}
	}
	return requests, nil
}
