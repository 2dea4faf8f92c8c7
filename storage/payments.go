// storage/payments.go
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

// PaymentExists reports whether a payment for the (email, limit) pair is
// already recorded.
func (s *Store) PaymentExists(ctx context.Context, email string, limit int) (bool, error) {
	defer metrics.TrackDBOperation("payments.count")(time.Now())
	count, err := s.payments.CountDocuments(ctx, bson.M{"email": email, "limit": limit})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *Store) InsertPayment(ctx context.Context, payment *models.Payment) error {
	defer metrics.TrackDBOperation("payments.insert")(time.Now())
	if payment.ID.IsZero() {
		payment.ID = primitive.NewObjectID()
	}
	_, err := s.payments.InsertOne(ctx, payment)
	return err
}

func (s *Store) PaymentsByEmail(ctx context.Context, email string) ([]models.Payment, error) {
	defer metrics.TrackDBOperation("payments.find")(time.Now())
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := s.payments.Find(ctx, bson.M{"email": email}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var payments []models.Payment
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, err
	}
	if payments == nil {
		payments = []models.Payment{}
	}
	return payments, nil
}

func (s *Store) UpdatePaymentStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	defer metrics.TrackDBOperation("payments.update")(time.Now())
	res, err := s.payments.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return inventory.ErrNotFound
	}
	return nil
}
