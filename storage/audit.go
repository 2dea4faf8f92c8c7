// storage/audit.go
package storage

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/aburayhan-bpi/assetwise-server/metrics"
	"github.com/aburayhan-bpi/assetwise-server/models"
)

// InsertAudit records an audit entry best-effort: a failed write is logged
// and never fails the mutation it describes.
func (s *Store) InsertAudit(ctx context.Context, entry *models.AuditLog) {
	defer metrics.TrackDBOperation("audit.insert")(time.Now())
	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	if _, err := s.audits.InsertOne(ctx, entry); err != nil {
		log.Printf("audit insert failed: %v", err)
	}
}

// ListAudit returns a tenant's audit trail, newest first, capped at 100.
func (s *Store) ListAudit(ctx context.Context, hrEmail string) ([]models.AuditLog, error) {
	defer metrics.TrackDBOperation("audit.find")(time.Now())
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(100)

	cursor, err := s.audits.Find(ctx, bson.M{"hrEmail": hrEmail}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []models.AuditLog
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []models.AuditLog{}
	}
	return entries, nil
}
