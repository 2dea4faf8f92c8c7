// storage/store.go
package storage

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/aburayhan-bpi/assetwise-server/inventory"
)

// Store is the explicit store-client object handed to the handlers and
// the inventory service. It owns the collection handles and every query
// against them.
type Store struct {
	users    *mongo.Collection
	teams    *mongo.Collection
	assets   *mongo.Collection
	requests *mongo.Collection
	payments *mongo.Collection
	audits   *mongo.Collection
}

// New builds a Store over the given database.
func New(db *mongo.Database) *Store {
	return &Store{
		users:    db.Collection("users"),
		teams:    db.Collection("teams"),
		assets:   db.Collection("assets"),
		requests: db.Collection("assetRequests"),
		payments: db.Collection("payments"),
		audits:   db.Collection("auditLogs"),
	}
}

// mapFindErr translates driver-level "no documents" into the core's
// not-found sentinel.
func mapFindErr(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return inventory.ErrNotFound
	}
	return err
}
