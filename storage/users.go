// storage/users.go
package storage

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/aburayhan-bpi/assetwise-server/inventory"
	"github.com/aburayhan-bpi/assetwise-server/metrics"
	"github.com/aburayhan-bpi/assetwise-server/models"
)

func (s *Store) InsertUser(ctx context.Context, user *models.User) error {
	defer metrics.TrackDBOperation("users.insert")(time.Now())
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	_, err := s.users.InsertOne(ctx, user)
	return err
}

func (s *Store) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	defer metrics.TrackDBOperation("users.findOne")(time.Now())
	var user models.User
	if err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		return nil, mapFindErr(err)
	}
	return &user, nil
}

func (s *Store) UserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	defer metrics.TrackDBOperation("users.findOne")(time.Now())
	var user models.User
	if err := s.users.FindOne(ctx, bson.M{"_id": id}).Decode(&user); err != nil {
		return nil, mapFindErr(err)
	}
	return &user, nil
}

func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	defer metrics.TrackDBOperation("users.find")(time.Now())
	cursor, err := s.users.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

// UpdateUser applies a partial update built by the handler from validated
// fields only.
func (s *Store) UpdateUser(ctx context.Context, id primitive.ObjectID, set bson.M) error {
	defer metrics.TrackDBOperation("users.update")(time.Now())
	res, err := s.users.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return inventory.ErrNotFound
	}
	return nil
}

// SetAffiliation stamps or clears a user's HR affiliation. An empty
// hrEmail unsets the field.
func (s *Store) SetAffiliation(ctx context.Context, id primitive.ObjectID, hrEmail string) error {
	defer metrics.TrackDBOperation("users.setAffiliation")(time.Now())
	var update bson.M
	if hrEmail == "" {
		update = bson.M{"$unset": bson.M{"affiliatedWith": ""}}
	} else {
		update = bson.M{"$set": bson.M{"affiliatedWith": hrEmail}}
	}
	res, err := s.users.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return inventory.ErrNotFound
	}
	return nil
}
