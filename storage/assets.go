// storage/assets.go
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

func (s *Store) InsertAsset(ctx context.Context, asset *models.Asset) error {
	defer metrics.TrackDBOperation("assets.insert")(time.Now())
	if asset.ID.IsZero() {
		asset.ID = primitive.NewObjectID()
	}
	_, err := s.assets.InsertOne(ctx, asset)
	return err
}

func (s *Store) AssetByID(ctx context.Context, id primitive.ObjectID) (*models.Asset, error) {
	defer metrics.TrackDBOperation("assets.findOne")(time.Now())
	var asset models.Asset
	if err := s.assets.FindOne(ctx, bson.M{"_id": id}).Decode(&asset); err != nil {
		return nil, mapFindErr(err)
	}
	return &asset, nil
}

func (s *Store) ListAssets(ctx context.Context, f AssetFilter) ([]models.Asset, error) {
	defer metrics.TrackDBOperation("assets.find")(time.Now())
	filter, opts := f.Query()
	cursor, err := s.assets.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var assets []models.Asset
	if err := cursor.All(ctx, &assets); err != nil {
		return nil, err
	}
	if assets == nil {
		assets = []models.Asset{}
	}
	return assets, nil
}

// UpdateAsset applies a partial update. The caller builds the $set
// document from validated fields only.
func (s *Store) UpdateAsset(ctx context.Context, id primitive.ObjectID, set bson.M) error {
	defer metrics.TrackDBOperation("assets.update")(time.Now())
	set["dateUpdated"] = time.Now().UTC()
	res, err := s.assets.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return inventory.ErrNotFound
	}
	return nil
}

func (s *Store) DeleteAsset(ctx context.Context, id primitive.ObjectID) error {
	defer metrics.TrackDBOperation("assets.delete")(time.Now())
	res, err := s.assets.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return inventory.ErrNotFound
	}
	return nil
}

// ReserveUnit decrements productQuantity by one, but only while it is
// above zero. The check and the decrement are a single conditional update
// so concurrent requests cannot drive the count negative.
func (s *Store) ReserveUnit(ctx context.Context, assetID primitive.ObjectID) error {
	defer metrics.TrackDBOperation("assets.reserve")(time.Now())
	res, err := s.assets.UpdateOne(ctx,
		bson.M{"_id": assetID, "productQuantity": bson.M{"$gt": 0}},
		bson.M{
			"$inc": bson.M{"productQuantity": -1},
			"$set": bson.M{"dateUpdated": time.Now().UTC()},
		},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		// Either the asset is gone or it has no stock left.
		count, err := s.assets.CountDocuments(ctx, bson.M{"_id": assetID})
		if err != nil {
			return err
		}
		if count == 0 {
			return inventory.ErrNotFound
		}
		return inventory.ErrOutOfStock
	}
	return nil
}

// ReleaseUnit hands one reserved unit back to the asset.
func (s *Store) ReleaseUnit(ctx context.Context, assetID primitive.ObjectID) error {
	defer metrics.TrackDBOperation("assets.release")(time.Now())
	res, err := s.assets.UpdateOne(ctx,
		bson.M{"_id": assetID},
		bson.M{
			"$inc": bson.M{"productQuantity": 1},
			"$set": bson.M{"dateUpdated": time.Now().UTC()},
		},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return inventory.ErrNotFound
	}
	return nil
}
