// storage/reports.go
package storage

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/aburayhan-bpi/assetwise-server/metrics"
	"github.com/aburayhan-bpi/assetwise-server/models"
)

// TopRequestedAsset is one row of the most-requested report.
type TopRequestedAsset struct {
	AssetID     primitive.ObjectID `bson:"_id" json:"assetId"`
	ProductName string             `bson:"productName" json:"productName"`
	ProductType string             `bson:"productType" json:"productType"`
	Count       int64              `bson:"count" json:"count"`
}

// TopRequestedAssets groups a tenant's requests by asset, counts them and
// returns the four most requested.
func (s *Store) TopRequestedAssets(ctx context.Context, hrEmail string) ([]TopRequestedAsset, error) {
	defer metrics.TrackDBOperation("requests.topRequested")(time.Now())
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{
			{Key: "requesterAffiliatedWith", Value: hrEmail},
		}}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$assetId"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "productName", Value: bson.D{{Key: "$first", Value: "$productName"}}},
			{Key: "productType", Value: bson.D{{Key: "$first", Value: "$productType"}}},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}}}},
		bson.D{{Key: "$limit", Value: 4}},
	}

	cursor, err := s.requests.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []TopRequestedAsset
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []TopRequestedAsset{}
	}
	return rows, nil
}

// TypeCounts returns how many of a tenant's requests target returnable and
// non-returnable products.
func (s *Store) TypeCounts(ctx context.Context, hrEmail string) (returnable, nonReturnable int64, err error) {
	defer metrics.TrackDBOperation("requests.typeCounts")(time.Now())
	returnable, err = s.requests.CountDocuments(ctx, bson.M{
		"requesterAffiliatedWith": hrEmail,
		"productType":             models.ProductTypeReturnable,
	})
	if err != nil {
		return 0, 0, err
	}
	nonReturnable, err = s.requests.CountDocuments(ctx, bson.M{
		"requesterAffiliatedWith": hrEmail,
		"productType":             models.ProductTypeNonReturnable,
	})
	if err != nil {
		return 0, 0, err
	}
	return returnable, nonReturnable, nil
}

// LimitedStockAssets lists a tenant's assets with fewer than 10 units left.
func (s *Store) LimitedStockAssets(ctx context.Context, hrEmail string) ([]models.Asset, error) {
	defer metrics.TrackDBOperation("assets.limitedStock")(time.Now())
	filter := bson.M{
		"email":           hrEmail,
		"productQuantity": bson.M{"$lt": 10},
	}
	opts := options.Find().SetSort(bson.D{{Key: "productQuantity", Value: 1}})

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

// TopQuantityAssets lists a tenant's ten best-stocked assets.
func (s *Store) TopQuantityAssets(ctx context.Context, hrEmail string) ([]models.Asset, error) {
	defer metrics.TrackDBOperation("assets.topQuantity")(time.Now())
	opts := options.Find().
		SetSort(bson.D{{Key: "productQuantity", Value: -1}}).
		SetLimit(10)

	cursor, err := s.assets.Find(ctx, bson.M{"email": hrEmail}, opts)
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
