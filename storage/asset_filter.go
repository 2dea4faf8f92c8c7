// storage/asset_filter.go
package storage

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AssetFilter holds the optional query parameters of the asset listing.
// Zero-value fields add no clause.
type AssetFilter struct {
	Email        string // owning HR, exact
	Search       string // case-insensitive substring on product name
	FilterOption string // "available", "stock-out", or a product type
	SortOption   string // "asc" or "desc" by quantity
}

// Query builds the Mongo filter and find options for the listing.
func (f AssetFilter) Query() (bson.M, *options.FindOptions) {
	filter := bson.M{}
	if f.Email != "" {
		filter["email"] = f.Email
	}
	if f.Search != "" {
		filter["productName"] = bson.M{
			"$regex":   regexp.QuoteMeta(f.Search),
			"$options": "i",
		}
	}

	switch f.FilterOption {
	case "":
	case "available":
		filter["productQuantity"] = bson.M{"$gt": 0}
	case "stock-out":
		filter["productQuantity"] = 0
	default:
		filter["productType"] = f.FilterOption
	}

	opts := options.Find()
	switch f.SortOption {
	case "asc":
		opts.SetSort(bson.D{{Key: "productQuantity", Value: 1}})
	case "desc":
		opts.SetSort(bson.D{{Key: "productQuantity", Value: -1}})
	default:
		opts.SetSort(bson.D{{Key: "dateAdded", Value: -1}})
	}
	return filter, opts
}
