// inventory/filter.go
package inventory

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
)

// RequestFilter holds the optional filters accepted when listing requests.
// A zero-value field adds no clause at all, so an absent query parameter is
// never conflated with "match empty".
type RequestFilter struct {
	RequesterEmail string // exact
	HREmail        string // exact, matches requesterAffiliatedWith
	ProductName    string // case-insensitive substring
	Status         string // exact
	ProductType    string // exact
	Search         string // case-insensitive substring on requester name or email
}

// BSON builds the Mongo query for the filter.
func (f RequestFilter) BSON() bson.M {
	filter := bson.M{}
	if f.RequesterEmail != "" {
		filter["requesterEmail"] = f.RequesterEmail
	}
	if f.HREmail != "" {
		filter["requesterAffiliatedWith"] = f.HREmail
	}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	if f.ProductType != "" {
		filter["productType"] = f.ProductType
	}
	if f.ProductName != "" {
		filter["productName"] = bson.M{
			"$regex":   regexp.QuoteMeta(f.ProductName),
			"$options": "i",
		}
	}
	if f.Search != "" {
		pattern := bson.M{
			"$regex":   regexp.QuoteMeta(f.Search),
			"$options": "i",
		}
		filter["$or"] = []bson.M{
			{"requesterName": pattern},
			{"requesterEmail": pattern},
		}
	}
	return filter
}
