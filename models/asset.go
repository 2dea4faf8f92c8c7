// models/asset.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ProductTypeReturnable    = "returnable"
	ProductTypeNonReturnable = "non-returnable"
)

// Asset is a piece of company equipment owned by one HR tenant.
// ProductQuantity is the authoritative count of currently-available units
// and must never go negative: one unit is reserved when a request is
// created and released again on every non-fulfilling transition.
type Asset struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ProductName     string             `bson:"productName" json:"productName"`
	ProductType     string             `bson:"productType" json:"productType"` // returnable, non-returnable
	ProductQuantity int64              `bson:"productQuantity" json:"productQuantity"`
	Email           string             `bson:"email" json:"email"` // owning HR
	DateAdded       time.Time          `bson:"dateAdded" json:"dateAdded"`
	DateUpdated     *time.Time         `bson:"dateUpdated,omitempty" json:"dateUpdated,omitempty"`
}
