// models/asset_request.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AssetRequest tracks one employee's request for one unit of an asset from
// creation through approval, rejection, cancellation or return. Product
// name and type are denormalized onto the request so listings and reports
// do not need a lookup per row.
type AssetRequest struct {
	ID                      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	AssetID                 primitive.ObjectID `bson:"assetId" json:"assetId"`
	RequesterEmail          string             `bson:"requesterEmail" json:"requesterEmail"`
	RequesterName           string             `bson:"requesterName,omitempty" json:"requesterName,omitempty"`
	RequesterAffiliatedWith string             `bson:"requesterAffiliatedWith" json:"requesterAffiliatedWith"`
	ProductName             string             `bson:"productName" json:"productName"`
	ProductType             string             `bson:"productType" json:"productType"`
	Note                    string             `bson:"note,omitempty" json:"note,omitempty"`
	Status                  string             `bson:"status" json:"status"` // pending, approved, rejected, cancelled, returned
	RequestDate             time.Time          `bson:"requestDate" json:"requestDate"`
	ApprovalDate            *time.Time         `bson:"approvalDate,omitempty" json:"approvalDate,omitempty"`
	RejectedDate            *time.Time         `bson:"rejectedDate,omitempty" json:"rejectedDate,omitempty"`
	CancelledDate           *time.Time         `bson:"cancelledDate,omitempty" json:"cancelledDate,omitempty"`
	ReturnedDate            *time.Time         `bson:"returnedDate,omitempty" json:"returnedDate,omitempty"`
}
