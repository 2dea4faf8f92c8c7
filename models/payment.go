// models/payment.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment records one tier purchase. The (email, limit) pair is treated as
// a uniqueness key so the same tier cannot be bought twice.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email         string             `bson:"email" json:"email"`
	Limit         int                `bson:"limit" json:"limit"`
	Package       string             `bson:"package,omitempty" json:"package,omitempty"`
	TransactionID string             `bson:"transactionId" json:"transactionId"`
	Date          time.Time          `bson:"date" json:"date"`
	Status        string             `bson:"status" json:"status"`
}
