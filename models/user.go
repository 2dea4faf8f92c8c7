// models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name           string             `bson:"name" json:"name"`
	Email          string             `bson:"email" json:"email"`
	Role           string             `bson:"role" json:"role"` // hr, employee, admin
	AffiliatedWith string             `bson:"affiliatedWith,omitempty" json:"affiliatedWith,omitempty"`
	Limit          int                `bson:"limit" json:"limit"`
	Package        string             `bson:"package,omitempty" json:"package,omitempty"`
	CompanyPhoto   string             `bson:"companyPhoto,omitempty" json:"companyPhoto,omitempty"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
}
