// models/team.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TeamMember struct {
	UserID primitive.ObjectID `bson:"userId" json:"userId"`
	Email  string             `bson:"email" json:"email"`
	Name   string             `bson:"name,omitempty" json:"name,omitempty"`
}

// Team holds the employees affiliated with one HR account. A member may
// belong to at most one team at a time; that is enforced by the handlers,
// not by the store.
type Team struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	HREmail   string             `bson:"hrEmail" json:"hrEmail"`
	Members   []TeamMember       `bson:"members" json:"members"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
