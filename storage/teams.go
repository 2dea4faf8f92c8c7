// storage/teams.go
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

func (s *Store) TeamByHREmail(ctx context.Context, hrEmail string) (*models.Team, error) {
	defer metrics.TrackDBOperation("teams.findOne")(time.Now())
	var team models.Team
	if err := s.teams.FindOne(ctx, bson.M{"hrEmail": hrEmail}).Decode(&team); err != nil {
		return nil, mapFindErr(err)
	}
	return &team, nil
}

func (s *Store) InsertTeam(ctx context.Context, team *models.Team) error {
	defer metrics.TrackDBOperation("teams.insert")(time.Now())
	if team.ID.IsZero() {
		team.ID = primitive.NewObjectID()
	}
	now := time.Now().UTC()
	team.CreatedAt = now
	team.UpdatedAt = now
	_, err := s.teams.InsertOne(ctx, team)
	return err
}

// AddTeamMembers appends members to an HR's team. $addToSet keeps the
// member set free of duplicates even if the caller's diff raced.
func (s *Store) AddTeamMembers(ctx context.Context, hrEmail string, members []models.TeamMember) error {
	defer metrics.TrackDBOperation("teams.addMembers")(time.Now())
	res, err := s.teams.UpdateOne(ctx,
		bson.M{"hrEmail": hrEmail},
		bson.M{
			"$addToSet": bson.M{"members": bson.M{"$each": members}},
			"$set":      bson.M{"updatedAt": time.Now().UTC()},
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

// PullTeamMember removes one member by user id from an HR's team.
func (s *Store) PullTeamMember(ctx context.Context, hrEmail string, userID primitive.ObjectID) error {
	defer metrics.TrackDBOperation("teams.pullMember")(time.Now())
	res, err := s.teams.UpdateOne(ctx,
		bson.M{"hrEmail": hrEmail},
		bson.M{
			"$pull": bson.M{"members": bson.M{"userId": userID}},
			"$set":  bson.M{"updatedAt": time.Now().UTC()},
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
