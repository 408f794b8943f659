package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/portalteam/client-portal/internal/core/domain"
)

// MongoProfileRepository reads and mutates per-identity role records.
type MongoProfileRepository struct {
	coll *mongo.Collection
}

func NewProfileRepository(db *mongo.Database) *MongoProfileRepository {
	return &MongoProfileRepository{coll: db.Collection(profileCollection)}
}

func (r *MongoProfileRepository) FindByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	var mp mongoProfile
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&mp); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find profile: %w", err)
	}

	return &domain.Profile{
		IdentityID: mp.ID,
		Email:      mp.Email,
		Role:       mp.Role,
		CreatedAt:  unixToTime(mp.CreatedAt),
	}, nil
}

func (r *MongoProfileRepository) Role(ctx context.Context, identityID string) (string, error) {
	var mp mongoProfile
	if err := r.coll.FindOne(ctx, bson.M{"_id": identityID}).Decode(&mp); err != nil {
		if err == mongo.ErrNoDocuments {
			return "", domain.ErrNotFound
		}
		return "", fmt.Errorf("find profile: %w", err)
	}
	return mp.Role, nil
}

func (r *MongoProfileRepository) SetRole(ctx context.Context, identityID, role string) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": identityID}, bson.M{"$set": bson.M{"role": role}})
	if err != nil {
		return fmt.Errorf("set role: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *MongoProfileRepository) Delete(ctx context.Context, identityID string) error {
	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": identityID}); err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	return nil
}
