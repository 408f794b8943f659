package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/portalteam/client-portal/internal/core/domain"
)

const (
	identityCollection = "identities"
	profileCollection  = "profiles"
)

// MongoIdentityRepository persists authentication identities. It also
// owns the companion profile insert so that every identity is created
// with a default-role profile.
type MongoIdentityRepository struct {
	identities *mongo.Collection
	profiles   *mongo.Collection
}

func NewIdentityRepository(db *mongo.Database) *MongoIdentityRepository {
	return &MongoIdentityRepository{
		identities: db.Collection(identityCollection),
		profiles:   db.Collection(profileCollection),
	}
}

// EnsureIndexes creates the unique email index that backs
// idempotent-by-email provisioning. Call once at startup.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(identityCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("identity email index: %w", err)
	}
	return nil
}

type mongoIdentity struct {
	ID           string `bson:"_id"`
	Email        string `bson:"email"`
	PasswordHash string `bson:"password_hash"`
	CreatedAt    int64  `bson:"created_at"`
	UpdatedAt    int64  `bson:"updated_at"`
}

type mongoProfile struct {
	ID        string `bson:"_id"` // identity id
	Email     string `bson:"email"`
	Role      string `bson:"role"`
	CreatedAt int64  `bson:"created_at"`
}

func (r *MongoIdentityRepository) Create(ctx context.Context, identity *domain.Identity) (*domain.Identity, error) {
	doc := mongoIdentity{
		ID:           identity.ID,
		Email:        identity.Email,
		PasswordHash: identity.PasswordHash,
		CreatedAt:    identity.CreatedAt.Unix(),
		UpdatedAt:    identity.UpdatedAt.Unix(),
	}

	if _, err := r.identities.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrIdentityExists
		}
		return nil, fmt.Errorf("insert identity: %w", err)
	}

	profile := mongoProfile{
		ID:        identity.ID,
		Email:     identity.Email,
		Role:      domain.RoleClient,
		CreatedAt: identity.CreatedAt.Unix(),
	}
	if _, err := r.profiles.InsertOne(ctx, profile); err != nil {
		return nil, fmt.Errorf("insert profile: %w", err)
	}

	return identity, nil
}

func (r *MongoIdentityRepository) FindByEmail(ctx context.Context, email string) (*domain.Identity, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *MongoIdentityRepository) FindByID(ctx context.Context, id string) (*domain.Identity, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *MongoIdentityRepository) findOne(ctx context.Context, filter bson.M) (*domain.Identity, error) {
	var mi mongoIdentity
	if err := r.identities.FindOne(ctx, filter).Decode(&mi); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find identity: %w", err)
	}

	return &domain.Identity{
		ID:           mi.ID,
		Email:        mi.Email,
		PasswordHash: mi.PasswordHash,
		CreatedAt:    unixToTime(mi.CreatedAt),
		UpdatedAt:    unixToTime(mi.UpdatedAt),
	}, nil
}

func (r *MongoIdentityRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	res, err := r.identities.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"password_hash": passwordHash,
		"updated_at":    time.Now().UTC().Unix(),
	}})
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *MongoIdentityRepository) Delete(ctx context.Context, id string) error {
	res, err := r.identities.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete identity: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
