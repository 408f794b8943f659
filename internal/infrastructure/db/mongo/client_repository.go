package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/portalteam/client-portal/internal/core/domain"
	"github.com/portalteam/client-portal/internal/core/ports"
)

const clientCollection = "clients"

// MongoClientRepository persists business-facing client records.
type MongoClientRepository struct {
	coll *mongo.Collection
}

func NewClientRepository(db *mongo.Database) *MongoClientRepository {
	return &MongoClientRepository{coll: db.Collection(clientCollection)}
}

type mongoClient struct {
	ID           string `bson:"_id"`
	Name         string `bson:"name"`
	Email        string `bson:"email"`
	BusinessName string `bson:"business_name"`
	CreatedAt    int64  `bson:"created_at"`
}

func (r *MongoClientRepository) Insert(ctx context.Context, record *domain.ClientRecord) (*domain.ClientRecord, error) {
	doc := mongoClient{
		ID:           record.ID,
		Name:         record.Name,
		Email:        record.Email,
		BusinessName: record.BusinessName,
		CreatedAt:    record.CreatedAt.Unix(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert client: %w", err)
	}
	return record, nil
}

func (r *MongoClientRepository) FindByEmail(ctx context.Context, email string) (*domain.ClientRecord, error) {
	var mc mongoClient
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&mc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find client: %w", err)
	}
	rec := toDomainClient(mc)
	return &rec, nil
}

func (r *MongoClientRepository) Update(ctx context.Context, email string, patch ports.ClientPatch) error {
	set := bson.M{}
	if patch.Name != "" {
		set["name"] = patch.Name
	}
	if patch.BusinessName != "" {
		set["business_name"] = patch.BusinessName
	}
	if len(set) == 0 {
		return nil
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *MongoClientRepository) DeleteByEmail(ctx context.Context, email string) error {
	if _, err := r.coll.DeleteOne(ctx, bson.M{"email": email}); err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	return nil
}

// List returns all client records, newest first.
func (r *MongoClientRepository) List(ctx context.Context) ([]domain.ClientRecord, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer cursor.Close(ctx)

	var records []domain.ClientRecord
	for cursor.Next(ctx) {
		var mc mongoClient
		if err := cursor.Decode(&mc); err != nil {
			return nil, fmt.Errorf("decode client: %w", err)
		}
		records = append(records, toDomainClient(mc))
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	return records, nil
}

func toDomainClient(mc mongoClient) domain.ClientRecord {
	return domain.ClientRecord{
		ID:           mc.ID,
		Name:         mc.Name,
		Email:        mc.Email,
		BusinessName: mc.BusinessName,
		CreatedAt:    unixToTime(mc.CreatedAt),
	}
}
