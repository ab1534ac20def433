package property

import (
	"context"

	"go-hms/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PropertyRepository interface {
	Find(ctx context.Context) (*Property, error)
	Upsert(ctx context.Context, updates bson.M) error
}

type PropertyRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewPropertyRepository(mongodb *database.MongodbDB) PropertyRepository {
	return &PropertyRepositoryImpl{
		Collection: mongodb.DB.Collection("property"),
	}
}

// Find returns the single property profile document.
func (r *PropertyRepositoryImpl) Find(ctx context.Context) (*Property, error) {
	var property Property
	if err := r.Collection.FindOne(ctx, bson.M{}).Decode(&property); err != nil {
		return nil, err
	}
	return &property, nil
}

func (r *PropertyRepositoryImpl) Upsert(ctx context.Context, updates bson.M) error {
	opts := options.Update().SetUpsert(true)
	_, err := r.Collection.UpdateOne(ctx, bson.M{}, bson.M{"$set": updates}, opts)
	return err
}
