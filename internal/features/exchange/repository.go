package exchange

import (
	"context"

	"go-hms/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ExchangeRepository interface {
	Create(ctx context.Context, request *ExchangeRequest) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*ExchangeRequest, error)
	List(ctx context.Context, filter map[string]interface{}, limit, offset int64) ([]ExchangeRequest, int64, error)
	FindByTenant(ctx context.Context, tenantID primitive.ObjectID) ([]ExchangeRequest, error)
	Update(ctx context.Context, id primitive.ObjectID, updates bson.M) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type ExchangeRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewExchangeRepository(mongodb *database.MongodbDB) ExchangeRepository {
	return &ExchangeRepositoryImpl{
		Collection: mongodb.DB.Collection("exchange_requests"),
	}
}

func (r *ExchangeRepositoryImpl) Create(ctx context.Context, request *ExchangeRequest) error {
	_, err := r.Collection.InsertOne(ctx, request)
	return err
}

func (r *ExchangeRepositoryImpl) FindByID(ctx context.Context, id primitive.ObjectID) (*ExchangeRequest, error) {
	var request ExchangeRequest
	if err := r.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&request); err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *ExchangeRepositoryImpl) List(ctx context.Context, filter map[string]interface{}, limit, offset int64) ([]ExchangeRequest, int64, error) {
	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}
	if offset > 0 {
		opts.SetSkip(offset)
	}
	opts.SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var requests []ExchangeRequest
	if err = cursor.All(ctx, &requests); err != nil {
		return nil, 0, err
	}

	total, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return requests, total, nil
}

func (r *ExchangeRepositoryImpl) FindByTenant(ctx context.Context, tenantID primitive.ObjectID) ([]ExchangeRequest, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.Collection.Find(ctx, bson.M{"tenant": tenantID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var requests []ExchangeRequest
	if err = cursor.All(ctx, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *ExchangeRepositoryImpl) Update(ctx context.Context, id primitive.ObjectID, updates bson.M) error {
	res, err := r.Collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": updates})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *ExchangeRepositoryImpl) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.Collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
