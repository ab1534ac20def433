package vacating

import (
	"context"

	"go-hms/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type VacatingRepository interface {
	Create(ctx context.Context, request *VacatingRequest) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*VacatingRequest, error)
	List(ctx context.Context, filter map[string]interface{}, limit, offset int64) ([]VacatingRequest, int64, error)
	FindByTenant(ctx context.Context, tenantID primitive.ObjectID) ([]VacatingRequest, error)
	Update(ctx context.Context, id primitive.ObjectID, updates bson.M) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type VacatingRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewVacatingRepository(mongodb *database.MongodbDB) VacatingRepository {
	return &VacatingRepositoryImpl{
		Collection: mongodb.DB.Collection("vacating_requests"),
	}
}

func (r *VacatingRepositoryImpl) Create(ctx context.Context, request *VacatingRequest) error {
	_, err := r.Collection.InsertOne(ctx, request)
	return err
}

func (r *VacatingRepositoryImpl) FindByID(ctx context.Context, id primitive.ObjectID) (*VacatingRequest, error) {
	var request VacatingRequest
	if err := r.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&request); err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *VacatingRepositoryImpl) List(ctx context.Context, filter map[string]interface{}, limit, offset int64) ([]VacatingRequest, int64, error) {
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

	var requests []VacatingRequest
	if err = cursor.All(ctx, &requests); err != nil {
		return nil, 0, err
	}

	total, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return requests, total, nil
}

func (r *VacatingRepositoryImpl) FindByTenant(ctx context.Context, tenantID primitive.ObjectID) ([]VacatingRequest, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.Collection.Find(ctx, bson.M{"tenant": tenantID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var requests []VacatingRequest
	if err = cursor.All(ctx, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *VacatingRepositoryImpl) Update(ctx context.Context, id primitive.ObjectID, updates bson.M) error {
	res, err := r.Collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": updates})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *VacatingRepositoryImpl) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.Collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
