package expense

import (
	"context"
	"time"

	"go-hms/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ExpenseRepository interface {
	Create(ctx context.Context, expense *Expense) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*Expense, error)
	List(ctx context.Context, filter map[string]interface{}, limit, offset int64) ([]Expense, int64, error)
	Update(ctx context.Context, id primitive.ObjectID, updates bson.M) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	SumBetween(ctx context.Context, start, end time.Time) (float64, error)
}

type ExpenseRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewExpenseRepository(mongodb *database.MongodbDB) ExpenseRepository {
	return &ExpenseRepositoryImpl{
		Collection: mongodb.DB.Collection("expenses"),
	}
}

func (r *ExpenseRepositoryImpl) Create(ctx context.Context, expense *Expense) error {
	_, err := r.Collection.InsertOne(ctx, expense)
	return err
}

func (r *ExpenseRepositoryImpl) FindByID(ctx context.Context, id primitive.ObjectID) (*Expense, error) {
	var expense Expense
	if err := r.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&expense); err != nil {
		return nil, err
	}
	return &expense, nil
}

func (r *ExpenseRepositoryImpl) List(ctx context.Context, filter map[string]interface{}, limit, offset int64) ([]Expense, int64, error) {
	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}
	if offset > 0 {
		opts.SetSkip(offset)
	}
	opts.SetSort(bson.D{{Key: "date", Value: -1}})

	cursor, err := r.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var expenses []Expense
	if err = cursor.All(ctx, &expenses); err != nil {
		return nil, 0, err
	}

	total, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return expenses, total, nil
}

func (r *ExpenseRepositoryImpl) Update(ctx context.Context, id primitive.ObjectID, updates bson.M) error {
	res, err := r.Collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": updates})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *ExpenseRepositoryImpl) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.Collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// SumBetween sums expenses dated inside [start, end), cancelled ones excluded
func (r *ExpenseRepositoryImpl) SumBetween(ctx context.Context, start, end time.Time) (float64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"date":   bson.M{"$gte": start, "$lt": end},
			"status": bson.M{"$ne": StatusCancelled},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$amount"},
		}}},
	}

	cursor, err := r.Collection.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	defer cursor.Close(ctx)

	var result []struct {
		Total float64 `bson:"total"`
	}
	if err = cursor.All(ctx, &result); err != nil {
		return 0, err
	}
	if len(result) == 0 {
		return 0, nil
	}
	return result[0].Total, nil
}
