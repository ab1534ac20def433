package payment

import (
	"context"
	"time"

	"go-hms/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PaymentRepository interface {
	Create(ctx context.Context, payment *Payment) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*Payment, error)
	List(ctx context.Context, filter map[string]interface{}, limit, offset int64) ([]Payment, int64, error)
	Update(ctx context.Context, id primitive.ObjectID, updates bson.M) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	FindByTenant(ctx context.Context, tenantID primitive.ObjectID, limit int64) ([]Payment, error)
	FindLatestCompletedRent(ctx context.Context, tenantID primitive.ObjectID) (*Payment, error)
	SumCompletedBetween(ctx context.Context, start, end time.Time) (float64, error)
	PendingTotals(ctx context.Context) (int64, float64, error)
	GroupCompletedBetween(ctx context.Context, field string, start, end time.Time) ([]GroupSum, error)
	CountsByStatus(ctx context.Context) (map[string]int64, error)
}

type PaymentRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewPaymentRepository(mongodb *database.MongodbDB) PaymentRepository {
	return &PaymentRepositoryImpl{
		Collection: mongodb.DB.Collection("payments"),
	}
}

func (r *PaymentRepositoryImpl) Create(ctx context.Context, payment *Payment) error {
	_, err := r.Collection.InsertOne(ctx, payment)
	return err
}

func (r *PaymentRepositoryImpl) FindByID(ctx context.Context, id primitive.ObjectID) (*Payment, error) {
	var payment Payment
	if err := r.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *PaymentRepositoryImpl) List(ctx context.Context, filter map[string]interface{}, limit, offset int64) ([]Payment, int64, error) {
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

	var payments []Payment
	if err = cursor.All(ctx, &payments); err != nil {
		return nil, 0, err
	}

	total, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return payments, total, nil
}

func (r *PaymentRepositoryImpl) Update(ctx context.Context, id primitive.ObjectID, updates bson.M) error {
	res, err := r.Collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": updates})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *PaymentRepositoryImpl) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.Collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *PaymentRepositoryImpl) FindByTenant(ctx context.Context, tenantID primitive.ObjectID, limit int64) ([]Payment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := r.Collection.Find(ctx, bson.M{"tenant": tenantID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var payments []Payment
	if err = cursor.All(ctx, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *PaymentRepositoryImpl) FindLatestCompletedRent(ctx context.Context, tenantID primitive.ObjectID) (*Payment, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}})
	filter := bson.M{"tenant": tenantID, "type": TypeRent, "status": StatusCompleted}

	var payment Payment
	if err := r.Collection.FindOne(ctx, filter, opts).Decode(&payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

// SumCompletedBetween sums completed payments created inside [start, end)
func (r *PaymentRepositoryImpl) SumCompletedBetween(ctx context.Context, start, end time.Time) (float64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"status":     StatusCompleted,
			"created_at": bson.M{"$gte": start, "$lt": end},
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

func (r *PaymentRepositoryImpl) PendingTotals(ctx context.Context) (int64, float64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"status": StatusPending}}},
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"count": bson.M{"$sum": 1},
			"total": bson.M{"$sum": "$amount"},
		}}},
	}

	cursor, err := r.Collection.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, 0, err
	}
	defer cursor.Close(ctx)

	var result []struct {
		Count int64   `bson:"count"`
		Total float64 `bson:"total"`
	}
	if err = cursor.All(ctx, &result); err != nil {
		return 0, 0, err
	}
	if len(result) == 0 {
		return 0, 0, nil
	}
	return result[0].Count, result[0].Total, nil
}

// GroupCompletedBetween buckets completed payments in [start, end) by the
// given field ("method" or "type"), returning count and sum per bucket.
func (r *PaymentRepositoryImpl) GroupCompletedBetween(ctx context.Context, field string, start, end time.Time) ([]GroupSum, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"status":     StatusCompleted,
			"created_at": bson.M{"$gte": start, "$lt": end},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":   "$" + field,
			"count": bson.M{"$sum": 1},
			"total": bson.M{"$sum": "$amount"},
		}}},
	}

	cursor, err := r.Collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var groups []GroupSum
	if err = cursor.All(ctx, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

func (r *PaymentRepositoryImpl) CountsByStatus(ctx context.Context) (map[string]int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   "$status",
			"count": bson.M{"$sum": 1},
		}}},
	}

	cursor, err := r.Collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Status string `bson:"_id"`
		Count  int64  `bson:"count"`
	}
	if err = cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}
