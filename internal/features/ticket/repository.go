package ticket

import (
	"context"
	"time"

	"go-hms/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type TicketRepository interface {
	Create(ctx context.Context, ticket *Ticket) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*Ticket, error)
	List(ctx context.Context, filter map[string]interface{}, limit, offset int64) ([]Ticket, int64, error)
	Update(ctx context.Context, id primitive.ObjectID, updates bson.M) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	FindByTenant(ctx context.Context, tenantID primitive.ObjectID, statuses []string) ([]Ticket, error)
	CountOpen(ctx context.Context) (int64, error)
	CountResolvedBetween(ctx context.Context, start, end time.Time) (int64, error)
	CountsByField(ctx context.Context, field string) (map[string]int64, error)
}

type TicketRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewTicketRepository(mongodb *database.MongodbDB) TicketRepository {
	return &TicketRepositoryImpl{
		Collection: mongodb.DB.Collection("tickets"),
	}
}

func (r *TicketRepositoryImpl) Create(ctx context.Context, ticket *Ticket) error {
	_, err := r.Collection.InsertOne(ctx, ticket)
	return err
}

func (r *TicketRepositoryImpl) FindByID(ctx context.Context, id primitive.ObjectID) (*Ticket, error) {
	var ticket Ticket
	if err := r.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&ticket); err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (r *TicketRepositoryImpl) List(ctx context.Context, filter map[string]interface{}, limit, offset int64) ([]Ticket, int64, error) {
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

	var tickets []Ticket
	if err = cursor.All(ctx, &tickets); err != nil {
		return nil, 0, err
	}

	total, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return tickets, total, nil
}

func (r *TicketRepositoryImpl) Update(ctx context.Context, id primitive.ObjectID, updates bson.M) error {
	res, err := r.Collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": updates})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *TicketRepositoryImpl) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.Collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *TicketRepositoryImpl) FindByTenant(ctx context.Context, tenantID primitive.ObjectID, statuses []string) ([]Ticket, error) {
	filter := bson.M{"tenant": tenantID}
	if len(statuses) > 0 {
		filter["status"] = bson.M{"$in": statuses}
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var tickets []Ticket
	if err = cursor.All(ctx, &tickets); err != nil {
		return nil, err
	}
	return tickets, nil
}

func (r *TicketRepositoryImpl) CountOpen(ctx context.Context) (int64, error) {
	return r.Collection.CountDocuments(ctx, bson.M{
		"status": bson.M{"$in": bson.A{StatusOpen, StatusInProgress}},
	})
}

func (r *TicketRepositoryImpl) CountResolvedBetween(ctx context.Context, start, end time.Time) (int64, error) {
	return r.Collection.CountDocuments(ctx, bson.M{
		"status":     StatusResolved,
		"updated_at": bson.M{"$gte": start, "$lt": end},
	})
}

func (r *TicketRepositoryImpl) CountsByField(ctx context.Context, field string) (map[string]int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   "$" + field,
			"count": bson.M{"$sum": 1},
		}}},
	}

	cursor, err := r.Collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Key   string `bson:"_id"`
		Count int64  `bson:"count"`
	}
	if err = cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Key] = row.Count
	}
	return counts, nil
}
