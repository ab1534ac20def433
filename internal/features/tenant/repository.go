package tenant

import (
	"context"
	"time"

	"go-hms/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type TenantRepository interface {
	Create(ctx context.Context, tenant *Tenant) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*Tenant, error)
	List(ctx context.Context, filter map[string]interface{}, limit, offset int64) ([]Tenant, int64, error)
	Update(ctx context.Context, id primitive.ObjectID, updates bson.M) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context, filter bson.M) (int64, error)
	FindRecent(ctx context.Context, limit int64) ([]Tenant, error)
	FindAllSorted(ctx context.Context) ([]Tenant, error)
	CountsByRoom(ctx context.Context) (map[primitive.ObjectID]int64, error)
}

type TenantRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewTenantRepository(mongodb *database.MongodbDB) TenantRepository {
	return &TenantRepositoryImpl{
		Collection: mongodb.DB.Collection("tenants"),
	}
}

func (r *TenantRepositoryImpl) Create(ctx context.Context, tenant *Tenant) error {
	_, err := r.Collection.InsertOne(ctx, tenant)
	return err
}

func (r *TenantRepositoryImpl) FindByID(ctx context.Context, id primitive.ObjectID) (*Tenant, error) {
	var tenant Tenant
	if err := r.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&tenant); err != nil {
		return nil, err
	}
	return &tenant, nil
}

func (r *TenantRepositoryImpl) List(ctx context.Context, filter map[string]interface{}, limit, offset int64) ([]Tenant, int64, error) {
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

	var tenants []Tenant
	if err = cursor.All(ctx, &tenants); err != nil {
		return nil, 0, err
	}

	total, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return tenants, total, nil
}

func (r *TenantRepositoryImpl) Update(ctx context.Context, id primitive.ObjectID, updates bson.M) error {
	res, err := r.Collection.UpdateOne(ctx, bson.M{"_id": id}, updates)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *TenantRepositoryImpl) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.Collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *TenantRepositoryImpl) Count(ctx context.Context, filter bson.M) (int64, error) {
	return r.Collection.CountDocuments(ctx, filter)
}

func (r *TenantRepositoryImpl) FindRecent(ctx context.Context, limit int64) ([]Tenant, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.Collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var tenants []Tenant
	if err = cursor.All(ctx, &tenants); err != nil {
		return nil, err
	}
	return tenants, nil
}

func (r *TenantRepositoryImpl) FindAllSorted(ctx context.Context) ([]Tenant, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.Collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var tenants []Tenant
	if err = cursor.All(ctx, &tenants); err != nil {
		return nil, err
	}
	return tenants, nil
}

// countsByRoomMatch selects every room-assigned tenant. Occupancy counts
// seats, so an inactive tenant still assigned to a room holds one; the live
// counters adjust on assignment changes only, never on the active flag.
func countsByRoomMatch() bson.M {
	return bson.M{"room": bson.M{"$ne": nil}}
}

// CountsByRoom groups room-assigned tenants by room id. The reconciliation
// job compares these counts against the room occupancy counters.
func (r *TenantRepositoryImpl) CountsByRoom(ctx context.Context) (map[primitive.ObjectID]int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: countsByRoomMatch()}},
		{{Key: "$group", Value: bson.M{
			"_id":   "$room",
			"count": bson.M{"$sum": 1},
		}}},
	}

	cursor, err := r.Collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Room  primitive.ObjectID `bson:"_id"`
		Count int64              `bson:"count"`
	}
	if err = cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	counts := make(map[primitive.ObjectID]int64, len(rows))
	for _, row := range rows {
		counts[row.Room] = row.Count
	}
	return counts, nil
}

// NewSinceFilter is the "new this month" filter used by stats and reports
func NewSinceFilter(since time.Time) bson.M {
	return bson.M{"created_at": bson.M{"$gte": since}}
}
