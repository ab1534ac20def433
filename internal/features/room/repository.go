package room

import (
	"context"

	"go-hms/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type RoomRepository interface {
	Create(ctx context.Context, room *Room) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*Room, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]Room, error)
	FindAll(ctx context.Context, onlyActive bool) ([]Room, error)
	List(ctx context.Context, filter map[string]interface{}, limit, offset int64) ([]Room, int64, error)
	Update(ctx context.Context, id primitive.ObjectID, updates bson.M) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	IncrementOccupancy(ctx context.Context, id primitive.ObjectID, delta int) error
	SetOccupancy(ctx context.Context, id primitive.ObjectID, occupancy int) error
}

type RoomRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewRoomRepository(mongodb *database.MongodbDB) RoomRepository {
	return &RoomRepositoryImpl{
		Collection: mongodb.DB.Collection("rooms"),
	}
}

func (r *RoomRepositoryImpl) Create(ctx context.Context, room *Room) error {
	_, err := r.Collection.InsertOne(ctx, room)
	return err
}

func (r *RoomRepositoryImpl) FindByID(ctx context.Context, id primitive.ObjectID) (*Room, error) {
	var room Room
	if err := r.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&room); err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *RoomRepositoryImpl) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]Room, error) {
	if len(ids) == 0 {
		return []Room{}, nil
	}

	cursor, err := r.Collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rooms []Room
	if err = cursor.All(ctx, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *RoomRepositoryImpl) FindAll(ctx context.Context, onlyActive bool) ([]Room, error) {
	filter := bson.M{}
	if onlyActive {
		filter["active"] = true
	}

	opts := options.Find().SetSort(bson.D{{Key: "number", Value: 1}})
	cursor, err := r.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rooms []Room
	if err = cursor.All(ctx, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

// List returns a page of rooms sorted by the natural key (number ascending)
// plus the unpaged total for the filter.
func (r *RoomRepositoryImpl) List(ctx context.Context, filter map[string]interface{}, limit, offset int64) ([]Room, int64, error) {
	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}
	if offset > 0 {
		opts.SetSkip(offset)
	}
	opts.SetSort(bson.D{{Key: "number", Value: 1}})

	cursor, err := r.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var rooms []Room
	if err = cursor.All(ctx, &rooms); err != nil {
		return nil, 0, err
	}

	total, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return rooms, total, nil
}

func (r *RoomRepositoryImpl) Update(ctx context.Context, id primitive.ObjectID, updates bson.M) error {
	res, err := r.Collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": updates})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *RoomRepositoryImpl) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.Collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// IncrementOccupancy applies a single atomic $inc so concurrent tenant
// creates/deletes against the same room cannot lose updates. Decrements are
// conditioned on occupancy > 0 so the counter never goes negative.
func (r *RoomRepositoryImpl) IncrementOccupancy(ctx context.Context, id primitive.ObjectID, delta int) error {
	filter := bson.M{"_id": id}
	if delta < 0 {
		filter["occupancy"] = bson.M{"$gt": 0}
	}

	res, err := r.Collection.UpdateOne(ctx, filter, bson.M{"$inc": bson.M{"occupancy": delta}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *RoomRepositoryImpl) SetOccupancy(ctx context.Context, id primitive.ObjectID, occupancy int) error {
	_, err := r.Collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"occupancy": occupancy}})
	return err
}
