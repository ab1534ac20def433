package room

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RoomService interface {
	ListRooms(ctx context.Context, search, status, roomType string, page, limit int64) ([]Room, int64, error)
	GetRoom(ctx context.Context, id primitive.ObjectID) (*Room, error)
	CreateRoom(ctx context.Context, room *Room) error
	UpdateRoom(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error
	DeleteRoom(ctx context.Context, id primitive.ObjectID) error
	GetStats(ctx context.Context) (*Stats, error)
}

type RoomServiceImpl struct {
	RoomRepo RoomRepository
}

func NewRoomService(roomRepo RoomRepository) RoomService {
	return &RoomServiceImpl{
		RoomRepo: roomRepo,
	}
}

// BuildListFilter maps the list query params to a store filter. "all" and
// empty are equivalent for the categorical filters.
func BuildListFilter(search, status, roomType string) map[string]interface{} {
	filter := make(map[string]interface{})
	if search != "" {
		filter["number"] = bson.M{"$regex": primitive.Regex{Pattern: search, Options: "i"}}
	}
	if status != "" && status != "all" {
		filter["status"] = status
	}
	if roomType != "" && roomType != "all" {
		filter["type"] = roomType
	}
	return filter
}

func (s *RoomServiceImpl) ListRooms(ctx context.Context, search, status, roomType string, page, limit int64) ([]Room, int64, error) {
	filter := BuildListFilter(search, status, roomType)
	offset := (page - 1) * limit
	return s.RoomRepo.List(ctx, filter, limit, offset)
}

func (s *RoomServiceImpl) GetRoom(ctx context.Context, id primitive.ObjectID) (*Room, error) {
	return s.RoomRepo.FindByID(ctx, id)
}

func (s *RoomServiceImpl) CreateRoom(ctx context.Context, room *Room) error {
	if room.ID.IsZero() {
		room.ID = primitive.NewObjectID()
	}
	if room.Capacity <= 0 {
		room.Capacity = 1
	}
	if room.Status == "" {
		room.Status = StatusAvailable
	}
	room.Occupancy = 0
	room.Active = true
	room.CreatedAt = time.Now()
	room.UpdatedAt = time.Now()

	return s.RoomRepo.Create(ctx, room)
}

// updatableFields is the explicit allow-list for partial updates. Occupancy
// is deliberately absent: only the tenant flows and reconciliation move it.
var updatableFields = map[string]bool{
	"number":   true,
	"type":     true,
	"rent":     true,
	"capacity": true,
	"status":   true,
	"active":   true,
}

func (s *RoomServiceImpl) UpdateRoom(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	set := bson.M{}
	for field, value := range updates {
		if updatableFields[field] {
			set[field] = value
		}
	}
	if len(set) == 0 {
		return nil
	}
	set["updated_at"] = time.Now()

	return s.RoomRepo.Update(ctx, id, set)
}

func (s *RoomServiceImpl) DeleteRoom(ctx context.Context, id primitive.ObjectID) error {
	return s.RoomRepo.Delete(ctx, id)
}

func (s *RoomServiceImpl) GetStats(ctx context.Context) (*Stats, error) {
	rooms, err := s.RoomRepo.FindAll(ctx, false)
	if err != nil {
		return nil, err
	}
	return ComputeStats(rooms), nil
}

// ComputeStats rolls the room list up into per-type and per-status counts
// plus capacity/occupancy totals.
func ComputeStats(rooms []Room) *Stats {
	stats := &Stats{
		ByType:   make(map[string]int64),
		ByStatus: make(map[string]int64),
	}
	for _, r := range rooms {
		stats.Total++
		stats.ByType[r.Type]++
		stats.ByStatus[r.Status]++
		stats.TotalCapacity += int64(r.Capacity)
		stats.TotalOccupancy += int64(r.Occupancy)
	}
	return stats
}
