package room

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type memoryRoomRepo struct {
	rooms   map[primitive.ObjectID]*Room
	updates []bson.M
}

func newMemoryRoomRepo() *memoryRoomRepo {
	return &memoryRoomRepo{rooms: make(map[primitive.ObjectID]*Room)}
}

func (m *memoryRoomRepo) Create(ctx context.Context, r *Room) error {
	m.rooms[r.ID] = r
	return nil
}

func (m *memoryRoomRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*Room, error) {
	r, ok := m.rooms[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return r, nil
}

func (m *memoryRoomRepo) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]Room, error) {
	var out []Room
	for _, id := range ids {
		if r, ok := m.rooms[id]; ok {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (m *memoryRoomRepo) FindAll(ctx context.Context, onlyActive bool) ([]Room, error) {
	var out []Room
	for _, r := range m.rooms {
		if onlyActive && !r.Active {
			continue
		}
		out = append(out, *r)
	}
	return out, nil
}

func (m *memoryRoomRepo) List(ctx context.Context, filter map[string]interface{}, limit, offset int64) ([]Room, int64, error) {
	all, _ := m.FindAll(ctx, false)
	return all, int64(len(all)), nil
}

func (m *memoryRoomRepo) Update(ctx context.Context, id primitive.ObjectID, updates bson.M) error {
	if _, ok := m.rooms[id]; !ok {
		return mongo.ErrNoDocuments
	}
	m.updates = append(m.updates, updates)
	return nil
}

func (m *memoryRoomRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, ok := m.rooms[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(m.rooms, id)
	return nil
}

func (m *memoryRoomRepo) IncrementOccupancy(ctx context.Context, id primitive.ObjectID, delta int) error {
	r, ok := m.rooms[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	r.Occupancy += delta
	return nil
}

func (m *memoryRoomRepo) SetOccupancy(ctx context.Context, id primitive.ObjectID, occupancy int) error {
	r, ok := m.rooms[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	r.Occupancy = occupancy
	return nil
}

func TestBuildListFilterAllEqualsAbsent(t *testing.T) {
	assert.Equal(t, BuildListFilter("", "", ""), BuildListFilter("", "all", "all"))
	assert.NotEqual(t, BuildListFilter("", "", ""), BuildListFilter("", "available", ""))
}

func TestBuildListFilterSearchMatchesNumber(t *testing.T) {
	filter := BuildListFilter("A-1", "", "")
	assert.Contains(t, filter, "number")
}

func TestCreateRoomDefaults(t *testing.T) {
	repo := newMemoryRoomRepo()
	svc := NewRoomService(repo)

	r := &Room{Number: "A-101", Type: TypeSingle, Rent: 7500, Occupancy: 5}
	require.NoError(t, svc.CreateRoom(context.Background(), r))

	assert.Equal(t, 1, r.Capacity)
	assert.Equal(t, StatusAvailable, r.Status)
	assert.True(t, r.Active)
	// Occupancy always starts at zero regardless of input.
	assert.Zero(t, r.Occupancy)
}

func TestUpdateRoomDropsOccupancyAndUnknownFields(t *testing.T) {
	repo := newMemoryRoomRepo()
	svc := NewRoomService(repo)

	r := &Room{Number: "A-101"}
	require.NoError(t, svc.CreateRoom(context.Background(), r))

	err := svc.UpdateRoom(context.Background(), r.ID, map[string]interface{}{
		"rent":      8000,
		"occupancy": 3,
		"garbage":   "x",
	})
	require.NoError(t, err)

	require.Len(t, repo.updates, 1)
	assert.Contains(t, repo.updates[0], "rent")
	assert.NotContains(t, repo.updates[0], "occupancy")
	assert.NotContains(t, repo.updates[0], "garbage")
}

func TestUpdateRoomWithNoKnownFieldsIsNoop(t *testing.T) {
	repo := newMemoryRoomRepo()
	svc := NewRoomService(repo)

	err := svc.UpdateRoom(context.Background(), primitive.NewObjectID(), map[string]interface{}{"occupancy": 3})
	require.NoError(t, err)
	assert.Empty(t, repo.updates)
}

func TestComputeStats(t *testing.T) {
	stats := ComputeStats([]Room{
		{Type: TypeSingle, Status: StatusAvailable, Capacity: 1, Occupancy: 0},
		{Type: TypeSingle, Status: StatusOccupied, Capacity: 1, Occupancy: 1},
		{Type: TypeDouble, Status: StatusMaintenance, Capacity: 2, Occupancy: 1},
	})

	assert.Equal(t, int64(3), stats.Total)
	assert.Equal(t, int64(2), stats.ByType[TypeSingle])
	assert.Equal(t, int64(1), stats.ByType[TypeDouble])
	assert.Equal(t, int64(1), stats.ByStatus[StatusMaintenance])
	assert.Equal(t, int64(4), stats.TotalCapacity)
	assert.Equal(t, int64(2), stats.TotalOccupancy)
}

func TestComputeStatsEmpty(t *testing.T) {
	stats := ComputeStats(nil)
	assert.Zero(t, stats.Total)
	assert.Empty(t, stats.ByType)
}
