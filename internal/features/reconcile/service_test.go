package reconcile

import (
	"context"
	"testing"

	"go-hms/internal/features/room"
	"go-hms/internal/features/tenant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type stubRoomRepo struct {
	rooms map[primitive.ObjectID]*room.Room
}

func (s *stubRoomRepo) Create(ctx context.Context, r *room.Room) error { return nil }
func (s *stubRoomRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*room.Room, error) {
	return nil, mongo.ErrNoDocuments
}
func (s *stubRoomRepo) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]room.Room, error) {
	return nil, nil
}
func (s *stubRoomRepo) FindAll(ctx context.Context, onlyActive bool) ([]room.Room, error) {
	var out []room.Room
	for _, r := range s.rooms {
		out = append(out, *r)
	}
	return out, nil
}
func (s *stubRoomRepo) List(ctx context.Context, filter map[string]interface{}, limit, offset int64) ([]room.Room, int64, error) {
	return nil, 0, nil
}
func (s *stubRoomRepo) Update(ctx context.Context, id primitive.ObjectID, updates bson.M) error {
	return nil
}
func (s *stubRoomRepo) Delete(ctx context.Context, id primitive.ObjectID) error { return nil }
func (s *stubRoomRepo) IncrementOccupancy(ctx context.Context, id primitive.ObjectID, delta int) error {
	return nil
}
func (s *stubRoomRepo) SetOccupancy(ctx context.Context, id primitive.ObjectID, occupancy int) error {
	r, ok := s.rooms[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	r.Occupancy = occupancy
	return nil
}

type stubTenantRepo struct {
	counts map[primitive.ObjectID]int64
}

func (s *stubTenantRepo) Create(ctx context.Context, t *tenant.Tenant) error { return nil }
func (s *stubTenantRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*tenant.Tenant, error) {
	return nil, mongo.ErrNoDocuments
}
func (s *stubTenantRepo) List(ctx context.Context, filter map[string]interface{}, limit, offset int64) ([]tenant.Tenant, int64, error) {
	return nil, 0, nil
}
func (s *stubTenantRepo) Update(ctx context.Context, id primitive.ObjectID, updates bson.M) error {
	return nil
}
func (s *stubTenantRepo) Delete(ctx context.Context, id primitive.ObjectID) error { return nil }
func (s *stubTenantRepo) Count(ctx context.Context, filter bson.M) (int64, error) { return 0, nil }
func (s *stubTenantRepo) FindRecent(ctx context.Context, limit int64) ([]tenant.Tenant, error) {
	return nil, nil
}
func (s *stubTenantRepo) FindAllSorted(ctx context.Context) ([]tenant.Tenant, error) {
	return nil, nil
}
func (s *stubTenantRepo) CountsByRoom(ctx context.Context) (map[primitive.ObjectID]int64, error) {
	return s.counts, nil
}

func TestReconcileFixesDriftedCounters(t *testing.T) {
	driftedID := primitive.NewObjectID()
	correctID := primitive.NewObjectID()
	emptyID := primitive.NewObjectID()

	roomRepo := &stubRoomRepo{rooms: map[primitive.ObjectID]*room.Room{
		driftedID: {ID: driftedID, Number: "A-101", Occupancy: 3},
		correctID: {ID: correctID, Number: "A-102", Occupancy: 1},
		emptyID:   {ID: emptyID, Number: "B-201", Occupancy: 2},
	}}
	tenantRepo := &stubTenantRepo{counts: map[primitive.ObjectID]int64{
		driftedID: 1,
		correctID: 1,
		// no tenants point at emptyID
	}}
	svc := NewService(roomRepo, tenantRepo, zap.NewNop())

	fixed, err := svc.ReconcileOccupancy(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, fixed)
	assert.Equal(t, 1, roomRepo.rooms[driftedID].Occupancy)
	assert.Equal(t, 1, roomRepo.rooms[correctID].Occupancy)
	assert.Equal(t, 0, roomRepo.rooms[emptyID].Occupancy)
}

func TestReconcileNoDriftNoWrites(t *testing.T) {
	id := primitive.NewObjectID()
	roomRepo := &stubRoomRepo{rooms: map[primitive.ObjectID]*room.Room{
		id: {ID: id, Number: "A-101", Occupancy: 2},
	}}
	tenantRepo := &stubTenantRepo{counts: map[primitive.ObjectID]int64{id: 2}}
	svc := NewService(roomRepo, tenantRepo, zap.NewNop())

	fixed, err := svc.ReconcileOccupancy(context.Background())
	require.NoError(t, err)
	assert.Zero(t, fixed)
}
