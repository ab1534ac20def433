package exchange

import (
	"context"
	"testing"
	"time"

	"go-hms/internal/features/room"
	"go-hms/internal/features/tenant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type memoryExchangeRepo struct {
	requests map[primitive.ObjectID]*ExchangeRequest
}

func newMemoryExchangeRepo(requests ...*ExchangeRequest) *memoryExchangeRepo {
	r := &memoryExchangeRepo{requests: make(map[primitive.ObjectID]*ExchangeRequest)}
	for _, req := range requests {
		r.requests[req.ID] = req
	}
	return r
}

func (m *memoryExchangeRepo) Create(ctx context.Context, r *ExchangeRequest) error {
	m.requests[r.ID] = r
	return nil
}

func (m *memoryExchangeRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*ExchangeRequest, error) {
	r, ok := m.requests[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return r, nil
}

func (m *memoryExchangeRepo) List(ctx context.Context, filter map[string]interface{}, limit, offset int64) ([]ExchangeRequest, int64, error) {
	return nil, 0, nil
}

func (m *memoryExchangeRepo) FindByTenant(ctx context.Context, tenantID primitive.ObjectID) ([]ExchangeRequest, error) {
	return nil, nil
}

func (m *memoryExchangeRepo) Update(ctx context.Context, id primitive.ObjectID, updates bson.M) error {
	r, ok := m.requests[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	if status, ok := updates["status"].(string); ok {
		r.Status = status
	}
	return nil
}

func (m *memoryExchangeRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	delete(m.requests, id)
	return nil
}

type stubTenantRepo struct {
	tenants map[primitive.ObjectID]*tenant.Tenant
}

func (s *stubTenantRepo) Create(ctx context.Context, t *tenant.Tenant) error { return nil }
func (s *stubTenantRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*tenant.Tenant, error) {
	t, ok := s.tenants[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return t, nil
}
func (s *stubTenantRepo) List(ctx context.Context, filter map[string]interface{}, limit, offset int64) ([]tenant.Tenant, int64, error) {
	return nil, 0, nil
}
func (s *stubTenantRepo) Update(ctx context.Context, id primitive.ObjectID, updates bson.M) error {
	t, ok := s.tenants[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	if set, ok := updates["$set"].(bson.M); ok {
		if roomID, ok := set["room"].(primitive.ObjectID); ok {
			t.Room = &roomID
		}
	}
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
	return nil, nil
}

type stubRoomRepo struct {
	rooms map[primitive.ObjectID]*room.Room
}

func (s *stubRoomRepo) Create(ctx context.Context, r *room.Room) error { return nil }
func (s *stubRoomRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*room.Room, error) {
	r, ok := s.rooms[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return r, nil
}
func (s *stubRoomRepo) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]room.Room, error) {
	return nil, nil
}
func (s *stubRoomRepo) FindAll(ctx context.Context, onlyActive bool) ([]room.Room, error) {
	return nil, nil
}
func (s *stubRoomRepo) List(ctx context.Context, filter map[string]interface{}, limit, offset int64) ([]room.Room, int64, error) {
	return nil, 0, nil
}
func (s *stubRoomRepo) Update(ctx context.Context, id primitive.ObjectID, updates bson.M) error {
	return nil
}
func (s *stubRoomRepo) Delete(ctx context.Context, id primitive.ObjectID) error { return nil }
func (s *stubRoomRepo) IncrementOccupancy(ctx context.Context, id primitive.ObjectID, delta int) error {
	r, ok := s.rooms[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	if delta < 0 && r.Occupancy == 0 {
		return mongo.ErrNoDocuments
	}
	r.Occupancy += delta
	return nil
}
func (s *stubRoomRepo) SetOccupancy(ctx context.Context, id primitive.ObjectID, occupancy int) error {
	return nil
}

func TestCompleteRequestSwapsRoomAndCounters(t *testing.T) {
	oldID := primitive.NewObjectID()
	newID := primitive.NewObjectID()
	tenantID := primitive.NewObjectID()

	oldRoom := &room.Room{ID: oldID, Number: "A-101", Occupancy: 1}
	newRoom := &room.Room{ID: newID, Number: "B-202", Occupancy: 0}
	ten := &tenant.Tenant{ID: tenantID, Room: &oldID, Active: true}

	request := &ExchangeRequest{
		ID:            primitive.NewObjectID(),
		Tenant:        tenantID,
		CurrentRoom:   &oldID,
		RequestedRoom: newID,
		Status:        StatusApproved,
		CreatedAt:     time.Now(),
	}

	repo := newMemoryExchangeRepo(request)
	svc := NewExchangeService(repo,
		&stubTenantRepo{tenants: map[primitive.ObjectID]*tenant.Tenant{tenantID: ten}},
		&stubRoomRepo{rooms: map[primitive.ObjectID]*room.Room{oldID: oldRoom, newID: newRoom}},
	)

	require.NoError(t, svc.CompleteRequest(context.Background(), request.ID))

	require.NotNil(t, ten.Room)
	assert.Equal(t, newID, *ten.Room)
	assert.Equal(t, 0, oldRoom.Occupancy)
	assert.Equal(t, 1, newRoom.Occupancy)
	assert.Equal(t, StatusCompleted, request.Status)
}

func TestCompleteRequestToleratesZeroedOldRoomCounter(t *testing.T) {
	oldID := primitive.NewObjectID()
	newID := primitive.NewObjectID()
	tenantID := primitive.NewObjectID()

	oldRoom := &room.Room{ID: oldID, Number: "A-101", Occupancy: 0}
	newRoom := &room.Room{ID: newID, Number: "B-202", Occupancy: 0}
	ten := &tenant.Tenant{ID: tenantID, Room: &oldID, Active: true}

	request := &ExchangeRequest{
		ID:            primitive.NewObjectID(),
		Tenant:        tenantID,
		CurrentRoom:   &oldID,
		RequestedRoom: newID,
		Status:        StatusApproved,
	}

	repo := newMemoryExchangeRepo(request)
	svc := NewExchangeService(repo,
		&stubTenantRepo{tenants: map[primitive.ObjectID]*tenant.Tenant{tenantID: ten}},
		&stubRoomRepo{rooms: map[primitive.ObjectID]*room.Room{oldID: oldRoom, newID: newRoom}},
	)

	require.NoError(t, svc.CompleteRequest(context.Background(), request.ID))

	require.NotNil(t, ten.Room)
	assert.Equal(t, newID, *ten.Room)
	assert.Equal(t, 0, oldRoom.Occupancy)
	assert.Equal(t, 1, newRoom.Occupancy)
	assert.Equal(t, StatusCompleted, request.Status)
}

func TestApproveRejectOnlyFromPending(t *testing.T) {
	request := &ExchangeRequest{
		ID:     primitive.NewObjectID(),
		Status: StatusRejected,
	}
	repo := newMemoryExchangeRepo(request)
	svc := NewExchangeService(repo, &stubTenantRepo{}, &stubRoomRepo{})

	err := svc.ApproveRequest(context.Background(), request.ID, primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrInvalidTransition)

	err = svc.RejectRequest(context.Background(), request.ID, primitive.NewObjectID(), "no")
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestCompleteRejectedRequestFails(t *testing.T) {
	request := &ExchangeRequest{ID: primitive.NewObjectID(), Status: StatusRejected}
	repo := newMemoryExchangeRepo(request)
	svc := NewExchangeService(repo, &stubTenantRepo{}, &stubRoomRepo{})

	err := svc.CompleteRequest(context.Background(), request.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestCreateRequestCopiesCurrentRoom(t *testing.T) {
	roomID := primitive.NewObjectID()
	requestedID := primitive.NewObjectID()
	tenantID := primitive.NewObjectID()

	repo := newMemoryExchangeRepo()
	svc := NewExchangeService(repo,
		&stubTenantRepo{tenants: map[primitive.ObjectID]*tenant.Tenant{
			tenantID: {ID: tenantID, Room: &roomID, Active: true},
		}},
		&stubRoomRepo{rooms: map[primitive.ObjectID]*room.Room{
			requestedID: {ID: requestedID, Number: "B-202"},
		}},
	)

	request := &ExchangeRequest{Tenant: tenantID, RequestedRoom: requestedID, Reason: "closer to work"}
	require.NoError(t, svc.CreateRequest(context.Background(), request))

	assert.Equal(t, StatusPending, request.Status)
	require.NotNil(t, request.CurrentRoom)
	assert.Equal(t, roomID, *request.CurrentRoom)
}
