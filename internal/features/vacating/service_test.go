package vacating

import (
	"context"
	"testing"

	"go-hms/internal/features/tenant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type memoryVacatingRepo struct {
	requests map[primitive.ObjectID]*VacatingRequest
	updates  []bson.M
}

func newMemoryVacatingRepo(requests ...*VacatingRequest) *memoryVacatingRepo {
	r := &memoryVacatingRepo{requests: make(map[primitive.ObjectID]*VacatingRequest)}
	for _, req := range requests {
		r.requests[req.ID] = req
	}
	return r
}

func (m *memoryVacatingRepo) Create(ctx context.Context, r *VacatingRequest) error {
	m.requests[r.ID] = r
	return nil
}

func (m *memoryVacatingRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*VacatingRequest, error) {
	r, ok := m.requests[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return r, nil
}

func (m *memoryVacatingRepo) List(ctx context.Context, filter map[string]interface{}, limit, offset int64) ([]VacatingRequest, int64, error) {
	var out []VacatingRequest
	for _, r := range m.requests {
		if status, ok := filter["status"]; ok && r.Status != status {
			continue
		}
		out = append(out, *r)
	}
	return out, int64(len(out)), nil
}

func (m *memoryVacatingRepo) FindByTenant(ctx context.Context, tenantID primitive.ObjectID) ([]VacatingRequest, error) {
	var out []VacatingRequest
	for _, r := range m.requests {
		if r.Tenant == tenantID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (m *memoryVacatingRepo) Update(ctx context.Context, id primitive.ObjectID, updates bson.M) error {
	r, ok := m.requests[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	m.updates = append(m.updates, updates)
	if status, ok := updates["status"].(string); ok {
		r.Status = status
	}
	return nil
}

func (m *memoryVacatingRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
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

func TestCreateRequestSnapshotsRoom(t *testing.T) {
	roomID := primitive.NewObjectID()
	tenantID := primitive.NewObjectID()

	repo := newMemoryVacatingRepo()
	svc := NewVacatingService(repo, &stubTenantRepo{
		tenants: map[primitive.ObjectID]*tenant.Tenant{
			tenantID: {ID: tenantID, Room: &roomID, Active: true},
		},
	})

	request := &VacatingRequest{Tenant: tenantID, Reason: "relocating"}
	require.NoError(t, svc.CreateRequest(context.Background(), request))

	assert.Equal(t, StatusPending, request.Status)
	require.NotNil(t, request.Room)
	assert.Equal(t, roomID, *request.Room)
	assert.False(t, request.ID.IsZero())
}

func TestCreateRequestUnknownTenant(t *testing.T) {
	repo := newMemoryVacatingRepo()
	svc := NewVacatingService(repo, &stubTenantRepo{})

	request := &VacatingRequest{Tenant: primitive.NewObjectID()}
	err := svc.CreateRequest(context.Background(), request)
	assert.ErrorIs(t, err, mongo.ErrNoDocuments)
	assert.Empty(t, repo.requests)
}

func TestApproveRecordsSettlement(t *testing.T) {
	request := &VacatingRequest{ID: primitive.NewObjectID(), Status: StatusPending}
	repo := newMemoryVacatingRepo(request)
	svc := NewVacatingService(repo, &stubTenantRepo{})

	settlement := Settlement{FinalSettlementAmount: 1200, SecurityDepositRefund: 5000}
	require.NoError(t, svc.ApproveRequest(context.Background(), request.ID, primitive.NewObjectID(), settlement))

	assert.Equal(t, StatusApproved, request.Status)
	require.Len(t, repo.updates, 1)
	assert.Equal(t, 1200.0, repo.updates[0]["final_settlement_amount"])
	assert.Equal(t, 5000.0, repo.updates[0]["security_deposit_refund"])
}

func TestApproveRejectedRequestFails(t *testing.T) {
	request := &VacatingRequest{ID: primitive.NewObjectID(), Status: StatusRejected}
	repo := newMemoryVacatingRepo(request)
	svc := NewVacatingService(repo, &stubTenantRepo{})

	err := svc.ApproveRequest(context.Background(), request.ID, primitive.NewObjectID(), Settlement{})
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Empty(t, repo.updates)
}

func TestRejectRecordsReason(t *testing.T) {
	request := &VacatingRequest{ID: primitive.NewObjectID(), Status: StatusPending}
	repo := newMemoryVacatingRepo(request)
	svc := NewVacatingService(repo, &stubTenantRepo{})

	require.NoError(t, svc.RejectRequest(context.Background(), request.ID, primitive.NewObjectID(), "notice period too short"))

	assert.Equal(t, StatusRejected, request.Status)
	require.Len(t, repo.updates, 1)
	assert.Equal(t, "notice period too short", repo.updates[0]["rejection_reason"])
}

func TestCompleteFromApproved(t *testing.T) {
	request := &VacatingRequest{ID: primitive.NewObjectID(), Status: StatusApproved}
	repo := newMemoryVacatingRepo(request)
	svc := NewVacatingService(repo, &stubTenantRepo{})

	require.NoError(t, svc.CompleteRequest(context.Background(), request.ID))
	assert.Equal(t, StatusCompleted, request.Status)
}

func TestCompleteRejectedRequestFails(t *testing.T) {
	request := &VacatingRequest{ID: primitive.NewObjectID(), Status: StatusRejected}
	repo := newMemoryVacatingRepo(request)
	svc := NewVacatingService(repo, &stubTenantRepo{})

	err := svc.CompleteRequest(context.Background(), request.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestListRequestsAllEqualsAbsent(t *testing.T) {
	pending := &VacatingRequest{ID: primitive.NewObjectID(), Status: StatusPending}
	rejected := &VacatingRequest{ID: primitive.NewObjectID(), Status: StatusRejected}
	repo := newMemoryVacatingRepo(pending, rejected)
	svc := NewVacatingService(repo, &stubTenantRepo{})

	all, totalAll, err := svc.ListRequests(context.Background(), "all", 1, 10)
	require.NoError(t, err)
	absent, totalAbsent, err := svc.ListRequests(context.Background(), "", 1, 10)
	require.NoError(t, err)

	assert.Equal(t, totalAll, totalAbsent)
	assert.Len(t, all, 2)
	assert.Len(t, absent, 2)

	onlyPending, total, err := svc.ListRequests(context.Background(), StatusPending, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, onlyPending, 1)
	assert.Equal(t, StatusPending, onlyPending[0].Status)
}
