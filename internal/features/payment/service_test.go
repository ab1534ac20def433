package payment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type memoryPaymentRepo struct {
	payments map[primitive.ObjectID]*Payment
	updates  []bson.M
}

func newMemoryPaymentRepo(payments ...*Payment) *memoryPaymentRepo {
	r := &memoryPaymentRepo{payments: make(map[primitive.ObjectID]*Payment)}
	for _, p := range payments {
		r.payments[p.ID] = p
	}
	return r
}

func (m *memoryPaymentRepo) Create(ctx context.Context, p *Payment) error {
	m.payments[p.ID] = p
	return nil
}

func (m *memoryPaymentRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*Payment, error) {
	p, ok := m.payments[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return p, nil
}

func (m *memoryPaymentRepo) List(ctx context.Context, filter map[string]interface{}, limit, offset int64) ([]Payment, int64, error) {
	var out []Payment
	for _, p := range m.payments {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (m *memoryPaymentRepo) Update(ctx context.Context, id primitive.ObjectID, updates bson.M) error {
	if _, ok := m.payments[id]; !ok {
		return mongo.ErrNoDocuments
	}
	m.updates = append(m.updates, updates)
	return nil
}

func (m *memoryPaymentRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, ok := m.payments[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(m.payments, id)
	return nil
}

func (m *memoryPaymentRepo) FindByTenant(ctx context.Context, tenantID primitive.ObjectID, limit int64) ([]Payment, error) {
	return nil, nil
}

func (m *memoryPaymentRepo) FindLatestCompletedRent(ctx context.Context, tenantID primitive.ObjectID) (*Payment, error) {
	return nil, mongo.ErrNoDocuments
}

func (m *memoryPaymentRepo) SumCompletedBetween(ctx context.Context, start, end time.Time) (float64, error) {
	return 0, nil
}

func (m *memoryPaymentRepo) PendingTotals(ctx context.Context) (int64, float64, error) {
	return 0, 0, nil
}

func (m *memoryPaymentRepo) GroupCompletedBetween(ctx context.Context, field string, start, end time.Time) ([]GroupSum, error) {
	return nil, nil
}

func (m *memoryPaymentRepo) CountsByStatus(ctx context.Context) (map[string]int64, error) {
	return nil, nil
}

func TestCreatePaymentDefaults(t *testing.T) {
	repo := newMemoryPaymentRepo()
	svc := NewPaymentService(repo)

	p := &Payment{Tenant: primitive.NewObjectID(), Amount: 7500, Method: MethodCash}
	require.NoError(t, svc.CreatePayment(context.Background(), p))

	assert.Equal(t, StatusPending, p.Status)
	assert.Equal(t, TypeRent, p.Type)
	assert.Nil(t, p.PaidAt)
}

func TestCreateCompletedPaymentStampsPaidAt(t *testing.T) {
	repo := newMemoryPaymentRepo()
	svc := NewPaymentService(repo)

	p := &Payment{Tenant: primitive.NewObjectID(), Amount: 7500, Method: MethodCash, Status: StatusCompleted}
	require.NoError(t, svc.CreatePayment(context.Background(), p))

	require.NotNil(t, p.PaidAt)
}

func TestUpdateToCompletedStampsPaidAt(t *testing.T) {
	p := &Payment{ID: primitive.NewObjectID(), Status: StatusPending}
	repo := newMemoryPaymentRepo(p)
	svc := NewPaymentService(repo)

	err := svc.UpdatePayment(context.Background(), p.ID, map[string]interface{}{"status": StatusCompleted})
	require.NoError(t, err)

	require.Len(t, repo.updates, 1)
	assert.Contains(t, repo.updates[0], "paid_at")
}

func TestUpdateToCompletedKeepsExistingPaidAt(t *testing.T) {
	paid := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	p := &Payment{ID: primitive.NewObjectID(), Status: StatusPending, PaidAt: &paid}
	repo := newMemoryPaymentRepo(p)
	svc := NewPaymentService(repo)

	err := svc.UpdatePayment(context.Background(), p.ID, map[string]interface{}{"status": StatusCompleted})
	require.NoError(t, err)

	require.Len(t, repo.updates, 1)
	assert.NotContains(t, repo.updates[0], "paid_at")
}

func TestUpdatePaymentDropsUnknownFields(t *testing.T) {
	p := &Payment{ID: primitive.NewObjectID(), Status: StatusPending}
	repo := newMemoryPaymentRepo(p)
	svc := NewPaymentService(repo)

	err := svc.UpdatePayment(context.Background(), p.ID, map[string]interface{}{
		"notes":   "updated",
		"tenant":  primitive.NewObjectID().Hex(),
		"paid_at": "2020-01-01",
	})
	require.NoError(t, err)

	require.Len(t, repo.updates, 1)
	assert.Contains(t, repo.updates[0], "notes")
	assert.NotContains(t, repo.updates[0], "tenant")
	assert.NotContains(t, repo.updates[0], "paid_at")
}

func TestBuildListFilterAllEqualsAbsent(t *testing.T) {
	assert.Equal(t, BuildListFilter("", "", ""), BuildListFilter("", "all", "all"))
	assert.NotEqual(t, BuildListFilter("", "", ""), BuildListFilter("", StatusPending, ""))
}
