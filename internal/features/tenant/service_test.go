package tenant

import (
	"context"
	"testing"
	"time"

	"go-hms/internal/features/payment"
	"go-hms/internal/features/room"
	"go-hms/internal/features/ticket"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeRoomRepo struct {
	rooms map[primitive.ObjectID]*room.Room
}

func newFakeRoomRepo(rooms ...*room.Room) *fakeRoomRepo {
	r := &fakeRoomRepo{rooms: make(map[primitive.ObjectID]*room.Room)}
	for _, rm := range rooms {
		r.rooms[rm.ID] = rm
	}
	return r
}

func (f *fakeRoomRepo) Create(ctx context.Context, r *room.Room) error {
	f.rooms[r.ID] = r
	return nil
}

func (f *fakeRoomRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*room.Room, error) {
	r, ok := f.rooms[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return r, nil
}

func (f *fakeRoomRepo) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]room.Room, error) {
	var out []room.Room
	for _, id := range ids {
		if r, ok := f.rooms[id]; ok {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeRoomRepo) FindAll(ctx context.Context, onlyActive bool) ([]room.Room, error) {
	var out []room.Room
	for _, r := range f.rooms {
		if onlyActive && !r.Active {
			continue
		}
		out = append(out, *r)
	}
	return out, nil
}

func (f *fakeRoomRepo) List(ctx context.Context, filter map[string]interface{}, limit, offset int64) ([]room.Room, int64, error) {
	all, _ := f.FindAll(ctx, false)
	return all, int64(len(all)), nil
}

func (f *fakeRoomRepo) Update(ctx context.Context, id primitive.ObjectID, updates bson.M) error {
	if _, ok := f.rooms[id]; !ok {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (f *fakeRoomRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, ok := f.rooms[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(f.rooms, id)
	return nil
}

func (f *fakeRoomRepo) IncrementOccupancy(ctx context.Context, id primitive.ObjectID, delta int) error {
	r, ok := f.rooms[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	if delta < 0 && r.Occupancy == 0 {
		return mongo.ErrNoDocuments
	}
	r.Occupancy += delta
	return nil
}

func (f *fakeRoomRepo) SetOccupancy(ctx context.Context, id primitive.ObjectID, occupancy int) error {
	r, ok := f.rooms[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	r.Occupancy = occupancy
	return nil
}

type fakeTenantRepo struct {
	tenants map[primitive.ObjectID]*Tenant
	updates []bson.M
}

func newFakeTenantRepo(tenants ...*Tenant) *fakeTenantRepo {
	r := &fakeTenantRepo{tenants: make(map[primitive.ObjectID]*Tenant)}
	for _, t := range tenants {
		r.tenants[t.ID] = t
	}
	return r
}

func (f *fakeTenantRepo) Create(ctx context.Context, t *Tenant) error {
	f.tenants[t.ID] = t
	return nil
}

func (f *fakeTenantRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*Tenant, error) {
	t, ok := f.tenants[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return t, nil
}

func (f *fakeTenantRepo) List(ctx context.Context, filter map[string]interface{}, limit, offset int64) ([]Tenant, int64, error) {
	var out []Tenant
	for _, t := range f.tenants {
		out = append(out, *t)
	}
	return out, int64(len(out)), nil
}

func (f *fakeTenantRepo) Update(ctx context.Context, id primitive.ObjectID, updates bson.M) error {
	if _, ok := f.tenants[id]; !ok {
		return mongo.ErrNoDocuments
	}
	f.updates = append(f.updates, updates)
	return nil
}

func (f *fakeTenantRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, ok := f.tenants[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(f.tenants, id)
	return nil
}

func (f *fakeTenantRepo) Count(ctx context.Context, filter bson.M) (int64, error) {
	return int64(len(f.tenants)), nil
}

func (f *fakeTenantRepo) FindRecent(ctx context.Context, limit int64) ([]Tenant, error) {
	out, _, _ := f.List(ctx, nil, limit, 0)
	return out, nil
}

func (f *fakeTenantRepo) FindAllSorted(ctx context.Context) ([]Tenant, error) {
	out, _, _ := f.List(ctx, nil, 0, 0)
	return out, nil
}

func (f *fakeTenantRepo) CountsByRoom(ctx context.Context) (map[primitive.ObjectID]int64, error) {
	counts := make(map[primitive.ObjectID]int64)
	for _, t := range f.tenants {
		if t.Room != nil {
			counts[*t.Room]++
		}
	}
	return counts, nil
}

type fakePaymentRepo struct {
	latestRent *payment.Payment
	byTenant   []payment.Payment
}

func (f *fakePaymentRepo) Create(ctx context.Context, p *payment.Payment) error { return nil }
func (f *fakePaymentRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*payment.Payment, error) {
	return nil, mongo.ErrNoDocuments
}
func (f *fakePaymentRepo) List(ctx context.Context, filter map[string]interface{}, limit, offset int64) ([]payment.Payment, int64, error) {
	return nil, 0, nil
}
func (f *fakePaymentRepo) Update(ctx context.Context, id primitive.ObjectID, updates bson.M) error {
	return nil
}
func (f *fakePaymentRepo) Delete(ctx context.Context, id primitive.ObjectID) error { return nil }
func (f *fakePaymentRepo) FindByTenant(ctx context.Context, tenantID primitive.ObjectID, limit int64) ([]payment.Payment, error) {
	return f.byTenant, nil
}
func (f *fakePaymentRepo) FindLatestCompletedRent(ctx context.Context, tenantID primitive.ObjectID) (*payment.Payment, error) {
	if f.latestRent == nil {
		return nil, mongo.ErrNoDocuments
	}
	return f.latestRent, nil
}
func (f *fakePaymentRepo) SumCompletedBetween(ctx context.Context, start, end time.Time) (float64, error) {
	return 0, nil
}
func (f *fakePaymentRepo) PendingTotals(ctx context.Context) (int64, float64, error) {
	return 0, 0, nil
}
func (f *fakePaymentRepo) GroupCompletedBetween(ctx context.Context, field string, start, end time.Time) ([]payment.GroupSum, error) {
	return nil, nil
}
func (f *fakePaymentRepo) CountsByStatus(ctx context.Context) (map[string]int64, error) {
	return nil, nil
}

type fakeTicketRepo struct {
	byTenant []ticket.Ticket
}

func (f *fakeTicketRepo) Create(ctx context.Context, t *ticket.Ticket) error { return nil }
func (f *fakeTicketRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*ticket.Ticket, error) {
	return nil, mongo.ErrNoDocuments
}
func (f *fakeTicketRepo) List(ctx context.Context, filter map[string]interface{}, limit, offset int64) ([]ticket.Ticket, int64, error) {
	return nil, 0, nil
}
func (f *fakeTicketRepo) Update(ctx context.Context, id primitive.ObjectID, updates bson.M) error {
	return nil
}
func (f *fakeTicketRepo) Delete(ctx context.Context, id primitive.ObjectID) error { return nil }
func (f *fakeTicketRepo) FindByTenant(ctx context.Context, tenantID primitive.ObjectID, statuses []string) ([]ticket.Ticket, error) {
	return f.byTenant, nil
}
func (f *fakeTicketRepo) CountOpen(ctx context.Context) (int64, error) { return 0, nil }
func (f *fakeTicketRepo) CountResolvedBetween(ctx context.Context, start, end time.Time) (int64, error) {
	return 0, nil
}
func (f *fakeTicketRepo) CountsByField(ctx context.Context, field string) (map[string]int64, error) {
	return nil, nil
}

func newServiceWithRoom(r *room.Room) (TenantService, *fakeTenantRepo, *fakeRoomRepo) {
	tenantRepo := newFakeTenantRepo()
	roomRepo := newFakeRoomRepo(r)
	svc := NewTenantService(tenantRepo, roomRepo, &fakePaymentRepo{}, &fakeTicketRepo{})
	return svc, tenantRepo, roomRepo
}

func TestCreateTenantIncrementsRoomOccupancy(t *testing.T) {
	roomID := primitive.NewObjectID()
	r := &room.Room{ID: roomID, Number: "A-101", Capacity: 2, Occupancy: 0, Status: room.StatusAvailable, Active: true}
	svc, _, roomRepo := newServiceWithRoom(r)

	err := svc.CreateTenant(context.Background(), &Tenant{FirstName: "Asha", Room: &roomID})
	require.NoError(t, err)

	assert.Equal(t, 1, roomRepo.rooms[roomID].Occupancy)
	// Status is independent of occupancy and must not be auto-flipped.
	assert.Equal(t, room.StatusAvailable, roomRepo.rooms[roomID].Status)
}

func TestCreateTenantWithoutRoomLeavesCountersAlone(t *testing.T) {
	roomID := primitive.NewObjectID()
	r := &room.Room{ID: roomID, Number: "A-101", Capacity: 2, Active: true}
	svc, tenantRepo, roomRepo := newServiceWithRoom(r)

	err := svc.CreateTenant(context.Background(), &Tenant{FirstName: "Asha"})
	require.NoError(t, err)

	assert.Equal(t, 0, roomRepo.rooms[roomID].Occupancy)
	assert.Len(t, tenantRepo.tenants, 1)
}

func TestCreateTenantRejectsUnknownRoom(t *testing.T) {
	svc, tenantRepo, _ := newServiceWithRoom(&room.Room{ID: primitive.NewObjectID()})

	missing := primitive.NewObjectID()
	err := svc.CreateTenant(context.Background(), &Tenant{FirstName: "Asha", Room: &missing})
	assert.ErrorIs(t, err, mongo.ErrNoDocuments)
	assert.Empty(t, tenantRepo.tenants)
}

func TestDeleteTenantDecrementsRoomOccupancy(t *testing.T) {
	roomID := primitive.NewObjectID()
	r := &room.Room{ID: roomID, Number: "A-101", Capacity: 2, Active: true}
	svc, _, roomRepo := newServiceWithRoom(r)

	tenant := &Tenant{FirstName: "Asha", Room: &roomID}
	require.NoError(t, svc.CreateTenant(context.Background(), tenant))
	require.Equal(t, 1, roomRepo.rooms[roomID].Occupancy)

	require.NoError(t, svc.DeleteTenant(context.Background(), tenant.ID))
	assert.Equal(t, 0, roomRepo.rooms[roomID].Occupancy)
}

func TestRoomScenarioTwoTenantsOneLeaves(t *testing.T) {
	roomID := primitive.NewObjectID()
	r := &room.Room{ID: roomID, Number: "A-101", Capacity: 2, Status: room.StatusAvailable, Active: true}
	svc, _, roomRepo := newServiceWithRoom(r)

	a := &Tenant{FirstName: "A", Room: &roomID}
	b := &Tenant{FirstName: "B", Room: &roomID}
	require.NoError(t, svc.CreateTenant(context.Background(), a))
	require.NoError(t, svc.CreateTenant(context.Background(), b))
	assert.Equal(t, 2, roomRepo.rooms[roomID].Occupancy)

	require.NoError(t, svc.DeleteTenant(context.Background(), a.ID))
	assert.Equal(t, 1, roomRepo.rooms[roomID].Occupancy)
	assert.Equal(t, room.StatusAvailable, roomRepo.rooms[roomID].Status)
}

func TestUpdateTenantMoveAdjustsBothCounters(t *testing.T) {
	oldID := primitive.NewObjectID()
	newID := primitive.NewObjectID()
	oldRoom := &room.Room{ID: oldID, Number: "A-101", Capacity: 2, Occupancy: 1, Active: true}
	newRoom := &room.Room{ID: newID, Number: "B-202", Capacity: 2, Occupancy: 0, Active: true}

	tenantID := primitive.NewObjectID()
	tenantRepo := newFakeTenantRepo(&Tenant{ID: tenantID, FirstName: "Asha", Room: &oldID, Active: true})
	roomRepo := newFakeRoomRepo(oldRoom, newRoom)
	svc := NewTenantService(tenantRepo, roomRepo, &fakePaymentRepo{}, &fakeTicketRepo{})

	err := svc.UpdateTenant(context.Background(), tenantID, map[string]interface{}{"room": newID.Hex()})
	require.NoError(t, err)

	assert.Equal(t, 0, oldRoom.Occupancy)
	assert.Equal(t, 1, newRoom.Occupancy)
}

func TestUpdateTenantIgnoresUnknownFields(t *testing.T) {
	tenantID := primitive.NewObjectID()
	tenantRepo := newFakeTenantRepo(&Tenant{ID: tenantID, FirstName: "Asha", Active: true})
	roomRepo := newFakeRoomRepo()
	svc := NewTenantService(tenantRepo, roomRepo, &fakePaymentRepo{}, &fakeTicketRepo{})

	err := svc.UpdateTenant(context.Background(), tenantID, map[string]interface{}{
		"phone":     "555-0100",
		"occupancy": 99,
		"injected":  true,
	})
	require.NoError(t, err)

	require.Len(t, tenantRepo.updates, 1)
	set := tenantRepo.updates[0]["$set"].(bson.M)
	assert.Contains(t, set, "phone")
	assert.NotContains(t, set, "occupancy")
	assert.NotContains(t, set, "injected")
}

func TestBuildListFilterAllEqualsAbsent(t *testing.T) {
	assert.Equal(t, BuildListFilter("", ""), BuildListFilter("", "all"))
	assert.NotEqual(t, BuildListFilter("", ""), BuildListFilter("", "active"))
}

func TestComputeRentDueFromLastPayment(t *testing.T) {
	paid := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	last := &payment.Payment{Amount: 7500, PaidAt: &paid, CreatedAt: paid.AddDate(0, 0, -2)}

	due := ComputeRentDue(last, time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, 7500.0, due.Amount)
	assert.Equal(t, time.Date(2026, 4, 15, 12, 0, 0, 0, time.UTC), due.DueDate)
}

func TestComputeRentDueFallsBackToCreatedAt(t *testing.T) {
	created := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	last := &payment.Payment{Amount: 5000, CreatedAt: created}

	due := ComputeRentDue(last, created)

	assert.Equal(t, 5000.0, due.Amount)
	assert.Equal(t, created.AddDate(0, 1, 0), due.DueDate)
}

func TestComputeRentDueWithoutHistory(t *testing.T) {
	now := time.Date(2026, 3, 20, 18, 30, 0, 0, time.UTC)

	due := ComputeRentDue(nil, now)

	assert.Zero(t, due.Amount)
	assert.Equal(t, time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), due.DueDate)
}

func TestGetDashboardAssemblesView(t *testing.T) {
	roomID := primitive.NewObjectID()
	tenantID := primitive.NewObjectID()
	paid := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	tenantRepo := newFakeTenantRepo(&Tenant{ID: tenantID, FirstName: "Asha", Room: &roomID, Active: true})
	roomRepo := newFakeRoomRepo(&room.Room{ID: roomID, Number: "A-101", Rent: 7500, Active: true})
	paymentRepo := &fakePaymentRepo{
		latestRent: &payment.Payment{Amount: 7500, PaidAt: &paid, CreatedAt: paid},
		byTenant:   []payment.Payment{{Amount: 7500, Status: payment.StatusCompleted}},
	}
	ticketRepo := &fakeTicketRepo{byTenant: []ticket.Ticket{{Title: "Leaky tap", Status: ticket.StatusOpen}}}
	svc := NewTenantService(tenantRepo, roomRepo, paymentRepo, ticketRepo)

	dash, err := svc.GetDashboard(context.Background(), tenantID)
	require.NoError(t, err)

	require.NotNil(t, dash.Tenant.RoomDetail)
	assert.Equal(t, "A-101", dash.Tenant.RoomDetail.Number)
	assert.Len(t, dash.Payments, 1)
	assert.Len(t, dash.OpenTickets, 1)
	assert.Equal(t, 7500.0, dash.RentDue.Amount)
	assert.Equal(t, paid.AddDate(0, 1, 0), dash.RentDue.DueDate)
}

func TestCountsByRoomMatchIncludesInactiveTenants(t *testing.T) {
	match := countsByRoomMatch()

	assert.NotContains(t, match, "active")
	assert.Equal(t, bson.M{"$ne": nil}, match["room"])
}

func TestDeactivateThenDeleteReleasesSeatOnce(t *testing.T) {
	roomID := primitive.NewObjectID()
	shared := &room.Room{ID: roomID, Number: "A-101", Capacity: 2, Occupancy: 2, Active: true}

	activeID := primitive.NewObjectID()
	leavingID := primitive.NewObjectID()
	tenantRepo := newFakeTenantRepo(
		&Tenant{ID: activeID, FirstName: "Asha", Room: &roomID, Active: true},
		&Tenant{ID: leavingID, FirstName: "Binod", Room: &roomID, Active: true},
	)
	roomRepo := newFakeRoomRepo(shared)
	svc := NewTenantService(tenantRepo, roomRepo, &fakePaymentRepo{}, &fakeTicketRepo{})

	// Deactivation does not touch the seat; the tenant is still assigned.
	err := svc.UpdateTenant(context.Background(), leavingID, map[string]interface{}{"active": false})
	require.NoError(t, err)
	assert.Equal(t, 2, shared.Occupancy)

	counts, err := tenantRepo.CountsByRoom(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts[roomID])

	// Deleting the inactive tenant releases exactly one seat.
	require.NoError(t, svc.DeleteTenant(context.Background(), leavingID))
	assert.Equal(t, 1, shared.Occupancy)

	counts, err = tenantRepo.CountsByRoom(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), counts[roomID])
}
