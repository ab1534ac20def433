package tenant

import (
	"context"
	"errors"
	"time"

	"go-hms/internal/features/payment"
	"go-hms/internal/features/room"
	"go-hms/internal/features/ticket"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type TenantService interface {
	ListTenants(ctx context.Context, search, status string, page, limit int64) ([]TenantWithRoom, int64, error)
	GetTenant(ctx context.Context, id primitive.ObjectID) (*TenantWithRoom, error)
	CreateTenant(ctx context.Context, tenant *Tenant) error
	UpdateTenant(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error
	DeleteTenant(ctx context.Context, id primitive.ObjectID) error
	GetStats(ctx context.Context) (*Stats, error)
	GetDashboard(ctx context.Context, tenantID primitive.ObjectID) (*Dashboard, error)
}

type TenantServiceImpl struct {
	TenantRepo  TenantRepository
	RoomRepo    room.RoomRepository
	PaymentRepo payment.PaymentRepository
	TicketRepo  ticket.TicketRepository
}

func NewTenantService(tenantRepo TenantRepository, roomRepo room.RoomRepository, paymentRepo payment.PaymentRepository, ticketRepo ticket.TicketRepository) TenantService {
	return &TenantServiceImpl{
		TenantRepo:  tenantRepo,
		RoomRepo:    roomRepo,
		PaymentRepo: paymentRepo,
		TicketRepo:  ticketRepo,
	}
}

// BuildListFilter maps list query params to a store filter. Search matches
// name, email or phone; status is active|inactive|all.
func BuildListFilter(search, status string) map[string]interface{} {
	filter := make(map[string]interface{})
	if search != "" {
		regex := primitive.Regex{Pattern: search, Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"first_name": bson.M{"$regex": regex}},
			bson.M{"last_name": bson.M{"$regex": regex}},
			bson.M{"email": bson.M{"$regex": regex}},
			bson.M{"phone": bson.M{"$regex": regex}},
		}
	}
	switch status {
	case "active":
		filter["active"] = true
	case "inactive":
		filter["active"] = false
	}
	return filter
}

func (s *TenantServiceImpl) ListTenants(ctx context.Context, search, status string, page, limit int64) ([]TenantWithRoom, int64, error) {
	filter := BuildListFilter(search, status)
	offset := (page - 1) * limit

	tenants, total, err := s.TenantRepo.List(ctx, filter, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	populated, err := s.populateRooms(ctx, tenants)
	if err != nil {
		return nil, 0, err
	}
	return populated, total, nil
}

func (s *TenantServiceImpl) GetTenant(ctx context.Context, id primitive.ObjectID) (*TenantWithRoom, error) {
	tenant, err := s.TenantRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	populated, err := s.populateRooms(ctx, []Tenant{*tenant})
	if err != nil {
		return nil, err
	}
	return &populated[0], nil
}

// CreateTenant persists the tenant and, when a room is assigned, bumps that
// room's occupancy. The two writes are separate documents with no
// transaction: a failure after the insert leaves the counter stale until
// the reconciliation job repairs it.
func (s *TenantServiceImpl) CreateTenant(ctx context.Context, tenant *Tenant) error {
	if tenant.ID.IsZero() {
		tenant.ID = primitive.NewObjectID()
	}
	tenant.Active = true
	tenant.CreatedAt = time.Now()
	tenant.UpdatedAt = time.Now()

	if tenant.Room != nil {
		if _, err := s.RoomRepo.FindByID(ctx, *tenant.Room); err != nil {
			return err
		}
	}

	if err := s.TenantRepo.Create(ctx, tenant); err != nil {
		return err
	}

	if tenant.Room != nil {
		if err := s.RoomRepo.IncrementOccupancy(ctx, *tenant.Room, 1); err != nil {
			return err
		}
	}
	return nil
}

var updatableFields = map[string]bool{
	"firstName":       true,
	"lastName":        true,
	"email":           true,
	"phone":           true,
	"aadharNumber":    true,
	"moveInDate":      true,
	"securityDeposit": true,
	"active":          true,
}

// bson field names for the JSON keys accepted by UpdateTenant
var fieldNames = map[string]string{
	"firstName":       "first_name",
	"lastName":        "last_name",
	"email":           "email",
	"phone":           "phone",
	"aadharNumber":    "aadhar_number",
	"moveInDate":      "move_in_date",
	"securityDeposit": "security_deposit",
	"active":          "active",
}

// UpdateTenant applies a partial update. Only provided keys change; a
// provided "room" key moves the tenant, adjusting both room counters.
func (s *TenantServiceImpl) UpdateTenant(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	existing, err := s.TenantRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	set := bson.M{}
	for field, value := range updates {
		if updatableFields[field] {
			set[fieldNames[field]] = value
		}
	}

	if contact, ok := updates["emergencyContact"].(map[string]interface{}); ok {
		set["emergency_contact"] = bson.M{
			"name":         contact["name"],
			"relationship": contact["relationship"],
			"phone":        contact["phone"],
		}
	}

	var unset bson.M
	var newRoom *primitive.ObjectID
	roomChanged := false

	if raw, ok := updates["room"]; ok {
		roomChanged = true
		switch v := raw.(type) {
		case nil:
			unset = bson.M{"room": ""}
		case string:
			oid, err := primitive.ObjectIDFromHex(v)
			if err != nil {
				return errors.New("invalid room id")
			}
			if _, err := s.RoomRepo.FindByID(ctx, oid); err != nil {
				return err
			}
			newRoom = &oid
			set["room"] = oid
		default:
			return errors.New("invalid room id")
		}
	}

	if len(set) == 0 && unset == nil {
		return nil
	}
	set["updated_at"] = time.Now()

	update := bson.M{"$set": set}
	if unset != nil {
		update["$unset"] = unset
	}

	if err := s.TenantRepo.Update(ctx, id, update); err != nil {
		return err
	}

	// Counter maintenance for room moves: decrement the old room, increment
	// the new one. Same best-effort caveat as CreateTenant.
	if roomChanged {
		if existing.Room != nil && (newRoom == nil || *existing.Room != *newRoom) {
			if err := s.RoomRepo.IncrementOccupancy(ctx, *existing.Room, -1); err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
				return err
			}
		}
		if newRoom != nil && (existing.Room == nil || *existing.Room != *newRoom) {
			if err := s.RoomRepo.IncrementOccupancy(ctx, *newRoom, 1); err != nil {
				return err
			}
		}
	}
	return nil
}

// DeleteTenant removes the record and releases the room seat. Decrement
// first, then delete, mirroring the create order in reverse.
func (s *TenantServiceImpl) DeleteTenant(ctx context.Context, id primitive.ObjectID) error {
	tenant, err := s.TenantRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if tenant.Room != nil {
		if err := s.RoomRepo.IncrementOccupancy(ctx, *tenant.Room, -1); err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
			return err
		}
	}

	return s.TenantRepo.Delete(ctx, id)
}

func (s *TenantServiceImpl) GetStats(ctx context.Context) (*Stats, error) {
	active, err := s.TenantRepo.Count(ctx, bson.M{"active": true})
	if err != nil {
		return nil, err
	}
	inactive, err := s.TenantRepo.Count(ctx, bson.M{"active": false})
	if err != nil {
		return nil, err
	}

	byRoom, err := s.TenantRepo.CountsByRoom(ctx)
	if err != nil {
		return nil, err
	}

	roomIDs := make([]primitive.ObjectID, 0, len(byRoom))
	for id := range byRoom {
		roomIDs = append(roomIDs, id)
	}
	rooms, err := s.RoomRepo.FindByIDs(ctx, roomIDs)
	if err != nil {
		return nil, err
	}

	// Key per-room counts by room number where known, raw id otherwise
	numbers := make(map[primitive.ObjectID]string, len(rooms))
	for _, r := range rooms {
		numbers[r.ID] = r.Number
	}
	byRoomNumber := make(map[string]int64, len(byRoom))
	for id, count := range byRoom {
		key := numbers[id]
		if key == "" {
			key = id.Hex()
		}
		byRoomNumber[key] = count
	}

	return &Stats{
		Total:    active + inactive,
		Active:   active,
		Inactive: inactive,
		ByRoom:   byRoomNumber,
	}, nil
}

// GetDashboard assembles the self-service view: tenant with room, last 5
// payments, open/in-progress tickets, and the current rent due heuristic.
func (s *TenantServiceImpl) GetDashboard(ctx context.Context, tenantID primitive.ObjectID) (*Dashboard, error) {
	withRoom, err := s.GetTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	payments, err := s.PaymentRepo.FindByTenant(ctx, tenantID, 5)
	if err != nil {
		return nil, err
	}
	if payments == nil {
		payments = []payment.Payment{}
	}

	openTickets, err := s.TicketRepo.FindByTenant(ctx, tenantID, []string{ticket.StatusOpen, ticket.StatusInProgress})
	if err != nil {
		return nil, err
	}
	if openTickets == nil {
		openTickets = []ticket.Ticket{}
	}

	lastRent, err := s.PaymentRepo.FindLatestCompletedRent(ctx, tenantID)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	return &Dashboard{
		Tenant:      *withRoom,
		Payments:    payments,
		OpenTickets: openTickets,
		RentDue:     ComputeRentDue(lastRent, time.Now()),
	}, nil
}

// ComputeRentDue derives the next rent obligation from the most recent
// completed rent payment: its date plus one month. With no prior rent
// payment the due date is the 1st of next month with a zero amount. This is
// a product simplification, not a billing engine: skipped months and
// multi-month payments are not modeled.
func ComputeRentDue(lastRent *payment.Payment, now time.Time) RentDue {
	if lastRent == nil {
		firstOfNext := time.Date(now.Year(), now.Month()+1, 1, 0, 0, 0, 0, now.Location())
		return RentDue{Amount: 0, DueDate: firstOfNext}
	}

	base := lastRent.CreatedAt
	if lastRent.PaidAt != nil {
		base = *lastRent.PaidAt
	}
	return RentDue{Amount: lastRent.Amount, DueDate: base.AddDate(0, 1, 0)}
}

func (s *TenantServiceImpl) populateRooms(ctx context.Context, tenants []Tenant) ([]TenantWithRoom, error) {
	idSet := make(map[primitive.ObjectID]bool)
	for _, t := range tenants {
		if t.Room != nil {
			idSet[*t.Room] = true
		}
	}
	ids := make([]primitive.ObjectID, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}

	rooms, err := s.RoomRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	summaries := make(map[primitive.ObjectID]*RoomSummary, len(rooms))
	for i := range rooms {
		r := rooms[i]
		summaries[r.ID] = &RoomSummary{ID: r.ID, Number: r.Number, Type: r.Type, Rent: r.Rent}
	}

	result := make([]TenantWithRoom, len(tenants))
	for i, t := range tenants {
		result[i] = TenantWithRoom{Tenant: t}
		if t.Room != nil {
			result[i].RoomDetail = summaries[*t.Room]
		}
	}
	return result, nil
}
