package ticket

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TicketService interface {
	ListTickets(ctx context.Context, search, status, category string, page, limit int64) ([]Ticket, int64, error)
	GetTicket(ctx context.Context, id primitive.ObjectID) (*Ticket, error)
	CreateTicket(ctx context.Context, ticket *Ticket) error
	UpdateTicket(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error
	DeleteTicket(ctx context.Context, id primitive.ObjectID) error
	GetTenantTickets(ctx context.Context, tenantID primitive.ObjectID) ([]Ticket, error)
	GetStats(ctx context.Context) (*Stats, error)
}

type TicketServiceImpl struct {
	TicketRepo TicketRepository
}

func NewTicketService(ticketRepo TicketRepository) TicketService {
	return &TicketServiceImpl{
		TicketRepo: ticketRepo,
	}
}

// BuildListFilter maps list query params to a store filter. Search matches
// title or description, case-insensitive; "all" disables a filter.
func BuildListFilter(search, status, category string) map[string]interface{} {
	filter := make(map[string]interface{})
	if search != "" {
		regex := primitive.Regex{Pattern: search, Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"title": bson.M{"$regex": regex}},
			bson.M{"description": bson.M{"$regex": regex}},
		}
	}
	if status != "" && status != "all" {
		filter["status"] = status
	}
	if category != "" && category != "all" {
		filter["category"] = category
	}
	return filter
}

func (s *TicketServiceImpl) ListTickets(ctx context.Context, search, status, category string, page, limit int64) ([]Ticket, int64, error) {
	filter := BuildListFilter(search, status, category)
	offset := (page - 1) * limit
	return s.TicketRepo.List(ctx, filter, limit, offset)
}

func (s *TicketServiceImpl) GetTicket(ctx context.Context, id primitive.ObjectID) (*Ticket, error) {
	return s.TicketRepo.FindByID(ctx, id)
}

func (s *TicketServiceImpl) CreateTicket(ctx context.Context, ticket *Ticket) error {
	if ticket.ID.IsZero() {
		ticket.ID = primitive.NewObjectID()
	}
	if ticket.Priority == "" {
		ticket.Priority = PriorityMedium
	}
	if ticket.Category == "" {
		ticket.Category = CategoryOther
	}
	ticket.Status = StatusOpen
	ticket.CreatedAt = time.Now()
	ticket.UpdatedAt = time.Now()

	return s.TicketRepo.Create(ctx, ticket)
}

var updatableFields = map[string]bool{
	"title":       true,
	"description": true,
	"priority":    true,
	"category":    true,
	"status":      true,
}

func (s *TicketServiceImpl) UpdateTicket(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
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

	return s.TicketRepo.Update(ctx, id, set)
}

func (s *TicketServiceImpl) DeleteTicket(ctx context.Context, id primitive.ObjectID) error {
	return s.TicketRepo.Delete(ctx, id)
}

func (s *TicketServiceImpl) GetTenantTickets(ctx context.Context, tenantID primitive.ObjectID) ([]Ticket, error) {
	return s.TicketRepo.FindByTenant(ctx, tenantID, nil)
}

func (s *TicketServiceImpl) GetStats(ctx context.Context) (*Stats, error) {
	byStatus, err := s.TicketRepo.CountsByField(ctx, "status")
	if err != nil {
		return nil, err
	}
	byCategory, err := s.TicketRepo.CountsByField(ctx, "category")
	if err != nil {
		return nil, err
	}

	var total int64
	for _, c := range byStatus {
		total += c
	}

	return &Stats{
		Total:      total,
		ByStatus:   byStatus,
		ByCategory: byCategory,
	}, nil
}
