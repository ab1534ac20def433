package exchange

import (
	"context"
	"errors"
	"time"

	"go-hms/internal/features/room"
	"go-hms/internal/features/tenant"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrInvalidTransition is returned when a request is approved, rejected or
// completed after it has already left the pending state.
var ErrInvalidTransition = errors.New("request is no longer pending")

type ExchangeService interface {
	CreateRequest(ctx context.Context, request *ExchangeRequest) error
	ListRequests(ctx context.Context, status string, page, limit int64) ([]ExchangeRequest, int64, error)
	GetRequest(ctx context.Context, id primitive.ObjectID) (*ExchangeRequest, error)
	GetTenantRequests(ctx context.Context, tenantID primitive.ObjectID) ([]ExchangeRequest, error)
	ApproveRequest(ctx context.Context, id, adminID primitive.ObjectID) error
	RejectRequest(ctx context.Context, id, adminID primitive.ObjectID, reason string) error
	CompleteRequest(ctx context.Context, id primitive.ObjectID) error
}

type ExchangeServiceImpl struct {
	ExchangeRepo ExchangeRepository
	TenantRepo   tenant.TenantRepository
	RoomRepo     room.RoomRepository
}

func NewExchangeService(exchangeRepo ExchangeRepository, tenantRepo tenant.TenantRepository, roomRepo room.RoomRepository) ExchangeService {
	return &ExchangeServiceImpl{
		ExchangeRepo: exchangeRepo,
		TenantRepo:   tenantRepo,
		RoomRepo:     roomRepo,
	}
}

func (s *ExchangeServiceImpl) CreateRequest(ctx context.Context, request *ExchangeRequest) error {
	t, err := s.TenantRepo.FindByID(ctx, request.Tenant)
	if err != nil {
		return err
	}
	if _, err := s.RoomRepo.FindByID(ctx, request.RequestedRoom); err != nil {
		return err
	}

	if request.ID.IsZero() {
		request.ID = primitive.NewObjectID()
	}
	request.CurrentRoom = t.Room
	request.Status = StatusPending
	request.CreatedAt = time.Now()
	request.UpdatedAt = time.Now()

	return s.ExchangeRepo.Create(ctx, request)
}

func (s *ExchangeServiceImpl) ListRequests(ctx context.Context, status string, page, limit int64) ([]ExchangeRequest, int64, error) {
	filter := make(map[string]interface{})
	if status != "" && status != "all" {
		filter["status"] = status
	}
	offset := (page - 1) * limit
	return s.ExchangeRepo.List(ctx, filter, limit, offset)
}

func (s *ExchangeServiceImpl) GetRequest(ctx context.Context, id primitive.ObjectID) (*ExchangeRequest, error) {
	return s.ExchangeRepo.FindByID(ctx, id)
}

func (s *ExchangeServiceImpl) GetTenantRequests(ctx context.Context, tenantID primitive.ObjectID) ([]ExchangeRequest, error) {
	return s.ExchangeRepo.FindByTenant(ctx, tenantID)
}

func (s *ExchangeServiceImpl) ApproveRequest(ctx context.Context, id, adminID primitive.ObjectID) error {
	if err := s.requirePending(ctx, id); err != nil {
		return err
	}

	now := time.Now()
	return s.ExchangeRepo.Update(ctx, id, bson.M{
		"status":        StatusApproved,
		"approved_by":   adminID,
		"approval_date": now,
		"updated_at":    now,
	})
}

func (s *ExchangeServiceImpl) RejectRequest(ctx context.Context, id, adminID primitive.ObjectID, reason string) error {
	if err := s.requirePending(ctx, id); err != nil {
		return err
	}

	now := time.Now()
	return s.ExchangeRepo.Update(ctx, id, bson.M{
		"status":           StatusRejected,
		"approved_by":      adminID,
		"approval_date":    now,
		"rejection_reason": reason,
		"updated_at":       now,
	})
}

// CompleteRequest moves the tenant into the requested room. The tenant
// update and the two occupancy counters are separate writes, so a failure
// partway through leaves counters stale until the nightly reconciliation.
func (s *ExchangeServiceImpl) CompleteRequest(ctx context.Context, id primitive.ObjectID) error {
	request, err := s.ExchangeRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if request.Status != StatusPending && request.Status != StatusApproved {
		return ErrInvalidTransition
	}

	err = s.TenantRepo.Update(ctx, request.Tenant, bson.M{"$set": bson.M{
		"room":       request.RequestedRoom,
		"updated_at": time.Now(),
	}})
	if err != nil {
		return err
	}

	if request.CurrentRoom != nil {
		// A drifted counter already at zero must not strand the request
		// after the tenant record has moved.
		if err := s.RoomRepo.IncrementOccupancy(ctx, *request.CurrentRoom, -1); err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
			return err
		}
	}
	if err := s.RoomRepo.IncrementOccupancy(ctx, request.RequestedRoom, 1); err != nil {
		return err
	}

	return s.ExchangeRepo.Update(ctx, id, bson.M{
		"status":     StatusCompleted,
		"updated_at": time.Now(),
	})
}

func (s *ExchangeServiceImpl) requirePending(ctx context.Context, id primitive.ObjectID) error {
	request, err := s.ExchangeRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if request.Status != StatusPending {
		return ErrInvalidTransition
	}
	return nil
}
