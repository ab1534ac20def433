package vacating

import (
	"context"
	"errors"
	"time"

	"go-hms/internal/features/tenant"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrInvalidTransition is returned when a request is approved, rejected or
// completed after it has already left the pending state.
var ErrInvalidTransition = errors.New("request is no longer pending")

type Settlement struct {
	FinalSettlementAmount float64 `json:"finalSettlementAmount"`
	SecurityDepositRefund float64 `json:"securityDepositRefund"`
}

type VacatingService interface {
	CreateRequest(ctx context.Context, request *VacatingRequest) error
	ListRequests(ctx context.Context, status string, page, limit int64) ([]VacatingRequest, int64, error)
	GetRequest(ctx context.Context, id primitive.ObjectID) (*VacatingRequest, error)
	GetTenantRequests(ctx context.Context, tenantID primitive.ObjectID) ([]VacatingRequest, error)
	ApproveRequest(ctx context.Context, id, adminID primitive.ObjectID, settlement Settlement) error
	RejectRequest(ctx context.Context, id, adminID primitive.ObjectID, reason string) error
	CompleteRequest(ctx context.Context, id primitive.ObjectID) error
}

type VacatingServiceImpl struct {
	VacatingRepo VacatingRepository
	TenantRepo   tenant.TenantRepository
}

func NewVacatingService(vacatingRepo VacatingRepository, tenantRepo tenant.TenantRepository) VacatingService {
	return &VacatingServiceImpl{
		VacatingRepo: vacatingRepo,
		TenantRepo:   tenantRepo,
	}
}

func (s *VacatingServiceImpl) CreateRequest(ctx context.Context, request *VacatingRequest) error {
	t, err := s.TenantRepo.FindByID(ctx, request.Tenant)
	if err != nil {
		return err
	}

	if request.ID.IsZero() {
		request.ID = primitive.NewObjectID()
	}
	request.Room = t.Room
	request.Status = StatusPending
	request.CreatedAt = time.Now()
	request.UpdatedAt = time.Now()

	return s.VacatingRepo.Create(ctx, request)
}

func (s *VacatingServiceImpl) ListRequests(ctx context.Context, status string, page, limit int64) ([]VacatingRequest, int64, error) {
	filter := make(map[string]interface{})
	if status != "" && status != "all" {
		filter["status"] = status
	}
	offset := (page - 1) * limit
	return s.VacatingRepo.List(ctx, filter, limit, offset)
}

func (s *VacatingServiceImpl) GetRequest(ctx context.Context, id primitive.ObjectID) (*VacatingRequest, error) {
	return s.VacatingRepo.FindByID(ctx, id)
}

func (s *VacatingServiceImpl) GetTenantRequests(ctx context.Context, tenantID primitive.ObjectID) ([]VacatingRequest, error) {
	return s.VacatingRepo.FindByTenant(ctx, tenantID)
}

func (s *VacatingServiceImpl) ApproveRequest(ctx context.Context, id, adminID primitive.ObjectID, settlement Settlement) error {
	if err := s.requirePending(ctx, id); err != nil {
		return err
	}

	now := time.Now()
	return s.VacatingRepo.Update(ctx, id, bson.M{
		"status":                  StatusApproved,
		"approved_by":             adminID,
		"approval_date":           now,
		"final_settlement_amount": settlement.FinalSettlementAmount,
		"security_deposit_refund": settlement.SecurityDepositRefund,
		"updated_at":              now,
	})
}

func (s *VacatingServiceImpl) RejectRequest(ctx context.Context, id, adminID primitive.ObjectID, reason string) error {
	if err := s.requirePending(ctx, id); err != nil {
		return err
	}

	now := time.Now()
	return s.VacatingRepo.Update(ctx, id, bson.M{
		"status":           StatusRejected,
		"approved_by":      adminID,
		"approval_date":    now,
		"rejection_reason": reason,
		"updated_at":       now,
	})
}

func (s *VacatingServiceImpl) CompleteRequest(ctx context.Context, id primitive.ObjectID) error {
	request, err := s.VacatingRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if request.Status != StatusPending && request.Status != StatusApproved {
		return ErrInvalidTransition
	}

	return s.VacatingRepo.Update(ctx, id, bson.M{
		"status":     StatusCompleted,
		"updated_at": time.Now(),
	})
}

func (s *VacatingServiceImpl) requirePending(ctx context.Context, id primitive.ObjectID) error {
	request, err := s.VacatingRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if request.Status != StatusPending {
		return ErrInvalidTransition
	}
	return nil
}
