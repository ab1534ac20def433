package payment

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PaymentService interface {
	ListPayments(ctx context.Context, search, status, paymentType string, page, limit int64) ([]Payment, int64, error)
	GetPayment(ctx context.Context, id primitive.ObjectID) (*Payment, error)
	CreatePayment(ctx context.Context, payment *Payment) error
	UpdatePayment(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error
	DeletePayment(ctx context.Context, id primitive.ObjectID) error
	GetTenantPayments(ctx context.Context, tenantID primitive.ObjectID, page, limit int64) ([]Payment, int64, error)
	GetStats(ctx context.Context) (*Stats, error)
}

type PaymentServiceImpl struct {
	PaymentRepo PaymentRepository
}

func NewPaymentService(paymentRepo PaymentRepository) PaymentService {
	return &PaymentServiceImpl{
		PaymentRepo: paymentRepo,
	}
}

// BuildListFilter maps list query params to a store filter; "all" and empty
// are equivalent for the categorical filters. Search matches reference or
// notes, case-insensitive.
func BuildListFilter(search, status, paymentType string) map[string]interface{} {
	filter := make(map[string]interface{})
	if search != "" {
		regex := primitive.Regex{Pattern: search, Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"reference": bson.M{"$regex": regex}},
			bson.M{"notes": bson.M{"$regex": regex}},
		}
	}
	if status != "" && status != "all" {
		filter["status"] = status
	}
	if paymentType != "" && paymentType != "all" {
		filter["type"] = paymentType
	}
	return filter
}

func (s *PaymentServiceImpl) ListPayments(ctx context.Context, search, status, paymentType string, page, limit int64) ([]Payment, int64, error) {
	filter := BuildListFilter(search, status, paymentType)
	offset := (page - 1) * limit
	return s.PaymentRepo.List(ctx, filter, limit, offset)
}

func (s *PaymentServiceImpl) GetPayment(ctx context.Context, id primitive.ObjectID) (*Payment, error) {
	return s.PaymentRepo.FindByID(ctx, id)
}

func (s *PaymentServiceImpl) CreatePayment(ctx context.Context, payment *Payment) error {
	if payment.ID.IsZero() {
		payment.ID = primitive.NewObjectID()
	}
	if payment.Status == "" {
		payment.Status = StatusPending
	}
	if payment.Type == "" {
		payment.Type = TypeRent
	}
	if payment.Status == StatusCompleted && payment.PaidAt == nil {
		now := time.Now()
		payment.PaidAt = &now
	}
	payment.CreatedAt = time.Now()
	payment.UpdatedAt = time.Now()

	return s.PaymentRepo.Create(ctx, payment)
}

var updatableFields = map[string]bool{
	"amount":    true,
	"method":    true,
	"status":    true,
	"type":      true,
	"reference": true,
	"notes":     true,
}

// UpdatePayment applies a partial update. Transitioning status to completed
// stamps paidAt when the caller did not supply one.
func (s *PaymentServiceImpl) UpdatePayment(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	set := bson.M{}
	for field, value := range updates {
		if updatableFields[field] {
			set[field] = value
		}
	}

	if status, ok := set["status"].(string); ok && status == StatusCompleted {
		current, err := s.PaymentRepo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if current.PaidAt == nil {
			set["paid_at"] = time.Now()
		}
	}

	if len(set) == 0 {
		return nil
	}
	set["updated_at"] = time.Now()

	return s.PaymentRepo.Update(ctx, id, set)
}

func (s *PaymentServiceImpl) DeletePayment(ctx context.Context, id primitive.ObjectID) error {
	return s.PaymentRepo.Delete(ctx, id)
}

func (s *PaymentServiceImpl) GetTenantPayments(ctx context.Context, tenantID primitive.ObjectID, page, limit int64) ([]Payment, int64, error) {
	filter := map[string]interface{}{"tenant": tenantID}
	offset := (page - 1) * limit
	return s.PaymentRepo.List(ctx, filter, limit, offset)
}

func (s *PaymentServiceImpl) GetStats(ctx context.Context) (*Stats, error) {
	counts, err := s.PaymentRepo.CountsByStatus(ctx)
	if err != nil {
		return nil, err
	}

	var total int64
	for _, c := range counts {
		total += c
	}

	completed, err := s.PaymentRepo.SumCompletedBetween(ctx, time.Time{}, farFuture())
	if err != nil {
		return nil, err
	}

	_, pendingSum, err := s.PaymentRepo.PendingTotals(ctx)
	if err != nil {
		return nil, err
	}

	return &Stats{
		Total:          total,
		ByStatus:       counts,
		CompletedTotal: completed,
		PendingTotal:   pendingSum,
	}, nil
}

func farFuture() time.Time {
	return time.Now().AddDate(100, 0, 0)
}
