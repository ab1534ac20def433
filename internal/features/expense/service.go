package expense

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ExpenseService interface {
	ListExpenses(ctx context.Context, search, status, category string, page, limit int64) ([]Expense, int64, error)
	GetExpense(ctx context.Context, id primitive.ObjectID) (*Expense, error)
	CreateExpense(ctx context.Context, expense *Expense) error
	UpdateExpense(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error
	DeleteExpense(ctx context.Context, id primitive.ObjectID) error
}

type ExpenseServiceImpl struct {
	ExpenseRepo ExpenseRepository
}

func NewExpenseService(expenseRepo ExpenseRepository) ExpenseService {
	return &ExpenseServiceImpl{
		ExpenseRepo: expenseRepo,
	}
}

func BuildListFilter(search, status, category string) map[string]interface{} {
	filter := make(map[string]interface{})
	if search != "" {
		regex := primitive.Regex{Pattern: search, Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"description": bson.M{"$regex": regex}},
			bson.M{"supplier": bson.M{"$regex": regex}},
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

func (s *ExpenseServiceImpl) ListExpenses(ctx context.Context, search, status, category string, page, limit int64) ([]Expense, int64, error) {
	filter := BuildListFilter(search, status, category)
	offset := (page - 1) * limit
	return s.ExpenseRepo.List(ctx, filter, limit, offset)
}

func (s *ExpenseServiceImpl) GetExpense(ctx context.Context, id primitive.ObjectID) (*Expense, error) {
	return s.ExpenseRepo.FindByID(ctx, id)
}

func (s *ExpenseServiceImpl) CreateExpense(ctx context.Context, expense *Expense) error {
	if expense.ID.IsZero() {
		expense.ID = primitive.NewObjectID()
	}
	if expense.Status == "" {
		expense.Status = StatusPending
	}
	if expense.Date.IsZero() {
		expense.Date = time.Now()
	}
	expense.CreatedAt = time.Now()
	expense.UpdatedAt = time.Now()

	return s.ExpenseRepo.Create(ctx, expense)
}

var updatableFields = map[string]string{
	"category":      "category",
	"subcategory":   "subcategory",
	"amount":        "amount",
	"description":   "description",
	"supplier":      "supplier",
	"paymentMethod": "payment_method",
	"status":        "status",
}

func (s *ExpenseServiceImpl) UpdateExpense(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	set := bson.M{}
	for field, value := range updates {
		if name, ok := updatableFields[field]; ok {
			set[name] = value
		}
	}
	if len(set) == 0 {
		return nil
	}
	set["updated_at"] = time.Now()

	return s.ExpenseRepo.Update(ctx, id, set)
}

func (s *ExpenseServiceImpl) DeleteExpense(ctx context.Context, id primitive.ObjectID) error {
	return s.ExpenseRepo.Delete(ctx, id)
}
