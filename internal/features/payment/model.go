package payment

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment methods
const (
	MethodCash         = "cash"
	MethodCard         = "card"
	MethodOnline       = "online"
	MethodBankTransfer = "bank_transfer"
	MethodCheck        = "check"
)

// Payment statuses
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
	StatusRefunded  = "refunded"
)

// Payment types
const (
	TypeRent        = "rent"
	TypeDeposit     = "deposit"
	TypeMaintenance = "maintenance"
	TypeOther       = "other"
)

type Payment struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Tenant    primitive.ObjectID `bson:"tenant" json:"tenant"`
	Amount    float64            `bson:"amount" json:"amount"`
	Method    string             `bson:"method" json:"method"`
	Status    string             `bson:"status" json:"status"`
	Type      string             `bson:"type" json:"type"`
	DueDate   *time.Time         `bson:"due_date,omitempty" json:"dueDate,omitempty"`
	PaidAt    *time.Time         `bson:"paid_at,omitempty" json:"paidAt,omitempty"`
	Reference string             `bson:"reference,omitempty" json:"reference,omitempty"`
	Notes     string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}

// GroupSum is one bucket of a grouped aggregation (per method or per type)
type GroupSum struct {
	Key   string  `bson:"_id" json:"key"`
	Count int64   `bson:"count" json:"count"`
	Total float64 `bson:"total" json:"total"`
}

// Stats is the payments aggregate for the admin dashboard
type Stats struct {
	Total          int64            `json:"total"`
	ByStatus       map[string]int64 `json:"byStatus"`
	CompletedTotal float64          `json:"completedTotal"`
	PendingTotal   float64          `json:"pendingTotal"`
}
