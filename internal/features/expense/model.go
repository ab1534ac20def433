package expense

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Expense statuses
const (
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusPaid      = "paid"
	StatusCancelled = "cancelled"
)

type Expense struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Category      string             `bson:"category" json:"category"`
	Subcategory   string             `bson:"subcategory,omitempty" json:"subcategory,omitempty"`
	Amount        float64            `bson:"amount" json:"amount"`
	Description   string             `bson:"description,omitempty" json:"description,omitempty"`
	Supplier      string             `bson:"supplier,omitempty" json:"supplier,omitempty"`
	PaymentMethod string             `bson:"payment_method,omitempty" json:"paymentMethod,omitempty"`
	Date          time.Time          `bson:"date" json:"date"`
	DueDate       *time.Time         `bson:"due_date,omitempty" json:"dueDate,omitempty"`
	Status        string             `bson:"status" json:"status"`
	CreatedAt     time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updatedAt"`
}
