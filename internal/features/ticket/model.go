package ticket

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Ticket priorities
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Ticket statuses
const (
	StatusOpen       = "open"
	StatusInProgress = "in_progress"
	StatusResolved   = "resolved"
	StatusClosed     = "closed"
)

// Ticket categories
const (
	CategoryTechnical   = "technical"
	CategoryPayment     = "payment"
	CategoryMaintenance = "maintenance"
	CategoryComplaint   = "complaint"
	CategorySecurity    = "security"
	CategoryPlumbing    = "plumbing"
	CategoryOther       = "other"
)

type Ticket struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Priority    string             `bson:"priority" json:"priority"`
	Category    string             `bson:"category" json:"category"`
	Status      string             `bson:"status" json:"status"`
	Tenant      primitive.ObjectID `bson:"tenant" json:"tenant"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updatedAt"`
}

// Stats is the ticket aggregate: counts per status and per category
type Stats struct {
	Total      int64            `json:"total"`
	ByStatus   map[string]int64 `json:"byStatus"`
	ByCategory map[string]int64 `json:"byCategory"`
}
