package tenant

import (
	"time"

	"go-hms/internal/features/payment"
	"go-hms/internal/features/ticket"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type EmergencyContact struct {
	Name         string `bson:"name,omitempty" json:"name,omitempty"`
	Relationship string `bson:"relationship,omitempty" json:"relationship,omitempty"`
	Phone        string `bson:"phone,omitempty" json:"phone,omitempty"`
}

type Tenant struct {
	ID               primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	FirstName        string              `bson:"first_name" json:"firstName"`
	LastName         string              `bson:"last_name" json:"lastName"`
	Email            string              `bson:"email" json:"email"`
	Phone            string              `bson:"phone" json:"phone"`
	AadharNumber     string              `bson:"aadhar_number,omitempty" json:"aadharNumber,omitempty"`
	Room             *primitive.ObjectID `bson:"room,omitempty" json:"room,omitempty"`
	MoveInDate       *time.Time          `bson:"move_in_date,omitempty" json:"moveInDate,omitempty"`
	EmergencyContact EmergencyContact    `bson:"emergency_contact,omitempty" json:"emergencyContact,omitempty"`
	SecurityDeposit  float64             `bson:"security_deposit" json:"securityDeposit"`
	Active           bool                `bson:"active" json:"active"`
	CreatedAt        time.Time           `bson:"created_at" json:"createdAt"`
	UpdatedAt        time.Time           `bson:"updated_at" json:"updatedAt"`
}

// RoomSummary is the populated view of a tenant's room reference
type RoomSummary struct {
	ID     primitive.ObjectID `json:"id"`
	Number string             `json:"number"`
	Type   string             `json:"type"`
	Rent   float64            `json:"rent"`
}

// TenantWithRoom is a tenant with its room reference populated
type TenantWithRoom struct {
	Tenant
	RoomDetail *RoomSummary `json:"roomDetail,omitempty"`
}

// Stats is the tenant aggregate for the admin dashboard
type Stats struct {
	Total    int64            `json:"total"`
	Active   int64            `json:"active"`
	Inactive int64            `json:"inactive"`
	ByRoom   map[string]int64 `json:"byRoom"`
}

// RentDue is the self-service "current rent due" heuristic result
type RentDue struct {
	Amount  float64   `json:"amount"`
	DueDate time.Time `json:"dueDate"`
}

// Dashboard is the tenant self-service view
type Dashboard struct {
	Tenant      TenantWithRoom    `json:"tenant"`
	Payments    []payment.Payment `json:"payments"`
	OpenTickets []ticket.Ticket   `json:"openTickets"`
	RentDue     RentDue           `json:"rentDue"`
}
