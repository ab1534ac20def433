package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Roles understood by the access-control predicates
const (
	RoleAdmin  = "admin"
	RoleStaff  = "staff"
	RoleTenant = "tenant"
)

// User is the authentication principal. A user with role=tenant links to
// exactly one Tenant record via TenantID.
type User struct {
	ID         primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Name       string              `bson:"name" json:"name"`
	Email      string              `bson:"email" json:"email"`
	Password   string              `bson:"password" json:"-"`
	Role       string              `bson:"role" json:"role"`
	Phone      string              `bson:"phone,omitempty" json:"phone,omitempty"`
	PropertyID *primitive.ObjectID `bson:"property_id,omitempty" json:"propertyId,omitempty"`
	TenantID   *primitive.ObjectID `bson:"tenant_id,omitempty" json:"tenantId,omitempty"`
	Active     bool                `bson:"active" json:"active"`
	CreatedAt  time.Time           `bson:"created_at" json:"createdAt"`
	UpdatedAt  time.Time           `bson:"updated_at" json:"updatedAt"`
}

// Paginated is the uniform list envelope: every list endpoint returns
// items plus page math derived from the collection count.
type Paginated struct {
	Items       interface{} `json:"items"`
	TotalPages  int64       `json:"totalPages"`
	CurrentPage int64       `json:"currentPage"`
	Total       int64       `json:"total"`
}

// NewPaginated computes totalPages = ceil(total/limit)
func NewPaginated(items interface{}, total, page, limit int64) Paginated {
	if limit <= 0 {
		limit = 10
	}
	return Paginated{
		Items:       items,
		TotalPages:  (total + limit - 1) / limit,
		CurrentPage: page,
		Total:       total,
	}
}
