package room

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Room types
const (
	TypeSingle = "single"
	TypeDouble = "double"
	TypeShared = "shared"
)

// Room statuses. Status is set explicitly by admins and is independent of
// the occupancy counter: assigning tenants never flips it.
const (
	StatusAvailable   = "available"
	StatusOccupied    = "occupied"
	StatusMaintenance = "maintenance"
)

type Room struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Number    string             `bson:"number" json:"number"`
	Type      string             `bson:"type" json:"type"`
	Rent      float64            `bson:"rent" json:"rent"`
	Occupancy int                `bson:"occupancy" json:"occupancy"`
	Capacity  int                `bson:"capacity" json:"capacity"`
	Status    string             `bson:"status" json:"status"`
	Active    bool               `bson:"active" json:"active"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}

// Stats is the rooms aggregate: counts per type and status plus
// capacity/occupancy totals.
type Stats struct {
	Total          int64            `json:"total"`
	ByType         map[string]int64 `json:"byType"`
	ByStatus       map[string]int64 `json:"byStatus"`
	TotalCapacity  int64            `json:"totalCapacity"`
	TotalOccupancy int64            `json:"totalOccupancy"`
}
