package exchange

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Request statuses; approved, rejected and completed are terminal.
const (
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusRejected  = "rejected"
	StatusCompleted = "completed"
)

type ExchangeRequest struct {
	ID              primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Tenant          primitive.ObjectID  `bson:"tenant" json:"tenant"`
	CurrentRoom     *primitive.ObjectID `bson:"current_room,omitempty" json:"currentRoom,omitempty"`
	RequestedRoom   primitive.ObjectID  `bson:"requested_room" json:"requestedRoom"`
	Reason          string              `bson:"reason" json:"reason"`
	PreferredDate   *time.Time          `bson:"preferred_date,omitempty" json:"preferredDate,omitempty"`
	Status          string              `bson:"status" json:"status"`
	ApprovedBy      *primitive.ObjectID `bson:"approved_by,omitempty" json:"approvedBy,omitempty"`
	ApprovalDate    *time.Time          `bson:"approval_date,omitempty" json:"approvalDate,omitempty"`
	RejectionReason string              `bson:"rejection_reason,omitempty" json:"rejectionReason,omitempty"`
	CreatedAt       time.Time           `bson:"created_at" json:"createdAt"`
	UpdatedAt       time.Time           `bson:"updated_at" json:"updatedAt"`
}
