package vacating

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

type VacatingRequest struct {
	ID                    primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Tenant                primitive.ObjectID  `bson:"tenant" json:"tenant"`
	Room                  *primitive.ObjectID `bson:"room,omitempty" json:"room,omitempty"`
	Reason                string              `bson:"reason" json:"reason"`
	VacatingDate          time.Time           `bson:"vacating_date" json:"vacatingDate"`
	NoticePeriod          int                 `bson:"notice_period,omitempty" json:"noticePeriod,omitempty"`
	Status                string              `bson:"status" json:"status"`
	ApprovedBy            *primitive.ObjectID `bson:"approved_by,omitempty" json:"approvedBy,omitempty"`
	ApprovalDate          *time.Time          `bson:"approval_date,omitempty" json:"approvalDate,omitempty"`
	RejectionReason       string              `bson:"rejection_reason,omitempty" json:"rejectionReason,omitempty"`
	FinalSettlementAmount float64             `bson:"final_settlement_amount,omitempty" json:"finalSettlementAmount,omitempty"`
	SecurityDepositRefund float64             `bson:"security_deposit_refund,omitempty" json:"securityDepositRefund,omitempty"`
	CreatedAt             time.Time           `bson:"created_at" json:"createdAt"`
	UpdatedAt             time.Time           `bson:"updated_at" json:"updatedAt"`
}
