package submission

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Submission status values. Payment adapters drive the pending ->
// completed/failed transitions; admins may overlay approved/rejected
// at any time without a transition table.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
	StatusApproved  = "approved"
	StatusRejected  = "rejected"
)

// Payment status values. Owned exclusively by the adapter that set the
// payment reference, except the admin approve/reject decision on
// pending_approval.
const (
	PayPending         = "pending"
	PayCompleted       = "completed"
	PayFailed          = "failed"
	PayPendingApproval = "pending_approval"
	PayRejected        = "rejected"
	PayRefunded        = "refunded"
)

// Payment method identifiers.
const (
	MethodStripe       = "stripe"
	MethodBkash        = "bkash"
	MethodBankTransfer = "bank_transfer"
)

// ValidStatus reports whether s is an accepted submission status.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusCompleted, StatusFailed, StatusApproved, StatusRejected:
		return true
	}
	return false
}

type Submission struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	UniqueID string `gorm:"size:30;not null;uniqueIndex" json:"unique_id"`
	EditCode string `gorm:"size:8;not null" json:"-"`
	FormID   uint   `gorm:"index;not null" json:"form_id"`

	Data   datatypes.JSON `gorm:"type:jsonb;not null" json:"data"`
	Status string         `gorm:"size:20;not null;default:'pending'" json:"status"`

	PaymentMethod          string         `gorm:"size:30" json:"payment_method"`
	PaymentStatus          string         `gorm:"size:20;not null;default:'pending'" json:"payment_status"`
	PaymentAmount          float64        `json:"payment_amount"`
	PaymentCurrency        string         `gorm:"size:10" json:"payment_currency"`
	PaymentReference       string         `gorm:"size:100;index" json:"payment_reference"`
	TransactionID          string         `gorm:"size:100" json:"transaction_id"`
	PaymentDetails         datatypes.JSON `gorm:"type:jsonb" json:"payment_details"`
	ReceiptPath            string         `gorm:"size:255" json:"receipt_path"`
	PaymentCompletedAt     *time.Time     `json:"payment_completed_at"`
	PaymentRejectionReason string         `gorm:"size:500" json:"payment_rejection_reason"`

	RefundAmount        float64    `json:"refund_amount"`
	RefundTransactionID string     `gorm:"size:100" json:"refund_transaction_id"`
	RefundedAt          *time.Time `json:"refunded_at"`

	SubmitterIP        string         `gorm:"size:45" json:"submitter_ip"`
	SubmitterUserAgent string         `gorm:"size:255" json:"submitter_user_agent"`
	AdminNotes         string         `gorm:"type:text" json:"admin_notes"`
	EditHistory        datatypes.JSON `gorm:"type:jsonb" json:"edit_history"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// EditEntry is one row of the edit history log stored on the record.
type EditEntry struct {
	EditedAt time.Time `json:"edited_at"`
	Source   string    `json:"source"`
	Note     string    `json:"note,omitempty"`
}
