package payment

import (
	"time"

	"gorm.io/datatypes"
)

// Payment is an audit record written alongside submission payment
// transitions. The submission row stays the source of truth for the
// current state; this table keeps the per-event trail.
type Payment struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	SubmissionID uint           `gorm:"index;not null" json:"submission_id"`
	Method       string         `gorm:"size:30;not null" json:"method"`
	Reference    string         `gorm:"size:100;index" json:"reference"`
	Event        string         `gorm:"size:50;not null" json:"event"`
	Status       string         `gorm:"size:20;not null" json:"status"`
	Amount       float64        `json:"amount"`
	Currency     string         `gorm:"size:10" json:"currency"`
	Detail       datatypes.JSON `gorm:"type:jsonb" json:"detail"`
	CreatedAt    time.Time      `json:"created_at"`
}

// Audit event names.
const (
	EventIntentCreated = "intent_created"
	EventConfirmed     = "confirmed"
	EventWebhook       = "webhook"
	EventExecuted      = "executed"
	EventRecorded      = "recorded"
	EventApproved      = "approved"
	EventRejected      = "rejected"
	EventRefunded      = "refunded"
)
