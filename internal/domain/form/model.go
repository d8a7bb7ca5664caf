package form

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Field types accepted in a form schema.
const (
	FieldText     = "text"
	FieldEmail    = "email"
	FieldNumber   = "number"
	FieldTel      = "tel"
	FieldURL      = "url"
	FieldTextarea = "textarea"
	FieldSelect   = "select"
	FieldRadio    = "radio"
	FieldCheckbox = "checkbox"
	FieldDate     = "date"
	FieldFile     = "file"
)

// ValidFieldType reports whether t is a supported field type.
func ValidFieldType(t string) bool {
	switch t {
	case FieldText, FieldEmail, FieldNumber, FieldTel, FieldURL,
		FieldTextarea, FieldSelect, FieldRadio, FieldCheckbox,
		FieldDate, FieldFile:
		return true
	}
	return false
}

// Field is one entry of a form's fields schema, stored as JSON.
type Field struct {
	Name        string   `json:"name"`
	Label       string   `json:"label"`
	Type        string   `json:"type"`
	Required    bool     `json:"required"`
	Placeholder string   `json:"placeholder,omitempty"`
	Options     []string `json:"options,omitempty"`
	MinLength   int      `json:"min_length,omitempty"`
	MaxLength   int      `json:"max_length,omitempty"`
}

// Settings carries per-form behavior toggles, stored as JSON.
type Settings struct {
	RequiresPayment   bool     `json:"requires_payment"`
	PaymentAmount     float64  `json:"payment_amount,omitempty"`
	PaymentCurrency   string   `json:"payment_currency,omitempty"`
	PaymentMethods    []string `json:"payment_methods,omitempty"`
	SubmissionLimit   int      `json:"submission_limit,omitempty"`
	NotifyEmail       string   `json:"notify_email,omitempty"`
	SuccessMessage    string   `json:"success_message,omitempty"`
	AllowEditAfterPay bool     `json:"allow_edit_after_pay,omitempty"`
}

type Form struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	UserID          uint           `gorm:"index;not null" json:"user_id"`
	Title           string         `gorm:"size:255;not null" json:"title"`
	Description     string         `gorm:"type:text" json:"description"`
	Fields          datatypes.JSON `gorm:"type:jsonb" json:"fields"`
	Settings        datatypes.JSON `gorm:"type:jsonb" json:"settings"`
	Analytics       datatypes.JSON `gorm:"type:jsonb" json:"analytics"`
	CustomURL       *string        `gorm:"size:50;uniqueIndex" json:"custom_url"`
	IsActive        bool           `gorm:"not null;default:true" json:"is_active"`
	AllowEditing    bool           `gorm:"not null;default:false" json:"allow_editing"`
	SubmissionCount int            `gorm:"not null;default:0" json:"submission_count"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}
