package setting

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// Setting is a keyed configuration row editable at runtime. The value
// is stored as JSON; Type records how clients should decode it and
// IsPublic marks rows the anonymous settings read may return.
type Setting struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Key         string         `gorm:"size:100;not null;uniqueIndex" json:"key"`
	Value       datatypes.JSON `gorm:"type:jsonb" json:"value"`
	Type        string         `gorm:"size:20;not null;default:string" json:"type"`
	Category    string         `gorm:"size:50;not null;default:general" json:"category"`
	Description string         `gorm:"size:255" json:"description"`
	IsPublic    bool           `json:"is_public"`
	UpdatedBy   uint           `json:"updated_by"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// Value types.
const (
	TypeString  = "string"
	TypeBoolean = "boolean"
	TypeInteger = "integer"
	TypeFloat   = "float"
	TypeJSON    = "json"
)

// Categories.
const (
	CategoryGeneral  = "general"
	CategoryPayment  = "payment"
	CategoryEmail    = "email"
	CategorySecurity = "security"
	CategoryUI       = "ui"
)

var validTypes = map[string]bool{
	TypeString: true, TypeBoolean: true, TypeInteger: true, TypeFloat: true, TypeJSON: true,
}

var validCategories = map[string]bool{
	CategoryGeneral: true, CategoryPayment: true, CategoryEmail: true, CategorySecurity: true, CategoryUI: true,
}

func ValidType(t string) bool     { return validTypes[t] }
func ValidCategory(c string) bool { return validCategories[c] }

// UpdateInput is one key write in an admin settings update.
type UpdateInput struct {
	Key         string          `json:"key" binding:"required,max=100"`
	Value       json.RawMessage `json:"value" binding:"required"`
	Type        string          `json:"type"`
	Category    string          `json:"category"`
	Description *string         `json:"description"`
	IsPublic    *bool           `json:"is_public"`
}

// Well-known setting keys.
const (
	KeyPaymentMethods = "payment_methods"
)

// PaymentMethodConfig is the value shape stored under KeyPaymentMethods.
type PaymentMethodConfig struct {
	Stripe       bool `json:"stripe"`
	Bkash        bool `json:"bkash"`
	BankTransfer bool `json:"bank_transfer"`
}
