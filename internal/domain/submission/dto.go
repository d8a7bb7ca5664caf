package submission

import (
	"encoding/json"
	"time"
)

type CreateInput struct {
	FormID        uint           `json:"form_id" binding:"required"`
	Data          map[string]any `json:"data" binding:"required"`
	PaymentMethod string         `json:"payment_method"`
}

type PublicUpdateInput struct {
	EditCode string         `json:"edit_code" binding:"required"`
	Data     map[string]any `json:"data" binding:"required"`
}

type VerifyEditCodeInput struct {
	UniqueID string `json:"unique_id" binding:"required"`
	EditCode string `json:"edit_code" binding:"required"`
}

type AdminUpdateInput struct {
	Status     *string `json:"status"`
	AdminNotes *string `json:"admin_notes"`
}

// ListFilter narrows admin submission listings.
type ListFilter struct {
	FormID        uint
	Status        string
	PaymentStatus string
	Search        string
	DateFrom      *time.Time
	DateTo        *time.Time
	Page          int
	PerPage       int
}

// CreatedDTO is returned to the submitter. It is the only place the
// edit code is ever exposed.
type CreatedDTO struct {
	ID            uint    `json:"id"`
	UniqueID      string  `json:"unique_id"`
	EditCode      string  `json:"edit_code"`
	Status        string  `json:"status"`
	PaymentStatus string  `json:"payment_status"`
	PaymentAmount float64 `json:"payment_amount,omitempty"`
}

// DTO is the staff-facing projection of a submission.
type DTO struct {
	ID                     uint           `json:"id"`
	UniqueID               string         `json:"unique_id"`
	FormID                 uint           `json:"form_id"`
	Data                   map[string]any `json:"data"`
	Status                 string         `json:"status"`
	PaymentMethod          string         `json:"payment_method"`
	PaymentStatus          string         `json:"payment_status"`
	PaymentAmount          float64        `json:"payment_amount"`
	PaymentCurrency        string         `json:"payment_currency"`
	PaymentReference       string         `json:"payment_reference"`
	TransactionID          string         `json:"transaction_id"`
	ReceiptPath            string         `json:"receipt_path,omitempty"`
	PaymentCompletedAt     *time.Time     `json:"payment_completed_at"`
	PaymentRejectionReason string         `json:"payment_rejection_reason,omitempty"`
	RefundAmount           float64        `json:"refund_amount,omitempty"`
	RefundTransactionID    string         `json:"refund_transaction_id,omitempty"`
	RefundedAt             *time.Time     `json:"refunded_at,omitempty"`
	SubmitterIP            string         `json:"submitter_ip"`
	AdminNotes             string         `json:"admin_notes,omitempty"`
	EditHistory            []EditEntry    `json:"edit_history,omitempty"`
	CreatedAt              time.Time      `json:"created_at"`
	UpdatedAt              time.Time      `json:"updated_at"`
}

// ParsedData decodes the stored data column.
func (s *Submission) ParsedData() (map[string]any, error) {
	data := map[string]any{}
	if len(s.Data) == 0 {
		return data, nil
	}
	if err := json.Unmarshal(s.Data, &data); err != nil {
		return nil, err
	}
	return data, nil
}

// ParsedEditHistory decodes the stored edit history log.
func (s *Submission) ParsedEditHistory() ([]EditEntry, error) {
	if len(s.EditHistory) == 0 {
		return nil, nil
	}
	var entries []EditEntry
	if err := json.Unmarshal(s.EditHistory, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// ToDTO projects a submission for staff responses.
func ToDTO(s *Submission) (DTO, error) {
	data, err := s.ParsedData()
	if err != nil {
		return DTO{}, err
	}
	history, err := s.ParsedEditHistory()
	if err != nil {
		return DTO{}, err
	}
	return DTO{
		ID:                     s.ID,
		UniqueID:               s.UniqueID,
		FormID:                 s.FormID,
		Data:                   data,
		Status:                 s.Status,
		PaymentMethod:          s.PaymentMethod,
		PaymentStatus:          s.PaymentStatus,
		PaymentAmount:          s.PaymentAmount,
		PaymentCurrency:        s.PaymentCurrency,
		PaymentReference:       s.PaymentReference,
		TransactionID:          s.TransactionID,
		ReceiptPath:            s.ReceiptPath,
		PaymentCompletedAt:     s.PaymentCompletedAt,
		PaymentRejectionReason: s.PaymentRejectionReason,
		RefundAmount:           s.RefundAmount,
		RefundTransactionID:    s.RefundTransactionID,
		RefundedAt:             s.RefundedAt,
		SubmitterIP:            s.SubmitterIP,
		AdminNotes:             s.AdminNotes,
		EditHistory:            history,
		CreatedAt:              s.CreatedAt,
		UpdatedAt:              s.UpdatedAt,
	}, nil
}
