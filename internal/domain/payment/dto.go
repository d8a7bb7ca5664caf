package payment

type CreateIntentInput struct {
	SubmissionID uint `json:"submission_id" binding:"required"`
}

type ConfirmInput struct {
	PaymentIntentID string `json:"payment_intent_id" binding:"required"`
}

type BkashCreateInput struct {
	SubmissionID uint `json:"submission_id" binding:"required"`
}

type BkashExecuteInput struct {
	PaymentID string `json:"payment_id" binding:"required"`
}

type BkashRefundInput struct {
	PaymentID string  `json:"payment_id" binding:"required"`
	Amount    float64 `json:"amount"`
	Reason    string  `json:"reason"`
}

type BankTransferInput struct {
	SubmissionID  uint   `json:"submission_id" binding:"required"`
	BankName      string `json:"bank_name" binding:"required"`
	AccountName   string `json:"account_name" binding:"required"`
	AccountNumber string `json:"account_number" binding:"required"`
	TransferDate  string `json:"transfer_date"`
	ReferenceNote string `json:"reference_note"`
	ReceiptPath   string `json:"receipt_path"`
}

type RejectInput struct {
	Reason string `json:"reason" binding:"required"`
}

// StatusDTO mirrors a submission's payment fields for status queries.
type StatusDTO struct {
	SubmissionID  uint    `json:"submission_id"`
	UniqueID      string  `json:"unique_id"`
	Method        string  `json:"method"`
	Status        string  `json:"status"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	Reference     string  `json:"reference"`
	TransactionID string  `json:"transaction_id,omitempty"`
}
