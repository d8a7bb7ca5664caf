package application

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"gorm.io/datatypes"

	"github.com/tahmid-dev/formbuilder-go/internal/domain/payment"
	"github.com/tahmid-dev/formbuilder-go/internal/domain/submission"
	"github.com/tahmid-dev/formbuilder-go/internal/payments/bkash"
	"github.com/tahmid-dev/formbuilder-go/internal/payments/stripe"
	"github.com/tahmid-dev/formbuilder-go/internal/repository"
)

// PaymentService coordinates the three payment adapters. Each adapter
// owns the submissions whose payment reference it assigned; no adapter
// touches another's references.
type PaymentService struct {
	Repos  *repository.Repos
	Stripe *stripe.Client
	Bkash  *bkash.Gateway
}

func NewPaymentService(repos *repository.Repos, stripeClient *stripe.Client, bkashGateway *bkash.Gateway) *PaymentService {
	return &PaymentService{Repos: repos, Stripe: stripeClient, Bkash: bkashGateway}
}

func (s *PaymentService) audit(submissionID uint, method, reference, event, status string, amount float64, currency string, detail any) {
	var detailJSON datatypes.JSON
	if detail != nil {
		if raw, err := json.Marshal(detail); err == nil {
			detailJSON = datatypes.JSON(raw)
		}
	}
	rec := payment.Payment{
		SubmissionID: submissionID,
		Method:       method,
		Reference:    reference,
		Event:        event,
		Status:       status,
		Amount:       amount,
		Currency:     currency,
		Detail:       detailJSON,
	}
	if err := s.Repos.Payment.RecordPayment(&rec); err != nil {
		log.WithError(err).Warn("payment audit record failed")
	}
}

// ---- Card processor ----

// CreateIntent registers an intent with the card processor and stores
// its id as the submission's payment reference.
func (s *PaymentService) CreateIntent(ctx context.Context, submissionID uint) (*stripe.Intent, error) {
	if s.Stripe == nil || !s.Stripe.Configured() {
		return nil, ErrPaymentNotConfigured
	}
	sub, err := s.Repos.Submission.GetSubmissionByID(submissionID)
	if err != nil {
		return nil, ErrSubmissionNotFound
	}

	currency := sub.PaymentCurrency
	if currency == "" {
		currency = "usd"
	}
	intent, err := s.Stripe.CreateIntent(ctx, sub.PaymentAmount, currency)
	if err != nil {
		return nil, err
	}

	sub.PaymentMethod = submission.MethodStripe
	sub.PaymentStatus = submission.PayPending
	sub.PaymentReference = intent.ID
	if err := s.Repos.Submission.SaveSubmission(&sub); err != nil {
		return nil, err
	}
	s.audit(sub.ID, submission.MethodStripe, intent.ID, payment.EventIntentCreated, submission.PayPending, sub.PaymentAmount, currency, intent)
	return intent, nil
}

// ConfirmIntent polls the processor and applies the terminal outcome.
// The webhook applies the same transition; both paths converge on the
// same terminal value so their race is harmless.
func (s *PaymentService) ConfirmIntent(ctx context.Context, intentID string) (payment.StatusDTO, error) {
	if s.Stripe == nil || !s.Stripe.Configured() {
		return payment.StatusDTO{}, ErrPaymentNotConfigured
	}
	sub, err := s.Repos.Submission.GetSubmissionByPaymentReference(intentID)
	if err != nil {
		return payment.StatusDTO{}, ErrPaymentNotFound
	}
	if sub.PaymentMethod != submission.MethodStripe {
		return payment.StatusDTO{}, ErrPaymentWrongMethod
	}

	intent, err := s.Stripe.RetrieveIntent(ctx, intentID)
	if err != nil {
		return payment.StatusDTO{}, err
	}

	if intent.Status == "succeeded" {
		s.applyStripeOutcome(&sub, true, payment.EventConfirmed, intent)
	} else {
		s.applyStripeOutcome(&sub, false, payment.EventConfirmed, intent)
	}
	if err := s.Repos.Submission.SaveSubmission(&sub); err != nil {
		return payment.StatusDTO{}, err
	}
	return statusDTO(&sub), nil
}

// HandleWebhook verifies the event signature and applies the intent's
// outcome. Re-delivery of an already-applied event is a no-op; the
// write is idempotent on the terminal value.
func (s *PaymentService) HandleWebhook(payload []byte, sigHeader string) error {
	if s.Stripe == nil {
		return ErrPaymentNotConfigured
	}
	event, err := s.Stripe.VerifyWebhook(payload, sigHeader)
	if err != nil {
		return err
	}

	switch event.Type {
	case "payment_intent.succeeded", "payment_intent.payment_failed":
	default:
		log.WithField("type", event.Type).Debug("ignoring webhook event")
		return nil
	}

	sub, err := s.Repos.Submission.GetSubmissionByPaymentReference(event.Data.Object.ID)
	if err != nil {
		return ErrPaymentNotFound
	}
	if sub.PaymentMethod != submission.MethodStripe {
		return ErrPaymentWrongMethod
	}

	succeeded := event.Type == "payment_intent.succeeded"
	if succeeded && sub.PaymentStatus == submission.PayCompleted {
		return nil
	}
	if !succeeded && sub.PaymentStatus == submission.PayFailed {
		return nil
	}

	s.applyStripeOutcome(&sub, succeeded, payment.EventWebhook, &event.Data.Object)
	return s.Repos.Submission.SaveSubmission(&sub)
}

func (s *PaymentService) applyStripeOutcome(sub *submission.Submission, succeeded bool, event string, intent *stripe.Intent) {
	if succeeded {
		now := time.Now()
		sub.PaymentStatus = submission.PayCompleted
		sub.Status = submission.StatusCompleted
		sub.PaymentCompletedAt = &now
	} else {
		// Only the payment fails; the submission stays as it was so
		// the submitter can retry the charge.
		sub.PaymentStatus = submission.PayFailed
	}
	s.audit(sub.ID, submission.MethodStripe, sub.PaymentReference, event, sub.PaymentStatus, sub.PaymentAmount, sub.PaymentCurrency, intent)
}

// ---- Mobile wallet ----

// BkashCreate mints a wallet payment and takes ownership of the
// submission's payment reference.
func (s *PaymentService) BkashCreate(submissionID uint) (*bkash.Payment, error) {
	sub, err := s.Repos.Submission.GetSubmissionByID(submissionID)
	if err != nil {
		return nil, ErrSubmissionNotFound
	}

	currency := sub.PaymentCurrency
	if currency == "" {
		currency = "BDT"
	}
	p := s.Bkash.CreatePayment(sub.PaymentAmount, currency, bkash.Invoice(sub.UniqueID))

	sub.PaymentMethod = submission.MethodBkash
	sub.PaymentStatus = submission.PayPending
	sub.PaymentReference = p.PaymentID
	if err := s.Repos.Submission.SaveSubmission(&sub); err != nil {
		return nil, err
	}
	s.audit(sub.ID, submission.MethodBkash, p.PaymentID, payment.EventIntentCreated, submission.PayPending, sub.PaymentAmount, currency, p)
	return p, nil
}

// BkashExecute finalizes a created wallet payment.
func (s *PaymentService) BkashExecute(paymentID string) (payment.StatusDTO, error) {
	sub, err := s.Repos.Submission.GetSubmissionByPaymentReference(paymentID)
	if err != nil {
		return payment.StatusDTO{}, ErrPaymentNotFound
	}
	if sub.PaymentMethod != submission.MethodBkash {
		return payment.StatusDTO{}, ErrPaymentWrongMethod
	}
	if sub.PaymentStatus == submission.PayCompleted {
		return statusDTO(&sub), nil
	}
	if sub.PaymentStatus != submission.PayPending {
		return payment.StatusDTO{}, ErrPaymentWrongState
	}

	executed := s.Bkash.ExecutePayment(paymentID)
	now := time.Now()
	sub.PaymentStatus = submission.PayCompleted
	sub.Status = submission.StatusCompleted
	sub.TransactionID = executed.TrxID
	sub.PaymentCompletedAt = &now

	if err := s.Repos.Submission.SaveSubmission(&sub); err != nil {
		return payment.StatusDTO{}, err
	}
	s.audit(sub.ID, submission.MethodBkash, paymentID, payment.EventExecuted, submission.PayCompleted, sub.PaymentAmount, sub.PaymentCurrency, executed)
	return statusDTO(&sub), nil
}

// BkashQuery mirrors the stored state; it never mutates.
func (s *PaymentService) BkashQuery(paymentID string) (payment.StatusDTO, error) {
	sub, err := s.Repos.Submission.GetSubmissionByPaymentReference(paymentID)
	if err != nil {
		return payment.StatusDTO{}, ErrPaymentNotFound
	}
	if sub.PaymentMethod != submission.MethodBkash {
		return payment.StatusDTO{}, ErrPaymentWrongMethod
	}
	return statusDTO(&sub), nil
}

// BkashRefund reverses a completed wallet payment. Admin only, guarded
// at the route layer.
func (s *PaymentService) BkashRefund(input payment.BkashRefundInput) (payment.StatusDTO, error) {
	sub, err := s.Repos.Submission.GetSubmissionByPaymentReference(input.PaymentID)
	if err != nil {
		return payment.StatusDTO{}, ErrPaymentNotFound
	}
	if sub.PaymentMethod != submission.MethodBkash {
		return payment.StatusDTO{}, ErrPaymentWrongMethod
	}
	if sub.PaymentStatus != submission.PayCompleted {
		return payment.StatusDTO{}, ErrPaymentWrongState
	}

	amount := input.Amount
	if amount == 0 {
		amount = sub.PaymentAmount
	}
	now := time.Now()
	sub.PaymentStatus = submission.PayRefunded
	sub.RefundAmount = amount
	sub.RefundTransactionID = s.Bkash.RefundTransactionID()
	sub.RefundedAt = &now

	if err := s.Repos.Submission.SaveSubmission(&sub); err != nil {
		return payment.StatusDTO{}, err
	}
	s.audit(sub.ID, submission.MethodBkash, input.PaymentID, payment.EventRefunded, submission.PayRefunded, amount, sub.PaymentCurrency, input)
	return statusDTO(&sub), nil
}

// ---- Bank transfer ----

// RecordBankTransfer stores the submitted bank details and parks the
// submission for manual approval.
func (s *PaymentService) RecordBankTransfer(input payment.BankTransferInput, receiptPath string) (payment.StatusDTO, error) {
	sub, err := s.Repos.Submission.GetSubmissionByID(input.SubmissionID)
	if err != nil {
		return payment.StatusDTO{}, ErrSubmissionNotFound
	}

	detailJSON, err := json.Marshal(input)
	if err != nil {
		return payment.StatusDTO{}, err
	}

	reference := "pay_bank_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	sub.PaymentMethod = submission.MethodBankTransfer
	sub.PaymentStatus = submission.PayPendingApproval
	sub.PaymentReference = reference
	sub.PaymentDetails = datatypes.JSON(detailJSON)
	if receiptPath != "" {
		sub.ReceiptPath = receiptPath
	}

	if err := s.Repos.Submission.SaveSubmission(&sub); err != nil {
		return payment.StatusDTO{}, err
	}
	s.audit(sub.ID, submission.MethodBankTransfer, reference, payment.EventRecorded, submission.PayPendingApproval, sub.PaymentAmount, sub.PaymentCurrency, input)
	return statusDTO(&sub), nil
}

// ApproveBankTransfer completes a transfer awaiting approval.
func (s *PaymentService) ApproveBankTransfer(submissionID uint) (payment.StatusDTO, error) {
	sub, err := s.Repos.Submission.GetSubmissionByID(submissionID)
	if err != nil {
		return payment.StatusDTO{}, ErrSubmissionNotFound
	}
	if sub.PaymentMethod != submission.MethodBankTransfer {
		return payment.StatusDTO{}, ErrPaymentWrongMethod
	}
	if sub.PaymentStatus != submission.PayPendingApproval {
		return payment.StatusDTO{}, ErrPaymentWrongState
	}

	now := time.Now()
	sub.PaymentStatus = submission.PayCompleted
	sub.Status = submission.StatusCompleted
	sub.PaymentCompletedAt = &now

	if err := s.Repos.Submission.SaveSubmission(&sub); err != nil {
		return payment.StatusDTO{}, err
	}
	s.audit(sub.ID, submission.MethodBankTransfer, sub.PaymentReference, payment.EventApproved, submission.PayCompleted, sub.PaymentAmount, sub.PaymentCurrency, nil)
	return statusDTO(&sub), nil
}

// RejectBankTransfer declines a transfer awaiting approval and records
// the reason.
func (s *PaymentService) RejectBankTransfer(submissionID uint, reason string) (payment.StatusDTO, error) {
	sub, err := s.Repos.Submission.GetSubmissionByID(submissionID)
	if err != nil {
		return payment.StatusDTO{}, ErrSubmissionNotFound
	}
	if sub.PaymentMethod != submission.MethodBankTransfer {
		return payment.StatusDTO{}, ErrPaymentWrongMethod
	}
	if sub.PaymentStatus != submission.PayPendingApproval {
		return payment.StatusDTO{}, ErrPaymentWrongState
	}

	sub.PaymentStatus = submission.PayRejected
	sub.Status = submission.StatusFailed
	sub.PaymentRejectionReason = reason

	if err := s.Repos.Submission.SaveSubmission(&sub); err != nil {
		return payment.StatusDTO{}, err
	}
	s.audit(sub.ID, submission.MethodBankTransfer, sub.PaymentReference, payment.EventRejected, submission.PayRejected, sub.PaymentAmount, sub.PaymentCurrency, map[string]string{"reason": reason})
	return statusDTO(&sub), nil
}

// ReceiptObject returns the stored receipt path for a submission.
func (s *PaymentService) ReceiptObject(submissionID uint) (string, error) {
	sub, err := s.Repos.Submission.GetSubmissionByID(submissionID)
	if err != nil {
		return "", ErrSubmissionNotFound
	}
	if sub.ReceiptPath == "" {
		return "", ErrPaymentNotFound
	}
	return sub.ReceiptPath, nil
}

// History lists the audit trail for one submission.
func (s *PaymentService) History(submissionID uint) ([]payment.Payment, error) {
	if _, err := s.Repos.Submission.GetSubmissionByID(submissionID); err != nil {
		return nil, ErrSubmissionNotFound
	}
	return s.Repos.Payment.ListPaymentsBySubmission(submissionID)
}

func statusDTO(sub *submission.Submission) payment.StatusDTO {
	return payment.StatusDTO{
		SubmissionID:  sub.ID,
		UniqueID:      sub.UniqueID,
		Method:        sub.PaymentMethod,
		Status:        sub.PaymentStatus,
		Amount:        sub.PaymentAmount,
		Currency:      sub.PaymentCurrency,
		Reference:     sub.PaymentReference,
		TransactionID: sub.TransactionID,
	}
}
