package handlers

import (
	"errors"
	"io"
	"net/http"
	"path"
	"regexp"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/tahmid-dev/formbuilder-go/internal/application"
	"github.com/tahmid-dev/formbuilder-go/internal/domain/payment"
	"github.com/tahmid-dev/formbuilder-go/internal/payments/stripe"
	"github.com/tahmid-dev/formbuilder-go/internal/storage"
	"github.com/tahmid-dev/formbuilder-go/pkg/response"
	"github.com/tahmid-dev/formbuilder-go/pkg/utils"
)

type PaymentHandler struct {
	svc      *application.PaymentService
	receipts *storage.ReceiptStore
}

func NewPaymentHandler(svc *application.PaymentService, receipts *storage.ReceiptStore) *PaymentHandler {
	return &PaymentHandler{svc: svc, receipts: receipts}
}

// ---- Card processor ----

func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	var input payment.CreateIntentInput
	if !bindJSON(c, &input) {
		return
	}

	intent, err := h.svc.CreateIntent(c.Request.Context(), input.SubmissionID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, gin.H{
		"payment_intent_id": intent.ID,
		"client_secret":     intent.ClientSecret,
	}, "Payment intent created")
}

func (h *PaymentHandler) ConfirmIntent(c *gin.Context) {
	var input payment.ConfirmInput
	if !bindJSON(c, &input) {
		return
	}

	dto, err := h.svc.ConfirmIntent(c.Request.Context(), input.PaymentIntentID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, dto, "Payment confirmed")
}

// Webhook verifies and applies gateway events. The raw body is needed
// for signature verification, so this skips the JSON binder.
func (h *PaymentHandler) Webhook(c *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, 1<<20))
	if err != nil {
		response.BadRequest(c, "Unreadable payload")
		return
	}

	err = h.svc.HandleWebhook(payload, c.GetHeader("Stripe-Signature"))
	if err != nil {
		if errors.Is(err, stripe.ErrSignatureMissing) ||
			errors.Is(err, stripe.ErrSignatureInvalid) ||
			errors.Is(err, stripe.ErrSignatureExpired) {
			response.BadRequest(c, "Invalid signature")
			return
		}
		if errors.Is(err, application.ErrPaymentNotFound) {
			// Acknowledge so the gateway stops retrying an unknown intent.
			log.Warn("webhook for unknown payment reference")
			c.JSON(http.StatusOK, gin.H{"received": true})
			return
		}
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"received": true})
}

// ---- Mobile wallet ----

func (h *PaymentHandler) BkashCreate(c *gin.Context) {
	var input payment.BkashCreateInput
	if !bindJSON(c, &input) {
		return
	}

	p, err := h.svc.BkashCreate(input.SubmissionID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, p, "Payment created")
}

func (h *PaymentHandler) BkashExecute(c *gin.Context) {
	var input payment.BkashExecuteInput
	if !bindJSON(c, &input) {
		return
	}

	dto, err := h.svc.BkashExecute(input.PaymentID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, dto, "Payment executed")
}

func (h *PaymentHandler) BkashQuery(c *gin.Context) {
	paymentID := c.Query("payment_id")
	if paymentID == "" {
		paymentID = c.Param("paymentId")
	}
	if paymentID == "" {
		response.BadRequest(c, "payment_id is required")
		return
	}

	dto, err := h.svc.BkashQuery(paymentID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, dto, "Payment status retrieved")
}

func (h *PaymentHandler) BkashRefund(c *gin.Context) {
	var input payment.BkashRefundInput
	if !bindJSON(c, &input) {
		return
	}

	dto, err := h.svc.BkashRefund(input)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, dto, "Payment refunded")
}

// ---- Bank transfer ----

func (h *PaymentHandler) RecordBankTransfer(c *gin.Context) {
	var input payment.BankTransferInput
	if !bindJSON(c, &input) {
		return
	}

	dto, err := h.svc.RecordBankTransfer(input, input.ReceiptPath)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, dto, "Bank transfer recorded, awaiting approval")
}

func (h *PaymentHandler) ApproveBankTransfer(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	dto, err := h.svc.ApproveBankTransfer(id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, dto, "Bank transfer approved")
}

func (h *PaymentHandler) RejectBankTransfer(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var input payment.RejectInput
	if !bindJSON(c, &input) {
		return
	}

	dto, err := h.svc.RejectBankTransfer(id, input.Reason)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, dto, "Bank transfer rejected")
}

// UploadReceipt stores a transfer receipt and attaches it to the
// submission's bank transfer record.
func (h *PaymentHandler) UploadReceipt(c *gin.Context) {
	if h.receipts == nil {
		response.BadRequest(c, "Receipt uploads are not enabled")
		return
	}

	uniqueID := c.Param("uniqueId")
	file, header, err := c.Request.FormFile("receipt")
	if err != nil {
		response.BadRequest(c, "receipt file is required")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !storage.AllowedType(contentType) {
		response.BadRequest(c, "Receipt must be a JPEG, PNG or PDF")
		return
	}
	if header.Size > storage.MaxReceiptSize {
		response.BadRequest(c, "Receipt must be 10MB or smaller")
		return
	}

	object, err := h.receipts.Put(c.Request.Context(), uniqueID, contentType, header.Size, file)
	if err != nil {
		log.WithError(err).Error("receipt upload failed")
		response.ServerError(c, "Failed to store receipt")
		return
	}
	response.Success(c, gin.H{"receipt_path": object}, "Receipt uploaded")
}

var receiptNamePattern = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

// ReceiptFile streams a stored receipt by file name. Names are kept to
// a safe charset so the object key cannot escape the receipts prefix.
func (h *PaymentHandler) ReceiptFile(c *gin.Context) {
	if h.receipts == nil {
		response.BadRequest(c, "Receipt uploads are not enabled")
		return
	}
	name := c.Param("filename")
	if !receiptNamePattern.MatchString(name) {
		response.BadRequest(c, "Invalid file name")
		return
	}

	obj, size, contentType, err := h.receipts.Get(c.Request.Context(), path.Join("receipts", name))
	if err != nil {
		response.NotFound(c, "Receipt not found")
		return
	}
	defer obj.Close()

	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.DataFromReader(http.StatusOK, size, contentType, obj, nil)
}

// ReceiptURL hands staff a short-lived link to a stored receipt.
func (h *PaymentHandler) ReceiptURL(c *gin.Context) {
	if h.receipts == nil {
		response.BadRequest(c, "Receipt uploads are not enabled")
		return
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	object, err := h.svc.ReceiptObject(id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	url, err := h.receipts.PresignedURL(c.Request.Context(), object)
	if err != nil {
		log.WithError(err).Error("receipt link generation failed")
		response.ServerError(c, "Failed to generate receipt link")
		return
	}
	response.Success(c, gin.H{"url": url}, "Receipt link generated")
}

// History lists a submission's payment audit events.
func (h *PaymentHandler) History(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	events, err := h.svc.History(id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, events, "Payment history retrieved")
}
