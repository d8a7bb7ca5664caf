package bkash

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// Gateway simulates the mobile-wallet API surface. It mints wallet
// references with the upstream's shapes but performs no network calls,
// so no signature verification exists on this path. A real integration
// must add transport and verification before going live.
type Gateway struct {
	appKey string
	now    func() time.Time
}

func NewGateway(appKey string) *Gateway {
	return &Gateway{appKey: appKey, now: time.Now}
}

// Payment mirrors the wallet's payment object.
type Payment struct {
	PaymentID             string  `json:"payment_id"`
	TrxID                 string  `json:"trx_id,omitempty"`
	Status                string  `json:"status"`
	Amount                float64 `json:"amount"`
	Currency              string  `json:"currency"`
	MerchantInvoiceNumber string  `json:"merchant_invoice_number"`
	CreatedAt             string  `json:"created_at"`
}

// Wallet payment states.
const (
	StatusInitiated = "Initiated"
	StatusCompleted = "Completed"
	StatusRefunded  = "Refunded"
)

// CreatePayment mints a new wallet payment reference.
func (g *Gateway) CreatePayment(amount float64, currency, invoice string) *Payment {
	return &Payment{
		PaymentID:             "TR" + randomDigits(18),
		Status:                StatusInitiated,
		Amount:                amount,
		Currency:              currency,
		MerchantInvoiceNumber: invoice,
		CreatedAt:             g.now().Format(time.RFC3339),
	}
}

// ExecutePayment finalizes a created payment and assigns a transaction id.
func (g *Gateway) ExecutePayment(paymentID string) *Payment {
	return &Payment{
		PaymentID: paymentID,
		TrxID:     "TXN" + randomDigits(10),
		Status:    StatusCompleted,
		CreatedAt: g.now().Format(time.RFC3339),
	}
}

// RefundTransactionID mints a reference for a refund operation.
func (g *Gateway) RefundTransactionID() string {
	return "REF" + randomDigits(10)
}

func randomDigits(n int) string {
	out := make([]byte, n)
	for i := range out {
		d, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			out[i] = '0'
			continue
		}
		out[i] = byte('0' + d.Int64())
	}
	return string(out)
}

// Invoice builds the merchant invoice number for a submission.
func Invoice(uniqueID string) string {
	return fmt.Sprintf("INV-%s", uniqueID)
}
