package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	PaymentStatusPending = "pending"
	PaymentStatusSuccess = "success"
	PaymentStatusFailed  = "failed"
)

type Payment struct {
	ID             int             `json:"id"`
	SubscriptionID int             `json:"subscription_id"`
	PaymentMethod  string          `json:"payment_method"`
	Amount         decimal.Decimal `json:"amount"`
	Status         string          `json:"status"`
	TransactionID  string          `json:"transaction_id,omitempty"`
	PaymentDate    *time.Time      `json:"payment_date,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

type ProcessPaymentRequest struct {
	SubscriptionID int    `json:"subscription_id"`
	PaymentMethod  string `json:"payment_method"`
}

// SettlementResult is what one payment attempt produces. A declined attempt
// is a normal result with Success=false, not an error.
type SettlementResult struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Payment Payment  `json:"payment"`
	Invoice *Invoice `json:"invoice,omitempty"`
}
