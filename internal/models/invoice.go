package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice is created only when a payment settles successfully and is
// immutable afterwards. Amounts are fixed at creation time:
// rental = subscription total minus deposit, GST = 18% of rental,
// total = rental + GST + deposit.
type Invoice struct {
	ID              int             `json:"id"`
	InvoiceNumber   string          `json:"invoice_number"`
	SubscriptionID  int             `json:"subscription_id"`
	PaymentID       int             `json:"payment_id"`
	RentalAmount    decimal.Decimal `json:"rental_amount"`
	SecurityDeposit decimal.Decimal `json:"security_deposit"`
	GSTAmount       decimal.Decimal `json:"gst_amount"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	IsPaid          bool            `json:"is_paid"`
	PaidDate        *time.Time      `json:"paid_date,omitempty"`
	InvoiceDate     time.Time       `json:"invoice_date"`
	// TransactionID is read through the payment the invoice settles; it is
	// carried here for serialization and the PDF header.
	TransactionID string `json:"transaction_id,omitempty"`
}
