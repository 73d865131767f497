package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	SubscriptionStatusPending   = "pending"
	SubscriptionStatusActive    = "active"
	SubscriptionStatusCancelled = "cancelled"
	SubscriptionStatusCompleted = "completed"
	SubscriptionStatusExpired   = "expired"
)

const (
	DurationDaily   = "daily"
	DurationWeekly  = "weekly"
	DurationMonthly = "monthly"
)

type Subscription struct {
	ID              int              `json:"id"`
	CustomerID      int              `json:"customer_id"`
	ProductID       int              `json:"product_id"`
	ProductName     string           `json:"product_name,omitempty"`
	DurationType    string           `json:"duration_type"`
	StartDate       time.Time        `json:"start_date"`
	EndDate         time.Time        `json:"end_date"`
	TotalAmount     decimal.Decimal  `json:"total_amount"`
	SecurityDeposit *decimal.Decimal `json:"security_deposit,omitempty"`
	Status          string           `json:"status"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       *time.Time       `json:"updated_at,omitempty"`
}

// DepositOrZero returns the security deposit, treating an absent value as 0.
func (s Subscription) DepositOrZero() decimal.Decimal {
	if s.SecurityDeposit == nil {
		return decimal.Zero
	}
	return *s.SecurityDeposit
}

type CreateSubscriptionRequest struct {
	ProductID    int    `json:"product_id"`
	DurationType string `json:"duration_type"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
}
