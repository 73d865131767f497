package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"rentora/internal/models"
)

// GSTRate is the goods-and-services tax applied to the rental amount of
// every invoice.
var GSTRate = decimal.RequireFromString("0.18")

// SubscriptionStore is the slice of subscription persistence the settlement
// workflow needs: it reads the subscription and (indirectly, through the
// settlement transaction) writes its status.
type SubscriptionStore interface {
	GetSubscriptionByID(ctx context.Context, id int) (models.Subscription, error)
}

// PaymentStore persists payment attempts. SettleSuccess must apply the
// payment update, the subscription activation and the invoice insert as a
// single transaction.
type PaymentStore interface {
	CreatePayment(ctx context.Context, payment models.Payment) (models.Payment, error)
	MarkPaymentFailed(ctx context.Context, paymentID int) error
	SettleSuccess(ctx context.Context, payment models.Payment, invoice models.Invoice) (models.Payment, models.Invoice, error)
	GetPaymentsByCustomerID(ctx context.Context, customerID int) ([]models.Payment, error)
}

type InvoiceStore interface {
	GetInvoiceByID(ctx context.Context, id int) (models.Invoice, error)
	GetInvoicesByCustomerID(ctx context.Context, customerID int) ([]models.Invoice, error)
}

type CustomerStore interface {
	GetCustomerByUserID(ctx context.Context, userID int) (models.Customer, error)
}

// SettlementNotifier is told about successful settlements after they commit.
// Delivery failures must not affect the settlement result.
type SettlementNotifier interface {
	NotifyPaymentSuccess(ctx context.Context, userID int, invoice models.Invoice)
}

type PaymentService struct {
	SubscriptionRepo SubscriptionStore
	PaymentRepo      PaymentStore
	InvoiceRepo      InvoiceStore
	CustomerRepo     CustomerStore
	Gateway          PaymentGateway
	Notifier         SettlementNotifier
}

// ProcessPayment runs one settlement attempt against a subscription. A
// declined authorization is a normal result with Success=false; only missing
// subscriptions and infrastructure failures surface as errors.
func (s *PaymentService) ProcessPayment(ctx context.Context, userID, subscriptionID int, paymentMethod string) (models.SettlementResult, error) {
	sub, err := s.SubscriptionRepo.GetSubscriptionByID(ctx, subscriptionID)
	if err != nil {
		return models.SettlementResult{}, err
	}

	payment := models.Payment{
		SubscriptionID: sub.ID,
		PaymentMethod:  paymentMethod,
		Amount:         sub.TotalAmount,
		Status:         models.PaymentStatusPending,
	}
	payment, err = s.PaymentRepo.CreatePayment(ctx, payment)
	if err != nil {
		return models.SettlementResult{}, err
	}

	transactionID, approved, err := s.Gateway.Authorize(ctx, payment)
	if err != nil {
		return models.SettlementResult{}, err
	}

	if !approved {
		if err := s.PaymentRepo.MarkPaymentFailed(ctx, payment.ID); err != nil {
			return models.SettlementResult{}, err
		}
		payment.Status = models.PaymentStatusFailed
		return models.SettlementResult{
			Success: false,
			Message: "Payment failed. Please try again.",
			Payment: payment,
		}, nil
	}

	now := time.Now()
	payment.Status = models.PaymentStatusSuccess
	payment.PaymentDate = &now
	payment.TransactionID = transactionID

	deposit := sub.DepositOrZero()
	rental := sub.TotalAmount.Sub(deposit)
	gst := rental.Mul(GSTRate).Round(2)
	invoice := models.Invoice{
		TransactionID:   transactionID,
		InvoiceNumber:   newInvoiceNumber(now),
		SubscriptionID:  sub.ID,
		PaymentID:       payment.ID,
		RentalAmount:    rental,
		SecurityDeposit: deposit,
		GSTAmount:       gst,
		TotalAmount:     rental.Add(gst).Add(deposit),
		IsPaid:          true,
		PaidDate:        &now,
		InvoiceDate:     now,
	}

	payment, invoice, err = s.PaymentRepo.SettleSuccess(ctx, payment, invoice)
	if err != nil {
		return models.SettlementResult{}, err
	}

	if s.Notifier != nil {
		s.Notifier.NotifyPaymentSuccess(ctx, userID, invoice)
	}

	return models.SettlementResult{
		Success: true,
		Message: "Payment successful!",
		Payment: payment,
		Invoice: &invoice,
	}, nil
}

// GetPaymentHistory returns the payments across all of the user's
// subscriptions. A user without a customer profile simply has no history.
func (s *PaymentService) GetPaymentHistory(ctx context.Context, userID int) ([]models.Payment, error) {
	customer, err := s.CustomerRepo.GetCustomerByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, models.ErrCustomerNotFound) {
			return []models.Payment{}, nil
		}
		return nil, err
	}
	payments, err := s.PaymentRepo.GetPaymentsByCustomerID(ctx, customer.ID)
	if err != nil {
		return nil, err
	}
	if payments == nil {
		payments = []models.Payment{}
	}
	return payments, nil
}

func (s *PaymentService) GetInvoices(ctx context.Context, userID int) ([]models.Invoice, error) {
	customer, err := s.CustomerRepo.GetCustomerByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, models.ErrCustomerNotFound) {
			return []models.Invoice{}, nil
		}
		return nil, err
	}
	invoices, err := s.InvoiceRepo.GetInvoicesByCustomerID(ctx, customer.ID)
	if err != nil {
		return nil, err
	}
	if invoices == nil {
		invoices = []models.Invoice{}
	}
	return invoices, nil
}

func (s *PaymentService) GetInvoice(ctx context.Context, invoiceID int) (models.Invoice, error) {
	return s.InvoiceRepo.GetInvoiceByID(ctx, invoiceID)
}

// GetSubscription exposes the subscription read for the PDF handler, which
// needs product and rental-period details alongside the invoice.
func (s *PaymentService) GetSubscription(ctx context.Context, subscriptionID int) (models.Subscription, error) {
	return s.SubscriptionRepo.GetSubscriptionByID(ctx, subscriptionID)
}

func newInvoiceNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("INV-%s-%s", now.Format("20060102"), suffix)
}
