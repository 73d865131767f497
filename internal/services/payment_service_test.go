package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"rentora/internal/models"
)

type fakeSubscriptionStore struct {
	sub models.Subscription
	err error
}

func (f *fakeSubscriptionStore) GetSubscriptionByID(ctx context.Context, id int) (models.Subscription, error) {
	if f.err != nil {
		return models.Subscription{}, f.err
	}
	return f.sub, nil
}

type fakePaymentStore struct {
	created  []models.Payment
	failed   []int
	settled  []models.Invoice
	payments []models.Payment

	settleErr error
}

func (f *fakePaymentStore) CreatePayment(ctx context.Context, payment models.Payment) (models.Payment, error) {
	payment.ID = len(f.created) + 1
	f.created = append(f.created, payment)
	return payment, nil
}

func (f *fakePaymentStore) MarkPaymentFailed(ctx context.Context, paymentID int) error {
	f.failed = append(f.failed, paymentID)
	return nil
}

func (f *fakePaymentStore) SettleSuccess(ctx context.Context, payment models.Payment, invoice models.Invoice) (models.Payment, models.Invoice, error) {
	if f.settleErr != nil {
		return models.Payment{}, models.Invoice{}, f.settleErr
	}
	invoice.ID = len(f.settled) + 1
	f.settled = append(f.settled, invoice)
	return payment, invoice, nil
}

func (f *fakePaymentStore) GetPaymentsByCustomerID(ctx context.Context, customerID int) ([]models.Payment, error) {
	return f.payments, nil
}

type fakeInvoiceStore struct {
	invoice  models.Invoice
	invoices []models.Invoice
	err      error
}

func (f *fakeInvoiceStore) GetInvoiceByID(ctx context.Context, id int) (models.Invoice, error) {
	if f.err != nil {
		return models.Invoice{}, f.err
	}
	return f.invoice, nil
}

func (f *fakeInvoiceStore) GetInvoicesByCustomerID(ctx context.Context, customerID int) ([]models.Invoice, error) {
	return f.invoices, f.err
}

type fakeCustomerStore struct {
	customer models.Customer
	err      error
}

func (f *fakeCustomerStore) GetCustomerByUserID(ctx context.Context, userID int) (models.Customer, error) {
	if f.err != nil {
		return models.Customer{}, f.err
	}
	return f.customer, nil
}

type stubGateway struct {
	transactionID string
	approved      bool
	err           error
}

func (g *stubGateway) Authorize(ctx context.Context, payment models.Payment) (string, bool, error) {
	return g.transactionID, g.approved, g.err
}

type fakeNotifier struct {
	userIDs  []int
	invoices []models.Invoice
}

func (f *fakeNotifier) NotifyPaymentSuccess(ctx context.Context, userID int, invoice models.Invoice) {
	f.userIDs = append(f.userIDs, userID)
	f.invoices = append(f.invoices, invoice)
}

func newTestSubscription() models.Subscription {
	deposit := decimal.NewFromInt(200)
	return models.Subscription{
		ID:              7,
		CustomerID:      3,
		ProductID:       5,
		DurationType:    models.DurationMonthly,
		TotalAmount:     decimal.NewFromInt(1200),
		SecurityDeposit: &deposit,
		Status:          models.SubscriptionStatusPending,
	}
}

func TestProcessPayment_SuccessCreatesInvoice(t *testing.T) {
	payments := &fakePaymentStore{}
	notifier := &fakeNotifier{}
	svc := &PaymentService{
		SubscriptionRepo: &fakeSubscriptionStore{sub: newTestSubscription()},
		PaymentRepo:      payments,
		CustomerRepo:     &fakeCustomerStore{},
		Gateway:          &stubGateway{transactionID: "txn_abc", approved: true},
		Notifier:         notifier,
	}

	result, err := svc.ProcessPayment(context.Background(), 42, 7, "card")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !result.Success {
		t.Fatalf("expected success, got %+v", result)
	}
	if result.Invoice == nil {
		t.Fatal("expected invoice on successful settlement")
	}
	if len(payments.settled) != 1 {
		t.Fatalf("expected exactly one settled invoice, got %d", len(payments.settled))
	}
	if len(payments.failed) != 0 {
		t.Fatalf("expected no failed payments, got %d", len(payments.failed))
	}

	inv := *result.Invoice
	if got, want := inv.RentalAmount, decimal.NewFromInt(1000); !got.Equal(want) {
		t.Errorf("rental amount = %s, want %s", got, want)
	}
	if got, want := inv.GSTAmount, decimal.NewFromInt(180); !got.Equal(want) {
		t.Errorf("gst amount = %s, want %s", got, want)
	}
	if got, want := inv.SecurityDeposit, decimal.NewFromInt(200); !got.Equal(want) {
		t.Errorf("security deposit = %s, want %s", got, want)
	}
	if got, want := inv.TotalAmount, decimal.NewFromInt(1380); !got.Equal(want) {
		t.Errorf("total amount = %s, want %s", got, want)
	}
	if !inv.IsPaid {
		t.Error("invoice should be marked paid")
	}
	if inv.PaidDate == nil {
		t.Error("paid date should be set")
	}
	if !strings.HasPrefix(inv.InvoiceNumber, "INV-") {
		t.Errorf("invoice number %q should have INV- prefix", inv.InvoiceNumber)
	}
	if inv.TransactionID != "txn_abc" {
		t.Errorf("transaction id = %q, want txn_abc", inv.TransactionID)
	}

	if result.Payment.Status != models.PaymentStatusSuccess {
		t.Errorf("payment status = %q, want %q", result.Payment.Status, models.PaymentStatusSuccess)
	}
	if result.Payment.PaymentDate == nil {
		t.Error("payment date should be set")
	}

	if len(notifier.userIDs) != 1 || notifier.userIDs[0] != 42 {
		t.Errorf("notifier user ids = %v, want [42]", notifier.userIDs)
	}
}

func TestProcessPayment_SuccessWithoutDeposit(t *testing.T) {
	sub := newTestSubscription()
	sub.SecurityDeposit = nil
	sub.TotalAmount = decimal.NewFromInt(1000)

	svc := &PaymentService{
		SubscriptionRepo: &fakeSubscriptionStore{sub: sub},
		PaymentRepo:      &fakePaymentStore{},
		CustomerRepo:     &fakeCustomerStore{},
		Gateway:          &stubGateway{transactionID: "txn_x", approved: true},
	}

	result, err := svc.ProcessPayment(context.Background(), 1, 7, "upi")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	inv := *result.Invoice
	if got, want := inv.RentalAmount, decimal.NewFromInt(1000); !got.Equal(want) {
		t.Errorf("rental amount = %s, want %s", got, want)
	}
	if !inv.SecurityDeposit.IsZero() {
		t.Errorf("security deposit = %s, want 0", inv.SecurityDeposit)
	}
	if got, want := inv.TotalAmount, decimal.NewFromInt(1180); !got.Equal(want) {
		t.Errorf("total amount = %s, want %s", got, want)
	}
}

func TestProcessPayment_DeclinedMarksFailed(t *testing.T) {
	payments := &fakePaymentStore{}
	notifier := &fakeNotifier{}
	svc := &PaymentService{
		SubscriptionRepo: &fakeSubscriptionStore{sub: newTestSubscription()},
		PaymentRepo:      payments,
		CustomerRepo:     &fakeCustomerStore{},
		Gateway:          &stubGateway{approved: false},
		Notifier:         notifier,
	}

	result, err := svc.ProcessPayment(context.Background(), 42, 7, "card")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Success {
		t.Fatal("declined payment must not report success")
	}
	if result.Invoice != nil {
		t.Fatal("declined payment must not create an invoice")
	}
	if result.Payment.Status != models.PaymentStatusFailed {
		t.Errorf("payment status = %q, want %q", result.Payment.Status, models.PaymentStatusFailed)
	}
	if len(payments.failed) != 1 {
		t.Fatalf("expected one failed payment, got %d", len(payments.failed))
	}
	if len(payments.settled) != 0 {
		t.Fatalf("expected no settlements, got %d", len(payments.settled))
	}
	if len(notifier.invoices) != 0 {
		t.Error("declined payment must not notify")
	}
}

func TestProcessPayment_SubscriptionNotFound(t *testing.T) {
	payments := &fakePaymentStore{}
	svc := &PaymentService{
		SubscriptionRepo: &fakeSubscriptionStore{err: models.ErrSubscriptionNotFound},
		PaymentRepo:      payments,
		CustomerRepo:     &fakeCustomerStore{},
		Gateway:          &stubGateway{approved: true},
	}

	_, err := svc.ProcessPayment(context.Background(), 42, 99, "card")
	if !errors.Is(err, models.ErrSubscriptionNotFound) {
		t.Fatalf("expected ErrSubscriptionNotFound, got %v", err)
	}
	if len(payments.created) != 0 {
		t.Errorf("no payment rows should be created, got %d", len(payments.created))
	}
}

func TestGetPaymentHistory_NoCustomerProfile(t *testing.T) {
	svc := &PaymentService{
		PaymentRepo:  &fakePaymentStore{},
		CustomerRepo: &fakeCustomerStore{err: models.ErrCustomerNotFound},
	}

	payments, err := svc.GetPaymentHistory(context.Background(), 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payments == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(payments) != 0 {
		t.Fatalf("expected no payments, got %d", len(payments))
	}
}

func TestGetInvoices_NoCustomerProfile(t *testing.T) {
	svc := &PaymentService{
		InvoiceRepo:  &fakeInvoiceStore{},
		CustomerRepo: &fakeCustomerStore{err: models.ErrCustomerNotFound},
	}

	invoices, err := svc.GetInvoices(context.Background(), 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if invoices == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(invoices) != 0 {
		t.Fatalf("expected no invoices, got %d", len(invoices))
	}
}
