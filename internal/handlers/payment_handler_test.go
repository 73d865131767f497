package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"rentora/internal/models"
	"rentora/internal/services"
)

type stubSubscriptionStore struct {
	sub models.Subscription
	err error
}

func (s *stubSubscriptionStore) GetSubscriptionByID(ctx context.Context, id int) (models.Subscription, error) {
	if s.err != nil {
		return models.Subscription{}, s.err
	}
	return s.sub, nil
}

type stubPaymentStore struct{}

func (s *stubPaymentStore) CreatePayment(ctx context.Context, payment models.Payment) (models.Payment, error) {
	payment.ID = 1
	return payment, nil
}

func (s *stubPaymentStore) MarkPaymentFailed(ctx context.Context, paymentID int) error {
	return nil
}

func (s *stubPaymentStore) SettleSuccess(ctx context.Context, payment models.Payment, invoice models.Invoice) (models.Payment, models.Invoice, error) {
	invoice.ID = 1
	return payment, invoice, nil
}

func (s *stubPaymentStore) GetPaymentsByCustomerID(ctx context.Context, customerID int) ([]models.Payment, error) {
	return nil, nil
}

type stubInvoiceStore struct {
	invoice models.Invoice
	err     error
}

func (s *stubInvoiceStore) GetInvoiceByID(ctx context.Context, id int) (models.Invoice, error) {
	if s.err != nil {
		return models.Invoice{}, s.err
	}
	return s.invoice, nil
}

func (s *stubInvoiceStore) GetInvoicesByCustomerID(ctx context.Context, customerID int) ([]models.Invoice, error) {
	return nil, nil
}

type stubCustomerStore struct{}

func (s *stubCustomerStore) GetCustomerByUserID(ctx context.Context, userID int) (models.Customer, error) {
	return models.Customer{ID: 3, UserID: userID}, nil
}

type stubHandlerGateway struct {
	approved bool
}

func (g *stubHandlerGateway) Authorize(ctx context.Context, payment models.Payment) (string, bool, error) {
	if !g.approved {
		return "", false, nil
	}
	return "txn_test", true, nil
}

func newPaymentHandler(subStore services.SubscriptionStore, invStore services.InvoiceStore, approved bool) *PaymentHandler {
	return &PaymentHandler{
		Service: &services.PaymentService{
			SubscriptionRepo: subStore,
			PaymentRepo:      &stubPaymentStore{},
			InvoiceRepo:      invStore,
			CustomerRepo:     &stubCustomerStore{},
			Gateway:          &stubHandlerGateway{approved: approved},
		},
		PDFService: &services.InvoicePDFService{CompanyName: "Rentora"},
	}
}

func authenticatedRequest(method, url, body string) *http.Request {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, url, nil)
	} else {
		r = httptest.NewRequest(method, url, strings.NewReader(body))
	}
	ctx := context.WithValue(r.Context(), UserIDContextKey, 42)
	return r.WithContext(ctx)
}

func TestProcessPayment_Unauthorized(t *testing.T) {
	h := newPaymentHandler(&stubSubscriptionStore{}, &stubInvoiceStore{}, true)

	r := httptest.NewRequest(http.MethodPost, "/payments/process", strings.NewReader(`{"subscription_id":7,"payment_method":"card"}`))
	w := httptest.NewRecorder()
	h.ProcessPayment(w, r)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestProcessPayment_MissingFields(t *testing.T) {
	h := newPaymentHandler(&stubSubscriptionStore{}, &stubInvoiceStore{}, true)

	cases := []struct {
		name string
		body string
	}{
		{"invalid json", "{"},
		{"missing subscription id", `{"payment_method":"card"}`},
		{"missing payment method", `{"subscription_id":7}`},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.ProcessPayment(w, authenticatedRequest(http.MethodPost, "/payments/process", c.body))
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
			}
		})
	}
}

func TestProcessPayment_SubscriptionNotFound(t *testing.T) {
	h := newPaymentHandler(&stubSubscriptionStore{err: models.ErrSubscriptionNotFound}, &stubInvoiceStore{}, true)

	w := httptest.NewRecorder()
	h.ProcessPayment(w, authenticatedRequest(http.MethodPost, "/payments/process", `{"subscription_id":99,"payment_method":"card"}`))

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestProcessPayment_DeclinedReturns200(t *testing.T) {
	deposit := decimal.NewFromInt(200)
	sub := models.Subscription{ID: 7, TotalAmount: decimal.NewFromInt(1200), SecurityDeposit: &deposit}
	h := newPaymentHandler(&stubSubscriptionStore{sub: sub}, &stubInvoiceStore{}, false)

	w := httptest.NewRecorder()
	h.ProcessPayment(w, authenticatedRequest(http.MethodPost, "/payments/process", `{"subscription_id":7,"payment_method":"card"}`))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var result models.SettlementResult
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Success {
		t.Error("declined payment must report success=false")
	}
	if result.Invoice != nil {
		t.Error("declined payment must not include an invoice")
	}
}

func TestProcessPayment_Approved(t *testing.T) {
	deposit := decimal.NewFromInt(200)
	sub := models.Subscription{ID: 7, TotalAmount: decimal.NewFromInt(1200), SecurityDeposit: &deposit}
	h := newPaymentHandler(&stubSubscriptionStore{sub: sub}, &stubInvoiceStore{}, true)

	w := httptest.NewRecorder()
	h.ProcessPayment(w, authenticatedRequest(http.MethodPost, "/payments/process", `{"subscription_id":7,"payment_method":"card"}`))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var result models.SettlementResult
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Success {
		t.Fatalf("expected success, got %+v", result)
	}
	if result.Invoice == nil {
		t.Fatal("expected invoice in response")
	}
}

func TestDownloadInvoicePDF_NotFound(t *testing.T) {
	h := newPaymentHandler(&stubSubscriptionStore{}, &stubInvoiceStore{err: models.ErrInvoiceNotFound}, true)

	w := httptest.NewRecorder()
	h.DownloadInvoicePDF(w, authenticatedRequest(http.MethodGet, "/payments/invoices/99/pdf?:id=99", ""))

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestDownloadInvoicePDF_StreamsPDF(t *testing.T) {
	invoice := models.Invoice{
		ID:              5,
		InvoiceNumber:   "INV-20260314-AB12CD34",
		SubscriptionID:  7,
		RentalAmount:    decimal.NewFromInt(1000),
		SecurityDeposit: decimal.NewFromInt(200),
		GSTAmount:       decimal.NewFromInt(180),
		TotalAmount:     decimal.NewFromInt(1380),
		IsPaid:          true,
	}
	sub := models.Subscription{ID: 7, ProductName: "Canon EOS R6", DurationType: models.DurationMonthly}
	h := newPaymentHandler(&stubSubscriptionStore{sub: sub}, &stubInvoiceStore{invoice: invoice}, true)

	w := httptest.NewRecorder()
	h.DownloadInvoicePDF(w, authenticatedRequest(http.MethodGet, "/payments/invoices/5/pdf?:id=5", ""))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d, body %s", w.Code, http.StatusOK, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("content type = %q, want application/pdf", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "invoice_INV-20260314-AB12CD34.pdf") {
		t.Errorf("content disposition = %q", cd)
	}
	if !strings.HasPrefix(w.Body.String(), "%PDF") {
		t.Error("body does not look like a PDF")
	}
}
