package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"

	"rentora/internal/models"
)

func TestPaymentRepository_CreatePayment(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := PaymentRepository{DB: db}

	mock.ExpectExec("INSERT INTO payments").
		WithArgs(7, "card", sqlmock.AnyArg(), models.PaymentStatusPending, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(5, 1))

	payment, err := repo.CreatePayment(context.Background(), models.Payment{
		SubscriptionID: 7,
		PaymentMethod:  "card",
		Amount:         decimal.NewFromInt(1200),
		Status:         models.PaymentStatusPending,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payment.ID != 5 {
		t.Errorf("payment id = %d, want 5", payment.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPaymentRepository_MarkPaymentFailed_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := PaymentRepository{DB: db}

	mock.ExpectExec("UPDATE payments SET status").
		WithArgs(models.PaymentStatusFailed, 99).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.MarkPaymentFailed(context.Background(), 99)
	if !errors.Is(err, models.ErrPaymentNotFound) {
		t.Fatalf("expected ErrPaymentNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPaymentRepository_SettleSuccess(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := PaymentRepository{DB: db}
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE payments SET status").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE subscriptions SET status").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO invoices").
		WillReturnResult(sqlmock.NewResult(11, 1))
	mock.ExpectCommit()

	payment := models.Payment{
		ID:             5,
		SubscriptionID: 7,
		Status:         models.PaymentStatusSuccess,
		PaymentDate:    &now,
		TransactionID:  "txn_abc",
	}
	invoice := models.Invoice{
		InvoiceNumber:   "INV-20260314-AB12CD34",
		SubscriptionID:  7,
		PaymentID:       5,
		RentalAmount:    decimal.NewFromInt(1000),
		SecurityDeposit: decimal.NewFromInt(200),
		GSTAmount:       decimal.NewFromInt(180),
		TotalAmount:     decimal.NewFromInt(1380),
		IsPaid:          true,
		PaidDate:        &now,
		InvoiceDate:     now,
	}

	_, settled, err := repo.SettleSuccess(context.Background(), payment, invoice)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if settled.ID != 11 {
		t.Errorf("invoice id = %d, want 11", settled.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPaymentRepository_SettleSuccess_RollsBackOnInvoiceError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := PaymentRepository{DB: db}
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE payments SET status").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE subscriptions SET status").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO invoices").
		WillReturnError(errors.New("duplicate invoice number"))
	mock.ExpectRollback()

	payment := models.Payment{ID: 5, SubscriptionID: 7, Status: models.PaymentStatusSuccess, PaymentDate: &now}
	_, _, err = repo.SettleSuccess(context.Background(), payment, models.Invoice{InvoiceDate: now})
	if err == nil {
		t.Fatal("expected error from invoice insert")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPaymentRepository_GetPaymentsByCustomerID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := PaymentRepository{DB: db}
	now := time.Now()

	rows := sqlmock.NewRows([]string{"id", "subscription_id", "payment_method", "amount", "status", "transaction_id", "payment_date", "created_at"}).
		AddRow(5, 7, "card", "1200.00", models.PaymentStatusSuccess, "txn_abc", now, now).
		AddRow(4, 7, "card", "1200.00", models.PaymentStatusFailed, nil, nil, now)

	mock.ExpectQuery("SELECT (.+) FROM payments p").
		WithArgs(3).
		WillReturnRows(rows)

	payments, err := repo.GetPaymentsByCustomerID(context.Background(), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(payments) != 2 {
		t.Fatalf("expected 2 payments, got %d", len(payments))
	}
	if payments[0].TransactionID != "txn_abc" {
		t.Errorf("transaction id = %q, want txn_abc", payments[0].TransactionID)
	}
	if payments[1].PaymentDate != nil {
		t.Error("failed payment should have no payment date")
	}
	if !payments[0].Amount.Equal(decimal.RequireFromString("1200.00")) {
		t.Errorf("amount = %s, want 1200.00", payments[0].Amount)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
