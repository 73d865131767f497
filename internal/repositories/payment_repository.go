package repositories

import (
	"context"
	"database/sql"
	"time"

	"rentora/internal/models"
)

type PaymentRepository struct {
	DB *sql.DB
}

func (r *PaymentRepository) CreatePayment(ctx context.Context, payment models.Payment) (models.Payment, error) {
	query := `
		INSERT INTO payments (subscription_id, payment_method, amount, status, created_at)
		VALUES (?, ?, ?, ?, ?)
	`
	payment.CreatedAt = time.Now()
	result, err := r.DB.ExecContext(ctx, query,
		payment.SubscriptionID, payment.PaymentMethod, payment.Amount, payment.Status, payment.CreatedAt)
	if err != nil {
		return models.Payment{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return models.Payment{}, err
	}
	payment.ID = int(id)
	return payment, nil
}

func (r *PaymentRepository) MarkPaymentFailed(ctx context.Context, paymentID int) error {
	result, err := r.DB.ExecContext(ctx,
		`UPDATE payments SET status = ? WHERE id = ?`, models.PaymentStatusFailed, paymentID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrPaymentNotFound
	}
	return nil
}

// SettleSuccess applies the success leg of a settlement as one transaction:
// the payment becomes successful, the subscription becomes active and the
// invoice is inserted. Either all three land or none do.
func (r *PaymentRepository) SettleSuccess(ctx context.Context, payment models.Payment, invoice models.Invoice) (models.Payment, models.Invoice, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return models.Payment{}, models.Invoice{}, err
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE payments SET status = ?, payment_date = ?, transaction_id = ? WHERE id = ?`,
		payment.Status, payment.PaymentDate, payment.TransactionID, payment.ID)
	if err != nil {
		tx.Rollback()
		return models.Payment{}, models.Invoice{}, err
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE subscriptions SET status = ?, updated_at = ? WHERE id = ?`,
		models.SubscriptionStatusActive, time.Now(), payment.SubscriptionID)
	if err != nil {
		tx.Rollback()
		return models.Payment{}, models.Invoice{}, err
	}

	result, err := tx.ExecContext(ctx, `
		INSERT INTO invoices (invoice_number, subscription_id, payment_id,
			rental_amount, security_deposit, gst_amount, total_amount,
			is_paid, paid_date, invoice_date)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		invoice.InvoiceNumber, invoice.SubscriptionID, invoice.PaymentID,
		invoice.RentalAmount, invoice.SecurityDeposit, invoice.GSTAmount, invoice.TotalAmount,
		invoice.IsPaid, invoice.PaidDate, invoice.InvoiceDate)
	if err != nil {
		tx.Rollback()
		return models.Payment{}, models.Invoice{}, err
	}
	invoiceID, err := result.LastInsertId()
	if err != nil {
		tx.Rollback()
		return models.Payment{}, models.Invoice{}, err
	}
	invoice.ID = int(invoiceID)

	if err := tx.Commit(); err != nil {
		return models.Payment{}, models.Invoice{}, err
	}
	return payment, invoice, nil
}

func (r *PaymentRepository) GetPaymentsByCustomerID(ctx context.Context, customerID int) ([]models.Payment, error) {
	query := `
		SELECT p.id, p.subscription_id, p.payment_method, p.amount, p.status,
		       p.transaction_id, p.payment_date, p.created_at
		FROM payments p
		JOIN subscriptions s ON s.id = p.subscription_id
		WHERE s.customer_id = ?
		ORDER BY p.created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []models.Payment
	for rows.Next() {
		payment, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, payment)
	}
	return payments, rows.Err()
}

func scanPayment(scanner interface{ Scan(dest ...any) error }) (models.Payment, error) {
	var payment models.Payment
	var txID sql.NullString
	var paymentDate sql.NullTime
	err := scanner.Scan(
		&payment.ID, &payment.SubscriptionID, &payment.PaymentMethod, &payment.Amount,
		&payment.Status, &txID, &paymentDate, &payment.CreatedAt)
	if err != nil {
		return models.Payment{}, err
	}
	if txID.Valid {
		payment.TransactionID = txID.String
	}
	if paymentDate.Valid {
		t := paymentDate.Time
		payment.PaymentDate = &t
	}
	return payment, nil
}
