package repositories

import (
	"context"
	"database/sql"

	"rentora/internal/models"
)

type InvoiceRepository struct {
	DB *sql.DB
}

const invoiceColumns = `
	i.id, i.invoice_number, i.subscription_id, i.payment_id,
	i.rental_amount, i.security_deposit, i.gst_amount, i.total_amount,
	i.is_paid, i.paid_date, i.invoice_date, p.transaction_id`

func (r *InvoiceRepository) GetInvoiceByID(ctx context.Context, id int) (models.Invoice, error) {
	query := `SELECT` + invoiceColumns + ` FROM invoices i JOIN payments p ON p.id = i.payment_id WHERE i.id = ?`
	row := r.DB.QueryRowContext(ctx, query, id)
	invoice, err := scanInvoice(row)
	if err == sql.ErrNoRows {
		return models.Invoice{}, models.ErrInvoiceNotFound
	}
	return invoice, err
}

func (r *InvoiceRepository) GetInvoicesByCustomerID(ctx context.Context, customerID int) ([]models.Invoice, error) {
	query := `
		SELECT` + invoiceColumns + `
		FROM invoices i
		JOIN payments p ON p.id = i.payment_id
		JOIN subscriptions s ON s.id = i.subscription_id
		WHERE s.customer_id = ?
		ORDER BY i.invoice_date DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invoices []models.Invoice
	for rows.Next() {
		invoice, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, invoice)
	}
	return invoices, rows.Err()
}

func scanInvoice(scanner interface{ Scan(dest ...any) error }) (models.Invoice, error) {
	var invoice models.Invoice
	var paidDate sql.NullTime
	var txID sql.NullString
	err := scanner.Scan(
		&invoice.ID, &invoice.InvoiceNumber, &invoice.SubscriptionID, &invoice.PaymentID,
		&invoice.RentalAmount, &invoice.SecurityDeposit, &invoice.GSTAmount, &invoice.TotalAmount,
		&invoice.IsPaid, &paidDate, &invoice.InvoiceDate, &txID)
	if err != nil {
		return models.Invoice{}, err
	}
	if paidDate.Valid {
		t := paidDate.Time
		invoice.PaidDate = &t
	}
	if txID.Valid {
		invoice.TransactionID = txID.String
	}
	return invoice, nil
}
