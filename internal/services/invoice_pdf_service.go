package services

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"

	"rentora/internal/models"
)

// InvoicePDFService renders an invoice into a downloadable PDF. It is pure
// presentation over fields the settlement workflow already computed.
type InvoicePDFService struct {
	CompanyName string
}

func (s *InvoicePDFService) Render(invoice models.Invoice, sub models.Subscription) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Invoice %s", invoice.InvoiceNumber), false)
	pdf.AddPage()

	company := s.CompanyName
	if company == "" {
		company = "Rentora"
	}

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, company, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 7, "Rental Invoice", "", 1, "C", false, 0, "")
	pdf.Ln(6)

	status := "UNPAID"
	if invoice.IsPaid {
		status = "PAID"
	}

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(95, 6, fmt.Sprintf("Invoice No: %s", invoice.InvoiceNumber), "", 0, "L", false, 0, "")
	pdf.CellFormat(95, 6, fmt.Sprintf("Invoice Date: %s", invoice.InvoiceDate.Format("02 Jan 2006")), "", 1, "R", false, 0, "")
	pdf.CellFormat(95, 6, fmt.Sprintf("Payment Status: %s", status), "", 0, "L", false, 0, "")
	txn := invoice.TransactionID
	if txn == "" {
		txn = "-"
	}
	pdf.CellFormat(95, 6, fmt.Sprintf("Transaction ID: %s", txn), "", 1, "R", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 7, "Rental Details", "B", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("%s  (%s rental, %s - %s)",
		sub.ProductName, sub.DurationType,
		sub.StartDate.Format("02 Jan 2006"), sub.EndDate.Format("02 Jan 2006")),
		"", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Rental Amount: %s", FormatCurrency(invoice.RentalAmount)), "", 1, "L", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 7, "Amount Breakdown", "B", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	amountRow(pdf, "Rental Amount", invoice.RentalAmount)
	amountRow(pdf, "GST (18%)", invoice.GSTAmount)
	amountRow(pdf, "Security Deposit", invoice.SecurityDeposit)
	pdf.SetFont("Helvetica", "B", 11)
	amountRow(pdf, "Total", invoice.TotalAmount)
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "I", 9)
	pdf.CellFormat(0, 6, "Thank you for your business. This is a computer generated invoice.", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func amountRow(pdf *gofpdf.Fpdf, label string, amount decimal.Decimal) {
	pdf.CellFormat(140, 6, label, "", 0, "L", false, 0, "")
	pdf.CellFormat(50, 6, FormatCurrency(amount), "", 1, "R", false, 0, "")
}

// FormatCurrency renders an amount with two decimal places and thousands
// separators, e.g. 1234.5 -> "Rs. 1,234.50".
func FormatCurrency(amount decimal.Decimal) string {
	fixed := amount.StringFixed(2)

	negative := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	parts := strings.SplitN(fixed, ".", 2)
	whole := parts[0]

	var groups []string
	for len(whole) > 3 {
		groups = append([]string{whole[len(whole)-3:]}, groups...)
		whole = whole[:len(whole)-3]
	}
	groups = append([]string{whole}, groups...)

	out := strings.Join(groups, ",") + "." + parts[1]
	if negative {
		out = "-" + out
	}
	return "Rs. " + out
}
