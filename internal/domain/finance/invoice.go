package finance

import (
	"github.com/google/uuid"
	"github.com/vyaparhub/bahikhata-api/internal/domain/entity"
	"github.com/vyaparhub/bahikhata-api/pkg/apperror"
	"github.com/vyaparhub/bahikhata-api/pkg/money"
)

// DefaultGSTRate applies when a product carries no explicit rate.
const DefaultGSTRate = 18.0

// LineTotals holds the three derived fields of an invoice line.
type LineTotals struct {
	Amount    float64 `json:"amount"`
	GSTAmount float64 `json:"gst_amount"`
	LineTotal float64 `json:"line_total"`
}

// InvoiceTotals holds the invoice-level sums of the per-line fields.
type InvoiceTotals struct {
	Subtotal   float64 `json:"subtotal"`
	TotalGST   float64 `json:"total_gst"`
	TotalGrand float64 `json:"total_grand"`
}

// ComputeLine derives the monetary fields of a single line. Each field is
// rounded at the line level, so invoice totals built from these values are
// reproducible from the stored item list alone.
func ComputeLine(qty, price, gstRate float64) LineTotals {
	amount := money.Round2(qty * price)
	gstAmount := money.Round2(amount * gstRate / 100)
	return LineTotals{
		Amount:    amount,
		GSTAmount: gstAmount,
		LineTotal: money.Round2(amount + gstAmount),
	}
}

// ComputeInvoiceTotals sums the per-line derived fields over the item list.
// Lines are re-derived from qty/price/rate rather than trusting stored
// fields, so recomputation always agrees with itself; an empty list yields
// all-zero totals.
func ComputeInvoiceTotals(items []entity.InvoiceItem) InvoiceTotals {
	var subtotal, totalGST, totalGrand float64
	for _, it := range items {
		line := ComputeLine(it.Qty, it.Price, it.GSTRate)
		subtotal += line.Amount
		totalGST += line.GSTAmount
		totalGrand += line.LineTotal
	}
	return InvoiceTotals{
		Subtotal:   money.Round2(subtotal),
		TotalGST:   money.Round2(totalGST),
		TotalGrand: money.Round2(totalGrand),
	}
}

// ValidateLine rejects a line before it can reach the totals engine: a line
// needs a selected product, a positive quantity and a non-negative price and
// GST rate. Returns a field-level validation error, never a partial line.
func ValidateLine(productID uuid.UUID, qty, price, gstRate float64) error {
	var fields []apperror.FieldError
	if productID == uuid.Nil {
		fields = append(fields, apperror.FieldError{Field: "product_id", Message: "a product must be selected"})
	}
	if qty <= 0 {
		fields = append(fields, apperror.FieldError{Field: "qty", Message: "quantity must be greater than zero"})
	}
	if price < 0 {
		fields = append(fields, apperror.FieldError{Field: "price", Message: "price cannot be negative"})
	}
	if gstRate < 0 {
		fields = append(fields, apperror.FieldError{Field: "gst_rate", Message: "GST rate cannot be negative"})
	}
	if len(fields) > 0 {
		return apperror.NewValidationError(fields)
	}
	return nil
}

// LineDefaults returns the price and GST rate a line resets to when its
// product reference changes, falling back to DefaultGSTRate when the product
// has none.
func LineDefaults(p *entity.Product) (price, gstRate float64) {
	price = p.UnitPrice
	gstRate = p.GSTRate
	if gstRate == 0 {
		gstRate = DefaultGSTRate
	}
	return price, gstRate
}
