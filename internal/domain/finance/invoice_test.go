package finance

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vyaparhub/bahikhata-api/internal/domain/entity"
	"github.com/vyaparhub/bahikhata-api/pkg/apperror"
)

func item(qty, price, gstRate float64) entity.InvoiceItem {
	return entity.InvoiceItem{
		ID:        uuid.New(),
		ProductID: uuid.New(),
		Qty:       qty,
		Price:     price,
		GSTRate:   gstRate,
	}
}

func TestComputeLine(t *testing.T) {
	t.Run("round figures", func(t *testing.T) {
		line := ComputeLine(1, 1000, 18)
		assert.Equal(t, 1000.0, line.Amount)
		assert.Equal(t, 180.0, line.GSTAmount)
		assert.Equal(t, 1180.0, line.LineTotal)
	})

	t.Run("fractional price carries to a whole amount", func(t *testing.T) {
		line := ComputeLine(3, 33.333, 18)
		assert.Equal(t, 100.0, line.Amount)
		assert.Equal(t, 18.0, line.GSTAmount)
		assert.Equal(t, 118.0, line.LineTotal)
	})

	t.Run("fractional price rounds half away from zero", func(t *testing.T) {
		line := ComputeLine(1, 10.555, 18)
		assert.Equal(t, 10.56, line.Amount)
		assert.Equal(t, 1.90, line.GSTAmount)
		assert.Equal(t, 12.46, line.LineTotal)
	})

	t.Run("zero GST rate", func(t *testing.T) {
		line := ComputeLine(2, 50, 0)
		assert.Equal(t, 100.0, line.Amount)
		assert.Equal(t, 0.0, line.GSTAmount)
		assert.Equal(t, 100.0, line.LineTotal)
	})
}

func TestComputeInvoiceTotals(t *testing.T) {
	t.Run("empty list yields all zeros", func(t *testing.T) {
		totals := ComputeInvoiceTotals(nil)
		assert.Equal(t, InvoiceTotals{}, totals)
	})

	t.Run("single line round trip", func(t *testing.T) {
		totals := ComputeInvoiceTotals([]entity.InvoiceItem{item(1, 1000, 18)})
		assert.Equal(t, 1000.0, totals.Subtotal)
		assert.Equal(t, 180.0, totals.TotalGST)
		assert.Equal(t, 1180.0, totals.TotalGrand)
	})

	t.Run("lines round before summing", func(t *testing.T) {
		// Each line rounds 10.004 down to 10.00; summing first would give 20.01.
		totals := ComputeInvoiceTotals([]entity.InvoiceItem{
			item(1, 10.004, 0),
			item(1, 10.004, 0),
		})
		assert.Equal(t, 20.0, totals.Subtotal)
		assert.Equal(t, 20.0, totals.TotalGrand)
	})

	t.Run("mixed rates accumulate per line", func(t *testing.T) {
		totals := ComputeInvoiceTotals([]entity.InvoiceItem{
			item(2, 250, 18), // 500.00 + 90.00
			item(1, 99.99, 5), // 99.99 + 5.00
		})
		assert.Equal(t, 599.99, totals.Subtotal)
		assert.Equal(t, 95.0, totals.TotalGST)
		assert.Equal(t, 694.99, totals.TotalGrand)
	})

	t.Run("recomputation is idempotent and matches stored totals", func(t *testing.T) {
		items := []entity.InvoiceItem{
			item(3, 33.333, 18),
			item(1, 10.555, 18),
		}
		first := ComputeInvoiceTotals(items)
		second := ComputeInvoiceTotals(items)
		assert.Equal(t, first, second)

		// An invoice persisted by the same engine must round-trip exactly.
		inv := entity.Invoice{
			Items:      items,
			Subtotal:   first.Subtotal,
			TotalGST:   first.TotalGST,
			TotalGrand: first.TotalGrand,
		}
		again := ComputeInvoiceTotals(inv.Items)
		assert.Equal(t, inv.Subtotal, again.Subtotal)
		assert.Equal(t, inv.TotalGST, again.TotalGST)
		assert.Equal(t, inv.TotalGrand, again.TotalGrand)
	})
}

func TestValidateLine(t *testing.T) {
	productID := uuid.New()

	t.Run("valid line passes", func(t *testing.T) {
		assert.NoError(t, ValidateLine(productID, 1, 100, 18))
		assert.NoError(t, ValidateLine(productID, 0.5, 0, 0))
	})

	tests := []struct {
		name      string
		productID uuid.UUID
		qty       float64
		price     float64
		gstRate   float64
		field     string
	}{
		{"missing product", uuid.Nil, 1, 100, 18, "product_id"},
		{"zero quantity", productID, 0, 100, 18, "qty"},
		{"negative quantity", productID, -2, 100, 18, "qty"},
		{"negative price", productID, 1, -0.01, 18, "price"},
		{"negative GST rate", productID, 1, 100, -5, "gst_rate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLine(tt.productID, tt.qty, tt.price, tt.gstRate)
			require.Error(t, err)
			appErr := apperror.GetAppError(err)
			assert.Equal(t, 422, appErr.Code)
			require.NotEmpty(t, appErr.Errors)
			assert.Equal(t, tt.field, appErr.Errors[0].Field)
		})
	}
}

func TestLineDefaults(t *testing.T) {
	price, rate := LineDefaults(&entity.Product{UnitPrice: 49.50, GSTRate: 12})
	assert.Equal(t, 49.50, price)
	assert.Equal(t, 12.0, rate)

	// Unset rate falls back to the standard 18%.
	_, rate = LineDefaults(&entity.Product{UnitPrice: 10})
	assert.Equal(t, DefaultGSTRate, rate)
}
