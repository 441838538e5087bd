package finance

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/vyaparhub/bahikhata-api/internal/domain/entity"
	"github.com/vyaparhub/bahikhata-api/internal/domain/enum"
)

func invoice(t enum.InvoiceType, date string, totalGST float64) entity.Invoice {
	d, _ := time.Parse("2006-01-02", date)
	return entity.Invoice{
		ID:       uuid.New(),
		Type:     t,
		Date:     d,
		TotalGST: totalGST,
	}
}

func TestSummarizeGST(t *testing.T) {
	t.Run("empty set yields all-zero payable summary", func(t *testing.T) {
		s := SummarizeGST(nil, "", "")
		assert.Equal(t, 0.0, s.OutputGST)
		assert.Equal(t, 0.0, s.InputGST)
		assert.Equal(t, 0.0, s.NetGST)
		assert.Equal(t, GSTPositionPayable, s.Position)
	})

	t.Run("output minus input", func(t *testing.T) {
		invoices := []entity.Invoice{
			invoice(enum.InvoiceTypeSale, "2024-01-10", 180),
			invoice(enum.InvoiceTypeSale, "2024-01-20", 90),
			invoice(enum.InvoiceTypePurchase, "2024-01-15", 50),
		}
		s := SummarizeGST(invoices, "", "")
		assert.Equal(t, 270.0, s.OutputGST)
		assert.Equal(t, 50.0, s.InputGST)
		assert.Equal(t, 220.0, s.NetGST)
		assert.Equal(t, GSTPositionPayable, s.Position)
	})

	t.Run("input exceeding output flips to credit position", func(t *testing.T) {
		invoices := []entity.Invoice{
			invoice(enum.InvoiceTypeSale, "2024-01-10", 40),
			invoice(enum.InvoiceTypePurchase, "2024-01-15", 100),
		}
		s := SummarizeGST(invoices, "", "")
		assert.Equal(t, -60.0, s.NetGST)
		assert.Equal(t, GSTPositionCredit, s.Position)
	})

	t.Run("range bounds are inclusive", func(t *testing.T) {
		invoices := []entity.Invoice{
			invoice(enum.InvoiceTypeSale, "2023-12-31", 10),
			invoice(enum.InvoiceTypeSale, "2024-01-01", 20),
			invoice(enum.InvoiceTypeSale, "2024-01-31", 30),
			invoice(enum.InvoiceTypeSale, "2024-02-01", 40),
		}
		s := SummarizeGST(invoices, "2024-01-01", "2024-01-31")
		assert.Equal(t, 50.0, s.OutputGST)
	})

	t.Run("open bounds", func(t *testing.T) {
		invoices := []entity.Invoice{
			invoice(enum.InvoiceTypeSale, "2023-06-01", 10),
			invoice(enum.InvoiceTypeSale, "2024-06-01", 20),
		}

		s := SummarizeGST(invoices, "2024-01-01", "")
		assert.Equal(t, 20.0, s.OutputGST)

		s = SummarizeGST(invoices, "", "2023-12-31")
		assert.Equal(t, 10.0, s.OutputGST)
	})
}

func TestInDateRange(t *testing.T) {
	tests := []struct {
		date, from, to string
		want           bool
	}{
		{"2024-01-15", "2024-01-01", "2024-01-31", true},
		{"2024-01-01", "2024-01-01", "2024-01-31", true},
		{"2024-01-31", "2024-01-01", "2024-01-31", true},
		{"2024-02-01", "2024-01-01", "2024-01-31", false},
		{"2023-12-31", "2024-01-01", "2024-01-31", false},
		{"1999-05-05", "", "", true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, InDateRange(tt.date, tt.from, tt.to),
			"date %s in [%s, %s]", tt.date, tt.from, tt.to)
	}
}
