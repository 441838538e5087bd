package finance

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/vyaparhub/bahikhata-api/internal/domain/entity"
	"github.com/vyaparhub/bahikhata-api/internal/domain/enum"
)

func grandInvoice(t enum.InvoiceType, totalGrand float64) entity.Invoice {
	return entity.Invoice{ID: uuid.New(), Type: t, TotalGrand: totalGrand}
}

func expense(category string, amount float64) entity.CashflowEntry {
	d, _ := time.Parse("2006-01-02", "2024-01-15")
	return entity.CashflowEntry{
		ID:       uuid.New(),
		Kind:     enum.CashflowKindExpense,
		Date:     d,
		Category: category,
		Amount:   amount,
	}
}

func TestBuildProfitAndLoss(t *testing.T) {
	t.Run("empty inputs yield all zeros", func(t *testing.T) {
		pl := BuildProfitAndLoss(nil, nil, nil)
		assert.Equal(t, ProfitAndLoss{}, pl)
	})

	t.Run("revenue minus cogs minus expenses", func(t *testing.T) {
		sales := []entity.Invoice{
			grandInvoice(enum.InvoiceTypeSale, 3000),
			grandInvoice(enum.InvoiceTypeSale, 2000),
		}
		purchases := []entity.Invoice{
			grandInvoice(enum.InvoiceTypePurchase, 2000),
		}
		expenses := []entity.CashflowEntry{
			expense("Rent", 500),
			expense("Electricity", 300),
		}

		pl := BuildProfitAndLoss(sales, purchases, expenses)
		assert.Equal(t, 5000.0, pl.TotalRevenue)
		assert.Equal(t, 2000.0, pl.COGS)
		assert.Equal(t, 3000.0, pl.GrossProfit)
		assert.Equal(t, 800.0, pl.TotalExpenses)
		assert.Equal(t, 2200.0, pl.NetProfit)
	})

	t.Run("product purchase expenses are excluded from the expense line", func(t *testing.T) {
		sales := []entity.Invoice{grandInvoice(enum.InvoiceTypeSale, 1000)}
		purchases := []entity.Invoice{grandInvoice(enum.InvoiceTypePurchase, 400)}
		expenses := []entity.CashflowEntry{
			expense("Rent", 100),
			// Settlement entry mirroring the purchase invoice; counting it
			// would double the 400 already in COGS.
			expense(entity.CategoryProductPurchase, 400),
		}

		pl := BuildProfitAndLoss(sales, purchases, expenses)
		assert.Equal(t, 100.0, pl.TotalExpenses)
		assert.Equal(t, 500.0, pl.NetProfit)
	})

	t.Run("non-expense entries are ignored even if passed in", func(t *testing.T) {
		income := expense("Product Sale", 250)
		income.Kind = enum.CashflowKindIncome

		pl := BuildProfitAndLoss(nil, nil, []entity.CashflowEntry{income, expense("Rent", 75)})
		assert.Equal(t, 75.0, pl.TotalExpenses)
		assert.Equal(t, -75.0, pl.NetProfit)
	})

	t.Run("a loss goes negative rather than clamping", func(t *testing.T) {
		sales := []entity.Invoice{grandInvoice(enum.InvoiceTypeSale, 100)}
		purchases := []entity.Invoice{grandInvoice(enum.InvoiceTypePurchase, 300)}

		pl := BuildProfitAndLoss(sales, purchases, nil)
		assert.Equal(t, -200.0, pl.GrossProfit)
		assert.Equal(t, -200.0, pl.NetProfit)
	})
}
