package finance

import (
	"github.com/vyaparhub/bahikhata-api/internal/domain/entity"
	"github.com/vyaparhub/bahikhata-api/internal/domain/enum"
	"github.com/vyaparhub/bahikhata-api/pkg/money"
)

// ProfitAndLoss is the period roll-up of sales, purchases and expenses.
// COGS is approximated as total purchase invoice value for the period.
type ProfitAndLoss struct {
	TotalRevenue  float64 `json:"total_revenue"`
	COGS          float64 `json:"cogs"`
	GrossProfit   float64 `json:"gross_profit"`
	TotalExpenses float64 `json:"total_expenses"`
	NetProfit     float64 `json:"net_profit"`
}

// BuildProfitAndLoss rolls up a period's sales invoices, purchase invoices
// and expense cashflows.
//
// Expense entries in the "Product Purchase" category are excluded here:
// invoice settlement posts such an entry alongside every purchase invoice,
// and purchases already enter the statement as COGS. The cash book's own
// summaries do not apply this exclusion; it belongs to P&L alone.
func BuildProfitAndLoss(sales, purchases []entity.Invoice, expenses []entity.CashflowEntry) ProfitAndLoss {
	var revenue, cogs, expenseTotal float64

	for _, inv := range sales {
		revenue += inv.TotalGrand
	}
	for _, inv := range purchases {
		cogs += inv.TotalGrand
	}
	for _, e := range expenses {
		if e.Kind != enum.CashflowKindExpense {
			continue
		}
		if e.Category == entity.CategoryProductPurchase {
			continue
		}
		expenseTotal += e.Amount
	}

	revenue = money.Round2(revenue)
	cogs = money.Round2(cogs)
	expenseTotal = money.Round2(expenseTotal)
	gross := money.Round2(revenue - cogs)

	return ProfitAndLoss{
		TotalRevenue:  revenue,
		COGS:          cogs,
		GrossProfit:   gross,
		TotalExpenses: expenseTotal,
		NetProfit:     money.Round2(gross - expenseTotal),
	}
}
