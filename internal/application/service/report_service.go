package service

import (
	"context"

	"github.com/vyaparhub/bahikhata-api/internal/domain/entity"
	"github.com/vyaparhub/bahikhata-api/internal/domain/enum"
	"github.com/vyaparhub/bahikhata-api/internal/domain/finance"
	"github.com/vyaparhub/bahikhata-api/internal/domain/repository"
	"github.com/vyaparhub/bahikhata-api/pkg/money"
)

// ReportService produces the GST, profit & loss and stock reports. Date
// ranges arrive as YYYY-MM-DD strings with empty bounds left open, matching
// the finance engines.
type ReportService struct {
	invoiceRepo  repository.InvoiceRepository
	cashflowRepo repository.CashflowRepository
	productRepo  repository.ProductRepository
}

// NewReportService creates a new report service
func NewReportService(
	invoiceRepo repository.InvoiceRepository,
	cashflowRepo repository.CashflowRepository,
	productRepo repository.ProductRepository,
) *ReportService {
	return &ReportService{
		invoiceRepo:  invoiceRepo,
		cashflowRepo: cashflowRepo,
		productRepo:  productRepo,
	}
}

// GSTSummary computes the GST position over the inclusive [from, to] range
func (s *ReportService) GSTSummary(ctx context.Context, from, to string) (*finance.GSTSummary, error) {
	invoices, err := s.invoiceRepo.ListAll(ctx, nil, nil, nil)
	if err != nil {
		return nil, err
	}

	summary := finance.SummarizeGST(invoices, from, to)
	return &summary, nil
}

// ProfitAndLoss builds the period's P&L statement
func (s *ReportService) ProfitAndLoss(ctx context.Context, from, to string) (*finance.ProfitAndLoss, error) {
	invoices, err := s.invoiceRepo.ListAll(ctx, nil, nil, nil)
	if err != nil {
		return nil, err
	}

	var sales, purchases []entity.Invoice
	for _, inv := range invoices {
		if !finance.InDateRange(finance.DateKey(inv.Date), from, to) {
			continue
		}
		switch inv.Type {
		case enum.InvoiceTypeSale:
			sales = append(sales, inv)
		case enum.InvoiceTypePurchase:
			purchases = append(purchases, inv)
		}
	}

	entries, err := s.cashflowRepo.ListAll(ctx, nil, nil, nil)
	if err != nil {
		return nil, err
	}

	var expenses []entity.CashflowEntry
	for _, e := range entries {
		if finance.InDateRange(finance.DateKey(e.Date), from, to) {
			expenses = append(expenses, e)
		}
	}

	pnl := finance.BuildProfitAndLoss(sales, purchases, expenses)
	return &pnl, nil
}

// StockReportLine is one product's row in the stock valuation report.
type StockReportLine struct {
	entity.Product
	StockValue float64 `json:"stock_value"`
	IsLow      bool    `json:"is_low_stock"`
}

// StockReport is the inventory valuation roll-up.
type StockReport struct {
	Lines         []StockReportLine `json:"lines"`
	TotalValue    float64           `json:"total_value"`
	TotalItems    int               `json:"total_items"`
	LowStockCount int               `json:"low_stock_count"`
}

// BuildStockReport values the current inventory at unit price
func (s *ReportService) BuildStockReport(ctx context.Context) (*StockReport, error) {
	products, err := s.productRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	report := &StockReport{Lines: make([]StockReportLine, 0, len(products))}
	var total float64
	for _, p := range products {
		value := money.Round2(float64(p.Stock) * p.UnitPrice)
		total += value
		low := p.IsLowStock()
		if low {
			report.LowStockCount++
		}
		report.TotalItems += p.Stock
		report.Lines = append(report.Lines, StockReportLine{
			Product:    p,
			StockValue: value,
			IsLow:      low,
		})
	}
	report.TotalValue = money.Round2(total)

	return report, nil
}
