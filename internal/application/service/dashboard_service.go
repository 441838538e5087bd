package service

import (
	"context"
	"time"

	"github.com/vyaparhub/bahikhata-api/internal/domain/entity"
	"github.com/vyaparhub/bahikhata-api/internal/domain/enum"
	"github.com/vyaparhub/bahikhata-api/internal/domain/finance"
	"github.com/vyaparhub/bahikhata-api/internal/domain/repository"
	"github.com/vyaparhub/bahikhata-api/pkg/money"
)

// DashboardService aggregates the home screen's headline numbers
type DashboardService struct {
	customerRepo repository.CustomerRepository
	txnRepo      repository.TransactionRepository
	productRepo  repository.ProductRepository
	invoiceRepo  repository.InvoiceRepository
	reminderRepo repository.ReminderRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	customerRepo repository.CustomerRepository,
	txnRepo repository.TransactionRepository,
	productRepo repository.ProductRepository,
	invoiceRepo repository.InvoiceRepository,
	reminderRepo repository.ReminderRepository,
) *DashboardService {
	return &DashboardService{
		customerRepo: customerRepo,
		txnRepo:      txnRepo,
		productRepo:  productRepo,
		invoiceRepo:  invoiceRepo,
		reminderRepo: reminderRepo,
	}
}

// DashboardStats is the home screen summary.
type DashboardStats struct {
	TotalCustomers   int64   `json:"total_customers"`
	TotalProducts    int64   `json:"total_products"`
	TotalInvoices    int64   `json:"total_invoices"`
	TotalReceivable  float64 `json:"total_receivable"`
	TotalPayable     float64 `json:"total_payable"`
	TodaySales       float64 `json:"today_sales"`
	LowStockCount    int     `json:"low_stock_count"`
	PendingReminders int     `json:"pending_reminders"`
}

// GetStats computes the dashboard summary. Receivable is the sum of positive
// customer balances (money owed to the shop), payable the sum of negative
// ones.
func (s *DashboardService) GetStats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}

	var err error
	if stats.TotalCustomers, err = s.customerRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalProducts, err = s.productRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalInvoices, err = s.invoiceRepo.Count(ctx); err != nil {
		return nil, err
	}

	txns, err := s.txnRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	byCustomer := make(map[string][]entity.LedgerTransaction)
	for _, t := range txns {
		key := t.CustomerID.String()
		byCustomer[key] = append(byCustomer[key], t)
	}
	var receivable, payable float64
	for _, group := range byCustomer {
		balance := finance.BalanceFor(group)
		if balance > 0 {
			receivable += balance
		} else {
			payable += -balance
		}
	}
	stats.TotalReceivable = money.Round2(receivable)
	stats.TotalPayable = money.Round2(payable)

	today := finance.DateKey(time.Now())
	saleType := enum.InvoiceTypeSale
	invoices, err := s.invoiceRepo.ListAll(ctx, &saleType, nil, nil)
	if err != nil {
		return nil, err
	}
	var todaySales float64
	for _, inv := range invoices {
		if finance.DateKey(inv.Date) == today {
			todaySales += inv.TotalGrand
		}
	}
	stats.TodaySales = money.Round2(todaySales)

	products, err := s.productRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range products {
		if p.IsLowStock() {
			stats.LowStockCount++
		}
	}

	pending, err := s.reminderRepo.ListPending(ctx)
	if err != nil {
		return nil, err
	}
	stats.PendingReminders = len(pending)

	return stats, nil
}
