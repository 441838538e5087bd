package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/vyaparhub/bahikhata-api/internal/domain/entity"
	"github.com/vyaparhub/bahikhata-api/internal/domain/enum"
	"github.com/vyaparhub/bahikhata-api/internal/domain/finance"
	"github.com/vyaparhub/bahikhata-api/internal/domain/repository"
	"github.com/vyaparhub/bahikhata-api/pkg/apperror"
	"github.com/vyaparhub/bahikhata-api/pkg/pagination"
	"github.com/vyaparhub/bahikhata-api/pkg/utils"
)

// InvoiceService handles invoice creation, listing and deletion together with
// the stock and cash book side effects of settlement.
type InvoiceService struct {
	invoiceRepo  repository.InvoiceRepository
	itemRepo     repository.InvoiceItemRepository
	productRepo  repository.ProductRepository
	cashflowRepo repository.CashflowRepository
	customerRepo repository.CustomerRepository
	supplierRepo repository.SupplierRepository
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(
	invoiceRepo repository.InvoiceRepository,
	itemRepo repository.InvoiceItemRepository,
	productRepo repository.ProductRepository,
	cashflowRepo repository.CashflowRepository,
	customerRepo repository.CustomerRepository,
	supplierRepo repository.SupplierRepository,
) *InvoiceService {
	return &InvoiceService{
		invoiceRepo:  invoiceRepo,
		itemRepo:     itemRepo,
		productRepo:  productRepo,
		cashflowRepo: cashflowRepo,
		customerRepo: customerRepo,
		supplierRepo: supplierRepo,
	}
}

// InvoiceLineInput represents one line of the create invoice input. Price and
// GSTRate override the product's defaults when set.
type InvoiceLineInput struct {
	ProductID uuid.UUID
	Qty       float64
	Price     *float64
	GSTRate   *float64
}

// CreateInvoiceInput represents the create invoice input
type CreateInvoiceInput struct {
	Type         enum.InvoiceType
	Date         time.Time
	CustomerName string
	CustomerID   *uuid.UUID
	SupplierID   *uuid.UUID
	Note         *string
	Lines        []InvoiceLineInput
}

// CreateInvoice creates an invoice from its lines. Line amounts are derived
// and rounded per line, totals are summed from the derived lines, stock moves
// atomically (out for sales, in for purchases) and a matching cash book entry
// is posted carrying the invoice's ID.
func (s *InvoiceService) CreateInvoice(ctx context.Context, input *CreateInvoiceInput) (*entity.Invoice, error) {
	if !input.Type.Valid() {
		return nil, apperror.NewFieldValidationError("type", "type must be sale or purchase")
	}
	if len(input.Lines) == 0 {
		return nil, apperror.NewFieldValidationError("items", "an invoice needs at least one line")
	}
	if input.CustomerName == "" {
		return nil, apperror.NewFieldValidationError("customer_name", "counterparty name is required")
	}

	if input.CustomerID != nil {
		customer, err := s.customerRepo.GetByID(ctx, *input.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, apperror.NewNotFoundError("Customer")
		}
	}
	if input.SupplierID != nil {
		supplier, err := s.supplierRepo.GetByID(ctx, *input.SupplierID)
		if err != nil {
			return nil, err
		}
		if supplier == nil {
			return nil, apperror.NewNotFoundError("Supplier")
		}
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}

	// Resolve product snapshots for naming and price/rate defaults.
	productIDs := make([]uuid.UUID, 0, len(input.Lines))
	for _, line := range input.Lines {
		if err := finance.ValidateLine(line.ProductID, line.Qty, derefOr(line.Price, 0), derefOr(line.GSTRate, 0)); err != nil {
			return nil, err
		}
		// Stock is tracked in whole units, so fractional quantities would
		// desynchronize inventory from the invoice.
		if line.Qty != math.Trunc(line.Qty) {
			return nil, apperror.NewFieldValidationError("qty", "quantity must be a whole number")
		}
		productIDs = append(productIDs, line.ProductID)
	}

	products, err := s.productRepo.GetByIDs(ctx, productIDs)
	if err != nil {
		return nil, err
	}
	productByID := make(map[uuid.UUID]*entity.Product, len(products))
	for i := range products {
		productByID[products[i].ID] = &products[i]
	}

	items := make([]entity.InvoiceItem, 0, len(input.Lines))
	for _, line := range input.Lines {
		product, ok := productByID[line.ProductID]
		if !ok {
			return nil, apperror.NewNotFoundError("Product")
		}

		price, gstRate := finance.LineDefaults(product)
		if line.Price != nil {
			price = *line.Price
		}
		if line.GSTRate != nil {
			gstRate = *line.GSTRate
		}

		if err := finance.ValidateLine(line.ProductID, line.Qty, price, gstRate); err != nil {
			return nil, err
		}

		totals := finance.ComputeLine(line.Qty, price, gstRate)
		items = append(items, entity.InvoiceItem{
			ProductID: line.ProductID,
			Name:      product.Name,
			Qty:       line.Qty,
			Price:     price,
			GSTRate:   gstRate,
			Amount:    totals.Amount,
			GSTAmount: totals.GSTAmount,
			LineTotal: totals.LineTotal,
		})
	}

	// Sales consume stock, purchases replenish it.
	deltas := stockDeltas(items, input.Type)
	failed, err := s.productRepo.AdjustStockBatch(ctx, deltas)
	if err != nil {
		return nil, err
	}
	if len(failed) > 0 {
		fields := make([]apperror.FieldError, 0, len(failed))
		for _, id := range failed {
			name := id.String()
			if p, ok := productByID[id]; ok {
				name = p.Name
			}
			fields = append(fields, apperror.FieldError{Field: "items", Message: "insufficient stock for " + name})
		}
		return nil, apperror.NewValidationError(fields)
	}

	invoiceTotals := finance.ComputeInvoiceTotals(items)

	prefix := "INV"
	if input.Type == enum.InvoiceTypePurchase {
		prefix = "PUR"
	}

	invoice := &entity.Invoice{
		Type:         input.Type,
		InvoiceNo:    utils.GenerateInvoiceNo(prefix),
		Date:         date,
		CustomerName: input.CustomerName,
		CustomerID:   input.CustomerID,
		SupplierID:   input.SupplierID,
		Note:         input.Note,
		Subtotal:     invoiceTotals.Subtotal,
		TotalGST:     invoiceTotals.TotalGST,
		TotalGrand:   invoiceTotals.TotalGrand,
	}

	if err := s.invoiceRepo.Create(ctx, invoice); err != nil {
		s.revertStock(ctx, deltas)
		return nil, err
	}

	for i := range items {
		items[i].InvoiceID = invoice.ID
	}
	if err := s.itemRepo.CreateBatch(ctx, items); err != nil {
		s.revertStock(ctx, deltas)
		return nil, err
	}
	invoice.Items = items

	if err := s.postSettlement(ctx, invoice); err != nil {
		s.revertStock(ctx, deltas)
		_ = s.itemRepo.DeleteByInvoiceID(ctx, invoice.ID)
		_ = s.invoiceRepo.Delete(ctx, invoice.ID)
		return nil, err
	}

	return invoice, nil
}

// postSettlement records the invoice's cash movement: income for a sale,
// expense for a purchase.
func (s *InvoiceService) postSettlement(ctx context.Context, invoice *entity.Invoice) error {
	kind := enum.CashflowKindIncome
	category := entity.CategoryProductSale
	if invoice.Type == enum.InvoiceTypePurchase {
		kind = enum.CashflowKindExpense
		category = entity.CategoryProductPurchase
	}

	note := fmt.Sprintf("Invoice %s - %s", invoice.InvoiceNo, invoice.CustomerName)
	entry := &entity.CashflowEntry{
		Kind:      kind,
		Date:      invoice.Date,
		Category:  category,
		Amount:    invoice.TotalGrand,
		Note:      &note,
		InvoiceID: &invoice.ID,
	}
	return s.cashflowRepo.Create(ctx, entry)
}

func stockDeltas(items []entity.InvoiceItem, invoiceType enum.InvoiceType) map[uuid.UUID]int {
	deltas := make(map[uuid.UUID]int, len(items))
	for _, it := range items {
		qty := int(it.Qty)
		if invoiceType == enum.InvoiceTypeSale {
			qty = -qty
		}
		deltas[it.ProductID] += qty
	}
	return deltas
}

// revertStock compensates a previously applied stock adjustment when a later
// write fails. Best effort only; an error here cannot be surfaced usefully.
func (s *InvoiceService) revertStock(ctx context.Context, deltas map[uuid.UUID]int) {
	reversed := make(map[uuid.UUID]int, len(deltas))
	for id, d := range deltas {
		reversed[id] = -d
	}
	_, _ = s.productRepo.AdjustStockBatch(ctx, reversed)
}

// GetInvoice retrieves an invoice with its items
func (s *InvoiceService) GetInvoice(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	return invoice, nil
}

// ListInvoices lists invoices with optional type, search and date filters
func (s *InvoiceService) ListInvoices(ctx context.Context, params *repository.InvoiceFilterParams) (*pagination.PaginatedResult[entity.Invoice], error) {
	invoices, total, err := s.invoiceRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(invoices, pag), nil
}

// DeleteInvoice removes an invoice, restores the stock it moved and deletes
// the linked cash book entry
func (s *InvoiceService) DeleteInvoice(ctx context.Context, id uuid.UUID) error {
	invoice, err := s.invoiceRepo.GetWithItems(ctx, id)
	if err != nil {
		return err
	}
	if invoice == nil {
		return apperror.NewNotFoundError("Invoice")
	}

	// Reverse the original stock movement.
	deltas := stockDeltas(invoice.Items, invoice.Type)
	reversed := make(map[uuid.UUID]int, len(deltas))
	for pid, d := range deltas {
		reversed[pid] = -d
	}
	if failed, err := s.productRepo.AdjustStockBatch(ctx, reversed); err != nil {
		return err
	} else if len(failed) > 0 {
		return apperror.NewBadRequestError("Cannot delete invoice: restoring it would drive stock negative")
	}

	if err := s.itemRepo.DeleteByInvoiceID(ctx, id); err != nil {
		return err
	}
	if err := s.cashflowRepo.DeleteByInvoiceID(ctx, id); err != nil {
		return err
	}

	return s.invoiceRepo.Delete(ctx, id)
}

func derefOr(v *float64, fallback float64) float64 {
	if v != nil {
		return *v
	}
	return fallback
}
