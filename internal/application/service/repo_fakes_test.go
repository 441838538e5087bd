package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/vyaparhub/bahikhata-api/internal/domain/entity"
	"github.com/vyaparhub/bahikhata-api/internal/domain/enum"
	"github.com/vyaparhub/bahikhata-api/internal/domain/repository"
	"github.com/vyaparhub/bahikhata-api/pkg/pagination"
)

// In-memory repository doubles for exercising the services without a
// database. Only the behavior the services under test rely on is modeled.

type fakeCustomerRepo struct {
	customers map[uuid.UUID]*entity.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: make(map[uuid.UUID]*entity.Customer)}
}

func (f *fakeCustomerRepo) Create(_ context.Context, c *entity.Customer) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	f.customers[c.ID] = c
	return nil
}

func (f *fakeCustomerRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Customer, error) {
	return f.customers[id], nil
}

func (f *fakeCustomerRepo) GetByName(_ context.Context, name string) (*entity.Customer, error) {
	for _, c := range f.customers {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCustomerRepo) Update(_ context.Context, c *entity.Customer) error {
	f.customers[c.ID] = c
	return nil
}

func (f *fakeCustomerRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.customers, id)
	return nil
}

func (f *fakeCustomerRepo) List(_ context.Context, _ *pagination.PaginationParams, _ string) ([]entity.Customer, int64, error) {
	out := make([]entity.Customer, 0, len(f.customers))
	for _, c := range f.customers {
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

func (f *fakeCustomerRepo) ListAll(_ context.Context) ([]entity.Customer, error) {
	out := make([]entity.Customer, 0, len(f.customers))
	for _, c := range f.customers {
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeCustomerRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.customers)), nil
}

type fakeTransactionRepo struct {
	txns []entity.LedgerTransaction
}

func newFakeTransactionRepo() *fakeTransactionRepo {
	return &fakeTransactionRepo{}
}

func (f *fakeTransactionRepo) Create(_ context.Context, t *entity.LedgerTransaction) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	f.txns = append(f.txns, *t)
	return nil
}

func (f *fakeTransactionRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.LedgerTransaction, error) {
	for i := range f.txns {
		if f.txns[i].ID == id {
			return &f.txns[i], nil
		}
	}
	return nil, nil
}

func (f *fakeTransactionRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i := range f.txns {
		if f.txns[i].ID == id {
			f.txns = append(f.txns[:i], f.txns[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeTransactionRepo) ListByCustomer(_ context.Context, customerID uuid.UUID) ([]entity.LedgerTransaction, error) {
	var out []entity.LedgerTransaction
	for _, t := range f.txns {
		if t.CustomerID == customerID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTransactionRepo) ListAll(_ context.Context) ([]entity.LedgerTransaction, error) {
	return append([]entity.LedgerTransaction(nil), f.txns...), nil
}

func (f *fakeTransactionRepo) DeleteByCustomer(_ context.Context, customerID uuid.UUID) error {
	kept := f.txns[:0]
	for _, t := range f.txns {
		if t.CustomerID != customerID {
			kept = append(kept, t)
		}
	}
	f.txns = kept
	return nil
}

type fakeProductRepo struct {
	products map[uuid.UUID]*entity.Product
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	f := &fakeProductRepo{products: make(map[uuid.UUID]*entity.Product)}
	for _, p := range products {
		if p.ID == uuid.Nil {
			p.ID = uuid.New()
		}
		f.products[p.ID] = p
	}
	return f
}

func (f *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	f.products[p.ID] = p
	return nil
}

func (f *fakeProductRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Product, error) {
	return f.products[id], nil
}

func (f *fakeProductRepo) GetByIDs(_ context.Context, ids []uuid.UUID) ([]entity.Product, error) {
	var out []entity.Product
	for _, id := range ids {
		if p, ok := f.products[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	f.products[p.ID] = p
	return nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.products, id)
	return nil
}

func (f *fakeProductRepo) List(_ context.Context, _ *repository.ProductFilterParams) ([]entity.Product, int64, error) {
	out := make([]entity.Product, 0, len(f.products))
	for _, p := range f.products {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (f *fakeProductRepo) ListAll(_ context.Context) ([]entity.Product, error) {
	out := make([]entity.Product, 0, len(f.products))
	for _, p := range f.products {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeProductRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.products)), nil
}

// AdjustStockBatch mirrors the all-or-nothing semantics of the real
// implementation: when any product would go negative, nothing is applied and
// the offending IDs are returned.
func (f *fakeProductRepo) AdjustStockBatch(_ context.Context, deltas map[uuid.UUID]int) ([]uuid.UUID, error) {
	var failed []uuid.UUID
	for id, d := range deltas {
		p, ok := f.products[id]
		if !ok || p.Stock+d < 0 {
			failed = append(failed, id)
		}
	}
	if len(failed) > 0 {
		return failed, nil
	}
	for id, d := range deltas {
		f.products[id].Stock += d
	}
	return nil, nil
}

type fakeInvoiceRepo struct {
	invoices map[uuid.UUID]*entity.Invoice
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{invoices: make(map[uuid.UUID]*entity.Invoice)}
}

func (f *fakeInvoiceRepo) Create(_ context.Context, inv *entity.Invoice) error {
	if inv.ID == uuid.Nil {
		inv.ID = uuid.New()
	}
	f.invoices[inv.ID] = inv
	return nil
}

func (f *fakeInvoiceRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Invoice, error) {
	return f.invoices[id], nil
}

func (f *fakeInvoiceRepo) GetWithItems(_ context.Context, id uuid.UUID) (*entity.Invoice, error) {
	return f.invoices[id], nil
}

func (f *fakeInvoiceRepo) Update(_ context.Context, inv *entity.Invoice) error {
	f.invoices[inv.ID] = inv
	return nil
}

func (f *fakeInvoiceRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.invoices, id)
	return nil
}

func (f *fakeInvoiceRepo) List(_ context.Context, _ *repository.InvoiceFilterParams) ([]entity.Invoice, int64, error) {
	out := make([]entity.Invoice, 0, len(f.invoices))
	for _, inv := range f.invoices {
		out = append(out, *inv)
	}
	return out, int64(len(out)), nil
}

func (f *fakeInvoiceRepo) ListAll(_ context.Context, _ *enum.InvoiceType, _, _ *time.Time) ([]entity.Invoice, error) {
	out := make([]entity.Invoice, 0, len(f.invoices))
	for _, inv := range f.invoices {
		out = append(out, *inv)
	}
	return out, nil
}

func (f *fakeInvoiceRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.invoices)), nil
}

type fakeInvoiceItemRepo struct {
	items []entity.InvoiceItem
}

func newFakeInvoiceItemRepo() *fakeInvoiceItemRepo {
	return &fakeInvoiceItemRepo{}
}

func (f *fakeInvoiceItemRepo) CreateBatch(_ context.Context, items []entity.InvoiceItem) error {
	f.items = append(f.items, items...)
	return nil
}

func (f *fakeInvoiceItemRepo) GetByInvoiceID(_ context.Context, invoiceID uuid.UUID) ([]entity.InvoiceItem, error) {
	var out []entity.InvoiceItem
	for _, it := range f.items {
		if it.InvoiceID == invoiceID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (f *fakeInvoiceItemRepo) DeleteByInvoiceID(_ context.Context, invoiceID uuid.UUID) error {
	kept := f.items[:0]
	for _, it := range f.items {
		if it.InvoiceID != invoiceID {
			kept = append(kept, it)
		}
	}
	f.items = kept
	return nil
}

type fakeCashflowRepo struct {
	entries    []entity.CashflowEntry
	failCreate bool
}

func newFakeCashflowRepo() *fakeCashflowRepo {
	return &fakeCashflowRepo{}
}

func (f *fakeCashflowRepo) Create(_ context.Context, e *entity.CashflowEntry) error {
	if f.failCreate {
		return errors.New("cashflow insert failed")
	}
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	f.entries = append(f.entries, *e)
	return nil
}

func (f *fakeCashflowRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.CashflowEntry, error) {
	for i := range f.entries {
		if f.entries[i].ID == id {
			return &f.entries[i], nil
		}
	}
	return nil, nil
}

func (f *fakeCashflowRepo) Update(_ context.Context, e *entity.CashflowEntry) error {
	for i := range f.entries {
		if f.entries[i].ID == e.ID {
			f.entries[i] = *e
			return nil
		}
	}
	return nil
}

func (f *fakeCashflowRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i := range f.entries {
		if f.entries[i].ID == id {
			f.entries = append(f.entries[:i], f.entries[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeCashflowRepo) List(_ context.Context, _ *repository.CashflowFilterParams) ([]entity.CashflowEntry, int64, error) {
	return append([]entity.CashflowEntry(nil), f.entries...), int64(len(f.entries)), nil
}

func (f *fakeCashflowRepo) ListAll(_ context.Context, _ *enum.CashflowKind, _, _ *time.Time) ([]entity.CashflowEntry, error) {
	return append([]entity.CashflowEntry(nil), f.entries...), nil
}

func (f *fakeCashflowRepo) DeleteByInvoiceID(_ context.Context, invoiceID uuid.UUID) error {
	kept := f.entries[:0]
	for _, e := range f.entries {
		if e.InvoiceID == nil || *e.InvoiceID != invoiceID {
			kept = append(kept, e)
		}
	}
	f.entries = kept
	return nil
}

type fakeSupplierRepo struct {
	suppliers map[uuid.UUID]*entity.Supplier
}

func newFakeSupplierRepo() *fakeSupplierRepo {
	return &fakeSupplierRepo{suppliers: make(map[uuid.UUID]*entity.Supplier)}
}

func (f *fakeSupplierRepo) Create(_ context.Context, s *entity.Supplier) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	f.suppliers[s.ID] = s
	return nil
}

func (f *fakeSupplierRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Supplier, error) {
	return f.suppliers[id], nil
}

func (f *fakeSupplierRepo) GetByName(_ context.Context, name string) (*entity.Supplier, error) {
	for _, s := range f.suppliers {
		if s.Name == name {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeSupplierRepo) Update(_ context.Context, s *entity.Supplier) error {
	f.suppliers[s.ID] = s
	return nil
}

func (f *fakeSupplierRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.suppliers, id)
	return nil
}

func (f *fakeSupplierRepo) List(_ context.Context, _ *pagination.PaginationParams, _ string) ([]entity.Supplier, int64, error) {
	out := make([]entity.Supplier, 0, len(f.suppliers))
	for _, s := range f.suppliers {
		out = append(out, *s)
	}
	return out, int64(len(out)), nil
}
