package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vyaparhub/bahikhata-api/internal/domain/entity"
	"github.com/vyaparhub/bahikhata-api/internal/domain/enum"
)

func newInvoiceServiceWithFakes(products ...*entity.Product) (*InvoiceService, *fakeInvoiceRepo, *fakeInvoiceItemRepo, *fakeProductRepo, *fakeCashflowRepo) {
	invoiceRepo := newFakeInvoiceRepo()
	itemRepo := newFakeInvoiceItemRepo()
	productRepo := newFakeProductRepo(products...)
	cashflowRepo := newFakeCashflowRepo()
	svc := NewInvoiceService(invoiceRepo, itemRepo, productRepo, cashflowRepo, newFakeCustomerRepo(), newFakeSupplierRepo())
	return svc, invoiceRepo, itemRepo, productRepo, cashflowRepo
}

func TestCreateInvoiceQuantities(t *testing.T) {
	t.Run("rejects fractional quantities", func(t *testing.T) {
		product := &entity.Product{Name: "Rice Bag", UnitPrice: 100, GSTRate: 5, Stock: 10}
		svc, _, _, productRepo, _ := newInvoiceServiceWithFakes(product)

		_, err := svc.CreateInvoice(context.Background(), &CreateInvoiceInput{
			Type:         enum.InvoiceTypeSale,
			CustomerName: "Walk-in",
			Lines:        []InvoiceLineInput{{ProductID: product.ID, Qty: 0.9}},
		})
		assert.Error(t, err)
		assert.Equal(t, 10, productRepo.products[product.ID].Stock)

		_, err = svc.CreateInvoice(context.Background(), &CreateInvoiceInput{
			Type:         enum.InvoiceTypeSale,
			CustomerName: "Walk-in",
			Lines:        []InvoiceLineInput{{ProductID: product.ID, Qty: 2.5}},
		})
		assert.Error(t, err)
		assert.Equal(t, 10, productRepo.products[product.ID].Stock)
	})

	t.Run("whole quantities move stock exactly", func(t *testing.T) {
		product := &entity.Product{Name: "Rice Bag", UnitPrice: 100, GSTRate: 5, Stock: 10}
		svc, _, _, productRepo, _ := newInvoiceServiceWithFakes(product)

		_, err := svc.CreateInvoice(context.Background(), &CreateInvoiceInput{
			Type:         enum.InvoiceTypeSale,
			CustomerName: "Walk-in",
			Lines:        []InvoiceLineInput{{ProductID: product.ID, Qty: 3}},
		})
		require.NoError(t, err)
		assert.Equal(t, 7, productRepo.products[product.ID].Stock)
	})

	t.Run("purchase quantities replenish stock", func(t *testing.T) {
		product := &entity.Product{Name: "Rice Bag", UnitPrice: 100, GSTRate: 5, Stock: 2}
		svc, _, _, productRepo, _ := newInvoiceServiceWithFakes(product)

		_, err := svc.CreateInvoice(context.Background(), &CreateInvoiceInput{
			Type:         enum.InvoiceTypePurchase,
			CustomerName: "Agro Suppliers",
			Lines:        []InvoiceLineInput{{ProductID: product.ID, Qty: 5}},
		})
		require.NoError(t, err)
		assert.Equal(t, 7, productRepo.products[product.ID].Stock)
	})

	t.Run("oversold sale leaves stock untouched", func(t *testing.T) {
		product := &entity.Product{Name: "Rice Bag", UnitPrice: 100, GSTRate: 5, Stock: 2}
		svc, _, _, productRepo, _ := newInvoiceServiceWithFakes(product)

		_, err := svc.CreateInvoice(context.Background(), &CreateInvoiceInput{
			Type:         enum.InvoiceTypeSale,
			CustomerName: "Walk-in",
			Lines:        []InvoiceLineInput{{ProductID: product.ID, Qty: 3}},
		})
		assert.Error(t, err)
		assert.Equal(t, 2, productRepo.products[product.ID].Stock)
	})
}

func TestCreateInvoiceSettlementFailure(t *testing.T) {
	product := &entity.Product{Name: "Rice Bag", UnitPrice: 100, GSTRate: 5, Stock: 10}
	svc, invoiceRepo, itemRepo, productRepo, cashflowRepo := newInvoiceServiceWithFakes(product)
	cashflowRepo.failCreate = true

	_, err := svc.CreateInvoice(context.Background(), &CreateInvoiceInput{
		Type:         enum.InvoiceTypeSale,
		CustomerName: "Walk-in",
		Lines:        []InvoiceLineInput{{ProductID: product.ID, Qty: 4}},
	})
	require.Error(t, err)

	// Nothing persists when the cash book entry cannot be written.
	assert.Empty(t, invoiceRepo.invoices)
	assert.Empty(t, itemRepo.items)
	assert.Empty(t, cashflowRepo.entries)
	assert.Equal(t, 10, productRepo.products[product.ID].Stock)
}

func TestCreateInvoicePostsLinkedCashflow(t *testing.T) {
	product := &entity.Product{Name: "Rice Bag", UnitPrice: 100, GSTRate: 5, Stock: 10}
	svc, _, _, _, cashflowRepo := newInvoiceServiceWithFakes(product)

	invoice, err := svc.CreateInvoice(context.Background(), &CreateInvoiceInput{
		Type:         enum.InvoiceTypeSale,
		CustomerName: "Walk-in",
		Lines:        []InvoiceLineInput{{ProductID: product.ID, Qty: 2}},
	})
	require.NoError(t, err)

	require.Len(t, cashflowRepo.entries, 1)
	entry := cashflowRepo.entries[0]
	assert.Equal(t, enum.CashflowKindIncome, entry.Kind)
	assert.Equal(t, entity.CategoryProductSale, entry.Category)
	assert.Equal(t, invoice.TotalGrand, entry.Amount)
	require.NotNil(t, entry.InvoiceID)
	assert.Equal(t, invoice.ID, *entry.InvoiceID)
}
