package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vyaparhub/bahikhata-api/internal/domain/entity"
	"github.com/vyaparhub/bahikhata-api/internal/domain/enum"
)

func TestCreateCustomerOpeningBalance(t *testing.T) {
	t.Run("defaults to a credit opening transaction", func(t *testing.T) {
		customerRepo := newFakeCustomerRepo()
		txnRepo := newFakeTransactionRepo()
		svc := NewCustomerService(customerRepo, txnRepo)

		customer, err := svc.CreateCustomer(context.Background(), &CreateCustomerInput{
			Name:           "Ramesh Traders",
			OpeningBalance: 500,
		})
		require.NoError(t, err)

		require.Len(t, txnRepo.txns, 1)
		txn := txnRepo.txns[0]
		assert.Equal(t, customer.ID, txn.CustomerID)
		assert.Equal(t, enum.TransactionTypeCredit, txn.Type)
		assert.Equal(t, 500.0, txn.Amount)
		require.NotNil(t, txn.Note)
		assert.Equal(t, entity.OpeningBalanceNote, *txn.Note)
	})

	t.Run("posts a debit opening transaction when requested", func(t *testing.T) {
		customerRepo := newFakeCustomerRepo()
		txnRepo := newFakeTransactionRepo()
		svc := NewCustomerService(customerRepo, txnRepo)

		customer, err := svc.CreateCustomer(context.Background(), &CreateCustomerInput{
			Name:           "Advance Paid Stores",
			OpeningBalance: 250,
			OpeningType:    enum.TransactionTypeDebit,
		})
		require.NoError(t, err)

		require.Len(t, txnRepo.txns, 1)
		txn := txnRepo.txns[0]
		assert.Equal(t, customer.ID, txn.CustomerID)
		assert.Equal(t, enum.TransactionTypeDebit, txn.Type)
		assert.Equal(t, 250.0, txn.Amount)
	})

	t.Run("rejects an unknown opening type", func(t *testing.T) {
		svc := NewCustomerService(newFakeCustomerRepo(), newFakeTransactionRepo())

		_, err := svc.CreateCustomer(context.Background(), &CreateCustomerInput{
			Name:           "Bad Type",
			OpeningBalance: 100,
			OpeningType:    enum.TransactionType("transfer"),
		})
		assert.Error(t, err)
	})

	t.Run("zero opening balance posts nothing", func(t *testing.T) {
		txnRepo := newFakeTransactionRepo()
		svc := NewCustomerService(newFakeCustomerRepo(), txnRepo)

		_, err := svc.CreateCustomer(context.Background(), &CreateCustomerInput{Name: "No Opening"})
		require.NoError(t, err)
		assert.Empty(t, txnRepo.txns)
	})
}
