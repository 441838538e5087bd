package finance

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/vyaparhub/bahikhata-api/internal/domain/entity"
	"github.com/vyaparhub/bahikhata-api/internal/domain/enum"
)

func strPtr(s string) *string { return &s }

func txn(customerID uuid.UUID, t enum.TransactionType, amount float64, date string, note string) entity.LedgerTransaction {
	d, _ := time.Parse("2006-01-02", date)
	tx := entity.LedgerTransaction{
		ID:         uuid.New(),
		CustomerID: customerID,
		Type:       t,
		Amount:     amount,
		Date:       d,
	}
	if note != "" {
		tx.Note = strPtr(note)
	}
	return tx
}

func TestBalanceFor(t *testing.T) {
	id := uuid.New()

	t.Run("empty list is zero", func(t *testing.T) {
		assert.Equal(t, 0.0, BalanceFor(nil))
		assert.Equal(t, 0.0, BalanceFor([]entity.LedgerTransaction{}))
	})

	t.Run("credit adds, debit subtracts", func(t *testing.T) {
		txns := []entity.LedgerTransaction{
			txn(id, enum.TransactionTypeCredit, 100, "2024-01-05", ""),
			txn(id, enum.TransactionTypeDebit, 40, "2024-01-10", ""),
		}
		assert.Equal(t, 60.0, BalanceFor(txns))
		assert.Equal(t, LabelPayable, BalanceLabel(BalanceFor(txns)))
	})

	t.Run("negative balance means business owes customer", func(t *testing.T) {
		txns := []entity.LedgerTransaction{
			txn(id, enum.TransactionTypeCredit, 25, "2024-02-01", ""),
			txn(id, enum.TransactionTypeDebit, 100, "2024-02-02", ""),
		}
		assert.Equal(t, -75.0, BalanceFor(txns))
		assert.Equal(t, LabelReceivable, BalanceLabel(BalanceFor(txns)))
	})

	t.Run("fractional amounts stay on exact cents", func(t *testing.T) {
		txns := []entity.LedgerTransaction{
			txn(id, enum.TransactionTypeCredit, 10.10, "2024-03-01", ""),
			txn(id, enum.TransactionTypeCredit, 20.20, "2024-03-02", ""),
			txn(id, enum.TransactionTypeDebit, 0.30, "2024-03-03", ""),
		}
		assert.Equal(t, 30.0, BalanceFor(txns))
	})
}

func TestTotalsAndSummary(t *testing.T) {
	id := uuid.New()
	txns := []entity.LedgerTransaction{
		txn(id, enum.TransactionTypeCredit, 500, "2024-01-01", "Opening balance"),
		txn(id, enum.TransactionTypeCredit, 250.50, "2024-01-15", "goods"),
		txn(id, enum.TransactionTypeDebit, 300, "2024-01-20", "payment"),
	}

	assert.Equal(t, 750.50, TotalCredit(txns))
	assert.Equal(t, 300.0, TotalDebit(txns))

	s := Summarize(txns)
	assert.Equal(t, 450.50, s.Balance)
	assert.Equal(t, 750.50, s.TotalCredit)
	assert.Equal(t, 300.0, s.TotalDebit)
	assert.Equal(t, LabelPayable, s.Label)

	empty := Summarize(nil)
	assert.Equal(t, 0.0, empty.Balance)
	assert.Equal(t, LabelSettled, empty.Label)
}

func TestForCustomer(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	txns := []entity.LedgerTransaction{
		txn(a, enum.TransactionTypeCredit, 100, "2024-01-01", ""),
		txn(b, enum.TransactionTypeCredit, 200, "2024-01-02", ""),
		txn(a, enum.TransactionTypeDebit, 50, "2024-01-03", ""),
	}

	got := ForCustomer(txns, a)
	assert.Len(t, got, 2)
	assert.Equal(t, 50.0, BalanceFor(got))
}

func TestFilterTransactions(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	orphan := uuid.New()
	names := map[uuid.UUID]string{a: "Ramesh Kumar", b: "Sita Traders"}

	txns := []entity.LedgerTransaction{
		txn(a, enum.TransactionTypeCredit, 100, "2024-01-05", "Diwali stock"),
		txn(b, enum.TransactionTypeDebit, 40, "2024-02-10", "cash payment"),
		txn(orphan, enum.TransactionTypeCredit, 10, "2024-03-15", ""),
	}

	t.Run("empty query returns everything", func(t *testing.T) {
		assert.Len(t, FilterTransactions(txns, names, ""), 3)
		assert.Len(t, FilterTransactions(txns, names, "   "), 3)
	})

	t.Run("matches note case-insensitively", func(t *testing.T) {
		got := FilterTransactions(txns, names, "diwali")
		assert.Len(t, got, 1)
		assert.Equal(t, a, got[0].CustomerID)
	})

	t.Run("matches type", func(t *testing.T) {
		got := FilterTransactions(txns, names, "debit")
		assert.Len(t, got, 1)
		assert.Equal(t, b, got[0].CustomerID)
	})

	t.Run("matches date substring", func(t *testing.T) {
		got := FilterTransactions(txns, names, "2024-02")
		assert.Len(t, got, 1)
	})

	t.Run("matches resolved customer name", func(t *testing.T) {
		got := FilterTransactions(txns, names, "ramesh")
		assert.Len(t, got, 1)
		assert.Equal(t, a, got[0].CustomerID)
	})

	t.Run("unresolved customer matches as N/A instead of erroring", func(t *testing.T) {
		got := FilterTransactions(txns, names, "n/a")
		assert.Len(t, got, 1)
		assert.Equal(t, orphan, got[0].CustomerID)
	})

	t.Run("no match yields empty, not nil panic", func(t *testing.T) {
		assert.Empty(t, FilterTransactions(txns, names, "zzz"))
	})
}
