// Package finance holds the pure aggregation engines of the ledger system:
// khata balances, invoice line/total derivation, GST summaries and the
// profit & loss roll-up. Every function is a pure computation over snapshot
// slices supplied by the caller; the package performs no I/O and holds no
// state, so concurrent use needs no synchronization.
package finance

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vyaparhub/bahikhata-api/internal/domain/entity"
	"github.com/vyaparhub/bahikhata-api/internal/domain/enum"
	"github.com/vyaparhub/bahikhata-api/pkg/money"
)

// Balance labels from the business's perspective: a positive balance means
// the customer will give ("Aap Denge"), a negative one means the customer
// will receive ("Aapko Milenge").
const (
	LabelPayable    = "Aap Denge"
	LabelReceivable = "Aapko Milenge"
	LabelSettled    = "Settled"
)

// UnknownName is substituted when a transaction references a customer that is
// missing from the supplied snapshot.
const UnknownName = "N/A"

// LedgerSummary is the computed position of a transaction set.
type LedgerSummary struct {
	Balance     float64 `json:"balance"`
	TotalCredit float64 `json:"total_credit"`
	TotalDebit  float64 `json:"total_debit"`
	Label       string  `json:"label"`
}

// BalanceFor computes the signed balance of a transaction list: credits add
// to what the customer owes, debits settle it. An empty list yields 0.
func BalanceFor(txns []entity.LedgerTransaction) float64 {
	var sum float64
	for _, t := range txns {
		if t.Type == enum.TransactionTypeCredit {
			sum += t.Amount
		} else {
			sum -= t.Amount
		}
	}
	return money.Round2(sum)
}

// TotalCredit sums the unsigned credit amounts in the list.
func TotalCredit(txns []entity.LedgerTransaction) float64 {
	var sum float64
	for _, t := range txns {
		if t.Type == enum.TransactionTypeCredit {
			sum += t.Amount
		}
	}
	return money.Round2(sum)
}

// TotalDebit sums the unsigned debit amounts in the list.
func TotalDebit(txns []entity.LedgerTransaction) float64 {
	var sum float64
	for _, t := range txns {
		if t.Type == enum.TransactionTypeDebit {
			sum += t.Amount
		}
	}
	return money.Round2(sum)
}

// BalanceLabel maps a signed balance to its display label.
func BalanceLabel(balance float64) string {
	switch {
	case balance > 0:
		return LabelPayable
	case balance < 0:
		return LabelReceivable
	default:
		return LabelSettled
	}
}

// Summarize computes the full position for a transaction list.
func Summarize(txns []entity.LedgerTransaction) LedgerSummary {
	balance := BalanceFor(txns)
	return LedgerSummary{
		Balance:     balance,
		TotalCredit: TotalCredit(txns),
		TotalDebit:  TotalDebit(txns),
		Label:       BalanceLabel(balance),
	}
}

// ForCustomer returns the transactions belonging to one customer.
func ForCustomer(txns []entity.LedgerTransaction, customerID uuid.UUID) []entity.LedgerTransaction {
	out := make([]entity.LedgerTransaction, 0, len(txns))
	for _, t := range txns {
		if t.CustomerID == customerID {
			out = append(out, t)
		}
	}
	return out
}

// FilterTransactions applies a case-insensitive free-text filter over note,
// type, date and the resolved customer name. names maps customer IDs to
// display names; a transaction whose customer is missing from the map matches
// against UnknownName instead of being dropped.
func FilterTransactions(txns []entity.LedgerTransaction, names map[uuid.UUID]string, query string) []entity.LedgerTransaction {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return txns
	}

	out := make([]entity.LedgerTransaction, 0, len(txns))
	for _, t := range txns {
		if transactionMatches(t, names, q) {
			out = append(out, t)
		}
	}
	return out
}

func transactionMatches(t entity.LedgerTransaction, names map[uuid.UUID]string, q string) bool {
	if t.Note != nil && strings.Contains(strings.ToLower(*t.Note), q) {
		return true
	}
	if strings.Contains(strings.ToLower(t.Type.String()), q) {
		return true
	}
	if strings.Contains(DateKey(t.Date), q) {
		return true
	}
	name, ok := names[t.CustomerID]
	if !ok {
		name = UnknownName
	}
	return strings.Contains(strings.ToLower(name), q)
}

// DateKey renders a date in the YYYY-MM-DD form every range comparison in
// this package uses. The form is lexicographically ordered, so string
// comparison and date comparison agree.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}
