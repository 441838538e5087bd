package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// CashflowKind represents the direction of a cashflow entry.
type CashflowKind string

const (
	CashflowKindIncome  CashflowKind = "income"
	CashflowKindExpense CashflowKind = "expense"
)

func (k CashflowKind) String() string {
	return string(k)
}

// Valid reports whether the value is one of the known cashflow kinds.
func (k CashflowKind) Valid() bool {
	return k == CashflowKindIncome || k == CashflowKindExpense
}

func (k CashflowKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(k))
}

func (k *CashflowKind) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*k = CashflowKind(str)
	return nil
}

func (k CashflowKind) Value() (driver.Value, error) {
	return string(k), nil
}

func (k *CashflowKind) Scan(value interface{}) error {
	if value == nil {
		*k = CashflowKindIncome
		return nil
	}
	switch v := value.(type) {
	case string:
		*k = CashflowKind(v)
	case []byte:
		*k = CashflowKind(string(v))
	}
	return nil
}
