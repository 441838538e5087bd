package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// InvoiceType distinguishes sales invoices (GST collected) from purchase
// invoices (GST paid, creditable as input tax).
type InvoiceType string

const (
	InvoiceTypeSale     InvoiceType = "sale"
	InvoiceTypePurchase InvoiceType = "purchase"
)

func (t InvoiceType) String() string {
	return string(t)
}

// Valid reports whether the value is one of the known invoice types.
func (t InvoiceType) Valid() bool {
	return t == InvoiceTypeSale || t == InvoiceTypePurchase
}

func (t InvoiceType) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(t))
}

func (t *InvoiceType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*t = InvoiceType(str)
	return nil
}

func (t InvoiceType) Value() (driver.Value, error) {
	return string(t), nil
}

func (t *InvoiceType) Scan(value interface{}) error {
	if value == nil {
		*t = InvoiceTypeSale
		return nil
	}
	switch v := value.(type) {
	case string:
		*t = InvoiceType(v)
	case []byte:
		*t = InvoiceType(string(v))
	}
	return nil
}
