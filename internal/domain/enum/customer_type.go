package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// CustomerType represents the segment a customer belongs to.
type CustomerType string

const (
	CustomerTypeRetail    CustomerType = "Retail"
	CustomerTypeWholesale CustomerType = "Wholesale"
	CustomerTypeCorporate CustomerType = "Corporate"
	CustomerTypeOnline    CustomerType = "Online"
)

func (t CustomerType) String() string {
	return string(t)
}

// Valid reports whether the value is one of the known customer types.
func (t CustomerType) Valid() bool {
	switch t {
	case CustomerTypeRetail, CustomerTypeWholesale, CustomerTypeCorporate, CustomerTypeOnline:
		return true
	}
	return false
}

func (t CustomerType) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(t))
}

func (t *CustomerType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*t = CustomerType(str)
	return nil
}

func (t CustomerType) Value() (driver.Value, error) {
	return string(t), nil
}

func (t *CustomerType) Scan(value interface{}) error {
	if value == nil {
		*t = CustomerTypeRetail
		return nil
	}
	switch v := value.(type) {
	case string:
		*t = CustomerType(v)
	case []byte:
		*t = CustomerType(string(v))
	}
	return nil
}
