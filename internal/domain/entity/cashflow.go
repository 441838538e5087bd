package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/vyaparhub/bahikhata-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Cashflow categories posted automatically when an invoice is settled.
const (
	CategoryProductSale     = "Product Sale"
	CategoryProductPurchase = "Product Purchase"
)

// CashflowEntry represents a single income or expense record in the cash
// book. Entries posted by invoice settlement carry the invoice's ID so they
// can be deleted in tandem with it.
type CashflowEntry struct {
	ID        uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	Kind      enum.CashflowKind `gorm:"size:20;not null;index" json:"kind"`
	Date      time.Time         `gorm:"type:date;not null;index" json:"date"`
	Category  string            `gorm:"size:255;not null" json:"category"`
	Amount    float64           `gorm:"type:decimal(15,2);not null" json:"amount"`
	Note      *string           `gorm:"type:text" json:"note,omitempty"`
	InvoiceID *uuid.UUID        `gorm:"type:uuid;index" json:"invoice_id,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
	DeletedAt gorm.DeletedAt    `gorm:"index" json:"-"`

	// Relationships
	Invoice *Invoice `gorm:"foreignKey:InvoiceID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new cashflow entry
func (c *CashflowEntry) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the CashflowEntry model
func (CashflowEntry) TableName() string {
	return "cashflow_entries"
}
