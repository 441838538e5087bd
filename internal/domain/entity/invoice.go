package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/vyaparhub/bahikhata-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Invoice represents a GST invoice, either a sale to a customer or a purchase
// from a supplier. CustomerName carries the counterparty's display name for
// both directions; CustomerID/SupplierID hold the explicit relation when the
// counterparty record exists.
//
// Stored totals must always equal the sums recomputed from Items.
type Invoice struct {
	ID           uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	Type         enum.InvoiceType `gorm:"size:20;not null;index" json:"type"`
	InvoiceNo    string           `gorm:"size:100;unique;not null" json:"invoice_no"`
	Date         time.Time        `gorm:"type:date;not null;index" json:"date"`
	CustomerName string           `gorm:"size:255;not null" json:"customer_name"`
	CustomerID   *uuid.UUID       `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	SupplierID   *uuid.UUID       `gorm:"type:uuid;index" json:"supplier_id,omitempty"`
	Note         *string          `gorm:"type:text" json:"note,omitempty"`
	Subtotal     float64          `gorm:"type:decimal(15,2);default:0" json:"subtotal"`
	TotalGST     float64          `gorm:"type:decimal(15,2);default:0;column:total_gst" json:"total_gst"`
	TotalGrand   float64          `gorm:"type:decimal(15,2);default:0" json:"total_grand"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
	DeletedAt    gorm.DeletedAt   `gorm:"index" json:"-"`

	// Relationships
	Customer *Customer     `gorm:"foreignKey:CustomerID" json:"-"`
	Supplier *Supplier     `gorm:"foreignKey:SupplierID" json:"-"`
	Items    []InvoiceItem `gorm:"foreignKey:InvoiceID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new invoice
func (i *Invoice) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Invoice model
func (Invoice) TableName() string {
	return "invoices"
}

// InvoiceItem represents a line on an invoice. Amount, GSTAmount and
// LineTotal are derived from Qty, Price and GSTRate at the line level and
// stored pre-rounded to two decimals.
type InvoiceItem struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceID uuid.UUID      `gorm:"type:uuid;not null;index" json:"invoice_id"`
	ProductID uuid.UUID      `gorm:"type:uuid;not null;index" json:"product_id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Qty       float64        `gorm:"type:decimal(10,2);not null" json:"qty"`
	Price     float64        `gorm:"type:decimal(15,2);not null" json:"price"`
	GSTRate   float64        `gorm:"type:decimal(5,2);default:18;column:gst_rate" json:"gst_rate"`
	Amount    float64        `gorm:"type:decimal(15,2);not null" json:"amount"`
	GSTAmount float64        `gorm:"type:decimal(15,2);not null;column:gst_amount" json:"gst_amount"`
	LineTotal float64        `gorm:"type:decimal(15,2);not null" json:"line_total"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Invoice Invoice `gorm:"foreignKey:InvoiceID" json:"-"`
	Product Product `gorm:"foreignKey:ProductID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new invoice item
func (it *InvoiceItem) BeforeCreate(tx *gorm.DB) error {
	if it.ID == uuid.Nil {
		it.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the InvoiceItem model
func (InvoiceItem) TableName() string {
	return "invoice_items"
}
