package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product represents an item in the inventory
type Product struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Category  *string        `gorm:"size:255" json:"category,omitempty"`
	SKU       *string        `gorm:"size:100;column:sku" json:"sku,omitempty"`
	UnitPrice float64        `gorm:"type:decimal(15,2);default:0" json:"unit_price"`
	GSTRate   float64        `gorm:"type:decimal(5,2);default:18;column:gst_rate" json:"gst_rate"`
	Stock     int            `gorm:"default:0" json:"stock"`
	LowStock  int            `gorm:"default:5;column:low_stock" json:"low_stock"`
	Image     *string        `gorm:"size:255" json:"image,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new product
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// IsLowStock reports whether the product is at or below its low stock threshold.
func (p *Product) IsLowStock() bool {
	return p.Stock <= p.LowStock
}
