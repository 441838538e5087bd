package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/vyaparhub/bahikhata-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Customer represents a ledger customer (khata holder)
type Customer struct {
	ID           uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	Name         string            `gorm:"size:255;not null" json:"name"`
	Phone        *string           `gorm:"size:50" json:"phone,omitempty"`
	Email        *string           `gorm:"size:255" json:"email,omitempty"`
	Address      *string           `gorm:"type:text" json:"address,omitempty"`
	GSTIN        *string           `gorm:"size:20;column:gstin" json:"gstin,omitempty"`
	CustomerType enum.CustomerType `gorm:"size:50;default:'Retail'" json:"customer_type"`
	Photo        *string           `gorm:"size:255" json:"photo,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
	DeletedAt    gorm.DeletedAt    `gorm:"index" json:"-"`

	// Relationships
	Transactions []LedgerTransaction `gorm:"foreignKey:CustomerID" json:"-"`
	Reminders    []Reminder          `gorm:"foreignKey:CustomerID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new customer
func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}
