package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/vyaparhub/bahikhata-api/internal/domain/enum"
	"gorm.io/gorm"
)

// OpeningBalanceNote marks the synthetic transaction posted when a customer
// is created with a non-zero opening amount. It is an ordinary entry in the
// transaction stream, not a separate field.
const OpeningBalanceNote = "Opening balance"

// LedgerTransaction represents a single khata entry for a customer.
// A credit increases what the customer owes; a debit records a payment.
type LedgerTransaction struct {
	ID         uuid.UUID            `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID uuid.UUID            `gorm:"type:uuid;not null;index" json:"customer_id"`
	Type       enum.TransactionType `gorm:"size:20;not null" json:"type"`
	Amount     float64              `gorm:"type:decimal(15,2);not null" json:"amount"`
	Date       time.Time            `gorm:"type:date;not null" json:"date"`
	Note       *string              `gorm:"type:text" json:"note,omitempty"`
	CreatedAt  time.Time            `json:"created_at"`
	UpdatedAt  time.Time            `json:"updated_at"`
	DeletedAt  gorm.DeletedAt       `gorm:"index" json:"-"`

	// Relationships
	Customer Customer `gorm:"foreignKey:CustomerID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new transaction
func (t *LedgerTransaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the LedgerTransaction model
func (LedgerTransaction) TableName() string {
	return "ledger_transactions"
}

// Reminder represents a payment reminder attached to a customer. Toggling or
// deleting a reminder never touches balances.
type Reminder struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"customer_id"`
	DueDate     time.Time      `gorm:"not null" json:"due_date"`
	Message     *string        `gorm:"type:text" json:"message,omitempty"`
	IsCompleted bool           `gorm:"default:false" json:"is_completed"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Customer Customer `gorm:"foreignKey:CustomerID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new reminder
func (r *Reminder) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Reminder model
func (Reminder) TableName() string {
	return "reminders"
}
