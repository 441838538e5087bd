package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Visitor represents an entry in the shop's visitor log
type Visitor struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Phone     *string        `gorm:"size:50" json:"phone,omitempty"`
	Purpose   string         `gorm:"size:255" json:"purpose"`
	VisitDate time.Time      `gorm:"type:date;not null" json:"visit_date"`
	Note      *string        `gorm:"type:text" json:"note,omitempty"`
	Photo     *string        `gorm:"size:255" json:"photo,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new visitor entry
func (v *Visitor) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Visitor model
func (Visitor) TableName() string {
	return "visitors"
}
