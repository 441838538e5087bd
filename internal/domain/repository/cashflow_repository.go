package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/vyaparhub/bahikhata-api/internal/domain/entity"
	"github.com/vyaparhub/bahikhata-api/internal/domain/enum"
	"github.com/vyaparhub/bahikhata-api/pkg/pagination"
)

// CashflowFilterParams contains filtering parameters for cashflow queries
type CashflowFilterParams struct {
	Pagination pagination.PaginationParams
	Search     string
	Kind       *enum.CashflowKind
	Category   string
	StartDate  *time.Time
	EndDate    *time.Time
}

// CashflowRepository defines the interface for cashflow data operations
type CashflowRepository interface {
	Create(ctx context.Context, entry *entity.CashflowEntry) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.CashflowEntry, error)
	Update(ctx context.Context, entry *entity.CashflowEntry) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *CashflowFilterParams) ([]entity.CashflowEntry, int64, error)
	ListAll(ctx context.Context, kind *enum.CashflowKind, startDate, endDate *time.Time) ([]entity.CashflowEntry, error)
	// DeleteByInvoiceID removes the settlement entry linked to an invoice.
	DeleteByInvoiceID(ctx context.Context, invoiceID uuid.UUID) error
}
