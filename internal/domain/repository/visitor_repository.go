package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/vyaparhub/bahikhata-api/internal/domain/entity"
	"github.com/vyaparhub/bahikhata-api/pkg/pagination"
)

// VisitorFilterParams contains filter parameters for visitor queries
type VisitorFilterParams struct {
	Search     string
	StartDate  *time.Time
	EndDate    *time.Time
	Pagination pagination.PaginationParams
}

// VisitorRepository defines the interface for visitor log data operations
type VisitorRepository interface {
	Create(ctx context.Context, visitor *entity.Visitor) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Visitor, error)
	Update(ctx context.Context, visitor *entity.Visitor) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *VisitorFilterParams) ([]entity.Visitor, int64, error)
}
