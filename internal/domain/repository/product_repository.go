package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/vyaparhub/bahikhata-api/internal/domain/entity"
	"github.com/vyaparhub/bahikhata-api/pkg/pagination"
)

// ProductFilterParams contains filtering parameters for product queries
type ProductFilterParams struct {
	Pagination pagination.PaginationParams
	Search     string
	Category   string
	LowStock   bool
}

// ProductRepository defines the interface for product data operations
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *ProductFilterParams) ([]entity.Product, int64, error)
	ListAll(ctx context.Context) ([]entity.Product, error)
	Count(ctx context.Context) (int64, error)
	// AdjustStockBatch atomically applies the given stock deltas (negative to
	// decrement). It returns the IDs of products whose stock would have gone
	// negative; when any are returned, no delta has been applied.
	AdjustStockBatch(ctx context.Context, deltas map[uuid.UUID]int) ([]uuid.UUID, error)
}
