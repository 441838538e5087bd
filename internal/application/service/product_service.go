package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/vyaparhub/bahikhata-api/internal/domain/entity"
	"github.com/vyaparhub/bahikhata-api/internal/domain/finance"
	"github.com/vyaparhub/bahikhata-api/internal/domain/repository"
	"github.com/vyaparhub/bahikhata-api/pkg/apperror"
	"github.com/vyaparhub/bahikhata-api/pkg/pagination"
)

// ProductService handles inventory operations
type ProductService struct {
	productRepo repository.ProductRepository
}

// NewProductService creates a new product service
func NewProductService(productRepo repository.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// CreateProductInput represents the create product input
type CreateProductInput struct {
	Name      string
	Category  *string
	SKU       *string
	UnitPrice float64
	GSTRate   *float64
	Stock     int
	LowStock  *int
}

// CreateProduct creates a new product
func (s *ProductService) CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	if input.UnitPrice < 0 {
		return nil, apperror.NewFieldValidationError("unit_price", "unit price cannot be negative")
	}
	if input.Stock < 0 {
		return nil, apperror.NewFieldValidationError("stock", "stock cannot be negative")
	}

	gstRate := finance.DefaultGSTRate
	if input.GSTRate != nil {
		if *input.GSTRate < 0 {
			return nil, apperror.NewFieldValidationError("gst_rate", "GST rate cannot be negative")
		}
		gstRate = *input.GSTRate
	}

	lowStock := 5
	if input.LowStock != nil {
		lowStock = *input.LowStock
	}

	product := &entity.Product{
		Name:      input.Name,
		Category:  input.Category,
		SKU:       input.SKU,
		UnitPrice: input.UnitPrice,
		GSTRate:   gstRate,
		Stock:     input.Stock,
		LowStock:  lowStock,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// GetProduct retrieves a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// ListProducts lists products with optional search, category and low-stock filters
func (s *ProductService) ListProducts(ctx context.Context, params *repository.ProductFilterParams) (*pagination.PaginatedResult[entity.Product], error) {
	products, total, err := s.productRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(products, pag), nil
}

// UpdateProductInput represents the update product input
type UpdateProductInput struct {
	ID        uuid.UUID
	Name      *string
	Category  *string
	SKU       *string
	UnitPrice *float64
	GSTRate   *float64
	Stock     *int
	LowStock  *int
}

// UpdateProduct updates a product
func (s *ProductService) UpdateProduct(ctx context.Context, input *UpdateProductInput) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Category != nil {
		product.Category = input.Category
	}
	if input.SKU != nil {
		product.SKU = input.SKU
	}
	if input.UnitPrice != nil {
		if *input.UnitPrice < 0 {
			return nil, apperror.NewFieldValidationError("unit_price", "unit price cannot be negative")
		}
		product.UnitPrice = *input.UnitPrice
	}
	if input.GSTRate != nil {
		if *input.GSTRate < 0 {
			return nil, apperror.NewFieldValidationError("gst_rate", "GST rate cannot be negative")
		}
		product.GSTRate = *input.GSTRate
	}
	if input.Stock != nil {
		if *input.Stock < 0 {
			return nil, apperror.NewFieldValidationError("stock", "stock cannot be negative")
		}
		product.Stock = *input.Stock
	}
	if input.LowStock != nil {
		product.LowStock = *input.LowStock
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// DeleteProduct deletes a product
func (s *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return apperror.NewNotFoundError("Product")
	}

	return s.productRepo.Delete(ctx, id)
}

// ListLowStock returns products at or below their low-stock threshold
func (s *ProductService) ListLowStock(ctx context.Context) ([]entity.Product, error) {
	products, err := s.productRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	low := make([]entity.Product, 0)
	for _, p := range products {
		if p.IsLowStock() {
			low = append(low, p)
		}
	}
	return low, nil
}
