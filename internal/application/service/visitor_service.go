package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/vyaparhub/bahikhata-api/internal/domain/entity"
	"github.com/vyaparhub/bahikhata-api/internal/domain/repository"
	"github.com/vyaparhub/bahikhata-api/pkg/apperror"
	"github.com/vyaparhub/bahikhata-api/pkg/pagination"
)

// VisitorService handles the shop's visitor log
type VisitorService struct {
	visitorRepo repository.VisitorRepository
}

// NewVisitorService creates a new visitor service
func NewVisitorService(visitorRepo repository.VisitorRepository) *VisitorService {
	return &VisitorService{visitorRepo: visitorRepo}
}

// CreateVisitorInput represents the create visitor input
type CreateVisitorInput struct {
	Name      string
	Phone     *string
	Purpose   string
	VisitDate time.Time
	Note      *string
}

// CreateVisitor logs a visitor entry
func (s *VisitorService) CreateVisitor(ctx context.Context, input *CreateVisitorInput) (*entity.Visitor, error) {
	visitDate := input.VisitDate
	if visitDate.IsZero() {
		visitDate = time.Now()
	}

	visitor := &entity.Visitor{
		Name:      input.Name,
		Phone:     input.Phone,
		Purpose:   input.Purpose,
		VisitDate: visitDate,
		Note:      input.Note,
	}

	if err := s.visitorRepo.Create(ctx, visitor); err != nil {
		return nil, err
	}

	return visitor, nil
}

// GetVisitor retrieves a visitor entry by ID
func (s *VisitorService) GetVisitor(ctx context.Context, id uuid.UUID) (*entity.Visitor, error) {
	visitor, err := s.visitorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if visitor == nil {
		return nil, apperror.NewNotFoundError("Visitor")
	}
	return visitor, nil
}

// ListVisitors lists visitor entries with optional search and date filters
func (s *VisitorService) ListVisitors(ctx context.Context, params *repository.VisitorFilterParams) (*pagination.PaginatedResult[entity.Visitor], error) {
	visitors, total, err := s.visitorRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(visitors, pag), nil
}

// UpdateVisitorInput represents the update visitor input
type UpdateVisitorInput struct {
	ID        uuid.UUID
	Name      *string
	Phone     *string
	Purpose   *string
	VisitDate *time.Time
	Note      *string
}

// UpdateVisitor updates a visitor entry
func (s *VisitorService) UpdateVisitor(ctx context.Context, input *UpdateVisitorInput) (*entity.Visitor, error) {
	visitor, err := s.visitorRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if visitor == nil {
		return nil, apperror.NewNotFoundError("Visitor")
	}

	if input.Name != nil {
		visitor.Name = *input.Name
	}
	if input.Phone != nil {
		visitor.Phone = input.Phone
	}
	if input.Purpose != nil {
		visitor.Purpose = *input.Purpose
	}
	if input.VisitDate != nil {
		visitor.VisitDate = *input.VisitDate
	}
	if input.Note != nil {
		visitor.Note = input.Note
	}

	if err := s.visitorRepo.Update(ctx, visitor); err != nil {
		return nil, err
	}

	return visitor, nil
}

// DeleteVisitor deletes a visitor entry
func (s *VisitorService) DeleteVisitor(ctx context.Context, id uuid.UUID) error {
	visitor, err := s.visitorRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if visitor == nil {
		return apperror.NewNotFoundError("Visitor")
	}

	return s.visitorRepo.Delete(ctx, id)
}
