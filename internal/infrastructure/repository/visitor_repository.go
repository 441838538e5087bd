package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/vyaparhub/bahikhata-api/internal/domain/entity"
	domainRepo "github.com/vyaparhub/bahikhata-api/internal/domain/repository"
	"gorm.io/gorm"
)

type visitorRepository struct {
	db *gorm.DB
}

// NewVisitorRepository creates a new visitor repository
func NewVisitorRepository(db *gorm.DB) domainRepo.VisitorRepository {
	return &visitorRepository{db: db}
}

func (r *visitorRepository) Create(ctx context.Context, visitor *entity.Visitor) error {
	return r.db.WithContext(ctx).Create(visitor).Error
}

func (r *visitorRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Visitor, error) {
	var visitor entity.Visitor
	err := r.db.WithContext(ctx).First(&visitor, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &visitor, err
}

func (r *visitorRepository) Update(ctx context.Context, visitor *entity.Visitor) error {
	return r.db.WithContext(ctx).Save(visitor).Error
}

func (r *visitorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Visitor{}, "id = ?", id).Error
}

func (r *visitorRepository) List(ctx context.Context, params *domainRepo.VisitorFilterParams) ([]entity.Visitor, int64, error) {
	var visitors []entity.Visitor
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Visitor{}).
		Scopes(DateRangeScope("visit_date", params.StartDate, params.EndDate))

	if params.Search != "" {
		query = query.Where("name ILIKE ? OR phone ILIKE ? OR purpose ILIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%", "%"+params.Search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("visit_date DESC, created_at DESC").
		Find(&visitors).Error

	return visitors, total, err
}
