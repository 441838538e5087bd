package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/vyaparhub/bahikhata-api/internal/domain/entity"
	"github.com/vyaparhub/bahikhata-api/internal/domain/enum"
	domainRepo "github.com/vyaparhub/bahikhata-api/internal/domain/repository"
	"gorm.io/gorm"
)

type cashflowRepository struct {
	db *gorm.DB
}

// NewCashflowRepository creates a new cashflow repository
func NewCashflowRepository(db *gorm.DB) domainRepo.CashflowRepository {
	return &cashflowRepository{db: db}
}

func (r *cashflowRepository) Create(ctx context.Context, entry *entity.CashflowEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *cashflowRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.CashflowEntry, error) {
	var entry entity.CashflowEntry
	err := r.db.WithContext(ctx).First(&entry, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &entry, err
}

func (r *cashflowRepository) Update(ctx context.Context, entry *entity.CashflowEntry) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

func (r *cashflowRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.CashflowEntry{}, "id = ?", id).Error
}

func (r *cashflowRepository) List(ctx context.Context, params *domainRepo.CashflowFilterParams) ([]entity.CashflowEntry, int64, error) {
	var entries []entity.CashflowEntry
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.CashflowEntry{}).
		Scopes(DateRangeScope("date", params.StartDate, params.EndDate))

	if params.Kind != nil {
		query = query.Where("kind = ?", *params.Kind)
	}
	if params.Category != "" {
		query = query.Where("category = ?", params.Category)
	}
	if params.Search != "" {
		query = query.Where("category ILIKE ? OR note ILIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("date DESC, created_at DESC").
		Find(&entries).Error

	return entries, total, err
}

func (r *cashflowRepository) ListAll(ctx context.Context, kind *enum.CashflowKind, startDate, endDate *time.Time) ([]entity.CashflowEntry, error) {
	var entries []entity.CashflowEntry

	query := r.db.WithContext(ctx).Model(&entity.CashflowEntry{}).
		Scopes(DateRangeScope("date", startDate, endDate))
	if kind != nil {
		query = query.Where("kind = ?", *kind)
	}

	err := query.Order("date DESC, created_at DESC").Find(&entries).Error
	return entries, err
}

func (r *cashflowRepository) DeleteByInvoiceID(ctx context.Context, invoiceID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.CashflowEntry{}, "invoice_id = ?", invoiceID).Error
}
