package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/vyaparhub/bahikhata-api/internal/domain/entity"
	domainRepo "github.com/vyaparhub/bahikhata-api/internal/domain/repository"
	"gorm.io/gorm"
)

type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new ledger transaction repository
func NewTransactionRepository(db *gorm.DB) domainRepo.TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(ctx context.Context, txn *entity.LedgerTransaction) error {
	return r.db.WithContext(ctx).Create(txn).Error
}

func (r *transactionRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.LedgerTransaction, error) {
	var txn entity.LedgerTransaction
	err := r.db.WithContext(ctx).First(&txn, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &txn, err
}

func (r *transactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.LedgerTransaction{}, "id = ?", id).Error
}

func (r *transactionRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]entity.LedgerTransaction, error) {
	var txns []entity.LedgerTransaction
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("date DESC, created_at DESC").
		Find(&txns).Error
	return txns, err
}

func (r *transactionRepository) ListAll(ctx context.Context) ([]entity.LedgerTransaction, error) {
	var txns []entity.LedgerTransaction
	err := r.db.WithContext(ctx).
		Order("date DESC, created_at DESC").
		Find(&txns).Error
	return txns, err
}

func (r *transactionRepository) DeleteByCustomer(ctx context.Context, customerID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.LedgerTransaction{}, "customer_id = ?", customerID).Error
}

type reminderRepository struct {
	db *gorm.DB
}

// NewReminderRepository creates a new reminder repository
func NewReminderRepository(db *gorm.DB) domainRepo.ReminderRepository {
	return &reminderRepository{db: db}
}

func (r *reminderRepository) Create(ctx context.Context, reminder *entity.Reminder) error {
	return r.db.WithContext(ctx).Create(reminder).Error
}

func (r *reminderRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Reminder, error) {
	var reminder entity.Reminder
	err := r.db.WithContext(ctx).First(&reminder, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &reminder, err
}

func (r *reminderRepository) Update(ctx context.Context, reminder *entity.Reminder) error {
	return r.db.WithContext(ctx).Save(reminder).Error
}

func (r *reminderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Reminder{}, "id = ?", id).Error
}

func (r *reminderRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]entity.Reminder, error) {
	var reminders []entity.Reminder
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("due_date ASC").
		Find(&reminders).Error
	return reminders, err
}

func (r *reminderRepository) ListPending(ctx context.Context) ([]entity.Reminder, error) {
	var reminders []entity.Reminder
	err := r.db.WithContext(ctx).
		Where("is_completed = ?", false).
		Order("due_date ASC").
		Find(&reminders).Error
	return reminders, err
}
