package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/vyaparhub/bahikhata-api/internal/domain/entity"
)

// TransactionRepository defines the interface for ledger transaction data
// operations. List methods return full snapshots ordered by date; balance
// computation happens in the finance package, not in queries.
type TransactionRepository interface {
	Create(ctx context.Context, txn *entity.LedgerTransaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.LedgerTransaction, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]entity.LedgerTransaction, error)
	ListAll(ctx context.Context) ([]entity.LedgerTransaction, error)
	DeleteByCustomer(ctx context.Context, customerID uuid.UUID) error
}

// ReminderRepository defines the interface for reminder data operations
type ReminderRepository interface {
	Create(ctx context.Context, reminder *entity.Reminder) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Reminder, error)
	Update(ctx context.Context, reminder *entity.Reminder) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]entity.Reminder, error)
	// ListPending returns reminders not yet completed, soonest due first.
	ListPending(ctx context.Context) ([]entity.Reminder, error)
}
