package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/vyaparhub/bahikhata-api/internal/domain/entity"
	"github.com/vyaparhub/bahikhata-api/internal/domain/enum"
	"github.com/vyaparhub/bahikhata-api/internal/domain/finance"
	"github.com/vyaparhub/bahikhata-api/internal/domain/repository"
	"github.com/vyaparhub/bahikhata-api/pkg/apperror"
)

// LedgerService handles khata transactions and balance summaries
type LedgerService struct {
	txnRepo      repository.TransactionRepository
	customerRepo repository.CustomerRepository
}

// NewLedgerService creates a new ledger service
func NewLedgerService(txnRepo repository.TransactionRepository, customerRepo repository.CustomerRepository) *LedgerService {
	return &LedgerService{
		txnRepo:      txnRepo,
		customerRepo: customerRepo,
	}
}

// AddTransactionInput represents the add transaction input
type AddTransactionInput struct {
	CustomerID uuid.UUID
	Type       enum.TransactionType
	Amount     float64
	Date       time.Time
	Note       *string
}

// AddTransaction posts a credit or debit entry to a customer's khata
func (s *LedgerService) AddTransaction(ctx context.Context, input *AddTransactionInput) (*entity.LedgerTransaction, error) {
	if !input.Type.Valid() {
		return nil, apperror.NewFieldValidationError("type", "type must be credit or debit")
	}
	if input.Amount <= 0 {
		return nil, apperror.NewFieldValidationError("amount", "amount must be greater than zero")
	}

	customer, err := s.customerRepo.GetByID(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}

	txn := &entity.LedgerTransaction{
		CustomerID: input.CustomerID,
		Type:       input.Type,
		Amount:     input.Amount,
		Date:       date,
		Note:       input.Note,
	}

	if err := s.txnRepo.Create(ctx, txn); err != nil {
		return nil, err
	}

	return txn, nil
}

// DeleteTransaction removes a single ledger entry
func (s *LedgerService) DeleteTransaction(ctx context.Context, id uuid.UUID) error {
	txn, err := s.txnRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if txn == nil {
		return apperror.NewNotFoundError("Transaction")
	}

	return s.txnRepo.Delete(ctx, id)
}

// CustomerLedger bundles a customer's transaction history with their position.
type CustomerLedger struct {
	Customer     *entity.Customer           `json:"customer"`
	Transactions []entity.LedgerTransaction `json:"transactions"`
	Summary      finance.LedgerSummary      `json:"summary"`
}

// GetCustomerLedger returns a customer's full transaction history and summary
func (s *LedgerService) GetCustomerLedger(ctx context.Context, customerID uuid.UUID) (*CustomerLedger, error) {
	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	txns, err := s.txnRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	return &CustomerLedger{
		Customer:     customer,
		Transactions: txns,
		Summary:      finance.Summarize(txns),
	}, nil
}

// GetOverallSummary computes the position across every customer's khata
func (s *LedgerService) GetOverallSummary(ctx context.Context) (*finance.LedgerSummary, error) {
	txns, err := s.txnRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	summary := finance.Summarize(txns)
	return &summary, nil
}

// TransactionWithCustomer is a ledger entry annotated with the resolved
// customer display name.
type TransactionWithCustomer struct {
	entity.LedgerTransaction
	CustomerName string `json:"customer_name"`
}

// SearchTransactions applies a free-text filter across all khata entries,
// matching against note, type, date and customer name. Entries whose customer
// record is gone are kept and reported under a placeholder name.
func (s *LedgerService) SearchTransactions(ctx context.Context, query string) ([]TransactionWithCustomer, error) {
	txns, err := s.txnRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	customers, err := s.customerRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	names := make(map[uuid.UUID]string, len(customers))
	for _, c := range customers {
		names[c.ID] = c.Name
	}

	filtered := finance.FilterTransactions(txns, names, query)

	out := make([]TransactionWithCustomer, 0, len(filtered))
	for _, t := range filtered {
		name, ok := names[t.CustomerID]
		if !ok {
			name = finance.UnknownName
		}
		out = append(out, TransactionWithCustomer{
			LedgerTransaction: t,
			CustomerName:      name,
		})
	}

	return out, nil
}
