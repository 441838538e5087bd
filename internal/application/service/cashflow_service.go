package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/vyaparhub/bahikhata-api/internal/domain/entity"
	"github.com/vyaparhub/bahikhata-api/internal/domain/enum"
	"github.com/vyaparhub/bahikhata-api/internal/domain/repository"
	"github.com/vyaparhub/bahikhata-api/pkg/apperror"
	"github.com/vyaparhub/bahikhata-api/pkg/money"
	"github.com/vyaparhub/bahikhata-api/pkg/pagination"
)

// CashflowService handles manual cash book entries and period summaries
type CashflowService struct {
	cashflowRepo repository.CashflowRepository
}

// NewCashflowService creates a new cashflow service
func NewCashflowService(cashflowRepo repository.CashflowRepository) *CashflowService {
	return &CashflowService{cashflowRepo: cashflowRepo}
}

// CreateEntryInput represents the create cashflow entry input
type CreateEntryInput struct {
	Kind     enum.CashflowKind
	Date     time.Time
	Category string
	Amount   float64
	Note     *string
}

// CreateEntry records a manual income or expense entry
func (s *CashflowService) CreateEntry(ctx context.Context, input *CreateEntryInput) (*entity.CashflowEntry, error) {
	if !input.Kind.Valid() {
		return nil, apperror.NewFieldValidationError("kind", "kind must be income or expense")
	}
	if input.Amount <= 0 {
		return nil, apperror.NewFieldValidationError("amount", "amount must be greater than zero")
	}
	if input.Category == "" {
		return nil, apperror.NewFieldValidationError("category", "category is required")
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}

	entry := &entity.CashflowEntry{
		Kind:     input.Kind,
		Date:     date,
		Category: input.Category,
		Amount:   input.Amount,
		Note:     input.Note,
	}

	if err := s.cashflowRepo.Create(ctx, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

// GetEntry retrieves a cashflow entry by ID
func (s *CashflowService) GetEntry(ctx context.Context, id uuid.UUID) (*entity.CashflowEntry, error) {
	entry, err := s.cashflowRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, apperror.NewNotFoundError("Cashflow entry")
	}
	return entry, nil
}

// ListEntries lists cashflow entries with optional kind, category and date filters
func (s *CashflowService) ListEntries(ctx context.Context, params *repository.CashflowFilterParams) (*pagination.PaginatedResult[entity.CashflowEntry], error) {
	entries, total, err := s.cashflowRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(entries, pag), nil
}

// UpdateEntryInput represents the update cashflow entry input
type UpdateEntryInput struct {
	Kind     *enum.CashflowKind
	Date     *time.Time
	Category *string
	Amount   *float64
	Note     *string
}

// UpdateEntry modifies a manual cashflow entry. Entries posted by invoice
// settlement belong to their invoice and cannot be edited directly.
func (s *CashflowService) UpdateEntry(ctx context.Context, id uuid.UUID, input *UpdateEntryInput) (*entity.CashflowEntry, error) {
	entry, err := s.cashflowRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, apperror.NewNotFoundError("Cashflow entry")
	}
	if entry.InvoiceID != nil {
		return nil, apperror.NewBadRequestError("Entry is linked to an invoice and cannot be edited")
	}

	if input.Kind != nil {
		if !input.Kind.Valid() {
			return nil, apperror.NewFieldValidationError("kind", "kind must be income or expense")
		}
		entry.Kind = *input.Kind
	}
	if input.Date != nil && !input.Date.IsZero() {
		entry.Date = *input.Date
	}
	if input.Category != nil {
		if *input.Category == "" {
			return nil, apperror.NewFieldValidationError("category", "category is required")
		}
		entry.Category = *input.Category
	}
	if input.Amount != nil {
		if *input.Amount <= 0 {
			return nil, apperror.NewFieldValidationError("amount", "amount must be greater than zero")
		}
		entry.Amount = *input.Amount
	}
	if input.Note != nil {
		entry.Note = input.Note
	}

	if err := s.cashflowRepo.Update(ctx, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

// DeleteEntry removes a cashflow entry. Entries posted by invoice settlement
// are deleted with their invoice instead.
func (s *CashflowService) DeleteEntry(ctx context.Context, id uuid.UUID) error {
	entry, err := s.cashflowRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if entry == nil {
		return apperror.NewNotFoundError("Cashflow entry")
	}
	if entry.InvoiceID != nil {
		return apperror.NewBadRequestError("Entry is linked to an invoice; delete the invoice instead")
	}

	return s.cashflowRepo.Delete(ctx, id)
}

// CashflowSummary is the period roll-up of the cash book. Unlike the P&L
// statement, every expense entry counts here, including invoice settlements.
type CashflowSummary struct {
	TotalIncome  float64 `json:"total_income"`
	TotalExpense float64 `json:"total_expense"`
	NetCashflow  float64 `json:"net_cashflow"`
}

// Summarize computes income, expense and net cash movement for a period
func (s *CashflowService) Summarize(ctx context.Context, startDate, endDate *time.Time) (*CashflowSummary, error) {
	entries, err := s.cashflowRepo.ListAll(ctx, nil, startDate, endDate)
	if err != nil {
		return nil, err
	}

	var income, expense float64
	for _, e := range entries {
		switch e.Kind {
		case enum.CashflowKindIncome:
			income += e.Amount
		case enum.CashflowKindExpense:
			expense += e.Amount
		}
	}

	income = money.Round2(income)
	expense = money.Round2(expense)

	return &CashflowSummary{
		TotalIncome:  income,
		TotalExpense: expense,
		NetCashflow:  money.Round2(income - expense),
	}, nil
}
