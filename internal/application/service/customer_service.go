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
	"github.com/vyaparhub/bahikhata-api/pkg/pagination"
)

// CustomerService handles customer-related operations
type CustomerService struct {
	customerRepo repository.CustomerRepository
	txnRepo      repository.TransactionRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo repository.CustomerRepository, txnRepo repository.TransactionRepository) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
		txnRepo:      txnRepo,
	}
}

// CreateCustomerInput represents the create customer input
type CreateCustomerInput struct {
	Name           string
	Phone          *string
	Email          *string
	Address        *string
	GSTIN          *string
	CustomerType   enum.CustomerType
	OpeningBalance float64
	OpeningType    enum.TransactionType
}

// CreateCustomer creates a new customer. A non-zero opening balance is posted
// as an ordinary transaction of the requested type (credit when unspecified)
// dated today, so it flows through the same balance computation as every
// later entry.
func (s *CustomerService) CreateCustomer(ctx context.Context, input *CreateCustomerInput) (*entity.Customer, error) {
	if input.CustomerType == "" {
		input.CustomerType = enum.CustomerTypeRetail
	}
	if !input.CustomerType.Valid() {
		return nil, apperror.NewFieldValidationError("customer_type", "invalid customer type")
	}
	if input.OpeningBalance < 0 {
		return nil, apperror.NewFieldValidationError("opening_balance", "opening balance cannot be negative")
	}
	if input.OpeningType == "" {
		input.OpeningType = enum.TransactionTypeCredit
	}
	if !input.OpeningType.Valid() {
		return nil, apperror.NewFieldValidationError("opening_type", "opening type must be credit or debit")
	}

	customer := &entity.Customer{
		Name:         input.Name,
		Phone:        input.Phone,
		Email:        input.Email,
		Address:      input.Address,
		GSTIN:        input.GSTIN,
		CustomerType: input.CustomerType,
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}

	if input.OpeningBalance > 0 {
		note := entity.OpeningBalanceNote
		txn := &entity.LedgerTransaction{
			CustomerID: customer.ID,
			Type:       input.OpeningType,
			Amount:     input.OpeningBalance,
			Date:       time.Now(),
			Note:       &note,
		}
		if err := s.txnRepo.Create(ctx, txn); err != nil {
			return nil, err
		}
	}

	return customer, nil
}

// GetCustomer retrieves a customer by ID
func (s *CustomerService) GetCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return customer, nil
}

// CustomerWithBalance pairs a customer with their computed ledger position.
type CustomerWithBalance struct {
	entity.Customer
	Balance float64 `json:"balance"`
	Label   string  `json:"label"`
}

// ListCustomers lists customers with their current balances
func (s *CustomerService) ListCustomers(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[CustomerWithBalance], error) {
	customers, total, err := s.customerRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	items := make([]CustomerWithBalance, 0, len(customers))
	for _, c := range customers {
		txns, err := s.txnRepo.ListByCustomer(ctx, c.ID)
		if err != nil {
			return nil, err
		}
		balance := finance.BalanceFor(txns)
		items = append(items, CustomerWithBalance{
			Customer: c,
			Balance:  balance,
			Label:    finance.BalanceLabel(balance),
		})
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(items, pag), nil
}

// UpdateCustomerInput represents the update customer input
type UpdateCustomerInput struct {
	ID           uuid.UUID
	Name         *string
	Phone        *string
	Email        *string
	Address      *string
	GSTIN        *string
	CustomerType *enum.CustomerType
}

// UpdateCustomer updates a customer
func (s *CustomerService) UpdateCustomer(ctx context.Context, input *UpdateCustomerInput) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	if input.Name != nil {
		customer.Name = *input.Name
	}
	if input.Phone != nil {
		customer.Phone = input.Phone
	}
	if input.Email != nil {
		customer.Email = input.Email
	}
	if input.Address != nil {
		customer.Address = input.Address
	}
	if input.GSTIN != nil {
		customer.GSTIN = input.GSTIN
	}
	if input.CustomerType != nil {
		if !input.CustomerType.Valid() {
			return nil, apperror.NewFieldValidationError("customer_type", "invalid customer type")
		}
		customer.CustomerType = *input.CustomerType
	}

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

// DeleteCustomer deletes a customer along with their ledger transactions
func (s *CustomerService) DeleteCustomer(ctx context.Context, id uuid.UUID) error {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if customer == nil {
		return apperror.NewNotFoundError("Customer")
	}

	if err := s.txnRepo.DeleteByCustomer(ctx, id); err != nil {
		return err
	}

	return s.customerRepo.Delete(ctx, id)
}

// SupplierService handles supplier-related operations
type SupplierService struct {
	supplierRepo repository.SupplierRepository
}

// NewSupplierService creates a new supplier service
func NewSupplierService(supplierRepo repository.SupplierRepository) *SupplierService {
	return &SupplierService{supplierRepo: supplierRepo}
}

// CreateSupplierInput represents the create supplier input
type CreateSupplierInput struct {
	Name          string
	ContactPerson *string
	Phone         *string
	Email         *string
	Address       *string
	GSTIN         *string
}

// CreateSupplier creates a new supplier
func (s *SupplierService) CreateSupplier(ctx context.Context, input *CreateSupplierInput) (*entity.Supplier, error) {
	supplier := &entity.Supplier{
		Name:          input.Name,
		ContactPerson: input.ContactPerson,
		Phone:         input.Phone,
		Email:         input.Email,
		Address:       input.Address,
		GSTIN:         input.GSTIN,
	}

	if err := s.supplierRepo.Create(ctx, supplier); err != nil {
		return nil, err
	}

	return supplier, nil
}

// GetSupplier retrieves a supplier by ID
func (s *SupplierService) GetSupplier(ctx context.Context, id uuid.UUID) (*entity.Supplier, error) {
	supplier, err := s.supplierRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, apperror.NewNotFoundError("Supplier")
	}
	return supplier, nil
}

// ListSuppliers lists suppliers
func (s *SupplierService) ListSuppliers(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Supplier], error) {
	suppliers, total, err := s.supplierRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(suppliers, pag), nil
}

// UpdateSupplierInput represents the update supplier input
type UpdateSupplierInput struct {
	ID            uuid.UUID
	Name          *string
	ContactPerson *string
	Phone         *string
	Email         *string
	Address       *string
	GSTIN         *string
}

// UpdateSupplier updates a supplier
func (s *SupplierService) UpdateSupplier(ctx context.Context, input *UpdateSupplierInput) (*entity.Supplier, error) {
	supplier, err := s.supplierRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, apperror.NewNotFoundError("Supplier")
	}

	if input.Name != nil {
		supplier.Name = *input.Name
	}
	if input.ContactPerson != nil {
		supplier.ContactPerson = input.ContactPerson
	}
	if input.Phone != nil {
		supplier.Phone = input.Phone
	}
	if input.Email != nil {
		supplier.Email = input.Email
	}
	if input.Address != nil {
		supplier.Address = input.Address
	}
	if input.GSTIN != nil {
		supplier.GSTIN = input.GSTIN
	}

	if err := s.supplierRepo.Update(ctx, supplier); err != nil {
		return nil, err
	}

	return supplier, nil
}

// DeleteSupplier deletes a supplier
func (s *SupplierService) DeleteSupplier(ctx context.Context, id uuid.UUID) error {
	supplier, err := s.supplierRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if supplier == nil {
		return apperror.NewNotFoundError("Supplier")
	}

	return s.supplierRepo.Delete(ctx, id)
}
