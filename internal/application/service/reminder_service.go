package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/vyaparhub/bahikhata-api/internal/domain/entity"
	"github.com/vyaparhub/bahikhata-api/internal/domain/repository"
	"github.com/vyaparhub/bahikhata-api/pkg/apperror"
)

// ReminderService handles payment reminders. Reminders are bookkeeping aids
// only; nothing here touches balances.
type ReminderService struct {
	reminderRepo repository.ReminderRepository
	customerRepo repository.CustomerRepository
}

// NewReminderService creates a new reminder service
func NewReminderService(reminderRepo repository.ReminderRepository, customerRepo repository.CustomerRepository) *ReminderService {
	return &ReminderService{
		reminderRepo: reminderRepo,
		customerRepo: customerRepo,
	}
}

// CreateReminderInput represents the create reminder input
type CreateReminderInput struct {
	CustomerID uuid.UUID
	DueDate    time.Time
	Message    *string
}

// CreateReminder creates a payment reminder for a customer
func (s *ReminderService) CreateReminder(ctx context.Context, input *CreateReminderInput) (*entity.Reminder, error) {
	customer, err := s.customerRepo.GetByID(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	reminder := &entity.Reminder{
		CustomerID: input.CustomerID,
		DueDate:    input.DueDate,
		Message:    input.Message,
	}

	if err := s.reminderRepo.Create(ctx, reminder); err != nil {
		return nil, err
	}

	return reminder, nil
}

// ToggleReminder flips a reminder's completed flag
func (s *ReminderService) ToggleReminder(ctx context.Context, id uuid.UUID) (*entity.Reminder, error) {
	reminder, err := s.reminderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if reminder == nil {
		return nil, apperror.NewNotFoundError("Reminder")
	}

	reminder.IsCompleted = !reminder.IsCompleted
	if err := s.reminderRepo.Update(ctx, reminder); err != nil {
		return nil, err
	}

	return reminder, nil
}

// DeleteReminder deletes a reminder
func (s *ReminderService) DeleteReminder(ctx context.Context, id uuid.UUID) error {
	reminder, err := s.reminderRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if reminder == nil {
		return apperror.NewNotFoundError("Reminder")
	}

	return s.reminderRepo.Delete(ctx, id)
}

// ListByCustomer returns all reminders attached to a customer
func (s *ReminderService) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]entity.Reminder, error) {
	return s.reminderRepo.ListByCustomer(ctx, customerID)
}

// ListPending returns pending reminders across all customers, soonest first
func (s *ReminderService) ListPending(ctx context.Context) ([]entity.Reminder, error) {
	return s.reminderRepo.ListPending(ctx)
}
