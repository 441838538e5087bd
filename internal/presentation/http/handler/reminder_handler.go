package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/vyaparhub/bahikhata-api/internal/application/service"
	"github.com/vyaparhub/bahikhata-api/internal/presentation/http/dto/response"
)

// ReminderHandler handles payment reminder HTTP requests
type ReminderHandler struct {
	reminderService *service.ReminderService
}

// NewReminderHandler creates a new reminder handler
func NewReminderHandler(reminderService *service.ReminderService) *ReminderHandler {
	return &ReminderHandler{reminderService: reminderService}
}

// Create handles creating a reminder for a customer
func (h *ReminderHandler) Create(c *gin.Context) {
	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	var req struct {
		DueDate string  `json:"due_date" binding:"required"`
		Message *string `json:"message"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	dueDate, err := time.Parse("2006-01-02", req.DueDate)
	if err != nil {
		response.BadRequest(c, "Invalid due date, expected YYYY-MM-DD")
		return
	}

	reminder, err := h.reminderService.CreateReminder(c.Request.Context(), &service.CreateReminderInput{
		CustomerID: customerID,
		DueDate:    dueDate,
		Message:    req.Message,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Reminder created successfully", reminder)
}

// ListByCustomer handles listing a customer's reminders
func (h *ReminderHandler) ListByCustomer(c *gin.Context) {
	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	reminders, err := h.reminderService.ListByCustomer(c.Request.Context(), customerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Reminders retrieved successfully", reminders)
}

// ListPending handles listing pending reminders across all customers
func (h *ReminderHandler) ListPending(c *gin.Context) {
	reminders, err := h.reminderService.ListPending(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Pending reminders retrieved successfully", reminders)
}

// Toggle handles flipping a reminder's completed flag
func (h *ReminderHandler) Toggle(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid reminder ID")
		return
	}

	reminder, err := h.reminderService.ToggleReminder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Reminder updated successfully", reminder)
}

// Delete handles deleting a reminder
func (h *ReminderHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid reminder ID")
		return
	}

	if err := h.reminderService.DeleteReminder(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
