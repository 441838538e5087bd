package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/vyaparhub/bahikhata-api/internal/application/service"
	"github.com/vyaparhub/bahikhata-api/internal/domain/enum"
	"github.com/vyaparhub/bahikhata-api/internal/domain/repository"
	"github.com/vyaparhub/bahikhata-api/internal/presentation/http/dto/response"
)

// CashflowHandler handles cash book HTTP requests
type CashflowHandler struct {
	cashflowService *service.CashflowService
}

// NewCashflowHandler creates a new cashflow handler
func NewCashflowHandler(cashflowService *service.CashflowService) *CashflowHandler {
	return &CashflowHandler{cashflowService: cashflowService}
}

// List handles listing cash book entries with optional filters
func (h *CashflowHandler) List(c *gin.Context) {
	params := &repository.CashflowFilterParams{
		Pagination: getPaginationParams(c),
		Search:     c.Query("search"),
		Category:   c.Query("category"),
	}

	if kindStr := c.Query("kind"); kindStr != "" {
		kind := enum.CashflowKind(kindStr)
		if !kind.Valid() {
			response.BadRequest(c, "Invalid cashflow kind")
			return
		}
		params.Kind = &kind
	}

	var ok bool
	if params.StartDate, ok = parseDateQuery(c, "start_date"); !ok {
		response.BadRequest(c, "Invalid start date, expected YYYY-MM-DD")
		return
	}
	if params.EndDate, ok = parseDateQuery(c, "end_date"); !ok {
		response.BadRequest(c, "Invalid end date, expected YYYY-MM-DD")
		return
	}

	result, err := h.cashflowService.ListEntries(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Cashflow entries retrieved successfully", result)
}

// Create handles recording a manual income or expense entry
func (h *CashflowHandler) Create(c *gin.Context) {
	var req struct {
		Kind     enum.CashflowKind `json:"kind" binding:"required"`
		Date     string            `json:"date"`
		Category string            `json:"category" binding:"required"`
		Amount   float64           `json:"amount" binding:"required"`
		Note     *string           `json:"note"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	var date time.Time
	if req.Date != "" {
		var err error
		date, err = time.Parse("2006-01-02", req.Date)
		if err != nil {
			response.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
			return
		}
	}

	entry, err := h.cashflowService.CreateEntry(c.Request.Context(), &service.CreateEntryInput{
		Kind:     req.Kind,
		Date:     date,
		Category: req.Category,
		Amount:   req.Amount,
		Note:     req.Note,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Cashflow entry recorded successfully", entry)
}

// Get handles getting a single cash book entry
func (h *CashflowHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid entry ID")
		return
	}

	entry, err := h.cashflowService.GetEntry(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cashflow entry retrieved successfully", entry)
}

// Update handles editing a manual cash book entry
func (h *CashflowHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid entry ID")
		return
	}

	var req struct {
		Kind     *enum.CashflowKind `json:"kind"`
		Date     *string            `json:"date"`
		Category *string            `json:"category"`
		Amount   *float64           `json:"amount"`
		Note     *string            `json:"note"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.UpdateEntryInput{
		Kind:     req.Kind,
		Category: req.Category,
		Amount:   req.Amount,
		Note:     req.Note,
	}
	if req.Date != nil {
		date, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			response.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
			return
		}
		input.Date = &date
	}

	entry, err := h.cashflowService.UpdateEntry(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cashflow entry updated successfully", entry)
}

// Delete handles deleting a manual cash book entry
func (h *CashflowHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid entry ID")
		return
	}

	if err := h.cashflowService.DeleteEntry(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// Summary handles the period cash book roll-up
func (h *CashflowHandler) Summary(c *gin.Context) {
	startDate, ok := parseDateQuery(c, "start_date")
	if !ok {
		response.BadRequest(c, "Invalid start date, expected YYYY-MM-DD")
		return
	}
	endDate, ok := parseDateQuery(c, "end_date")
	if !ok {
		response.BadRequest(c, "Invalid end date, expected YYYY-MM-DD")
		return
	}

	summary, err := h.cashflowService.Summarize(c.Request.Context(), startDate, endDate)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cashflow summary retrieved successfully", summary)
}
