package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/vyaparhub/bahikhata-api/internal/application/service"
	"github.com/vyaparhub/bahikhata-api/internal/domain/repository"
	"github.com/vyaparhub/bahikhata-api/internal/presentation/http/dto/response"
)

// VisitorHandler handles visitor log HTTP requests
type VisitorHandler struct {
	visitorService *service.VisitorService
}

// NewVisitorHandler creates a new visitor handler
func NewVisitorHandler(visitorService *service.VisitorService) *VisitorHandler {
	return &VisitorHandler{visitorService: visitorService}
}

// List handles listing visitor entries
func (h *VisitorHandler) List(c *gin.Context) {
	params := &repository.VisitorFilterParams{
		Pagination: getPaginationParams(c),
		Search:     c.Query("search"),
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

	result, err := h.visitorService.ListVisitors(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Visitors retrieved successfully", result)
}

// Create handles logging a visitor entry
func (h *VisitorHandler) Create(c *gin.Context) {
	var req struct {
		Name      string  `json:"name" binding:"required"`
		Phone     *string `json:"phone"`
		Purpose   string  `json:"purpose"`
		VisitDate string  `json:"visit_date"`
		Note      *string `json:"note"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	var visitDate time.Time
	if req.VisitDate != "" {
		var err error
		visitDate, err = time.Parse("2006-01-02", req.VisitDate)
		if err != nil {
			response.BadRequest(c, "Invalid visit date, expected YYYY-MM-DD")
			return
		}
	}

	visitor, err := h.visitorService.CreateVisitor(c.Request.Context(), &service.CreateVisitorInput{
		Name:      req.Name,
		Phone:     req.Phone,
		Purpose:   req.Purpose,
		VisitDate: visitDate,
		Note:      req.Note,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Visitor logged successfully", visitor)
}

// Get handles getting a single visitor entry
func (h *VisitorHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid visitor ID")
		return
	}

	visitor, err := h.visitorService.GetVisitor(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Visitor retrieved successfully", visitor)
}

// Update handles updating a visitor entry
func (h *VisitorHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid visitor ID")
		return
	}

	var req struct {
		Name      *string `json:"name"`
		Phone     *string `json:"phone"`
		Purpose   *string `json:"purpose"`
		VisitDate *string `json:"visit_date"`
		Note      *string `json:"note"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.UpdateVisitorInput{
		ID:      id,
		Name:    req.Name,
		Phone:   req.Phone,
		Purpose: req.Purpose,
		Note:    req.Note,
	}
	if req.VisitDate != nil {
		visitDate, err := time.Parse("2006-01-02", *req.VisitDate)
		if err != nil {
			response.BadRequest(c, "Invalid visit date, expected YYYY-MM-DD")
			return
		}
		input.VisitDate = &visitDate
	}

	visitor, err := h.visitorService.UpdateVisitor(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Visitor updated successfully", visitor)
}

// Delete handles deleting a visitor entry
func (h *VisitorHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid visitor ID")
		return
	}

	if err := h.visitorService.DeleteVisitor(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
