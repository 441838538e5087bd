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

// InvoiceHandler handles invoice HTTP requests
type InvoiceHandler struct {
	invoiceService *service.InvoiceService
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(invoiceService *service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

// List handles listing invoices with optional type, search and date filters
func (h *InvoiceHandler) List(c *gin.Context) {
	params := &repository.InvoiceFilterParams{
		Pagination: getPaginationParams(c),
		Search:     c.Query("search"),
	}

	if typeStr := c.Query("type"); typeStr != "" {
		invoiceType := enum.InvoiceType(typeStr)
		if !invoiceType.Valid() {
			response.BadRequest(c, "Invalid invoice type")
			return
		}
		params.Type = &invoiceType
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

	result, err := h.invoiceService.ListInvoices(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Invoices retrieved successfully", result)
}

// Create handles creating an invoice with its lines
func (h *InvoiceHandler) Create(c *gin.Context) {
	var req struct {
		Type         enum.InvoiceType `json:"type" binding:"required"`
		Date         string           `json:"date"`
		CustomerName string           `json:"customer_name" binding:"required"`
		CustomerID   *uuid.UUID       `json:"customer_id"`
		SupplierID   *uuid.UUID       `json:"supplier_id"`
		Note         *string          `json:"note"`
		Items        []struct {
			ProductID uuid.UUID `json:"product_id" binding:"required"`
			Qty       float64   `json:"qty" binding:"required"`
			Price     *float64  `json:"price"`
			GSTRate   *float64  `json:"gst_rate"`
		} `json:"items" binding:"required"`
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

	lines := make([]service.InvoiceLineInput, 0, len(req.Items))
	for _, item := range req.Items {
		lines = append(lines, service.InvoiceLineInput{
			ProductID: item.ProductID,
			Qty:       item.Qty,
			Price:     item.Price,
			GSTRate:   item.GSTRate,
		})
	}

	invoice, err := h.invoiceService.CreateInvoice(c.Request.Context(), &service.CreateInvoiceInput{
		Type:         req.Type,
		Date:         date,
		CustomerName: req.CustomerName,
		CustomerID:   req.CustomerID,
		SupplierID:   req.SupplierID,
		Note:         req.Note,
		Lines:        lines,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Invoice created successfully", invoice)
}

// Get handles getting a single invoice with its items
func (h *InvoiceHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	invoice, err := h.invoiceService.GetInvoice(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice retrieved successfully", invoice)
}

// Delete handles deleting an invoice, restoring stock and removing the
// linked cash book entry
func (h *InvoiceHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	if err := h.invoiceService.DeleteInvoice(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
