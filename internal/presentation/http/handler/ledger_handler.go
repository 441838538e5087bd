package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/vyaparhub/bahikhata-api/internal/application/service"
	"github.com/vyaparhub/bahikhata-api/internal/domain/enum"
	"github.com/vyaparhub/bahikhata-api/internal/presentation/http/dto/response"
)

// LedgerHandler handles khata transaction HTTP requests
type LedgerHandler struct {
	ledgerService *service.LedgerService
}

// NewLedgerHandler creates a new ledger handler
func NewLedgerHandler(ledgerService *service.LedgerService) *LedgerHandler {
	return &LedgerHandler{ledgerService: ledgerService}
}

// AddTransaction handles posting a credit or debit entry
func (h *LedgerHandler) AddTransaction(c *gin.Context) {
	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	var req struct {
		Type   enum.TransactionType `json:"type" binding:"required"`
		Amount float64              `json:"amount" binding:"required"`
		Date   string               `json:"date"`
		Note   *string              `json:"note"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	var date time.Time
	if req.Date != "" {
		date, err = time.Parse("2006-01-02", req.Date)
		if err != nil {
			response.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
			return
		}
	}

	txn, err := h.ledgerService.AddTransaction(c.Request.Context(), &service.AddTransactionInput{
		CustomerID: customerID,
		Type:       req.Type,
		Amount:     req.Amount,
		Date:       date,
		Note:       req.Note,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Transaction recorded successfully", txn)
}

// GetCustomerLedger handles retrieving a customer's khata with its summary
func (h *LedgerHandler) GetCustomerLedger(c *gin.Context) {
	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	ledger, err := h.ledgerService.GetCustomerLedger(c.Request.Context(), customerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Ledger retrieved successfully", ledger)
}

// DeleteTransaction handles removing a single ledger entry
func (h *LedgerHandler) DeleteTransaction(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid transaction ID")
		return
	}

	if err := h.ledgerService.DeleteTransaction(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// Summary handles the overall position across every khata
func (h *LedgerHandler) Summary(c *gin.Context) {
	summary, err := h.ledgerService.GetOverallSummary(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Summary retrieved successfully", summary)
}

// Search handles free-text search across all transactions
func (h *LedgerHandler) Search(c *gin.Context) {
	query := c.Query("q")

	results, err := h.ledgerService.SearchTransactions(c.Request.Context(), query)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Transactions retrieved successfully", results)
}
