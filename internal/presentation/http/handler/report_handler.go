package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/vyaparhub/bahikhata-api/internal/application/service"
	"github.com/vyaparhub/bahikhata-api/internal/presentation/http/dto/response"
)

// ReportHandler handles report HTTP requests
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// GSTSummary handles the GST position report. from/to are optional
// YYYY-MM-DD bounds, inclusive on both sides.
func (h *ReportHandler) GSTSummary(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")

	summary, err := h.reportService.GSTSummary(c.Request.Context(), from, to)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "GST summary retrieved successfully", summary)
}

// ProfitAndLoss handles the P&L statement report
func (h *ReportHandler) ProfitAndLoss(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")

	pnl, err := h.reportService.ProfitAndLoss(c.Request.Context(), from, to)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Profit and loss retrieved successfully", pnl)
}

// StockReport handles the inventory valuation report
func (h *ReportHandler) StockReport(c *gin.Context) {
	report, err := h.reportService.BuildStockReport(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Stock report retrieved successfully", report)
}

// DashboardHandler handles the dashboard summary HTTP request
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Stats handles the home screen summary
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.dashboardService.GetStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Dashboard stats retrieved successfully", stats)
}
