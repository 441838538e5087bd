package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vyaparhub/bahikhata-api/internal/config"
	"github.com/vyaparhub/bahikhata-api/internal/presentation/http/handler"
	"github.com/vyaparhub/bahikhata-api/internal/presentation/http/middleware"
	"github.com/vyaparhub/bahikhata-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	Customer  *handler.CustomerHandler
	Supplier  *handler.SupplierHandler
	Ledger    *handler.LedgerHandler
	Reminder  *handler.ReminderHandler
	Product   *handler.ProductHandler
	Invoice   *handler.InvoiceHandler
	Cashflow  *handler.CashflowHandler
	Visitor   *handler.VisitorHandler
	Report    *handler.ReportHandler
	Dashboard *handler.DashboardHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	Cfg        *config.Config
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-user rate limiter
		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/register", h.Auth.Register)
		auth.POST("/refresh", h.Auth.Refresh)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers) {
	// Profile routes
	protected.GET("/profile", h.Auth.Profile)
	protected.PUT("/profile", h.Auth.UpdateProfile)
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	// Dashboard
	protected.GET("/dashboard", h.Dashboard.Stats)

	registerCustomerRoutes(protected, h)
	registerSupplierRoutes(protected, h)
	registerLedgerRoutes(protected, h)
	registerReminderRoutes(protected, h)
	registerProductRoutes(protected, h)
	registerInvoiceRoutes(protected, h)
	registerCashflowRoutes(protected, h)
	registerVisitorRoutes(protected, h)
	registerReportRoutes(protected, h)
}

func registerCustomerRoutes(protected *gin.RouterGroup, h *Handlers) {
	customers := protected.Group("/customers")
	{
		customers.GET("", h.Customer.List)
		customers.POST("", h.Customer.Create)
		customers.GET("/:id", h.Customer.Get)
		customers.PUT("/:id", h.Customer.Update)
		customers.DELETE("/:id", h.Customer.Delete)

		// Khata entries and reminders nested under the customer
		customers.GET("/:id/ledger", h.Ledger.GetCustomerLedger)
		customers.POST("/:id/transactions", h.Ledger.AddTransaction)
		customers.GET("/:id/reminders", h.Reminder.ListByCustomer)
		customers.POST("/:id/reminders", h.Reminder.Create)
	}
}

func registerSupplierRoutes(protected *gin.RouterGroup, h *Handlers) {
	suppliers := protected.Group("/suppliers")
	{
		suppliers.GET("", h.Supplier.List)
		suppliers.POST("", h.Supplier.Create)
		suppliers.GET("/:id", h.Supplier.Get)
		suppliers.PUT("/:id", h.Supplier.Update)
		suppliers.DELETE("/:id", h.Supplier.Delete)
	}
}

func registerLedgerRoutes(protected *gin.RouterGroup, h *Handlers) {
	transactions := protected.Group("/transactions")
	{
		transactions.GET("/search", h.Ledger.Search)
		transactions.GET("/summary", h.Ledger.Summary)
		transactions.DELETE("/:id", h.Ledger.DeleteTransaction)
	}
}

func registerReminderRoutes(protected *gin.RouterGroup, h *Handlers) {
	reminders := protected.Group("/reminders")
	{
		reminders.GET("/pending", h.Reminder.ListPending)
		reminders.PATCH("/:id/toggle", h.Reminder.Toggle)
		reminders.DELETE("/:id", h.Reminder.Delete)
	}
}

func registerProductRoutes(protected *gin.RouterGroup, h *Handlers) {
	products := protected.Group("/products")
	{
		products.GET("", h.Product.List)
		products.POST("", h.Product.Create)
		products.GET("/low-stock", h.Product.LowStock)
		products.GET("/:id", h.Product.Get)
		products.PUT("/:id", h.Product.Update)
		products.DELETE("/:id", h.Product.Delete)
	}
}

func registerInvoiceRoutes(protected *gin.RouterGroup, h *Handlers) {
	invoices := protected.Group("/invoices")
	{
		invoices.GET("", h.Invoice.List)
		invoices.POST("", h.Invoice.Create)
		invoices.GET("/:id", h.Invoice.Get)
		invoices.DELETE("/:id", h.Invoice.Delete)
	}
}

func registerCashflowRoutes(protected *gin.RouterGroup, h *Handlers) {
	cashflow := protected.Group("/cashflow")
	{
		cashflow.GET("", h.Cashflow.List)
		cashflow.POST("", h.Cashflow.Create)
		cashflow.GET("/summary", h.Cashflow.Summary)
		cashflow.GET("/:id", h.Cashflow.Get)
		cashflow.PUT("/:id", h.Cashflow.Update)
		cashflow.DELETE("/:id", h.Cashflow.Delete)
	}
}

func registerVisitorRoutes(protected *gin.RouterGroup, h *Handlers) {
	visitors := protected.Group("/visitors")
	{
		visitors.GET("", h.Visitor.List)
		visitors.POST("", h.Visitor.Create)
		visitors.GET("/:id", h.Visitor.Get)
		visitors.PUT("/:id", h.Visitor.Update)
		visitors.DELETE("/:id", h.Visitor.Delete)
	}
}

func registerReportRoutes(protected *gin.RouterGroup, h *Handlers) {
	reports := protected.Group("/reports")
	{
		reports.GET("/gst", h.Report.GSTSummary)
		reports.GET("/profit-loss", h.Report.ProfitAndLoss)
		reports.GET("/stock", h.Report.StockReport)
	}
}
