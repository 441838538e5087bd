package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/vyaparhub/bahikhata-api/internal/application/service"
	"github.com/vyaparhub/bahikhata-api/internal/config"
	"github.com/vyaparhub/bahikhata-api/internal/infrastructure/database"
	"github.com/vyaparhub/bahikhata-api/internal/infrastructure/repository"
	"github.com/vyaparhub/bahikhata-api/internal/presentation/http/handler"
	"github.com/vyaparhub/bahikhata-api/internal/presentation/http/routes"
	"github.com/vyaparhub/bahikhata-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	txnRepo := repository.NewTransactionRepository(db)
	reminderRepo := repository.NewReminderRepository(db)
	productRepo := repository.NewProductRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	invoiceItemRepo := repository.NewInvoiceItemRepository(db)
	cashflowRepo := repository.NewCashflowRepository(db)
	visitorRepo := repository.NewVisitorRepository(db)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	customerService := service.NewCustomerService(customerRepo, txnRepo)
	supplierService := service.NewSupplierService(supplierRepo)
	ledgerService := service.NewLedgerService(txnRepo, customerRepo)
	reminderService := service.NewReminderService(reminderRepo, customerRepo)
	productService := service.NewProductService(productRepo)
	invoiceService := service.NewInvoiceService(invoiceRepo, invoiceItemRepo, productRepo, cashflowRepo, customerRepo, supplierRepo)
	cashflowService := service.NewCashflowService(cashflowRepo)
	visitorService := service.NewVisitorService(visitorRepo)
	reportService := service.NewReportService(invoiceRepo, cashflowRepo, productRepo)
	dashboardService := service.NewDashboardService(customerRepo, txnRepo, productRepo, invoiceRepo, reminderRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Customer:  handler.NewCustomerHandler(customerService),
		Supplier:  handler.NewSupplierHandler(supplierService),
		Ledger:    handler.NewLedgerHandler(ledgerService),
		Reminder:  handler.NewReminderHandler(reminderService),
		Product:   handler.NewProductHandler(productService),
		Invoice:   handler.NewInvoiceHandler(invoiceService),
		Cashflow:  handler.NewCashflowHandler(cashflowService),
		Visitor:   handler.NewVisitorHandler(visitorService),
		Report:    handler.NewReportHandler(reportService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
