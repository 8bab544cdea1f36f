package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tilekart/tilekart-api/internal/application/auth"
	"github.com/tilekart/tilekart-api/internal/application/billing"
	"github.com/tilekart/tilekart-api/internal/application/purchasing"
	"github.com/tilekart/tilekart-api/internal/application/usecase"
	"github.com/tilekart/tilekart-api/internal/domain/entity"
)

// RouterDeps carries the usecases the router wires to handlers.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	CustomerUC *billing.CustomerUseCase
	InvoiceUC  *billing.InvoiceUseCase
	DocumentUC *billing.DocumentUseCase
	ProfileUC  *billing.ProfileUseCase
	ProductUC  *usecase.ProductUseCase
	SupplierUC *purchasing.SupplierUseCase
	POUC       *purchasing.POUseCase
	JWTSecret  string
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Protected routes (require Bearer token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Business profile
	profileHandler := NewProfileHandler(deps.ProfileUC)
	protected.Get("/business-profile", profileHandler.Get)
	protected.Put("/business-profile",
		RequireRole(entity.RoleAdmin, entity.RoleManager), profileHandler.Upsert)

	// Customers
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", RequireRole(entity.RoleAdmin, entity.RoleManager), customerHandler.Delete)

	// Products
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)

	// Invoices + their downloadable documents
	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.DocumentUC)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Patch("/:id/status", invoiceHandler.UpdateStatus)
	invoices.Get("/:id/pdf", invoiceHandler.DownloadPDF)
	invoices.Get("/:id/xml", invoiceHandler.DownloadXML)

	// Suppliers
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)

	// Purchase orders
	pos := protected.Group("/purchase-orders",
		RequireRole(entity.RoleAdmin, entity.RoleManager))
	poHandler := NewPurchaseOrderHandler(deps.POUC)
	pos.Post("/", poHandler.Create)
	pos.Get("/", poHandler.List)
	pos.Get("/:id", poHandler.GetByID)
	pos.Get("/:id/pdf", poHandler.DownloadPDF)
}
