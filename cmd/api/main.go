package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"golang.org/x/text/language"

	"github.com/tilekart/tilekart-api/internal/application/auth"
	"github.com/tilekart/tilekart-api/internal/application/billing"
	"github.com/tilekart/tilekart-api/internal/application/purchasing"
	"github.com/tilekart/tilekart-api/internal/application/usecase"
	"github.com/tilekart/tilekart-api/internal/domain/money"
	infrapdf "github.com/tilekart/tilekart-api/internal/infrastructure/pdf"
	"github.com/tilekart/tilekart-api/internal/infrastructure/postgres"
	"github.com/tilekart/tilekart-api/internal/infrastructure/ubl"
	httpRouter "github.com/tilekart/tilekart-api/internal/interfaces/http"
	"github.com/tilekart/tilekart-api/pkg/config"
	"github.com/tilekart/tilekart-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	profileRepo := postgres.NewBusinessProfileRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	poRepo := postgres.NewPurchaseOrderRepository(pool)

	// Document generators: gofpdf for the tax invoice, maroto for purchase
	// orders, etree for the UBL export.
	formatter := money.Formatter{
		Symbol: cfg.Invoice.CurrencySymbol,
		Locale: parseLocale(cfg.Invoice.Locale, log),
	}
	invoiceRenderer := infrapdf.NewRenderer(infrapdf.DefaultTheme(), formatter)
	poGenerator := infrapdf.NewPOGenerator(formatter)
	xmlBuilder := ubl.NewXMLBuilder()

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	customerUC := billing.NewCustomerUseCase(customerRepo)
	profileUC := billing.NewProfileUseCase(profileRepo)
	invoiceUC := billing.NewInvoiceUseCase(invoiceRepo, customerRepo)
	documentUC := billing.NewDocumentUseCase(invoiceRepo, customerRepo, profileRepo, invoiceRenderer, xmlBuilder)
	productUC := usecase.NewProductUseCase(productRepo)
	supplierUC := purchasing.NewSupplierUseCase(supplierRepo)
	poUC := purchasing.NewPOUseCase(poRepo, supplierRepo, profileRepo, poGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		CustomerUC: customerUC,
		InvoiceUC:  invoiceUC,
		DocumentUC: documentUC,
		ProfileUC:  profileUC,
		ProductUC:  productUC,
		SupplierUC: supplierUC,
		POUC:       poUC,
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, closing server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}

func parseLocale(tag string, log *logger.Logger) language.Tag {
	loc, err := language.Parse(tag)
	if err != nil {
		log.Warn().Str("locale", tag).Msg("invalid locale, falling back to en-IN")
		return money.LocaleIndia
	}
	return loc
}
