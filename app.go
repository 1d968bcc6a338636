package main

import (
	"context"
	"os"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"inventario/internal/config"
	"inventario/internal/database"
	"inventario/internal/handlers"
	"inventario/internal/middleware"
	"inventario/internal/repositories"
	"inventario/internal/services"
	"inventario/pkg/logger"
)

// NewApp wires repositories, services and handlers into a Fiber app.
func NewApp(cfg *config.Config, db *gorm.DB, log *logger.Logger) *fiber.App {
	store := repositories.NewGORMStore(db)

	// --- Services ---
	categoryService := services.NewCategoryService(store)
	productService := services.NewProductService(store)
	saleService := services.NewSaleService(store, services.WithLocation(cfg.Sales.Location))
	clientService := services.NewClientService(store)

	// --- Handlers ---
	categoryHandler := handlers.NewCategoryHandler(categoryService, log)
	productHandler := handlers.NewProductHandler(productService, log)
	saleHandler := handlers.NewSaleHandler(saleService, log)
	clientHandler := handlers.NewClientHandler(clientService, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	})

	// --- Middleware ---
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(middleware.RequestLogger(log))
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.HTTP.CORSOrigins}))

	if cfg.HTTP.SwaggerFile != "" {
		if _, err := os.Stat(cfg.HTTP.SwaggerFile); err == nil {
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: cfg.HTTP.SwaggerFile,
				Path:     "docs",
				Title:    cfg.App.Name,
			}))
		} else {
			log.Warn().Str("file", cfg.HTTP.SwaggerFile).Msg("swagger file not found, /docs disabled")
		}
	}

	// --- Health Check Endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()

		status, dbState := fiber.StatusOK, "up"
		if err := database.Ping(ctx, db); err != nil {
			log.Error().Err(err).Msg("health check: database ping failed")
			status, dbState = fiber.StatusServiceUnavailable, "down"
		}
		return c.Status(status).JSON(fiber.Map{
			"status":   "healthy",
			"database": dbState,
			"time":     time.Now().Format(time.RFC3339),
		})
	})

	// --- API Routes ---
	api := app.Group("/api")
	categoryHandler.RegisterRoutes(api)
	clientHandler.RegisterRoutes(api)
	productHandler.RegisterRoutes(api)
	saleHandler.RegisterRoutes(api)

	return app
}
