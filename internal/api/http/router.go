package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/catalog-service/internal/api/http/handlers"
	"github.com/spec-kit/catalog-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Products       *handlers.ProductsHandler
	Categories     *handlers.CategoriesHandler
	Status         *handlers.StatusHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes. Mutating product routes and the verify
// endpoint sit behind the auth gate; reads and login are public.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")
	api.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Hello World"})
	})

	api.Post("/status", cfg.Status.Create)
	api.Get("/status", cfg.Status.List)

	admin := api.Group("/admin")
	admin.Post("/login", cfg.Auth.Login)
	admin.Get("/verify", cfg.AuthMiddleware.Handle, cfg.Auth.Verify)

	api.Get("/products", cfg.Products.List)
	api.Get("/products/:id", cfg.Products.Get)

	protected := api.Group("/products", cfg.AuthMiddleware.Handle)
	protected.Post("", cfg.Products.Create)
	protected.Put("/:id", cfg.Products.Update)
	protected.Delete("/:id", cfg.Products.Delete)

	api.Get("/categories", cfg.Categories.List)
}
