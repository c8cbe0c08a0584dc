package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-config-service/internal/api/http/handlers"
	"github.com/spec-kit/helpdesk-config-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health           *handlers.HealthHandler
	Auth             *handlers.AuthHandler
	Configuration    *handlers.ConfigurationHandler
	TenantMiddleware *auth.TenantMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/health/metrics", cfg.Health.Metrics)

	app.Post("/auth/token", cfg.Auth.Token)

	api := app.Group("/api/v1", cfg.TenantMiddleware.Handle)
	api.Get("/field-configurations/:fieldName", cfg.Configuration.ResolveTenantField)
	api.Get("/customers/:customerId/field-configurations", cfg.Configuration.GetCustomerCompleteConfiguration)
	api.Get("/customers/:customerId/field-configurations/:fieldName", cfg.Configuration.ResolveCustomerField)
	api.Post("/customers/:customerId/field-configurations", cfg.Configuration.CreateOverride)
}
