package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/iqoooow/TERRA-ACADEMY/internal/api/http/handlers"
	"github.com/iqoooow/TERRA-ACADEMY/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Users          *handlers.UsersHandler
	Admin          *handlers.AdminHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/register", cfg.Users.Register)
	app.Post("/login", cfg.Users.Login)
	app.Post("/token/refresh", cfg.Users.Refresh)

	protected := app.Group("", cfg.AuthMiddleware.Handle, auth.RequireAuthenticated())
	protected.Get("/profile", cfg.Users.Profile)

	admin := protected.Group("/admin")
	admin.Get("/registration-requests", cfg.Admin.ListRegistrationRequests)
	admin.Post("/approve-user/:id", cfg.Admin.ApproveUser)
}
