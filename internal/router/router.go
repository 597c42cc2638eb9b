package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/campushq/placement-api/internal/config"
	"github.com/campushq/placement-api/internal/handler"
	"github.com/campushq/placement-api/internal/middleware"
	"github.com/campushq/placement-api/internal/service"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	AuthHandler        *handler.AuthHandler
	LookupHandler      *handler.LookupHandler
	JobHandler         *handler.JobHandler
	ApplicationHandler *handler.ApplicationHandler
	AdminHandler       *handler.AdminHandler
	StudentHandler     *handler.StudentHandler
	JWTMiddleware      fiber.Handler
}

// Register wires the HTTP routes into the fiber application. Registration,
// login and the form lookups are public; everything else sits behind the JWT
// guard. Role guards are attached per route rather than per group: fiber
// registers group handlers as prefix-wide middleware, so a second guarded
// group on the same /api prefix would run its guard on every route
// registered after it.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	api := app.Group("/api", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg))

	if deps.LookupHandler != nil {
		deps.LookupHandler.Register(api)
	}
	if deps.AuthHandler != nil {
		deps.AuthHandler.Register(api)
	}

	jwtMiddleware := deps.JWTMiddleware
	if jwtMiddleware == nil {
		jwtMiddleware = func(c *fiber.Ctx) error { return c.Next() }
	}

	protected := app.Group("/api", jwtMiddleware)
	studentGuard := middleware.RequireRole(service.RoleStudent, service.RoleAdmin)
	adminGuard := middleware.RequireRole(service.RoleAdmin)

	if deps.JobHandler != nil {
		deps.JobHandler.Register(protected, studentGuard)
	}
	if deps.StudentHandler != nil {
		deps.StudentHandler.Register(protected, studentGuard)
	}
	if deps.ApplicationHandler != nil {
		deps.ApplicationHandler.Register(protected, studentGuard, adminGuard)
	}
	if deps.AdminHandler != nil {
		deps.AdminHandler.Register(protected, adminGuard)
	}
}
