package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/aidrp-service/internal/api/http/handlers"
	"github.com/spec-kit/aidrp-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Users          *handlers.UsersHandler
	Courses        *handlers.CoursesHandler
	Lessons        *handlers.LessonsHandler
	Incidents      *handlers.IncidentsHandler
	Sensors        *handlers.SensorsHandler
	Notifications  *handlers.NotificationsHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)

	authProtected := authGroup.Group("", cfg.AuthMiddleware.Handle)
	authProtected.Get("/profile", cfg.Auth.Profile)
	authProtected.Post("/logout", cfg.Auth.Logout)
	authProtected.Post("/password/change", cfg.Auth.ChangePassword)

	admin := app.Group("/admin", cfg.AuthMiddleware.Handle, auth.RequireAdmin())
	admin.Get("/users", cfg.Users.List)
	admin.Get("/users/:id", cfg.Users.Get)
	admin.Put("/users/:id", cfg.Users.Update)
	admin.Delete("/users/:id", cfg.Users.Delete)
	admin.Post("/notifications", cfg.Notifications.Create)
	admin.Get("/notifications", cfg.Notifications.List)
	admin.Delete("/notifications/:id", cfg.Notifications.Delete)

	courses := app.Group("/courses")
	courses.Get("/", cfg.Courses.List)
	courses.Get("/enrolled", cfg.AuthMiddleware.Handle, cfg.Courses.Enrolled)
	courses.Post("/", cfg.AuthMiddleware.Handle, auth.RequireAdmin(), cfg.Courses.Create)
	courses.Put("/:id", cfg.AuthMiddleware.Handle, auth.RequireAdmin(), cfg.Courses.Update)
	courses.Delete("/:id", cfg.AuthMiddleware.Handle, auth.RequireAdmin(), cfg.Courses.Delete)
	courses.Post("/:id/modules", cfg.AuthMiddleware.Handle, auth.RequireAdmin(), cfg.Courses.AddModule)
	courses.Post("/:id/enroll", cfg.AuthMiddleware.Handle, cfg.Courses.Enroll)

	lessons := app.Group("/lessons", cfg.AuthMiddleware.Handle)
	lessons.Post("/modules/:moduleID", auth.RequireAdmin(), cfg.Lessons.Create)
	lessons.Get("/modules/:moduleID", cfg.Lessons.List)

	incidents := app.Group("/incidents", cfg.AuthMiddleware.Handle)
	incidents.Post("/", auth.RequireAdmin(), cfg.Incidents.Create)
	incidents.Get("/", cfg.Incidents.List)
	incidents.Get("/:id", cfg.Incidents.Get)
	incidents.Post("/:id/assign", auth.RequireAdmin(), cfg.Incidents.Assign)
	incidents.Delete("/:id", auth.RequireAdmin(), cfg.Incidents.Delete)

	sensors := app.Group("/sensors", cfg.AuthMiddleware.Handle)
	sensors.Post("/", auth.RequireAdmin(), cfg.Sensors.Create)
	sensors.Get("/", cfg.Sensors.List)
	sensors.Get("/:id", cfg.Sensors.Get)
	sensors.Post("/:id/heartbeat", cfg.Sensors.Heartbeat)
	sensors.Delete("/:id", auth.RequireAdmin(), cfg.Sensors.Delete)
}
