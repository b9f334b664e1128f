package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/school-admin-service/internal/api/http/handlers"
	"github.com/spec-kit/school-admin-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Accounts       *handlers.AccountsHandler
	Students       *handlers.StudentsHandler
	Fees           *handlers.FeesHandler
	Library        *handlers.LibraryHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes. The role prefixes only select which
// capability a route demands; enforcement happens in the capability
// middleware, never in handlers.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api/v1")

	authGroup := api.Group("/auth")
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/refresh", cfg.Auth.Refresh)
	authGroup.Post("/logout", cfg.Auth.Logout)
	authGroup.Post("/change-password", cfg.AuthMiddleware.Handle, cfg.Auth.ChangePassword)

	admin := api.Group("/admin", cfg.AuthMiddleware.Handle)
	admin.Post("/office-staff", auth.RequireCapability(auth.CapAccountCreate), cfg.Accounts.CreateOfficeStaff)
	admin.Post("/librarians", auth.RequireCapability(auth.CapAccountCreate), cfg.Accounts.CreateLibrarian)
	admin.Get("/accounts/:id", auth.RequireCapability(auth.CapAccountUpdate), cfg.Accounts.Get)
	admin.Put("/accounts/:id", auth.RequireCapability(auth.CapAccountUpdate), cfg.Accounts.Update)
	admin.Delete("/accounts/:id", auth.RequireCapability(auth.CapAccountDelete), cfg.Accounts.Delete)

	admin.Post("/students", auth.RequireCapability(auth.CapStudentCreate), cfg.Students.Create)
	admin.Get("/students", auth.RequireCapability(auth.CapStudentRead), cfg.Students.List)
	admin.Get("/students/:id", auth.RequireCapability(auth.CapStudentRead), cfg.Students.Get)
	admin.Put("/students/:id", auth.RequireCapability(auth.CapStudentUpdate), cfg.Students.Update)
	admin.Delete("/students/:id", auth.RequireCapability(auth.CapStudentDelete), cfg.Students.Delete)

	admin.Post("/fees-history", auth.RequireCapability(auth.CapFeesCreate), cfg.Fees.Create)
	admin.Get("/fees-history/student/:studentID", auth.RequireCapability(auth.CapFeesRead), cfg.Fees.ListByStudent)
	admin.Get("/fees-history/:id", auth.RequireCapability(auth.CapFeesRead), cfg.Fees.Get)
	admin.Put("/fees-history/:id", auth.RequireCapability(auth.CapFeesUpdate), cfg.Fees.Update)
	admin.Delete("/fees-history/:id", auth.RequireCapability(auth.CapFeesDelete), cfg.Fees.Delete)

	admin.Post("/library-history", auth.RequireCapability(auth.CapLibraryCreate), cfg.Library.Create)
	admin.Get("/library-history/student/:studentID", auth.RequireCapability(auth.CapLibraryRead), cfg.Library.ListByStudent)
	admin.Get("/library-history/:id", auth.RequireCapability(auth.CapLibraryRead), cfg.Library.Get)
	admin.Put("/library-history/:id", auth.RequireCapability(auth.CapLibraryUpdate), cfg.Library.Update)
	admin.Delete("/library-history/:id", auth.RequireCapability(auth.CapLibraryDelete), cfg.Library.Delete)

	staff := api.Group("/staff", cfg.AuthMiddleware.Handle)
	staff.Get("/students", auth.RequireCapability(auth.CapStudentRead), cfg.Students.List)
	staff.Get("/students/:id", auth.RequireCapability(auth.CapStudentRead), cfg.Students.Get)
	staff.Post("/fees-history", auth.RequireCapability(auth.CapFeesCreate), cfg.Fees.Create)
	staff.Get("/fees-history/student/:studentID", auth.RequireCapability(auth.CapFeesRead), cfg.Fees.ListByStudent)
	staff.Get("/fees-history/:id", auth.RequireCapability(auth.CapFeesRead), cfg.Fees.Get)
	staff.Put("/fees-history/:id", auth.RequireCapability(auth.CapFeesUpdate), cfg.Fees.Update)
	staff.Delete("/fees-history/:id", auth.RequireCapability(auth.CapFeesDelete), cfg.Fees.Delete)
	staff.Get("/library-history/student/:studentID", auth.RequireCapability(auth.CapLibraryRead), cfg.Library.ListByStudent)

	librarian := api.Group("/librarian", cfg.AuthMiddleware.Handle)
	librarian.Get("/students", auth.RequireCapability(auth.CapStudentRead), cfg.Students.List)
	librarian.Get("/students/:id", auth.RequireCapability(auth.CapStudentRead), cfg.Students.Get)
	librarian.Post("/library-history", auth.RequireCapability(auth.CapLibraryCreate), cfg.Library.Create)
	librarian.Put("/library-history/:id", auth.RequireCapability(auth.CapLibraryUpdate), cfg.Library.Update)
}
