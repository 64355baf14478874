package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/assosa-edu/hrms-api/internal/application/auth"
	"github.com/assosa-edu/hrms-api/internal/application/usecase"
	"github.com/assosa-edu/hrms-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	EmployeeUC   *usecase.EmployeeUseCase
	DepartmentUC *usecase.DepartmentUseCase
	DashboardUC  *usecase.DashboardUseCase
	AssistantUC  *usecase.AssistantUseCase
	AuthUC       *auth.UseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (login público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", AuthMiddleware(deps.JWTSecret), authHandler.Logout)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)

	// Views (público: sin sesión resuelve a login, nunca 401)
	viewHandler := NewViewHandler(deps.JWTSecret)
	api.Get("/views", viewHandler.Resolve)
	api.Get("/views/:name", viewHandler.Resolve)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	adminOnly := RequireRole(entity.RoleAdmin)

	// Employees (lecturas para cualquier sesión; mutaciones solo ADMIN)
	employees := protected.Group("/employees")
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employees.Get("/", employeeHandler.List)
	employees.Get("/export", employeeHandler.Export)
	employees.Get("/:id", employeeHandler.GetByID)
	employees.Post("/", adminOnly, employeeHandler.Create)
	employees.Put("/:id", adminOnly, employeeHandler.Update)
	employees.Delete("/:id", adminOnly, employeeHandler.Delete)

	// Departments
	departments := protected.Group("/departments")
	departmentHandler := NewDepartmentHandler(deps.DepartmentUC)
	departments.Get("/", departmentHandler.List)
	departments.Get("/:id", departmentHandler.GetByID)
	departments.Post("/", adminOnly, departmentHandler.Create)

	// Dashboard
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.Summary)

	// Assistant
	assistant := protected.Group("/assistant")
	assistantHandler := NewAssistantHandler(deps.AssistantUC)
	assistant.Post("/ask", assistantHandler.Ask)
}
