package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/assosa-edu/hrms-api/internal/application/auth"
	"github.com/assosa-edu/hrms-api/internal/application/usecase"
	infraai "github.com/assosa-edu/hrms-api/internal/infrastructure/ai"
	"github.com/assosa-edu/hrms-api/internal/infrastructure/memory"
	infrapdf "github.com/assosa-edu/hrms-api/internal/infrastructure/pdf"
	httpRouter "github.com/assosa-edu/hrms-api/internal/interfaces/http"
	"github.com/assosa-edu/hrms-api/pkg/config"
	"github.com/assosa-edu/hrms-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Entity Store en memoria con el dataset mock. Todo el estado es volátil:
	// reiniciar el proceso restaura la semilla.
	store := memory.NewStore()
	store.Seed()

	employeeRepo := memory.NewEmployeeRepository(store)
	departmentRepo := memory.NewDepartmentRepository(store)

	geminiSvc := infraai.NewGeminiService(cfg.AI.GeminiAPIKey, cfg.AI.GeminiModel)
	if cfg.AI.GeminiAPIKey == "" {
		log.Warn().Msg("GEMINI_API_KEY no configurada: el asistente responderá el texto de error fijo")
	}

	pdfGenerator := infrapdf.NewMarotoRosterGenerator()

	employeeUC := usecase.NewEmployeeUseCase(employeeRepo, departmentRepo, pdfGenerator)
	departmentUC := usecase.NewDepartmentUseCase(departmentRepo)
	dashboardUC := usecase.NewDashboardUseCase(employeeRepo, departmentRepo)
	assistantUC := usecase.NewAssistantUseCase(geminiSvc, employeeRepo, departmentRepo)
	authUC := auth.NewUseCase(auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30, // la llamada al asistente puede tardar
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	registerSwagger(app, log, "./docs/swagger.json")

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		EmployeeUC:   employeeUC,
		DepartmentUC: departmentUC,
		DashboardUC:  dashboardUC,
		AssistantUC:  assistantUC,
		AuthUC:       authUC,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// registerSwagger registra la UI de swagger solo si el archivo de la
// especificación existe. El middleware de contrib lee el archivo dentro de New
// y entra en pánico si falta; sin el archivo la aplicación arranca igual,
// solo sin /docs: ninguna condición es fatal para el proceso.
func registerSwagger(app *fiber.App, log *logger.Logger, filePath string) {
	if _, err := os.Stat(filePath); err != nil {
		log.Warn().Str("file", filePath).Msg("swagger.json no encontrado: UI de documentación deshabilitada")
		return
	}

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: filePath,
		Path:     "docs",
		Title:    "Assosa University HR API",
	}))
}
