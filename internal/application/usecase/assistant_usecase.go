package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/assosa-edu/hrms-api/internal/application/ports"
	"github.com/assosa-edu/hrms-api/internal/domain/repository"
)

// Textos fijos del contrato del asistente. Deben devolverse bit a bit: el
// cliente los compara literalmente.
const (
	assistantEmptyFallback = "I apologize, but I couldn't generate a response at this time."
	assistantErrorFallback = "An error occurred while communicating with the HR Assistant. Please check your API key."
)

// askTimeout tope por llamada al LLM; las latencias externas no deben
// bloquear los goroutines del servidor.
const askTimeout = 15 * time.Second

// AssistantUseCase orquesta el asistente de RR.HH.: arma el snapshot de
// contexto desde el Entity Store, delega en el puerto LLM y normaliza
// cualquier fallo a un texto fijo. Ask nunca devuelve error al caller.
type AssistantUseCase struct {
	llm            ports.LLMService
	employeeRepo   repository.EmployeeRepository
	departmentRepo repository.DepartmentRepository
}

// NewAssistantUseCase construye el caso de uso inyectando el puerto LLM y las
// lecturas del store.
func NewAssistantUseCase(
	llm ports.LLMService,
	employeeRepo repository.EmployeeRepository,
	departmentRepo repository.DepartmentRepository,
) *AssistantUseCase {
	return &AssistantUseCase{
		llm:            llm,
		employeeRepo:   employeeRepo,
		departmentRepo: departmentRepo,
	}
}

// Ask envía el prompt al asistente con el snapshot vigente del sistema.
// Siempre devuelve prosa: error de transporte/servicio → texto fijo de error;
// respuesta vacía → disculpa fija. Una llamada saliente por invocación, sin
// reintentos ni deduplicación.
func (uc *AssistantUseCase) Ask(ctx context.Context, prompt string) string {
	snapshot := uc.contextSnapshot(ctx)

	ctx, cancel := context.WithTimeout(ctx, askTimeout)
	defer cancel()

	text, err := uc.llm.GenerateAssistance(ctx, prompt, snapshot)
	if err != nil {
		return assistantErrorFallback
	}
	if strings.TrimSpace(text) == "" {
		return assistantEmptyFallback
	}
	return text
}

// contextSnapshot resume el estado vigente para la instrucción de sistema:
// total de empleados y nombres de departamentos, sin PII individual. Si el
// store no puede leerse, el snapshot sale vacío y la llamada sigue.
func (uc *AssistantUseCase) contextSnapshot(ctx context.Context) string {
	employees, err := uc.employeeRepo.List(ctx)
	if err != nil {
		return ""
	}
	departments, err := uc.departmentRepo.List(ctx)
	if err != nil {
		return ""
	}

	names := make([]string, 0, len(departments))
	for _, d := range departments {
		names = append(names, d.Name)
	}

	return fmt.Sprintf(
		"Total Employees: %d.\nDepartments: %s.\nRecent Request: User is asking about HR operations.",
		len(employees), strings.Join(names, ", "),
	)
}
