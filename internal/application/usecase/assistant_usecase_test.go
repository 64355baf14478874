package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assosa-edu/hrms-api/internal/application/usecase"
	"github.com/assosa-edu/hrms-api/internal/infrastructure/memory"
)

// llmFalso implementación del puerto LLM controlable desde los tests.
type llmFalso struct {
	texto    string
	err      error
	llamadas int
	prompt   string
	contexto string
}

func (f *llmFalso) GenerateAssistance(_ context.Context, prompt, systemContext string) (string, error) {
	f.llamadas++
	f.prompt = prompt
	f.contexto = systemContext
	return f.texto, f.err
}

func asistenteDePrueba(llm *llmFalso) *usecase.AssistantUseCase {
	store := memory.NewStore()
	store.Seed()
	return usecase.NewAssistantUseCase(
		llm,
		memory.NewEmployeeRepository(store),
		memory.NewDepartmentRepository(store),
	)
}

// Transporte forzado a fallar → exactamente el texto fijo de error, sin panic
// ni error propagado.
func TestAssistant_TransporteFallido_TextoFijoExacto(t *testing.T) {
	llm := &llmFalso{err: errors.New("conexión rechazada")}
	uc := asistenteDePrueba(llm)

	out := uc.Ask(context.Background(), "test")

	assert.Equal(t,
		"An error occurred while communicating with the HR Assistant. Please check your API key.",
		out)
	assert.Equal(t, 1, llm.llamadas, "exactamente una llamada saliente por invocación")
}

// Respuesta vacía del modelo → disculpa fija exacta.
func TestAssistant_RespuestaVacia_DisculpaFija(t *testing.T) {
	llm := &llmFalso{texto: "   "}
	uc := asistenteDePrueba(llm)

	out := uc.Ask(context.Background(), "test")

	assert.Equal(t,
		"I apologize, but I couldn't generate a response at this time.",
		out)
}

// Respuesta normal: se devuelve tal cual.
func TestAssistant_RespuestaNormal_PassThrough(t *testing.T) {
	llm := &llmFalso{texto: "Here is a draft job description."}
	uc := asistenteDePrueba(llm)

	out := uc.Ask(context.Background(), "Draft a job description")
	assert.Equal(t, "Here is a draft job description.", out)
	assert.Equal(t, "Draft a job description", llm.prompt)
}

// El snapshot lleva el total de empleados y los nombres de departamentos,
// nunca PII individual.
func TestAssistant_SnapshotDeContexto(t *testing.T) {
	llm := &llmFalso{texto: "ok"}
	uc := asistenteDePrueba(llm)

	_ = uc.Ask(context.Background(), "test")

	require.NotEmpty(t, llm.contexto)
	assert.Contains(t, llm.contexto, "Total Employees: 4.")
	assert.Contains(t, llm.contexto, "Computer Science, Engineering, Business & Economics, Human Resources")
	assert.Contains(t, llm.contexto, "Recent Request: User is asking about HR operations.")
	assert.NotContains(t, llm.contexto, "alemu@assosa.edu.et", "el snapshot no expone emails de empleados")
}
