package http_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assosa-edu/hrms-api/internal/domain/entity"
)

// Prompt no vacío → 200 con la prosa del asistente tal cual.
func TestAssistantHTTP_PromptValido_Retorna200(t *testing.T) {
	app, _, _ := buildAPIApp(t)
	token := loginAs(t, app, "admin", entity.RoleAdmin)

	resp := doJSON(t, app, http.MethodPost, "/api/assistant/ask", fiber.Map{
		"prompt": "How many employees are on leave?",
	}, token)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Response string `json:"response"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "ok", out.Response, "la respuesta del stub debe pasar sin tocar")
}

// Prompt vacío o solo espacios → 400 en el borde, sin llamada saliente.
func TestAssistantHTTP_PromptVacio_Retorna400(t *testing.T) {
	app, _, _ := buildAPIApp(t)
	token := loginAs(t, app, "admin", entity.RoleAdmin)

	resp := doJSON(t, app, http.MethodPost, "/api/assistant/ask", fiber.Map{"prompt": "   "}, token)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAssistantHTTP_SinToken_Retorna401(t *testing.T) {
	app, _, _ := buildAPIApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/assistant/ask", fiber.Map{"prompt": "hola"}, "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
