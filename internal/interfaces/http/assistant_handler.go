package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/assosa-edu/hrms-api/internal/application/dto"
	"github.com/assosa-edu/hrms-api/internal/application/usecase"
)

// AssistantHandler expone el asistente de RR.HH.
type AssistantHandler struct {
	uc *usecase.AssistantUseCase
}

// NewAssistantHandler construye el handler.
func NewAssistantHandler(uc *usecase.AssistantUseCase) *AssistantHandler {
	return &AssistantHandler{uc: uc}
}

// Ask godoc
// @Summary      Consultar al asistente de RR.HH.
// @Description  Envía el prompt al modelo generativo con el contexto vigente del
//               sistema. La respuesta siempre es prosa (HTTP 200): los fallos del
//               servicio externo llegan ya normalizados a un texto fijo.
// @Tags         assistant
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AskRequest  true  "prompt"
// @Success      200   {object}  dto.AskResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/assistant/ask [post]
func (h *AssistantHandler) Ask(c *fiber.Ctx) error {
	var in dto.AskRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if strings.TrimSpace(in.Prompt) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "prompt es requerido"})
	}

	text := h.uc.Ask(c.Context(), in.Prompt)
	return c.JSON(dto.AskResponse{Response: text})
}
