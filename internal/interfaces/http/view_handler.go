package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/assosa-edu/hrms-api/internal/application/dto"
	"github.com/assosa-edu/hrms-api/pkg/jwt"
)

// Vistas conocidas del cliente.
const (
	ViewDashboard   = "dashboard"
	ViewEmployees   = "employees"
	ViewDepartments = "departments"
	ViewAssistant   = "assistant"
	ViewLogin       = "login"
)

// ResolveView mapea un token de navegación a una vista. Un token vacío o
// desconocido resuelve al dashboard: navegar nunca es un error.
func ResolveView(name string) string {
	switch name {
	case ViewDashboard, ViewEmployees, ViewDepartments, ViewAssistant:
		return name
	default:
		return ViewDashboard
	}
}

// ViewHandler resuelve tokens de navegación. Es una ruta pública: sin sesión
// válida toda vista resuelve a login en lugar de responder 401.
type ViewHandler struct {
	jwtSecret string
}

// NewViewHandler construye el handler.
func NewViewHandler(jwtSecret string) *ViewHandler {
	return &ViewHandler{jwtSecret: jwtSecret}
}

// Resolve godoc
// @Summary      Resolver un token de navegación
// @Description  Token vacío o desconocido resuelve a dashboard. Sin un Bearer
//               token válido toda vista resuelve a login (nunca 401).
// @Tags         views
// @Produce      json
// @Param        name  path  string  false  "Token de vista"
// @Success      200   {object}  dto.ViewResponse
// @Router       /api/views/{name} [get]
func (h *ViewHandler) Resolve(c *fiber.Ctx) error {
	requested := c.Params("name")

	view := ResolveView(requested)
	if !h.hasValidSession(c) {
		view = ViewLogin
	}

	return c.JSON(dto.ViewResponse{Requested: requested, View: view})
}

// hasValidSession verifica el Bearer token sin rechazar la petición: aquí un
// token ausente o inválido solo cambia la vista resuelta.
func (h *ViewHandler) hasValidSession(c *fiber.Ctx) bool {
	authHeader := c.Get("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return false
	}
	_, _, err := jwt.Parse(h.jwtSecret, strings.TrimSpace(parts[1]))
	return err == nil
}
