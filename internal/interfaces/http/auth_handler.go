package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/assosa-edu/hrms-api/internal/application/auth"
	"github.com/assosa-edu/hrms-api/internal/application/dto"
	"github.com/assosa-edu/hrms-api/internal/domain/entity"
)

// Credenciales fijas del sistema y el mensaje literal de rechazo. El cliente
// muestra el mensaje tal cual, de ahí que sea parte del contrato.
const (
	passwordAdmin    = "admin"
	passwordEmployee = "emp"

	invalidCredentialsMsg = `Invalid credentials (try password: "admin" or "emp")`
)

// AuthHandler maneja login, logout y la identidad en sesión.
type AuthHandler struct {
	uc *auth.UseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.UseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Iniciar sesión
// @Description  Comparación literal del password contra las dos credenciales
//               fijas del sistema ("admin" y "emp"). El email nunca se verifica;
//               el rol lo elige el usuario (ADMIN por defecto).
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password, role"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email y password son requeridos"})
	}

	// Chequeo literal: cualquier otro password se rechaza sin crear sesión.
	if in.Password != passwordAdmin && in.Password != passwordEmployee {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: invalidCredentialsMsg})
	}

	role := in.Role
	if role != entity.RoleEmployee {
		role = entity.RoleAdmin
	}

	out, err := h.uc.Login(in.Email, role)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Logout godoc
// @Summary      Cerrar sesión
// @Description  Descarta la sesión vigente incondicionalmente.
// @Tags         auth
// @Security     Bearer
// @Success      204
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.uc.Logout()
	return c.SendStatus(fiber.StatusNoContent)
}

// Me godoc
// @Summary      Identidad en sesión
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.UserResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user := h.uc.Current()
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "NO_SESSION", Message: "no hay sesión activa"})
	}
	return c.JSON(user)
}
