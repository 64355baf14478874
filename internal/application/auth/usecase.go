// Package auth implementa el caso de uso de sesión: fabricar la identidad al
// iniciar sesión, emitir el token y sostener la sesión vigente (a lo sumo una).
//
// Aquí NO se verifican credenciales: la comparación literal del password contra
// los dos valores fijos ocurre en la capa de presentación, y endurecerla es un
// no-goal explícito del sistema.
package auth

import (
	"sync"

	"github.com/google/uuid"

	"github.com/assosa-edu/hrms-api/internal/application/dto"
	"github.com/assosa-edu/hrms-api/internal/domain/entity"
	"github.com/assosa-edu/hrms-api/pkg/jwt"
)

// defaultAvatar avatar placeholder para toda sesión fabricada.
const defaultAvatar = "https://picsum.photos/200"

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase fabrica sesiones y sostiene la identidad vigente en memoria.
// Login nunca falla por el contenido de email/role: fabrica la sesión
// incondicionalmente con un id generado y un nombre derivado del rol.
type UseCase struct {
	jwtCfg JWTConfig

	mu      sync.Mutex
	current *entity.User // nil = sin sesión
}

// NewUseCase construye el caso de uso de sesión.
func NewUseCase(jwtCfg JWTConfig) *UseCase {
	return &UseCase{jwtCfg: jwtCfg}
}

// Login fabrica la sesión para el email y rol indicados, la registra como la
// sesión vigente y emite el token JWT que la transporta.
func (uc *UseCase) Login(email, role string) (*dto.LoginResponse, error) {
	name := "Employee User"
	if role == entity.RoleAdmin {
		name = "Administrator"
	}

	user := &entity.User{
		ID:     uuid.New().String(),
		Name:   name,
		Email:  email,
		Role:   role,
		Avatar: defaultAvatar,
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}

	uc.mu.Lock()
	uc.current = user
	uc.mu.Unlock()

	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

// Logout descarta la sesión vigente incondicionalmente.
func (uc *UseCase) Logout() {
	uc.mu.Lock()
	uc.current = nil
	uc.mu.Unlock()
}

// Current devuelve la identidad vigente o nil si no hay sesión.
func (uc *UseCase) Current() *dto.UserResponse {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.current == nil {
		return nil
	}
	return toUserResponse(uc.current)
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:     u.ID,
		Name:   u.Name,
		Email:  u.Email,
		Role:   u.Role,
		Avatar: u.Avatar,
	}
}
