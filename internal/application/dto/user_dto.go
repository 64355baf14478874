package dto

// LoginRequest entrada para login. El password se compara literalmente contra
// las dos credenciales fijas del sistema; el role lo elige el usuario en el
// formulario (ADMIN por defecto).
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"` // ADMIN, EMPLOYEE
}

// UserResponse salida de la identidad en sesión.
type UserResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Avatar string `json:"avatar"`
}

// LoginResponse salida con token JWT y el usuario fabricado para la sesión.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
