package entity

// Roles válidos para User. Los literales vienen del contrato del API.
const (
	RoleAdmin    = "ADMIN"
	RoleEmployee = "EMPLOYEE"
)

// User representa la identidad con sesión iniciada. Solo existe mientras dura
// la sesión; no se persiste en ningún lado.
type User struct {
	ID     string
	Name   string
	Email  string
	Role   string // ADMIN, EMPLOYEE
	Avatar string
}
