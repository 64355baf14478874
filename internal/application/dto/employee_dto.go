package dto

import "github.com/shopspring/decimal"

// CreateEmployeeRequest alta de empleado. Solo first_name y email son
// obligatorios (validación de presencia en la capa de presentación; el Entity
// Store no valida nada).
type CreateEmployeeRequest struct {
	FirstName    string          `json:"first_name"`
	LastName     string          `json:"last_name"`
	Email        string          `json:"email"`
	Phone        string          `json:"phone"`
	DepartmentID string          `json:"department_id"`
	Position     string          `json:"position"`
	Salary       decimal.Decimal `json:"salary"`
	HireDate     string          `json:"hire_date"` // YYYY-MM-DD
	Gender       string          `json:"gender"`    // Male, Female
	Status       string          `json:"status"`    // Active, On Leave, Terminated
}

// UpdateEmployeeRequest patch parcial: los campos ausentes (nil) no se tocan.
type UpdateEmployeeRequest struct {
	FirstName    *string          `json:"first_name"`
	LastName     *string          `json:"last_name"`
	Email        *string          `json:"email"`
	Phone        *string          `json:"phone"`
	DepartmentID *string          `json:"department_id"`
	Position     *string          `json:"position"`
	Salary       *decimal.Decimal `json:"salary"`
	HireDate     *string          `json:"hire_date"`
	Gender       *string          `json:"gender"`
	Status       *string          `json:"status"`
}

// EmployeeResponse salida de un empleado.
type EmployeeResponse struct {
	ID           string          `json:"id"`
	FirstName    string          `json:"first_name"`
	LastName     string          `json:"last_name"`
	Email        string          `json:"email"`
	Phone        string          `json:"phone"`
	DepartmentID string          `json:"department_id"`
	Position     string          `json:"position"`
	Salary       decimal.Decimal `json:"salary"`
	HireDate     string          `json:"hire_date"`
	Gender       string          `json:"gender"`
	Status       string          `json:"status"`
}

// EmployeeListResponse listado paginado de empleados.
type EmployeeListResponse struct {
	Items []EmployeeResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
