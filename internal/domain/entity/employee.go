package entity

import "github.com/shopspring/decimal"

// Géneros válidos para Employee. Los literales vienen del contrato del API.
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
)

// Estados laborales válidos para Employee.
const (
	StatusActive     = "Active"
	StatusOnLeave    = "On Leave"
	StatusTerminated = "Terminated"
)

// Employee representa un empleado de la universidad.
// DepartmentID es una referencia débil a Department: puede estar vacía o apuntar
// a un departamento inexistente sin que eso sea un error de dominio.
type Employee struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	DepartmentID string
	Position     string
	Salary       decimal.Decimal // mensual, no negativo
	HireDate     string          // fecha calendario YYYY-MM-DD
	Gender       string          // Male, Female
	Status       string          // Active, On Leave, Terminated
}

// FullName devuelve "Nombre Apellido" para listados y reportes.
func (e Employee) FullName() string {
	if e.FirstName == "" {
		return e.LastName
	}
	if e.LastName == "" {
		return e.FirstName
	}
	return e.FirstName + " " + e.LastName
}

// EmployeePatch actualización parcial de un empleado. Los campos nil no se tocan;
// distinguir requerido vs opcional a nivel de tipo evita los "objetos parciales"
// sin forma del formulario original.
type EmployeePatch struct {
	FirstName    *string
	LastName     *string
	Email        *string
	Phone        *string
	DepartmentID *string
	Position     *string
	Salary       *decimal.Decimal
	HireDate     *string
	Gender       *string
	Status       *string
}
