package entity

// Department representa un departamento académico o administrativo.
//
// EmployeeCount es un agregado derivado: lo mantiene el Entity Store de forma
// incremental en cada mutación de empleados y nunca lo escribe un caller
// directamente. HeadOfDepartment vacío significa jefatura vacante.
type Department struct {
	ID               string
	Name             string
	HeadOfDepartment string
	EmployeeCount    int // derivado, >= 0 siempre
}
