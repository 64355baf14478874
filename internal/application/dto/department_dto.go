package dto

// CreateDepartmentRequest alta de departamento. head_of_department puede venir
// vacío (jefatura vacante). El contador de empleados no se acepta como entrada:
// es un agregado derivado que solo escribe el Entity Store.
type CreateDepartmentRequest struct {
	Name             string `json:"name"`
	HeadOfDepartment string `json:"head_of_department"`
}

// DepartmentResponse salida de un departamento.
type DepartmentResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	HeadOfDepartment string `json:"head_of_department"`
	EmployeeCount    int    `json:"employee_count"`
}

// DepartmentListResponse listado de departamentos.
type DepartmentListResponse struct {
	Items []DepartmentResponse `json:"items"`
}
