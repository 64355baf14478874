package memory

import (
	"github.com/shopspring/decimal"

	"github.com/assosa-edu/hrms-api/internal/domain/entity"
)

// Seed carga el dataset mock de Assosa University. Reemplaza cualquier estado
// previo; pensado para llamarse una sola vez al arrancar la aplicación.
//
// Los contadores sembrados (12/24/15/5) no coinciden a propósito con los 4
// empleados sembrados: modelan plantilla que existe fuera de esta lista. El
// invariante del contador se define sobre las mutaciones posteriores, no sobre
// la semilla.
func (s *Store) Seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.departments = []entity.Department{
		{ID: "1", Name: "Computer Science", HeadOfDepartment: "Dr. Abebe Kebede", EmployeeCount: 12},
		{ID: "2", Name: "Engineering", HeadOfDepartment: "Eng. Sarah Ahmed", EmployeeCount: 24},
		{ID: "3", Name: "Business & Economics", HeadOfDepartment: "Mr. Dawit Tadesse", EmployeeCount: 15},
		{ID: "4", Name: "Human Resources", HeadOfDepartment: "Ms. Genet Yilma", EmployeeCount: 5},
	}

	s.employees = []entity.Employee{
		{ID: "1", FirstName: "Alemu", LastName: "Tefera", Email: "alemu@assosa.edu.et", Phone: "0911234567", DepartmentID: "1", Position: "Senior Lecturer", Salary: decimal.NewFromInt(15000), HireDate: "2019-09-01", Gender: entity.GenderMale, Status: entity.StatusActive},
		{ID: "2", FirstName: "Bethel", LastName: "Haile", Email: "bethel@assosa.edu.et", Phone: "0922345678", DepartmentID: "2", Position: "Lab Assistant", Salary: decimal.NewFromInt(8000), HireDate: "2021-02-14", Gender: entity.GenderFemale, Status: entity.StatusActive},
		{ID: "3", FirstName: "Chala", LastName: "Bekele", Email: "chala@assosa.edu.et", Phone: "0933456789", DepartmentID: "3", Position: "Dean", Salary: decimal.NewFromInt(25000), HireDate: "2015-05-20", Gender: entity.GenderMale, Status: entity.StatusOnLeave},
		{ID: "4", FirstName: "Hana", LastName: "Girma", Email: "hana@assosa.edu.et", Phone: "0944567890", DepartmentID: "4", Position: "HR Manager", Salary: decimal.NewFromInt(20000), HireDate: "2018-11-10", Gender: entity.GenderFemale, Status: entity.StatusActive},
	}

	s.attendance = nil
}
