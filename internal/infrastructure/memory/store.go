// Package memory implementa el Entity Store: el único contenedor autoritativo
// de las colecciones de empleados y departamentos, con mantenimiento
// incremental del agregado derivado Department.EmployeeCount.
//
// Todo el estado vive detrás de un sync.RWMutex único, de modo que cada
// mutación es un paso atómico de un estado que cumple los invariantes al
// siguiente, incluso con handlers HTTP concurrentes. El contador se actualiza
// de forma incremental (no se recalcula en cada lectura); por eso toda ruta de
// mutación vive en este paquete y en ningún otro.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/assosa-edu/hrms-api/internal/domain/entity"
)

// Store contenedor en memoria de empleados, departamentos y asistencia.
// Los slices conservan el orden de inserción, igual que los listados del API.
// Los puertos de repository se obtienen con NewEmployeeRepository,
// NewDepartmentRepository y NewAttendanceRepository sobre el mismo Store.
type Store struct {
	mu          sync.RWMutex
	employees   []entity.Employee
	departments []entity.Department
	attendance  []entity.AttendanceRecord
}

// NewStore construye un Store vacío. Usar Seed para cargar los datos mock.
func NewStore() *Store {
	return &Store{}
}

// ── Empleados ─────────────────────────────────────────────────────────────────

// CreateEmployee asigna un ID nuevo, agrega el empleado y, si su DepartmentID
// coincide con un departamento existente, incrementa el contador de ese
// departamento en exactamente 1. DepartmentID vacío o sin coincidencia no toca
// ningún contador. Nunca falla por el contenido de emp: esta capa no valida.
func (s *Store) CreateEmployee(_ context.Context, emp entity.Employee) (entity.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	emp.ID = uuid.New().String()
	s.employees = append(s.employees, emp)
	s.bumpCountLocked(emp.DepartmentID, +1)
	return emp, nil
}

// GetEmployee devuelve una copia del empleado o (nil, nil) si no existe.
func (s *Store) GetEmployee(_ context.Context, id string) (*entity.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.employees {
		if e.ID == id {
			cp := e
			return &cp, nil
		}
	}
	return nil, nil
}

// ListEmployees devuelve la colección completa de empleados por copia.
func (s *Store) ListEmployees(_ context.Context) ([]entity.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.Employee, len(s.employees))
	copy(out, s.employees)
	return out, nil
}

// UpdateEmployee aplica un patch parcial bajo el mismo lock que el ajuste de
// contadores. Id inexistente: no-op, devuelve (nil, nil). Si el patch mueve al
// empleado de departamento, el contador anterior baja (piso 0) y el nuevo
// sube, cada uno solo si ese departamento existe.
func (s *Store) UpdateEmployee(_ context.Context, id string, patch entity.EmployeePatch) (*entity.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.employees {
		if s.employees[i].ID != id {
			continue
		}
		e := &s.employees[i]

		if patch.DepartmentID != nil && *patch.DepartmentID != e.DepartmentID {
			s.bumpCountLocked(e.DepartmentID, -1)
			s.bumpCountLocked(*patch.DepartmentID, +1)
			e.DepartmentID = *patch.DepartmentID
		}
		if patch.FirstName != nil {
			e.FirstName = *patch.FirstName
		}
		if patch.LastName != nil {
			e.LastName = *patch.LastName
		}
		if patch.Email != nil {
			e.Email = *patch.Email
		}
		if patch.Phone != nil {
			e.Phone = *patch.Phone
		}
		if patch.Position != nil {
			e.Position = *patch.Position
		}
		if patch.Salary != nil {
			e.Salary = *patch.Salary
		}
		if patch.HireDate != nil {
			e.HireDate = *patch.HireDate
		}
		if patch.Gender != nil {
			e.Gender = *patch.Gender
		}
		if patch.Status != nil {
			e.Status = *patch.Status
		}

		cp := *e
		return &cp, nil
	}
	return nil, nil
}

// DeleteEmployee elimina exactamente el empleado con ese id y decrementa el
// contador de su departamento (piso 0) solo si ese departamento existe. Id
// inexistente es un no-op idempotente: ni error ni cambio de estado.
func (s *Store) DeleteEmployee(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.employees {
		if e.ID == id {
			s.employees = append(s.employees[:i], s.employees[i+1:]...)
			s.bumpCountLocked(e.DepartmentID, -1)
			return nil
		}
	}
	return nil
}

// ── Departamentos ─────────────────────────────────────────────────────────────

// CreateDepartment asigna un ID nuevo, fuerza el contador derivado a 0 y
// agrega el departamento. Nunca falla.
func (s *Store) CreateDepartment(_ context.Context, dept entity.Department) (entity.Department, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	dept.ID = uuid.New().String()
	dept.EmployeeCount = 0
	s.departments = append(s.departments, dept)
	return dept, nil
}

// GetDepartment devuelve una copia del departamento o (nil, nil) si no existe.
func (s *Store) GetDepartment(_ context.Context, id string) (*entity.Department, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, d := range s.departments {
		if d.ID == id {
			cp := d
			return &cp, nil
		}
	}
	return nil, nil
}

// ListDepartments devuelve la colección completa de departamentos por copia.
func (s *Store) ListDepartments(_ context.Context) ([]entity.Department, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.Department, len(s.departments))
	copy(out, s.departments)
	return out, nil
}

// ── Asistencia ────────────────────────────────────────────────────────────────

// ListAttendance devuelve los registros de asistencia por copia. Hoy ninguna
// operación los escribe; el accessor existe por completitud del contrato.
func (s *Store) ListAttendance(_ context.Context) ([]entity.AttendanceRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.AttendanceRecord, len(s.attendance))
	copy(out, s.attendance)
	return out, nil
}

// ── Agregado derivado ─────────────────────────────────────────────────────────

// bumpCountLocked ajusta el contador del departamento deptID en delta, con
// piso en 0. DeptID vacío o inexistente no toca nada. Requiere s.mu tomado en
// escritura.
func (s *Store) bumpCountLocked(deptID string, delta int) {
	if deptID == "" {
		return
	}
	for i := range s.departments {
		if s.departments[i].ID != deptID {
			continue
		}
		n := s.departments[i].EmployeeCount + delta
		if n < 0 {
			n = 0
		}
		s.departments[i].EmployeeCount = n
		return
	}
}
