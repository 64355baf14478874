package memory

import (
	"context"

	"github.com/assosa-edu/hrms-api/internal/domain/entity"
	"github.com/assosa-edu/hrms-api/internal/domain/repository"
)

// Vistas por entidad sobre el mismo Store, una por puerto de repository.
// Comparten el estado y el lock: una mutación de empleados y su ajuste de
// contador de departamento ocurren en el mismo paso atómico.

// Verificar en tiempo de compilación que las vistas implementan los puertos.
var (
	_ repository.EmployeeRepository   = (*EmployeeRepository)(nil)
	_ repository.DepartmentRepository = (*DepartmentRepository)(nil)
	_ repository.AttendanceRepository = (*AttendanceRepository)(nil)
)

// EmployeeRepository implementa repository.EmployeeRepository sobre el Store.
type EmployeeRepository struct {
	store *Store
}

// NewEmployeeRepository construye la vista de empleados.
func NewEmployeeRepository(store *Store) *EmployeeRepository {
	return &EmployeeRepository{store: store}
}

func (r *EmployeeRepository) Create(ctx context.Context, emp entity.Employee) (entity.Employee, error) {
	return r.store.CreateEmployee(ctx, emp)
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id string) (*entity.Employee, error) {
	return r.store.GetEmployee(ctx, id)
}

func (r *EmployeeRepository) List(ctx context.Context) ([]entity.Employee, error) {
	return r.store.ListEmployees(ctx)
}

func (r *EmployeeRepository) Update(ctx context.Context, id string, patch entity.EmployeePatch) (*entity.Employee, error) {
	return r.store.UpdateEmployee(ctx, id, patch)
}

func (r *EmployeeRepository) Delete(ctx context.Context, id string) error {
	return r.store.DeleteEmployee(ctx, id)
}

// DepartmentRepository implementa repository.DepartmentRepository sobre el Store.
type DepartmentRepository struct {
	store *Store
}

// NewDepartmentRepository construye la vista de departamentos.
func NewDepartmentRepository(store *Store) *DepartmentRepository {
	return &DepartmentRepository{store: store}
}

func (r *DepartmentRepository) Create(ctx context.Context, dept entity.Department) (entity.Department, error) {
	return r.store.CreateDepartment(ctx, dept)
}

func (r *DepartmentRepository) GetByID(ctx context.Context, id string) (*entity.Department, error) {
	return r.store.GetDepartment(ctx, id)
}

func (r *DepartmentRepository) List(ctx context.Context) ([]entity.Department, error) {
	return r.store.ListDepartments(ctx)
}

// AttendanceRepository implementa repository.AttendanceRepository sobre el Store.
type AttendanceRepository struct {
	store *Store
}

// NewAttendanceRepository construye la vista de asistencia.
func NewAttendanceRepository(store *Store) *AttendanceRepository {
	return &AttendanceRepository{store: store}
}

func (r *AttendanceRepository) List(ctx context.Context) ([]entity.AttendanceRecord, error) {
	return r.store.ListAttendance(ctx)
}
