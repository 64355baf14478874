package usecase

import (
	"context"
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/search"

	"github.com/assosa-edu/hrms-api/internal/application/dto"
	"github.com/assosa-edu/hrms-api/internal/application/ports"
	"github.com/assosa-edu/hrms-api/internal/domain"
	"github.com/assosa-edu/hrms-api/internal/domain/entity"
	"github.com/assosa-edu/hrms-api/internal/domain/repository"
)

// EmployeeUseCase aplica las reglas de presentación sobre empleados: valida
// presencia antes de llegar al Entity Store (el store nunca valida) y arma los
// listados filtrados. El mantenimiento del contador por departamento es
// responsabilidad exclusiva del store.
type EmployeeUseCase struct {
	repo     repository.EmployeeRepository
	deptRepo repository.DepartmentRepository
	pdf      ports.RosterPDFGenerator
}

// NewEmployeeUseCase construye el caso de uso con los puertos del store y el
// generador del reporte de exportación.
func NewEmployeeUseCase(
	repo repository.EmployeeRepository,
	deptRepo repository.DepartmentRepository,
	pdf ports.RosterPDFGenerator,
) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo, deptRepo: deptRepo, pdf: pdf}
}

// Create valida presencia de first_name y email (única validación del sistema)
// y delega el alta al store, que asigna el id y ajusta el contador.
func (uc *EmployeeUseCase) Create(ctx context.Context, in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	if in.FirstName == "" || in.Email == "" {
		return nil, domain.ErrInvalidInput
	}

	emp, err := uc.repo.Create(ctx, entity.Employee{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		Phone:        in.Phone,
		DepartmentID: in.DepartmentID,
		Position:     in.Position,
		Salary:       in.Salary,
		HireDate:     in.HireDate,
		Gender:       in.Gender,
		Status:       in.Status,
	})
	if err != nil {
		return nil, fmt.Errorf("alta de empleado: %w", err)
	}
	return toEmployeeResponse(emp), nil
}

// GetByID obtiene un empleado. Devuelve domain.ErrNotFound si no existe.
func (uc *EmployeeUseCase) GetByID(ctx context.Context, id string) (*dto.EmployeeResponse, error) {
	emp, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, domain.ErrNotFound
	}
	return toEmployeeResponse(*emp), nil
}

// List lista empleados con búsqueda insensible a mayúsculas sobre nombre,
// apellido y cargo, y paginación sobre el resultado filtrado.
func (uc *EmployeeUseCase) List(ctx context.Context, query string, page dto.PageRequest) (*dto.EmployeeListResponse, error) {
	page.DefaultPage()

	all, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	filtered := filterEmployees(all, query)

	total := len(filtered)
	start := page.Offset
	if start > total {
		start = total
	}
	end := start + page.Limit
	if end > total {
		end = total
	}

	items := make([]dto.EmployeeResponse, 0, end-start)
	for _, e := range filtered[start:end] {
		items = append(items, *toEmployeeResponse(e))
	}
	return &dto.EmployeeListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

// Update aplica un patch parcial. Devuelve domain.ErrNotFound si el id no
// existe (el store lo trata como no-op; el API lo reporta como 404).
func (uc *EmployeeUseCase) Update(ctx context.Context, id string, in dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	emp, err := uc.repo.Update(ctx, id, entity.EmployeePatch{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		Phone:        in.Phone,
		DepartmentID: in.DepartmentID,
		Position:     in.Position,
		Salary:       in.Salary,
		HireDate:     in.HireDate,
		Gender:       in.Gender,
		Status:       in.Status,
	})
	if err != nil {
		return nil, fmt.Errorf("actualizar empleado: %w", err)
	}
	if emp == nil {
		return nil, domain.ErrNotFound
	}
	return toEmployeeResponse(*emp), nil
}

// Delete elimina un empleado. Idempotente: un id inexistente no es un error.
func (uc *EmployeeUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// ExportRoster genera el PDF de la plantilla completa (acción "Export").
func (uc *EmployeeUseCase) ExportRoster(ctx context.Context) ([]byte, error) {
	employees, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	departments, err := uc.deptRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	out, err := uc.pdf.GenerateRosterPDF(ctx, employees, departments)
	if err != nil {
		return nil, fmt.Errorf("exportar roster: %w", err)
	}
	return out, nil
}

// filterEmployees búsqueda insensible a mayúsculas (y a folding Unicode) sobre
// nombre, apellido y cargo, con el matcher de golang.org/x/text.
func filterEmployees(all []entity.Employee, query string) []entity.Employee {
	if query == "" {
		return all
	}
	m := search.New(language.English, search.IgnoreCase)

	out := make([]entity.Employee, 0, len(all))
	for _, e := range all {
		if containsFold(m, e.FirstName, query) ||
			containsFold(m, e.LastName, query) ||
			containsFold(m, e.Position, query) {
			out = append(out, e)
		}
	}
	return out
}

func containsFold(m *search.Matcher, s, substr string) bool {
	start, _ := m.IndexString(s, substr)
	return start >= 0
}

func toEmployeeResponse(e entity.Employee) *dto.EmployeeResponse {
	return &dto.EmployeeResponse{
		ID:           e.ID,
		FirstName:    e.FirstName,
		LastName:     e.LastName,
		Email:        e.Email,
		Phone:        e.Phone,
		DepartmentID: e.DepartmentID,
		Position:     e.Position,
		Salary:       e.Salary,
		HireDate:     e.HireDate,
		Gender:       e.Gender,
		Status:       e.Status,
	}
}
