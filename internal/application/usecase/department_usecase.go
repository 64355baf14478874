package usecase

import (
	"context"
	"fmt"

	"github.com/assosa-edu/hrms-api/internal/application/dto"
	"github.com/assosa-edu/hrms-api/internal/domain"
	"github.com/assosa-edu/hrms-api/internal/domain/entity"
	"github.com/assosa-edu/hrms-api/internal/domain/repository"
)

// DepartmentUseCase casos de uso de departamentos. No hay baja ni edición:
// no forman parte del contrato observable del sistema.
type DepartmentUseCase struct {
	repo repository.DepartmentRepository
}

// NewDepartmentUseCase construye el caso de uso con el puerto del store.
func NewDepartmentUseCase(repo repository.DepartmentRepository) *DepartmentUseCase {
	return &DepartmentUseCase{repo: repo}
}

// Create valida presencia del nombre y delega el alta al store, que asigna id
// y arranca el contador derivado en 0. head_of_department vacío es válido
// (jefatura vacante).
func (uc *DepartmentUseCase) Create(ctx context.Context, in dto.CreateDepartmentRequest) (*dto.DepartmentResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}

	dept, err := uc.repo.Create(ctx, entity.Department{
		Name:             in.Name,
		HeadOfDepartment: in.HeadOfDepartment,
	})
	if err != nil {
		return nil, fmt.Errorf("alta de departamento: %w", err)
	}
	return toDepartmentResponse(dept), nil
}

// GetByID obtiene un departamento. Devuelve domain.ErrNotFound si no existe.
func (uc *DepartmentUseCase) GetByID(ctx context.Context, id string) (*dto.DepartmentResponse, error) {
	dept, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if dept == nil {
		return nil, domain.ErrNotFound
	}
	return toDepartmentResponse(*dept), nil
}

// List lista todos los departamentos con su contador derivado vigente.
func (uc *DepartmentUseCase) List(ctx context.Context) (*dto.DepartmentListResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DepartmentResponse, 0, len(list))
	for _, d := range list {
		items = append(items, *toDepartmentResponse(d))
	}
	return &dto.DepartmentListResponse{Items: items}, nil
}

func toDepartmentResponse(d entity.Department) *dto.DepartmentResponse {
	return &dto.DepartmentResponse{
		ID:               d.ID,
		Name:             d.Name,
		HeadOfDepartment: d.HeadOfDepartment,
		EmployeeCount:    d.EmployeeCount,
	}
}
