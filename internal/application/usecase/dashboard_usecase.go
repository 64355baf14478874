package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/assosa-edu/hrms-api/internal/application/dto"
	"github.com/assosa-edu/hrms-api/internal/domain/entity"
	"github.com/assosa-edu/hrms-api/internal/domain/repository"
)

// DashboardUseCase genera el resumen del dashboard de RR.HH.
//
// Todas las vistas son derivadas de solo-lectura calculadas bajo demanda sobre
// el Entity Store; la serie por departamento sale del contador derivado, no de
// un recuento sobre la colección de empleados.
type DashboardUseCase struct {
	employeeRepo   repository.EmployeeRepository
	departmentRepo repository.DepartmentRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	employeeRepo repository.EmployeeRepository,
	departmentRepo repository.DepartmentRepository,
) *DashboardUseCase {
	return &DashboardUseCase{employeeRepo: employeeRepo, departmentRepo: departmentRepo}
}

// GetSummary construye el DashboardSummaryDTO: totales de plantilla, nómina
// mensual y las series de los dos gráficos.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	employees, err := uc.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: empleados: %w", err)
	}
	departments, err := uc.departmentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: departamentos: %w", err)
	}

	var (
		active  int
		onLeave int
		male    int
		female  int
		payroll = decimal.Zero
	)
	for _, e := range employees {
		switch e.Status {
		case entity.StatusActive:
			active++
		case entity.StatusOnLeave:
			onLeave++
		}
		switch e.Gender {
		case entity.GenderMale:
			male++
		case entity.GenderFemale:
			female++
		}
		payroll = payroll.Add(e.Salary)
	}

	deptSeries := make([]dto.ChartPointDTO, 0, len(departments))
	for _, d := range departments {
		deptSeries = append(deptSeries, dto.ChartPointDTO{Name: d.Name, Value: d.EmployeeCount})
	}

	return &dto.DashboardSummaryDTO{
		TotalEmployees:   len(employees),
		TotalDepartments: len(departments),
		ActiveEmployees:  active,
		OnLeave:          onLeave,
		MonthlyPayroll:   payroll,
		GenderDistribution: []dto.ChartPointDTO{
			{Name: entity.GenderMale, Value: male},
			{Name: entity.GenderFemale, Value: female},
		},
		DepartmentDistribution: deptSeries,
	}, nil
}
