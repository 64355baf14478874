package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// KPIs de plantilla más las series listas para graficar en el cliente.
type DashboardSummaryDTO struct {
	TotalEmployees   int             `json:"total_employees"`
	TotalDepartments int             `json:"total_departments"`
	ActiveEmployees  int             `json:"active_employees"`
	OnLeave          int             `json:"on_leave"`
	MonthlyPayroll   decimal.Decimal `json:"monthly_payroll"` // suma de salarios

	// Serie para el gráfico de torta de género (Male / Female).
	GenderDistribution []ChartPointDTO `json:"gender_distribution"`

	// Serie para el gráfico de barras por departamento; el valor sale del
	// contador derivado, no de un recuento sobre la colección de empleados.
	DepartmentDistribution []ChartPointDTO `json:"department_distribution"`
}

// ChartPointDTO punto nombre/valor de una serie de gráfico.
type ChartPointDTO struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}
