package ports

import (
	"context"

	"github.com/assosa-edu/hrms-api/internal/domain/entity"
)

// RosterPDFGenerator define el puerto de salida para la generación del reporte
// PDF de la plantilla de empleados (botón "Export" del listado).
type RosterPDFGenerator interface {
	GenerateRosterPDF(ctx context.Context, employees []entity.Employee, departments []entity.Department) ([]byte, error)
}
