package repository

import (
	"context"

	"github.com/assosa-edu/hrms-api/internal/domain/entity"
)

// AttendanceRepository puerto de lectura de asistencia. Punto de extensión:
// hoy ninguna operación alcanzable escribe registros, así que solo hay lectura.
type AttendanceRepository interface {
	List(ctx context.Context) ([]entity.AttendanceRecord, error)
}
