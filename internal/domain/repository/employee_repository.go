package repository

import (
	"context"

	"github.com/assosa-edu/hrms-api/internal/domain/entity"
)

// EmployeeRepository define el puerto del almacén de empleados (DIP).
//
// El contrato de consistencia es del almacén, no del caller: toda mutación de
// empleados mantiene el agregado derivado Department.EmployeeCount en el mismo
// paso atómico. Ningún otro código puede tocar ese contador.
type EmployeeRepository interface {
	// Create asigna un ID nuevo y agrega el empleado. Si DepartmentID coincide
	// con un departamento existente, incrementa su contador en exactamente 1;
	// si no coincide (o está vacío) ningún departamento se toca. Nunca falla
	// por el contenido de emp: esta capa no valida.
	Create(ctx context.Context, emp entity.Employee) (entity.Employee, error)

	// GetByID devuelve el empleado o (nil, nil) si no existe.
	GetByID(ctx context.Context, id string) (*entity.Employee, error)

	// List devuelve la colección completa por copia (el caller no puede mutar
	// el estado interno a través del slice devuelto).
	List(ctx context.Context) ([]entity.Employee, error)

	// Update aplica un patch parcial. Si el id no existe es un no-op y devuelve
	// (nil, nil). Si el patch cambia DepartmentID, decrementa el contador del
	// departamento anterior (piso 0) e incrementa el del nuevo, cada uno solo
	// si existe, dentro de la misma mutación.
	Update(ctx context.Context, id string, patch entity.EmployeePatch) (*entity.Employee, error)

	// Delete elimina el empleado; id inexistente es un no-op idempotente sin
	// error. Decrementa el contador del departamento referenciado (piso 0)
	// solo si ese departamento existe.
	Delete(ctx context.Context, id string) error
}
