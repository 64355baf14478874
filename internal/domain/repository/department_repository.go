package repository

import (
	"context"

	"github.com/assosa-edu/hrms-api/internal/domain/entity"
)

// DepartmentRepository define el puerto del almacén de departamentos (DIP).
// No expone Delete ni Update: no forman parte del contrato observable.
type DepartmentRepository interface {
	// Create asigna un ID nuevo, fuerza EmployeeCount a 0 (el contador es un
	// agregado derivado, nunca lo escribe el caller) y agrega el departamento.
	Create(ctx context.Context, dept entity.Department) (entity.Department, error)

	// GetByID devuelve el departamento o (nil, nil) si no existe.
	GetByID(ctx context.Context, id string) (*entity.Department, error)

	// List devuelve la colección completa por copia.
	List(ctx context.Context) ([]entity.Department, error)
}
