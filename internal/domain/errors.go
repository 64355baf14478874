package domain

import "errors"

// Errores de dominio (sin dependencias externas).
//
// Nota: los "lookup misses" dentro del Entity Store (borrar un id inexistente,
// referenciar un departamento inexistente) NO son errores: se absorben como
// no-ops. Estos sentinels se usan en la capa de aplicación y HTTP.
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
)
