package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound             = errors.New("recurso no encontrado")
	ErrInvalidInput         = errors.New("entrada inválida")
	ErrDuplicate            = errors.New("recurso duplicado")
	ErrUnauthorized         = errors.New("no autorizado")
	ErrForbidden            = errors.New("acceso denegado")
	ErrIncompleteOperation  = errors.New("operación incompleta: tipo y al menos un producto requeridos")
	ErrUnknownOperationType = errors.New("tipo de operación desconocido")
)
