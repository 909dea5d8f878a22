package repository

import (
	"context"

	"github.com/jhoicas/inventory-ops/internal/domain/entity"
)

// OperationHistoryRepository define el puerto de persistencia del historial de operaciones.
type OperationHistoryRepository interface {
	// Append guarda un registro. Asigna ID y Timestamp si vienen vacíos.
	Append(ctx context.Context, record *entity.OperationRecord) error

	// ListRecent devuelve los registros del más reciente al más antiguo.
	// limit <= 0 devuelve todos.
	ListRecent(ctx context.Context, limit int) ([]*entity.OperationRecord, error)
}
