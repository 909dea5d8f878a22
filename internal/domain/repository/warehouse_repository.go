package repository

import (
	"context"

	"github.com/jhoicas/inventory-ops/internal/domain/entity"
)

// WarehouseRepository define el puerto de lectura para bodegas (DIP).
type WarehouseRepository interface {
	List(ctx context.Context) ([]*entity.Warehouse, error)
	// GetByID devuelve (nil, nil) si la bodega no existe.
	GetByID(ctx context.Context, id string) (*entity.Warehouse, error)
}
