package repository

import (
	"context"

	"github.com/jhoicas/inventory-ops/internal/domain/entity"
)

// ProductRepository define el puerto de lectura del catálogo de productos (DIP).
// List devuelve los productos en el orden propio del colaborador.
type ProductRepository interface {
	List(ctx context.Context) ([]*entity.Product, error)
	GetByID(ctx context.Context, id string) (*entity.Product, error)
}
