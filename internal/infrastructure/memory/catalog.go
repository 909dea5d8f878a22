// Package memory implementa los colaboradores en memoria del proceso. Es el almacenamiento por
// defecto (STORE_DRIVER=memory) y el doble de prueba de los casos de uso.
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/inventory-ops/internal/domain"
	"github.com/jhoicas/inventory-ops/internal/domain/entity"
	"github.com/jhoicas/inventory-ops/internal/domain/repository"
)

var (
	_ repository.ProductRepository         = (*ProductRepo)(nil)
	_ repository.WarehouseRepository       = (*WarehouseRepo)(nil)
	_ repository.PackagingOptionRepository = (*PackagingOptionRepo)(nil)
)

// ProductRepo catálogo de productos en memoria. Conserva el orden de inserción.
type ProductRepo struct {
	mu       sync.RWMutex
	products []entity.Product
}

// NewProductRepository construye el catálogo con una copia de products.
func NewProductRepository(products ...*entity.Product) *ProductRepo {
	r := &ProductRepo{}
	for _, p := range products {
		r.products = append(r.products, *p)
	}
	return r
}

// List devuelve copias de todos los productos.
func (r *ProductRepo) List(_ context.Context) ([]*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Product, 0, len(r.products))
	for i := range r.products {
		p := r.products[i]
		out = append(out, &p)
	}
	return out, nil
}

// GetByID devuelve (nil, nil) si no existe.
func (r *ProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.products {
		if r.products[i].ID == id {
			p := r.products[i]
			return &p, nil
		}
	}
	return nil, nil
}

// Put inserta o reemplaza un producto (lo usa la carga inicial y los tests).
func (r *ProductRepo) Put(p *entity.Product) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.products {
		if r.products[i].ID == p.ID {
			r.products[i] = *p
			return
		}
	}
	r.products = append(r.products, *p)
}

// Remove elimina un producto por ID.
func (r *ProductRepo) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.products {
		if r.products[i].ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return
		}
	}
}

// WarehouseRepo bodegas en memoria.
type WarehouseRepo struct {
	mu         sync.RWMutex
	warehouses []entity.Warehouse
}

// NewWarehouseRepository construye el repositorio con una copia de warehouses.
func NewWarehouseRepository(warehouses ...*entity.Warehouse) *WarehouseRepo {
	r := &WarehouseRepo{}
	for _, w := range warehouses {
		r.warehouses = append(r.warehouses, *w)
	}
	return r
}

// List devuelve copias de todas las bodegas.
func (r *WarehouseRepo) List(_ context.Context) ([]*entity.Warehouse, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Warehouse, 0, len(r.warehouses))
	for i := range r.warehouses {
		w := r.warehouses[i]
		out = append(out, &w)
	}
	return out, nil
}

// GetByID devuelve (nil, nil) si no existe.
func (r *WarehouseRepo) GetByID(_ context.Context, id string) (*entity.Warehouse, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.warehouses {
		if r.warehouses[i].ID == id {
			w := r.warehouses[i]
			return &w, nil
		}
	}
	return nil, nil
}

// PackagingOptionRepo etiquetas de empaque en memoria, en orden de alta.
type PackagingOptionRepo struct {
	mu     sync.RWMutex
	labels []string
}

// NewPackagingOptionRepository construye el repositorio con las etiquetas iniciales (sin duplicados).
func NewPackagingOptionRepository(defaults ...string) *PackagingOptionRepo {
	r := &PackagingOptionRepo{}
	for _, l := range defaults {
		_ = r.Add(context.Background(), l)
	}
	return r
}

// List devuelve una copia de las etiquetas.
func (r *PackagingOptionRepo) List(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.labels))
	copy(out, r.labels)
	return out, nil
}

// Add agrega label al final. domain.ErrDuplicate si ya existe.
func (r *PackagingOptionRepo) Add(_ context.Context, label string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, l := range r.labels {
		if l == label {
			return domain.ErrDuplicate
		}
	}
	r.labels = append(r.labels, label)
	return nil
}
