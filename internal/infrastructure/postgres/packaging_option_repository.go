package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/inventory-ops/internal/domain"
	"github.com/jhoicas/inventory-ops/internal/domain/repository"
)

var _ repository.PackagingOptionRepository = (*PackagingOptionRepo)(nil)

// PackagingOptionRepo etiquetas de empaque sobre PostgreSQL, en orden de alta.
type PackagingOptionRepo struct {
	q Querier
}

// NewPackagingOptionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPackagingOptionRepository(q Querier) *PackagingOptionRepo {
	return &PackagingOptionRepo{q: q}
}

// List devuelve las etiquetas en orden de alta.
func (r *PackagingOptionRepo) List(ctx context.Context) ([]string, error) {
	rows, err := r.q.Query(ctx, `SELECT label FROM packaging_options ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("list packaging options: %w", err)
	}
	defer rows.Close()

	labels := []string{}
	for rows.Next() {
		var l string
		if err := rows.Scan(&l); err != nil {
			return nil, fmt.Errorf("scan packaging option: %w", err)
		}
		labels = append(labels, l)
	}
	return labels, rows.Err()
}

// Add agrega label al final. domain.ErrDuplicate si ya existe.
func (r *PackagingOptionRepo) Add(ctx context.Context, label string) error {
	_, err := r.q.Exec(ctx, `INSERT INTO packaging_options (label) VALUES ($1)`, label)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert packaging option: %w", err)
	}
	return nil
}

// EnsureDefaults inserta las etiquetas que falten, sin alterar el orden de las existentes.
func (r *PackagingOptionRepo) EnsureDefaults(ctx context.Context, labels []string) error {
	for _, l := range labels {
		if _, err := r.q.Exec(ctx,
			`INSERT INTO packaging_options (label) VALUES ($1) ON CONFLICT (label) DO NOTHING`, l); err != nil {
			return fmt.Errorf("ensure packaging option %q: %w", l, err)
		}
	}
	return nil
}
