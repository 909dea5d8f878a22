package repository

import "context"

// PackagingOptionRepository define el puerto para las etiquetas de empaque conocidas.
// Add devuelve domain.ErrDuplicate si la etiqueta ya existe.
type PackagingOptionRepository interface {
	List(ctx context.Context) ([]string, error)
	Add(ctx context.Context, label string) error
}
