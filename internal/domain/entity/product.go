package entity

// Estados de producto.
const (
	ProductStatusActive   = "active"
	ProductStatusInactive = "inactive"
)

// Product representa un producto del catálogo. Es de solo lectura para el registro de operaciones;
// el stock lo mantiene el colaborador de productos.
type Product struct {
	ID      string
	Name    string
	Article string // código de artículo
	Stock   int    // unidades disponibles, nunca negativo
	Status  string // active, inactive
}

// IsActive indica si el producto está marcado como activo.
func (p *Product) IsActive() bool {
	return p.Status == ProductStatusActive
}

// DisplayName devuelve "Nombre (Artículo)", formato usado en listados y documentos.
func (p *Product) DisplayName() string {
	return p.Name + " (" + p.Article + ")"
}
