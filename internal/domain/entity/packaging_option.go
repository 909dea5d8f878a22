package entity

// PackagingOption es una etiqueta de empaque cuyo entero inicial codifica el tamaño de la unidad
// (ej. "50+kənar" = unidades de 50). Las etiquetas son únicas dentro del colaborador.
type PackagingOption struct {
	Label string
}
