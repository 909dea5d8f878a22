package operation

import "context"

// DraftStore guarda un Form por operador. With ejecuta fn con acceso exclusivo al borrador de
// owner, creándolo vacío si no existe; el error de fn se devuelve tal cual.
type DraftStore interface {
	With(ctx context.Context, owner string, fn func(f *Form) error) error
}

// OperationSummary datos del comprobante imprimible de una operación en curso.
type OperationSummary struct {
	Title        string
	Date         string
	ProductNames string // "Nombre (Artículo)" separados por ", "
	Quantity     int
}

// OperationDocumentGenerator genera el PDF del comprobante.
type OperationDocumentGenerator interface {
	GenerateOperationPDF(ctx context.Context, summary OperationSummary) ([]byte, error)
}
