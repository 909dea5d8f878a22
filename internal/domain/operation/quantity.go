// Package operation contiene los servicios de dominio del registro de operaciones:
// líneas de empaque y el cálculo de cantidades a partir de ellas.
package operation

import "strings"

// sizeSeparators delimita el tamaño de unidad dentro de la etiqueta de empaque ("50+kənar", "25(rulo)").
const sizeSeparators = "+()"

// PackagingLine es un par (etiqueta de empaque, cantidad de unidades).
type PackagingLine struct {
	Type  string
	Count int
}

// ProductEntry es el desglose de empaque de un producto dentro de una operación en curso.
type ProductEntry struct {
	ProductID string
	Packaging []PackagingLine
}

// Clone devuelve una copia profunda de la entrada.
func (e ProductEntry) Clone() ProductEntry {
	return ProductEntry{ProductID: e.ProductID, Packaging: CloneLines(e.Packaging)}
}

// CloneLines copia las líneas para que el llamador no comparta el arreglo subyacente.
func CloneLines(lines []PackagingLine) []PackagingLine {
	if lines == nil {
		return nil
	}
	out := make([]PackagingLine, len(lines))
	copy(out, lines)
	return out
}

// UnitSize extrae el tamaño de unidad de una etiqueta: el entero inicial del segmento previo al
// primer separador. ok es false si no hay dígitos o el tamaño no es positivo.
func UnitSize(label string) (size int, ok bool) {
	segment := label
	if i := strings.IndexAny(label, sizeSeparators); i >= 0 {
		segment = label[:i]
	}
	n, ok := LeadingInt(segment)
	if !ok || n <= 0 {
		return 0, false
	}
	return n, true
}

// LineQuantity devuelve tamaño × cantidad; 0 si la etiqueta no tiene tamaño o la cantidad no es positiva.
func LineQuantity(line PackagingLine) int {
	size, ok := UnitSize(line.Type)
	if !ok || line.Count <= 0 {
		return 0
	}
	return size * line.Count
}

// QuantityForLines suma LineQuantity de cada línea. Las líneas ilegibles aportan 0 sin error.
func QuantityForLines(lines []PackagingLine) int {
	total := 0
	for _, l := range lines {
		total += LineQuantity(l)
	}
	return total
}

// QuantityForEntries suma las cantidades de todas las entradas de producto.
func QuantityForEntries(entries []ProductEntry) int {
	total := 0
	for _, e := range entries {
		total += QuantityForLines(e.Packaging)
	}
	return total
}
