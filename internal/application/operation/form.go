package operation

import (
	"strings"

	"github.com/jhoicas/inventory-ops/internal/domain/entity"
	domop "github.com/jhoicas/inventory-ops/internal/domain/operation"
)

// Visibility indica qué campos adicionales aplican al tipo de operación elegido.
type Visibility struct {
	Warehouse            bool // bodega de entrada
	BatchName            bool // nombre de lote
	SourceWarehouse      bool // bodega origen (traslado)
	DestinationWarehouse bool // bodega destino (traslado)
}

// VisibilityFor devuelve los campos visibles para t. Solo "incoming" y "transfer" muestran campos extra.
func VisibilityFor(t string) Visibility {
	switch t {
	case entity.OperationTypeIncoming:
		return Visibility{Warehouse: true, BatchName: true}
	case entity.OperationTypeTransfer:
		return Visibility{SourceWarehouse: true, DestinationWarehouse: true}
	default:
		return Visibility{}
	}
}

// Form es el estado transitorio de una operación en curso. No es seguro para uso concurrente;
// el DraftStore serializa el acceso.
type Form struct {
	operationType          string
	warehouseID            string
	destinationWarehouseID string
	batchName              string
	notes                  string
	currentProductID       string
	currentPackagingType   string
	currentPackaging       []domop.PackagingLine
	selectedProducts       []domop.ProductEntry
}

// NewForm devuelve un formulario vacío.
func NewForm() *Form { return &Form{} }

// FormState es una copia inmutable del formulario.
type FormState struct {
	OperationType          string
	WarehouseID            string
	DestinationWarehouseID string
	BatchName              string
	Notes                  string
	CurrentProductID       string
	CurrentPackagingType   string
	CurrentPackaging       []domop.PackagingLine
	SelectedProducts       []domop.ProductEntry
	Visibility             Visibility
}

// State devuelve una copia profunda del estado actual.
func (f *Form) State() FormState {
	entries := make([]domop.ProductEntry, 0, len(f.selectedProducts))
	for _, e := range f.selectedProducts {
		entries = append(entries, e.Clone())
	}
	lines := domop.CloneLines(f.currentPackaging)
	if lines == nil {
		lines = []domop.PackagingLine{}
	}
	return FormState{
		OperationType:          f.operationType,
		WarehouseID:            f.warehouseID,
		DestinationWarehouseID: f.destinationWarehouseID,
		BatchName:              f.batchName,
		Notes:                  f.notes,
		CurrentProductID:       f.currentProductID,
		CurrentPackagingType:   f.currentPackagingType,
		CurrentPackaging:       lines,
		SelectedProducts:       entries,
		Visibility:             VisibilityFor(f.operationType),
	}
}

// OperationType devuelve el tipo activo ("" si no hay).
func (f *Form) OperationType() string { return f.operationType }

// Visibility devuelve los campos extra que aplican al tipo activo.
func (f *Form) Visibility() Visibility { return VisibilityFor(f.operationType) }

// SelectOperationType fija el tipo activo. No valida: Save rechaza tipos fuera de la enumeración.
// Bodegas y lote ya elegidos se conservan al cambiar de tipo.
func (f *Form) SelectOperationType(t string) {
	f.operationType = t
}

// SetWarehouse fija la bodega de entrada (incoming) u origen (transfer).
func (f *Form) SetWarehouse(id string) { f.warehouseID = id }

// SetDestinationWarehouse fija la bodega destino de un traslado.
func (f *Form) SetDestinationWarehouse(id string) { f.destinationWarehouseID = id }

// SetBatchName fija el nombre de lote.
func (f *Form) SetBatchName(name string) { f.batchName = name }

// SetNotes fija las notas libres.
func (f *Form) SetNotes(notes string) { f.notes = notes }

// SelectProduct fija el producto cuyo empaque se está capturando.
func (f *Form) SelectProduct(id string) { f.currentProductID = id }

// CurrentProductID devuelve el producto seleccionado.
func (f *Form) CurrentProductID() string { return f.currentProductID }

// SelectPackagingType fija la etiqueta de empaque en captura.
func (f *Form) SelectPackagingType(label string) { f.currentPackagingType = label }

// CurrentPackagingType devuelve la etiqueta de empaque en captura.
func (f *Form) CurrentPackagingType() string { return f.currentPackagingType }

// AddPackagingLine agrega una línea si typ no está vacío y countText empieza por un entero positivo.
// Si se acepta, limpia la etiqueta en captura. Devuelve false sin cambios en caso contrario.
func (f *Form) AddPackagingLine(typ, countText string) bool {
	if typ == "" || strings.TrimSpace(countText) == "" {
		return false
	}
	count, ok := domop.ParseCount(countText)
	if !ok {
		return false
	}
	f.currentPackaging = append(f.currentPackaging, domop.PackagingLine{Type: typ, Count: count})
	f.currentPackagingType = ""
	return true
}

// RemovePackagingLine quita la línea en la posición i. Índices fuera de rango no hacen nada.
func (f *Form) RemovePackagingLine(i int) {
	if i < 0 || i >= len(f.currentPackaging) {
		return
	}
	f.currentPackaging = append(f.currentPackaging[:i:i], f.currentPackaging[i+1:]...)
}

// CurrentQuantity devuelve la cantidad total de las líneas en captura.
func (f *Form) CurrentQuantity() int {
	return domop.QuantityForLines(f.currentPackaging)
}

// AddProductToList agrega el producto seleccionado con una copia de sus líneas. Requiere producto
// y al menos una línea; de lo contrario no hace nada y devuelve false. Conserva el producto
// seleccionado para capturar más empaques del mismo.
func (f *Form) AddProductToList() bool {
	if f.currentProductID == "" || len(f.currentPackaging) == 0 {
		return false
	}
	f.selectedProducts = append(f.selectedProducts, domop.ProductEntry{
		ProductID: f.currentProductID,
		Packaging: domop.CloneLines(f.currentPackaging),
	})
	f.currentPackaging = nil
	f.currentPackagingType = ""
	return true
}

// RemoveProduct quita la entrada en la posición i. Índices fuera de rango no hacen nada.
func (f *Form) RemoveProduct(i int) {
	if i < 0 || i >= len(f.selectedProducts) {
		return
	}
	f.selectedProducts = append(f.selectedProducts[:i:i], f.selectedProducts[i+1:]...)
}

// SelectedProducts devuelve una copia de las entradas agregadas.
func (f *Form) SelectedProducts() []domop.ProductEntry {
	out := make([]domop.ProductEntry, 0, len(f.selectedProducts))
	for _, e := range f.selectedProducts {
		out = append(out, e.Clone())
	}
	return out
}

// TotalQuantity suma las cantidades de todas las entradas agregadas.
func (f *Form) TotalQuantity() int {
	return domop.QuantityForEntries(f.selectedProducts)
}

// CanSave indica si hay tipo y al menos un producto.
func (f *Form) CanSave() bool {
	return f.operationType != "" && len(f.selectedProducts) > 0
}

// Reset limpia todo el estado transitorio. Es idempotente.
func (f *Form) Reset() {
	*f = Form{}
}
