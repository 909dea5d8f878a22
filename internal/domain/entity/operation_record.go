package entity

import "time"

// Tipos de operación de inventario.
const (
	OperationTypeIncoming   = "incoming"   // entrada
	OperationTypeOutgoing   = "outgoing"   // salida
	OperationTypeSale       = "sale"       // venta
	OperationTypeReturn     = "return"     // devolución
	OperationTypeTransfer   = "transfer"   // traslado entre bodegas
	OperationTypeAdjustment = "adjustment" // ajuste
)

// OperationTypes lista los tipos válidos en el orden en que se ofrecen al operador.
var OperationTypes = []string{
	OperationTypeIncoming,
	OperationTypeOutgoing,
	OperationTypeSale,
	OperationTypeReturn,
	OperationTypeTransfer,
	OperationTypeAdjustment,
}

// IsValidOperationType indica si t pertenece a la enumeración.
func IsValidOperationType(t string) bool {
	for _, v := range OperationTypes {
		if v == t {
			return true
		}
	}
	return false
}

// OperationRecord es una entrada del historial de operaciones: una por producto guardado.
// Nunca se modifica después de creada.
type OperationRecord struct {
	ID                   string
	TransactionID        string // agrupa los registros emitidos por un mismo guardado
	Type                 string
	ProductName          string
	Quantity             int
	Warehouse            string
	DestinationWarehouse string
	BatchName            string
	Notes                string
	Timestamp            time.Time
	CreatedBy            string // UserID
}
