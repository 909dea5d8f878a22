package dto

import (
	"bytes"
	"encoding/json"
	"time"
)

// SelectOperationTypeRequest body para PUT /api/operations/draft/type.
type SelectOperationTypeRequest struct {
	Type string `json:"type"`
}

// UpdateDraftRequest body para PATCH /api/operations/draft. Solo se aplican los campos presentes.
type UpdateDraftRequest struct {
	WarehouseID            *string `json:"warehouse_id"`
	DestinationWarehouseID *string `json:"destination_warehouse_id"`
	BatchName              *string `json:"batch_name"`
	Notes                  *string `json:"notes"`
	ProductID              *string `json:"product_id"`
	PackagingType          *string `json:"packaging_type"`
}

// AddPackagingLineRequest body para POST /api/operations/draft/packaging-lines.
// Type vacío usa la etiqueta en captura del borrador. Count es el texto tal como se ingresó.
type AddPackagingLineRequest struct {
	Type  string    `json:"type"`
	Count CountText `json:"count"`
}

// CountText cantidad ingresada por el operador. En JSON acepta una cadena ("3") o un número (3);
// el número se conserva como texto para aplicar la misma lectura del entero inicial.
type CountText string

// UnmarshalJSON implementa json.Unmarshaler.
func (c *CountText) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*c = ""
		return nil
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*c = CountText(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*c = CountText(n.String())
	return nil
}

// AddPackagingOptionRequest body para POST /api/operations/draft/packaging-options.
type AddPackagingOptionRequest struct {
	Label string `json:"label"`
}

// PackagingLineDTO línea de empaque con su cantidad calculada.
type PackagingLineDTO struct {
	Type     string `json:"type"`
	Count    int    `json:"count"`
	Quantity int    `json:"quantity"`
}

// ProductEntryDTO producto agregado a la operación con su desglose.
type ProductEntryDTO struct {
	ProductID   string             `json:"product_id"`
	ProductName string             `json:"product_name"`
	Packaging   []PackagingLineDTO `json:"packaging"`
	Quantity    int                `json:"quantity"`
}

// VisibilityDTO campos adicionales visibles para el tipo activo.
type VisibilityDTO struct {
	Warehouse            bool `json:"warehouse"`
	BatchName            bool `json:"batch_name"`
	SourceWarehouse      bool `json:"source_warehouse"`
	DestinationWarehouse bool `json:"destination_warehouse"`
}

// DraftResponse estado del borrador de operación del operador.
type DraftResponse struct {
	OperationType          string             `json:"operation_type"`
	WarehouseID            string             `json:"warehouse_id"`
	DestinationWarehouseID string             `json:"destination_warehouse_id"`
	BatchName              string             `json:"batch_name"`
	Notes                  string             `json:"notes"`
	CurrentProductID       string             `json:"current_product_id"`
	CurrentPackagingType   string             `json:"current_packaging_type"`
	CurrentPackaging       []PackagingLineDTO `json:"current_packaging"`
	CurrentQuantity        int                `json:"current_quantity"`
	SelectedProducts       []ProductEntryDTO  `json:"selected_products"`
	TotalQuantity          int                `json:"total_quantity"`
	Visibility             VisibilityDTO      `json:"visibility"`
	CanSave                bool               `json:"can_save"`
}

// DraftMutationResponse respuesta de una acción sobre el borrador. Accepted es false cuando la
// acción se ignoró por datos incompletos (equivale a un botón deshabilitado).
type DraftMutationResponse struct {
	Accepted     bool          `json:"accepted"`
	Draft        DraftResponse `json:"draft"`
	Notification *Notification `json:"notification,omitempty"`
}

// SaveOperationResponse resultado de POST /api/operations/draft/save.
type SaveOperationResponse struct {
	TransactionID string        `json:"transaction_id"`
	Saved         int           `json:"saved"`
	Skipped       int           `json:"skipped"`
	Notification  *Notification `json:"notification"`
	Error         string        `json:"error,omitempty"` // guardado interrumpido
}

// OperationRecordResponse registro del historial de operaciones.
type OperationRecordResponse struct {
	ID                   string    `json:"id"`
	TransactionID        string    `json:"transaction_id"`
	Type                 string    `json:"type"`
	ProductName          string    `json:"product_name"`
	Quantity             int       `json:"quantity"`
	Warehouse            string    `json:"warehouse"`
	DestinationWarehouse string    `json:"destination_warehouse,omitempty"`
	BatchName            string    `json:"batch_name,omitempty"`
	Notes                string    `json:"notes,omitempty"`
	Timestamp            time.Time `json:"timestamp"`
}
