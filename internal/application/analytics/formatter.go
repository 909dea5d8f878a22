package analytics

import (
	"time"

	"github.com/jhoicas/inventory-ops/internal/domain/entity"
)

// OperationFormatter decide cómo se muestra un registro del historial.
type OperationFormatter interface {
	Icon(operationType string) string
	Color(operationType string) string
	FormatTimestamp(ts time.Time) string
}

// DefaultFormatter íconos y clases de color por tipo de operación.
type DefaultFormatter struct {
	Layout   string         // por defecto "02.01.2006 15:04"
	Location *time.Location // por defecto time.Local
}

var operationIcons = map[string]string{
	entity.OperationTypeIncoming:   "📥",
	entity.OperationTypeOutgoing:   "📤",
	entity.OperationTypeSale:       "💰",
	entity.OperationTypeReturn:     "↩️",
	entity.OperationTypeTransfer:   "🔄",
	entity.OperationTypeAdjustment: "⚙️",
}

var operationColors = map[string]string{
	entity.OperationTypeIncoming:   "text-success",
	entity.OperationTypeOutgoing:   "text-destructive",
	entity.OperationTypeSale:       "text-primary",
	entity.OperationTypeReturn:     "text-warning",
	entity.OperationTypeTransfer:   "text-info",
	entity.OperationTypeAdjustment: "text-muted-foreground",
}

// Icon devuelve el ícono del tipo; "📋" para tipos desconocidos.
func (DefaultFormatter) Icon(t string) string {
	if icon, ok := operationIcons[t]; ok {
		return icon
	}
	return "📋"
}

// Color devuelve la clase de color del tipo; "text-foreground" para tipos desconocidos.
func (DefaultFormatter) Color(t string) string {
	if c, ok := operationColors[t]; ok {
		return c
	}
	return "text-foreground"
}

// FormatTimestamp formatea ts en la zona y formato configurados.
func (f DefaultFormatter) FormatTimestamp(ts time.Time) string {
	layout := f.Layout
	if layout == "" {
		layout = "02.01.2006 15:04"
	}
	loc := f.Location
	if loc == nil {
		loc = time.Local
	}
	return ts.In(loc).Format(layout)
}
