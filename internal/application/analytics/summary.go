// Package analytics contiene los casos de uso de reportes: resumen del catálogo y
// operaciones recientes del historial.
package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventory-ops/internal/domain/entity"
)

// LowStockThreshold: un producto con 0 < stock < LowStockThreshold está "por agotarse".
const LowStockThreshold = 50

// Summary conteos agregados del catálogo.
type Summary struct {
	Total      int
	Active     int
	LowStock   int
	OutOfStock int
	TotalStock int
}

// ComputeSummary agrega el catálogo. Función pura: mismo resultado para la misma entrada.
func ComputeSummary(products []*entity.Product) Summary {
	s := Summary{Total: len(products)}
	for _, p := range products {
		if p.IsActive() {
			s.Active++
		}
		switch {
		case p.Stock == 0:
			s.OutOfStock++
		case p.Stock > 0 && p.Stock < LowStockThreshold:
			s.LowStock++
		}
		s.TotalStock += p.Stock
	}
	return s
}

// Share devuelve part/total en porcentaje con 2 decimales; 0 si total es 0.
func Share(part, total int) decimal.Decimal {
	if total <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(part)).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(total))).
		Round(2)
}
