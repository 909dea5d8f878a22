package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatusSharesDTO porcentaje de productos por estado (0 si no hay productos).
type StatusSharesDTO struct {
	Active     decimal.Decimal `json:"active"`
	LowStock   decimal.Decimal `json:"low_stock"`
	OutOfStock decimal.Decimal `json:"out_of_stock"`
}

// ReportSummaryDTO respuesta de GET /api/reports/summary.
type ReportSummaryDTO struct {
	Total      int             `json:"total"`
	Active     int             `json:"active"`
	LowStock   int             `json:"low_stock"`    // 0 < stock < 50
	OutOfStock int             `json:"out_of_stock"` // stock == 0
	TotalStock int             `json:"total_stock"`
	Shares     StatusSharesDTO `json:"shares"`
}

// RecentOperationDTO registro del historial decorado para mostrar.
type RecentOperationDTO struct {
	ID            string    `json:"id"`
	Type          string    `json:"type"`
	ProductName   string    `json:"product_name"`
	Quantity      int       `json:"quantity"`
	Warehouse     string    `json:"warehouse"`
	Timestamp     time.Time `json:"timestamp"`
	FormattedTime string    `json:"formatted_time"`
	Icon          string    `json:"icon"`
	Color         string    `json:"color"`
}

// RecentOperationsDTO lista de operaciones recientes en el orden del historial.
type RecentOperationsDTO struct {
	Items []RecentOperationDTO `json:"items"`
	Total int                  `json:"total"`
}

// ReportDTO respuesta de GET /api/reports: resumen y operaciones recientes.
type ReportDTO struct {
	Summary    ReportSummaryDTO    `json:"summary"`
	Operations RecentOperationsDTO `json:"operations"`
}
