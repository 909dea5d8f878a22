package analytics

import (
	"context"
	"fmt"

	"github.com/jhoicas/inventory-ops/internal/application/dto"
	"github.com/jhoicas/inventory-ops/internal/domain/entity"
	"github.com/jhoicas/inventory-ops/internal/domain/repository"
)

const defaultRecentOperations = 20 // operaciones en el widget de recientes

// ReportUseCase arma los reportes de solo lectura.
//
// Fuentes: ProductRepository (resumen) y OperationHistoryRepository (recientes).
// No modifica ninguno de los dos colaboradores.
type ReportUseCase struct {
	productRepo repository.ProductRepository
	historyRepo repository.OperationHistoryRepository
	formatter   OperationFormatter
}

// NewReportUseCase construye el caso de uso. formatter nil usa DefaultFormatter.
func NewReportUseCase(
	productRepo repository.ProductRepository,
	historyRepo repository.OperationHistoryRepository,
	formatter OperationFormatter,
) *ReportUseCase {
	if formatter == nil {
		formatter = DefaultFormatter{}
	}
	return &ReportUseCase{productRepo: productRepo, historyRepo: historyRepo, formatter: formatter}
}

// GetSummary recalcula el resumen a partir del catálogo actual.
func (uc *ReportUseCase) GetSummary(ctx context.Context) (*dto.ReportSummaryDTO, error) {
	products, err := uc.productRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("reporte: productos: %w", err)
	}
	out := toSummaryDTO(ComputeSummary(products))
	return &out, nil
}

// RecentOperations devuelve hasta limit registros en el orden del historial (limit <= 0 usa el
// valor por defecto), decorados con ícono, color y fecha formateada.
func (uc *ReportUseCase) RecentOperations(ctx context.Context, limit int) (*dto.RecentOperationsDTO, error) {
	if limit <= 0 {
		limit = defaultRecentOperations
	}
	records, err := uc.historyRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("reporte: historial: %w", err)
	}
	out := uc.toRecentDTO(records)
	return &out, nil
}

// GetReport construye resumen y recientes en paralelo.
func (uc *ReportUseCase) GetReport(ctx context.Context, limit int) (*dto.ReportDTO, error) {
	type summaryResult struct {
		summary *dto.ReportSummaryDTO
		err     error
	}
	type recentResult struct {
		recent *dto.RecentOperationsDTO
		err    error
	}

	summaryCh := make(chan summaryResult, 1)
	recentCh := make(chan recentResult, 1)

	go func() {
		s, err := uc.GetSummary(ctx)
		summaryCh <- summaryResult{s, err}
	}()
	go func() {
		r, err := uc.RecentOperations(ctx, limit)
		recentCh <- recentResult{r, err}
	}()

	summary := <-summaryCh
	recent := <-recentCh

	if summary.err != nil {
		return nil, summary.err
	}
	if recent.err != nil {
		return nil, recent.err
	}
	return &dto.ReportDTO{Summary: *summary.summary, Operations: *recent.recent}, nil
}

// RequestExport acción de exportación pendiente de implementar.
func (uc *ReportUseCase) RequestExport() *dto.Notification {
	return &dto.Notification{
		Title:       "Exportación",
		Description: "La exportación de reportes aún no está disponible",
		Variant:     dto.NotificationDefault,
	}
}

// RequestDateFilter filtro por fechas pendiente de implementar.
func (uc *ReportUseCase) RequestDateFilter() *dto.Notification {
	return &dto.Notification{
		Title:       "Selección de fecha",
		Description: "El filtro por fechas aún no está disponible",
		Variant:     dto.NotificationDefault,
	}
}

func toSummaryDTO(s Summary) dto.ReportSummaryDTO {
	return dto.ReportSummaryDTO{
		Total:      s.Total,
		Active:     s.Active,
		LowStock:   s.LowStock,
		OutOfStock: s.OutOfStock,
		TotalStock: s.TotalStock,
		Shares: dto.StatusSharesDTO{
			Active:     Share(s.Active, s.Total),
			LowStock:   Share(s.LowStock, s.Total),
			OutOfStock: Share(s.OutOfStock, s.Total),
		},
	}
}

func (uc *ReportUseCase) toRecentDTO(records []*entity.OperationRecord) dto.RecentOperationsDTO {
	items := make([]dto.RecentOperationDTO, 0, len(records))
	for _, r := range records {
		items = append(items, dto.RecentOperationDTO{
			ID:            r.ID,
			Type:          r.Type,
			ProductName:   r.ProductName,
			Quantity:      r.Quantity,
			Warehouse:     r.Warehouse,
			Timestamp:     r.Timestamp,
			FormattedTime: uc.formatter.FormatTimestamp(r.Timestamp),
			Icon:          uc.formatter.Icon(r.Type),
			Color:         uc.formatter.Color(r.Type),
		})
	}
	return dto.RecentOperationsDTO{Items: items, Total: len(items)}
}
