package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/inventory-ops/internal/application/dto"
	"github.com/jhoicas/inventory-ops/internal/domain/repository"
)

// MaxHistoryLimit tope de registros por consulta.
const MaxHistoryLimit = 500

// HistoryUseCase lectura del historial de operaciones.
type HistoryUseCase struct {
	repo repository.OperationHistoryRepository
}

// NewHistoryUseCase construye el caso de uso.
func NewHistoryUseCase(repo repository.OperationHistoryRepository) *HistoryUseCase {
	return &HistoryUseCase{repo: repo}
}

// List devuelve los registros más recientes primero. limit fuera de (0, MaxHistoryLimit] usa el tope.
func (uc *HistoryUseCase) List(ctx context.Context, limit int) ([]dto.OperationRecordResponse, error) {
	if limit <= 0 || limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}
	records, err := uc.repo.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("listar historial: %w", err)
	}
	out := make([]dto.OperationRecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, dto.OperationRecordResponse{
			ID:                   r.ID,
			TransactionID:        r.TransactionID,
			Type:                 r.Type,
			ProductName:          r.ProductName,
			Quantity:             r.Quantity,
			Warehouse:            r.Warehouse,
			DestinationWarehouse: r.DestinationWarehouse,
			BatchName:            r.BatchName,
			Notes:                r.Notes,
			Timestamp:            r.Timestamp,
		})
	}
	return out, nil
}
