package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/inventory-ops/internal/domain/entity"
	"github.com/jhoicas/inventory-ops/internal/domain/repository"
)

var _ repository.OperationHistoryRepository = (*OperationHistoryRepo)(nil)

// OperationHistoryRepo historial en memoria; el registro más reciente queda primero.
type OperationHistoryRepo struct {
	mu      sync.RWMutex
	records []entity.OperationRecord
	// FailAfter, si es > 0, hace fallar Append a partir de ese número de registros (tests).
	FailAfter int
	FailErr   error
}

// NewOperationHistoryRepository construye un historial vacío.
func NewOperationHistoryRepository() *OperationHistoryRepo {
	return &OperationHistoryRepo{}
}

// Append guarda una copia de record al principio del historial.
func (r *OperationHistoryRepo) Append(_ context.Context, record *entity.OperationRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailAfter > 0 && len(r.records) >= r.FailAfter {
		return r.FailErr
	}
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	if record.Timestamp.IsZero() {
		record.Timestamp = time.Now()
	}
	r.records = append([]entity.OperationRecord{*record}, r.records...)
	return nil
}

// ListRecent devuelve copias del más reciente al más antiguo; limit <= 0 devuelve todos.
func (r *OperationHistoryRepo) ListRecent(_ context.Context, limit int) ([]*entity.OperationRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := len(r.records)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]*entity.OperationRecord, 0, n)
	for i := 0; i < n; i++ {
		rec := r.records[i]
		out = append(out, &rec)
	}
	return out, nil
}

// Len número de registros guardados.
func (r *OperationHistoryRepo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records)
}
