package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/inventory-ops/internal/domain/entity"
	"github.com/jhoicas/inventory-ops/internal/domain/repository"
)

var _ repository.OperationHistoryRepository = (*OperationHistoryRepo)(nil)

// OperationHistoryRepo historial de operaciones sobre PostgreSQL. Solo inserta y lee.
type OperationHistoryRepo struct {
	q Querier
}

// NewOperationHistoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOperationHistoryRepository(q Querier) *OperationHistoryRepo {
	return &OperationHistoryRepo{q: q}
}

// Append inserta un registro. Asigna ID y Timestamp si vienen vacíos.
func (r *OperationHistoryRepo) Append(ctx context.Context, rec *entity.OperationRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.Timestamp.IsZero() {
		rec.Timestamp = time.Now()
	}
	query := `
		INSERT INTO operation_records (id, transaction_id, type, product_name, quantity, warehouse,
			destination_warehouse, batch_name, notes, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		rec.ID, rec.TransactionID, rec.Type, rec.ProductName, rec.Quantity, rec.Warehouse,
		rec.DestinationWarehouse, rec.BatchName, rec.Notes, rec.CreatedBy, rec.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("insert operation record: %w", err)
	}
	return nil
}

// ListRecent devuelve los registros del más reciente al más antiguo; limit <= 0 devuelve todos.
func (r *OperationHistoryRepo) ListRecent(ctx context.Context, limit int) ([]*entity.OperationRecord, error) {
	query := `
		SELECT id, transaction_id, type, product_name, quantity, warehouse,
			destination_warehouse, batch_name, notes, created_by, created_at
		FROM operation_records
		ORDER BY created_at DESC, seq DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list operation records: %w", err)
	}
	defer rows.Close()

	var list []*entity.OperationRecord
	for rows.Next() {
		var rec entity.OperationRecord
		if err := rows.Scan(
			&rec.ID, &rec.TransactionID, &rec.Type, &rec.ProductName, &rec.Quantity, &rec.Warehouse,
			&rec.DestinationWarehouse, &rec.BatchName, &rec.Notes, &rec.CreatedBy, &rec.Timestamp,
		); err != nil {
			return nil, fmt.Errorf("scan operation record: %w", err)
		}
		list = append(list, &rec)
	}
	return list, rows.Err()
}
