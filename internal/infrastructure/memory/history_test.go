package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-ops/internal/domain/entity"
)

func TestOperationHistoryRepo_AppendAndListRecent(t *testing.T) {
	r := NewOperationHistoryRepository()
	ctx := context.Background()

	for _, name := range []string{"A", "B", "C"} {
		require.NoError(t, r.Append(ctx, &entity.OperationRecord{ProductName: name}))
	}

	all, err := r.ListRecent(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "C", all[0].ProductName)
	assert.Equal(t, "A", all[2].ProductName)
	assert.NotEmpty(t, all[0].ID)
	assert.False(t, all[0].Timestamp.IsZero())

	two, err := r.ListRecent(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, two, 2)

	two[0].ProductName = "mutado"
	again, _ := r.ListRecent(ctx, 1)
	assert.Equal(t, "C", again[0].ProductName)
}

func TestOperationHistoryRepo_FailAfter(t *testing.T) {
	boom := errors.New("lleno")
	r := &OperationHistoryRepo{FailAfter: 1, FailErr: boom}
	ctx := context.Background()

	require.NoError(t, r.Append(ctx, &entity.OperationRecord{}))
	assert.ErrorIs(t, r.Append(ctx, &entity.OperationRecord{}), boom)
	assert.Equal(t, 1, r.Len())
}
