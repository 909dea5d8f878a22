package pdf

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-ops/internal/application/operation"
)

func TestMarotoPDFGenerator_GenerateOperationPDF(t *testing.T) {
	g := NewMarotoPDFGenerator("inventory-ops")

	out, err := g.GenerateOperationPDF(context.Background(), operation.OperationSummary{
		Title:        "Operación incoming",
		Date:         "05.03.2024",
		ProductNames: "Cuaderno (A-1), Lápiz (B-2)",
		Quantity:     160,
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestMarotoPDFGenerator_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewMarotoPDFGenerator("").GenerateOperationPDF(ctx, operation.OperationSummary{Title: "x"})
	assert.ErrorIs(t, err, context.Canceled)
}
