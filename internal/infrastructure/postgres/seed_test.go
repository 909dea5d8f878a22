package postgres

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-ops/internal/domain/entity"
)

func TestWriteSeedSQL(t *testing.T) {
	var buf bytes.Buffer
	err := WriteSeedSQL(&buf,
		[]*entity.Product{{ID: "p1", Name: "O'Brien", Article: "A-1", Stock: 7, Status: entity.ProductStatusActive}},
		[]*entity.Warehouse{{ID: "w1", Name: "Anbar 1"}},
	)
	require.NoError(t, err)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "-- "))
	assert.Contains(t, out, "VALUES ('w1', 'Anbar 1')")
	assert.Contains(t, out, "VALUES ('p1', 'O''Brien', 'A-1', 7, 'active')")
	assert.True(t, strings.HasSuffix(out, "COMMIT;\n"))
}
