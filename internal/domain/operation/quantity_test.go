package operation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/inventory-ops/internal/domain/operation"
)

func TestQuantityForLines_TamañoPorCantidad(t *testing.T) {
	cases := []struct {
		name  string
		lines []operation.PackagingLine
		want  int
	}{
		{"entero simple", []operation.PackagingLine{{Type: "50", Count: 3}}, 150},
		{"separador +", []operation.PackagingLine{{Type: "50+kənar", Count: 2}}, 100},
		{"separador paréntesis", []operation.PackagingLine{{Type: "25(rulo)", Count: 4}}, 100},
		{"texto tras dígitos", []operation.PackagingLine{{Type: "100m", Count: 2}}, 200},
		{"espacios iniciales", []operation.PackagingLine{{Type: "  10", Count: 5}}, 50},
		{"varias líneas", []operation.PackagingLine{
			{Type: "50", Count: 3},
			{Type: "25+x", Count: 2},
		}, 200},
		{"sin líneas", nil, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, operation.QuantityForLines(tc.lines))
		})
	}
}

// Las líneas cuyo segmento inicial no es numérico aportan 0 sin importar la cantidad.
func TestQuantityForLines_EtiquetaIlegibleAportaCero(t *testing.T) {
	assert.Equal(t, 0, operation.QuantityForLines([]operation.PackagingLine{{Type: "abc", Count: 5}}))
	assert.Equal(t, 0, operation.QuantityForLines([]operation.PackagingLine{{Type: "+50", Count: 5}}))
	assert.Equal(t, 0, operation.QuantityForLines([]operation.PackagingLine{{Type: "", Count: 5}}))

	mixed := []operation.PackagingLine{
		{Type: "abc", Count: 5},
		{Type: "20", Count: 2},
	}
	assert.Equal(t, 40, operation.QuantityForLines(mixed))
}

func TestQuantityForLines_TamañoOCantidadNoPositivos(t *testing.T) {
	assert.Equal(t, 0, operation.QuantityForLines([]operation.PackagingLine{{Type: "0", Count: 5}}))
	assert.Equal(t, 0, operation.QuantityForLines([]operation.PackagingLine{{Type: "-5", Count: 5}}))
	assert.Equal(t, 0, operation.QuantityForLines([]operation.PackagingLine{{Type: "50", Count: 0}}))
	assert.Equal(t, 0, operation.QuantityForLines([]operation.PackagingLine{{Type: "50", Count: -1}}))
}

func TestQuantityForEntries(t *testing.T) {
	entries := []operation.ProductEntry{
		{ProductID: "p1", Packaging: []operation.PackagingLine{{Type: "50", Count: 3}}},
		{ProductID: "p2", Packaging: []operation.PackagingLine{{Type: "10+x", Count: 1}, {Type: "abc", Count: 9}}},
	}
	assert.Equal(t, 160, operation.QuantityForEntries(entries))
}

func TestProductEntryClone_CopiaProfunda(t *testing.T) {
	orig := operation.ProductEntry{ProductID: "p1", Packaging: []operation.PackagingLine{{Type: "50", Count: 1}}}
	clone := orig.Clone()
	clone.Packaging[0].Count = 99

	assert.Equal(t, 1, orig.Packaging[0].Count, "modificar la copia no debe afectar al original")
}

func TestLeadingInt(t *testing.T) {
	cases := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"3", 3, true},
		{" 7", 7, true},
		{"12abc", 12, true},
		{"-4", -4, true},
		{"abc", 0, false},
		{"", 0, false},
		{"-", 0, false},
		{"99999999999999999999999", 0, false},
	}
	for _, tc := range cases {
		n, ok := operation.LeadingInt(tc.in)
		assert.Equal(t, tc.wantOK, ok, "entrada %q", tc.in)
		assert.Equal(t, tc.want, n, "entrada %q", tc.in)
	}
}

func TestParseCount(t *testing.T) {
	n, ok := operation.ParseCount("3")
	assert.True(t, ok)
	assert.Equal(t, 3, n)

	for _, in := range []string{"0", "-2", "", "x"} {
		_, ok := operation.ParseCount(in)
		assert.False(t, ok, "entrada %q debe rechazarse", in)
	}
}
