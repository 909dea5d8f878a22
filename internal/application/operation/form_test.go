package operation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-ops/internal/domain/entity"
	domop "github.com/jhoicas/inventory-ops/internal/domain/operation"
)

func TestVisibilityFor(t *testing.T) {
	tests := []struct {
		typ  string
		want Visibility
	}{
		{entity.OperationTypeIncoming, Visibility{Warehouse: true, BatchName: true}},
		{entity.OperationTypeTransfer, Visibility{SourceWarehouse: true, DestinationWarehouse: true}},
		{entity.OperationTypeSale, Visibility{}},
		{entity.OperationTypeAdjustment, Visibility{}},
		{"", Visibility{}},
		{"desconocido", Visibility{}},
	}
	for _, tt := range tests {
		t.Run(tt.typ, func(t *testing.T) {
			assert.Equal(t, tt.want, VisibilityFor(tt.typ))
		})
	}
}

func TestForm_SelectOperationTypeKeepsSelections(t *testing.T) {
	f := NewForm()
	f.SelectOperationType(entity.OperationTypeIncoming)
	f.SetWarehouse("w1")
	f.SetBatchName("lote-7")

	f.SelectOperationType(entity.OperationTypeSale)

	s := f.State()
	assert.Equal(t, entity.OperationTypeSale, s.OperationType)
	assert.Equal(t, "w1", s.WarehouseID)
	assert.Equal(t, "lote-7", s.BatchName)
	assert.Equal(t, Visibility{}, s.Visibility)
}

func TestForm_AddPackagingLine(t *testing.T) {
	tests := []struct {
		name     string
		typ      string
		count    string
		accepted bool
	}{
		{"válida", "50+kənar", "3", true},
		{"conteo con texto final", "50", "3 cajas", true},
		{"tipo vacío", "", "3", false},
		{"conteo vacío", "50", "", false},
		{"conteo en blanco", "50", "   ", false},
		{"conteo cero", "50", "0", false},
		{"conteo negativo", "50", "-2", false},
		{"conteo no numérico", "50", "abc", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewForm()
			f.SelectPackagingType(tt.typ)
			ok := f.AddPackagingLine(tt.typ, tt.count)
			assert.Equal(t, tt.accepted, ok)
			if tt.accepted {
				require.Len(t, f.State().CurrentPackaging, 1)
				assert.Empty(t, f.CurrentPackagingType())
			} else {
				assert.Empty(t, f.State().CurrentPackaging)
				assert.Equal(t, tt.typ, f.CurrentPackagingType())
			}
		})
	}
}

func TestForm_CurrentQuantity(t *testing.T) {
	f := NewForm()
	require.True(t, f.AddPackagingLine("50+kənar", "3"))
	require.True(t, f.AddPackagingLine("10(qutu)", "1"))
	require.True(t, f.AddPackagingLine("abc", "4"))
	assert.Equal(t, 160, f.CurrentQuantity())
}

func TestForm_RemovePackagingLine(t *testing.T) {
	f := NewForm()
	require.True(t, f.AddPackagingLine("50", "1"))
	require.True(t, f.AddPackagingLine("10", "2"))
	require.True(t, f.AddPackagingLine("5", "3"))

	f.RemovePackagingLine(7)
	f.RemovePackagingLine(-1)
	assert.Len(t, f.State().CurrentPackaging, 3)

	f.RemovePackagingLine(1)
	assert.Equal(t, []domop.PackagingLine{{Type: "50", Count: 1}, {Type: "5", Count: 3}}, f.State().CurrentPackaging)
}

func TestForm_AddProductToList(t *testing.T) {
	f := NewForm()

	assert.False(t, f.AddProductToList(), "sin producto ni líneas")

	f.SelectProduct("p1")
	assert.False(t, f.AddProductToList(), "sin líneas")
	assert.Empty(t, f.SelectedProducts())

	require.True(t, f.AddPackagingLine("50", "3"))
	f.SelectPackagingType("10")
	require.True(t, f.AddProductToList())

	entries := f.SelectedProducts()
	require.Len(t, entries, 1)
	assert.Equal(t, "p1", entries[0].ProductID)
	assert.Equal(t, []domop.PackagingLine{{Type: "50", Count: 3}}, entries[0].Packaging)

	s := f.State()
	assert.Empty(t, s.CurrentPackaging)
	assert.Empty(t, s.CurrentPackagingType)
	assert.Equal(t, "p1", s.CurrentProductID)
}

func TestForm_EntriesAreIsolatedFromWorkingLines(t *testing.T) {
	f := NewForm()
	f.SelectProduct("p1")
	require.True(t, f.AddPackagingLine("50", "3"))
	require.True(t, f.AddProductToList())

	require.True(t, f.AddPackagingLine("10", "9"))
	entries := f.SelectedProducts()
	entries[0].Packaging[0].Count = 99

	assert.Equal(t, 150, f.TotalQuantity())
	assert.Equal(t, 90, f.CurrentQuantity())
}

func TestForm_RemoveProduct(t *testing.T) {
	f := NewForm()
	for _, id := range []string{"p1", "p2", "p3"} {
		f.SelectProduct(id)
		require.True(t, f.AddPackagingLine("1", "1"))
		require.True(t, f.AddProductToList())
	}

	f.RemoveProduct(3)
	assert.Len(t, f.SelectedProducts(), 3)

	f.RemoveProduct(0)
	entries := f.SelectedProducts()
	require.Len(t, entries, 2)
	assert.Equal(t, "p2", entries[0].ProductID)
	assert.Equal(t, "p3", entries[1].ProductID)
}

func TestForm_CanSave(t *testing.T) {
	f := NewForm()
	assert.False(t, f.CanSave())

	f.SelectProduct("p1")
	require.True(t, f.AddPackagingLine("1", "1"))
	require.True(t, f.AddProductToList())
	assert.False(t, f.CanSave(), "falta el tipo")

	f.SelectOperationType(entity.OperationTypeOutgoing)
	assert.True(t, f.CanSave())
}

func TestForm_Reset(t *testing.T) {
	f := NewForm()
	f.SelectOperationType(entity.OperationTypeTransfer)
	f.SetWarehouse("w1")
	f.SetDestinationWarehouse("w2")
	f.SetBatchName("lote")
	f.SetNotes("nota")
	f.SelectProduct("p1")
	require.True(t, f.AddPackagingLine("50", "1"))
	require.True(t, f.AddProductToList())
	f.SelectPackagingType("10")

	f.Reset()
	empty := NewForm().State()
	assert.Equal(t, empty, f.State())
	assert.Empty(t, f.OperationType())
	assert.Zero(t, f.TotalQuantity())

	f.Reset()
	assert.Equal(t, empty, f.State())
}
