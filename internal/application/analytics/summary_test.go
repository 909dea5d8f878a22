package analytics

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/inventory-ops/internal/domain/entity"
)

func product(stock int, status string) *entity.Product {
	return &entity.Product{Stock: stock, Status: status}
}

func TestComputeSummary(t *testing.T) {
	tests := []struct {
		name     string
		products []*entity.Product
		want     Summary
	}{
		{
			name: "vacío",
			want: Summary{},
		},
		{
			name: "umbrales de stock",
			products: []*entity.Product{
				product(0, entity.ProductStatusActive),
				product(10, entity.ProductStatusActive),
				product(100, entity.ProductStatusInactive),
			},
			want: Summary{Total: 3, Active: 2, LowStock: 1, OutOfStock: 1, TotalStock: 110},
		},
		{
			name: "49 está por agotarse y 50 no",
			products: []*entity.Product{
				product(49, entity.ProductStatusActive),
				product(50, entity.ProductStatusActive),
				product(1, entity.ProductStatusInactive),
			},
			want: Summary{Total: 3, Active: 2, LowStock: 2, TotalStock: 100},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeSummary(tt.products))
		})
	}
}

func TestComputeSummary_SameInputSameOutput(t *testing.T) {
	products := []*entity.Product{product(5, entity.ProductStatusActive), product(0, entity.ProductStatusActive)}
	assert.Equal(t, ComputeSummary(products), ComputeSummary(products))
}

func TestShare(t *testing.T) {
	assert.True(t, Share(1, 3).Equal(decimal.RequireFromString("33.33")))
	assert.True(t, Share(2, 3).Equal(decimal.RequireFromString("66.67")))
	assert.True(t, Share(3, 3).Equal(decimal.NewFromInt(100)))
	assert.True(t, Share(0, 0).IsZero())
	assert.True(t, Share(5, -1).IsZero())
}
