package inventory_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/stockmaster-api/internal/domain/entity"
	"github.com/tu-usuario/stockmaster-api/internal/domain/inventory"
)

func TestAggregate_Contadores(t *testing.T) {
	products := []entity.Product{
		{ID: "p1", Quantity: 0, ReorderLevel: 10, SellingPrice: decimal.NewFromInt(5)},
		{ID: "p2", Quantity: 3, ReorderLevel: 10, SellingPrice: decimal.NewFromInt(5)},
		{ID: "p3", Quantity: 50, ReorderLevel: 10, SellingPrice: decimal.NewFromInt(5)},
	}
	stats := inventory.Aggregate(products)

	assert.Equal(t, 3, stats.TotalProducts)
	assert.Equal(t, 1, stats.LowStock, "solo cuenta 0 < quantity <= reorder_level")
	assert.Equal(t, 1, stats.OutOfStock)
}

// Propiedad del contrato: el valor total se calcula con aritmética decimal exacta.
// 10.000 productos × qty 3 × $19.99 = $599.700,00 sin pérdida de precisión.
func TestAggregate_ValorTotalExactoEnCatalogoGrande(t *testing.T) {
	price := decimal.RequireFromString("19.99")
	products := make([]entity.Product, 0, 10_000)
	for i := 0; i < 10_000; i++ {
		products = append(products, entity.Product{
			ID:           fmt.Sprintf("p%d", i),
			Quantity:     3,
			ReorderLevel: 1,
			SellingPrice: price,
		})
	}

	stats := inventory.Aggregate(products)
	assert.True(t, stats.TotalValue.Equal(decimal.RequireFromString("599700.00")),
		"esperaba 599700.00 exacto, obtuve %s", stats.TotalValue)
}

// Escenario del contrato: dos productos "Tools" ($100 y $50) y uno sin categoría ($25)
// → [{Tools, 2, 150.00}, {Uncategorized, 1, 25.00}] en orden de primera aparición.
func TestAggregate_DesglosePorCategoria(t *testing.T) {
	products := []entity.Product{
		{ID: "p1", CategoryName: "Tools", Quantity: 1, SellingPrice: decimal.RequireFromString("100.00")},
		{ID: "p2", Quantity: 1, SellingPrice: decimal.RequireFromString("25.00")},
		{ID: "p3", CategoryName: "Tools", Quantity: 1, SellingPrice: decimal.RequireFromString("50.00")},
	}
	stats := inventory.Aggregate(products)

	require.Len(t, stats.CategoryBreakdown, 2)

	tools := stats.CategoryBreakdown[0]
	assert.Equal(t, "Tools", tools.Name, "el orden es el de primera aparición, no alfabético")
	assert.Equal(t, 2, tools.Count)
	assert.True(t, tools.Value.Equal(decimal.RequireFromString("150.00")))

	uncat := stats.CategoryBreakdown[1]
	assert.Equal(t, inventory.UncategorizedLabel, uncat.Name)
	assert.Equal(t, 1, uncat.Count)
	assert.True(t, uncat.Value.Equal(decimal.RequireFromString("25.00")))
}

func TestAggregate_ProductosRecientes(t *testing.T) {
	base := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	products := make([]entity.Product, 0, 8)
	for i := 0; i < 8; i++ {
		products = append(products, entity.Product{
			ID:        fmt.Sprintf("p%d", i),
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		})
	}

	stats := inventory.Aggregate(products)

	require.Len(t, stats.RecentProducts, 5)
	assert.Equal(t, "p7", stats.RecentProducts[0].ID, "el más nuevo primero")
	assert.Equal(t, "p3", stats.RecentProducts[4].ID)
}

func TestAggregate_CatalogoVacio(t *testing.T) {
	stats := inventory.Aggregate(nil)
	assert.Equal(t, 0, stats.TotalProducts)
	assert.True(t, stats.TotalValue.IsZero())
	assert.Empty(t, stats.CategoryBreakdown)
	assert.Empty(t, stats.RecentProducts)
}
