package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tu-usuario/stockmaster-api/internal/domain/inventory"
)

// ──────────────────────────────────────────────────────────────────────────────
// StockStatus: la partición (quantity, reorder_level) debe ser exacta en los
// bordes; el dashboard, el listado y las notificaciones comparten esta función.
// ──────────────────────────────────────────────────────────────────────────────

func TestStockStatus_ParticionExactaEnBordes(t *testing.T) {
	cases := []struct {
		name         string
		quantity     int
		reorderLevel int
		want         inventory.Status
	}{
		{"cantidad cero es agotado", 0, 10, inventory.StatusOutOfStock},
		{"cantidad uno con umbral diez es bajo", 1, 10, inventory.StatusLowStock},
		{"cantidad igual al umbral es bajo", 10, 10, inventory.StatusLowStock},
		{"cantidad umbral+1 es en stock", 11, 10, inventory.StatusInStock},
		{"umbral cero: cualquier stock positivo es en stock", 1, 0, inventory.StatusInStock},
		{"umbral cero y cantidad cero es agotado", 0, 0, inventory.StatusOutOfStock},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, inventory.StockStatus(tc.quantity, tc.reorderLevel))
		})
	}
}

func TestStockStatus_Labels(t *testing.T) {
	assert.Equal(t, "Out of Stock", inventory.StatusOutOfStock.Label())
	assert.Equal(t, "Low Stock", inventory.StatusLowStock.Label())
	assert.Equal(t, "In Stock", inventory.StatusInStock.Label())
}
