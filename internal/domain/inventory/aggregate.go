package inventory

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/stockmaster-api/internal/domain/entity"
)

// UncategorizedLabel etiqueta para productos sin categoría en el desglose.
const UncategorizedLabel = "Uncategorized"

// recentProductsLimit número de productos en el widget "recientes" del dashboard.
const recentProductsLimit = 5

// CategoryStat un grupo del desglose por categoría.
type CategoryStat struct {
	Name  string
	Count int
	Value decimal.Decimal // suma de quantity * selling_price del grupo
}

// Stats resumen del dashboard, derivado del set completo de productos.
type Stats struct {
	TotalProducts int
	LowStock      int // 0 < quantity <= reorder_level
	OutOfStock    int // quantity == 0
	TotalValue    decimal.Decimal
	// CategoryBreakdown conserva el orden de primera aparición, no ordena;
	// quien necesite otro orden debe ordenar explícitamente.
	CategoryBreakdown []CategoryStat
	RecentProducts    []entity.Product // los 5 más recientes por created_at
}

// Aggregate deriva las estadísticas del dashboard. Función pura sobre la lista
// completa de productos; TotalValue usa aritmética decimal exacta para no
// acumular error de redondeo flotante en catálogos grandes.
func Aggregate(products []entity.Product) Stats {
	stats := Stats{
		TotalValue:        decimal.Zero,
		CategoryBreakdown: make([]CategoryStat, 0),
	}
	indexByName := make(map[string]int)

	for _, p := range products {
		stats.TotalProducts++
		switch StockStatus(p.Quantity, p.ReorderLevel) {
		case StatusLowStock:
			stats.LowStock++
		case StatusOutOfStock:
			stats.OutOfStock++
		}

		value := p.SellingPrice.Mul(decimal.NewFromInt(int64(p.Quantity)))
		stats.TotalValue = stats.TotalValue.Add(value)

		name := p.CategoryName
		if name == "" {
			name = UncategorizedLabel
		}
		idx, ok := indexByName[name]
		if !ok {
			idx = len(stats.CategoryBreakdown)
			indexByName[name] = idx
			stats.CategoryBreakdown = append(stats.CategoryBreakdown, CategoryStat{Name: name, Value: decimal.Zero})
		}
		stats.CategoryBreakdown[idx].Count++
		stats.CategoryBreakdown[idx].Value = stats.CategoryBreakdown[idx].Value.Add(value)
	}

	stats.RecentProducts = recentProducts(products)
	return stats
}

// recentProducts devuelve los 5 productos más recientes por CreatedAt descendente;
// empates conservan el orden de entrada (sort estable).
func recentProducts(products []entity.Product) []entity.Product {
	recent := make([]entity.Product, len(products))
	copy(recent, products)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})
	if len(recent) > recentProductsLimit {
		recent = recent[:recentProductsLimit]
	}
	return recent
}
