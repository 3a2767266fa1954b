package analytics

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/stockmaster-api/internal/application/dto"
	"github.com/tu-usuario/stockmaster-api/internal/domain/entity"
	"github.com/tu-usuario/stockmaster-api/internal/domain/inventory"
	"github.com/tu-usuario/stockmaster-api/internal/domain/repository"
)

// DashboardUseCase deriva el resumen del dashboard a partir del catálogo
// completo. Nada se pre-agrega ni se cachea: cada consulta recalcula desde el
// estado actual de productos.
type DashboardUseCase struct {
	products repository.ProductRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(products repository.ProductRepository) *DashboardUseCase {
	return &DashboardUseCase{products: products}
}

// Summary calcula las estadísticas del dashboard.
func (uc *DashboardUseCase) Summary() (*dto.DashboardSummaryDTO, error) {
	products, err := uc.products.List()
	if err != nil {
		return nil, err
	}
	stats := inventory.Aggregate(products)

	breakdown := make([]dto.CategoryStatDTO, 0, len(stats.CategoryBreakdown))
	for _, c := range stats.CategoryBreakdown {
		breakdown = append(breakdown, dto.CategoryStatDTO{Name: c.Name, Count: c.Count, Value: c.Value})
	}
	recent := make([]dto.ProductResponse, 0, len(stats.RecentProducts))
	for i := range stats.RecentProducts {
		recent = append(recent, toProductResponse(&stats.RecentProducts[i]))
	}

	return &dto.DashboardSummaryDTO{
		TotalProducts:     stats.TotalProducts,
		LowStock:          stats.LowStock,
		OutOfStock:        stats.OutOfStock,
		TotalValue:        stats.TotalValue,
		CategoryBreakdown: breakdown,
		RecentProducts:    recent,
	}, nil
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	status := inventory.StockStatus(p.Quantity, p.ReorderLevel)
	return dto.ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		SKU:           p.SKU,
		CategoryID:    p.CategoryID,
		CategoryName:  p.CategoryName,
		CategoryColor: p.CategoryColor,
		SupplierID:    p.SupplierID,
		SupplierName:  p.SupplierName,
		CostPrice:     p.CostPrice,
		SellingPrice:  p.SellingPrice,
		Quantity:      p.Quantity,
		ReorderLevel:  p.ReorderLevel,
		Status:        string(status),
		StatusLabel:   status.Label(),
		TotalValue:    p.SellingPrice.Mul(decimal.NewFromInt(int64(p.Quantity))),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
