package inventory

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/stockmaster-api/internal/domain/entity"
	domaininv "github.com/tu-usuario/stockmaster-api/internal/domain/inventory"
	"github.com/tu-usuario/stockmaster-api/internal/domain/repository"
)

// LowStockItem una línea del reporte de reposición: el producto, su estado y la
// cantidad sugerida de pedido para volver al stock ideal (1.5x el umbral).
type LowStockItem struct {
	Product      entity.Product
	Status       domaininv.Status
	SuggestedQty int
}

// LowStockReport el reporte completo con su fecha de generación.
type LowStockReport struct {
	GeneratedAt time.Time
	Items       []LowStockItem
}

// LowStockReportUseCase genera el reporte de productos en o bajo su umbral de
// reposición, exportable a PDF.
type LowStockReportUseCase struct {
	products repository.ProductRepository
	pdf      LowStockPDFGenerator
}

// NewLowStockReportUseCase construye el caso de uso.
func NewLowStockReportUseCase(products repository.ProductRepository, pdf LowStockPDFGenerator) *LowStockReportUseCase {
	return &LowStockReportUseCase{products: products, pdf: pdf}
}

// Build arma el reporte: productos con quantity <= reorder_level, ordenados por
// cantidad ascendente (los agotados primero).
func (uc *LowStockReportUseCase) Build() (*LowStockReport, error) {
	products, err := uc.products.List()
	if err != nil {
		return nil, err
	}
	items := make([]LowStockItem, 0)
	for i := range products {
		p := products[i]
		status := domaininv.StockStatus(p.Quantity, p.ReorderLevel)
		if status == domaininv.StatusInStock {
			continue
		}
		items = append(items, LowStockItem{
			Product:      p,
			Status:       status,
			SuggestedQty: suggestedOrderQty(p.Quantity, p.ReorderLevel),
		})
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Product.Quantity < items[j].Product.Quantity
	})
	return &LowStockReport{GeneratedAt: time.Now(), Items: items}, nil
}

// GeneratePDF arma el reporte y lo renderiza como PDF.
func (uc *LowStockReportUseCase) GeneratePDF(ctx context.Context) ([]byte, error) {
	report, err := uc.Build()
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateLowStockPDF(ctx, report)
}

// suggestedOrderQty cantidad sugerida de pedido: stock ideal (1.5x el umbral,
// redondeado hacia arriba) menos el stock actual, nunca negativa.
func suggestedOrderQty(quantity, reorderLevel int) int {
	ideal := decimal.NewFromInt(int64(reorderLevel)).Mul(decimal.NewFromFloat(1.5)).Ceil()
	suggested := ideal.Sub(decimal.NewFromInt(int64(quantity)))
	if suggested.LessThanOrEqual(decimal.Zero) {
		return 0
	}
	return int(suggested.IntPart())
}
