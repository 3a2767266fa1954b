package inventory

import (
	"context"

	"github.com/tu-usuario/stockmaster-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción del store. Los repositorios que
// recibe fn están atados a esa transacción: si fn devuelve error se hace
// rollback completo, si no, commit. El ledger y la cantidad del producto nunca
// se persisten por separado.
type TxRunner interface {
	Run(ctx context.Context, fn func(movements repository.StockMovementRepository, products repository.ProductRepository) error) error
}

// LowStockPDFGenerator renderiza el reporte de reposición como PDF.
type LowStockPDFGenerator interface {
	GenerateLowStockPDF(ctx context.Context, report *LowStockReport) ([]byte, error)
}
