package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto o SKU del catálogo.
// Quantity es el stock actual y solo se modifica vía movimientos (ledger en stock_movements).
// CategoryName/CategoryColor/SupplierName se llenan en los SELECT con JOIN; no son columnas de products.
type Product struct {
	ID            string
	Name          string
	SKU           string          // código único en el catálogo
	CategoryID    string          // vacío si no tiene categoría
	SupplierID    string          // vacío si no tiene proveedor
	CostPrice     decimal.Decimal // costo de compra
	SellingPrice  decimal.Decimal // precio de venta
	Quantity      int             // stock actual, nunca negativo
	ReorderLevel  int             // umbral de reposición (default 10)
	CategoryName  string
	CategoryColor string
	SupplierName  string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
