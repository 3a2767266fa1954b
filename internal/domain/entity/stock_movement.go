package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementTypeIn  = "in"  // entrada
	MovementTypeOut = "out" // salida
)

// StockMovement es una entrada del ledger de inventario: inmutable una vez creada,
// nunca se edita ni se borra. La suma del ledger justifica el Quantity actual del producto.
// ProductName/ProductSKU se llenan en los SELECT con JOIN a products.
type StockMovement struct {
	ID          string
	ProductID   string
	Type        string // in, out
	Quantity    int    // siempre positivo; el signo lo da Type
	Notes       string
	ProductName string
	ProductSKU  string
	CreatedAt   time.Time
}
