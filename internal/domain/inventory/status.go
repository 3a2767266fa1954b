// Package inventory contiene el motor de consistencia del inventario como servicios
// de dominio puros: derivación de estado de stock, transición de cantidad por
// movimiento, derivación de alertas de stock bajo y agregación para el dashboard.
// Toda pantalla que muestre estado o alertas debe pasar por aquí para que el
// dashboard, el listado de productos y las notificaciones nunca diverjan.
package inventory

// Status estado derivado del stock de un producto.
type Status string

const (
	StatusOutOfStock Status = "out_of_stock" // quantity == 0
	StatusLowStock   Status = "low_stock"    // 0 < quantity <= reorder_level
	StatusInStock    Status = "in_stock"     // quantity > reorder_level
)

// Label texto legible del estado, tal como lo muestra la UI.
func (s Status) Label() string {
	switch s {
	case StatusOutOfStock:
		return "Out of Stock"
	case StatusLowStock:
		return "Low Stock"
	default:
		return "In Stock"
	}
}

// StockStatus deriva el estado a partir de (quantity, reorderLevel).
// Es función pura: la partición exacta en los bordes es
// quantity=0 → OutOfStock, quantity=reorderLevel → LowStock, quantity=reorderLevel+1 → InStock.
func StockStatus(quantity, reorderLevel int) Status {
	switch {
	case quantity == 0:
		return StatusOutOfStock
	case quantity <= reorderLevel:
		return StatusLowStock
	default:
		return StatusInStock
	}
}
