package dto

import "time"

// RegisterMovementRequest body para POST /api/stock-movements.
type RegisterMovementRequest struct {
	ProductID string `json:"product_id"`
	Type      string `json:"type"` // in, out
	Quantity  int    `json:"quantity"`
	Notes     string `json:"notes,omitempty"`
}

// MovementResponse una entrada del ledger en respuestas.
type MovementResponse struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"product_id"`
	ProductName string    `json:"product_name,omitempty"`
	ProductSKU  string    `json:"product_sku,omitempty"`
	Type        string    `json:"type"`
	Quantity    int       `json:"quantity"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// MovementListResponse respuesta de GET /api/stock-movements.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Total int                `json:"total"`
}

// RegisterMovementResponse respuesta de POST /api/stock-movements: el movimiento
// registrado más la cantidad resultante del producto.
type RegisterMovementResponse struct {
	Movement    MovementResponse `json:"movement"`
	NewQuantity int              `json:"new_quantity"`
}
