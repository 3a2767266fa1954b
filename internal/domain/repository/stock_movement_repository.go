package repository

import "github.com/tu-usuario/stockmaster-api/internal/domain/entity"

// StockMovementRepository define el puerto del ledger de movimientos (DIP).
// Solo Create y lectura: las entradas son inmutables, nunca hay Update ni Delete.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	// ListRecent devuelve los movimientos más recientes (con producto resuelto),
	// ordenados por created_at descendente y acotados a limit.
	ListRecent(limit int) ([]entity.StockMovement, error)
}
