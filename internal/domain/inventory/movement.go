package inventory

import (
	"github.com/tu-usuario/stockmaster-api/internal/domain"
	"github.com/tu-usuario/stockmaster-api/internal/domain/entity"
)

// NextQuantity calcula la cantidad resultante de aplicar un movimiento sobre el
// stock actual. No muta nada: el caso de uso transaccional decide si persistir.
//
// Reglas:
//   - quantity debe ser entero positivo; movementType ∈ {in, out}.
//   - "in" suma, "out" resta.
//   - Un "out" que dejaría la cantidad negativa se rechaza con ErrInsufficientStock;
//     el invariante quantity >= 0 nunca se rompe.
func NextQuantity(current int, movementType string, quantity int) (int, error) {
	if quantity <= 0 {
		return 0, domain.ErrInvalidInput
	}
	switch movementType {
	case entity.MovementTypeIn:
		return current + quantity, nil
	case entity.MovementTypeOut:
		next := current - quantity
		if next < 0 {
			return 0, domain.ErrInsufficientStock
		}
		return next, nil
	default:
		return 0, domain.ErrInvalidInput
	}
}
