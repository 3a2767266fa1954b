package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/stockmaster-api/internal/application/dto"
	"github.com/tu-usuario/stockmaster-api/internal/domain"
	"github.com/tu-usuario/stockmaster-api/internal/domain/entity"
	domaininv "github.com/tu-usuario/stockmaster-api/internal/domain/inventory"
	"github.com/tu-usuario/stockmaster-api/internal/domain/repository"
)

// movementListLimit tope de entradas devueltas al listar el ledger.
const movementListLimit = 100

// MovementUseCase registra movimientos de stock de forma atómica: la entrada
// del ledger y la nueva cantidad del producto se escriben en la misma
// transacción, con la fila del producto bloqueada para lecturas concurrentes.
type MovementUseCase struct {
	products  repository.ProductRepository
	movements repository.StockMovementRepository
	tx        TxRunner
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(products repository.ProductRepository, movements repository.StockMovementRepository, tx TxRunner) *MovementUseCase {
	return &MovementUseCase{products: products, movements: movements, tx: tx}
}

// Register valida y aplica un movimiento de stock. Todo o nada: si la entrada
// del ledger o la actualización de cantidad fallan, ninguna de las dos queda.
func (uc *MovementUseCase) Register(ctx context.Context, in dto.RegisterMovementRequest) (*dto.RegisterMovementResponse, error) {
	if in.ProductID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.Type != entity.MovementTypeIn && in.Type != entity.MovementTypeOut {
		return nil, domain.ErrInvalidInput
	}

	var (
		movement    *entity.StockMovement
		newQuantity int
	)
	err := uc.tx.Run(ctx, func(movements repository.StockMovementRepository, products repository.ProductRepository) error {
		product, err := products.GetForUpdate(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		next, err := domaininv.NextQuantity(product.Quantity, in.Type, in.Quantity)
		if err != nil {
			return err
		}

		movement = &entity.StockMovement{
			ID:        uuid.New().String(),
			ProductID: product.ID,
			Type:      in.Type,
			Quantity:  in.Quantity,
			Notes:     in.Notes,
			CreatedAt: time.Now(),
		}
		if err := movements.Create(movement); err != nil {
			return err
		}
		if err := products.UpdateQuantity(product.ID, next); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrInconsistent, err)
		}
		newQuantity = next
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &dto.RegisterMovementResponse{
		Movement:    toMovementResponse(movement),
		NewQuantity: newQuantity,
	}, nil
}

// ListRecent devuelve las últimas entradas del ledger (máximo 100), con el
// nombre y SKU del producto resueltos.
func (uc *MovementUseCase) ListRecent() (*dto.MovementListResponse, error) {
	list, err := uc.movements.ListRecent(movementListLimit)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for i := range list {
		items = append(items, toMovementResponse(&list[i]))
	}
	return &dto.MovementListResponse{Items: items, Total: len(items)}, nil
}

func toMovementResponse(m *entity.StockMovement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:          m.ID,
		ProductID:   m.ProductID,
		ProductName: m.ProductName,
		ProductSKU:  m.ProductSKU,
		Type:        m.Type,
		Quantity:    m.Quantity,
		Notes:       m.Notes,
		CreatedAt:   m.CreatedAt,
	}
}
