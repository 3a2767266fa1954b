package repository

import "github.com/tu-usuario/stockmaster-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
// Todas las operaciones reciben el userID del usuario actuante: las categorías
// son owner-scoped y el filtro de pertenencia viaja explícito hasta el store.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(userID, id string) (*entity.Category, error)
	Update(userID string, category *entity.Category) error
	ListByUser(userID string) ([]entity.Category, error)
	Delete(userID, id string) error
}
