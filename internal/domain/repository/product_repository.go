package repository

import "github.com/tu-usuario/stockmaster-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// List devuelve los productos con categoría y proveedor resueltos (JOIN).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	// GetForUpdate obtiene el producto bloqueando su fila (SELECT FOR UPDATE).
	// Solo tiene sentido dentro de una transacción (TxRunner).
	GetForUpdate(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	// UpdateQuantity actualiza solo la cantidad (usada por el motor de inventario).
	UpdateQuantity(productID string, quantity int) error
	List() ([]entity.Product, error)
	Delete(id string) error
}
