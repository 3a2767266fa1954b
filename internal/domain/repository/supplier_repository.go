package repository

import "github.com/tu-usuario/stockmaster-api/internal/domain/entity"

// SupplierRepository define el puerto de persistencia para Supplier (DIP).
// Los proveedores son globales: sin scoping por usuario.
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	Update(supplier *entity.Supplier) error
	List() ([]entity.Supplier, error)
	Delete(id string) error
}
