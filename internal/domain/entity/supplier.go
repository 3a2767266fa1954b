package entity

import "time"

// Supplier representa un proveedor. Global: no está scoped por usuario.
type Supplier struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Address   string
	CreatedAt time.Time
}
