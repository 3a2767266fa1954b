package entity

import "time"

// DefaultCategoryColor color por defecto para categorías nuevas.
const DefaultCategoryColor = "#3B82F6"

// Category representa una categoría de productos. Pertenece a un único usuario (owner-scoped).
type Category struct {
	ID          string
	UserID      string // dueño; el store filtra por este campo
	Name        string
	Description string
	Color       string // hex, ej. #3B82F6
	CreatedAt   time.Time
}
