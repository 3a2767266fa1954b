package entity

import "time"

// User representa un usuario del sistema (dueño de sus categorías).
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	FullName     string
	CreatedAt    time.Time
}
