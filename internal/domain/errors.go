package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	// ErrInconsistent distingue la falla parcial del motor de inventario: el movimiento
	// quedó escrito pero la actualización de cantidad falló dentro de la transacción.
	// La transacción hace rollback; el caller aún debe poder diferenciarlo de un error
	// de store cualquiera para reconciliar.
	ErrInconsistent = errors.New("inconsistencia entre ledger y cantidad")
)
