package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchesTerm_SubstringInsensibleAMayusculas(t *testing.T) {
	assert.True(t, matchesTerm("mart", "Martillo Pro", "MAR-01"))
	assert.True(t, matchesTerm("MAR-01", "Martillo Pro", "MAR-01"))
	assert.False(t, matchesTerm("sierra", "Martillo Pro", "MAR-01"))
}

func TestMatchesTerm_InsensibleATildes(t *testing.T) {
	assert.True(t, matchesTerm("cafe", "Cafetería El Café"))
	assert.True(t, matchesTerm("CAFÉ", "cafeteria"))
}

func TestMatchesTerm_TerminoVacioCoincideTodo(t *testing.T) {
	assert.True(t, matchesTerm("", "cualquier cosa"))
	assert.True(t, matchesTerm("   ", "cualquier cosa"))
}

func TestMatchesTerm_BuscaEnTodosLosCampos(t *testing.T) {
	assert.True(t, matchesTerm("bogota", "Ferretería Díaz", "ventas@diaz.co", "601-555", "Calle 10, Bogotá"))
	assert.False(t, matchesTerm("medellin", "Ferretería Díaz", "ventas@diaz.co", "601-555", "Calle 10, Bogotá"))
}
