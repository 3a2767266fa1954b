package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/stockmaster-api/internal/domain/entity"
	"github.com/tu-usuario/stockmaster-api/internal/domain/inventory"
)

func productsForAlerts() []entity.Product {
	return []entity.Product{
		{ID: "p1", Name: "Martillo", SKU: "MAR-01", Quantity: 0, ReorderLevel: 10},
		{ID: "p2", Name: "Destornillador", SKU: "DES-02", Quantity: 4, ReorderLevel: 10},
		{ID: "p3", Name: "Sierra", SKU: "SIE-03", Quantity: 10, ReorderLevel: 10},
		{ID: "p4", Name: "Lijadora", SKU: "LIJ-04", Quantity: 25, ReorderLevel: 10},
	}
}

func TestDeriveAlerts_UnaAlertaPorProductoBajoUmbral(t *testing.T) {
	alerts := inventory.DeriveAlerts(productsForAlerts())

	require.Len(t, alerts, 3, "p1, p2 y p3 están en o bajo su umbral; p4 no")

	// Ordenadas por cantidad ascendente: las más urgentes primero.
	assert.Equal(t, "p1", alerts[0].ProductID)
	assert.Equal(t, "p2", alerts[1].ProductID)
	assert.Equal(t, "p3", alerts[2].ProductID)
}

func TestDeriveAlerts_SeveridadYTitulo(t *testing.T) {
	alerts := inventory.DeriveAlerts(productsForAlerts())

	assert.Equal(t, inventory.SeverityCritical, alerts[0].Severity, "cantidad 0 es crítica")
	assert.Equal(t, "Out of Stock", alerts[0].Title)
	assert.Equal(t, inventory.SeverityWarning, alerts[1].Severity)
	assert.Equal(t, "Low Stock Alert", alerts[1].Title)
}

func TestDeriveAlerts_FormatoDeterministaDelMensaje(t *testing.T) {
	alerts := inventory.DeriveAlerts([]entity.Product{
		{ID: "p2", Name: "Destornillador", SKU: "DES-02", Quantity: 4, ReorderLevel: 10},
	})
	require.Len(t, alerts, 1)
	assert.Equal(t, "Destornillador (DES-02) - Current: 4, Reorder: 10", alerts[0].Message)
}

// La derivación es idempotente: dos llamadas con la misma lista producen el mismo set.
func TestDeriveAlerts_Idempotente(t *testing.T) {
	products := productsForAlerts()
	first := inventory.DeriveAlerts(products)
	second := inventory.DeriveAlerts(products)
	assert.Equal(t, first, second)
}

func TestAckSet_MarcarLeidaRestaExactamenteUna(t *testing.T) {
	alerts := inventory.DeriveAlerts(productsForAlerts())
	acks := inventory.NewAckSet()

	require.Equal(t, 3, acks.UnreadCount(alerts))

	acks.MarkRead("p2")
	assert.Equal(t, 2, acks.UnreadCount(alerts), "marcar una leída resta exactamente una")
	assert.True(t, acks.IsRead("p2"))
	assert.False(t, acks.IsRead("p1"))
}

// El ack se conserva entre refrescos: la alerta reaparece pero sigue leída.
func TestAckSet_SobreviveAlRefresco(t *testing.T) {
	products := productsForAlerts()
	acks := inventory.NewAckSet()

	alerts := inventory.DeriveAlerts(products)
	require.Equal(t, 3, acks.UnreadCount(alerts))
	acks.MarkRead("p1")

	refreshed := inventory.DeriveAlerts(products)
	assert.True(t, acks.IsRead("p1"))
	assert.Equal(t, 2, acks.UnreadCount(refreshed))
}

func TestAckSet_MarcarTodasLeidas(t *testing.T) {
	alerts := inventory.DeriveAlerts(productsForAlerts())
	acks := inventory.NewAckSet()

	acks.MarkAllRead(alerts)
	assert.Equal(t, 0, acks.UnreadCount(alerts))
}
