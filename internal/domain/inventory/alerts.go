package inventory

import (
	"fmt"
	"sort"

	"github.com/tu-usuario/stockmaster-api/internal/domain/entity"
)

// Severidades de alerta.
const (
	SeverityCritical = "critical" // quantity == 0
	SeverityWarning  = "warning"  // 0 < quantity <= reorder_level
)

// Alert alerta de stock bajo derivada, no persistida. La clave es el ProductID:
// refrescar la derivación con los mismos productos produce el mismo conjunto.
type Alert struct {
	ProductID    string
	Severity     string
	Title        string
	Message      string
	Quantity     int
	ReorderLevel int
}

// DeriveAlerts recalcula desde cero las alertas para la lista completa de productos:
// una alerta por producto con quantity <= reorder_level, ordenadas por cantidad
// ascendente (las más urgentes primero). Determinista e idempotente.
func DeriveAlerts(products []entity.Product) []Alert {
	alerts := make([]Alert, 0)
	for _, p := range products {
		if p.Quantity > p.ReorderLevel {
			continue
		}
		a := Alert{
			ProductID:    p.ID,
			Severity:     SeverityWarning,
			Title:        "Low Stock Alert",
			Quantity:     p.Quantity,
			ReorderLevel: p.ReorderLevel,
		}
		if p.Quantity == 0 {
			a.Severity = SeverityCritical
			a.Title = "Out of Stock"
		}
		a.Message = fmt.Sprintf("%s (%s) - Current: %d, Reorder: %d", p.Name, p.SKU, p.Quantity, p.ReorderLevel)
		alerts = append(alerts, a)
	}
	sort.SliceStable(alerts, func(i, j int) bool { return alerts[i].Quantity < alerts[j].Quantity })
	return alerts
}

// AckSet conjunto de alertas reconocidas (leídas), con clave por product id.
// Se inyecta en vez de vivir como estado ambiente para que la derivación siga
// siendo pura y testeable. Sobrevive a los refrescos del poller, no al reinicio
// del proceso. Un id marcado leído sigue leído aunque la alerta reaparezca en el
// siguiente refresco; si el producto se repone por encima del umbral simplemente
// deja de generar alerta y la marca queda sin efecto.
type AckSet struct {
	read map[string]struct{}
}

// NewAckSet construye un conjunto vacío.
func NewAckSet() *AckSet {
	return &AckSet{read: make(map[string]struct{})}
}

// MarkRead marca una alerta como leída por product id.
func (s *AckSet) MarkRead(productID string) {
	s.read[productID] = struct{}{}
}

// MarkAllRead marca como leídas todas las alertas actuales.
func (s *AckSet) MarkAllRead(alerts []Alert) {
	for _, a := range alerts {
		s.read[a.ProductID] = struct{}{}
	}
}

// IsRead indica si la alerta del producto ya fue reconocida.
func (s *AckSet) IsRead(productID string) bool {
	_, ok := s.read[productID]
	return ok
}

// UnreadCount cuenta las alertas actuales cuya clave no está en el conjunto.
func (s *AckSet) UnreadCount(alerts []Alert) int {
	n := 0
	for _, a := range alerts {
		if !s.IsRead(a.ProductID) {
			n++
		}
	}
	return n
}
