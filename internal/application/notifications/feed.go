package notifications

import (
	"context"
	"sync"
	"time"

	"github.com/tu-usuario/stockmaster-api/internal/application/dto"
	"github.com/tu-usuario/stockmaster-api/internal/domain/inventory"
	"github.com/tu-usuario/stockmaster-api/internal/domain/repository"
	"github.com/tu-usuario/stockmaster-api/pkg/logger"
)

// DefaultPollInterval intervalo de refresco del feed cuando no se configura otro.
const DefaultPollInterval = 60 * time.Second

// Feed mantiene el feed de alertas de stock bajo. Las alertas no se persisten:
// se derivan del catálogo en cada refresco y solo el conjunto de leídas (ack)
// vive en memoria. Refrescar con los mismos productos produce el mismo feed.
type Feed struct {
	products repository.ProductRepository
	log      *logger.Logger
	interval time.Duration

	mu     sync.Mutex
	alerts []inventory.Alert
	acks   *inventory.AckSet
}

// NewFeed construye el feed. interval <= 0 usa el default.
func NewFeed(products repository.ProductRepository, log *logger.Logger, interval time.Duration) *Feed {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Feed{
		products: products,
		log:      log,
		interval: interval,
		alerts:   make([]inventory.Alert, 0),
		acks:     inventory.NewAckSet(),
	}
}

// Start lanza el poller en una goroutine: un refresco inmediato y luego uno por
// intervalo hasta que ctx se cancele. Un refresco fallido se registra y se
// reintenta en el siguiente tick; el feed conserva la última derivación buena.
func (f *Feed) Start(ctx context.Context) {
	go func() {
		if err := f.Refresh(); err != nil {
			f.log.Warn().Err(err).Msg("refresco inicial del feed de alertas")
		}
		ticker := time.NewTicker(f.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := f.Refresh(); err != nil {
					f.log.Warn().Err(err).Msg("refresco del feed de alertas")
				}
			}
		}
	}()
}

// Refresh rederiva las alertas desde el catálogo actual. Las marcas de lectura
// sobreviven: una alerta leída que reaparece en la nueva derivación sigue leída.
func (f *Feed) Refresh() error {
	products, err := f.products.List()
	if err != nil {
		return err
	}
	alerts := inventory.DeriveAlerts(products)

	f.mu.Lock()
	f.alerts = alerts
	f.mu.Unlock()
	return nil
}

// Snapshot devuelve el feed actual con su flag de lectura por alerta.
func (f *Feed) Snapshot() *dto.NotificationFeedResponse {
	f.mu.Lock()
	defer f.mu.Unlock()

	items := make([]dto.NotificationDTO, 0, len(f.alerts))
	for _, a := range f.alerts {
		items = append(items, dto.NotificationDTO{
			ID:           a.ProductID,
			Severity:     a.Severity,
			Title:        a.Title,
			Message:      a.Message,
			Quantity:     a.Quantity,
			ReorderLevel: a.ReorderLevel,
			Read:         f.acks.IsRead(a.ProductID),
		})
	}
	return &dto.NotificationFeedResponse{
		Items:       items,
		UnreadCount: f.acks.UnreadCount(f.alerts),
	}
}

// MarkRead marca como leída la alerta del producto dado.
func (f *Feed) MarkRead(productID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.acks.MarkRead(productID)
}

// MarkAllRead marca como leídas todas las alertas actuales del feed.
func (f *Feed) MarkAllRead() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.acks.MarkAllRead(f.alerts)
}

// UnreadCount cuenta las alertas actuales sin leer.
func (f *Feed) UnreadCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.acks.UnreadCount(f.alerts)
}
