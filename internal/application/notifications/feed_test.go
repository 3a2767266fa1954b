package notifications

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/stockmaster-api/internal/domain/entity"
	"github.com/tu-usuario/stockmaster-api/internal/domain/inventory"
	"github.com/tu-usuario/stockmaster-api/pkg/logger"
)

type stubProductRepo struct {
	products []entity.Product
	err      error
}

func (r *stubProductRepo) Create(*entity.Product) error                 { return nil }
func (r *stubProductRepo) GetByID(string) (*entity.Product, error)      { return nil, nil }
func (r *stubProductRepo) GetBySKU(string) (*entity.Product, error)     { return nil, nil }
func (r *stubProductRepo) GetForUpdate(string) (*entity.Product, error) { return nil, nil }
func (r *stubProductRepo) Update(*entity.Product) error                 { return nil }
func (r *stubProductRepo) UpdateQuantity(string, int) error             { return nil }
func (r *stubProductRepo) List() ([]entity.Product, error)              { return r.products, r.err }
func (r *stubProductRepo) Delete(string) error                          { return nil }

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "test", Level: "error"})
}

func newTestFeed(repo *stubProductRepo) *Feed {
	return NewFeed(repo, testLogger(), 0)
}

func TestFeed_RefrescoDerivaAlertas(t *testing.T) {
	repo := &stubProductRepo{products: []entity.Product{
		{ID: "p1", Name: "Martillo", SKU: "MAR-01", Quantity: 0, ReorderLevel: 10},
		{ID: "p2", Name: "Taladro", SKU: "TAL-01", Quantity: 4, ReorderLevel: 5},
		{ID: "p3", Name: "Cable", SKU: "CAB-01", Quantity: 50, ReorderLevel: 10},
	}}
	feed := newTestFeed(repo)
	require.NoError(t, feed.Refresh())

	snap := feed.Snapshot()
	require.Len(t, snap.Items, 2, "solo productos en o bajo su umbral generan alerta")
	assert.Equal(t, 2, snap.UnreadCount)

	// Orden por cantidad ascendente: el agotado primero.
	assert.Equal(t, "p1", snap.Items[0].ID)
	assert.Equal(t, inventory.SeverityCritical, snap.Items[0].Severity)
	assert.Equal(t, "Out of Stock", snap.Items[0].Title)
	assert.Equal(t, "Martillo (MAR-01) - Current: 0, Reorder: 10", snap.Items[0].Message)

	assert.Equal(t, "p2", snap.Items[1].ID)
	assert.Equal(t, inventory.SeverityWarning, snap.Items[1].Severity)
	assert.Equal(t, "Low Stock Alert", snap.Items[1].Title)
}

func TestFeed_MarcarLeidaReduceNoLeidasEnUno(t *testing.T) {
	repo := &stubProductRepo{products: []entity.Product{
		{ID: "p1", Name: "A", SKU: "A", Quantity: 0, ReorderLevel: 5},
		{ID: "p2", Name: "B", SKU: "B", Quantity: 2, ReorderLevel: 5},
	}}
	feed := newTestFeed(repo)
	require.NoError(t, feed.Refresh())
	require.Equal(t, 2, feed.UnreadCount())

	feed.MarkRead("p1")

	snap := feed.Snapshot()
	assert.Equal(t, 1, snap.UnreadCount)
	assert.True(t, snap.Items[0].Read, "p1 queda marcada leída pero sigue en el feed")
	assert.False(t, snap.Items[1].Read)
}

func TestFeed_MarcaDeLecturaSobreviveAlRefresco(t *testing.T) {
	repo := &stubProductRepo{products: []entity.Product{
		{ID: "p1", Name: "A", SKU: "A", Quantity: 1, ReorderLevel: 5},
	}}
	feed := newTestFeed(repo)
	require.NoError(t, feed.Refresh())
	feed.MarkRead("p1")

	// El producto sigue bajo el umbral: la alerta reaparece pero ya leída.
	require.NoError(t, feed.Refresh())
	snap := feed.Snapshot()
	require.Len(t, snap.Items, 1)
	assert.True(t, snap.Items[0].Read)
	assert.Equal(t, 0, snap.UnreadCount)
}

func TestFeed_MarcarTodasLeidas(t *testing.T) {
	repo := &stubProductRepo{products: []entity.Product{
		{ID: "p1", Name: "A", SKU: "A", Quantity: 0, ReorderLevel: 5},
		{ID: "p2", Name: "B", SKU: "B", Quantity: 3, ReorderLevel: 5},
		{ID: "p3", Name: "C", SKU: "C", Quantity: 5, ReorderLevel: 5},
	}}
	feed := newTestFeed(repo)
	require.NoError(t, feed.Refresh())

	feed.MarkAllRead()
	assert.Equal(t, 0, feed.UnreadCount())
}

func TestFeed_ProductoRepuestoSaleDelFeed(t *testing.T) {
	repo := &stubProductRepo{products: []entity.Product{
		{ID: "p1", Name: "A", SKU: "A", Quantity: 2, ReorderLevel: 5},
	}}
	feed := newTestFeed(repo)
	require.NoError(t, feed.Refresh())
	require.Len(t, feed.Snapshot().Items, 1)

	repo.products[0].Quantity = 20
	require.NoError(t, feed.Refresh())
	assert.Empty(t, feed.Snapshot().Items, "repuesto por encima del umbral, la alerta desaparece")
}

func TestFeed_RefrescoFallidoConservaFeedAnterior(t *testing.T) {
	repo := &stubProductRepo{products: []entity.Product{
		{ID: "p1", Name: "A", SKU: "A", Quantity: 0, ReorderLevel: 5},
	}}
	feed := newTestFeed(repo)
	require.NoError(t, feed.Refresh())

	repo.err = errors.New("store caído")
	require.Error(t, feed.Refresh())
	assert.Len(t, feed.Snapshot().Items, 1, "la última derivación buena sigue disponible")
}
