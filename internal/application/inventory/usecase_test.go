package inventory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/stockmaster-api/internal/application/dto"
	"github.com/tu-usuario/stockmaster-api/internal/domain"
	"github.com/tu-usuario/stockmaster-api/internal/domain/entity"
	"github.com/tu-usuario/stockmaster-api/internal/domain/repository"
)

// ──────────────────────────────────────────────
// Fakes en memoria con semántica transaccional
// ──────────────────────────────────────────────

type fakeStore struct {
	products  map[string]*entity.Product
	movements []entity.StockMovement

	failQuantityUpdate bool
}

func newFakeStore(products ...*entity.Product) *fakeStore {
	s := &fakeStore{products: make(map[string]*entity.Product)}
	for _, p := range products {
		cp := *p
		s.products[p.ID] = &cp
	}
	return s
}

func (s *fakeStore) snapshot() *fakeStore {
	cp := newFakeStore()
	for id, p := range s.products {
		pc := *p
		cp.products[id] = &pc
	}
	cp.movements = append(cp.movements, s.movements...)
	cp.failQuantityUpdate = s.failQuantityUpdate
	return cp
}

type fakeProductRepo struct{ s *fakeStore }

func (r *fakeProductRepo) Create(p *entity.Product) error { r.s.products[p.ID] = p; return nil }
func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}
func (r *fakeProductRepo) GetBySKU(string) (*entity.Product, error) { return nil, nil }
func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}
func (r *fakeProductRepo) Update(p *entity.Product) error { r.s.products[p.ID] = p; return nil }
func (r *fakeProductRepo) UpdateQuantity(id string, quantity int) error {
	if r.s.failQuantityUpdate {
		return errors.New("update falló")
	}
	p, ok := r.s.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Quantity = quantity
	return nil
}
func (r *fakeProductRepo) List() ([]entity.Product, error) { return nil, nil }
func (r *fakeProductRepo) Delete(id string) error          { delete(r.s.products, id); return nil }

type fakeMovementRepo struct{ s *fakeStore }

func (r *fakeMovementRepo) Create(m *entity.StockMovement) error {
	r.s.movements = append(r.s.movements, *m)
	return nil
}
func (r *fakeMovementRepo) ListRecent(limit int) ([]entity.StockMovement, error) {
	out := make([]entity.StockMovement, 0, limit)
	for i := len(r.s.movements) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.s.movements[i])
	}
	return out, nil
}

// fakeTxRunner ejecuta fn sobre una copia del store y solo publica los cambios
// si fn no devuelve error, imitando commit/rollback.
type fakeTxRunner struct{ s *fakeStore }

func (t *fakeTxRunner) Run(_ context.Context, fn func(repository.StockMovementRepository, repository.ProductRepository) error) error {
	work := t.s.snapshot()
	if err := fn(&fakeMovementRepo{s: work}, &fakeProductRepo{s: work}); err != nil {
		return err
	}
	t.s.products = work.products
	t.s.movements = work.movements
	return nil
}

func newMovementUseCase(s *fakeStore) *MovementUseCase {
	return NewMovementUseCase(&fakeProductRepo{s: s}, &fakeMovementRepo{s: s}, &fakeTxRunner{s: s})
}

// ──────────────────────────────────────────────
// Registro de movimientos
// ──────────────────────────────────────────────

func TestRegister_EntradaSumaStock(t *testing.T) {
	s := newFakeStore(&entity.Product{ID: "p1", Name: "Martillo", SKU: "MAR-01", Quantity: 5, ReorderLevel: 10})
	uc := newMovementUseCase(s)

	resp, err := uc.Register(context.Background(), dto.RegisterMovementRequest{
		ProductID: "p1", Type: entity.MovementTypeIn, Quantity: 20,
	})

	require.NoError(t, err)
	assert.Equal(t, 25, resp.NewQuantity, "la entrada debe sumar al stock actual")
	assert.Equal(t, 25, s.products["p1"].Quantity, "la cantidad persistida debe coincidir")
	require.Len(t, s.movements, 1)
	assert.Equal(t, entity.MovementTypeIn, s.movements[0].Type)
	assert.Equal(t, 20, s.movements[0].Quantity)
}

func TestRegister_SalidaDejaStockEnCero(t *testing.T) {
	s := newFakeStore(&entity.Product{ID: "p1", Name: "Martillo", SKU: "MAR-01", Quantity: 5, ReorderLevel: 10})
	uc := newMovementUseCase(s)

	resp, err := uc.Register(context.Background(), dto.RegisterMovementRequest{
		ProductID: "p1", Type: entity.MovementTypeOut, Quantity: 5,
	})

	require.NoError(t, err)
	assert.Equal(t, 0, resp.NewQuantity, "salida exacta debe dejar el stock en cero, no rechazarse")
}

func TestRegister_SalidaMayorAlStockSeRechaza(t *testing.T) {
	s := newFakeStore(&entity.Product{ID: "p1", Name: "Martillo", SKU: "MAR-01", Quantity: 20, ReorderLevel: 10})
	uc := newMovementUseCase(s)

	_, err := uc.Register(context.Background(), dto.RegisterMovementRequest{
		ProductID: "p1", Type: entity.MovementTypeOut, Quantity: 25,
	})

	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 20, s.products["p1"].Quantity, "un movimiento rechazado no debe tocar el stock")
	assert.Empty(t, s.movements, "un movimiento rechazado no debe entrar al ledger")
}

func TestRegister_TodoONada(t *testing.T) {
	s := newFakeStore(&entity.Product{ID: "p1", Name: "Martillo", SKU: "MAR-01", Quantity: 10, ReorderLevel: 5})
	s.failQuantityUpdate = true
	uc := newMovementUseCase(s)

	_, err := uc.Register(context.Background(), dto.RegisterMovementRequest{
		ProductID: "p1", Type: entity.MovementTypeIn, Quantity: 3,
	})

	require.ErrorIs(t, err, domain.ErrInconsistent)
	assert.Empty(t, s.movements, "si la cantidad no se pudo actualizar, el ledger tampoco debe tener la entrada")
	assert.Equal(t, 10, s.products["p1"].Quantity)
}

func TestRegister_ValidacionDeEntrada(t *testing.T) {
	s := newFakeStore(&entity.Product{ID: "p1", Name: "Martillo", SKU: "MAR-01", Quantity: 10, ReorderLevel: 5})
	uc := newMovementUseCase(s)

	casos := []dto.RegisterMovementRequest{
		{ProductID: "", Type: entity.MovementTypeIn, Quantity: 1},
		{ProductID: "p1", Type: entity.MovementTypeIn, Quantity: 0},
		{ProductID: "p1", Type: entity.MovementTypeIn, Quantity: -3},
		{ProductID: "p1", Type: "transfer", Quantity: 1},
	}
	for _, c := range casos {
		_, err := uc.Register(context.Background(), c)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
	assert.Empty(t, s.movements)
}

func TestRegister_ProductoInexistente(t *testing.T) {
	s := newFakeStore()
	uc := newMovementUseCase(s)

	_, err := uc.Register(context.Background(), dto.RegisterMovementRequest{
		ProductID: "no-existe", Type: entity.MovementTypeIn, Quantity: 1,
	})

	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegister_SecuenciaConservaElLedger(t *testing.T) {
	s := newFakeStore(&entity.Product{ID: "p1", Name: "Martillo", SKU: "MAR-01", Quantity: 10, ReorderLevel: 5})
	uc := newMovementUseCase(s)

	pasos := []struct {
		tipo string
		qty  int
		ok   bool
	}{
		{entity.MovementTypeIn, 15, true},
		{entity.MovementTypeOut, 8, true},
		{entity.MovementTypeOut, 100, false}, // rechazado, no cuenta
		{entity.MovementTypeIn, 3, true},
	}
	for _, p := range pasos {
		_, err := uc.Register(context.Background(), dto.RegisterMovementRequest{
			ProductID: "p1", Type: p.tipo, Quantity: p.qty,
		})
		if p.ok {
			require.NoError(t, err)
		} else {
			require.Error(t, err)
		}
	}

	// Q0 + Σ entradas − Σ salidas aplicadas = cantidad final
	assert.Equal(t, 10+15-8+3, s.products["p1"].Quantity)
	assert.Len(t, s.movements, 3, "el ledger solo contiene los movimientos aplicados")
}

func TestListRecent_DevuelveMasRecientesPrimero(t *testing.T) {
	s := newFakeStore(&entity.Product{ID: "p1", Name: "Martillo", SKU: "MAR-01", Quantity: 100, ReorderLevel: 5})
	uc := newMovementUseCase(s)

	for i := 0; i < 3; i++ {
		_, err := uc.Register(context.Background(), dto.RegisterMovementRequest{
			ProductID: "p1", Type: entity.MovementTypeOut, Quantity: i + 1,
		})
		require.NoError(t, err)
	}

	resp, err := uc.ListRecent()
	require.NoError(t, err)
	require.Equal(t, 3, resp.Total)
	assert.Equal(t, 3, resp.Items[0].Quantity, "el más reciente va primero")
	assert.Equal(t, 1, resp.Items[2].Quantity)
}
