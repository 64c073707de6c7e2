package ledger_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appledger "github.com/jhoicas/PuntoVenta-api/internal/application/ledger"
	"github.com/jhoicas/PuntoVenta-api/internal/domain"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
	domledger "github.com/jhoicas/PuntoVenta-api/internal/domain/ledger"
)

const (
	testTenant = "00000000-0000-0000-0000-000000000001"
	otroTenant = "00000000-0000-0000-0000-000000000099"
)

// seedProduct inserta un producto directo en el store (sin pasar por el motor).
func seedProduct(t *testing.T, store *memStore, productID, stock, damaged int64) {
	t.Helper()
	now := time.Now()
	store.products[prodKey{testTenant, productID}] = &entity.Product{
		TenantID:   testTenant,
		ProductID:  productID,
		Name:       "Café molido 500g",
		CategoryID: 1,
		Unit:       "piece",
		CostPrice:  decimal.NewFromInt(8000),
		Stock:      stock,
		Damaged:    damaged,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func newEngine(store *memStore) *appledger.StockLedgerUseCase {
	return appledger.NewStockLedgerUseCase(&fakeTxRunner{store: store})
}

// sumaDeltas suma los deltas del libro para el producto.
func sumaDeltas(store *memStore, productID int64) int64 {
	var sum int64
	for _, e := range store.movimientos(testTenant, productID) {
		sum += e.Delta
	}
	return sum
}

// ──────────────────────────────────────────────────────────────────────────────
// Protocolo básico: cada mutación deja su entrada y el stock reconcilia
// ──────────────────────────────────────────────────────────────────────────────

func TestStockLedger_EscenarioVidaDelProducto(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	uc := newEngine(store)
	seedProduct(t, store, 1, 0, 0)

	// Entrada de 10 unidades
	require.NoError(t, uc.StockIn(ctx, testTenant, 1, 10, "compra inicial"))

	// Rechazo de 3 (pasan a dañados)
	require.NoError(t, uc.Reject(ctx, testTenant, 1, 3, "caja mojada"))

	// Venta de las 7 restantes
	require.NoError(t, uc.Sell(ctx, testTenant, 1, 7))

	// Una venta más debe fallar: ya no hay stock
	err := uc.Sell(ctx, testTenant, 1, 1)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	p := store.producto(testTenant, 1)
	require.NotNil(t, p)
	assert.Equal(t, int64(0), p.Stock, "stock final")
	assert.Equal(t, int64(3), p.Damaged, "las unidades rechazadas quedan en dañados")

	// El libro refleja exactamente la historia: +10, -3, -7
	entries := store.movimientos(testTenant, 1)
	require.Len(t, entries, 3, "la venta fallida no deja entrada")
	assert.Equal(t, domledger.KindStockIn, entries[0].Kind)
	assert.Equal(t, int64(+10), entries[0].Delta)
	assert.Equal(t, domledger.KindReject, entries[1].Kind)
	assert.Equal(t, int64(-3), entries[1].Delta)
	assert.Equal(t, domledger.KindStockOut, entries[2].Kind)
	assert.Equal(t, int64(-7), entries[2].Delta)

	assert.Equal(t, p.Stock, sumaDeltas(store, 1), "stock == suma de deltas")
}

func TestStockLedger_CantidadInvalida(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	uc := newEngine(store)
	seedProduct(t, store, 1, 10, 0)

	assert.ErrorIs(t, uc.Sell(ctx, testTenant, 1, 0), domain.ErrInvalidInput)
	assert.ErrorIs(t, uc.Sell(ctx, testTenant, 1, -5), domain.ErrInvalidInput)
	assert.ErrorIs(t, uc.StockIn(ctx, testTenant, 1, 0, ""), domain.ErrInvalidInput)

	assert.Empty(t, store.movimientos(testTenant, 1), "las cantidades inválidas no tocan el libro")
	assert.Equal(t, int64(10), store.producto(testTenant, 1).Stock)
}

func TestStockLedger_ProductoInexistente(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	uc := newEngine(store)

	assert.ErrorIs(t, uc.StockIn(ctx, testTenant, 404, 5, ""), domain.ErrNotFound)
}

func TestStockLedger_AislamientoPorTenant(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	uc := newEngine(store)
	seedProduct(t, store, 1, 10, 0)

	// El mismo product_id bajo otro tenant no existe
	assert.ErrorIs(t, uc.Sell(ctx, otroTenant, 1, 1), domain.ErrNotFound)
	assert.Equal(t, int64(10), store.producto(testTenant, 1).Stock, "el stock del otro tenant no cambia")
}

// ──────────────────────────────────────────────────────────────────────────────
// Rechazo, devolución, reembolso y desecho
// ──────────────────────────────────────────────────────────────────────────────

func TestStockLedger_RejectInsuficiente(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	uc := newEngine(store)
	seedProduct(t, store, 1, 2, 0)

	assert.ErrorIs(t, uc.Reject(ctx, testTenant, 1, 3, ""), domain.ErrInsufficientStock)
	p := store.producto(testTenant, 1)
	assert.Equal(t, int64(2), p.Stock)
	assert.Equal(t, int64(0), p.Damaged)
}

func TestStockLedger_CustomerReturnSiempreSuma(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	uc := newEngine(store)
	seedProduct(t, store, 1, 0, 0)

	require.NoError(t, uc.CustomerReturn(ctx, testTenant, 1, 2, "no era la talla"))

	p := store.producto(testTenant, 1)
	assert.Equal(t, int64(2), p.Stock)

	entries := store.movimientos(testTenant, 1)
	require.Len(t, entries, 1)
	assert.Equal(t, domledger.KindCustomerReturn, entries[0].Kind)
	require.NotNil(t, entries[0].Note)
	assert.Equal(t, "no era la talla [Returned by customer]", *entries[0].Note)
}

func TestStockLedger_DisposeSoloBajaDamaged(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	uc := newEngine(store)
	seedProduct(t, store, 1, 5, 4)

	require.NoError(t, uc.Dispose(ctx, testTenant, 1, 3, ""))

	p := store.producto(testTenant, 1)
	assert.Equal(t, int64(5), p.Stock, "el stock vendible no cambia")
	assert.Equal(t, int64(1), p.Damaged)

	entries := store.movimientos(testTenant, 1)
	require.Len(t, entries, 1)
	assert.Equal(t, domledger.KindDispose, entries[0].Kind)
	assert.Equal(t, int64(0), entries[0].Delta, "el desecho lleva delta cero en el libro")

	// Desechar más de lo dañado falla
	assert.ErrorIs(t, uc.Dispose(ctx, testTenant, 1, 2, ""), domain.ErrInsufficientStock)
}

func TestStockLedger_RefundDescuentaStock(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	uc := newEngine(store)
	seedProduct(t, store, 1, 4, 0)

	require.NoError(t, uc.Refund(ctx, testTenant, 1, 4, "lote defectuoso"))
	assert.Equal(t, int64(0), store.producto(testTenant, 1).Stock)
	assert.ErrorIs(t, uc.Refund(ctx, testTenant, 1, 1, ""), domain.ErrInsufficientStock)
}

// ──────────────────────────────────────────────────────────────────────────────
// Borrado del producto
// ──────────────────────────────────────────────────────────────────────────────

func TestStockLedger_DeleteProduct_PurgaYDejaEntradaDelete(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	uc := newEngine(store)
	seedProduct(t, store, 1, 0, 0)

	require.NoError(t, uc.StockIn(ctx, testTenant, 1, 10, ""))
	require.NoError(t, uc.Sell(ctx, testTenant, 1, 4))

	found, err := uc.DeleteProduct(ctx, testTenant, 1)
	require.NoError(t, err)
	assert.True(t, found)

	assert.Nil(t, store.producto(testTenant, 1), "el producto desaparece")

	entries := store.movimientos(testTenant, 1)
	require.Len(t, entries, 1, "solo sobrevive la entrada DELETE")
	assert.Equal(t, domledger.KindDelete, entries[0].Kind)
	assert.Equal(t, int64(-6), entries[0].Delta, "el stock al momento del borrado queda dado de baja")
}

func TestStockLedger_DeleteProduct_Inexistente(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	uc := newEngine(store)

	found, err := uc.DeleteProduct(ctx, testTenant, 404)
	require.NoError(t, err, "borrar lo inexistente no es error")
	assert.False(t, found)
}

// ──────────────────────────────────────────────────────────────────────────────
// Concurrencia: dos ventas simultáneas del último stock
// ──────────────────────────────────────────────────────────────────────────────

func TestStockLedger_VentasConcurrentesSoloUnaGana(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	uc := newEngine(store)
	seedProduct(t, store, 1, 0, 0)
	require.NoError(t, uc.StockIn(ctx, testTenant, 1, 5, ""))

	var wg sync.WaitGroup
	results := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = uc.Sell(ctx, testTenant, 1, 5)
		}(i)
	}
	wg.Wait()

	var oks, insuficientes int
	for _, err := range results {
		switch {
		case err == nil:
			oks++
		case err == domain.ErrInsufficientStock:
			insuficientes++
		default:
			t.Fatalf("error inesperado: %v", err)
		}
	}
	assert.Equal(t, 1, oks, "exactamente una venta confirma")
	assert.Equal(t, 1, insuficientes, "la otra falla por stock insuficiente")

	p := store.producto(testTenant, 1)
	assert.Equal(t, int64(0), p.Stock, "el stock nunca queda negativo")
	assert.Equal(t, p.Stock, sumaDeltas(store, 1), "stock y libro siguen reconciliando")
	require.Len(t, store.movimientos(testTenant, 1), 2, "entrada inicial + la venta ganadora")
}
