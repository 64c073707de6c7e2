package ledger_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appledger "github.com/jhoicas/PuntoVenta-api/internal/application/ledger"
	"github.com/jhoicas/PuntoVenta-api/internal/domain"
	domledger "github.com/jhoicas/PuntoVenta-api/internal/domain/ledger"
)

func int64ptr(v int64) *int64 { return &v }

// ──────────────────────────────────────────────────────────────────────────────
// Ingesta por escaneo QR
// ──────────────────────────────────────────────────────────────────────────────

func TestIngestQR_ProductoNuevoSinID(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	uc := newEngine(store)

	p, err := uc.IngestQR(ctx, testTenant, appledger.QRPayload{
		Name:       "Arroz 1kg",
		CategoryID: 2,
		CostPrice:  decimal.NewFromInt(3500),
		Stock:      12,
		Unit:       "piece",
	})
	require.NoError(t, err)
	require.NotNil(t, p)

	assert.Equal(t, int64(1), p.ProductID, "primer id del tenant es 1 (max+1)")
	assert.Equal(t, int64(12), p.Stock)

	entries := store.movimientos(testTenant, p.ProductID)
	require.Len(t, entries, 1)
	assert.Equal(t, domledger.KindStockIn, entries[0].Kind)
	assert.Equal(t, int64(12), entries[0].Delta)
	require.NotNil(t, entries[0].Note)
	assert.Equal(t, "Added via QR code scan", *entries[0].Note)
}

func TestIngestQR_AsignaSiguienteID(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	uc := newEngine(store)
	seedProduct(t, store, 7, 1, 0)

	p, err := uc.IngestQR(ctx, testTenant, appledger.QRPayload{
		Name:       "Azúcar 1kg",
		CategoryID: 2,
		Stock:      1,
		Unit:       "piece",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(8), p.ProductID, "max(7)+1")
}

func TestIngestQR_ProductoExistentePorID(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	uc := newEngine(store)
	seedProduct(t, store, 1, 4, 0)

	p, err := uc.IngestQR(ctx, testTenant, appledger.QRPayload{
		ID:         int64ptr(1),
		Name:       "Café molido 500g",
		CategoryID: 1,
		Stock:      6,
		Unit:       "piece",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), p.Stock, "suma al stock existente")

	entries := store.movimientos(testTenant, 1)
	require.Len(t, entries, 1)
	assert.Equal(t, int64(6), entries[0].Delta)
}

func TestIngestQR_ResuelvePorNombreYCategoria(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	uc := newEngine(store)
	seedProduct(t, store, 1, 4, 0) // "Café molido 500g", categoría 1

	p, err := uc.IngestQR(ctx, testTenant, appledger.QRPayload{
		Name:       "Café molido 500g",
		CategoryID: 1,
		Stock:      2,
		Unit:       "piece",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), p.ProductID, "no crea un duplicado: resuelve al existente")
	assert.Equal(t, int64(6), p.Stock)
}

func TestIngestQR_PayloadInvalido(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	uc := newEngine(store)

	cases := []struct {
		nombre  string
		payload appledger.QRPayload
	}{
		{"sin nombre", appledger.QRPayload{CategoryID: 1, Stock: 1, Unit: "piece"}},
		{"sin categoría", appledger.QRPayload{Name: "X", Stock: 1, Unit: "piece"}},
		{"sin unidad", appledger.QRPayload{Name: "X", CategoryID: 1, Stock: 1}},
		{"stock negativo", appledger.QRPayload{Name: "X", CategoryID: 1, Stock: -1, Unit: "piece"}},
		{"costo negativo", appledger.QRPayload{Name: "X", CategoryID: 1, Stock: 1, Unit: "piece", CostPrice: decimal.NewFromInt(-1)}},
		{"id cero", appledger.QRPayload{ID: int64ptr(0), Name: "X", CategoryID: 1, Stock: 1, Unit: "piece"}},
	}
	for _, tc := range cases {
		t.Run(tc.nombre, func(t *testing.T) {
			_, err := uc.IngestQR(ctx, testTenant, tc.payload)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
	assert.Empty(t, store.entries, "los payloads inválidos no tocan el libro")
}
