package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/PuntoVenta-api/internal/domain/ledger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Política por tipo de movimiento
// ──────────────────────────────────────────────────────────────────────────────

func TestMovement_DeltasPorTipo(t *testing.T) {
	cases := []struct {
		nombre      string
		mov         ledger.Movement
		qty         int64
		wantStock   int64
		wantDamaged int64
	}{
		{"entrada suma stock", ledger.StockIn, 5, +5, 0},
		{"venta resta stock", ledger.StockOut, 3, -3, 0},
		{"remoción resta stock", ledger.Removal, 2, -2, 0},
		{"rechazo mueve stock a dañados", ledger.Reject, 4, -4, +4},
		{"devolución de cliente suma stock", ledger.CustomerReturn, 1, +1, 0},
		{"reembolso resta stock", ledger.Refund, 6, -6, 0},
		{"desecho solo baja dañados", ledger.Dispose, 2, 0, -2},
		{"borrado da de baja el stock", ledger.Delete, 7, -7, 0},
	}
	for _, tc := range cases {
		t.Run(tc.nombre, func(t *testing.T) {
			assert.Equal(t, tc.wantStock, tc.mov.StockDelta(tc.qty), "delta de stock")
			assert.Equal(t, tc.wantDamaged, tc.mov.DamagedDelta(tc.qty), "delta de dañados")
		})
	}
}

func TestMovement_ValidacionesRequeridas(t *testing.T) {
	// Los movimientos de salida exigen stock; el desecho exige dañados.
	assert.True(t, ledger.StockOut.RequiresStock, "la venta valida stock")
	assert.True(t, ledger.Removal.RequiresStock, "la remoción valida stock")
	assert.True(t, ledger.Reject.RequiresStock, "el rechazo valida stock")
	assert.True(t, ledger.Refund.RequiresStock, "el reembolso valida stock")
	assert.True(t, ledger.Dispose.RequiresDamaged, "el desecho valida dañados")

	assert.False(t, ledger.StockIn.RequiresStock, "la entrada no valida stock")
	assert.False(t, ledger.CustomerReturn.RequiresStock, "la devolución no valida stock")
	assert.False(t, ledger.Delete.RequiresStock, "el borrado no valida stock")
}

// ──────────────────────────────────────────────────────────────────────────────
// Composición de la nota
// ──────────────────────────────────────────────────────────────────────────────

func TestMovement_Note_RazonMasSufijo(t *testing.T) {
	note := ledger.Reject.Note("caja golpeada")
	require.NotNil(t, note)
	assert.Equal(t, "caja golpeada [Moved to damaged inventory - NOT FOR SALE]", *note)
}

func TestMovement_Note_SoloSufijo(t *testing.T) {
	note := ledger.Dispose.Note("")
	require.NotNil(t, note)
	assert.Equal(t, "[Disposed from damaged inventory]", *note)
}

func TestMovement_Note_SoloRazon(t *testing.T) {
	note := ledger.StockIn.Note("  compra a proveedor  ")
	require.NotNil(t, note)
	assert.Equal(t, "compra a proveedor", *note, "la razón se registra sin espacios sobrantes")
}

func TestMovement_Note_VaciaEsNil(t *testing.T) {
	assert.Nil(t, ledger.StockIn.Note(""), "sin razón ni sufijo la nota va en NULL")
	assert.Nil(t, ledger.StockOut.Note("   "), "espacios en blanco cuentan como vacío")
}
