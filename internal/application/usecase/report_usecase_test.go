package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/PuntoVenta-api/internal/application/usecase"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/repository"
)

// fakeReportsRepo registra los parámetros con los que se le consulta.
type fakeReportsRepo struct {
	lastLimit     int
	lastThreshold int64
}

func (r *fakeReportsRepo) SalesSummary(context.Context, string, time.Time, time.Time) (*repository.SalesSummary, error) {
	return &repository.SalesSummary{}, nil
}

func (r *fakeReportsRepo) BestSellers(_ context.Context, _ string, _, _ time.Time, limit int) ([]repository.BestSeller, error) {
	r.lastLimit = limit
	return nil, nil
}

func (r *fakeReportsRepo) StockAlerts(_ context.Context, _ string, lowThreshold int64) ([]repository.StockAlert, error) {
	r.lastThreshold = lowThreshold
	return nil, nil
}

func buildReportUseCase(lowStock int64, bestSellers int) (*usecase.ReportUseCase, *fakeReportsRepo) {
	repo := &fakeReportsRepo{}
	uc := usecase.NewReportUseCase(repo, nil, nil, nil, nil, nil, nil, lowStock, bestSellers)
	return uc, repo
}

// ──────────────────────────────────────────────────────────────────────────────
// Parámetros configurables de los reportes
// ──────────────────────────────────────────────────────────────────────────────

func TestReportUseCase_BestSellers_LimiteConfigurado(t *testing.T) {
	ctx := context.Background()
	uc, repo := buildReportUseCase(10, 7)
	desde, hasta := time.Now().AddDate(0, -1, 0), time.Now()

	_, err := uc.BestSellers(ctx, catalogoTenant, desde, hasta, 0)
	require.NoError(t, err)
	assert.Equal(t, 7, repo.lastLimit, "sin límite explícito se usa el configurado")

	_, err = uc.BestSellers(ctx, catalogoTenant, desde, hasta, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, repo.lastLimit, "el límite explícito manda")
}

func TestReportUseCase_StockAlerts_UmbralConfigurado(t *testing.T) {
	uc, repo := buildReportUseCase(25, 10)

	_, err := uc.StockAlerts(context.Background(), catalogoTenant)
	require.NoError(t, err)
	assert.Equal(t, int64(25), repo.lastThreshold, "el umbral de stock bajo viene de la configuración")
}
