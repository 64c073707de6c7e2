package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/PuntoVenta-api/internal/application/dto"
	"github.com/jhoicas/PuntoVenta-api/internal/domain"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/repository"
)

// SalesReportPDFGenerator genera la representación PDF del reporte de ventas.
type SalesReportPDFGenerator interface {
	GenerateSalesReport(ctx context.Context, store *entity.Store, summary *repository.SalesSummary, best []repository.BestSeller, from, to time.Time) ([]byte, error)
}

// LabelPDFGenerator genera la hoja de etiquetas QR de productos.
// defaultMarkup es el % de ganancia del admin del tenant, para derivar el
// precio impreso cuando el producto no tiene retail_price.
type LabelPDFGenerator interface {
	GenerateLabels(ctx context.Context, products []*entity.Product, defaultMarkup decimal.Decimal) ([]byte, error)
}

// ReportUseCase proyecciones de solo lectura: totales, más vendidos, alertas
// de stock y export del libro de movimientos. No muta nada.
type ReportUseCase struct {
	reportsRepo repository.ReportsRepository
	ledgerRepo  repository.LedgerRepository
	productRepo repository.ProductRepository
	storeRepo   repository.StoreRepository
	userRepo    repository.UserRepository
	salesPDF    SalesReportPDFGenerator
	labelPDF    LabelPDFGenerator

	lowStockThreshold int64
	bestSellersLimit  int
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(
	reportsRepo repository.ReportsRepository,
	ledgerRepo repository.LedgerRepository,
	productRepo repository.ProductRepository,
	storeRepo repository.StoreRepository,
	userRepo repository.UserRepository,
	salesPDF SalesReportPDFGenerator,
	labelPDF LabelPDFGenerator,
	lowStockThreshold int64,
	bestSellersLimit int,
) *ReportUseCase {
	return &ReportUseCase{
		reportsRepo:       reportsRepo,
		ledgerRepo:        ledgerRepo,
		productRepo:       productRepo,
		storeRepo:         storeRepo,
		userRepo:          userRepo,
		salesPDF:          salesPDF,
		labelPDF:          labelPDF,
		lowStockThreshold: lowStockThreshold,
		bestSellersLimit:  bestSellersLimit,
	}
}

// SalesSummary totales de venta del período.
func (uc *ReportUseCase) SalesSummary(ctx context.Context, tenantID string, from, to time.Time) (*dto.SalesSummaryResponse, error) {
	s, err := uc.reportsRepo.SalesSummary(ctx, tenantID, from, to)
	if err != nil {
		return nil, err
	}
	return &dto.SalesSummaryResponse{
		UnitsSold: s.UnitsSold,
		Revenue:   s.Revenue,
		Cost:      s.Cost,
		Profit:    s.Profit,
	}, nil
}

// BestSellers productos más vendidos del período. Con limit <= 0 se usa el
// límite configurado (REPORTS_BEST_SELLERS_LIMIT).
func (uc *ReportUseCase) BestSellers(ctx context.Context, tenantID string, from, to time.Time, limit int) ([]dto.BestSellerResponse, error) {
	if limit <= 0 {
		limit = uc.bestSellersLimit
	}
	list, err := uc.reportsRepo.BestSellers(ctx, tenantID, from, to, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.BestSellerResponse, 0, len(list))
	for _, b := range list {
		out = append(out, dto.BestSellerResponse{
			ProductID: b.ProductID,
			Name:      b.Name,
			UnitsSold: b.UnitsSold,
			Revenue:   b.Revenue,
		})
	}
	return out, nil
}

// StockAlerts clasificación de productos por nivel de stock (out/low/ok).
func (uc *ReportUseCase) StockAlerts(ctx context.Context, tenantID string) ([]dto.StockAlertResponse, error) {
	list, err := uc.reportsRepo.StockAlerts(ctx, tenantID, uc.lowStockThreshold)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockAlertResponse, 0, len(list))
	for _, a := range list {
		out = append(out, dto.StockAlertResponse{
			ProductID: a.ProductID,
			Name:      a.Name,
			Stock:     a.Stock,
			Level:     a.Level,
		})
	}
	return out, nil
}

// LedgerExport movimientos del tenant en un rango de fechas (auditoría).
func (uc *ReportUseCase) LedgerExport(ctx context.Context, tenantID string, from, to *time.Time, limit, offset int) ([]dto.LedgerEntryResponse, error) {
	entries, err := uc.ledgerRepo.ListByTenant(ctx, tenantID, from, to, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LedgerEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.ToLedgerEntryResponse(e))
	}
	return out, nil
}

// SalesReportPDF genera el reporte de ventas del período en PDF.
func (uc *ReportUseCase) SalesReportPDF(ctx context.Context, tenantID string, from, to time.Time) ([]byte, error) {
	store, err := uc.storeRepo.Get(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrNotFound
	}
	summary, err := uc.reportsRepo.SalesSummary(ctx, tenantID, from, to)
	if err != nil {
		return nil, err
	}
	best, err := uc.reportsRepo.BestSellers(ctx, tenantID, from, to, uc.bestSellersLimit)
	if err != nil {
		return nil, err
	}
	return uc.salesPDF.GenerateSalesReport(ctx, store, summary, best, from, to)
}

// ProductLabelsPDF genera la hoja de etiquetas QR de los productos indicados
// (todos los del tenant si ids está vacío).
func (uc *ReportUseCase) ProductLabelsPDF(ctx context.Context, tenantID string, ids []int64) ([]byte, error) {
	var products []*entity.Product
	if len(ids) == 0 {
		list, err := uc.productRepo.ListByTenant(ctx, tenantID, 1000, 0)
		if err != nil {
			return nil, err
		}
		products = list
	} else {
		for _, id := range ids {
			p, err := uc.productRepo.Get(ctx, tenantID, id)
			if err != nil {
				return nil, err
			}
			if p == nil {
				return nil, domain.ErrNotFound
			}
			products = append(products, p)
		}
	}
	if len(products) == 0 {
		return nil, domain.ErrNotFound
	}
	// El markup por defecto vive en el admin dueño del tenant (tenant = admin id).
	admin, err := uc.userRepo.GetByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	defaultMarkup := decimal.Zero
	if admin != nil {
		defaultMarkup = admin.DefaultMarkup
	}
	return uc.labelPDF.GenerateLabels(ctx, products, defaultMarkup)
}
