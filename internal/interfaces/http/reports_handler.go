package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/PuntoVenta-api/internal/application/dto"
	"github.com/jhoicas/PuntoVenta-api/internal/application/usecase"
	"github.com/jhoicas/PuntoVenta-api/internal/domain"
)

// ReportsHandler maneja reportes de ventas, alertas de stock y exportes.
type ReportsHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportsHandler construye el handler.
func NewReportsHandler(uc *usecase.ReportUseCase) *ReportsHandler {
	return &ReportsHandler{uc: uc}
}

// parseRange lee start_date/end_date (YYYY-MM-DD). Por defecto: primer día
// del mes actual y hoy. El fin de rango es inclusivo: se corre al final del día.
func parseRange(c *fiber.Ctx) (time.Time, time.Time, error) {
	var in dto.ReportRangeRequest
	if err := c.QueryParser(&in); err != nil {
		return time.Time{}, time.Time{}, err
	}

	now := time.Now()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	to := now

	if in.StartDate != "" {
		t, err := time.ParseInLocation("2006-01-02", in.StartDate, now.Location())
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		from = t
	}
	if in.EndDate != "" {
		t, err := time.ParseInLocation("2006-01-02", in.EndDate, now.Location())
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		to = t.Add(24*time.Hour - time.Nanosecond)
	}
	return from, to, nil
}

// SalesSummary godoc
// @Summary      Totales de venta del período
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        start_date  query  string  false  "YYYY-MM-DD (default: primer día del mes)"
// @Param        end_date    query  string  false  "YYYY-MM-DD (default: hoy)"
// @Success      200  {object}  dto.SalesSummaryResponse
// @Router       /api/reports/sales-summary [get]
func (h *ReportsHandler) SalesSummary(c *fiber.Ctx) error {
	from, to, err := parseRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "fechas inválidas, formato YYYY-MM-DD"})
	}
	out, err := h.uc.SalesSummary(c.Context(), GetTenantID(c), from, to)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// BestSellers godoc
// @Summary      Productos más vendidos del período
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        start_date  query  string  false  "YYYY-MM-DD"
// @Param        end_date    query  string  false  "YYYY-MM-DD"
// @Param        limit       query  int     false  "máx resultados (default: límite configurado)"
// @Success      200  {array}  dto.BestSellerResponse
// @Router       /api/reports/best-sellers [get]
func (h *ReportsHandler) BestSellers(c *fiber.Ctx) error {
	from, to, err := parseRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "fechas inválidas, formato YYYY-MM-DD"})
	}
	limit := c.QueryInt("limit", 0)
	if limit < 0 || limit > 100 {
		limit = 0 // fuera de rango: cae al límite configurado
	}
	out, err := h.uc.BestSellers(c.Context(), GetTenantID(c), from, to, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// StockAlerts godoc
// @Summary      Alertas de stock (out/low/ok)
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.StockAlertResponse
// @Router       /api/reports/stock-alerts [get]
func (h *ReportsHandler) StockAlerts(c *fiber.Ctx) error {
	out, err := h.uc.StockAlerts(c.Context(), GetTenantID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// LedgerExport godoc
// @Summary      Exportar libro de movimientos del tenant
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        start_date  query  string  false  "YYYY-MM-DD"
// @Param        end_date    query  string  false  "YYYY-MM-DD"
// @Param        limit       query  int     false  "máx resultados (default 20)"
// @Param        offset      query  int     false  "desplazamiento"
// @Success      200  {array}  dto.LedgerEntryResponse
// @Router       /api/ledger [get]
func (h *ReportsHandler) LedgerExport(c *fiber.Ctx) error {
	var in dto.LedgerExportRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	var from, to *time.Time
	if in.StartDate != "" {
		t, err := time.ParseInLocation("2006-01-02", in.StartDate, time.Local)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "fechas inválidas, formato YYYY-MM-DD"})
		}
		from = &t
	}
	if in.EndDate != "" {
		t, err := time.ParseInLocation("2006-01-02", in.EndDate, time.Local)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "fechas inválidas, formato YYYY-MM-DD"})
		}
		end := t.Add(24*time.Hour - time.Nanosecond)
		to = &end
	}
	in.DefaultPage()
	out, err := h.uc.LedgerExport(c.Context(), GetTenantID(c), from, to, in.Limit, in.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// SalesReportPDF godoc
// @Summary      Reporte de ventas en PDF (solo admin)
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        start_date  query  string  false  "YYYY-MM-DD"
// @Param        end_date    query  string  false  "YYYY-MM-DD"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/sales.pdf [get]
func (h *ReportsHandler) SalesReportPDF(c *fiber.Ctx) error {
	from, to, err := parseRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "fechas inválidas, formato YYYY-MM-DD"})
	}
	pdfBytes, err := h.uc.SalesReportPDF(c.Context(), GetTenantID(c), from, to)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "STORE_NOT_CONFIGURED", Message: "configure la tienda antes de generar reportes"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="reporte-ventas.pdf"`)
	return c.Send(pdfBytes)
}

// ProductLabelsPDF godoc
// @Summary      Hoja de etiquetas QR en PDF (solo admin)
// @Tags         reports
// @Security     Bearer
// @Accept       json
// @Produce      application/pdf
// @Param        body  body  dto.LabelsRequest  true  "ids (vacío = todos los productos)"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/labels.pdf [post]
func (h *ReportsHandler) ProductLabelsPDF(c *fiber.Ctx) error {
	var in dto.LabelsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	pdfBytes, err := h.uc.ProductLabelsPDF(c.Context(), GetTenantID(c), in.IDs)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "no hay productos para etiquetar"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="etiquetas-qr.pdf"`)
	return c.Send(pdfBytes)
}
