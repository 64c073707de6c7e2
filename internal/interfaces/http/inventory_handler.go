package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/PuntoVenta-api/internal/application/dto"
	appledger "github.com/jhoicas/PuntoVenta-api/internal/application/ledger"
	"github.com/jhoicas/PuntoVenta-api/internal/domain"
)

// InventoryHandler maneja los movimientos de stock de un producto. Todos los
// endpoints pasan por el motor de movimientos: cada mutación deja su entrada
// en el libro dentro de la misma transacción.
type InventoryHandler struct {
	uc *appledger.StockLedgerUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *appledger.StockLedgerUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// movement parsea el body común y ejecuta fn con cantidad y razón.
func (h *InventoryHandler) movement(c *fiber.Ctx, fn func(productID, qty int64, reason string) error) error {
	id := parseProductID(c)
	if id == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	var in dto.MovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := fn(id, in.Quantity, in.Reason); err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "la cantidad debe ser un entero positivo"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		if err == domain.ErrInsufficientStock {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "movimiento registrado"})
}

// StockIn godoc
// @Summary      Entrada de stock
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                  true  "id del producto"
// @Param        body  body  dto.MovementRequest  true  "quantity, reason (opcional)"
// @Success      201   {object}  map[string]string
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/stock-in [post]
func (h *InventoryHandler) StockIn(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	return h.movement(c, func(productID, qty int64, reason string) error {
		return h.uc.StockIn(c.Context(), tenantID, productID, qty, reason)
	})
}

// Sell godoc
// @Summary      Registrar venta
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                  true  "id del producto"
// @Param        body  body  dto.MovementRequest  true  "quantity"
// @Success      201   {object}  map[string]string
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/sell [post]
func (h *InventoryHandler) Sell(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	return h.movement(c, func(productID, qty int64, _ string) error {
		return h.uc.Sell(c.Context(), tenantID, productID, qty)
	})
}

// Remove godoc
// @Summary      Remoción de stock
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                  true  "id del producto"
// @Param        body  body  dto.MovementRequest  true  "quantity, reason (opcional)"
// @Success      201   {object}  map[string]string
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/remove [post]
func (h *InventoryHandler) Remove(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	return h.movement(c, func(productID, qty int64, reason string) error {
		return h.uc.RemoveStock(c.Context(), tenantID, productID, qty, reason)
	})
}

// Reject godoc
// @Summary      Rechazar unidades (pasan a inventario dañado)
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                  true  "id del producto"
// @Param        body  body  dto.MovementRequest  true  "quantity, reason (opcional)"
// @Success      201   {object}  map[string]string
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/reject [post]
func (h *InventoryHandler) Reject(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	return h.movement(c, func(productID, qty int64, reason string) error {
		return h.uc.Reject(c.Context(), tenantID, productID, qty, reason)
	})
}

// CustomerReturn godoc
// @Summary      Devolución de cliente (reingresa stock)
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                  true  "id del producto"
// @Param        body  body  dto.MovementRequest  true  "quantity, reason (opcional)"
// @Success      201   {object}  map[string]string
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/return [post]
func (h *InventoryHandler) CustomerReturn(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	return h.movement(c, func(productID, qty int64, reason string) error {
		return h.uc.CustomerReturn(c.Context(), tenantID, productID, qty, reason)
	})
}

// Refund godoc
// @Summary      Reembolso a proveedor (sale stock)
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                  true  "id del producto"
// @Param        body  body  dto.MovementRequest  true  "quantity, reason (opcional)"
// @Success      201   {object}  map[string]string
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/refund [post]
func (h *InventoryHandler) Refund(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	return h.movement(c, func(productID, qty int64, reason string) error {
		return h.uc.Refund(c.Context(), tenantID, productID, qty, reason)
	})
}

// Dispose godoc
// @Summary      Desechar unidades del inventario dañado
// @Description  Solo descuenta el contador de dañados; el stock vendible no
//
//	cambia y la entrada del libro queda con delta cero.
//
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                  true  "id del producto"
// @Param        body  body  dto.MovementRequest  true  "quantity, reason (opcional)"
// @Success      201   {object}  map[string]string
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/dispose [post]
func (h *InventoryHandler) Dispose(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	return h.movement(c, func(productID, qty int64, reason string) error {
		return h.uc.Dispose(c.Context(), tenantID, productID, qty, reason)
	})
}

// Scan godoc
// @Summary      Ingesta por escaneo QR
// @Description  Acepta el JSON del QR; resuelve la identidad por id o
//
//	(name, category_id), crea el producto si no existe y registra
//	la entrada de stock, todo en una transacción.
//
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  ledger.QRPayload  true  "payload del QR"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products/scan [post]
func (h *InventoryHandler) Scan(c *fiber.Ctx) error {
	var in appledger.QRPayload
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	p, err := h.uc.IngestQR(c.Context(), GetTenantID(c), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "payload de QR inválido"})
		}
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ingesta concurrente del mismo producto; reintente el escaneo"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToProductResponse(p))
}
