package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/licorera-pos/internal/application/dto"
	"github.com/tu-usuario/licorera-pos/internal/application/sync"
)

// InventoryHandler consulta de movimientos de inventario (protegido). Los
// movimientos son locales: no pasan por el espejo remoto.
type InventoryHandler struct {
	shim *sync.Service
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(shim *sync.Service) *InventoryHandler {
	return &InventoryHandler{shim: shim}
}

// List godoc
// @Summary      Listar movimientos de inventario
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.InventoryLog
// @Router       /api/inventory [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	logs, err := h.shim.FetchInventoryLogs()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(logs)
}
