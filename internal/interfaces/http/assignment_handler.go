package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/licorera-pos/internal/application/dto"
	"github.com/tu-usuario/licorera-pos/internal/application/usecase"
	"github.com/tu-usuario/licorera-pos/internal/domain"
)

// AssignmentHandler maneja las asignaciones de stock a vendedores
// (protegido).
type AssignmentHandler struct {
	uc *usecase.AssignmentUseCase
}

// NewAssignmentHandler construye el handler.
func NewAssignmentHandler(uc *usecase.AssignmentUseCase) *AssignmentHandler {
	return &AssignmentHandler{uc: uc}
}

// List godoc
// @Summary      Listar asignaciones
// @Tags         assignments
// @Security     Bearer
// @Produce      json
// @Param        attendant_id  query  string  false  "Filtrar por vendedor"
// @Success      200  {array}  entity.Assignment
// @Router       /api/assignments [get]
func (h *AssignmentHandler) List(c *fiber.Ctx) error {
	assignments, durability, err := h.uc.List(c.Context(), c.Query("attendant_id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	setDurability(c, durability)
	return c.JSON(assignments)
}

// Create godoc
// @Summary      Asignar stock a un vendedor
// @Tags         assignments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAssignmentRequest  true  "product_id, attendant_id, quantity_assigned, assignment_type"
// @Success      201   {object}  entity.Assignment
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/assignments [post]
func (h *AssignmentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAssignmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	assignment, durability, err := h.uc.Create(c.Context(), in)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "asignación inválida: tipo crates|bottles, cantidad positiva sin exceder stock"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	setDurability(c, durability)
	return c.Status(fiber.StatusCreated).JSON(assignment)
}

// Remove godoc
// @Summary      Eliminar asignación
// @Tags         assignments
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la asignación"
// @Success      200  {object}  dto.WriteResponse
// @Router       /api/assignments/{id} [delete]
func (h *AssignmentHandler) Remove(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	durability, err := h.uc.Remove(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	setDurability(c, durability)
	return c.JSON(dto.WriteResponse{Durability: string(durability), ID: id})
}

// Attendants godoc
// @Summary      Listar vendedores disponibles
// @Tags         assignments
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.User
// @Router       /api/assignments/attendants [get]
func (h *AssignmentHandler) Attendants(c *fiber.Ctx) error {
	attendants, durability, err := h.uc.Attendants(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	setDurability(c, durability)
	return c.JSON(attendants)
}
