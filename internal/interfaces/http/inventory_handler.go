package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/alcaldia-digital/patrimonio-api/internal/application/dto"
	"github.com/alcaldia-digital/patrimonio-api/internal/application/inventory"
	"github.com/alcaldia-digital/patrimonio-api/internal/domain"
)

// InventoryHandler maneja campañas de inventario físico y sus registros de
// verificación.
type InventoryHandler struct {
	uc      *inventory.InventoryUseCase
	details *inventory.DetailUseCase
}

// NewInventoryHandler construye el handler de inventarios.
func NewInventoryHandler(uc *inventory.InventoryUseCase, details *inventory.DetailUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc, details: details}
}

// Create godoc
// @Summary      Crear campaña de inventario
// @Description  GENERAL sin filtros de alcance; SELECTIVE con exactamente un filtro y al menos un bien.
// @Tags         inventories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateInventoryRequest  true  "campaña"
// @Success      201   {object}  dto.InventoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/inventories [post]
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInventoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), GetMunicipalityID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Editar campaña
// @Description  Los filtros de alcance son de escritura única; cambiarlos se rechaza.
// @Tags         inventories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                      true  "ID de la campaña"
// @Param        body  body  dto.UpdateInventoryRequest  true  "campos editables"
// @Success      200   {object}  dto.InventoryResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventories/{id} [put]
func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateInventoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), GetMunicipalityID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener campaña
// @Tags         inventories
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID de la campaña"
// @Success      200  {object}  dto.InventoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventories/{id} [get]
func (h *InventoryHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), GetMunicipalityID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return respondError(c, domain.ErrNotFound)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar campañas
// @Tags         inventories
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query  int  false  "tamaño de página"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {array}  dto.InventoryResponse
// @Router       /api/inventories [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	out, err := h.uc.List(c.Context(), GetMunicipalityID(c), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar campaña no iniciada
// @Tags         inventories
// @Security     BearerAuth
// @Param        id  path  string  true  "ID de la campaña"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/inventories/{id} [delete]
func (h *InventoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetMunicipalityID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Start godoc
// @Summary      Iniciar campaña
// @Tags         inventories
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID de la campaña"
// @Success      200  {object}  dto.InventoryResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/inventories/{id}/start [post]
func (h *InventoryHandler) Start(c *fiber.Ctx) error {
	out, err := h.uc.Start(c.Context(), GetMunicipalityID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Complete godoc
// @Summary      Completar campaña
// @Tags         inventories
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID de la campaña"
// @Success      200  {object}  dto.InventoryResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/inventories/{id}/complete [post]
func (h *InventoryHandler) Complete(c *fiber.Ctx) error {
	out, err := h.uc.Complete(c.Context(), GetMunicipalityID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Cancel godoc
// @Summary      Cancelar campaña
// @Tags         inventories
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID de la campaña"
// @Success      200  {object}  dto.InventoryResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/inventories/{id}/cancel [post]
func (h *InventoryHandler) Cancel(c *fiber.Ctx) error {
	out, err := h.uc.Cancel(c.Context(), GetMunicipalityID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CreateDetail godoc
// @Summary      Registrar verificación de un bien
// @Description  Solo con la campaña en curso; un registro por bien por campaña.
// @Tags         inventories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                          true  "ID de la campaña"
// @Param        body  body  dto.SaveInventoryDetailRequest  true  "verificación"
// @Success      201   {object}  dto.InventoryDetailResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventories/{id}/details [post]
func (h *InventoryHandler) CreateDetail(c *fiber.Ctx) error {
	var in dto.SaveInventoryDetailRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.details.Create(c.Context(), GetMunicipalityID(c), c.Params("id"), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateDetail godoc
// @Summary      Editar registro de verificación
// @Tags         inventories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id        path  string                          true  "ID de la campaña"
// @Param        detailId  path  string                          true  "ID del registro"
// @Param        body      body  dto.SaveInventoryDetailRequest  true  "verificación"
// @Success      200       {object}  dto.InventoryDetailResponse
// @Failure      409       {object}  dto.ErrorResponse
// @Router       /api/inventories/{id}/details/{detailId} [put]
func (h *InventoryHandler) UpdateDetail(c *fiber.Ctx) error {
	var in dto.SaveInventoryDetailRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.details.Update(c.Context(), GetMunicipalityID(c), c.Params("id"), c.Params("detailId"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DeleteDetail godoc
// @Summary      Eliminar registro de verificación
// @Tags         inventories
// @Security     BearerAuth
// @Param        id        path  string  true  "ID de la campaña"
// @Param        detailId  path  string  true  "ID del registro"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/inventories/{id}/details/{detailId} [delete]
func (h *InventoryHandler) DeleteDetail(c *fiber.Ctx) error {
	if err := h.details.Delete(c.Context(), GetMunicipalityID(c), c.Params("id"), c.Params("detailId")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListDetails godoc
// @Summary      Listar registros de verificación de una campaña
// @Tags         inventories
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID de la campaña"
// @Success      200  {array}  dto.InventoryDetailResponse
// @Router       /api/inventories/{id}/details [get]
func (h *InventoryHandler) ListDetails(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	out, err := h.details.ListByInventory(c.Context(), GetMunicipalityID(c), c.Params("id"), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
