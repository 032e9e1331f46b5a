package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/alcaldia-digital/patrimonio-api/internal/application/dto"
	"github.com/alcaldia-digital/patrimonio-api/internal/application/movement"
	"github.com/alcaldia-digital/patrimonio-api/internal/domain"
	"github.com/alcaldia-digital/patrimonio-api/internal/domain/repository"
)

// MovementHandler maneja el ciclo de vida de movimientos patrimoniales.
type MovementHandler struct {
	uc   *movement.MovementUseCase
	acta *movement.ActaUseCase
}

// NewMovementHandler construye el handler de movimientos.
func NewMovementHandler(uc *movement.MovementUseCase, acta *movement.ActaUseCase) *MovementHandler {
	return &MovementHandler{uc: uc, acta: acta}
}

// Create godoc
// @Summary      Crear movimiento
// @Description  El número de movimiento lo asigna el servidor; el estado inicial es REQUESTED.
// @Tags         movements
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateMovementRequest  true  "movimiento"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/movements [post]
func (h *MovementHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), GetMunicipalityID(c), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Editar movimiento
// @Description  Solo mientras el estado habilite la edición. Número y estado no cambian por esta vía.
// @Tags         movements
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                     true  "ID del movimiento"
// @Param        body  body  dto.UpdateMovementRequest  true  "campos editables"
// @Success      200   {object}  dto.MovementResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movements/{id} [put]
func (h *MovementHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), GetMunicipalityID(c), c.Params("id"), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener movimiento
// @Tags         movements
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID del movimiento"
// @Success      200  {object}  dto.MovementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movements/{id} [get]
func (h *MovementHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Listar movimientos
// @Tags         movements
// @Produce      json
// @Security     BearerAuth
// @Param        assetId  query  string  false  "filtrar por bien"
// @Param        type     query  string  false  "filtrar por tipo"
// @Param        status   query  string  false  "filtrar por estado"
// @Param        limit    query  int     false  "tamaño de página"
// @Param        offset   query  int     false  "desplazamiento"
// @Success      200  {array}  dto.MovementResponse
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	f := repository.MovementFilter{
		AssetID:        c.Query("assetId"),
		MovementType:   c.Query("type"),
		MovementStatus: c.Query("status"),
	}
	out, err := h.uc.List(c.Context(), GetMunicipalityID(c), f, page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListDeleted godoc
// @Summary      Listar movimientos borrados
// @Tags         movements
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.MovementResponse
// @Router       /api/movements/deleted [get]
func (h *MovementHandler) ListDeleted(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	out, err := h.uc.ListDeleted(c.Context(), GetMunicipalityID(c), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Count godoc
// @Summary      Contar movimientos
// @Tags         movements
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]int
// @Router       /api/movements/count [get]
func (h *MovementHandler) Count(c *fiber.Ctx) error {
	f := repository.MovementFilter{
		AssetID:        c.Query("assetId"),
		MovementType:   c.Query("type"),
		MovementStatus: c.Query("status"),
	}
	n, err := h.uc.Count(c.Context(), GetMunicipalityID(c), f)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"count": n})
}

// Approve godoc
// @Summary      Aprobar movimiento
// @Tags         movements
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID del movimiento"
// @Success      200  {object}  dto.MovementResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/movements/{id}/approve [post]
func (h *MovementHandler) Approve(c *fiber.Ctx) error {
	out, err := h.uc.Approve(c.Context(), GetMunicipalityID(c), c.Params("id"), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Reject godoc
// @Summary      Rechazar movimiento
// @Tags         movements
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                     true   "ID del movimiento"
// @Param        body  body  dto.RejectMovementRequest  false  "motivo"
// @Success      200   {object}  dto.MovementResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movements/{id}/reject [post]
func (h *MovementHandler) Reject(c *fiber.Ctx) error {
	var in dto.RejectMovementRequest
	_ = c.BodyParser(&in) // cuerpo opcional
	out, err := h.uc.Reject(c.Context(), GetMunicipalityID(c), c.Params("id"), GetUserID(c), in.Reason)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// MarkInProcess godoc
// @Summary      Iniciar ejecución del movimiento
// @Tags         movements
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID del movimiento"
// @Success      200  {object}  dto.MovementResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/movements/{id}/in-process [post]
func (h *MovementHandler) MarkInProcess(c *fiber.Ctx) error {
	out, err := h.uc.MarkInProcess(c.Context(), GetMunicipalityID(c), c.Params("id"), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Complete godoc
// @Summary      Completar movimiento
// @Tags         movements
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID del movimiento"
// @Success      200  {object}  dto.MovementResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/movements/{id}/complete [post]
func (h *MovementHandler) Complete(c *fiber.Ctx) error {
	out, err := h.uc.Complete(c.Context(), GetMunicipalityID(c), c.Params("id"), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Cancel godoc
// @Summary      Cancelar movimiento
// @Tags         movements
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                     true   "ID del movimiento"
// @Param        body  body  dto.CancelMovementRequest  false  "motivo"
// @Success      200   {object}  dto.MovementResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movements/{id}/cancel [post]
func (h *MovementHandler) Cancel(c *fiber.Ctx) error {
	var in dto.CancelMovementRequest
	_ = c.BodyParser(&in) // cuerpo opcional
	out, err := h.uc.Cancel(c.Context(), GetMunicipalityID(c), c.Params("id"), GetUserID(c), in.Reason)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Borrar movimiento (lógico)
// @Tags         movements
// @Security     BearerAuth
// @Param        id  path  string  true  "ID del movimiento"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/movements/{id} [delete]
func (h *MovementHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetMunicipalityID(c), c.Params("id"), GetUserID(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Restore godoc
// @Summary      Restaurar movimiento borrado
// @Tags         movements
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID del movimiento"
// @Success      200  {object}  dto.MovementResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/movements/{id}/restore [post]
func (h *MovementHandler) Restore(c *fiber.Ctx) error {
	out, err := h.uc.Restore(c.Context(), GetMunicipalityID(c), c.Params("id"), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// InferOrigin godoc
// @Summary      Inferir custodia actual de un bien
// @Description  Deriva responsable, área y ubicación actuales desde el historial para prellenar el origen.
// @Tags         movements
// @Produce      json
// @Security     BearerAuth
// @Param        assetId  path  string  true  "ID del bien"
// @Success      200  {object}  movement.Origin
// @Router       /api/assets/{assetId}/origin [get]
func (h *MovementHandler) InferOrigin(c *fiber.Ctx) error {
	origin, err := h.uc.InferOrigin(c.Context(), GetMunicipalityID(c), c.Params("assetId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(origin)
}

// Timeline godoc
// @Summary      Línea de tiempo de custodia de un bien
// @Description  Periodos de custodia con duraciones legibles, más reciente primero.
// @Tags         movements
// @Produce      json
// @Security     BearerAuth
// @Param        assetId  path  string  true  "ID del bien"
// @Success      200  {array}  dto.TimelineEntryResponse
// @Router       /api/assets/{assetId}/timeline [get]
func (h *MovementHandler) Timeline(c *fiber.Ctx) error {
	entries, err := h.uc.Timeline(c.Context(), GetMunicipalityID(c), c.Params("assetId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(entries)
}

// Acta godoc
// @Summary      Acta de movimiento en PDF
// @Tags         movements
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id  path  string  true  "ID del movimiento"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movements/{id}/acta [get]
func (h *MovementHandler) Acta(c *fiber.Ctx) error {
	raw, filename, err := h.acta.GeneratePDF(c.Context(), GetMunicipalityID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(raw)
}
