package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/alcaldia-digital/patrimonio-api/internal/application/dto"
	"github.com/alcaldia-digital/patrimonio-api/internal/domain"
	"github.com/alcaldia-digital/patrimonio-api/internal/domain/entity"
	"github.com/alcaldia-digital/patrimonio-api/internal/domain/repository"
	"github.com/alcaldia-digital/patrimonio-api/internal/domain/validate"
)

// InventoryUseCase gestiona campañas de inventario físico: creación con regla
// de alcance, edición con filtros inmutables y transiciones de estado de la
// campaña (PLANNED -> IN_PROGRESS -> COMPLETED, o CANCELLED).
type InventoryUseCase struct {
	repo   repository.InventoryRepository
	assets AssetCounter
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(repo repository.InventoryRepository, assets AssetCounter) *InventoryUseCase {
	return &InventoryUseCase{repo: repo, assets: assets}
}

// Create valida la regla de alcance y persiste la campaña en estado PLANNED.
//
// GENERAL exige los tres filtros vacíos. SELECTIVE exige exactamente un filtro
// no vacío y que el conteo de bienes que cumplen el filtro sea mayor a cero:
// una campaña sin bienes que verificar se rechaza.
func (uc *InventoryUseCase) Create(ctx context.Context, municipalityID string, in dto.CreateInventoryRequest) (*dto.InventoryResponse, error) {
	inv := &entity.Inventory{
		ID:             uuid.New().String(),
		MunicipalityID: municipalityID,
		InventoryType:  in.InventoryType,
		Description:    in.Description,

		AreaID:     in.AreaID,
		CategoryID: in.CategoryID,
		LocationID: in.LocationID,

		PlannedStartDate:     in.PlannedStartDate,
		PlannedEndDate:       in.PlannedEndDate,
		GeneralResponsibleID: in.GeneralResponsibleID,

		IncludesMissing: in.IncludesMissing,
		IncludesSurplus: in.IncludesSurplus,
		RequiresPhotos:  in.RequiresPhotos,

		Status: entity.InventoryStatusPlanned,
	}

	if err := uc.validateScope(ctx, inv); err != nil {
		return nil, err
	}
	if err := validate.Observations("description", in.Description); err != nil {
		return nil, err
	}

	now := time.Now()
	inv.CreatedAt = now
	inv.UpdatedAt = now

	year := now.Year()
	seq, err := uc.repo.NextInventoryNumber(municipalityID, year)
	if err != nil {
		return nil, err
	}
	inv.InventoryNumber = fmt.Sprintf("INV-%d-%04d", year, seq)

	if err := uc.repo.Create(inv); err != nil {
		return nil, err
	}
	return dto.ToInventoryResponse(inv), nil
}

// Update edita la campaña. Los filtros de alcance son de escritura única: si
// la petición trae valores distintos a los almacenados se rechaza.
func (uc *InventoryUseCase) Update(ctx context.Context, municipalityID, id string, in dto.UpdateInventoryRequest) (*dto.InventoryResponse, error) {
	inv, err := uc.repo.GetByID(municipalityID, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	if inv.Status == entity.InventoryStatusCompleted || inv.Status == entity.InventoryStatusCancelled {
		return nil, domain.ErrConflict
	}
	incoming := &entity.Inventory{AreaID: in.AreaID, CategoryID: in.CategoryID, LocationID: in.LocationID}
	if !inv.SameScope(incoming) {
		return nil, domain.ErrImmutableField
	}
	if err := validate.Observations("description", in.Description); err != nil {
		return nil, err
	}

	inv.Description = in.Description
	inv.PlannedStartDate = in.PlannedStartDate
	inv.PlannedEndDate = in.PlannedEndDate
	inv.GeneralResponsibleID = in.GeneralResponsibleID
	inv.IncludesMissing = in.IncludesMissing
	inv.IncludesSurplus = in.IncludesSurplus
	inv.RequiresPhotos = in.RequiresPhotos
	inv.UpdatedAt = time.Now()

	if err := uc.repo.Update(inv); err != nil {
		return nil, err
	}
	return dto.ToInventoryResponse(inv), nil
}

// GetByID devuelve la campaña o (nil, nil) si no existe.
func (uc *InventoryUseCase) GetByID(ctx context.Context, municipalityID, id string) (*dto.InventoryResponse, error) {
	inv, err := uc.repo.GetByID(municipalityID, id)
	if err != nil || inv == nil {
		return nil, err
	}
	return dto.ToInventoryResponse(inv), nil
}

// List devuelve las campañas del municipio con paginación.
func (uc *InventoryUseCase) List(ctx context.Context, municipalityID string, page dto.PageRequest) ([]*dto.InventoryResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(municipalityID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.InventoryResponse, 0, len(list))
	for _, inv := range list {
		out = append(out, dto.ToInventoryResponse(inv))
	}
	return out, nil
}

// Delete elimina una campaña que no ha iniciado (PLANNED o CANCELLED).
func (uc *InventoryUseCase) Delete(ctx context.Context, municipalityID, id string) error {
	inv, err := uc.repo.GetByID(municipalityID, id)
	if err != nil {
		return err
	}
	if inv == nil {
		return domain.ErrNotFound
	}
	if inv.Status != entity.InventoryStatusPlanned && inv.Status != entity.InventoryStatusCancelled {
		return domain.ErrConflict
	}
	return uc.repo.Delete(municipalityID, id)
}

// Start transiciona PLANNED -> IN_PROGRESS.
func (uc *InventoryUseCase) Start(ctx context.Context, municipalityID, id string) (*dto.InventoryResponse, error) {
	return uc.transition(ctx, municipalityID, id, entity.InventoryStatusPlanned, entity.InventoryStatusInProgress)
}

// Complete transiciona IN_PROGRESS -> COMPLETED.
func (uc *InventoryUseCase) Complete(ctx context.Context, municipalityID, id string) (*dto.InventoryResponse, error) {
	return uc.transition(ctx, municipalityID, id, entity.InventoryStatusInProgress, entity.InventoryStatusCompleted)
}

// Cancel transiciona PLANNED o IN_PROGRESS -> CANCELLED.
func (uc *InventoryUseCase) Cancel(ctx context.Context, municipalityID, id string) (*dto.InventoryResponse, error) {
	inv, err := uc.repo.GetByID(municipalityID, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	if inv.Status != entity.InventoryStatusPlanned && inv.Status != entity.InventoryStatusInProgress {
		return nil, domain.ErrInvalidTransition
	}
	inv.Status = entity.InventoryStatusCancelled
	inv.UpdatedAt = time.Now()
	if err := uc.repo.Update(inv); err != nil {
		return nil, err
	}
	return dto.ToInventoryResponse(inv), nil
}

func (uc *InventoryUseCase) transition(ctx context.Context, municipalityID, id, from, to string) (*dto.InventoryResponse, error) {
	inv, err := uc.repo.GetByID(municipalityID, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	if inv.Status != from {
		return nil, domain.ErrInvalidTransition
	}
	inv.Status = to
	inv.UpdatedAt = time.Now()
	if err := uc.repo.Update(inv); err != nil {
		return nil, err
	}
	return dto.ToInventoryResponse(inv), nil
}

// validateScope aplica la regla de alcance por tipo de campaña.
func (uc *InventoryUseCase) validateScope(ctx context.Context, inv *entity.Inventory) error {
	switch inv.InventoryType {
	case entity.InventoryTypeGeneral:
		if inv.ScopeFilterCount() != 0 {
			return &validate.FieldError{Field: "inventoryType", Message: "un inventario GENERAL no admite filtros de alcance"}
		}
		return nil
	case entity.InventoryTypeSelective:
		if inv.ScopeFilterCount() != 1 {
			return &validate.FieldError{Field: "inventoryType", Message: "un inventario SELECTIVE exige exactamente un filtro de alcance"}
		}
		count, err := uc.assets.CountAssets(ctx, AssetFilter{
			MunicipalityID: inv.MunicipalityID,
			AreaID:         inv.AreaID,
			CategoryID:     inv.CategoryID,
			LocationID:     inv.LocationID,
		})
		if err != nil {
			return err
		}
		if count == 0 {
			return domain.ErrEmptyScope
		}
		return nil
	default:
		return domain.ErrInvalidInput
	}
}
