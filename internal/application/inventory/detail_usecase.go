package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/alcaldia-digital/patrimonio-api/internal/application/dto"
	"github.com/alcaldia-digital/patrimonio-api/internal/domain"
	"github.com/alcaldia-digital/patrimonio-api/internal/domain/entity"
	"github.com/alcaldia-digital/patrimonio-api/internal/domain/repository"
	"github.com/alcaldia-digital/patrimonio-api/internal/domain/validate"
)

// DetailUseCase gestiona los registros de verificación por bien dentro de una
// campaña. Cada registro pertenece a exactamente una campaña y referencia
// exactamente un bien.
type DetailUseCase struct {
	inventoryRepo repository.InventoryRepository
	detailRepo    repository.InventoryDetailRepository
}

// NewDetailUseCase construye el caso de uso.
func NewDetailUseCase(inventoryRepo repository.InventoryRepository, detailRepo repository.InventoryDetailRepository) *DetailUseCase {
	return &DetailUseCase{inventoryRepo: inventoryRepo, detailRepo: detailRepo}
}

// Create registra la verificación de un bien en una campaña en curso.
func (uc *DetailUseCase) Create(ctx context.Context, municipalityID, inventoryID, verifiedBy string, in dto.SaveInventoryDetailRequest) (*dto.InventoryDetailResponse, error) {
	inv, err := uc.activeInventory(municipalityID, inventoryID)
	if err != nil {
		return nil, err
	}
	if in.AssetID == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := validateDetail(inv, in); err != nil {
		return nil, err
	}

	existing, err := uc.detailRepo.GetByInventoryAndAsset(inventoryID, in.AssetID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	photos, err := entity.EncodePhotographs(in.Photographs)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	d := &entity.InventoryDetail{
		ID:          uuid.New().String(),
		InventoryID: inventoryID,
		AssetID:     in.AssetID,

		FoundStatus:              in.FoundStatus,
		ActualConservationStatus: in.ActualConservationStatus,

		ActualLocationID:    in.ActualLocationID,
		ActualResponsibleID: in.ActualResponsibleID,

		VerifiedBy:       verifiedBy,
		VerificationDate: &now,

		Observations:        in.Observations,
		PhysicalDifferences: in.PhysicalDifferences,
		DocumentDifferences: in.DocumentDifferences,

		RequiresAction: in.RequiresAction,
		RequiredAction: in.RequiredAction,

		EstimatedRepairCost: in.EstimatedRepairCost,

		Photographs: photos,

		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.detailRepo.Create(d); err != nil {
		return nil, err
	}
	return dto.ToInventoryDetailResponse(d), nil
}

// Update edita un registro de verificación de una campaña en curso.
func (uc *DetailUseCase) Update(ctx context.Context, municipalityID, inventoryID, detailID string, in dto.SaveInventoryDetailRequest) (*dto.InventoryDetailResponse, error) {
	inv, err := uc.activeInventory(municipalityID, inventoryID)
	if err != nil {
		return nil, err
	}
	d, err := uc.detailRepo.GetByID(detailID)
	if err != nil {
		return nil, err
	}
	if d == nil || d.InventoryID != inventoryID {
		return nil, domain.ErrNotFound
	}
	if err := validateDetail(inv, in); err != nil {
		return nil, err
	}

	photos, err := entity.EncodePhotographs(in.Photographs)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	d.FoundStatus = in.FoundStatus
	d.ActualConservationStatus = in.ActualConservationStatus
	d.ActualLocationID = in.ActualLocationID
	d.ActualResponsibleID = in.ActualResponsibleID
	d.Observations = in.Observations
	d.PhysicalDifferences = in.PhysicalDifferences
	d.DocumentDifferences = in.DocumentDifferences
	d.RequiresAction = in.RequiresAction
	d.RequiredAction = in.RequiredAction
	d.EstimatedRepairCost = in.EstimatedRepairCost
	d.Photographs = photos
	d.UpdatedAt = time.Now()

	if err := uc.detailRepo.Update(d); err != nil {
		return nil, err
	}
	return dto.ToInventoryDetailResponse(d), nil
}

// Delete elimina un registro de verificación de una campaña en curso.
func (uc *DetailUseCase) Delete(ctx context.Context, municipalityID, inventoryID, detailID string) error {
	if _, err := uc.activeInventory(municipalityID, inventoryID); err != nil {
		return err
	}
	d, err := uc.detailRepo.GetByID(detailID)
	if err != nil {
		return err
	}
	if d == nil || d.InventoryID != inventoryID {
		return domain.ErrNotFound
	}
	return uc.detailRepo.Delete(detailID)
}

// ListByInventory devuelve los registros de verificación de una campaña.
func (uc *DetailUseCase) ListByInventory(ctx context.Context, municipalityID, inventoryID string, page dto.PageRequest) ([]*dto.InventoryDetailResponse, error) {
	inv, err := uc.inventoryRepo.GetByID(municipalityID, inventoryID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	page.DefaultPage()
	list, err := uc.detailRepo.ListByInventory(inventoryID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.InventoryDetailResponse, 0, len(list))
	for _, d := range list {
		out = append(out, dto.ToInventoryDetailResponse(d))
	}
	return out, nil
}

// activeInventory devuelve la campaña si existe y está en curso.
func (uc *DetailUseCase) activeInventory(municipalityID, inventoryID string) (*entity.Inventory, error) {
	inv, err := uc.inventoryRepo.GetByID(municipalityID, inventoryID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	if inv.Status != entity.InventoryStatusInProgress {
		return nil, domain.ErrConflict
	}
	return inv, nil
}

// validateDetail aplica las reglas de verificación contra la configuración de
// la campaña y las reglas de texto compartidas.
func validateDetail(inv *entity.Inventory, in dto.SaveInventoryDetailRequest) error {
	if !entity.IsValidFoundStatus(in.FoundStatus) {
		return &validate.FieldError{Field: "foundStatus", Message: "resultado de verificación inválido"}
	}
	if in.ActualConservationStatus != "" && !entity.IsValidConservationStatus(in.ActualConservationStatus) {
		return &validate.FieldError{Field: "actualConservationStatus", Message: "estado de conservación inválido"}
	}
	switch in.FoundStatus {
	case entity.FoundStatusFound, entity.FoundStatusDamaged:
		if in.ActualConservationStatus == "" {
			return &validate.FieldError{Field: "actualConservationStatus", Message: "es obligatorio para bienes encontrados"}
		}
		if inv.RequiresPhotos && len(in.Photographs) == 0 {
			return &validate.FieldError{Field: "photographs", Message: "la campaña exige al menos una fotografía"}
		}
	case entity.FoundStatusMissing:
		if !inv.IncludesMissing {
			return &validate.FieldError{Field: "foundStatus", Message: "la campaña no incluye bienes faltantes"}
		}
	case entity.FoundStatusSurplus:
		if !inv.IncludesSurplus {
			return &validate.FieldError{Field: "foundStatus", Message: "la campaña no incluye bienes sobrantes"}
		}
	}

	for field, value := range map[string]string{
		"observations":        in.Observations,
		"physicalDifferences": in.PhysicalDifferences,
		"documentDifferences": in.DocumentDifferences,
	} {
		if err := validate.NotBlank(field, value); err != nil {
			return err
		}
		if err := validate.Observations(field, value); err != nil {
			return err
		}
	}

	if in.RequiresAction {
		if err := validate.RequiredAction(in.RequiredAction); err != nil {
			return err
		}
	}
	return nil
}
