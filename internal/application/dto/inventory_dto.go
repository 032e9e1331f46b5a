package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/alcaldia-digital/patrimonio-api/internal/domain/entity"
)

// CreateInventoryRequest cuerpo de creación de una campaña de inventario.
type CreateInventoryRequest struct {
	InventoryType string `json:"inventoryType"` // GENERAL | SELECTIVE
	Description   string `json:"description"`

	AreaID     string `json:"areaId"`
	CategoryID string `json:"categoryId"`
	LocationID string `json:"locationId"`

	PlannedStartDate     *time.Time `json:"plannedStartDate"`
	PlannedEndDate       *time.Time `json:"plannedEndDate"`
	GeneralResponsibleID string     `json:"generalResponsibleId"`

	IncludesMissing bool `json:"includesMissing"`
	IncludesSurplus bool `json:"includesSurplus"`
	RequiresPhotos  bool `json:"requiresPhotos"`
}

// UpdateInventoryRequest cuerpo de edición. Los filtros de alcance son de
// escritura única: cualquier intento de cambiarlos se rechaza.
type UpdateInventoryRequest struct {
	Description string `json:"description"`

	AreaID     string `json:"areaId"`
	CategoryID string `json:"categoryId"`
	LocationID string `json:"locationId"`

	PlannedStartDate     *time.Time `json:"plannedStartDate"`
	PlannedEndDate       *time.Time `json:"plannedEndDate"`
	GeneralResponsibleID string     `json:"generalResponsibleId"`

	IncludesMissing bool `json:"includesMissing"`
	IncludesSurplus bool `json:"includesSurplus"`
	RequiresPhotos  bool `json:"requiresPhotos"`
}

// InventoryResponse representación de salida de una campaña.
type InventoryResponse struct {
	ID              string `json:"id"`
	InventoryNumber string `json:"inventoryNumber"`
	InventoryType   string `json:"inventoryType"`
	Description     string `json:"description,omitempty"`

	AreaID     string `json:"areaId,omitempty"`
	CategoryID string `json:"categoryId,omitempty"`
	LocationID string `json:"locationId,omitempty"`

	PlannedStartDate     *time.Time `json:"plannedStartDate,omitempty"`
	PlannedEndDate       *time.Time `json:"plannedEndDate,omitempty"`
	GeneralResponsibleID string     `json:"generalResponsibleId,omitempty"`

	IncludesMissing bool `json:"includesMissing"`
	IncludesSurplus bool `json:"includesSurplus"`
	RequiresPhotos  bool `json:"requiresPhotos"`

	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToInventoryResponse mapea la entidad a la representación de salida.
func ToInventoryResponse(inv *entity.Inventory) *InventoryResponse {
	if inv == nil {
		return nil
	}
	return &InventoryResponse{
		ID:              inv.ID,
		InventoryNumber: inv.InventoryNumber,
		InventoryType:   inv.InventoryType,
		Description:     inv.Description,

		AreaID:     inv.AreaID,
		CategoryID: inv.CategoryID,
		LocationID: inv.LocationID,

		PlannedStartDate:     inv.PlannedStartDate,
		PlannedEndDate:       inv.PlannedEndDate,
		GeneralResponsibleID: inv.GeneralResponsibleID,

		IncludesMissing: inv.IncludesMissing,
		IncludesSurplus: inv.IncludesSurplus,
		RequiresPhotos:  inv.RequiresPhotos,

		Status:    inv.Status,
		CreatedAt: inv.CreatedAt,
		UpdatedAt: inv.UpdatedAt,
	}
}

// SaveInventoryDetailRequest cuerpo de creación/edición de un registro de verificación.
type SaveInventoryDetailRequest struct {
	AssetID string `json:"assetId"`

	FoundStatus              string `json:"foundStatus"`
	ActualConservationStatus string `json:"actualConservationStatus"`

	ActualLocationID    string `json:"actualLocationId"`
	ActualResponsibleID string `json:"actualResponsibleId"`

	Observations        string `json:"observations"`
	PhysicalDifferences string `json:"physicalDifferences"`
	DocumentDifferences string `json:"documentDifferences"`

	RequiresAction bool   `json:"requiresAction"`
	RequiredAction string `json:"requiredAction"`

	EstimatedRepairCost *decimal.Decimal `json:"estimatedRepairCost"`

	Photographs []entity.Photograph `json:"photographs"`
}

// InventoryDetailResponse representación de salida de un registro de verificación.
type InventoryDetailResponse struct {
	ID          string `json:"id"`
	InventoryID string `json:"inventoryId"`
	AssetID     string `json:"assetId"`

	FoundStatus              string `json:"foundStatus"`
	ActualConservationStatus string `json:"actualConservationStatus"`

	ActualLocationID    string `json:"actualLocationId,omitempty"`
	ActualResponsibleID string `json:"actualResponsibleId,omitempty"`

	VerifiedBy       string     `json:"verifiedBy,omitempty"`
	VerificationDate *time.Time `json:"verificationDate,omitempty"`

	Observations        string `json:"observations,omitempty"`
	PhysicalDifferences string `json:"physicalDifferences,omitempty"`
	DocumentDifferences string `json:"documentDifferences,omitempty"`

	RequiresAction bool   `json:"requiresAction"`
	RequiredAction string `json:"requiredAction,omitempty"`

	EstimatedRepairCost *decimal.Decimal `json:"estimatedRepairCost,omitempty"`

	Photographs []entity.Photograph `json:"photographs"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToInventoryDetailResponse mapea la entidad decodificando las fotografías.
func ToInventoryDetailResponse(d *entity.InventoryDetail) *InventoryDetailResponse {
	if d == nil {
		return nil
	}
	photos, err := entity.DecodePhotographs(d.Photographs)
	if err != nil {
		photos = []entity.Photograph{}
	}
	return &InventoryDetailResponse{
		ID:          d.ID,
		InventoryID: d.InventoryID,
		AssetID:     d.AssetID,

		FoundStatus:              d.FoundStatus,
		ActualConservationStatus: d.ActualConservationStatus,

		ActualLocationID:    d.ActualLocationID,
		ActualResponsibleID: d.ActualResponsibleID,

		VerifiedBy:       d.VerifiedBy,
		VerificationDate: d.VerificationDate,

		Observations:        d.Observations,
		PhysicalDifferences: d.PhysicalDifferences,
		DocumentDifferences: d.DocumentDifferences,

		RequiresAction: d.RequiresAction,
		RequiredAction: d.RequiredAction,

		EstimatedRepairCost: d.EstimatedRepairCost,

		Photographs: photos,

		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}
