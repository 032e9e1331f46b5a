package entity

import "time"

// Tipos de inventario físico.
const (
	InventoryTypeGeneral   = "GENERAL"   // todos los bienes del municipio
	InventoryTypeSelective = "SELECTIVE" // filtrado por área, categoría o ubicación
)

// Estados de una campaña de inventario.
const (
	InventoryStatusPlanned    = "PLANNED"
	InventoryStatusInProgress = "IN_PROGRESS"
	InventoryStatusCompleted  = "COMPLETED"
	InventoryStatusCancelled  = "CANCELLED"
)

// Inventory es una campaña de verificación física que agrupa registros de
// verificación bajo un alcance y una ventana de tiempo. Los filtros de alcance
// son inmutables después de crear la campaña.
type Inventory struct {
	ID              string
	MunicipalityID  string
	InventoryNumber string
	InventoryType   string // GENERAL | SELECTIVE
	Description     string

	// Filtros de alcance: GENERAL exige los tres vacíos,
	// SELECTIVE exige exactamente uno no vacío.
	AreaID     string
	CategoryID string
	LocationID string

	PlannedStartDate     *time.Time
	PlannedEndDate       *time.Time
	GeneralResponsibleID string

	IncludesMissing bool
	IncludesSurplus bool
	RequiresPhotos  bool

	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ScopeFilterCount cuenta los filtros de alcance no vacíos.
func (i *Inventory) ScopeFilterCount() int {
	n := 0
	if i.AreaID != "" {
		n++
	}
	if i.CategoryID != "" {
		n++
	}
	if i.LocationID != "" {
		n++
	}
	return n
}

// SameScope indica si otra campaña define exactamente los mismos filtros de alcance.
func (i *Inventory) SameScope(other *Inventory) bool {
	return i.AreaID == other.AreaID &&
		i.CategoryID == other.CategoryID &&
		i.LocationID == other.LocationID
}
