package repository

import (
	"github.com/alcaldia-digital/patrimonio-api/internal/domain/entity"
)

// MovementFilter criterios de listado de movimientos.
type MovementFilter struct {
	AssetID        string
	MovementType   string
	MovementStatus string
	IncludeDeleted bool
	OnlyDeleted    bool
}

// MovementRepository define el puerto de persistencia para movimientos patrimoniales (DIP).
// GetByID devuelve (nil, nil) cuando no existe. Create asigna el número de
// movimiento en el servidor; los clientes nunca lo envían.
type MovementRepository interface {
	Create(m *entity.AssetMovement) error
	GetByID(municipalityID, id string) (*entity.AssetMovement, error)
	Update(m *entity.AssetMovement) error
	UpdateStatus(m *entity.AssetMovement) error
	List(municipalityID string, f MovementFilter, limit, offset int) ([]*entity.AssetMovement, error)
	ListByAsset(municipalityID, assetID string) ([]*entity.AssetMovement, error)
	Count(municipalityID string, f MovementFilter) (int, error)
	SoftDelete(m *entity.AssetMovement) error
	Restore(m *entity.AssetMovement) error
}
