package repository

import (
	"github.com/alcaldia-digital/patrimonio-api/internal/domain/entity"
)

// InventoryDetailRepository define el puerto de persistencia para registros de
// verificación de bienes dentro de una campaña.
type InventoryDetailRepository interface {
	Create(d *entity.InventoryDetail) error
	GetByID(id string) (*entity.InventoryDetail, error)
	Update(d *entity.InventoryDetail) error
	Delete(id string) error
	ListByInventory(inventoryID string, limit, offset int) ([]*entity.InventoryDetail, error)
	GetByInventoryAndAsset(inventoryID, assetID string) (*entity.InventoryDetail, error)
}
