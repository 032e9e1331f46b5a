package repository

import (
	"github.com/alcaldia-digital/patrimonio-api/internal/domain/entity"
)

// InventoryRepository define el puerto de persistencia para campañas de inventario físico.
// GetByID devuelve (nil, nil) cuando no existe.
type InventoryRepository interface {
	Create(inv *entity.Inventory) error
	GetByID(municipalityID, id string) (*entity.Inventory, error)
	Update(inv *entity.Inventory) error
	Delete(municipalityID, id string) error
	List(municipalityID string, limit, offset int) ([]*entity.Inventory, error)
	NextInventoryNumber(municipalityID string, year int) (int, error)
}
