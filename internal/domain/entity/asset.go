package entity

import "github.com/shopspring/decimal"

// Estados operativos de un bien en el servicio de patrimonio.
const (
	AssetStatusAvailable   = "DISPONIBLE"
	AssetStatusInUse       = "EN_USO"
	AssetStatusMaintenance = "MANTENIMIENTO"
	AssetStatusRetired     = "BAJA"
)

// Asset es la vista local de un bien patrimonial. El registro maestro vive en
// el microservicio de patrimonio; aquí solo se manejan los campos que los
// flujos de movimientos e inventario necesitan.
type Asset struct {
	ID                 string
	Code               string
	Name               string
	Status             string
	ConservationStatus string
	AreaID             string
	LocationID         string
	ResponsibleID      string
	AcquisitionValue   decimal.Decimal
}
