package inventory

import "context"

// AssetFilter criterios de conteo de bienes en el servicio de patrimonio.
// Exactamente uno de los campos de alcance viene poblado para campañas SELECTIVE.
type AssetFilter struct {
	MunicipalityID string
	AreaID         string
	CategoryID     string
	LocationID     string
}

// AssetCounter puerto hacia el servicio de patrimonio para verificar que el
// alcance de una campaña selectiva tiene al menos un bien.
type AssetCounter interface {
	CountAssets(ctx context.Context, f AssetFilter) (int, error)
}
