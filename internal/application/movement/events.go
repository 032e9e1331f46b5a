package movement

import (
	"context"
	"time"

	"github.com/alcaldia-digital/patrimonio-api/internal/domain/entity"
	dommovement "github.com/alcaldia-digital/patrimonio-api/internal/domain/movement"
	"github.com/alcaldia-digital/patrimonio-api/pkg/logger"
)

// TransitionEvent describe un cambio de estado ya persistido de un movimiento.
// PreviousStatus vacío significa creación.
type TransitionEvent struct {
	MovementID     string
	MovementNumber string
	AssetID        string
	PreviousStatus string
	NewStatus      string
	Actor          string
	OccurredAt     time.Time
}

// AssetStatusSync sincroniza el estado del bien en el servicio de patrimonio
// cuando un movimiento cambia de estado: EN_USO al crear/aprobar/poner en
// proceso, DISPONIBLE al completar/rechazar/cancelar. La sincronización es de
// mejor esfuerzo: un fallo se registra como advertencia y nunca revierte la
// transición que lo originó.
type AssetStatusSync struct {
	assets AssetService
	log    *logger.Logger
}

// NewAssetStatusSync construye el listener de sincronización.
func NewAssetStatusSync(assets AssetService, log *logger.Logger) *AssetStatusSync {
	return &AssetStatusSync{assets: assets, log: log}
}

var _ TransitionListener = (*AssetStatusSync)(nil)

// MovementTransitioned aplica el cambio de estado del bien que corresponde al
// nuevo estado del movimiento, si corresponde alguno.
func (s *AssetStatusSync) MovementTransitioned(ctx context.Context, ev TransitionEvent) {
	var status string
	switch {
	case ev.PreviousStatus == "" && ev.NewStatus == entity.MovementStatusRequested:
		// La creación del movimiento reserva el bien.
		status = entity.AssetStatusInUse
	case dommovement.PutsAssetInUse(ev.NewStatus):
		status = entity.AssetStatusInUse
	case dommovement.ReleasesAsset(ev.NewStatus):
		status = entity.AssetStatusAvailable
	default:
		return
	}

	note := "movimiento " + ev.MovementNumber + " -> " + ev.NewStatus
	if err := s.assets.ChangeAssetStatus(ctx, ev.AssetID, status, note); err != nil {
		s.log.Warn().
			Err(err).
			Str("asset_id", ev.AssetID).
			Str("movement", ev.MovementNumber).
			Str("asset_status", status).
			Msg("no se pudo sincronizar el estado del bien; el movimiento queda firme")
	}
}
