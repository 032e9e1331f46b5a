package movement

import (
	"context"

	"github.com/alcaldia-digital/patrimonio-api/internal/domain/entity"
)

// AssetService puerto hacia el microservicio de patrimonio (registro maestro
// de bienes). GetAsset devuelve (nil, nil) cuando el bien no existe.
type AssetService interface {
	GetAsset(ctx context.Context, id string) (*entity.Asset, error)
	ChangeAssetStatus(ctx context.Context, id, status, note string) error
}

// TransitionListener recibe el evento de transición después de persistir el
// cambio de estado. Los listeners son de mejor esfuerzo: sus errores no
// revierten ni bloquean la transición.
type TransitionListener interface {
	MovementTransitioned(ctx context.Context, ev TransitionEvent)
}
