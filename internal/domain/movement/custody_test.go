package movement_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/alcaldia-digital/patrimonio-api/internal/domain/entity"
	"github.com/alcaldia-digital/patrimonio-api/internal/domain/movement"
)

func datePtr(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

func TestInferOrigin_SinHistorialEsPrimeraAsignacion(t *testing.T) {
	origin := movement.InferOrigin(nil)
	assert.True(t, origin.FirstAssignment, "sin movimientos es primera asignación")
	assert.Empty(t, origin.AreaID)
	assert.Empty(t, origin.ResponsibleID)
}

func TestInferOrigin_UsaElCompletadoMasReciente(t *testing.T) {
	history := []*entity.AssetMovement{
		{
			MovementStatus:           entity.MovementStatusCompleted,
			ReceptionDate:            datePtr(2024, 3, 1),
			DestinationAreaID:        "area-vieja",
			DestinationResponsibleID: "resp-viejo",
		},
		{
			MovementStatus:           entity.MovementStatusCompleted,
			ReceptionDate:            datePtr(2025, 6, 15),
			DestinationAreaID:        "area-nueva",
			DestinationLocationID:    "loc-nueva",
			DestinationResponsibleID: "resp-nuevo",
		},
		// Un pendiente posterior no gana sobre un completado.
		{
			MovementStatus:           entity.MovementStatusRequested,
			RequestDate:              datePtr(2026, 1, 1),
			DestinationResponsibleID: "resp-pendiente",
		},
	}

	origin := movement.InferOrigin(history)
	assert.False(t, origin.FirstAssignment)
	assert.Equal(t, "area-nueva", origin.AreaID)
	assert.Equal(t, "loc-nueva", origin.LocationID)
	assert.Equal(t, "resp-nuevo", origin.ResponsibleID)
}

// El orden de los completados usa receptionDate ?? executionDate ?? requestDate.
func TestInferOrigin_FechaDeOrdenConFallback(t *testing.T) {
	history := []*entity.AssetMovement{
		{
			MovementStatus:    entity.MovementStatusCompleted,
			ExecutionDate:     datePtr(2025, 8, 1), // sin receptionDate
			DestinationAreaID: "gana",
		},
		{
			MovementStatus:    entity.MovementStatusCompleted,
			ReceptionDate:     datePtr(2025, 5, 1),
			DestinationAreaID: "pierde",
		},
	}
	origin := movement.InferOrigin(history)
	assert.Equal(t, "gana", origin.AreaID,
		"executionDate sirve como fecha de orden cuando falta receptionDate")
}

func TestInferOrigin_SinCompletadosUsaPendientesConDestino(t *testing.T) {
	history := []*entity.AssetMovement{
		{
			MovementStatus:           entity.MovementStatusCancelled,
			RequestDate:              datePtr(2025, 9, 1),
			DestinationResponsibleID: "cancelado",
		},
		{
			MovementStatus:           entity.MovementStatusRejected,
			RequestDate:              datePtr(2025, 9, 2),
			DestinationResponsibleID: "rechazado",
		},
		{
			MovementStatus:           entity.MovementStatusApproved,
			RequestDate:              datePtr(2025, 4, 1),
			DestinationResponsibleID: "aprobado-viejo",
		},
		{
			MovementStatus:           entity.MovementStatusInProcess,
			RequestDate:              datePtr(2025, 7, 1),
			DestinationResponsibleID: "en-proceso-reciente",
			DestinationLocationID:    "loc-b",
		},
	}

	origin := movement.InferOrigin(history)
	assert.False(t, origin.FirstAssignment)
	assert.Equal(t, "en-proceso-reciente", origin.ResponsibleID,
		"cancelados y rechazados se excluyen; gana el pendiente más reciente por requestDate")
	assert.Equal(t, "loc-b", origin.LocationID)
}

func TestInferOrigin_PendienteSinDestinoNoCuenta(t *testing.T) {
	history := []*entity.AssetMovement{
		{
			MovementStatus: entity.MovementStatusRequested,
			RequestDate:    datePtr(2025, 1, 1),
			// sin campos de destino
		},
	}
	origin := movement.InferOrigin(history)
	assert.True(t, origin.FirstAssignment,
		"un historial sin destinos utilizables cae a primera asignación")
}

func TestInferOrigin_SoloCanceladosYRechazados(t *testing.T) {
	history := []*entity.AssetMovement{
		{MovementStatus: entity.MovementStatusCancelled, RequestDate: datePtr(2025, 1, 1), DestinationAreaID: "x"},
		{MovementStatus: entity.MovementStatusRejected, RequestDate: datePtr(2025, 2, 1), DestinationAreaID: "y"},
	}
	origin := movement.InferOrigin(history)
	assert.True(t, origin.FirstAssignment)
}
