package movement_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alcaldia-digital/patrimonio-api/internal/domain/entity"
	"github.com/alcaldia-digital/patrimonio-api/internal/domain/movement"
)

// Tabla completa de transiciones legales por estado.
func TestCanTransitionTo_TablaCompleta(t *testing.T) {
	allowed := map[string][]string{
		entity.MovementStatusRequested: {entity.MovementStatusApproved, entity.MovementStatusRejected, entity.MovementStatusCancelled},
		entity.MovementStatusApproved:  {entity.MovementStatusInProcess, entity.MovementStatusCompleted, entity.MovementStatusCancelled},
		entity.MovementStatusRejected:  {},
		entity.MovementStatusInProcess: {entity.MovementStatusCompleted, entity.MovementStatusCancelled},
		entity.MovementStatusCompleted: {},
		entity.MovementStatusCancelled: {},
		entity.MovementStatusPartial:   {entity.MovementStatusCompleted, entity.MovementStatusCancelled},
	}
	all := []string{
		entity.MovementStatusRequested, entity.MovementStatusApproved,
		entity.MovementStatusRejected, entity.MovementStatusInProcess,
		entity.MovementStatusCompleted, entity.MovementStatusCancelled,
		entity.MovementStatusPartial,
	}

	for from, targets := range allowed {
		permitted := make(map[string]bool, len(targets))
		for _, to := range targets {
			permitted[to] = true
		}
		for _, to := range all {
			got := movement.CanTransitionTo(from, to)
			assert.Equal(t, permitted[to], got,
				"transición %s -> %s debe ser %v", from, to, permitted[to])
		}
	}
}

func TestCanTransitionTo_EstadoDesconocido(t *testing.T) {
	assert.False(t, movement.CanTransitionTo("GARBAGE", entity.MovementStatusApproved),
		"un estado origen desconocido nunca permite transiciones")
	assert.False(t, movement.CanTransitionTo(entity.MovementStatusRequested, "GARBAGE"),
		"un estado destino desconocido nunca es legal")
	assert.False(t, movement.CanTransitionTo("", ""),
		"estados vacíos no permiten transiciones")
}

func TestAvailableActions_PorEstado(t *testing.T) {
	cases := map[string][]string{
		entity.MovementStatusRequested: {movement.ActionApprove, movement.ActionReject, movement.ActionCancel, movement.ActionEdit, movement.ActionDelete},
		entity.MovementStatusApproved:  {movement.ActionInProcess, movement.ActionComplete, movement.ActionCancel, movement.ActionEdit},
		entity.MovementStatusRejected:  {movement.ActionView},
		entity.MovementStatusInProcess: {movement.ActionComplete, movement.ActionCancel},
		entity.MovementStatusCompleted: {movement.ActionView},
		entity.MovementStatusCancelled: {movement.ActionView},
		entity.MovementStatusPartial:   {movement.ActionComplete, movement.ActionCancel},
	}
	for status, want := range cases {
		assert.ElementsMatch(t, want, movement.AvailableActions(status),
			"acciones para el estado %s", status)
	}
}

func TestAvailableActions_EstadoDesconocidoDevuelveVacio(t *testing.T) {
	got := movement.AvailableActions("NOPE")
	assert.NotNil(t, got, "debe devolver slice vacío, no nil")
	assert.Empty(t, got, "un estado desconocido no habilita acciones")
}

func TestAvailableActions_DevuelveCopia(t *testing.T) {
	first := movement.AvailableActions(entity.MovementStatusRequested)
	first[0] = "mutado"
	second := movement.AvailableActions(entity.MovementStatusRequested)
	assert.Equal(t, movement.ActionApprove, second[0],
		"mutar el resultado no debe afectar la tabla interna")
}

func TestHasAction(t *testing.T) {
	assert.True(t, movement.HasAction(entity.MovementStatusRequested, movement.ActionEdit))
	assert.True(t, movement.HasAction(entity.MovementStatusApproved, movement.ActionEdit))
	assert.False(t, movement.HasAction(entity.MovementStatusInProcess, movement.ActionEdit),
		"IN_PROCESS no permite editar")
	assert.False(t, movement.HasAction(entity.MovementStatusCompleted, movement.ActionDelete),
		"COMPLETED no permite borrar")
}

func TestPutsAssetInUse_YReleasesAsset(t *testing.T) {
	assert.True(t, movement.PutsAssetInUse(entity.MovementStatusApproved))
	assert.True(t, movement.PutsAssetInUse(entity.MovementStatusInProcess))
	assert.False(t, movement.PutsAssetInUse(entity.MovementStatusCompleted))

	assert.True(t, movement.ReleasesAsset(entity.MovementStatusCompleted))
	assert.True(t, movement.ReleasesAsset(entity.MovementStatusRejected))
	assert.True(t, movement.ReleasesAsset(entity.MovementStatusCancelled))
	assert.False(t, movement.ReleasesAsset(entity.MovementStatusApproved))
	assert.False(t, movement.ReleasesAsset(entity.MovementStatusRequested))
}
