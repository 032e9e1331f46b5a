// Package movement contiene los servicios de dominio puros del ciclo de vida
// de movimientos patrimoniales: la máquina de estados, la inferencia de origen
// y la línea de tiempo de custodia. Sin dependencias de infraestructura.
package movement

import "github.com/alcaldia-digital/patrimonio-api/internal/domain/entity"

// Acciones disponibles sobre un movimiento según su estado.
const (
	ActionApprove   = "approve"
	ActionReject    = "reject"
	ActionCancel    = "cancel"
	ActionEdit      = "edit"
	ActionDelete    = "delete"
	ActionInProcess = "in-process"
	ActionComplete  = "complete"
	ActionView      = "view"
)

// transitions define los destinos permitidos para cada estado.
// REJECTED, COMPLETED y CANCELLED son terminales.
var transitions = map[string][]string{
	entity.MovementStatusRequested: {entity.MovementStatusApproved, entity.MovementStatusRejected, entity.MovementStatusCancelled},
	entity.MovementStatusApproved:  {entity.MovementStatusInProcess, entity.MovementStatusCompleted, entity.MovementStatusCancelled},
	entity.MovementStatusRejected:  {},
	entity.MovementStatusInProcess: {entity.MovementStatusCompleted, entity.MovementStatusCancelled},
	entity.MovementStatusCompleted: {},
	entity.MovementStatusCancelled: {},
	entity.MovementStatusPartial:   {entity.MovementStatusCompleted, entity.MovementStatusCancelled},
}

// actions define el conjunto de acciones habilitadas por estado.
var actions = map[string][]string{
	entity.MovementStatusRequested: {ActionApprove, ActionReject, ActionCancel, ActionEdit, ActionDelete},
	entity.MovementStatusApproved:  {ActionInProcess, ActionComplete, ActionCancel, ActionEdit},
	entity.MovementStatusRejected:  {ActionView},
	entity.MovementStatusInProcess: {ActionComplete, ActionCancel},
	entity.MovementStatusCompleted: {ActionView},
	entity.MovementStatusCancelled: {ActionView},
	entity.MovementStatusPartial:   {ActionComplete, ActionCancel},
}

// CanTransitionTo indica si la transición current -> target es legal.
// Un estado current desconocido devuelve siempre false, nunca panic.
func CanTransitionTo(current, target string) bool {
	allowed, ok := transitions[current]
	if !ok {
		return false
	}
	for _, t := range allowed {
		if t == target {
			return true
		}
	}
	return false
}

// AvailableActions devuelve las acciones habilitadas para el estado dado.
// Un estado desconocido devuelve el conjunto vacío.
func AvailableActions(status string) []string {
	set, ok := actions[status]
	if !ok {
		return []string{}
	}
	out := make([]string, len(set))
	copy(out, set)
	return out
}

// HasAction indica si la acción está habilitada para el estado.
func HasAction(status, action string) bool {
	for _, a := range AvailableActions(status) {
		if a == action {
			return true
		}
	}
	return false
}

// PutsAssetInUse indica si entrar al estado implica marcar el bien EN_USO.
func PutsAssetInUse(target string) bool {
	return target == entity.MovementStatusApproved || target == entity.MovementStatusInProcess
}

// ReleasesAsset indica si entrar al estado implica devolver el bien a DISPONIBLE.
func ReleasesAsset(target string) bool {
	switch target {
	case entity.MovementStatusCompleted, entity.MovementStatusRejected, entity.MovementStatusCancelled:
		return true
	}
	return false
}
