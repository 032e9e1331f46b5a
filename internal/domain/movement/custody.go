package movement

import (
	"sort"
	"time"

	"github.com/alcaldia-digital/patrimonio-api/internal/domain/entity"
)

// Origin es la custodia inferida para prellenar el origen de un movimiento nuevo.
// FirstAssignment=true significa que el bien no tiene historia utilizable y los
// campos de origen quedan legítimamente vacíos.
type Origin struct {
	AreaID          string `json:"originAreaId"`
	LocationID      string `json:"originLocationId"`
	ResponsibleID   string `json:"originResponsibleId"`
	FirstAssignment bool   `json:"firstAssignment"`
}

// InferOrigin deriva la última custodia conocida de un bien a partir de su
// historial de movimientos, sin requerir un campo de "ubicación actual" vivo.
//
//  1. Sin movimientos: primera asignación.
//  2. Movimientos COMPLETED ordenados por (receptionDate ?? executionDate ??
//     requestDate) desc: el destino del más reciente pasa a ser el origen.
//  3. Si no hay completados, movimientos no CANCELLED/REJECTED con algún campo
//     de destino, ordenados por (requestDate ?? executionDate ?? receptionDate)
//     desc: se usa el destino del más reciente.
//  4. Nada de lo anterior: primera asignación.
//
// Derivación de solo lectura; no persiste nada. Nótese que este algoritmo y el
// de la línea de tiempo son independientes y pueden discrepar sobre cuál
// movimiento es el "vigente" en casos límite.
func InferOrigin(movements []*entity.AssetMovement) Origin {
	if len(movements) == 0 {
		return Origin{FirstAssignment: true}
	}

	var completed []*entity.AssetMovement
	for _, m := range movements {
		if m.MovementStatus == entity.MovementStatusCompleted {
			completed = append(completed, m)
		}
	}
	if len(completed) > 0 {
		sortByDateDesc(completed, completedSortDate)
		return originFromDestination(completed[0])
	}

	var valid []*entity.AssetMovement
	for _, m := range movements {
		if m.MovementStatus == entity.MovementStatusCancelled || m.MovementStatus == entity.MovementStatusRejected {
			continue
		}
		if m.HasDestination() {
			valid = append(valid, m)
		}
	}
	if len(valid) > 0 {
		sortByDateDesc(valid, pendingSortDate)
		return originFromDestination(valid[0])
	}

	return Origin{FirstAssignment: true}
}

func originFromDestination(m *entity.AssetMovement) Origin {
	return Origin{
		AreaID:        m.DestinationAreaID,
		LocationID:    m.DestinationLocationID,
		ResponsibleID: m.DestinationResponsibleID,
	}
}

// completedSortDate: receptionDate ?? executionDate ?? requestDate.
func completedSortDate(m *entity.AssetMovement) time.Time {
	return firstNonNil(m.ReceptionDate, m.ExecutionDate, m.RequestDate)
}

// pendingSortDate: requestDate ?? executionDate ?? receptionDate.
func pendingSortDate(m *entity.AssetMovement) time.Time {
	return firstNonNil(m.RequestDate, m.ExecutionDate, m.ReceptionDate)
}

func firstNonNil(dates ...*time.Time) time.Time {
	for _, d := range dates {
		if d != nil {
			return *d
		}
	}
	return time.Time{}
}

func sortByDateDesc(ms []*entity.AssetMovement, key func(*entity.AssetMovement) time.Time) {
	sort.SliceStable(ms, func(i, j int) bool {
		return key(ms[i]).After(key(ms[j]))
	})
}
