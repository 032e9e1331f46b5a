package movement

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/alcaldia-digital/patrimonio-api/internal/domain/entity"
)

// Duration descompone un lapso en años/meses/días calendario aproximados
// (años de 365 días, meses de 30) para presentación.
type Duration struct {
	Years     int `json:"years"`
	Months    int `json:"months"`
	Days      int `json:"days"`
	TotalDays int `json:"totalDays"`
}

// Describe produce la descripción en español uniendo los componentes no nulos:
// "1 año, 5 meses, 12 días". Un lapso de cero días produce "0 días".
func (d Duration) Describe() string {
	var parts []string
	if d.Years > 0 {
		parts = append(parts, plural(d.Years, "año", "años"))
	}
	if d.Months > 0 {
		parts = append(parts, plural(d.Months, "mes", "meses"))
	}
	if d.Days > 0 {
		parts = append(parts, plural(d.Days, "día", "días"))
	}
	if len(parts) == 0 {
		return "0 días"
	}
	return strings.Join(parts, ", ")
}

func plural(n int, singular, pluralForm string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", singular)
	}
	return fmt.Sprintf("%d %s", n, pluralForm)
}

// CalculateDuration calcula los días completos entre dos instantes y los
// descompone en años/meses/días. Un end anterior a start cuenta como cero.
func CalculateDuration(start, end time.Time) Duration {
	days := int(end.Sub(start).Hours() / 24)
	if days < 0 {
		days = 0
	}
	d := Duration{TotalDays: days}
	d.Years = days / 365
	rem := days % 365
	d.Months = rem / 30
	d.Days = rem % 30
	return d
}

// TimelineEntry es un periodo de custodia dentro de la cadena cronológica de un bien.
type TimelineEntry struct {
	Movement  *entity.AssetMovement `json:"movement"`
	StartDate *time.Time            `json:"startDate"`
	EndDate   *time.Time            `json:"endDate"` // nil = periodo abierto
	Duration  Duration              `json:"duration"`
	Current   bool                  `json:"current"`
}

// StartDate devuelve la fecha de inicio del periodo: primera no nula entre
// recepción, ejecución, aprobación y solicitud.
func StartDate(m *entity.AssetMovement) *time.Time {
	for _, d := range []*time.Time{m.ReceptionDate, m.ExecutionDate, m.ApprovalDate, m.RequestDate} {
		if d != nil {
			return d
		}
	}
	return nil
}

// EndDate devuelve la fecha de cierre del periodo: la solicitud (o ejecución)
// del movimiento cronológicamente siguiente. Si no hay siguiente, el periodo
// sigue abierto y devuelve nil, sin importar el estado propio del movimiento.
func EndDate(m *entity.AssetMovement, next *entity.AssetMovement) *time.Time {
	if next == nil {
		return nil
	}
	if next.RequestDate != nil {
		return next.RequestDate
	}
	return next.ExecutionDate
}

// BuildTimeline reconstruye la cadena de custodia: ordena ascendente por fecha
// de inicio para calcular el cierre de cada periodo desde su sucesor, y
// devuelve el resultado invertido (más reciente primero) para presentación.
// Solo un movimiento COMPLETED se marca como periodo vigente.
func BuildTimeline(movements []*entity.AssetMovement, now time.Time) []TimelineEntry {
	ordered := make([]*entity.AssetMovement, 0, len(movements))
	ordered = append(ordered, movements...)
	sort.SliceStable(ordered, func(i, j int) bool {
		si, sj := StartDate(ordered[i]), StartDate(ordered[j])
		if si == nil {
			return sj != nil
		}
		if sj == nil {
			return false
		}
		return si.Before(*sj)
	})

	entries := make([]TimelineEntry, 0, len(ordered))
	for i, m := range ordered {
		var next *entity.AssetMovement
		if i+1 < len(ordered) {
			next = ordered[i+1]
		}
		start := StartDate(m)
		end := EndDate(m, next)

		var dur Duration
		if start != nil {
			effEnd := now
			if end != nil {
				effEnd = *end
			}
			dur = CalculateDuration(*start, effEnd)
		}

		entries = append(entries, TimelineEntry{
			Movement:  m,
			StartDate: start,
			EndDate:   end,
			Duration:  dur,
			Current:   next == nil && m.MovementStatus == entity.MovementStatusCompleted,
		})
	}

	// Orden de presentación: más reciente primero.
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return entries
}
