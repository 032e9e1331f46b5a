// Package pdf implementa la generación del acta de movimiento patrimonial:
// el soporte documental imprimible que firman el responsable saliente y el
// entrante cuando un bien cambia de custodia.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + N° Movimiento + Fecha de solicitud        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  BIEN: Código + Nombre                                      │
//	│  ORIGEN / DESTINO: responsables, áreas, ubicaciones         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DETALLE: Motivo / Observaciones / Condiciones especiales   │
//	│  DOCUMENTO SOPORTE + fechas del workflow                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FIRMAS: Entrega / Recibe / Aprueba                         │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appmovement "github.com/alcaldia-digital/patrimonio-api/internal/application/movement"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoActaGenerator implementa movement.ActaGenerator usando Maroto v2.
type MarotoActaGenerator struct{}

// NewMarotoActaGenerator construye el generador.
func NewMarotoActaGenerator() *MarotoActaGenerator { return &MarotoActaGenerator{} }

var _ appmovement.ActaGenerator = (*MarotoActaGenerator)(nil)

// GenerateActaPDF genera el acta y devuelve sus bytes.
func (g *MarotoActaGenerator) GenerateActaPDF(_ context.Context, data appmovement.ActaData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Acta de Movimiento Patrimonial", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(assetRow(data))
	m.AddRows(custodyRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	for _, r := range detailRows(data) {
		m.AddRows(r)
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(datesRow(data))
	m.AddRows(line.NewRow(6))
	m.AddRows(signaturesRow(data))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar acta: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título del acta (izq) y número + fecha de solicitud (der).
func headerRow(data appmovement.ActaData) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New("ACTA DE MOVIMIENTO PATRIMONIAL", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(appmovement.MovementTypeLabel(data.MovementType), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(data.MovementNumber, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 3,
			}),
			text.New("Solicitado: "+formatDate(data.RequestDate), props.Text{
				Size: 8, Align: align.Right, Top: 10, Color: colorGray,
			}),
			text.New("Estado: "+data.MovementStatus, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// assetRow: identificación del bien.
func assetRow(data appmovement.ActaData) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("BIEN PATRIMONIAL", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Código: %s   |   %s",
				nonEmpty(data.AssetCode, "—"),
				nonEmpty(data.AssetName, "—"),
			), props.Text{Size: 9, Top: 7}),
		),
	)
}

// custodyRow: origen y destino lado a lado.
func custodyRow(data appmovement.ActaData) core.Row {
	side := func(title, responsible, areaID, locationID string) core.Col {
		return col.New(6).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New("Responsable: "+nonEmpty(responsible, "—"), props.Text{Size: 8, Top: 6}),
			text.New("Área: "+nonEmpty(areaID, "—"), props.Text{Size: 8, Top: 11, Color: colorGray}),
			text.New("Ubicación: "+nonEmpty(locationID, "—"), props.Text{Size: 8, Top: 16, Color: colorGray}),
		)
	}
	return row.New(22).Add(
		side("ORIGEN", data.OriginResponsible, data.OriginAreaID, data.OriginLocationID),
		side("DESTINO", data.DestinationResponsible, data.DestinationAreaID, data.DestinationLocationID),
	)
}

// detailRows: motivo, observaciones, condiciones y documento soporte.
func detailRows(data appmovement.ActaData) []core.Row {
	block := func(title, body string) core.Row {
		return row.New(13).Add(col.New(12).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(body, "—"), props.Text{Size: 8, Top: 6}),
		))
	}

	rows := []core.Row{block("MOTIVO", data.Reason)}
	if data.Observations != "" {
		rows = append(rows, block("OBSERVACIONES", data.Observations))
	}
	if data.SpecialConditions != "" {
		rows = append(rows, block("CONDICIONES ESPECIALES", data.SpecialConditions))
	}
	if data.SupportingDocumentNumber != "" {
		rows = append(rows, block("DOCUMENTO SOPORTE", fmt.Sprintf("%s %s",
			nonEmpty(data.SupportingDocumentType, "Documento"),
			data.SupportingDocumentNumber,
		)))
	}
	return rows
}

// datesRow: fechas del workflow en una sola línea.
func datesRow(data appmovement.ActaData) core.Row {
	return row.New(10).Add(col.New(12).Add(
		text.New(fmt.Sprintf(
			"Solicitud: %s   |   Aprobación: %s   |   Ejecución: %s   |   Recepción: %s",
			formatDate(data.RequestDate),
			formatDate(data.ApprovalDate),
			formatDate(data.ExecutionDate),
			formatDate(data.ReceptionDate),
		), props.Text{Size: 8, Top: 2, Color: colorGray}),
	))
}

// signaturesRow: líneas de firma de quien entrega, quien recibe y quien aprueba.
func signaturesRow(data appmovement.ActaData) core.Row {
	signature := func(role, name string) core.Col {
		return col.New(4).Add(
			text.New("______________________", props.Text{
				Size: 9, Align: align.Center, Top: 6,
			}),
			text.New(nonEmpty(name, "—"), props.Text{
				Size: 8, Align: align.Center, Top: 12,
			}),
			text.New(role, props.Text{
				Size: 7, Align: align.Center, Top: 17, Color: colorGray,
			}),
		)
	}
	return row.New(24).Add(
		signature("ENTREGA", data.OriginResponsible),
		signature("RECIBE", data.DestinationResponsible),
		signature("APRUEBA", data.ApprovedBy),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func formatDate(t *time.Time) string {
	if t == nil {
		return "—"
	}
	return t.Format("02/01/2006")
}
