package movement

import (
	"context"
	"fmt"
	"time"

	"github.com/alcaldia-digital/patrimonio-api/internal/domain"
	"github.com/alcaldia-digital/patrimonio-api/internal/domain/entity"
	"github.com/alcaldia-digital/patrimonio-api/internal/domain/repository"
)

// ActaData datos listos para render del acta de movimiento: IDs ya resueltos
// a nombres y fechas como están en el registro.
type ActaData struct {
	MovementNumber string
	MovementType   string
	MovementStatus string

	AssetCode string
	AssetName string

	OriginResponsible      string
	DestinationResponsible string
	OriginAreaID           string
	DestinationAreaID      string
	OriginLocationID       string
	DestinationLocationID  string

	Reason            string
	Observations      string
	SpecialConditions string

	SupportingDocumentNumber string
	SupportingDocumentType   string

	RequestingUser string
	ApprovedBy     string
	ExecutingUser  string

	RequestDate   *time.Time
	ApprovalDate  *time.Time
	ExecutionDate *time.Time
	ReceptionDate *time.Time
}

// ActaGenerator puerto de render del acta en PDF.
type ActaGenerator interface {
	GenerateActaPDF(ctx context.Context, data ActaData) ([]byte, error)
}

// NameResolver resuelve el nombre a mostrar de una persona. Implementaciones
// degradadas devuelven el ID crudo en vez de fallar.
type NameResolver interface {
	GetPersonName(ctx context.Context, id string) string
}

// ActaUseCase genera el acta de movimiento: el soporte documental imprimible
// de un traslado, préstamo o devolución.
type ActaUseCase struct {
	repo   repository.MovementRepository
	assets AssetService
	names  NameResolver
	pdf    ActaGenerator
}

// NewActaUseCase construye el caso de uso del acta.
func NewActaUseCase(repo repository.MovementRepository, assets AssetService, names NameResolver, pdf ActaGenerator) *ActaUseCase {
	return &ActaUseCase{repo: repo, assets: assets, names: names, pdf: pdf}
}

// GeneratePDF arma el acta de un movimiento y devuelve los bytes del PDF junto
// con el nombre de archivo sugerido. El movimiento debe existir y estar activo.
func (uc *ActaUseCase) GeneratePDF(ctx context.Context, municipalityID, id string) ([]byte, string, error) {
	m, err := uc.repo.GetByID(municipalityID, id)
	if err != nil {
		return nil, "", err
	}
	if m == nil || !m.Active {
		return nil, "", domain.ErrNotFound
	}

	data := ActaData{
		MovementNumber: m.MovementNumber,
		MovementType:   m.MovementType,
		MovementStatus: m.MovementStatus,

		OriginResponsible:      uc.names.GetPersonName(ctx, m.OriginResponsibleID),
		DestinationResponsible: uc.names.GetPersonName(ctx, m.DestinationResponsibleID),
		OriginAreaID:           m.OriginAreaID,
		DestinationAreaID:      m.DestinationAreaID,
		OriginLocationID:       m.OriginLocationID,
		DestinationLocationID:  m.DestinationLocationID,

		Reason:            m.Reason,
		Observations:      m.Observations,
		SpecialConditions: m.SpecialConditions,

		SupportingDocumentNumber: m.SupportingDocumentNumber,
		SupportingDocumentType:   m.SupportingDocumentType,

		RequestingUser: uc.names.GetPersonName(ctx, m.RequestingUser),
		ApprovedBy:     uc.names.GetPersonName(ctx, m.ApprovedBy),
		ExecutingUser:  uc.names.GetPersonName(ctx, m.ExecutingUser),

		RequestDate:   m.RequestDate,
		ApprovalDate:  m.ApprovalDate,
		ExecutionDate: m.ExecutionDate,
		ReceptionDate: m.ReceptionDate,
	}

	// El bien puede no resolverse si el servicio de patrimonio está caído;
	// el acta sale con el ID crudo en ese caso.
	if asset, err := uc.assets.GetAsset(ctx, m.AssetID); err == nil && asset != nil {
		data.AssetCode = asset.Code
		data.AssetName = asset.Name
	} else {
		data.AssetCode = m.AssetID
	}

	raw, err := uc.pdf.GenerateActaPDF(ctx, data)
	if err != nil {
		return nil, "", err
	}
	return raw, fmt.Sprintf("acta-%s.pdf", m.MovementNumber), nil
}

// labels en español para el encabezado del acta.
var movementTypeLabels = map[string]string{
	entity.MovementTypeInitialAssignment: "Asignación inicial",
	entity.MovementTypeReassignment:      "Reasignación",
	entity.MovementTypeAreaTransfer:      "Traslado entre áreas",
	entity.MovementTypeExternalTransfer:  "Traslado externo",
	entity.MovementTypeReturn:            "Devolución",
	entity.MovementTypeLoan:              "Préstamo",
	entity.MovementTypeMaintenance:       "Mantenimiento",
	entity.MovementTypeRepair:            "Reparación",
	entity.MovementTypeTemporaryDisposal: "Baja temporal",
}

// MovementTypeLabel devuelve la etiqueta en español del tipo, o el código crudo.
func MovementTypeLabel(t string) string {
	if label, ok := movementTypeLabels[t]; ok {
		return label
	}
	return t
}
