package movement

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/alcaldia-digital/patrimonio-api/internal/application/dto"
	"github.com/alcaldia-digital/patrimonio-api/internal/domain"
	"github.com/alcaldia-digital/patrimonio-api/internal/domain/entity"
	dommovement "github.com/alcaldia-digital/patrimonio-api/internal/domain/movement"
	"github.com/alcaldia-digital/patrimonio-api/internal/domain/repository"
	"github.com/alcaldia-digital/patrimonio-api/internal/domain/validate"
)

// MovementUseCase orquesta el ciclo de vida de movimientos patrimoniales:
// creación, edición, transiciones de estado, borrado lógico y consultas
// derivadas (origen inferido, línea de tiempo).
type MovementUseCase struct {
	repo      repository.MovementRepository
	listeners []TransitionListener
}

// NewMovementUseCase construye el caso de uso. Los listeners reciben los
// eventos de transición después del commit.
func NewMovementUseCase(repo repository.MovementRepository, listeners ...TransitionListener) *MovementUseCase {
	return &MovementUseCase{repo: repo, listeners: listeners}
}

// Create valida y persiste un movimiento nuevo en estado REQUESTED.
// El número de movimiento lo asigna el repositorio dentro de la transacción.
func (uc *MovementUseCase) Create(ctx context.Context, municipalityID, userID string, in dto.CreateMovementRequest) (*dto.MovementResponse, error) {
	if in.AssetID == "" || !entity.IsValidMovementType(in.MovementType) {
		return nil, domain.ErrInvalidInput
	}
	if err := validateNarrativeFields(in.Reason, in.Observations, in.SpecialConditions, in.MovementSubtype, in.SupportingDocumentNumber, in.SupportingDocumentType); err != nil {
		return nil, err
	}

	attachments, err := entity.EncodeAttachments(in.AttachedDocuments)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	m := &entity.AssetMovement{
		ID:              uuid.New().String(),
		MunicipalityID:  municipalityID,
		MovementType:    in.MovementType,
		MovementSubtype: in.MovementSubtype,
		AssetID:         in.AssetID,

		OriginResponsibleID:      in.OriginResponsibleID,
		DestinationResponsibleID: in.DestinationResponsibleID,
		OriginAreaID:             in.OriginAreaID,
		DestinationAreaID:        in.DestinationAreaID,
		OriginLocationID:         in.OriginLocationID,
		DestinationLocationID:    in.DestinationLocationID,

		Reason:            in.Reason,
		Observations:      in.Observations,
		SpecialConditions: in.SpecialConditions,

		SupportingDocumentNumber: in.SupportingDocumentNumber,
		SupportingDocumentType:   in.SupportingDocumentType,
		AttachedDocuments:        attachments,

		MovementStatus:   entity.MovementStatusRequested,
		RequiresApproval: in.RequiresApproval,
		RequestingUser:   userID,

		RequestDate: &now,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uc.repo.Create(m); err != nil {
		return nil, err
	}

	uc.publish(ctx, m, "", userID)
	return dto.ToMovementResponse(m), nil
}

// Update edita un movimiento existente. Solo se permite mientras el estado
// habilite la acción "edit"; número y estado nunca cambian por esta vía.
func (uc *MovementUseCase) Update(ctx context.Context, municipalityID, id, userID string, in dto.UpdateMovementRequest) (*dto.MovementResponse, error) {
	m, err := uc.repo.GetByID(municipalityID, id)
	if err != nil {
		return nil, err
	}
	if m == nil || !m.Active {
		return nil, domain.ErrNotFound
	}
	if !dommovement.HasAction(m.MovementStatus, dommovement.ActionEdit) {
		return nil, domain.ErrConflict
	}
	if err := validateNarrativeFields(in.Reason, in.Observations, in.SpecialConditions, in.MovementSubtype, in.SupportingDocumentNumber, in.SupportingDocumentType); err != nil {
		return nil, err
	}
	attachments, err := entity.EncodeAttachments(in.AttachedDocuments)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	m.MovementSubtype = in.MovementSubtype
	m.OriginResponsibleID = in.OriginResponsibleID
	m.DestinationResponsibleID = in.DestinationResponsibleID
	m.OriginAreaID = in.OriginAreaID
	m.DestinationAreaID = in.DestinationAreaID
	m.OriginLocationID = in.OriginLocationID
	m.DestinationLocationID = in.DestinationLocationID
	m.Reason = in.Reason
	m.Observations = in.Observations
	m.SpecialConditions = in.SpecialConditions
	m.SupportingDocumentNumber = in.SupportingDocumentNumber
	m.SupportingDocumentType = in.SupportingDocumentType
	m.AttachedDocuments = attachments
	m.UpdatedAt = time.Now()

	if err := uc.repo.Update(m); err != nil {
		return nil, err
	}
	return dto.ToMovementResponse(m), nil
}

// GetByID devuelve el movimiento o (nil, nil) si no existe.
func (uc *MovementUseCase) GetByID(ctx context.Context, municipalityID, id string) (*dto.MovementResponse, error) {
	m, err := uc.repo.GetByID(municipalityID, id)
	if err != nil || m == nil {
		return nil, err
	}
	return dto.ToMovementResponse(m), nil
}

// List devuelve movimientos activos filtrados por bien, tipo o estado.
func (uc *MovementUseCase) List(ctx context.Context, municipalityID string, f repository.MovementFilter, page dto.PageRequest) ([]*dto.MovementResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(municipalityID, f, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.MovementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, dto.ToMovementResponse(m))
	}
	return out, nil
}

// ListDeleted devuelve los movimientos borrados lógicamente.
func (uc *MovementUseCase) ListDeleted(ctx context.Context, municipalityID string, page dto.PageRequest) ([]*dto.MovementResponse, error) {
	return uc.List(ctx, municipalityID, repository.MovementFilter{OnlyDeleted: true}, page)
}

// Count cuenta movimientos según el filtro.
func (uc *MovementUseCase) Count(ctx context.Context, municipalityID string, f repository.MovementFilter) (int, error) {
	return uc.repo.Count(municipalityID, f)
}

// Delete marca el movimiento como inactivo (borrado lógico, reversible).
// Solo los estados que habilitan la acción "delete" lo permiten.
func (uc *MovementUseCase) Delete(ctx context.Context, municipalityID, id, deletedBy string) error {
	m, err := uc.repo.GetByID(municipalityID, id)
	if err != nil {
		return err
	}
	if m == nil || !m.Active {
		return domain.ErrNotFound
	}
	if !dommovement.HasAction(m.MovementStatus, dommovement.ActionDelete) {
		return domain.ErrConflict
	}
	now := time.Now()
	m.Active = false
	m.DeletedAt = &now
	m.DeletedBy = deletedBy
	m.UpdatedAt = now
	return uc.repo.SoftDelete(m)
}

// Restore revierte un borrado lógico.
func (uc *MovementUseCase) Restore(ctx context.Context, municipalityID, id, restoredBy string) (*dto.MovementResponse, error) {
	m, err := uc.repo.GetByID(municipalityID, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	if m.Active {
		return nil, domain.ErrConflict
	}
	m.Active = true
	m.DeletedAt = nil
	m.DeletedBy = ""
	m.UpdatedAt = time.Now()
	if err := uc.repo.Restore(m); err != nil {
		return nil, err
	}
	return dto.ToMovementResponse(m), nil
}

// InferOrigin deriva la custodia actual del bien desde su historial para
// prellenar el origen de un movimiento nuevo. Solo lectura.
func (uc *MovementUseCase) InferOrigin(ctx context.Context, municipalityID, assetID string) (dommovement.Origin, error) {
	history, err := uc.repo.ListByAsset(municipalityID, assetID)
	if err != nil {
		return dommovement.Origin{}, err
	}
	return dommovement.InferOrigin(history), nil
}

// Timeline reconstruye la cadena de custodia del bien, más reciente primero.
func (uc *MovementUseCase) Timeline(ctx context.Context, municipalityID, assetID string) ([]dto.TimelineEntryResponse, error) {
	history, err := uc.repo.ListByAsset(municipalityID, assetID)
	if err != nil {
		return nil, err
	}
	entries := dommovement.BuildTimeline(history, time.Now())
	out := make([]dto.TimelineEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.TimelineEntryResponse{
			MovementID:     e.Movement.ID,
			MovementNumber: e.Movement.MovementNumber,
			MovementType:   e.Movement.MovementType,
			MovementStatus: e.Movement.MovementStatus,
			AreaID:         e.Movement.DestinationAreaID,
			LocationID:     e.Movement.DestinationLocationID,
			ResponsibleID:  e.Movement.DestinationResponsibleID,
			StartDate:      e.StartDate,
			EndDate:        e.EndDate,
			Duration:       e.Duration.Describe(),
			TotalDays:      e.Duration.TotalDays,
			Current:        e.Current,
		})
	}
	return out, nil
}

// publish entrega el evento a los listeners. Se invoca después de persistir;
// los listeners son de mejor esfuerzo y no pueden fallar la operación.
func (uc *MovementUseCase) publish(ctx context.Context, m *entity.AssetMovement, previousStatus, actor string) {
	ev := TransitionEvent{
		MovementID:     m.ID,
		MovementNumber: m.MovementNumber,
		AssetID:        m.AssetID,
		PreviousStatus: previousStatus,
		NewStatus:      m.MovementStatus,
		Actor:          actor,
		OccurredAt:     time.Now(),
	}
	for _, l := range uc.listeners {
		l.MovementTransitioned(ctx, ev)
	}
}

// validateNarrativeFields aplica las reglas de campos narrativos a los campos
// comunes de creación y edición.
func validateNarrativeFields(reason, observations, specialConditions, subtype, docNumber, docType string) error {
	if err := validate.Reason(reason); err != nil {
		return err
	}
	if err := validate.Observations("observations", observations); err != nil {
		return err
	}
	if err := validate.SpecialConditions(specialConditions); err != nil {
		return err
	}
	if err := validate.NarrativeField("movementSubtype", subtype, 1, validate.SubtypeMaxLen, false); err != nil {
		return err
	}
	if err := validate.DocumentNumber(docNumber); err != nil {
		return err
	}
	if err := validate.DocumentType(docType); err != nil {
		return err
	}
	return nil
}
