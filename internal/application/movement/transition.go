package movement

import (
	"context"
	"strings"
	"time"

	"github.com/alcaldia-digital/patrimonio-api/internal/application/dto"
	"github.com/alcaldia-digital/patrimonio-api/internal/domain"
	"github.com/alcaldia-digital/patrimonio-api/internal/domain/entity"
	dommovement "github.com/alcaldia-digital/patrimonio-api/internal/domain/movement"
)

// Approve transiciona REQUESTED -> APPROVED y registra quién aprobó.
func (uc *MovementUseCase) Approve(ctx context.Context, municipalityID, id, approvedBy string) (*dto.MovementResponse, error) {
	return uc.transition(ctx, municipalityID, id, entity.MovementStatusApproved, approvedBy, func(m *entity.AssetMovement, now time.Time) {
		m.ApprovedBy = approvedBy
		m.ApprovalDate = &now
	})
}

// Reject transiciona REQUESTED -> REJECTED. El motivo, si llega, se anexa a
// las observaciones del movimiento.
func (uc *MovementUseCase) Reject(ctx context.Context, municipalityID, id, approvedBy, reason string) (*dto.MovementResponse, error) {
	return uc.transition(ctx, municipalityID, id, entity.MovementStatusRejected, approvedBy, func(m *entity.AssetMovement, now time.Time) {
		m.ApprovedBy = approvedBy
		m.ApprovalDate = &now
		if strings.TrimSpace(reason) != "" {
			m.Observations = appendNote(m.Observations, "Rechazado: "+reason)
		}
	})
}

// MarkInProcess transiciona APPROVED -> IN_PROCESS y registra el ejecutor.
func (uc *MovementUseCase) MarkInProcess(ctx context.Context, municipalityID, id, executingUser string) (*dto.MovementResponse, error) {
	return uc.transition(ctx, municipalityID, id, entity.MovementStatusInProcess, executingUser, func(m *entity.AssetMovement, now time.Time) {
		m.ExecutingUser = executingUser
		m.ExecutionDate = &now
	})
}

// Complete cierra el movimiento registrando la fecha de recepción.
func (uc *MovementUseCase) Complete(ctx context.Context, municipalityID, id, userID string) (*dto.MovementResponse, error) {
	return uc.transition(ctx, municipalityID, id, entity.MovementStatusCompleted, userID, func(m *entity.AssetMovement, now time.Time) {
		m.ReceptionDate = &now
		if m.ExecutingUser == "" {
			m.ExecutingUser = userID
		}
	})
}

// Cancel transiciona a CANCELLED desde cualquier estado que lo permita.
func (uc *MovementUseCase) Cancel(ctx context.Context, municipalityID, id, userID, reason string) (*dto.MovementResponse, error) {
	return uc.transition(ctx, municipalityID, id, entity.MovementStatusCancelled, userID, func(m *entity.AssetMovement, now time.Time) {
		if strings.TrimSpace(reason) != "" {
			m.Observations = appendNote(m.Observations, "Cancelado: "+reason)
		}
	})
}

// transition valida la legalidad del cambio de estado contra la máquina de
// estados, aplica la mutación, persiste y publica el evento. Los listeners
// corren después del commit: sus fallos no revierten la transición.
func (uc *MovementUseCase) transition(
	ctx context.Context,
	municipalityID, id, target, actor string,
	apply func(m *entity.AssetMovement, now time.Time),
) (*dto.MovementResponse, error) {
	m, err := uc.repo.GetByID(municipalityID, id)
	if err != nil {
		return nil, err
	}
	if m == nil || !m.Active {
		return nil, domain.ErrNotFound
	}
	if !dommovement.CanTransitionTo(m.MovementStatus, target) {
		return nil, domain.ErrInvalidTransition
	}

	previous := m.MovementStatus
	now := time.Now()
	m.MovementStatus = target
	m.UpdatedAt = now
	apply(m, now)

	if err := uc.repo.UpdateStatus(m); err != nil {
		return nil, err
	}

	uc.publish(ctx, m, previous, actor)
	return dto.ToMovementResponse(m), nil
}

func appendNote(observations, note string) string {
	if strings.TrimSpace(observations) == "" {
		return note
	}
	return observations + " | " + note
}
