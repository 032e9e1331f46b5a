package dto

import (
	"time"

	"github.com/alcaldia-digital/patrimonio-api/internal/domain/entity"
	"github.com/alcaldia-digital/patrimonio-api/internal/domain/movement"
)

// CreateMovementRequest cuerpo de creación de un movimiento.
// El número de movimiento NO se acepta: lo asigna el servidor.
type CreateMovementRequest struct {
	MovementType    string `json:"movementType"`
	MovementSubtype string `json:"movementSubtype"`
	AssetID         string `json:"assetId"`

	OriginResponsibleID      string `json:"originResponsibleId"`
	DestinationResponsibleID string `json:"destinationResponsibleId"`
	OriginAreaID             string `json:"originAreaId"`
	DestinationAreaID        string `json:"destinationAreaId"`
	OriginLocationID         string `json:"originLocationId"`
	DestinationLocationID    string `json:"destinationLocationId"`

	Reason            string `json:"reason"`
	Observations      string `json:"observations"`
	SpecialConditions string `json:"specialConditions"`

	SupportingDocumentNumber string                    `json:"supportingDocumentNumber"`
	SupportingDocumentType   string                    `json:"supportingDocumentType"`
	AttachedDocuments        []entity.AttachedDocument `json:"attachedDocuments"`

	RequiresApproval bool `json:"requiresApproval"`
}

// UpdateMovementRequest cuerpo de edición. Número y estado son inmutables por
// esta vía; el estado cambia solo con los endpoints de transición.
type UpdateMovementRequest struct {
	MovementSubtype string `json:"movementSubtype"`

	OriginResponsibleID      string `json:"originResponsibleId"`
	DestinationResponsibleID string `json:"destinationResponsibleId"`
	OriginAreaID             string `json:"originAreaId"`
	DestinationAreaID        string `json:"destinationAreaId"`
	OriginLocationID         string `json:"originLocationId"`
	DestinationLocationID    string `json:"destinationLocationId"`

	Reason            string `json:"reason"`
	Observations      string `json:"observations"`
	SpecialConditions string `json:"specialConditions"`

	SupportingDocumentNumber string                    `json:"supportingDocumentNumber"`
	SupportingDocumentType   string                    `json:"supportingDocumentType"`
	AttachedDocuments        []entity.AttachedDocument `json:"attachedDocuments"`
}

// RejectMovementRequest cuerpo del rechazo (motivo opcional).
type RejectMovementRequest struct {
	Reason string `json:"reason"`
}

// CancelMovementRequest cuerpo de la cancelación (motivo opcional).
type CancelMovementRequest struct {
	Reason string `json:"reason"`
}

// MovementResponse representación de salida de un movimiento.
type MovementResponse struct {
	ID              string `json:"id"`
	MovementNumber  string `json:"movementNumber"`
	MovementType    string `json:"movementType"`
	MovementSubtype string `json:"movementSubtype,omitempty"`
	AssetID         string `json:"assetId"`

	OriginResponsibleID      string `json:"originResponsibleId,omitempty"`
	DestinationResponsibleID string `json:"destinationResponsibleId,omitempty"`
	OriginAreaID             string `json:"originAreaId,omitempty"`
	DestinationAreaID        string `json:"destinationAreaId,omitempty"`
	OriginLocationID         string `json:"originLocationId,omitempty"`
	DestinationLocationID    string `json:"destinationLocationId,omitempty"`

	Reason            string `json:"reason"`
	Observations      string `json:"observations,omitempty"`
	SpecialConditions string `json:"specialConditions,omitempty"`

	SupportingDocumentNumber string                    `json:"supportingDocumentNumber,omitempty"`
	SupportingDocumentType   string                    `json:"supportingDocumentType,omitempty"`
	AttachedDocuments        []entity.AttachedDocument `json:"attachedDocuments"`

	MovementStatus   string   `json:"movementStatus"`
	AvailableActions []string `json:"availableActions"`
	RequiresApproval bool     `json:"requiresApproval"`
	RequestingUser   string   `json:"requestingUser,omitempty"`
	ExecutingUser    string   `json:"executingUser,omitempty"`
	ApprovedBy       string   `json:"approvedBy,omitempty"`

	RequestDate   *time.Time `json:"requestDate,omitempty"`
	ApprovalDate  *time.Time `json:"approvalDate,omitempty"`
	ExecutionDate *time.Time `json:"executionDate,omitempty"`
	ReceptionDate *time.Time `json:"receptionDate,omitempty"`

	Active    bool       `json:"active"`
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
	DeletedBy string     `json:"deletedBy,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// ToMovementResponse mapea la entidad a la representación de salida,
// decodificando los adjuntos y derivando las acciones disponibles.
func ToMovementResponse(m *entity.AssetMovement) *MovementResponse {
	if m == nil {
		return nil
	}
	docs, err := entity.DecodeAttachments(m.AttachedDocuments)
	if err != nil {
		docs = []entity.AttachedDocument{}
	}
	return &MovementResponse{
		ID:              m.ID,
		MovementNumber:  m.MovementNumber,
		MovementType:    m.MovementType,
		MovementSubtype: m.MovementSubtype,
		AssetID:         m.AssetID,

		OriginResponsibleID:      m.OriginResponsibleID,
		DestinationResponsibleID: m.DestinationResponsibleID,
		OriginAreaID:             m.OriginAreaID,
		DestinationAreaID:        m.DestinationAreaID,
		OriginLocationID:         m.OriginLocationID,
		DestinationLocationID:    m.DestinationLocationID,

		Reason:            m.Reason,
		Observations:      m.Observations,
		SpecialConditions: m.SpecialConditions,

		SupportingDocumentNumber: m.SupportingDocumentNumber,
		SupportingDocumentType:   m.SupportingDocumentType,
		AttachedDocuments:        docs,

		MovementStatus:   m.MovementStatus,
		AvailableActions: movement.AvailableActions(m.MovementStatus),
		RequiresApproval: m.RequiresApproval,
		RequestingUser:   m.RequestingUser,
		ExecutingUser:    m.ExecutingUser,
		ApprovedBy:       m.ApprovedBy,

		RequestDate:   m.RequestDate,
		ApprovalDate:  m.ApprovalDate,
		ExecutionDate: m.ExecutionDate,
		ReceptionDate: m.ReceptionDate,

		Active:    m.Active,
		DeletedAt: m.DeletedAt,
		DeletedBy: m.DeletedBy,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// TimelineEntryResponse periodo de custodia para la línea de tiempo.
type TimelineEntryResponse struct {
	MovementID     string     `json:"movementId"`
	MovementNumber string     `json:"movementNumber"`
	MovementType   string     `json:"movementType"`
	MovementStatus string     `json:"movementStatus"`
	AreaID         string     `json:"areaId,omitempty"`
	LocationID     string     `json:"locationId,omitempty"`
	ResponsibleID  string     `json:"responsibleId,omitempty"`
	StartDate      *time.Time `json:"startDate"`
	EndDate        *time.Time `json:"endDate"`
	Duration       string     `json:"duration"`
	TotalDays      int        `json:"totalDays"`
	Current        bool       `json:"current"`
}
