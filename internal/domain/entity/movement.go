package entity

import (
	"encoding/json"
	"time"
)

// Tipos de movimiento patrimonial.
const (
	MovementTypeInitialAssignment = "INITIAL_ASSIGNMENT" // asignación inicial
	MovementTypeReassignment      = "REASSIGNMENT"       // reasignación de responsable
	MovementTypeAreaTransfer      = "AREA_TRANSFER"      // traslado entre áreas
	MovementTypeExternalTransfer  = "EXTERNAL_TRANSFER"  // traslado externo
	MovementTypeReturn            = "RETURN"             // devolución
	MovementTypeLoan              = "LOAN"               // préstamo
	MovementTypeMaintenance       = "MAINTENANCE"        // mantenimiento
	MovementTypeRepair            = "REPAIR"             // reparación
	MovementTypeTemporaryDisposal = "TEMPORARY_DISPOSAL" // baja temporal
)

// Estados del ciclo de vida de un movimiento.
const (
	MovementStatusRequested = "REQUESTED"
	MovementStatusApproved  = "APPROVED"
	MovementStatusRejected  = "REJECTED"
	MovementStatusInProcess = "IN_PROCESS"
	MovementStatusCompleted = "COMPLETED"
	MovementStatusCancelled = "CANCELLED"
	MovementStatusPartial   = "PARTIAL"
)

// MovementTypes lista los tipos válidos para validación de entrada.
var MovementTypes = []string{
	MovementTypeInitialAssignment,
	MovementTypeReassignment,
	MovementTypeAreaTransfer,
	MovementTypeExternalTransfer,
	MovementTypeReturn,
	MovementTypeLoan,
	MovementTypeMaintenance,
	MovementTypeRepair,
	MovementTypeTemporaryDisposal,
}

// IsValidMovementType indica si el tipo está dentro del catálogo.
func IsValidMovementType(t string) bool {
	for _, v := range MovementTypes {
		if v == t {
			return true
		}
	}
	return false
}

// AttachedDocument es un documento de soporte adjunto a un movimiento.
type AttachedDocument struct {
	FileName   string    `json:"fileName"`
	FileURL    string    `json:"fileUrl"`
	FileType   string    `json:"fileType"`
	FileSize   int64     `json:"fileSize"`
	UploadedAt time.Time `json:"uploadedAt"`
	UploadedBy string    `json:"uploadedBy"`
}

// EncodeAttachments serializa la lista como string JSON.
// El contrato de persistencia exige transmitir siempre un string JSON, nunca el arreglo crudo.
func EncodeAttachments(docs []AttachedDocument) (string, error) {
	if docs == nil {
		docs = []AttachedDocument{}
	}
	b, err := json.Marshal(docs)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// DecodeAttachments deserializa el string JSON almacenado; vacío equivale a lista vacía.
func DecodeAttachments(raw string) ([]AttachedDocument, error) {
	if raw == "" {
		return []AttachedDocument{}, nil
	}
	var docs []AttachedDocument
	if err := json.Unmarshal([]byte(raw), &docs); err != nil {
		return nil, err
	}
	if docs == nil {
		docs = []AttachedDocument{}
	}
	return docs, nil
}

// AssetMovement representa una solicitud de traslado, préstamo o cambio de
// condición de un bien patrimonial. El número de movimiento lo asigna el
// servidor al crear y no se modifica nunca después.
type AssetMovement struct {
	ID             string
	MunicipalityID string
	MovementNumber string
	MovementType   string
	MovementSubtype string

	AssetID string

	OriginResponsibleID      string
	DestinationResponsibleID string
	OriginAreaID             string
	DestinationAreaID        string
	OriginLocationID         string
	DestinationLocationID    string

	Reason            string
	Observations      string
	SpecialConditions string

	SupportingDocumentNumber string
	SupportingDocumentType   string
	AttachedDocuments        string // string JSON con []AttachedDocument

	MovementStatus   string
	RequiresApproval bool
	RequestingUser   string
	ExecutingUser    string
	ApprovedBy       string

	RequestDate   *time.Time
	ApprovalDate  *time.Time
	ExecutionDate *time.Time
	ReceptionDate *time.Time

	Active    bool
	DeletedAt *time.Time
	DeletedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasDestination indica si el movimiento define al menos un campo de destino.
func (m *AssetMovement) HasDestination() bool {
	return m.DestinationAreaID != "" || m.DestinationLocationID != "" || m.DestinationResponsibleID != ""
}
