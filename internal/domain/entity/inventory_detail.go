package entity

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Resultado de verificación física de un bien.
const (
	FoundStatusFound   = "FOUND"
	FoundStatusMissing = "MISSING"
	FoundStatusSurplus = "SURPLUS"
	FoundStatusDamaged = "DAMAGED"
)

// Estado de conservación constatado al verificar.
const (
	ConservationExcellent = "EXCELLENT"
	ConservationGood      = "GOOD"
	ConservationRegular   = "REGULAR"
	ConservationBad       = "BAD"
	ConservationUnusable  = "UNUSABLE"
)

// IsValidFoundStatus indica si el resultado está dentro del catálogo.
func IsValidFoundStatus(s string) bool {
	switch s {
	case FoundStatusFound, FoundStatusMissing, FoundStatusSurplus, FoundStatusDamaged:
		return true
	}
	return false
}

// IsValidConservationStatus indica si el estado de conservación está dentro del catálogo.
func IsValidConservationStatus(s string) bool {
	switch s {
	case ConservationExcellent, ConservationGood, ConservationRegular, ConservationBad, ConservationUnusable:
		return true
	}
	return false
}

// Photograph es la evidencia fotográfica capturada durante la verificación.
type Photograph struct {
	Name       string    `json:"name"`
	Data       string    `json:"data"` // data-URI
	Type       string    `json:"type"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// EncodePhotographs serializa la lista como string JSON (mismo contrato que los adjuntos de movimiento).
func EncodePhotographs(photos []Photograph) (string, error) {
	if photos == nil {
		photos = []Photograph{}
	}
	b, err := json.Marshal(photos)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// DecodePhotographs deserializa el string JSON almacenado.
func DecodePhotographs(raw string) ([]Photograph, error) {
	if raw == "" {
		return []Photograph{}, nil
	}
	var photos []Photograph
	if err := json.Unmarshal([]byte(raw), &photos); err != nil {
		return nil, err
	}
	if photos == nil {
		photos = []Photograph{}
	}
	return photos, nil
}

// InventoryDetail es el registro de verificación de un bien dentro de una
// campaña. Pertenece a exactamente una campaña y referencia exactamente un bien.
type InventoryDetail struct {
	ID          string
	InventoryID string
	AssetID     string

	FoundStatus              string
	ActualConservationStatus string

	ActualLocationID    string
	ActualResponsibleID string

	VerifiedBy       string
	VerificationDate *time.Time

	Observations        string
	PhysicalDifferences string
	DocumentDifferences string

	RequiresAction bool
	RequiredAction string

	// Costo estimado de reparación para registros DAMAGED (opcional).
	EstimatedRepairCost *decimal.Decimal

	Photographs string // string JSON con []Photograph

	CreatedAt time.Time
	UpdatedAt time.Time
}
