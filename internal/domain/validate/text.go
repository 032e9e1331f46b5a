// Package validate implementa las reglas de validación de campos de texto
// compartidas por los formularios de movimientos e inventario.
package validate

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Límites de longitud por campo (sobre el valor recortado).
const (
	ReasonMinLen            = 10
	ReasonMaxLen            = 500
	ObservationsMaxLen      = 1000
	SpecialConditionsMaxLen = 500
	SubtypeMaxLen           = 100
	DocumentTypeMaxLen      = 50
	DocumentNumberMinLen    = 3
	DocumentNumberMaxLen    = 50
)

// FieldError es un error de validación atado a un campo concreto.
// Nunca se envía al backend de datos: bloquea la operación en el borde.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func fieldErr(field, msg string) *FieldError {
	return &FieldError{Field: field, Message: msg}
}

// NarrativeField aplica la regla común de campos narrativos libres:
// recorta para medir longitud, exige mínimo/máximo y rechaza contenido sin
// ninguna letra con un mensaje específico según su composición.
func NarrativeField(field, value string, minLen, maxLen int, required bool) error {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		if required {
			return fieldErr(field, "es obligatorio")
		}
		return nil
	}
	runes := []rune(trimmed)
	if len(runes) < minLen {
		return fieldErr(field, fmt.Sprintf("debe tener al menos %d caracteres", minLen))
	}
	if maxLen > 0 && len(runes) > maxLen {
		return fieldErr(field, fmt.Sprintf("no puede superar %d caracteres", maxLen))
	}
	if hasLetter(trimmed) {
		return nil
	}
	// Sin letras: distinguir solo-números de solo-símbolos para el mensaje.
	if isOnlyDigitsAndSpace(trimmed) {
		return fieldErr(field, "no puede contener solo números")
	}
	if isOnlySymbols(trimmed) {
		return fieldErr(field, "no puede contener solo caracteres especiales")
	}
	return fieldErr(field, "debe contener al menos una letra")
}

// Reason valida el motivo del movimiento (obligatorio, 10–500 caracteres).
func Reason(value string) error {
	return NarrativeField("reason", value, ReasonMinLen, ReasonMaxLen, true)
}

// Observations valida observaciones opcionales (hasta 1000 caracteres).
func Observations(field, value string) error {
	return NarrativeField(field, value, 1, ObservationsMaxLen, false)
}

// SpecialConditions valida condiciones especiales opcionales (hasta 500 caracteres).
func SpecialConditions(value string) error {
	return NarrativeField("specialConditions", value, 1, SpecialConditionsMaxLen, false)
}

// RequiredAction valida la acción correctiva cuando requiresAction es true.
func RequiredAction(value string) error {
	return NarrativeField("requiredAction", value, 1, SpecialConditionsMaxLen, true)
}

// NotBlank rechaza valores presentes pero compuestos solo de espacios.
func NotBlank(field, value string) error {
	if value != "" && strings.TrimSpace(value) == "" {
		return fieldErr(field, "no puede estar en blanco")
	}
	return nil
}

// documentNumberRe: letras (incluye acentuadas del español), dígitos, espacio,
// guion, punto y slash.
var documentNumberRe = regexp.MustCompile(`^[A-Za-z0-9 áéíóúñÁÉÍÓÚÑ\-./]+$`)

// DocumentNumber valida el número de documento de soporte contra el valor
// crudo (sin recortar): longitud 3–50, charset restringido y sin dos o más
// espacios consecutivos. El valor se normaliza a NFC antes de evaluar el
// charset para que las vocales acentuadas compuestas no fallen la regla.
func DocumentNumber(value string) error {
	const field = "supportingDocumentNumber"
	if value == "" {
		return nil
	}
	normalized := norm.NFC.String(value)
	runes := []rune(normalized)
	if len(runes) < DocumentNumberMinLen {
		return fieldErr(field, fmt.Sprintf("debe tener al menos %d caracteres", DocumentNumberMinLen))
	}
	if len(runes) > DocumentNumberMaxLen {
		return fieldErr(field, fmt.Sprintf("no puede superar %d caracteres", DocumentNumberMaxLen))
	}
	if !documentNumberRe.MatchString(normalized) {
		return fieldErr(field, "solo se permiten letras, números, espacios, guiones, puntos y diagonales")
	}
	if strings.Contains(normalized, "  ") {
		return fieldErr(field, "no puede contener espacios consecutivos")
	}
	return nil
}

// DocumentType valida el tipo de documento de soporte (opcional, hasta 50 caracteres).
func DocumentType(value string) error {
	return NarrativeField("supportingDocumentType", value, 1, DocumentTypeMaxLen, false)
}

func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

func isOnlyDigitsAndSpace(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) && !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

func isOnlySymbols(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
