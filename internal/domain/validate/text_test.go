package validate_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alcaldia-digital/patrimonio-api/internal/domain/validate"
)

func fieldOf(t *testing.T, err error) *validate.FieldError {
	t.Helper()
	require.Error(t, err)
	fe, ok := err.(*validate.FieldError)
	require.True(t, ok, "debe ser un *FieldError, fue %T", err)
	return fe
}

func TestReason_Valido(t *testing.T) {
	assert.NoError(t, validate.Reason("Traslado por reorganización"))
	assert.NoError(t, validate.Reason("  con espacios alrededor válidos  "))
}

func TestReason_Obligatorio(t *testing.T) {
	fe := fieldOf(t, validate.Reason("   "))
	assert.Equal(t, "reason", fe.Field)
	assert.Equal(t, "es obligatorio", fe.Message)
}

func TestReason_MuyCorto(t *testing.T) {
	fe := fieldOf(t, validate.Reason("abc"))
	assert.Contains(t, fe.Message, "al menos 10")
}

func TestReason_MuyLargo(t *testing.T) {
	fe := fieldOf(t, validate.Reason(strings.Repeat("a", 501)))
	assert.Contains(t, fe.Message, "superar 500")
}

func TestNarrativeField_SoloNumeros(t *testing.T) {
	fe := fieldOf(t, validate.Reason("1234567890"))
	assert.Equal(t, "no puede contener solo números", fe.Message)

	fe = fieldOf(t, validate.Reason("123 456 789 0"))
	assert.Equal(t, "no puede contener solo números", fe.Message,
		"los espacios no cambian la clasificación de solo-números")
}

func TestNarrativeField_SoloSimbolos(t *testing.T) {
	fe := fieldOf(t, validate.Reason("!!!???...---"))
	assert.Equal(t, "no puede contener solo caracteres especiales", fe.Message)
}

func TestNarrativeField_MezclaSinLetra(t *testing.T) {
	fe := fieldOf(t, validate.Reason("123-456-789"))
	assert.Equal(t, "debe contener al menos una letra", fe.Message,
		"números con símbolos no es solo-números ni solo-símbolos")
}

func TestNarrativeField_LetraAcentuadaCuenta(t *testing.T) {
	assert.NoError(t, validate.Reason("ñ123456789"),
		"una letra del español satisface la regla")
}

func TestObservations_OpcionalYConTope(t *testing.T) {
	assert.NoError(t, validate.Observations("observations", ""))
	assert.NoError(t, validate.Observations("observations", "todo en orden"))

	fe := fieldOf(t, validate.Observations("observations", strings.Repeat("x", 1001)))
	assert.Equal(t, "observations", fe.Field)
	assert.Contains(t, fe.Message, "1000")
}

func TestSpecialConditions_Tope500(t *testing.T) {
	assert.NoError(t, validate.SpecialConditions(""))
	fe := fieldOf(t, validate.SpecialConditions(strings.Repeat("x", 501)))
	assert.Equal(t, "specialConditions", fe.Field)
}

func TestNotBlank(t *testing.T) {
	assert.NoError(t, validate.NotBlank("f", ""), "vacío es distinto de en-blanco")
	assert.NoError(t, validate.NotBlank("f", "algo"))

	fe := fieldOf(t, validate.NotBlank("f", "   "))
	assert.Equal(t, "no puede estar en blanco", fe.Message)
}

func TestRequiredAction_Obligatoria(t *testing.T) {
	fe := fieldOf(t, validate.RequiredAction("  "))
	assert.Equal(t, "requiredAction", fe.Field)
	assert.NoError(t, validate.RequiredAction("reparar la pata"))
}

func TestDocumentNumber_Valido(t *testing.T) {
	assert.NoError(t, validate.DocumentNumber(""))
	assert.NoError(t, validate.DocumentNumber("OF-2025/113.A"))
	assert.NoError(t, validate.DocumentNumber("MEMO número 7"))
}

func TestDocumentNumber_Longitud(t *testing.T) {
	fe := fieldOf(t, validate.DocumentNumber("ab"))
	assert.Contains(t, fe.Message, "al menos 3")

	fe = fieldOf(t, validate.DocumentNumber(strings.Repeat("a", 51)))
	assert.Contains(t, fe.Message, "superar 50")
}

func TestDocumentNumber_CharsetRestringido(t *testing.T) {
	fe := fieldOf(t, validate.DocumentNumber("DOC#123"))
	assert.Equal(t, "supportingDocumentNumber", fe.Field)
	assert.Contains(t, fe.Message, "solo se permiten")
}

func TestDocumentNumber_EspaciosConsecutivos(t *testing.T) {
	fe := fieldOf(t, validate.DocumentNumber("DOC  123"))
	assert.Contains(t, fe.Message, "espacios consecutivos")
}

func TestDocumentNumber_NormalizaNFC(t *testing.T) {
	// "á" compuesta: 'a' + combining acute (U+0301). Tras NFC pasa el charset.
	assert.NoError(t, validate.DocumentNumber("DOC-área"))
}

func TestDocumentNumber_SinRecortar(t *testing.T) {
	// El valor crudo cuenta: un espacio inicial es parte de la longitud y del
	// charset, pero no genera espacios consecutivos por sí solo.
	assert.NoError(t, validate.DocumentNumber(" AB"))
}

func TestDocumentType_Opcional(t *testing.T) {
	assert.NoError(t, validate.DocumentType(""))
	assert.NoError(t, validate.DocumentType("Oficio"))
	fe := fieldOf(t, validate.DocumentType(strings.Repeat("x", 51)))
	assert.Equal(t, "supportingDocumentType", fe.Field)
}
