package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alcaldia-digital/patrimonio-api/internal/domain/entity"
)

func TestEncodeAttachments_NilProduceListaVaciaJSON(t *testing.T) {
	raw, err := entity.EncodeAttachments(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", raw, "nil debe serializarse como lista vacía, nunca null")
}

func TestAttachments_IdaYVuelta(t *testing.T) {
	docs := []entity.AttachedDocument{
		{
			FileName:   "acta-entrega.pdf",
			FileURL:    "https://files.local/acta-entrega.pdf",
			FileType:   "application/pdf",
			FileSize:   20480,
			UploadedAt: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
			UploadedBy: "user-1",
		},
	}
	raw, err := entity.EncodeAttachments(docs)
	require.NoError(t, err)
	assert.True(t, len(raw) > 2, "debe ser un string JSON con contenido")

	decoded, err := entity.DecodeAttachments(raw)
	require.NoError(t, err)
	require.Len(t, decoded, 1)
	assert.Equal(t, docs[0], decoded[0])
}

func TestDecodeAttachments_VacioYNull(t *testing.T) {
	decoded, err := entity.DecodeAttachments("")
	require.NoError(t, err)
	assert.NotNil(t, decoded)
	assert.Empty(t, decoded)

	decoded, err = entity.DecodeAttachments("null")
	require.NoError(t, err)
	assert.NotNil(t, decoded, "null almacenado degrada a lista vacía")
}

func TestDecodeAttachments_JSONInvalido(t *testing.T) {
	_, err := entity.DecodeAttachments("{no es json")
	assert.Error(t, err)
}

func TestIsValidMovementType(t *testing.T) {
	for _, mt := range entity.MovementTypes {
		assert.True(t, entity.IsValidMovementType(mt), "tipo %s debe ser válido", mt)
	}
	assert.False(t, entity.IsValidMovementType("TELEPORT"))
	assert.False(t, entity.IsValidMovementType(""))
}

func TestHasDestination(t *testing.T) {
	assert.False(t, (&entity.AssetMovement{}).HasDestination())
	assert.True(t, (&entity.AssetMovement{DestinationAreaID: "a"}).HasDestination())
	assert.True(t, (&entity.AssetMovement{DestinationLocationID: "l"}).HasDestination())
	assert.True(t, (&entity.AssetMovement{DestinationResponsibleID: "r"}).HasDestination())
}
