package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alcaldia-digital/patrimonio-api/pkg/jwt"
)

const secret = "secreto-de-prueba"

func TestGenerateYParse_IdaYVuelta(t *testing.T) {
	token, err := jwt.Generate(secret, "user-1", "muni-1", "patrimonio", "patrimonio-api", 60)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, municipalityID, role, err := jwt.Parse(secret, token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
	assert.Equal(t, "muni-1", municipalityID)
	assert.Equal(t, "patrimonio", role)
}

func TestParse_TokenExpirado(t *testing.T) {
	token, err := jwt.Generate(secret, "user-1", "muni-1", "admin", "patrimonio-api", -1)
	require.NoError(t, err)

	_, _, _, err = jwt.Parse(secret, token)
	assert.Error(t, err, "un token vencido no se acepta")
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	token, err := jwt.Generate(secret, "user-1", "muni-1", "admin", "patrimonio-api", 60)
	require.NoError(t, err)

	_, _, _, err = jwt.Parse("otro-secreto", token)
	assert.Error(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := jwt.Generate("", "user-1", "muni-1", "admin", "patrimonio-api", 60)
	assert.Error(t, err)

	_, _, _, err = jwt.Parse("", "cualquier-cosa")
	assert.Error(t, err)
}
