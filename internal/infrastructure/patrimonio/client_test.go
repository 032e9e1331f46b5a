package patrimonio

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alcaldia-digital/patrimonio-api/internal/application/inventory"
	"github.com/alcaldia-digital/patrimonio-api/pkg/config"
	"github.com/alcaldia-digital/patrimonio-api/pkg/logger"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(config.PatrimonioConfig{BaseURL: srv.URL, TimeoutSeconds: 5}, logger.Nop())
}

// ──────────────────────────────────────────────────────────────────────────────
// GetAsset
// ──────────────────────────────────────────────────────────────────────────────

func TestGetAsset_NoExisteDevuelveNilNil(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	asset, err := c.GetAsset(context.Background(), "asset-x")
	require.NoError(t, err)
	assert.Nil(t, asset, "404 significa bien inexistente, no error")
}

func TestGetAsset_ObjetoPlano(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/assets/asset-1", r.URL.Path)
		w.Write([]byte(`{"id":"asset-1","code":"PAT-001","name":"Escritorio","status":"DISPONIBLE","acquisitionValue":"1250.50"}`))
	})
	asset, err := c.GetAsset(context.Background(), "asset-1")
	require.NoError(t, err)
	require.NotNil(t, asset)
	assert.Equal(t, "PAT-001", asset.Code)
	assert.Equal(t, "DISPONIBLE", asset.Status)
	assert.Equal(t, "1250.5", asset.AcquisitionValue.String())
}

func TestGetAsset_EnvueltoEnData(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"assetId":"asset-2","assetCode":"PAT-002","description":"Silla giratoria"}}`))
	})
	asset, err := c.GetAsset(context.Background(), "asset-2")
	require.NoError(t, err)
	require.NotNil(t, asset)
	assert.Equal(t, "asset-2", asset.ID, "acepta las claves alternativas del servicio")
	assert.Equal(t, "PAT-002", asset.Code)
	assert.Equal(t, "Silla giratoria", asset.Name)
}

func TestGetAsset_ErrorConMensaje(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message":"base de datos no disponible"}`))
	})
	_, err := c.GetAsset(context.Background(), "asset-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base de datos no disponible")
}

// ──────────────────────────────────────────────────────────────────────────────
// ChangeAssetStatus
// ──────────────────────────────────────────────────────────────────────────────

func TestChangeAssetStatus_EnviaPatchConNota(t *testing.T) {
	var got map[string]string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/v1/assets/asset-1/status", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	})
	err := c.ChangeAssetStatus(context.Background(), "asset-1", "EN_USO", "movimiento aprobado")
	require.NoError(t, err)
	assert.Equal(t, "EN_USO", got["status"])
	assert.Equal(t, "movimiento aprobado", got["note"])
}

func TestChangeAssetStatus_PrioridadDeClavesDeError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message":"mensaje secundario","error":"estado no permitido"}`))
	})
	err := c.ChangeAssetStatus(context.Background(), "asset-1", "EN_USO", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "estado no permitido",
		"la clave error tiene prioridad sobre message")
}

func TestChangeAssetStatus_ErrorSinCuerpoReportaHTTP(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	err := c.ChangeAssetStatus(context.Background(), "asset-1", "DISPONIBLE", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 502")
}

// ──────────────────────────────────────────────────────────────────────────────
// CountAssets
// ──────────────────────────────────────────────────────────────────────────────

func TestCountAssets_UsaTotalPaginado(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "muni-1", r.URL.Query().Get("municipalityId"))
		assert.Equal(t, "area-1", r.URL.Query().Get("areaId"))
		assert.Empty(t, r.URL.Query().Get("categoryId"), "los filtros vacíos no viajan")
		w.Write([]byte(`{"content":[{"id":"a"}],"totalElements":42}`))
	})
	n, err := c.CountAssets(context.Background(), inventory.AssetFilter{
		MunicipalityID: "muni-1",
		AreaID:         "area-1",
	})
	require.NoError(t, err)
	assert.Equal(t, 42, n, "el total paginado gana sobre el largo de la página")
}

func TestCountAssets_ListasEnTresFormas(t *testing.T) {
	cases := []struct {
		name string
		body string
		want int
	}{
		{"array plano", `[{"id":"a"},{"id":"b"}]`, 2},
		{"envuelto en data", `{"data":[{"id":"a"},{"id":"b"},{"id":"c"}]}`, 3},
		{"envuelto en content", `{"content":[{"id":"a"}]}`, 1},
		{"objeto suelto", `{"id":"a"}`, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tc.body))
			})
			n, err := c.CountAssets(context.Background(), inventory.AssetFilter{MunicipalityID: "muni-1"})
			require.NoError(t, err)
			assert.Equal(t, tc.want, n)
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// GetPersonName
// ──────────────────────────────────────────────────────────────────────────────

func TestGetPersonName_NombreYApellido(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"firstName":"María","lastName":"Quispe"}}`))
	})
	assert.Equal(t, "María Quispe", c.GetPersonName(context.Background(), "person-1"))
}

func TestGetPersonName_FullNameComoRespaldo(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"fullName":"Juan Pérez Rojas"}`))
	})
	assert.Equal(t, "Juan Pérez Rojas", c.GetPersonName(context.Background(), "person-1"))
}

func TestGetPersonName_DegradaAlID(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	assert.Equal(t, "person-9", c.GetPersonName(context.Background(), "person-9"),
		"ante cualquier falla se devuelve el ID crudo, nunca un vacío")

	assert.Empty(t, c.GetPersonName(context.Background(), ""))
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers internos
// ──────────────────────────────────────────────────────────────────────────────

func TestExtractErrorMessage_SinClavesConocidas(t *testing.T) {
	assert.Equal(t, "HTTP 418", extractErrorMessage([]byte(`{"foo":"bar"}`), 418))
	assert.Equal(t, "HTTP 500", extractErrorMessage([]byte(`no es json`), 500))
}
