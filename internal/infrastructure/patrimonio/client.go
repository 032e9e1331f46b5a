// Package patrimonio implementa el cliente HTTP hacia el microservicio de
// bienes patrimoniales (registro maestro de bienes y personas).
//
// El servicio remoto no tiene un contrato de respuesta estable entre
// versiones: las listas llegan como array plano, como {"data": [...]} o como
// {"content": [...]}, y los mensajes de error usan claves distintas según el
// endpoint. Por eso las respuestas se leen con gjson en lugar de structs.
package patrimonio

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"

	"github.com/alcaldia-digital/patrimonio-api/internal/application/inventory"
	"github.com/alcaldia-digital/patrimonio-api/internal/application/movement"
	"github.com/alcaldia-digital/patrimonio-api/internal/domain/entity"
	"github.com/alcaldia-digital/patrimonio-api/pkg/config"
	"github.com/alcaldia-digital/patrimonio-api/pkg/logger"
)

var (
	_ movement.AssetService  = (*Client)(nil)
	_ inventory.AssetCounter = (*Client)(nil)
)

// Client cliente HTTP del servicio de patrimonio.
type Client struct {
	baseURL string
	http    *http.Client
	log     *logger.Logger
}

// NewClient construye el cliente con el timeout configurado.
func NewClient(cfg config.PatrimonioConfig, log *logger.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
		log: log,
	}
}

// GetAsset obtiene un bien por ID. Devuelve (nil, nil) si el bien no existe.
func (c *Client) GetAsset(ctx context.Context, id string) (*entity.Asset, error) {
	body, status, err := c.do(ctx, http.MethodGet, "/api/v1/assets/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, nil
	}
	if status >= 400 {
		return nil, fmt.Errorf("patrimonio: obtener bien %s: %s", id, extractErrorMessage(body, status))
	}

	doc := gjson.ParseBytes(body)
	// Algunos despliegues envuelven el objeto en "data".
	if d := doc.Get("data"); d.IsObject() {
		doc = d
	}
	return parseAsset(doc), nil
}

// ChangeAssetStatus cambia el estado operativo de un bien (DISPONIBLE, EN_USO...).
func (c *Client) ChangeAssetStatus(ctx context.Context, id, status, note string) error {
	payload := map[string]string{"status": status}
	if note != "" {
		payload["note"] = note
	}
	body, code, err := c.do(ctx, http.MethodPatch, "/api/v1/assets/"+url.PathEscape(id)+"/status", payload)
	if err != nil {
		return err
	}
	if code >= 400 {
		return fmt.Errorf("patrimonio: cambiar estado de bien %s a %s: %s", id, status, extractErrorMessage(body, code))
	}
	return nil
}

// CountAssets cuenta los bienes que cumplen el filtro de alcance.
func (c *Client) CountAssets(ctx context.Context, f inventory.AssetFilter) (int, error) {
	q := url.Values{}
	q.Set("municipalityId", f.MunicipalityID)
	if f.AreaID != "" {
		q.Set("areaId", f.AreaID)
	}
	if f.CategoryID != "" {
		q.Set("categoryId", f.CategoryID)
	}
	if f.LocationID != "" {
		q.Set("locationId", f.LocationID)
	}

	body, status, err := c.do(ctx, http.MethodGet, "/api/v1/assets?"+q.Encode(), nil)
	if err != nil {
		return 0, err
	}
	if status >= 400 {
		return 0, fmt.Errorf("patrimonio: contar bienes: %s", extractErrorMessage(body, status))
	}

	doc := gjson.ParseBytes(body)
	// Si la respuesta trae el total paginado, evitamos contar a mano.
	for _, key := range []string{"total", "totalElements", "count"} {
		if t := doc.Get(key); t.Exists() {
			return int(t.Int()), nil
		}
	}
	return len(normalizeList(doc)), nil
}

// GetPersonName obtiene el nombre a mostrar de una persona (funcionario
// responsable). Si el servicio no responde o no trae nombre, devuelve el ID
// crudo: el dato degradado es preferible a fallar la generación de un acta.
func (c *Client) GetPersonName(ctx context.Context, id string) string {
	if id == "" {
		return ""
	}
	body, status, err := c.do(ctx, http.MethodGet, "/api/v1/persons/"+url.PathEscape(id), nil)
	if err != nil || status >= 400 {
		return id
	}
	doc := gjson.ParseBytes(body)
	if d := doc.Get("data"); d.IsObject() {
		doc = d
	}
	return personDisplayName(doc, id)
}

func (c *Client) do(ctx context.Context, method, path string, payload any) ([]byte, int, error) {
	var reqBody io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, 0, fmt.Errorf("patrimonio: serializar payload: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, 0, fmt.Errorf("patrimonio: crear request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("patrimonio: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("patrimonio: leer respuesta: %w", err)
	}

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Msg("llamada al servicio de patrimonio")

	return body, resp.StatusCode, nil
}

// normalizeList acepta las tres formas de lista que devuelve el servicio:
// array plano, {"data": [...]} y {"content": [...]}. Un objeto suelto se trata
// como lista de un elemento.
func normalizeList(doc gjson.Result) []gjson.Result {
	if doc.IsArray() {
		return doc.Array()
	}
	for _, key := range []string{"data", "content"} {
		if inner := doc.Get(key); inner.IsArray() {
			return inner.Array()
		}
	}
	if doc.IsObject() {
		return []gjson.Result{doc}
	}
	return nil
}

// extractErrorMessage busca el mensaje de error en las claves conocidas, en
// orden de prioridad. Si ninguna aparece, reporta el código HTTP.
func extractErrorMessage(body []byte, status int) string {
	doc := gjson.ParseBytes(body)
	for _, key := range []string{"error", "message", "detail", "msg", "description", "errorMessage", "reason"} {
		if v := doc.Get(key); v.Exists() && v.String() != "" {
			return v.String()
		}
	}
	return fmt.Sprintf("HTTP %d", status)
}

// personDisplayName arma el nombre a mostrar probando las variantes de campo
// que usan las distintas versiones del servicio.
func personDisplayName(doc gjson.Result, fallback string) string {
	first := firstNonEmpty(doc, "firstName", "first_name", "name")
	last := firstNonEmpty(doc, "lastName", "last_name", "surname")
	if first != "" && last != "" {
		return first + " " + last
	}
	if full := firstNonEmpty(doc, "fullName", "full_name", "displayName"); full != "" {
		return full
	}
	if first != "" {
		return first
	}
	return fallback
}

func firstNonEmpty(doc gjson.Result, keys ...string) string {
	for _, key := range keys {
		if v := doc.Get(key); v.Exists() && v.String() != "" {
			return v.String()
		}
	}
	return ""
}

func parseAsset(doc gjson.Result) *entity.Asset {
	value := decimal.Zero
	if v := doc.Get("acquisitionValue"); v.Exists() {
		if d, err := decimal.NewFromString(v.String()); err == nil {
			value = d
		}
	}
	return &entity.Asset{
		ID:                 firstNonEmpty(doc, "id", "assetId"),
		Code:               firstNonEmpty(doc, "code", "assetCode", "inventoryCode"),
		Name:               firstNonEmpty(doc, "name", "description"),
		Status:             doc.Get("status").String(),
		ConservationStatus: firstNonEmpty(doc, "conservationStatus", "conservation_status"),
		AreaID:             firstNonEmpty(doc, "areaId", "area_id"),
		LocationID:         firstNonEmpty(doc, "locationId", "location_id"),
		ResponsibleID:      firstNonEmpty(doc, "responsibleId", "responsible_id"),
		AcquisitionValue:   value,
	}
}
