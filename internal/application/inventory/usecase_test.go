package inventory_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alcaldia-digital/patrimonio-api/internal/application/dto"
	appinventory "github.com/alcaldia-digital/patrimonio-api/internal/application/inventory"
	"github.com/alcaldia-digital/patrimonio-api/internal/domain"
	"github.com/alcaldia-digital/patrimonio-api/internal/domain/entity"
	"github.com/alcaldia-digital/patrimonio-api/internal/domain/repository"
	"github.com/alcaldia-digital/patrimonio-api/internal/domain/validate"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeInventoryRepo struct {
	byID map[string]*entity.Inventory
	seq  int
}

var _ repository.InventoryRepository = (*fakeInventoryRepo)(nil)

func newFakeInventoryRepo() *fakeInventoryRepo {
	return &fakeInventoryRepo{byID: map[string]*entity.Inventory{}}
}

func (r *fakeInventoryRepo) Create(inv *entity.Inventory) error {
	cp := *inv
	r.byID[inv.ID] = &cp
	return nil
}

func (r *fakeInventoryRepo) GetByID(municipalityID, id string) (*entity.Inventory, error) {
	inv, ok := r.byID[id]
	if !ok || inv.MunicipalityID != municipalityID {
		return nil, nil
	}
	cp := *inv
	return &cp, nil
}

func (r *fakeInventoryRepo) Update(inv *entity.Inventory) error {
	cp := *inv
	r.byID[inv.ID] = &cp
	return nil
}

func (r *fakeInventoryRepo) Delete(municipalityID, id string) error {
	delete(r.byID, id)
	return nil
}

func (r *fakeInventoryRepo) List(municipalityID string, limit, offset int) ([]*entity.Inventory, error) {
	var out []*entity.Inventory
	for _, inv := range r.byID {
		if inv.MunicipalityID == municipalityID {
			cp := *inv
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeInventoryRepo) NextInventoryNumber(municipalityID string, year int) (int, error) {
	r.seq++
	return r.seq, nil
}

// fakeAssetCounter devuelve un conteo fijo y registra el filtro recibido.
type fakeAssetCounter struct {
	count  int
	filter appinventory.AssetFilter
}

func (c *fakeAssetCounter) CountAssets(ctx context.Context, f appinventory.AssetFilter) (int, error) {
	c.filter = f
	return c.count, nil
}

func newTestUseCase(assetCount int) (*appinventory.InventoryUseCase, *fakeInventoryRepo, *fakeAssetCounter) {
	repo := newFakeInventoryRepo()
	counter := &fakeAssetCounter{count: assetCount}
	return appinventory.NewInventoryUseCase(repo, counter), repo, counter
}

const muni = "muni-1"

// ──────────────────────────────────────────────────────────────────────────────
// Regla de alcance
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_GeneralSinFiltros(t *testing.T) {
	uc, _, _ := newTestUseCase(10)
	out, err := uc.Create(context.Background(), muni, dto.CreateInventoryRequest{
		InventoryType: entity.InventoryTypeGeneral,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.InventoryStatusPlanned, out.Status)
	assert.Equal(t, fmt.Sprintf("INV-%d-0001", outYear(out)), out.InventoryNumber,
		"el consecutivo lo asigna el servidor")
}

func outYear(out *dto.InventoryResponse) int {
	return out.CreatedAt.Year()
}

func TestCreate_GeneralConFiltroSeRechaza(t *testing.T) {
	uc, _, _ := newTestUseCase(10)
	_, err := uc.Create(context.Background(), muni, dto.CreateInventoryRequest{
		InventoryType: entity.InventoryTypeGeneral,
		AreaID:        "area-1",
	})
	var fe *validate.FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "inventoryType", fe.Field)
}

func TestCreate_SelectiveExigeExactamenteUnFiltro(t *testing.T) {
	uc, _, _ := newTestUseCase(10)

	// Cero filtros.
	_, err := uc.Create(context.Background(), muni, dto.CreateInventoryRequest{
		InventoryType: entity.InventoryTypeSelective,
	})
	assert.Error(t, err)

	// Dos filtros.
	_, err = uc.Create(context.Background(), muni, dto.CreateInventoryRequest{
		InventoryType: entity.InventoryTypeSelective,
		AreaID:        "area-1",
		CategoryID:    "cat-1",
	})
	assert.Error(t, err)

	// Exactamente uno.
	out, err := uc.Create(context.Background(), muni, dto.CreateInventoryRequest{
		InventoryType: entity.InventoryTypeSelective,
		LocationID:    "loc-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "loc-1", out.LocationID)
}

func TestCreate_SelectiveSinBienesSeRechaza(t *testing.T) {
	uc, repo, counter := newTestUseCase(0)
	_, err := uc.Create(context.Background(), muni, dto.CreateInventoryRequest{
		InventoryType: entity.InventoryTypeSelective,
		AreaID:        "area-vacia",
	})
	assert.ErrorIs(t, err, domain.ErrEmptyScope)
	assert.Empty(t, repo.byID)
	assert.Equal(t, "area-vacia", counter.filter.AreaID,
		"el conteo se consulta con el filtro de la campaña")
	assert.Equal(t, muni, counter.filter.MunicipalityID)
}

func TestCreate_TipoInvalido(t *testing.T) {
	uc, _, _ := newTestUseCase(10)
	_, err := uc.Create(context.Background(), muni, dto.CreateInventoryRequest{
		InventoryType: "PARCIAL",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Inmutabilidad del alcance y transiciones
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_AlcanceEsInmutable(t *testing.T) {
	uc, _, _ := newTestUseCase(10)
	created, err := uc.Create(context.Background(), muni, dto.CreateInventoryRequest{
		InventoryType: entity.InventoryTypeSelective,
		AreaID:        "area-1",
	})
	require.NoError(t, err)

	_, err = uc.Update(context.Background(), muni, created.ID, dto.UpdateInventoryRequest{
		AreaID: "area-2",
	})
	assert.ErrorIs(t, err, domain.ErrImmutableField)

	// Con el mismo alcance, la edición procede.
	out, err := uc.Update(context.Background(), muni, created.ID, dto.UpdateInventoryRequest{
		AreaID:      "area-1",
		Description: "conteo de mitad de año",
	})
	require.NoError(t, err)
	assert.Equal(t, "conteo de mitad de año", out.Description)
}

func TestTransiciones_CicloDeVida(t *testing.T) {
	uc, _, _ := newTestUseCase(10)
	created, err := uc.Create(context.Background(), muni, dto.CreateInventoryRequest{
		InventoryType: entity.InventoryTypeGeneral,
	})
	require.NoError(t, err)

	// No se puede completar sin iniciar.
	_, err = uc.Complete(context.Background(), muni, created.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	started, err := uc.Start(context.Background(), muni, created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.InventoryStatusInProgress, started.Status)

	// No se puede iniciar dos veces.
	_, err = uc.Start(context.Background(), muni, created.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	done, err := uc.Complete(context.Background(), muni, created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.InventoryStatusCompleted, done.Status)

	// Una campaña completada no se cancela ni se edita.
	_, err = uc.Cancel(context.Background(), muni, created.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	_, err = uc.Update(context.Background(), muni, created.ID, dto.UpdateInventoryRequest{})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestDelete_SoloSinIniciar(t *testing.T) {
	uc, _, _ := newTestUseCase(10)
	created, err := uc.Create(context.Background(), muni, dto.CreateInventoryRequest{
		InventoryType: entity.InventoryTypeGeneral,
	})
	require.NoError(t, err)

	_, err = uc.Start(context.Background(), muni, created.ID)
	require.NoError(t, err)

	err = uc.Delete(context.Background(), muni, created.ID)
	assert.ErrorIs(t, err, domain.ErrConflict, "una campaña en curso no se elimina")

	_, err = uc.Cancel(context.Background(), muni, created.ID)
	require.NoError(t, err)
	assert.NoError(t, uc.Delete(context.Background(), muni, created.ID),
		"una campaña cancelada sí se elimina")
}
