package inventory_test

import (
	"context"
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

type fakeDetailRepo struct {
	byID map[string]*entity.InventoryDetail
}

var _ repository.InventoryDetailRepository = (*fakeDetailRepo)(nil)

func newFakeDetailRepo() *fakeDetailRepo {
	return &fakeDetailRepo{byID: map[string]*entity.InventoryDetail{}}
}

func (r *fakeDetailRepo) Create(d *entity.InventoryDetail) error {
	cp := *d
	r.byID[d.ID] = &cp
	return nil
}

func (r *fakeDetailRepo) GetByID(id string) (*entity.InventoryDetail, error) {
	d, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *d
	return &cp, nil
}

func (r *fakeDetailRepo) GetByInventoryAndAsset(inventoryID, assetID string) (*entity.InventoryDetail, error) {
	for _, d := range r.byID {
		if d.InventoryID == inventoryID && d.AssetID == assetID {
			cp := *d
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeDetailRepo) Update(d *entity.InventoryDetail) error {
	cp := *d
	r.byID[d.ID] = &cp
	return nil
}

func (r *fakeDetailRepo) Delete(id string) error {
	delete(r.byID, id)
	return nil
}

func (r *fakeDetailRepo) ListByInventory(inventoryID string, limit, offset int) ([]*entity.InventoryDetail, error) {
	var out []*entity.InventoryDetail
	for _, d := range r.byID {
		if d.InventoryID == inventoryID {
			cp := *d
			out = append(out, &cp)
		}
	}
	return out, nil
}

// seedInventory deja una campaña en el estado y configuración indicados.
func seedInventory(repo *fakeInventoryRepo, status string, cfg dto.CreateInventoryRequest) *entity.Inventory {
	inv := &entity.Inventory{
		ID:              "inv-1",
		MunicipalityID:  muni,
		InventoryNumber: "INV-2026-0001",
		InventoryType:   entity.InventoryTypeGeneral,
		IncludesMissing: cfg.IncludesMissing,
		IncludesSurplus: cfg.IncludesSurplus,
		RequiresPhotos:  cfg.RequiresPhotos,
		Status:          status,
	}
	repo.byID[inv.ID] = inv
	return inv
}

func newDetailUseCase(status string, cfg dto.CreateInventoryRequest) (*appinventory.DetailUseCase, *fakeDetailRepo) {
	invRepo := newFakeInventoryRepo()
	seedInventory(invRepo, status, cfg)
	detailRepo := newFakeDetailRepo()
	return appinventory.NewDetailUseCase(invRepo, detailRepo), detailRepo
}

func foundRequest() dto.SaveInventoryDetailRequest {
	return dto.SaveInventoryDetailRequest{
		AssetID:                  "asset-1",
		FoundStatus:              entity.FoundStatusFound,
		ActualConservationStatus: entity.ConservationGood,
	}
}

func TestDetailCreate_CampanaDebeEstarEnCurso(t *testing.T) {
	uc, _ := newDetailUseCase(entity.InventoryStatusPlanned, dto.CreateInventoryRequest{})
	_, err := uc.Create(context.Background(), muni, "inv-1", "verif-1", foundRequest())
	assert.ErrorIs(t, err, domain.ErrConflict,
		"solo una campaña IN_PROGRESS acepta verificaciones")
}

func TestDetailCreate_RegistraConFechaYVerificador(t *testing.T) {
	uc, _ := newDetailUseCase(entity.InventoryStatusInProgress, dto.CreateInventoryRequest{})
	out, err := uc.Create(context.Background(), muni, "inv-1", "verif-1", foundRequest())
	require.NoError(t, err)
	assert.Equal(t, "verif-1", out.VerifiedBy)
	assert.NotNil(t, out.VerificationDate)
	assert.Equal(t, entity.FoundStatusFound, out.FoundStatus)
}

func TestDetailCreate_UnRegistroPorBien(t *testing.T) {
	uc, _ := newDetailUseCase(entity.InventoryStatusInProgress, dto.CreateInventoryRequest{})
	_, err := uc.Create(context.Background(), muni, "inv-1", "verif-1", foundRequest())
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), muni, "inv-1", "verif-2", foundRequest())
	assert.ErrorIs(t, err, domain.ErrDuplicate,
		"el mismo bien no se verifica dos veces en la misma campaña")
}

func TestDetailCreate_EncontradoExigeConservacion(t *testing.T) {
	uc, _ := newDetailUseCase(entity.InventoryStatusInProgress, dto.CreateInventoryRequest{})
	in := foundRequest()
	in.ActualConservationStatus = ""
	_, err := uc.Create(context.Background(), muni, "inv-1", "verif-1", in)
	var fe *validate.FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "actualConservationStatus", fe.Field)
}

func TestDetailCreate_CampanaConFotosObligatorias(t *testing.T) {
	uc, _ := newDetailUseCase(entity.InventoryStatusInProgress,
		dto.CreateInventoryRequest{RequiresPhotos: true})

	_, err := uc.Create(context.Background(), muni, "inv-1", "verif-1", foundRequest())
	var fe *validate.FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "photographs", fe.Field)

	in := foundRequest()
	in.Photographs = []entity.Photograph{{Name: "frontal.jpg", Type: "image/jpeg"}}
	_, err = uc.Create(context.Background(), muni, "inv-1", "verif-1", in)
	assert.NoError(t, err)
}

func TestDetailCreate_FaltantesYSobrantesSegunConfiguracion(t *testing.T) {
	// La campaña no incluye faltantes ni sobrantes.
	uc, _ := newDetailUseCase(entity.InventoryStatusInProgress, dto.CreateInventoryRequest{})

	in := foundRequest()
	in.FoundStatus = entity.FoundStatusMissing
	in.ActualConservationStatus = ""
	_, err := uc.Create(context.Background(), muni, "inv-1", "verif-1", in)
	var fe *validate.FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "foundStatus", fe.Field)

	in.FoundStatus = entity.FoundStatusSurplus
	_, err = uc.Create(context.Background(), muni, "inv-1", "verif-1", in)
	require.ErrorAs(t, err, &fe)

	// Con la configuración habilitada, ambos proceden.
	uc2, _ := newDetailUseCase(entity.InventoryStatusInProgress,
		dto.CreateInventoryRequest{IncludesMissing: true, IncludesSurplus: true})
	in.AssetID = "asset-m"
	in.FoundStatus = entity.FoundStatusMissing
	_, err = uc2.Create(context.Background(), muni, "inv-1", "verif-1", in)
	assert.NoError(t, err)

	in.AssetID = "asset-s"
	in.FoundStatus = entity.FoundStatusSurplus
	_, err = uc2.Create(context.Background(), muni, "inv-1", "verif-1", in)
	assert.NoError(t, err)
}

func TestDetailCreate_AccionRequerida(t *testing.T) {
	uc, _ := newDetailUseCase(entity.InventoryStatusInProgress, dto.CreateInventoryRequest{})
	in := foundRequest()
	in.RequiresAction = true
	_, err := uc.Create(context.Background(), muni, "inv-1", "verif-1", in)
	var fe *validate.FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "requiredAction", fe.Field)

	in.RequiredAction = "enviar a mantenimiento"
	_, err = uc.Create(context.Background(), muni, "inv-1", "verif-1", in)
	assert.NoError(t, err)
}

func TestDetailUpdate_SoloDeSuCampana(t *testing.T) {
	uc, detailRepo := newDetailUseCase(entity.InventoryStatusInProgress, dto.CreateInventoryRequest{})
	created, err := uc.Create(context.Background(), muni, "inv-1", "verif-1", foundRequest())
	require.NoError(t, err)

	// El registro existe pero se consulta desde otra campaña inexistente.
	_, err = uc.Update(context.Background(), muni, "inv-2", created.ID, foundRequest())
	assert.ErrorIs(t, err, domain.ErrNotFound)

	in := foundRequest()
	in.Observations = "pata floja detectada"
	out, err := uc.Update(context.Background(), muni, "inv-1", created.ID, in)
	require.NoError(t, err)
	assert.Equal(t, "pata floja detectada", out.Observations)
	assert.Len(t, detailRepo.byID, 1)
}
