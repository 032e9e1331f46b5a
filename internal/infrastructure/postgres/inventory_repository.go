package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alcaldia-digital/patrimonio-api/internal/domain/entity"
	"github.com/alcaldia-digital/patrimonio-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación del puerto InventoryRepository sobre PostgreSQL.
type InventoryRepo struct {
	pool *pgxpool.Pool
}

// NewInventoryRepository construye el adaptador de persistencia para campañas.
func NewInventoryRepository(pool *pgxpool.Pool) *InventoryRepo {
	return &InventoryRepo{pool: pool}
}

const inventoryColumns = `
	id, municipality_id, inventory_number, inventory_type, description,
	area_id, category_id, location_id,
	planned_start_date, planned_end_date, general_responsible_id,
	includes_missing, includes_surplus, requires_photos,
	status, created_at, updated_at`

// Create persiste una campaña nueva.
func (r *InventoryRepo) Create(inv *entity.Inventory) error {
	query := `
		INSERT INTO inventories (` + inventoryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.pool.Exec(context.Background(), query,
		inv.ID, inv.MunicipalityID, inv.InventoryNumber, inv.InventoryType, inv.Description,
		inv.AreaID, inv.CategoryID, inv.LocationID,
		inv.PlannedStartDate, inv.PlannedEndDate, inv.GeneralResponsibleID,
		inv.IncludesMissing, inv.IncludesSurplus, inv.RequiresPhotos,
		inv.Status, inv.CreatedAt, inv.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert inventory: %w", err)
	}
	return nil
}

// GetByID obtiene una campaña por ID dentro del municipio.
func (r *InventoryRepo) GetByID(municipalityID, id string) (*entity.Inventory, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventories WHERE municipality_id = $1 AND id = $2`
	row := r.pool.QueryRow(context.Background(), query, municipalityID, id)
	inv, err := scanInventory(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory: %w", err)
	}
	return inv, nil
}

// Update actualiza una campaña; los filtros de alcance no cambian (el caso de
// uso lo garantiza, la query no los incluye).
func (r *InventoryRepo) Update(inv *entity.Inventory) error {
	query := `
		UPDATE inventories SET
			description = $3, planned_start_date = $4, planned_end_date = $5,
			general_responsible_id = $6,
			includes_missing = $7, includes_surplus = $8, requires_photos = $9,
			status = $10, updated_at = $11
		WHERE municipality_id = $1 AND id = $2`
	_, err := r.pool.Exec(context.Background(), query,
		inv.MunicipalityID, inv.ID,
		inv.Description, inv.PlannedStartDate, inv.PlannedEndDate,
		inv.GeneralResponsibleID,
		inv.IncludesMissing, inv.IncludesSurplus, inv.RequiresPhotos,
		inv.Status, inv.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update inventory: %w", err)
	}
	return nil
}

// Delete elimina la campaña; los registros de verificación caen en cascada.
func (r *InventoryRepo) Delete(municipalityID, id string) error {
	_, err := r.pool.Exec(context.Background(),
		`DELETE FROM inventories WHERE municipality_id = $1 AND id = $2`, municipalityID, id)
	if err != nil {
		return fmt.Errorf("delete inventory: %w", err)
	}
	return nil
}

// List lista campañas por municipio con paginación, más recientes primero.
func (r *InventoryRepo) List(municipalityID string, limit, offset int) ([]*entity.Inventory, error) {
	query := `SELECT ` + inventoryColumns + `
		FROM inventories WHERE municipality_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(context.Background(), query, municipalityID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list inventories: %w", err)
	}
	defer rows.Close()

	var list []*entity.Inventory
	for rows.Next() {
		inv, err := scanInventory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan inventory: %w", err)
		}
		list = append(list, inv)
	}
	return list, rows.Err()
}

// NextInventoryNumber devuelve el consecutivo de campaña por municipio y año.
func (r *InventoryRepo) NextInventoryNumber(municipalityID string, year int) (int, error) {
	return nextSequence(context.Background(), r.pool, "inventory", municipalityID, year)
}

func scanInventory(row pgx.Row) (*entity.Inventory, error) {
	var inv entity.Inventory
	err := row.Scan(
		&inv.ID, &inv.MunicipalityID, &inv.InventoryNumber, &inv.InventoryType, &inv.Description,
		&inv.AreaID, &inv.CategoryID, &inv.LocationID,
		&inv.PlannedStartDate, &inv.PlannedEndDate, &inv.GeneralResponsibleID,
		&inv.IncludesMissing, &inv.IncludesSurplus, &inv.RequiresPhotos,
		&inv.Status, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}
