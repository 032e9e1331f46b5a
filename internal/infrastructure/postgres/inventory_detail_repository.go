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

var _ repository.InventoryDetailRepository = (*InventoryDetailRepo)(nil)

// InventoryDetailRepo implementación del puerto InventoryDetailRepository sobre PostgreSQL.
type InventoryDetailRepo struct {
	pool *pgxpool.Pool
}

// NewInventoryDetailRepository construye el adaptador de persistencia para verificaciones.
func NewInventoryDetailRepository(pool *pgxpool.Pool) *InventoryDetailRepo {
	return &InventoryDetailRepo{pool: pool}
}

const detailColumns = `
	id, inventory_id, asset_id,
	found_status, actual_conservation_status,
	actual_location_id, actual_responsible_id,
	verified_by, verification_date,
	observations, physical_differences, document_differences,
	requires_action, required_action, estimated_repair_cost,
	photographs, created_at, updated_at`

// Create persiste un registro de verificación.
func (r *InventoryDetailRepo) Create(d *entity.InventoryDetail) error {
	query := `
		INSERT INTO inventory_details (` + detailColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	_, err := r.pool.Exec(context.Background(), query,
		d.ID, d.InventoryID, d.AssetID,
		d.FoundStatus, d.ActualConservationStatus,
		d.ActualLocationID, d.ActualResponsibleID,
		d.VerifiedBy, d.VerificationDate,
		d.Observations, d.PhysicalDifferences, d.DocumentDifferences,
		d.RequiresAction, d.RequiredAction, d.EstimatedRepairCost,
		d.Photographs, d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert inventory detail: duplicado: %w", err)
		}
		return fmt.Errorf("insert inventory detail: %w", err)
	}
	return nil
}

// GetByID obtiene un registro por ID.
func (r *InventoryDetailRepo) GetByID(id string) (*entity.InventoryDetail, error) {
	query := `SELECT ` + detailColumns + ` FROM inventory_details WHERE id = $1`
	row := r.pool.QueryRow(context.Background(), query, id)
	d, err := scanDetail(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory detail: %w", err)
	}
	return d, nil
}

// GetByInventoryAndAsset obtiene el registro de un bien en una campaña, si existe.
func (r *InventoryDetailRepo) GetByInventoryAndAsset(inventoryID, assetID string) (*entity.InventoryDetail, error) {
	query := `SELECT ` + detailColumns + ` FROM inventory_details WHERE inventory_id = $1 AND asset_id = $2`
	row := r.pool.QueryRow(context.Background(), query, inventoryID, assetID)
	d, err := scanDetail(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory detail by asset: %w", err)
	}
	return d, nil
}

// Update actualiza un registro de verificación.
func (r *InventoryDetailRepo) Update(d *entity.InventoryDetail) error {
	query := `
		UPDATE inventory_details SET
			found_status = $2, actual_conservation_status = $3,
			actual_location_id = $4, actual_responsible_id = $5,
			observations = $6, physical_differences = $7, document_differences = $8,
			requires_action = $9, required_action = $10, estimated_repair_cost = $11,
			photographs = $12, updated_at = $13
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		d.ID,
		d.FoundStatus, d.ActualConservationStatus,
		d.ActualLocationID, d.ActualResponsibleID,
		d.Observations, d.PhysicalDifferences, d.DocumentDifferences,
		d.RequiresAction, d.RequiredAction, d.EstimatedRepairCost,
		d.Photographs, d.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update inventory detail: %w", err)
	}
	return nil
}

// Delete elimina un registro de verificación.
func (r *InventoryDetailRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM inventory_details WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete inventory detail: %w", err)
	}
	return nil
}

// ListByInventory lista los registros de una campaña con paginación.
func (r *InventoryDetailRepo) ListByInventory(inventoryID string, limit, offset int) ([]*entity.InventoryDetail, error) {
	query := `SELECT ` + detailColumns + `
		FROM inventory_details WHERE inventory_id = $1
		ORDER BY created_at ASC LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(context.Background(), query, inventoryID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list inventory details: %w", err)
	}
	defer rows.Close()

	var list []*entity.InventoryDetail
	for rows.Next() {
		d, err := scanDetail(rows)
		if err != nil {
			return nil, fmt.Errorf("scan inventory detail: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

func scanDetail(row pgx.Row) (*entity.InventoryDetail, error) {
	var d entity.InventoryDetail
	err := row.Scan(
		&d.ID, &d.InventoryID, &d.AssetID,
		&d.FoundStatus, &d.ActualConservationStatus,
		&d.ActualLocationID, &d.ActualResponsibleID,
		&d.VerifiedBy, &d.VerificationDate,
		&d.Observations, &d.PhysicalDifferences, &d.DocumentDifferences,
		&d.RequiresAction, &d.RequiredAction, &d.EstimatedRepairCost,
		&d.Photographs, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
