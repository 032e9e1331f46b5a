package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alcaldia-digital/patrimonio-api/internal/domain/entity"
	"github.com/alcaldia-digital/patrimonio-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del puerto MovementRepository sobre PostgreSQL.
type MovementRepo struct {
	pool *pgxpool.Pool
}

// NewMovementRepository construye el adaptador de persistencia para movimientos.
func NewMovementRepository(pool *pgxpool.Pool) *MovementRepo {
	return &MovementRepo{pool: pool}
}

const movementColumns = `
	id, municipality_id, movement_number, movement_type, movement_subtype, asset_id,
	origin_responsible_id, destination_responsible_id,
	origin_area_id, destination_area_id,
	origin_location_id, destination_location_id,
	reason, observations, special_conditions,
	supporting_document_number, supporting_document_type, attached_documents,
	movement_status, requires_approval, requesting_user, executing_user, approved_by,
	request_date, approval_date, execution_date, reception_date,
	active, deleted_at, deleted_by, created_at, updated_at`

// Create persiste un movimiento nuevo asignando el consecutivo del número de
// movimiento dentro de una transacción. El cliente nunca envía el número.
func (r *MovementRepo) Create(m *entity.AssetMovement) error {
	ctx := context.Background()
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	year := time.Now().Year()
	var seq int
	err = tx.QueryRow(ctx, `
		INSERT INTO number_sequences (kind, municipality_id, year, last_value)
		VALUES ('movement', $1, $2, 1)
		ON CONFLICT (kind, municipality_id, year)
		DO UPDATE SET last_value = number_sequences.last_value + 1
		RETURNING last_value`, m.MunicipalityID, year).Scan(&seq)
	if err != nil {
		return fmt.Errorf("next movement number: %w", err)
	}
	m.MovementNumber = fmt.Sprintf("MOV-%d-%06d", year, seq)

	query := `
		INSERT INTO asset_movements (` + movementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
		        $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30, $31, $32)`
	_, err = tx.Exec(ctx, query,
		m.ID, m.MunicipalityID, m.MovementNumber, m.MovementType, m.MovementSubtype, m.AssetID,
		m.OriginResponsibleID, m.DestinationResponsibleID,
		m.OriginAreaID, m.DestinationAreaID,
		m.OriginLocationID, m.DestinationLocationID,
		m.Reason, m.Observations, m.SpecialConditions,
		m.SupportingDocumentNumber, m.SupportingDocumentType, m.AttachedDocuments,
		m.MovementStatus, m.RequiresApproval, m.RequestingUser, m.ExecutingUser, m.ApprovedBy,
		m.RequestDate, m.ApprovalDate, m.ExecutionDate, m.ReceptionDate,
		m.Active, m.DeletedAt, m.DeletedBy, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID dentro del municipio, borrados incluidos.
func (r *MovementRepo) GetByID(municipalityID, id string) (*entity.AssetMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM asset_movements WHERE municipality_id = $1 AND id = $2`
	row := r.pool.QueryRow(context.Background(), query, municipalityID, id)
	m, err := scanMovement(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return m, nil
}

// Update actualiza los campos editables; número, estado y auditoría de borrado
// no se tocan por esta vía.
func (r *MovementRepo) Update(m *entity.AssetMovement) error {
	query := `
		UPDATE asset_movements SET
			movement_subtype = $3,
			origin_responsible_id = $4, destination_responsible_id = $5,
			origin_area_id = $6, destination_area_id = $7,
			origin_location_id = $8, destination_location_id = $9,
			reason = $10, observations = $11, special_conditions = $12,
			supporting_document_number = $13, supporting_document_type = $14,
			attached_documents = $15, updated_at = $16
		WHERE municipality_id = $1 AND id = $2`
	cmd, err := r.pool.Exec(context.Background(), query,
		m.MunicipalityID, m.ID,
		m.MovementSubtype,
		m.OriginResponsibleID, m.DestinationResponsibleID,
		m.OriginAreaID, m.DestinationAreaID,
		m.OriginLocationID, m.DestinationLocationID,
		m.Reason, m.Observations, m.SpecialConditions,
		m.SupportingDocumentNumber, m.SupportingDocumentType,
		m.AttachedDocuments, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update movement: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// UpdateStatus persiste una transición de estado con sus campos de workflow.
func (r *MovementRepo) UpdateStatus(m *entity.AssetMovement) error {
	query := `
		UPDATE asset_movements SET
			movement_status = $3, observations = $4,
			executing_user = $5, approved_by = $6,
			approval_date = $7, execution_date = $8, reception_date = $9,
			updated_at = $10
		WHERE municipality_id = $1 AND id = $2`
	_, err := r.pool.Exec(context.Background(), query,
		m.MunicipalityID, m.ID,
		m.MovementStatus, m.Observations,
		m.ExecutingUser, m.ApprovedBy,
		m.ApprovalDate, m.ExecutionDate, m.ReceptionDate,
		m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update movement status: %w", err)
	}
	return nil
}

// List lista movimientos según el filtro con paginación, más recientes primero.
func (r *MovementRepo) List(municipalityID string, f repository.MovementFilter, limit, offset int) ([]*entity.AssetMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM asset_movements WHERE municipality_id = $1`
	args := []any{municipalityID}

	query, args = applyMovementFilter(query, args, f)
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	var list []*entity.AssetMovement
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// ListByAsset devuelve el historial completo (activo) de un bien, sin paginar:
// lo consumen la inferencia de origen y la línea de tiempo.
func (r *MovementRepo) ListByAsset(municipalityID, assetID string) ([]*entity.AssetMovement, error) {
	query := `SELECT ` + movementColumns + `
		FROM asset_movements
		WHERE municipality_id = $1 AND asset_id = $2 AND active = TRUE
		ORDER BY created_at ASC`
	rows, err := r.pool.Query(context.Background(), query, municipalityID, assetID)
	if err != nil {
		return nil, fmt.Errorf("list movements by asset: %w", err)
	}
	defer rows.Close()

	var list []*entity.AssetMovement
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// Count cuenta movimientos según el filtro.
func (r *MovementRepo) Count(municipalityID string, f repository.MovementFilter) (int, error) {
	query := `SELECT COUNT(*) FROM asset_movements WHERE municipality_id = $1`
	args := []any{municipalityID}
	query, args = applyMovementFilter(query, args, f)

	var n int
	if err := r.pool.QueryRow(context.Background(), query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count movements: %w", err)
	}
	return n, nil
}

// SoftDelete marca el movimiento como inactivo conservando el registro.
func (r *MovementRepo) SoftDelete(m *entity.AssetMovement) error {
	query := `
		UPDATE asset_movements SET active = FALSE, deleted_at = $3, deleted_by = $4, updated_at = $5
		WHERE municipality_id = $1 AND id = $2`
	_, err := r.pool.Exec(context.Background(), query,
		m.MunicipalityID, m.ID, m.DeletedAt, m.DeletedBy, m.UpdatedAt)
	if err != nil {
		return fmt.Errorf("soft delete movement: %w", err)
	}
	return nil
}

// Restore revierte el borrado lógico.
func (r *MovementRepo) Restore(m *entity.AssetMovement) error {
	query := `
		UPDATE asset_movements SET active = TRUE, deleted_at = NULL, deleted_by = '', updated_at = $3
		WHERE municipality_id = $1 AND id = $2`
	_, err := r.pool.Exec(context.Background(), query, m.MunicipalityID, m.ID, m.UpdatedAt)
	if err != nil {
		return fmt.Errorf("restore movement: %w", err)
	}
	return nil
}

func applyMovementFilter(query string, args []any, f repository.MovementFilter) (string, []any) {
	switch {
	case f.OnlyDeleted:
		query += " AND active = FALSE"
	case !f.IncludeDeleted:
		query += " AND active = TRUE"
	}
	if f.AssetID != "" {
		args = append(args, f.AssetID)
		query += fmt.Sprintf(" AND asset_id = $%d", len(args))
	}
	if f.MovementType != "" {
		args = append(args, f.MovementType)
		query += fmt.Sprintf(" AND movement_type = $%d", len(args))
	}
	if f.MovementStatus != "" {
		args = append(args, f.MovementStatus)
		query += fmt.Sprintf(" AND movement_status = $%d", len(args))
	}
	return query, args
}

func scanMovement(row pgx.Row) (*entity.AssetMovement, error) {
	var m entity.AssetMovement
	err := row.Scan(
		&m.ID, &m.MunicipalityID, &m.MovementNumber, &m.MovementType, &m.MovementSubtype, &m.AssetID,
		&m.OriginResponsibleID, &m.DestinationResponsibleID,
		&m.OriginAreaID, &m.DestinationAreaID,
		&m.OriginLocationID, &m.DestinationLocationID,
		&m.Reason, &m.Observations, &m.SpecialConditions,
		&m.SupportingDocumentNumber, &m.SupportingDocumentType, &m.AttachedDocuments,
		&m.MovementStatus, &m.RequiresApproval, &m.RequestingUser, &m.ExecutingUser, &m.ApprovedBy,
		&m.RequestDate, &m.ApprovalDate, &m.ExecutionDate, &m.ReceptionDate,
		&m.Active, &m.DeletedAt, &m.DeletedBy, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
