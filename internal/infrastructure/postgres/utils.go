package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// nextSequence incrementa y devuelve el consecutivo por (kind, municipio, año).
// Upsert atómico: seguro ante creaciones concurrentes.
func nextSequence(ctx context.Context, pool *pgxpool.Pool, kind, municipalityID string, year int) (int, error) {
	query := `
		INSERT INTO number_sequences (kind, municipality_id, year, last_value)
		VALUES ($1, $2, $3, 1)
		ON CONFLICT (kind, municipality_id, year)
		DO UPDATE SET last_value = number_sequences.last_value + 1
		RETURNING last_value`
	var n int
	if err := pool.QueryRow(ctx, query, kind, municipalityID, year).Scan(&n); err != nil {
		return 0, fmt.Errorf("next sequence %s: %w", kind, err)
	}
	return n, nil
}
