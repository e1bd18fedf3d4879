// Package calculations provides the PostgreSQL-backed repository for
// per-user calculation records.
package calculations

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dberestov/webcalc/internal/common"
	"github.com/dberestov/webcalc/internal/dbx"
	"github.com/dberestov/webcalc/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Insert(ctx context.Context, calc *models.Calculation) error {
	query :=
		`INSERT INTO calculations (id, user_id, a, b, operation, result)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		calc.ID, calc.UserID, calc.A, calc.B, calc.Operation, calc.Result).
		Scan(&calc.CreatedAt, &calc.UpdatedAt)

	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID string, offset, limit int) ([]*models.Calculation, error) {
	query :=
		`SELECT id, user_id, a, b, operation, result, created_at, updated_at FROM calculations
		 WHERE user_id = $1
		 ORDER BY created_at
		 OFFSET $2 LIMIT $3
		 `

	rows, err := r.db.QueryContext(ctx, query, ownerID, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Calculation
	for rows.Next() {
		var item models.Calculation
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.A, &item.B, &item.Operation, &item.Result,
			&item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id, ownerID string) (*models.Calculation, error) {
	query :=
		`SELECT id, user_id, a, b, operation, result, created_at, updated_at FROM calculations
		 WHERE id = $1 AND user_id = $2
		 `

	calc := &models.Calculation{}
	err := r.db.QueryRowContext(ctx, query, id, ownerID).Scan(
		&calc.ID, &calc.UserID, &calc.A, &calc.B, &calc.Operation, &calc.Result,
		&calc.CreatedAt, &calc.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return calc, nil
}

func (r *PostgresRepository) Update(ctx context.Context, calc *models.Calculation) error {
	query :=
		`UPDATE calculations SET a = $3, b = $4, operation = $5, result = $6, updated_at = now()
		 WHERE id = $1 AND user_id = $2
		 `

	res, err := r.db.ExecContext(ctx, query,
		calc.ID, calc.UserID, calc.A, calc.B, calc.Operation, calc.Result)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return requireOneRow(res)
}

func (r *PostgresRepository) Delete(ctx context.Context, id, ownerID string) error {
	query :=
		`DELETE FROM calculations
		 WHERE id = $1 AND user_id = $2
		 `

	res, err := r.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return requireOneRow(res)
}

func requireOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
