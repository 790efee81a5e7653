package repository

import (
	"context"
	"fmt"

	"github.com/GoSim-25-26J-441/leadboard-backend/internal/board/domain"
	"github.com/jmoiron/sqlx"
)

// ColumnRepository provides persistence operations for board columns.
type ColumnRepository struct {
	db *sqlx.DB
}

// NewColumnRepository creates a new column repository
func NewColumnRepository(db *sqlx.DB) *ColumnRepository {
	return &ColumnRepository{db: db}
}

// Create inserts a column and returns it with its generated id.
func (r *ColumnRepository) Create(ctx context.Context, name string) (*domain.Column, error) {
	const q = `
INSERT INTO columns (name)
VALUES ($1)
RETURNING id, name;
`
	var c domain.Column
	if err := r.db.GetContext(ctx, &c, q, name); err != nil {
		return nil, fmt.Errorf("create column: %w", err)
	}
	return &c, nil
}

// List returns every column ordered by id.
func (r *ColumnRepository) List(ctx context.Context) ([]domain.Column, error) {
	const q = `
SELECT id, name
FROM columns
ORDER BY id;
`
	out := make([]domain.Column, 0, 8)
	if err := r.db.SelectContext(ctx, &out, q); err != nil {
		return nil, fmt.Errorf("list columns: %w", err)
	}
	return out, nil
}

// Get returns a single column without its leads.
func (r *ColumnRepository) Get(ctx context.Context, id int64) (*domain.Column, error) {
	const q = `
SELECT id, name
FROM columns
WHERE id = $1;
`
	var c domain.Column
	if err := r.db.GetContext(ctx, &c, q, id); err != nil {
		return nil, notFound(err)
	}
	return &c, nil
}

// Update renames a column.
func (r *ColumnRepository) Update(ctx context.Context, id int64, name string) (*domain.Column, error) {
	const q = `
UPDATE columns
SET name = $2
WHERE id = $1
RETURNING id, name;
`
	var c domain.Column
	if err := r.db.GetContext(ctx, &c, q, id, name); err != nil {
		return nil, notFound(err)
	}
	return &c, nil
}

// Delete removes a column. Columns that still hold leads are rejected by the
// foreign key and reported as domain.ErrColumnHasLeads.
func (r *ColumnRepository) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM columns WHERE id = $1;`

	result, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrColumnHasLeads
		}
		if isOutOfRange(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete column: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
