package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/GoSim-25-26J-441/leadboard-backend/internal/board/domain"
)

var leadColumns = []string{"id", "company_name", "description", "lead_owner", "column_id"}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// LeadRepository provides persistence operations for leads.
type LeadRepository struct {
	db *sqlx.DB
}

// NewLeadRepository creates a new lead repository
func NewLeadRepository(db *sqlx.DB) *LeadRepository {
	return &LeadRepository{db: db}
}

// Create inserts a lead. Missing optional fields are stored as empty strings.
func (r *LeadRepository) Create(ctx context.Context, in domain.LeadInput) (*domain.Lead, error) {
	const q = `
INSERT INTO leads (company_name, description, lead_owner, column_id)
VALUES ($1, $2, $3, $4)
RETURNING id, company_name, description, lead_owner, column_id;
`
	var l domain.Lead
	err := r.db.GetContext(ctx, &l, q, in.CompanyName, deref(in.Description), deref(in.LeadOwner), in.ColumnID)
	if err != nil {
		if isForeignKeyViolation(err) || isOutOfRange(err) {
			return nil, domain.ErrColumnNotExists
		}
		return nil, fmt.Errorf("create lead: %w", err)
	}
	return &l, nil
}

// List returns every lead ordered by id.
func (r *LeadRepository) List(ctx context.Context) ([]domain.Lead, error) {
	query, args, err := psql.Select(leadColumns...).From("leads").OrderBy("id").ToSql()
	if err != nil {
		return nil, err
	}
	out := make([]domain.Lead, 0, 16)
	if err := r.db.SelectContext(ctx, &out, query, args...); err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	return out, nil
}

// ListByColumns returns the leads of the given columns in insertion order
// using a single IN query.
func (r *LeadRepository) ListByColumns(ctx context.Context, columnIDs []int64) ([]domain.Lead, error) {
	out := make([]domain.Lead, 0, 16)
	if len(columnIDs) == 0 {
		return out, nil
	}

	query, args, err := psql.Select(leadColumns...).
		From("leads").
		Where(sq.Eq{"column_id": columnIDs}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}
	if err := r.db.SelectContext(ctx, &out, query, args...); err != nil {
		return nil, fmt.Errorf("list leads by column: %w", err)
	}
	return out, nil
}

// Get returns a single lead.
func (r *LeadRepository) Get(ctx context.Context, id int64) (*domain.Lead, error) {
	query, args, err := psql.Select(leadColumns...).From("leads").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, err
	}
	var l domain.Lead
	if err := r.db.GetContext(ctx, &l, query, args...); err != nil {
		return nil, notFound(err)
	}
	return &l, nil
}

// Update replaces every writable field of the lead.
func (r *LeadRepository) Update(ctx context.Context, l domain.Lead) (*domain.Lead, error) {
	query, args, err := psql.Update("leads").
		Set("company_name", l.CompanyName).
		Set("description", l.Description).
		Set("lead_owner", l.LeadOwner).
		Set("column_id", l.ColumnID).
		Where(sq.Eq{"id": l.ID}).
		Suffix("RETURNING id, company_name, description, lead_owner, column_id").
		ToSql()
	if err != nil {
		return nil, err
	}

	var out domain.Lead
	if err := r.db.GetContext(ctx, &out, query, args...); err != nil {
		// The lead id was resolved by the caller, so a range error can only
		// come from column_id.
		if isForeignKeyViolation(err) || isOutOfRange(err) {
			return nil, domain.ErrColumnNotExists
		}
		return nil, notFound(err)
	}
	return &out, nil
}

// Delete removes a lead.
func (r *LeadRepository) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM leads WHERE id = $1;`

	result, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		if isOutOfRange(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete lead: %w", err)
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

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
