package seed

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/GoSim-25-26J-441/leadboard-backend/internal/board/domain"
	"github.com/GoSim-25-26J-441/leadboard-backend/internal/storage/postgres"
)

// Run drops and recreates the board tables and loads f in one transaction.
// Any failure leaves the previous data in place.
func Run(ctx context.Context, pool *pgxpool.Pool, f *Fixture) (Result, error) {
	var res Result
	err := pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		var err error
		res, err = Apply(ctx, &pgxTarget{tx: tx}, f)
		return err
	})
	if err != nil {
		return Result{}, err
	}
	return res, nil
}

type pgxTarget struct {
	tx pgx.Tx
}

func (t *pgxTarget) Reset(ctx context.Context) error {
	if _, err := t.tx.Exec(ctx, postgres.DropSchema); err != nil {
		return err
	}
	_, err := t.tx.Exec(ctx, postgres.CreateSchema)
	return err
}

func (t *pgxTarget) InsertColumn(ctx context.Context, name string) (int64, error) {
	var id int64
	err := t.tx.QueryRow(ctx, `INSERT INTO columns (name) VALUES ($1) RETURNING id`, name).Scan(&id)
	return id, err
}

func (t *pgxTarget) InsertLead(ctx context.Context, l domain.Lead) (int64, error) {
	var id int64
	err := t.tx.QueryRow(ctx, `
INSERT INTO leads (company_name, description, lead_owner, column_id)
VALUES ($1, $2, $3, $4)
RETURNING id`,
		l.CompanyName, l.Description, l.LeadOwner, l.ColumnID,
	).Scan(&id)
	return id, err
}
