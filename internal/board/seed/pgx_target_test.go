package seed

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Postgres(t *testing.T) {
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	defer pool.Close()

	f, err := Default()
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		res, err := Run(ctx, pool, f)
		require.NoError(t, err)
		assert.Equal(t, Result{Columns: 5, Leads: 10}, res)
	}

	var columns, leads, maxColumnID int
	require.NoError(t, pool.QueryRow(ctx, `SELECT count(*), max(id) FROM columns`).Scan(&columns, &maxColumnID))
	require.NoError(t, pool.QueryRow(ctx, `SELECT count(*) FROM leads`).Scan(&leads))
	assert.Equal(t, 5, columns)
	assert.Equal(t, 5, maxColumnID)
	assert.Equal(t, 10, leads)

	var perFirst int
	require.NoError(t, pool.QueryRow(ctx, `SELECT count(*) FROM leads WHERE column_id = 1`).Scan(&perFirst))
	assert.Equal(t, 5, perFirst)
}
