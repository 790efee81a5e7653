package seed

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoSim-25-26J-441/leadboard-backend/internal/board/domain"
	"github.com/GoSim-25-26J-441/leadboard-backend/internal/board/repository"
)

// memoryTarget writes a fixture through the in-memory board store.
type memoryTarget struct {
	mem *repository.Memory
}

func (t memoryTarget) Reset(ctx context.Context) error { return t.mem.Reset(ctx) }

func (t memoryTarget) InsertColumn(ctx context.Context, name string) (int64, error) {
	c, err := t.mem.Columns().Create(ctx, name)
	if err != nil {
		return 0, err
	}
	return c.ID, nil
}

func (t memoryTarget) InsertLead(ctx context.Context, l domain.Lead) (int64, error) {
	created, err := t.mem.Leads().Create(ctx, domain.LeadInput{
		CompanyName: l.CompanyName,
		Description: &l.Description,
		LeadOwner:   &l.LeadOwner,
		ColumnID:    l.ColumnID,
	})
	if err != nil {
		return 0, err
	}
	return created.ID, nil
}

func TestDefault_Shape(t *testing.T) {
	f, err := Default()
	require.NoError(t, err)

	assert.Equal(t, []string{"Lead Signals", "Responding", "Responded", "Interested", "Demo"}, f.Columns)
	require.Len(t, f.Leads, 10)

	perColumn := map[string]int{}
	for _, l := range f.Leads {
		perColumn[l.Column]++
	}
	assert.Equal(t, map[string]int{"Lead Signals": 5, "Responding": 3, "Responded": 1, "Interested": 1}, perColumn)

	assert.Equal(t, "Company A", f.Leads[0].CompanyName)
	assert.Equal(t, "Lead for Company A", f.Leads[0].Description)
	assert.Equal(t, "Owner 1", f.Leads[0].LeadOwner)
	assert.Equal(t, "Company J", f.Leads[9].CompanyName)
	assert.Equal(t, "Owner 10", f.Leads[9].LeadOwner)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not yaml", "columns: [unterminated"},
		{"unknown column", "columns: [A]\nleads:\n  - company_name: X\n    column: B\n"},
		{"missing company", "columns: [A]\nleads:\n  - column: A\n"},
		{"duplicate column", "columns: [A, A]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestApply_ResetsAndIsRepeatable(t *testing.T) {
	ctx := context.Background()
	mem := repository.NewMemory()
	target := memoryTarget{mem: mem}

	f, err := Default()
	require.NoError(t, err)

	_, err = mem.Columns().Create(ctx, "Leftover")
	require.NoError(t, err)

	snapshot := func() ([]domain.Column, []domain.Lead) {
		cols, err := mem.Columns().List(ctx)
		require.NoError(t, err)
		leads, err := mem.Leads().List(ctx)
		require.NoError(t, err)
		return cols, leads
	}

	res, err := Apply(ctx, target, f)
	require.NoError(t, err)
	assert.Equal(t, Result{Columns: 5, Leads: 10}, res)
	firstCols, firstLeads := snapshot()

	_, err = Apply(ctx, target, f)
	require.NoError(t, err)
	secondCols, secondLeads := snapshot()

	assert.Equal(t, firstCols, secondCols)
	assert.Equal(t, firstLeads, secondLeads)

	require.Len(t, firstCols, 5)
	assert.Equal(t, int64(1), firstCols[0].ID)
	assert.Equal(t, "Lead Signals", firstCols[0].Name)
	require.Len(t, firstLeads, 10)
	assert.Equal(t, int64(1), firstLeads[0].ID)
	assert.Equal(t, firstCols[3].ID, firstLeads[9].ColumnID)
}

type failingTarget struct {
	memoryTarget
	failOn string
}

func (t failingTarget) InsertLead(ctx context.Context, l domain.Lead) (int64, error) {
	if l.CompanyName == t.failOn {
		return 0, errors.New("boom")
	}
	return t.memoryTarget.InsertLead(ctx, l)
}

func TestApply_StopsOnError(t *testing.T) {
	f, err := Default()
	require.NoError(t, err)

	target := failingTarget{memoryTarget: memoryTarget{mem: repository.NewMemory()}, failOn: "Company C"}
	_, err = Apply(context.Background(), target, f)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Company C")
}
