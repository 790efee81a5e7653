// Package seed rebuilds the board schema and loads the demo fixture.
package seed

import (
	"context"
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/GoSim-25-26J-441/leadboard-backend/internal/board/domain"
)

//go:embed seed.yaml
var defaultFixture []byte

type Fixture struct {
	Columns []string      `yaml:"columns"`
	Leads   []FixtureLead `yaml:"leads"`
}

// FixtureLead refers to its column by name.
type FixtureLead struct {
	CompanyName string `yaml:"company_name"`
	Description string `yaml:"description"`
	LeadOwner   string `yaml:"lead_owner"`
	Column      string `yaml:"column"`
}

// Target is the storage a fixture is written to. Reset must leave both
// tables empty with id generation restarted.
type Target interface {
	Reset(ctx context.Context) error
	InsertColumn(ctx context.Context, name string) (int64, error)
	InsertLead(ctx context.Context, l domain.Lead) (int64, error)
}

type Result struct {
	Columns int
	Leads   int
}

// Default returns the built-in demo fixture.
func Default() (*Fixture, error) {
	return Parse(defaultFixture)
}

func Parse(data []byte) (*Fixture, error) {
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture: %w", err)
	}
	if err := f.validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

func (f *Fixture) validate() error {
	names := make(map[string]struct{}, len(f.Columns))
	for _, name := range f.Columns {
		if _, dup := names[name]; dup {
			return fmt.Errorf("fixture: duplicate column %q", name)
		}
		names[name] = struct{}{}
	}
	for i, l := range f.Leads {
		if l.CompanyName == "" {
			return fmt.Errorf("fixture: lead %d has no company_name", i)
		}
		if _, ok := names[l.Column]; !ok {
			return fmt.Errorf("fixture: lead %q references unknown column %q", l.CompanyName, l.Column)
		}
	}
	return nil
}

// Apply resets the target and writes the fixture. Column ids are taken from
// what the target assigns, not from fixture order.
func Apply(ctx context.Context, t Target, f *Fixture) (Result, error) {
	if err := t.Reset(ctx); err != nil {
		return Result{}, fmt.Errorf("reset schema: %w", err)
	}

	ids := make(map[string]int64, len(f.Columns))
	for _, name := range f.Columns {
		id, err := t.InsertColumn(ctx, name)
		if err != nil {
			return Result{}, fmt.Errorf("insert column %q: %w", name, err)
		}
		ids[name] = id
	}

	for _, fl := range f.Leads {
		_, err := t.InsertLead(ctx, domain.Lead{
			CompanyName: fl.CompanyName,
			Description: fl.Description,
			LeadOwner:   fl.LeadOwner,
			ColumnID:    ids[fl.Column],
		})
		if err != nil {
			return Result{}, fmt.Errorf("insert lead %q: %w", fl.CompanyName, err)
		}
	}

	return Result{Columns: len(f.Columns), Leads: len(f.Leads)}, nil
}
