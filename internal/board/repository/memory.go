package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/GoSim-25-26J-441/leadboard-backend/internal/board/domain"
)

// Memory is an in-process board store with the same contract as the
// Postgres repositories, including the column foreign-key rules. Used by
// tests that exercise the service and HTTP layers without a database.
type Memory struct {
	mu           sync.Mutex
	columns      map[int64]domain.Column
	leads        map[int64]domain.Lead
	nextColumnID int64
	nextLeadID   int64
}

func NewMemory() *Memory {
	m := &Memory{}
	m.reset()
	return m
}

// Reset drops every row and restarts id generation, like recreating the
// tables does.
func (m *Memory) Reset(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reset()
	return nil
}

func (m *Memory) reset() {
	m.columns = make(map[int64]domain.Column)
	m.leads = make(map[int64]domain.Lead)
	m.nextColumnID = 1
	m.nextLeadID = 1
}

// Columns returns the column view of the store.
func (m *Memory) Columns() *MemoryColumns { return &MemoryColumns{m: m} }

// Leads returns the lead view of the store.
func (m *Memory) Leads() *MemoryLeads { return &MemoryLeads{m: m} }

type MemoryColumns struct{ m *Memory }

func (r *MemoryColumns) Create(_ context.Context, name string) (*domain.Column, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	c := domain.Column{ID: r.m.nextColumnID, Name: name}
	r.m.nextColumnID++
	r.m.columns[c.ID] = c
	return &c, nil
}

func (r *MemoryColumns) List(_ context.Context) ([]domain.Column, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	out := make([]domain.Column, 0, len(r.m.columns))
	for _, c := range r.m.columns {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *MemoryColumns) Get(_ context.Context, id int64) (*domain.Column, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	c, ok := r.m.columns[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &c, nil
}

func (r *MemoryColumns) Update(_ context.Context, id int64, name string) (*domain.Column, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	c, ok := r.m.columns[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	c.Name = name
	r.m.columns[id] = c
	return &c, nil
}

func (r *MemoryColumns) Delete(_ context.Context, id int64) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	if _, ok := r.m.columns[id]; !ok {
		return domain.ErrNotFound
	}
	for _, l := range r.m.leads {
		if l.ColumnID == id {
			return domain.ErrColumnHasLeads
		}
	}
	delete(r.m.columns, id)
	return nil
}

type MemoryLeads struct{ m *Memory }

func (r *MemoryLeads) Create(_ context.Context, in domain.LeadInput) (*domain.Lead, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	if _, ok := r.m.columns[in.ColumnID]; !ok {
		return nil, domain.ErrColumnNotExists
	}
	l := domain.Lead{
		ID:          r.m.nextLeadID,
		CompanyName: in.CompanyName,
		Description: deref(in.Description),
		LeadOwner:   deref(in.LeadOwner),
		ColumnID:    in.ColumnID,
	}
	r.m.nextLeadID++
	r.m.leads[l.ID] = l
	return &l, nil
}

func (r *MemoryLeads) List(_ context.Context) ([]domain.Lead, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	return r.m.sortedLeads(func(domain.Lead) bool { return true }), nil
}

func (r *MemoryLeads) ListByColumns(_ context.Context, columnIDs []int64) ([]domain.Lead, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	wanted := make(map[int64]struct{}, len(columnIDs))
	for _, id := range columnIDs {
		wanted[id] = struct{}{}
	}
	return r.m.sortedLeads(func(l domain.Lead) bool {
		_, ok := wanted[l.ColumnID]
		return ok
	}), nil
}

func (r *MemoryLeads) Get(_ context.Context, id int64) (*domain.Lead, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	l, ok := r.m.leads[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &l, nil
}

func (r *MemoryLeads) Update(_ context.Context, l domain.Lead) (*domain.Lead, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	if _, ok := r.m.leads[l.ID]; !ok {
		return nil, domain.ErrNotFound
	}
	if _, ok := r.m.columns[l.ColumnID]; !ok {
		return nil, domain.ErrColumnNotExists
	}
	r.m.leads[l.ID] = l
	return &l, nil
}

func (r *MemoryLeads) Delete(_ context.Context, id int64) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	if _, ok := r.m.leads[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.m.leads, id)
	return nil
}

// sortedLeads must be called with mu held.
func (m *Memory) sortedLeads(keep func(domain.Lead) bool) []domain.Lead {
	out := make([]domain.Lead, 0, len(m.leads))
	for _, l := range m.leads {
		if keep(l) {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
