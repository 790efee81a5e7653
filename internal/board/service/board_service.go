package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/GoSim-25-26J-441/leadboard-backend/internal/board/domain"
	"github.com/GoSim-25-26J-441/leadboard-backend/internal/events"
)

// ColumnRepository is the column persistence the service depends on.
type ColumnRepository interface {
	Create(ctx context.Context, name string) (*domain.Column, error)
	List(ctx context.Context) ([]domain.Column, error)
	Get(ctx context.Context, id int64) (*domain.Column, error)
	Update(ctx context.Context, id int64, name string) (*domain.Column, error)
	Delete(ctx context.Context, id int64) error
}

// LeadRepository is the lead persistence the service depends on.
type LeadRepository interface {
	Create(ctx context.Context, in domain.LeadInput) (*domain.Lead, error)
	List(ctx context.Context) ([]domain.Lead, error)
	ListByColumns(ctx context.Context, columnIDs []int64) ([]domain.Lead, error)
	Get(ctx context.Context, id int64) (*domain.Lead, error)
	Update(ctx context.Context, l domain.Lead) (*domain.Lead, error)
	Delete(ctx context.Context, id int64) error
}

// BoardService handles column and lead operations
type BoardService struct {
	columns   ColumnRepository
	leads     LeadRepository
	publisher events.Publisher
	logger    *slog.Logger
	now       func() time.Time
}

// NewBoardService creates a new BoardService. A nil publisher disables
// change events.
func NewBoardService(columns ColumnRepository, leads LeadRepository, publisher events.Publisher) *BoardService {
	if publisher == nil {
		publisher = events.Nop{}
	}
	return &BoardService{
		columns:   columns,
		leads:     leads,
		publisher: publisher,
		logger:    slog.Default().With("component", "board"),
		now:       time.Now,
	}
}

// CreateColumn creates an empty column.
func (s *BoardService) CreateColumn(ctx context.Context, name string) (*domain.Column, error) {
	c, err := s.columns.Create(ctx, name)
	if err != nil {
		return nil, err
	}
	c.Leads = []domain.Lead{}
	s.publish(ctx, events.ColumnCreated, c.ID)
	return c, nil
}

// ListColumnsWithLeads returns every column with its leads attached. Leads
// are fetched with one extra query regardless of the number of columns.
func (s *BoardService) ListColumnsWithLeads(ctx context.Context) ([]domain.Column, error) {
	cols, err := s.columns.List(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.attachLeads(ctx, cols); err != nil {
		return nil, err
	}
	return cols, nil
}

// GetColumn returns a column without its leads.
func (s *BoardService) GetColumn(ctx context.Context, id int64) (*domain.Column, error) {
	return s.columns.Get(ctx, id)
}

// GetColumnWithLeads returns a column and its leads.
func (s *BoardService) GetColumnWithLeads(ctx context.Context, id int64) (*domain.Column, error) {
	c, err := s.columns.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	cols := []domain.Column{*c}
	if err := s.attachLeads(ctx, cols); err != nil {
		return nil, err
	}
	return &cols[0], nil
}

// RenameColumn renames a column and returns it with its leads.
func (s *BoardService) RenameColumn(ctx context.Context, id int64, name string) (*domain.Column, error) {
	c, err := s.columns.Update(ctx, id, name)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, events.ColumnUpdated, c.ID)

	cols := []domain.Column{*c}
	if err := s.attachLeads(ctx, cols); err != nil {
		return nil, err
	}
	return &cols[0], nil
}

// DeleteColumn removes a column. Columns with leads are rejected with
// domain.ErrColumnHasLeads.
func (s *BoardService) DeleteColumn(ctx context.Context, id int64) error {
	if err := s.columns.Delete(ctx, id); err != nil {
		return err
	}
	s.publish(ctx, events.ColumnDeleted, id)
	return nil
}

// CreateLead creates a lead. The column reference is checked by storage.
func (s *BoardService) CreateLead(ctx context.Context, in domain.LeadInput) (*domain.Lead, error) {
	l, err := s.leads.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, events.LeadCreated, l.ID)
	return l, nil
}

// ListLeads returns every lead.
func (s *BoardService) ListLeads(ctx context.Context) ([]domain.Lead, error) {
	return s.leads.List(ctx)
}

// GetLead returns a single lead.
func (s *BoardService) GetLead(ctx context.Context, id int64) (*domain.Lead, error) {
	return s.leads.Get(ctx, id)
}

// UpdateLead replaces a lead. Description and owner keep their stored
// values when not supplied. The read and the write are not isolated from
// concurrent writers; the last write wins.
func (s *BoardService) UpdateLead(ctx context.Context, id int64, in domain.LeadInput) (*domain.Lead, error) {
	current, err := s.leads.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	next := domain.Lead{
		ID:          id,
		CompanyName: in.CompanyName,
		Description: current.Description,
		LeadOwner:   current.LeadOwner,
		ColumnID:    in.ColumnID,
	}
	if in.Description != nil {
		next.Description = *in.Description
	}
	if in.LeadOwner != nil {
		next.LeadOwner = *in.LeadOwner
	}

	l, err := s.leads.Update(ctx, next)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, events.LeadUpdated, l.ID)
	return l, nil
}

// DeleteLead removes a lead.
func (s *BoardService) DeleteLead(ctx context.Context, id int64) error {
	if err := s.leads.Delete(ctx, id); err != nil {
		return err
	}
	s.publish(ctx, events.LeadDeleted, id)
	return nil
}

func (s *BoardService) attachLeads(ctx context.Context, cols []domain.Column) error {
	ids := make([]int64, 0, len(cols))
	index := make(map[int64]int, len(cols))
	for i := range cols {
		cols[i].Leads = []domain.Lead{}
		ids = append(ids, cols[i].ID)
		index[cols[i].ID] = i
	}

	leads, err := s.leads.ListByColumns(ctx, ids)
	if err != nil {
		return err
	}
	for _, l := range leads {
		if i, ok := index[l.ColumnID]; ok {
			cols[i].Leads = append(cols[i].Leads, l)
		}
	}
	return nil
}

// publish never fails the caller: the write is already committed.
func (s *BoardService) publish(ctx context.Context, eventType string, id int64) {
	err := s.publisher.Publish(ctx, events.Event{Type: eventType, ID: id, At: s.now().UTC()})
	if err != nil {
		s.logger.WarnContext(ctx, "board event not published", "type", eventType, "id", id, "error", err)
	}
}
