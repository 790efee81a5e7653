package http

import "github.com/GoSim-25-26J-441/leadboard-backend/internal/board/domain"

type columnReq struct {
	Name *string `json:"name"`
}

// leadReq fields are pointers so absent keys can be told apart. An explicit
// JSON null decodes the same as an absent key.
type leadReq struct {
	CompanyName *string `json:"company_name"`
	Description *string `json:"description"`
	LeadOwner   *string `json:"lead_owner"`
	ColumnID    *int64  `json:"column_id"`
}

// ColumnResponse is the wire form of a column. Leads is never null.
type ColumnResponse struct {
	ID    int64          `json:"id"`
	Name  string         `json:"name"`
	Leads []LeadResponse `json:"leads"`
}

// LeadResponse is the wire form of a lead. It carries the parent column id
// only, never the column itself.
type LeadResponse struct {
	ID          int64  `json:"id"`
	CompanyName string `json:"company_name"`
	Description string `json:"description"`
	LeadOwner   string `json:"lead_owner"`
	ColumnID    int64  `json:"column_id"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func toLeadResponse(l domain.Lead) LeadResponse {
	return LeadResponse{
		ID:          l.ID,
		CompanyName: l.CompanyName,
		Description: l.Description,
		LeadOwner:   l.LeadOwner,
		ColumnID:    l.ColumnID,
	}
}

func toLeadResponses(leads []domain.Lead) []LeadResponse {
	out := make([]LeadResponse, 0, len(leads))
	for _, l := range leads {
		out = append(out, toLeadResponse(l))
	}
	return out
}

func toColumnResponse(c domain.Column) ColumnResponse {
	return ColumnResponse{
		ID:    c.ID,
		Name:  c.Name,
		Leads: toLeadResponses(c.Leads),
	}
}

func toColumnResponses(cols []domain.Column) []ColumnResponse {
	out := make([]ColumnResponse, 0, len(cols))
	for _, c := range cols {
		out = append(out, toColumnResponse(c))
	}
	return out
}

// input validates presence of the required lead fields.
func (r leadReq) input() (domain.LeadInput, error) {
	if r.CompanyName == nil {
		return domain.LeadInput{}, domain.ErrCompanyRequired
	}
	if r.ColumnID == nil {
		return domain.LeadInput{}, domain.ErrColumnIDRequired
	}
	return domain.LeadInput{
		CompanyName: *r.CompanyName,
		Description: r.Description,
		LeadOwner:   r.LeadOwner,
		ColumnID:    *r.ColumnID,
	}, nil
}
