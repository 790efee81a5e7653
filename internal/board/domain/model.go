package domain

// Column is a pipeline stage on the board. Leads is only populated by the
// explicit *WithLeads repository calls.
type Column struct {
	ID    int64  `db:"id"`
	Name  string `db:"name"`
	Leads []Lead `db:"-"`
}

// Lead is a prospect card. It always belongs to exactly one column.
type Lead struct {
	ID          int64  `db:"id"`
	CompanyName string `db:"company_name"`
	Description string `db:"description"`
	LeadOwner   string `db:"lead_owner"`
	ColumnID    int64  `db:"column_id"`
}

// LeadInput carries the writable lead fields. Nil optional fields mean
// "not supplied": empty on create, keep the stored value on update.
type LeadInput struct {
	CompanyName string
	Description *string
	LeadOwner   *string
	ColumnID    int64
}
