package domain

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrColumnNotExists  = errors.New("column does not exist")
	ErrColumnHasLeads   = errors.New("column has leads")
	ErrNameRequired     = errors.New("name is required")
	ErrCompanyRequired  = errors.New("company_name is required")
	ErrColumnIDRequired = errors.New("column_id is required")
)
