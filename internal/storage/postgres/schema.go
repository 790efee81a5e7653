package postgres

// DropSchema removes both board tables. leads goes first because of the
// foreign key.
const DropSchema = `
DROP TABLE IF EXISTS leads;
DROP TABLE IF EXISTS columns;
`

// CreateSchema creates the board tables. Keys are BIGINT so every positive
// int64 id is a valid lookup. Deleting a column that still has leads is
// rejected by the RESTRICT rule.
const CreateSchema = `
CREATE TABLE columns (
	id   BIGSERIAL PRIMARY KEY,
	name VARCHAR(50) NOT NULL
);

CREATE TABLE leads (
	id           BIGSERIAL PRIMARY KEY,
	company_name VARCHAR(100) NOT NULL,
	description  VARCHAR(200) NOT NULL DEFAULT '',
	lead_owner   VARCHAR(100) NOT NULL DEFAULT '',
	column_id    BIGINT NOT NULL REFERENCES columns (id) ON DELETE RESTRICT
);

CREATE INDEX leads_column_id_idx ON leads (column_id);
`
