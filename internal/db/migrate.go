package db

import (
	"database/sql"
	"fmt"
)

// migrations holds the catalog schema. Statements are idempotent so the
// full list can be re-run on every startup.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS domains (
		id       TEXT PRIMARY KEY,
		label    TEXT NOT NULL,
		position INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS prestations (
		domain_id  TEXT NOT NULL REFERENCES domains(id) ON DELETE CASCADE,
		id         TEXT NOT NULL,
		label      TEXT NOT NULL,
		definition TEXT NOT NULL,
		tarif      INTEGER NOT NULL CHECK(tarif >= 0),
		position   INTEGER NOT NULL,
		PRIMARY KEY (domain_id, id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_prestations_domain ON prestations(domain_id)`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
