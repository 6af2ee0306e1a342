package database

import (
	"fmt"

	"gorm.io/gorm"
)

// AddSearchColumns provisions the Postgres full-text search machinery on the
// contracts table: a stored tsvector column generated from the contract text
// and a GIN index over it. Skipped entirely on non-Postgres dialects (tests
// run on sqlite, which has no tsvector).
func AddSearchColumns(db *gorm.DB) error {
	if db.Dialector.Name() != "postgres" {
		return nil
	}

	err := db.Exec(`
		ALTER TABLE contracts
		ADD COLUMN IF NOT EXISTS tsv tsvector
		GENERATED ALWAYS AS (to_tsvector('english', coalesce(text, ''))) STORED
	`).Error
	if err != nil {
		return fmt.Errorf("failed to add tsv column: %w", err)
	}

	if err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_contracts_tsv ON contracts USING GIN (tsv)`).Error; err != nil {
		return fmt.Errorf("failed to create tsv index: %w", err)
	}

	return nil
}
