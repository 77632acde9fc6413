// Package etl defines the contracts between the CLI and the pipeline
// components implemented in internal/io packages.
package etl

import (
	"context"

	"github.com/akash-pandit/CACourses/pkg/config"
)

// SchemaManager defines the interface for database schema management.
// It uses GORM AutoMigrate to handle both initial schema creation and
// migrations. Schema management is idempotent - safe to run multiple
// times.
type SchemaManager interface {
	// Create creates the initial database schema using GORM
	// AutoMigrate.
	Create(ctx context.Context, cfg *config.Config) error

	// Migrate updates the database schema to the latest version using
	// GORM AutoMigrate. GORM handles schema version tracking
	// automatically.
	Migrate(ctx context.Context, cfg *config.Config) error
}

// Fetcher downloads agreement documents from the ASSIST API into the
// local corpus directory.
type Fetcher interface {
	// Fetch downloads prefix- and major-scoped agreements for every
	// institution pair in institutions.yaml, skipping files already
	// present. Missing agreements are normal and logged, not errors.
	Fetch(ctx context.Context) error
}

// Populator runs the ETL over the local corpus: schema unification,
// articulation extraction, DNF conversion, glossary resolution, and
// bulk load into PostgreSQL.
type Populator interface {
	// Populate processes the corpus and writes the articulations and
	// glossary relations. The returned report lists documents that
	// failed extraction; a non-empty report is advisory, not an
	// error.
	Populate(ctx context.Context) (*FailureReport, error)
}
