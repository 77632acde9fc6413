// Package config provides configuration management for CACourses.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Database: host, port, user, password, database, ssl_mode, batch_size
//   - Fetch: base_url, year_key
//   - Log: level, format, destination
//   - General: data_dir, jobs_number
//
// Runtime-only fields (CLI flags only):
//   - Populate.Kinds, Populate.WithSchemaCache (per-command)
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use CACOURSES_ prefix with underscores for nesting:
//
//	CACOURSES_DATABASE_HOST=localhost
//	CACOURSES_DATABASE_PORT=5432
//	CACOURSES_LOG_LEVEL=info
//	CACOURSES_JOBS_NUMBER=8
package config

import (
	"runtime"
)

// Config represents the complete CACourses configuration.
type Config struct {
	// Database contains PostgreSQL connection settings.
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`

	// Fetch contains settings for downloading agreements from ASSIST.
	Fetch FetchConfig `mapstructure:"fetch" yaml:"fetch"`

	// Populate contains settings specific to the populate command.
	Populate PopulateConfig `mapstructure:"populate" yaml:"populate"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// DataDir is the directory holding the raw agreement corpus, one
	// subdirectory per receiving institution. Empty means the default
	// location under HomeDir.
	DataDir string `mapstructure:"data_dir" yaml:"data_dir"`

	// JobsNumber is the number of concurrent workers for per-document
	// extraction. Default value is set according to the number of
	// available threads.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// HomeDir determines where config, cache and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// DatabaseConfig contains PostgreSQL connection parameters.
type DatabaseConfig struct {
	// Host is the PostgreSQL server hostname or IP address.
	Host string `mapstructure:"host" yaml:"host"`

	// Port is the PostgreSQL server port number.
	Port int `mapstructure:"port" yaml:"port"`

	// User is the PostgreSQL database username.
	User string `mapstructure:"user" yaml:"user"`

	// Password is the PostgreSQL database password.
	Password string `mapstructure:"password" yaml:"password"`

	// Database is the PostgreSQL database name to connect to.
	Database string `mapstructure:"database" yaml:"database"`

	// SSLMode specifies the SSL connection mode.
	// Valid values: "disable", "require", "verify-ca", "verify-full"
	SSLMode string `mapstructure:"ssl_mode" yaml:"ssl_mode"`

	// BatchSize defines the number of records per batch for bulk inserts.
	// Larger batches are faster but use more memory.
	BatchSize int `mapstructure:"batch_size" yaml:"batch_size"`
}

// FetchConfig contains settings for the fetch command.
type FetchConfig struct {
	// BaseURL is the ASSIST agreements API endpoint. The academic year
	// key and institution pair are appended to it.
	BaseURL string `mapstructure:"base_url" yaml:"base_url"`

	// YearKey selects the academic year of the agreements,
	// e.g. 75 for 2024-2025.
	YearKey int `mapstructure:"year_key" yaml:"year_key"`
}

// PopulateConfig contains settings specific to the populate command.
type PopulateConfig struct {
	// Kinds restricts the run to document kinds ("prefixes", "majors").
	// Empty slice means process both kinds.
	// Runtime-only field, set via CLI flags.
	Kinds []string `mapstructure:"kinds" yaml:"kinds"`

	// WithSchemaCache enables reuse of unified schemas persisted by a
	// previous run. The cache is an optimization only; a cache miss
	// re-infers schemas from the corpus.
	WithSchemaCache bool `mapstructure:"with_schema_cache" yaml:"with_schema_cache"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json' or 'text'.
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Database: DatabaseConfig{
			Host:      "localhost",
			Port:      5432,
			User:      "postgres",
			Password:  "postgres",
			Database:  "cacourses",
			SSLMode:   "disable",
			BatchSize: 50_000,
		},
		Fetch: FetchConfig{
			BaseURL: "https://assist.org/api/articulation/Agreements",
			YearKey: 75, // 2024-2025 academic year
		},
		Populate: PopulateConfig{
			WithSchemaCache: true,
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
		JobsNumber: runtime.NumCPU(),
	}

	return res
}
