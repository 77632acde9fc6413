package config

import (
	"path/filepath"
)

// AppName is used in generating file system paths.
var AppName = "cacourses"

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/cacourses by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// CacheDir returns the directory path for cache files.
// Returns ~/.cache/cacourses by default.
func CacheDir(homeDir string) string {
	return filepath.Join(homeDir, ".cache", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/cacourses/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "logs")
}

// DefaultDataDir returns the directory where fetched agreement files
// live unless data_dir is set explicitly.
// Returns ~/.local/share/cacourses/data by default.
func DefaultDataDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "data")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/cacourses/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// InstitutionsFilePath returns the full path to the institutions.yaml file.
// Returns ~/.config/cacourses/institutions.yaml by default.
func InstitutionsFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "institutions.yaml")
}

// ResolvedDataDir resolves the corpus directory for a config.
func (c *Config) ResolvedDataDir() string {
	if c.DataDir != "" {
		return c.DataDir
	}
	return DefaultDataDir(c.HomeDir)
}
