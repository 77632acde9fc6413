package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The root command is not executed here: its PersistentPreRunE
// creates config files under the user's home directory.

// TestRootCmd_Exists verifies the root command identity.
func TestRootCmd_Exists(t *testing.T) {
	require.NotNil(t, rootCmd, "Root command should exist")
	assert.Equal(t, "cacourses", rootCmd.Use,
		"Command name should be cacourses")
}

// TestRootCmd_Descriptions verifies help content.
func TestRootCmd_Descriptions(t *testing.T) {
	assert.Contains(t, rootCmd.Short, "articulation",
		"Short description should mention articulation")
	assert.Contains(t, rootCmd.Long, "ASSIST.org",
		"Long description should mention ASSIST.org")
	assert.Contains(t, rootCmd.Long, "PostgreSQL",
		"Long description should mention PostgreSQL")
	assert.Contains(t, rootCmd.Long, "disjunctive normal form",
		"Long description should mention normalization")
}

// TestRootCmd_Version verifies version string format.
func TestRootCmd_Version(t *testing.T) {
	assert.Contains(t, rootCmd.Version, "version:",
		"Version should contain version line")
	assert.Contains(t, rootCmd.Version, "build:",
		"Version should contain build line")
}

// TestRootCmd_VersionFlag verifies -V flag is registered.
func TestRootCmd_VersionFlag(t *testing.T) {
	flag := rootCmd.Flags().Lookup("version")
	require.NotNil(t, flag, "--version flag should exist")
	assert.Equal(t, "V", flag.Shorthand,
		"Short form should be -V")
}

// TestRootCmd_Subcommands verifies all subcommands are
// registered.
func TestRootCmd_Subcommands(t *testing.T) {
	want := []string{"create", "migrate", "fetch", "populate"}

	var got []string
	for _, c := range rootCmd.Commands() {
		got = append(got, c.Use)
	}

	for _, name := range want {
		assert.Contains(t, got, name,
			"Subcommand %s should be registered", name)
	}
}
