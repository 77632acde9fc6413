package iocorpus_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/akash-pandit/CACourses/internal/iocorpus"
	"github.com/akash-pandit/CACourses/pkg/assist"
	"github.com/akash-pandit/CACourses/pkg/config"
	"github.com/akash-pandit/CACourses/pkg/jsonschema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCorpus(t *testing.T, dataDir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		fp := filepath.Join(dataDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(fp), 0755))
		require.NoError(t, os.WriteFile(fp, []byte(content), 0644))
	}
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	home := t.TempDir()
	require.NoError(t,
		os.MkdirAll(config.CacheDir(home), 0755))

	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptHomeDir(home),
		config.OptDataDir(t.TempDir()),
	})
	return cfg
}

func TestFiles(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}

	cfg := testConfig(t)
	writeCorpus(t, cfg.DataDir, map[string]string{
		"7/113to7-prefixes.json":   `[]`,
		"7/105to7-prefixes.json":   `[]`,
		"7/113to7-majors.json":     `[]`,
		"89/113to89-prefixes.json": `[]`,
		"89/notes.txt":             "ignored",
	})

	corpus := iocorpus.New(cfg)

	prefixes, err := corpus.Files(assist.KindPrefixes)
	require.NoError(t, err)
	assert.Len(t, prefixes, 3)

	majors, err := corpus.Files(assist.KindMajors)
	require.NoError(t, err)
	assert.Len(t, majors, 1)
}

func TestRead(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}

	cfg := testConfig(t)
	writeCorpus(t, cfg.DataDir, map[string]string{
		"7/113to7-prefixes.json": `[{"prefix": "MATH"}]`,
		"7/105to7-prefixes.json": `{broken`,
	})
	corpus := iocorpus.New(cfg)

	doc, err := corpus.Read(
		filepath.Join(cfg.DataDir, "7", "113to7-prefixes.json"),
	)
	require.NoError(t, err)
	rows, ok := doc.([]any)
	require.True(t, ok)
	assert.Len(t, rows, 1)

	_, err = corpus.Read(
		filepath.Join(cfg.DataDir, "7", "105to7-prefixes.json"),
	)
	assert.Error(t, err, "corrupt json is a read error")

	_, err = corpus.Read(filepath.Join(cfg.DataDir, "missing.json"))
	assert.Error(t, err)
}

func TestUnifiedSchema(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}

	cfg := testConfig(t)
	writeCorpus(t, cfg.DataDir, map[string]string{
		"7/113to7-prefixes.json": `[{"prefix": "MATH", "units": 4}]`,
		"7/105to7-prefixes.json": `[{"prefix": "PHYS", "units": 4.5, "note": "x"}]`,
	})
	corpus := iocorpus.New(cfg)

	files, err := corpus.Files(assist.KindPrefixes)
	require.NoError(t, err)

	cache := jsonschema.NewResolveCache()
	schema, err := corpus.UnifiedSchema(assist.KindPrefixes, files, cache)
	require.NoError(t, err)

	require.Equal(t, jsonschema.List, schema.Kind)
	units, ok := schema.Elem.Lookup("units")
	require.True(t, ok)
	assert.Equal(t, jsonschema.Float, units.Kind)
	_, ok = schema.Elem.Lookup("note")
	assert.True(t, ok)
}

func TestSchemaCacheRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}

	cfg := testConfig(t)
	writeCorpus(t, cfg.DataDir, map[string]string{
		"7/113to7-majors.json": `[{"major": "Math", "units": 4}]`,
	})
	corpus := iocorpus.New(cfg)

	files, err := corpus.Files(assist.KindMajors)
	require.NoError(t, err)

	first, err := corpus.UnifiedSchema(assist.KindMajors, files, nil)
	require.NoError(t, err)

	cacheFile := filepath.Join(
		config.CacheDir(cfg.HomeDir), "schema-majors.gob",
	)
	_, statErr := os.Stat(cacheFile)
	require.NoError(t, statErr, "schema cache should be persisted")

	// A fresh corpus over the unchanged files reuses the cache.
	second, err := iocorpus.New(cfg).UnifiedSchema(
		assist.KindMajors, files, nil,
	)
	require.NoError(t, err)
	assert.True(t, first.Equal(second))

	// Rewriting a file invalidates the fingerprint; the schema is
	// re-inferred and reflects the new corpus.
	writeCorpus(t, cfg.DataDir, map[string]string{
		"7/113to7-majors.json": `[{"major": "Math", "units": 4.5}]`,
	})
	third, err := iocorpus.New(cfg).UnifiedSchema(
		assist.KindMajors, files, nil,
	)
	require.NoError(t, err)
	units, ok := third.Elem.Lookup("units")
	require.True(t, ok)
	assert.Equal(t, jsonschema.Float, units.Kind)
}

func TestSchemaCacheDisabled(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}

	cfg := testConfig(t)
	cfg.Update([]config.Option{
		config.OptPopulateWithSchemaCache(false),
	})
	writeCorpus(t, cfg.DataDir, map[string]string{
		"7/113to7-majors.json": `[{"major": "Math"}]`,
	})
	corpus := iocorpus.New(cfg)

	files, err := corpus.Files(assist.KindMajors)
	require.NoError(t, err)

	_, err = corpus.UnifiedSchema(assist.KindMajors, files, nil)
	require.NoError(t, err)

	cacheFile := filepath.Join(
		config.CacheDir(cfg.HomeDir), "schema-majors.gob",
	)
	_, statErr := os.Stat(cacheFile)
	assert.True(t, os.IsNotExist(statErr))
}
