// Package iocorpus reads the local corpus of downloaded agreement
// files and derives the unified document schema each kind decodes
// against.
package iocorpus

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/akash-pandit/CACourses/pkg/assist"
	"github.com/akash-pandit/CACourses/pkg/config"
	"github.com/akash-pandit/CACourses/pkg/jsonschema"
)

// Corpus provides access to the agreement files under the data
// directory.
type Corpus struct {
	cfg *config.Config
}

// New creates a Corpus over the configured data directory.
func New(cfg *config.Config) *Corpus {
	return &Corpus{cfg: cfg}
}

// Files lists every agreement file of one kind, sorted by path. The
// corpus is laid out as <data-dir>/<uni>/<cc>to<uni>-<kind>.json.
func (c *Corpus) Files(kind assist.Kind) ([]string, error) {
	dataDir := c.cfg.ResolvedDataDir()
	pattern := filepath.Join(dataDir, "*", "*-"+string(kind)+".json")

	files, err := filepath.Glob(pattern)
	if err != nil {
		return nil, enumerateError(dataDir, err)
	}

	sort.Strings(files)
	return files, nil
}

// Read decodes one agreement file into untyped JSON data.
func (c *Corpus) Read(fp string) (any, error) {
	raw, err := os.ReadFile(fp)
	if err != nil {
		return nil, readError(fp, err)
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, readError(fp, err)
	}
	return doc, nil
}

// UnifiedSchema folds the schemas of every file of one kind into a
// single schema all of them decode against. With the schema cache
// enabled a previous run's result is reused as long as the corpus has
// not changed.
func (c *Corpus) UnifiedSchema(
	kind assist.Kind,
	files []string,
	cache *jsonschema.ResolveCache,
) (jsonschema.Schema, error) {
	var zero jsonschema.Schema

	fingerprint, err := c.fingerprint(files)
	if err != nil {
		return zero, err
	}

	if c.cfg.Populate.WithSchemaCache {
		if schema, ok := c.loadCachedSchema(kind, fingerprint); ok {
			slog.Info("Reusing cached schema", "kind", kind)
			return schema, nil
		}
	}

	schemas := make([]jsonschema.Schema, 0, len(files))
	for _, fp := range files {
		doc, err := c.Read(fp)
		if err != nil {
			return zero, err
		}
		schemas = append(schemas, jsonschema.Infer(doc))
	}

	schema, err := jsonschema.Merge(schemas, cache)
	if err != nil {
		return zero, err
	}

	if c.cfg.Populate.WithSchemaCache {
		c.saveCachedSchema(kind, fingerprint, schema)
	}
	return schema, nil
}
