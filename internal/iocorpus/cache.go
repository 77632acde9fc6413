package iocorpus

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/akash-pandit/CACourses/pkg/assist"
	"github.com/akash-pandit/CACourses/pkg/config"
	"github.com/akash-pandit/CACourses/pkg/jsonschema"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnuuid"
)

// cachedSchema is the on-disk schema cache payload, encoded with GOB.
type cachedSchema struct {
	// Fingerprint identifies the corpus state the schema was inferred
	// from. A stale fingerprint invalidates the cache.
	Fingerprint string
	Schema      jsonschema.Type
}

func (c *Corpus) cachePath(kind assist.Kind) string {
	name := fmt.Sprintf("schema-%s.gob", kind)
	return filepath.Join(config.CacheDir(c.cfg.HomeDir), name)
}

// fingerprint derives a UUID v5 from the paths, sizes and mod times
// of the corpus files. Any added, removed or rewritten file changes
// the fingerprint.
func (c *Corpus) fingerprint(files []string) (string, error) {
	var sb strings.Builder
	for _, fp := range files {
		st, err := os.Stat(fp)
		if err != nil {
			return "", readError(fp, err)
		}
		fmt.Fprintf(&sb, "%s|%d|%d\n",
			filepath.Base(fp), st.Size(), st.ModTime().UnixNano())
	}
	return gnuuid.New(sb.String()).String(), nil
}

// loadCachedSchema returns the cached schema for a kind when the
// cache exists and matches the fingerprint. Cache problems are never
// fatal, the schema is simply re-inferred.
func (c *Corpus) loadCachedSchema(
	kind assist.Kind,
	fingerprint string,
) (jsonschema.Schema, bool) {
	var zero jsonschema.Schema

	raw, err := os.ReadFile(c.cachePath(kind))
	if err != nil {
		return zero, false
	}

	enc := gnfmt.GNgob{}
	var cached cachedSchema
	if err := enc.Decode(raw, &cached); err != nil {
		slog.Warn("Cannot decode schema cache, re-inferring",
			"kind", kind, "error", err)
		return zero, false
	}

	if cached.Fingerprint != fingerprint {
		slog.Info("Corpus changed since last run, re-inferring schema",
			"kind", kind)
		return zero, false
	}
	return cached.Schema, true
}

// saveCachedSchema persists the unified schema for the next run.
func (c *Corpus) saveCachedSchema(
	kind assist.Kind,
	fingerprint string,
	schema jsonschema.Schema,
) {
	enc := gnfmt.GNgob{}
	raw, err := enc.Encode(cachedSchema{
		Fingerprint: fingerprint,
		Schema:      schema,
	})
	if err != nil {
		slog.Warn("Cannot encode schema cache", "kind", kind, "error", err)
		return
	}

	fp := c.cachePath(kind)
	if err := os.WriteFile(fp, raw, 0644); err != nil {
		slog.Warn("Cannot write schema cache", "path", fp, "error", err)
	}
}
