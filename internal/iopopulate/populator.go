// Package iopopulate implements the Populator interface: it runs the
// ETL over the local agreement corpus and bulk-loads the articulations
// and glossary relations into PostgreSQL.
// This is an impure I/O package.
package iopopulate

import (
	"context"
	"log/slog"
	"time"

	"github.com/akash-pandit/CACourses/internal/iocorpus"
	"github.com/akash-pandit/CACourses/pkg/articulation"
	"github.com/akash-pandit/CACourses/pkg/assist"
	"github.com/akash-pandit/CACourses/pkg/config"
	"github.com/akash-pandit/CACourses/pkg/db"
	"github.com/akash-pandit/CACourses/pkg/dnf"
	"github.com/akash-pandit/CACourses/pkg/etl"
	"github.com/akash-pandit/CACourses/pkg/glossary"
	"github.com/akash-pandit/CACourses/pkg/jsonschema"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/google/uuid"
)

// populator implements the Populator interface.
type populator struct {
	cfg      *config.Config
	operator db.Operator
	corpus   *iocorpus.Corpus
}

// New creates a new Populator over a connected database operator.
func New(cfg *config.Config, op db.Operator) etl.Populator {
	return &populator{
		cfg:      cfg,
		operator: op,
		corpus:   iocorpus.New(cfg),
	}
}

// artKey identifies one articulation row in the output relation.
type artKey struct {
	courseID int64
	cc, uni  int
}

// accumulator gathers extraction output across every document of a
// run. Only the collector goroutine touches it.
type accumulator struct {
	requirements map[artKey][]articulation.Expr
	entries      []glossary.Entry
	rowErrs      []articulation.RowError
	docs         int
}

func newAccumulator() *accumulator {
	return &accumulator{
		requirements: make(map[artKey][]articulation.Expr),
	}
}

func (p *populator) Populate(
	ctx context.Context,
) (*etl.FailureReport, error) {
	if p.operator.Pool() == nil {
		return nil, NotConnectedError()
	}

	startTime := time.Now()
	runID := uuid.New().String()
	slog.Info("Starting database population", "run_id", runID)

	report := etl.NewFailureReport()
	acc := newAccumulator()
	cache := jsonschema.NewResolveCache()

	kinds, err := p.collectKinds()
	if err != nil {
		return nil, err
	}

	var totalFiles int
	for _, kind := range kinds {
		n, err := p.processKind(ctx, kind, cache, acc, report)
		if err != nil {
			return report, err
		}
		totalFiles += n
	}

	if totalFiles == 0 {
		return report, EmptyCorpusError(p.cfg.ResolvedDataDir())
	}
	if acc.docs == 0 {
		return report, AllDocumentsFailedError(report.Len())
	}

	p.reportRowErrors(acc.rowErrs)

	arts := p.buildArticulations(acc)
	entries := glossary.Resolve(acc.entries)

	gn.Info(
		"Extracted <em>%s</em> articulations and <em>%s</em> glossary entries",
		humanize.Comma(int64(len(arts))),
		humanize.Comma(int64(len(entries))),
	)

	if err := p.load(ctx, arts, entries); err != nil {
		return report, err
	}

	hits, misses := cache.Stats()
	slog.Info("Scalar resolution cache",
		"hits", hits, "misses", misses)

	totalDuration := time.Since(startTime)
	slog.Info("Population complete",
		"run_id", runID,
		"documents", acc.docs,
		"failed", report.Len(),
		"articulations", len(arts),
		"glossary", len(entries),
		"duration", gnfmt.TimeString(totalDuration.Seconds()),
	)
	gn.Info(`Population complete
Documents processed: %d, failed: %d.
	Elapsed time: <em>%s</em>
`,
		acc.docs,
		report.Len(),
		gnfmt.TimeString(totalDuration.Seconds()),
	)

	if !report.Empty() {
		slog.Warn("Some documents failed to process",
			"failed", report.Len())
	}
	return report, nil
}

// collectKinds resolves the document kinds this run covers. An empty
// setting means both kinds.
func (p *populator) collectKinds() ([]assist.Kind, error) {
	if len(p.cfg.Populate.Kinds) == 0 {
		return assist.Kinds(), nil
	}

	var res []assist.Kind
	for _, s := range p.cfg.Populate.Kinds {
		switch kind := assist.Kind(s); kind {
		case assist.KindPrefixes, assist.KindMajors:
			res = append(res, kind)
		default:
			return nil, UnknownKindError(s)
		}
	}
	return res, nil
}

// buildArticulations merges requirement expressions sharing an output
// key and flattens each into DNF. Several documents can articulate
// the same course for the same pair (a course reachable through many
// majors); satisfying any one of them suffices.
func (p *populator) buildArticulations(acc *accumulator) []artRow {
	keys := sortedKeys(acc.requirements)

	res := make([]artRow, 0, len(keys))
	for _, key := range keys {
		exprs := acc.requirements[key]
		var expr articulation.Expr
		if len(exprs) == 1 {
			expr = exprs[0]
		} else {
			expr = articulation.Node{
				Conj:     articulation.Or,
				Children: exprs,
			}
		}

		flat, err := dnf.Convert(expr).Serialize()
		if err != nil {
			// Convert output always marshals; keep the guard anyway.
			slog.Error("Cannot serialize requirement",
				"course_id", key.courseID, "error", err)
			continue
		}
		res = append(res, artRow{key: key, requirement: string(flat)})
	}
	return res
}

// reportRowErrors surfaces skipped rows without flooding the log.
func (p *populator) reportRowErrors(rowErrs []articulation.RowError) {
	if len(rowErrs) == 0 {
		return
	}

	const sampleSize = 5
	for i, rowErr := range rowErrs {
		if i == sampleSize {
			break
		}
		slog.Warn("Skipped malformed row",
			"cc", rowErr.CC, "uni", rowErr.Uni,
			"row", rowErr.Row, "error", rowErr.Err)
	}
	if len(rowErrs) > sampleSize {
		slog.Warn("More rows skipped",
			"total", len(rowErrs), "shown", sampleSize)
	}
	gn.Warn("Skipped %s malformed rows, see log for details",
		humanize.Comma(int64(len(rowErrs))))
}
