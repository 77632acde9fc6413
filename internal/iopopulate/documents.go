package iopopulate

import (
	"context"
	"log/slog"
	"sync"

	"github.com/akash-pandit/CACourses/pkg/articulation"
	"github.com/akash-pandit/CACourses/pkg/assist"
	"github.com/akash-pandit/CACourses/pkg/etl"
	"github.com/akash-pandit/CACourses/pkg/glossary"
	"github.com/akash-pandit/CACourses/pkg/jsonschema"
	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"golang.org/x/sync/errgroup"
)

// docResult is the extraction output of one agreement file. pair
// stays zero-valued when the file name itself cannot be parsed; such
// failures are keyed by path, not by institution pair.
type docResult struct {
	path    string
	pair    assist.PairPath
	records []articulation.Record
	entries []glossary.Entry
	rowErrs []articulation.RowError
	err     error
}

// processKind runs the pipeline for one document kind: schema
// unification over every file of the kind, then concurrent
// decode-and-extract with p.cfg.JobsNumber workers. It returns the
// number of files of the kind.
//
// A document that fails to decode or extract lands in the failure
// report and the run continues; only corpus-level problems (an
// unresolvable schema conflict, unreadable data directory) abort the
// run.
func (p *populator) processKind(
	ctx context.Context,
	kind assist.Kind,
	cache *jsonschema.ResolveCache,
	acc *accumulator,
	report *etl.FailureReport,
) (int, error) {
	files, err := p.corpus.Files(kind)
	if err != nil {
		return 0, err
	}
	if len(files) == 0 {
		slog.Warn("No agreement files of kind", "kind", kind)
		return 0, nil
	}

	gn.Info("Unifying schema over <em>%s</em> %s documents",
		humanize.Comma(int64(len(files))), kind)

	schema, err := p.corpus.UnifiedSchema(kind, files, cache)
	if err != nil {
		return len(files), err
	}

	gn.Info("Processing <em>%s</em> %s documents",
		humanize.Comma(int64(len(files))), kind)

	bar := pb.Full.Start(len(files))
	bar.Set("prefix", "Extracting "+string(kind)+": ")
	bar.Set(pb.CleanOnFinish, true)
	defer bar.Finish()

	chIn := make(chan string)
	chOut := make(chan docResult)

	g, ctx := errgroup.WithContext(ctx)
	var wg sync.WaitGroup

	for range p.cfg.JobsNumber {
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			return p.documentWorker(ctx, kind, schema, chIn, chOut)
		})
	}

	g.Go(func() error {
		defer close(chIn)
		for _, fp := range files {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case chIn <- fp:
			}
		}
		return nil
	})

	go func() {
		wg.Wait()
		close(chOut)
	}()

	// Collector is the only writer of the accumulator.
	for res := range chOut {
		bar.Add(1)
		if res.err != nil {
			if res.pair == (assist.PairPath{}) {
				// No institution pair to attribute the failure to.
				slog.Error("Failed to process document",
					"path", res.path, "kind", kind, "error", res.err)
				continue
			}
			report.Add(res.pair.CC, res.pair.Uni)
			slog.Error("Failed to process document",
				"cc", res.pair.CC, "uni", res.pair.Uni,
				"kind", kind, "error", res.err)
			continue
		}

		acc.docs++
		for _, rec := range res.records {
			key := artKey{courseID: rec.CourseID, cc: rec.CC, uni: rec.Uni}
			acc.requirements[key] = append(
				acc.requirements[key], rec.Requirement,
			)
		}
		acc.entries = append(acc.entries, res.entries...)
		acc.rowErrs = append(acc.rowErrs, res.rowErrs...)
	}

	if err := g.Wait(); err != nil {
		return len(files), err
	}
	return len(files), nil
}

// documentWorker reads, decodes and extracts agreement files until
// the input channel closes.
func (p *populator) documentWorker(
	ctx context.Context,
	kind assist.Kind,
	schema jsonschema.Schema,
	chIn <-chan string,
	chOut chan<- docResult,
) error {
	for fp := range chIn {
		res := p.processDocument(fp, kind, schema)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case chOut <- res:
		}
	}
	return nil
}

func (p *populator) processDocument(
	fp string,
	kind assist.Kind,
	schema jsonschema.Schema,
) docResult {
	res := docResult{path: fp}

	pair, err := assist.ParsePairPath(fp)
	if err != nil {
		res.err = DocumentError(fp, err)
		return res
	}
	res.pair = pair

	raw, err := p.corpus.Read(fp)
	if err != nil {
		res.err = err
		return res
	}

	doc, err := assist.DecodeDocument(raw, schema, pair.CC, pair.Uni, kind)
	if err != nil {
		res.err = DocumentError(fp, err)
		return res
	}

	res.records, res.rowErrs = articulation.Extract(doc)
	res.entries = glossary.Extract(doc)
	return res
}
