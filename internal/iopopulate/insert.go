package iopopulate

import (
	"context"
	"sort"

	"github.com/akash-pandit/CACourses/pkg/articulation"
	"github.com/akash-pandit/CACourses/pkg/glossary"
	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/jackc/pgx/v5"
)

// artRow is one row of the articulations relation, with the
// requirement already flattened to its serialized DNF.
type artRow struct {
	key         artKey
	requirement string
}

func sortedKeys(m map[artKey][]articulation.Expr) []artKey {
	keys := make([]artKey, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if a.courseID != b.courseID {
			return a.courseID < b.courseID
		}
		if a.cc != b.cc {
			return a.cc < b.cc
		}
		return a.uni < b.uni
	})
	return keys
}

// load replaces the contents of both output relations. Each run is a
// full rebuild; partial updates would leave stale rows behind when
// agreements disappear between academic years.
func (p *populator) load(
	ctx context.Context,
	arts []artRow,
	entries []glossary.Entry,
) error {
	pool := p.operator.Pool()

	for _, table := range []string{"articulations", "glossary"} {
		if _, err := pool.Exec(ctx, "TRUNCATE "+table); err != nil {
			return CopyError(table, err)
		}
	}

	if err := p.insertArticulations(ctx, arts); err != nil {
		return err
	}
	if err := p.insertGlossary(ctx, entries); err != nil {
		return err
	}
	return nil
}

// insertArticulations bulk-inserts articulation rows with pgx
// CopyFrom, batched to keep memory bounded on large corpora.
func (p *populator) insertArticulations(
	ctx context.Context,
	arts []artRow,
) error {
	columns := []string{"course_id", "cc", "uni", "articulation"}

	bar := pb.Full.Start(len(arts))
	bar.Set("prefix", "Loading articulations: ")
	bar.Set(pb.CleanOnFinish, true)

	batchSize := p.cfg.Database.BatchSize
	for start := 0; start < len(arts); start += batchSize {
		end := min(start+batchSize, len(arts))

		rows := make([][]any, 0, end-start)
		for _, art := range arts[start:end] {
			rows = append(rows, []any{
				int32(art.key.courseID),
				int16(art.key.cc),
				int16(art.key.uni),
				art.requirement,
			})
		}

		_, err := p.operator.Pool().CopyFrom(
			ctx,
			pgx.Identifier{"articulations"},
			columns,
			pgx.CopyFromRows(rows),
		)
		if err != nil {
			return CopyError("articulations", err)
		}
		bar.Add(len(rows))
	}
	bar.Finish()

	gn.Message("<em>Loaded %s articulations</em>",
		humanize.Comma(int64(len(arts))))
	return nil
}

// insertGlossary bulk-inserts resolved glossary entries.
func (p *populator) insertGlossary(
	ctx context.Context,
	entries []glossary.Entry,
) error {
	columns := []string{
		"course_id", "inst_id", "course_code", "course_name",
		"min_units", "max_units",
	}

	bar := pb.Full.Start(len(entries))
	bar.Set("prefix", "Loading glossary: ")
	bar.Set(pb.CleanOnFinish, true)

	batchSize := p.cfg.Database.BatchSize
	for start := 0; start < len(entries); start += batchSize {
		end := min(start+batchSize, len(entries))

		rows := make([][]any, 0, end-start)
		for _, entry := range entries[start:end] {
			rows = append(rows, []any{
				int32(entry.CourseID),
				int16(entry.InstID),
				entry.CourseCode,
				entry.CourseName,
				float32(entry.MinUnits),
				float32(entry.MaxUnits),
			})
		}

		_, err := p.operator.Pool().CopyFrom(
			ctx,
			pgx.Identifier{"glossary"},
			columns,
			pgx.CopyFromRows(rows),
		)
		if err != nil {
			return CopyError("glossary", err)
		}
		bar.Add(len(rows))
	}
	bar.Finish()

	gn.Message("<em>Loaded %s glossary entries</em>",
		humanize.Comma(int64(len(entries))))
	return nil
}
