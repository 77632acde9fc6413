package articulation

import (
	"fmt"
	"sort"

	"github.com/akash-pandit/CACourses/pkg/assist"
)

// Record is one normalized articulation: the requirement expression
// that satisfies CourseID at university Uni when transferring from
// community college CC. The (CourseID, CC, Uni) triple is unique
// within the output of Extract.
type Record struct {
	CourseID int64
	CC       int
	Uni      int

	Requirement Expr
}

// RowError records a row that was skipped because its requirement
// substructure was malformed. Row errors are aggregated and surfaced
// at the end of a corpus run; one bad row never aborts a run.
type RowError struct {
	CC  int
	Uni int
	Row int
	Err error
}

func (e RowError) Error() string {
	return fmt.Sprintf(
		"agreement %d->%d row %d: %v", e.CC, e.Uni, e.Row, e.Err,
	)
}

// Extract converts a decoded document into articulation records.
//
// Rows with an empty sending-side expression are filtered out (no
// articulation exists, expected and common). A row targeting a series
// fans out to one record per series member, because "A and B (series)
// articulate from X" means each of A and B independently articulates
// from X. Rows targeting neither a single course nor a series carry a
// non-course requirement ("any literature course") and are dropped.
//
// Entries sharing a (CourseID, CC, Uni) key are merged under an
// implicit Or: satisfying any one of the original rows suffices.
func Extract(doc *assist.Document) ([]Record, []RowError) {
	var rowErrs []RowError

	type pending struct {
		ids  []int64
		expr Expr
	}
	var rows []pending
	seen := make(map[string]bool)

	for i, row := range doc.Rows {
		if row.Sending.Empty() {
			continue
		}

		ids := targetIDs(row)
		if len(ids) == 0 {
			// Non-course requirement, unsatisfiable by course id.
			continue
		}

		expr, err := buildExpr(row.Sending)
		if err != nil {
			rowErrs = append(rowErrs, RowError{
				CC: doc.CC, Uni: doc.Uni, Row: i, Err: err,
			})
			continue
		}

		// Documents repeat rows (a course listed under several
		// prefixes or majors); exact duplicates collapse here.
		key := fmt.Sprintf("%v|%s", ids, expr)
		if seen[key] {
			continue
		}
		seen[key] = true

		rows = append(rows, pending{ids: ids, expr: expr})
	}

	merged := make(map[int64][]Expr)
	for _, p := range rows {
		for _, id := range p.ids {
			merged[id] = append(merged[id], p.expr)
		}
	}

	res := make([]Record, 0, len(merged))
	for id, exprs := range merged {
		res = append(res, Record{
			CourseID:    id,
			CC:          doc.CC,
			Uni:         doc.Uni,
			Requirement: Node{Conj: Or, Children: exprs},
		})
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].CourseID < res[j].CourseID
	})
	return res, rowErrs
}

// targetIDs resolves the receiving-side course ids of a row. A
// non-empty series wins over a simultaneously-present single course,
// matching the coalesce the source data implies.
func targetIDs(row assist.Articulation) []int64 {
	if row.Series != nil {
		var ids []int64
		for _, course := range row.Series.Courses {
			if course.ID != 0 {
				ids = append(ids, course.ID)
			}
		}
		if len(ids) > 0 {
			return ids
		}
	}
	if row.Course != nil && row.Course.ID != 0 {
		return []int64{row.Course.ID}
	}
	return nil
}

// buildExpr assembles the requirement tree of a row: the declared
// group conjunction (default Or) over per-group subexpressions, each
// combining its leaf course ids with its own conjunction.
func buildExpr(sending assist.SendingArticulation) (Expr, error) {
	top := Conj(sending.GroupConjunction)
	if top == "" {
		top = Or
	}
	if !top.Valid() {
		return nil, fmt.Errorf(
			"unknown group conjunction %q", sending.GroupConjunction,
		)
	}

	var children []Expr
	for _, group := range sending.Items {
		if len(group.Items) == 0 {
			// Semantically empty group, dropped.
			continue
		}

		conj := Conj(group.Conjunction)
		if conj == "" {
			// An undeclared conjunction reads as Or, matching the
			// source data's default; a single-course group is
			// conjunction-neutral and gets And.
			conj = Or
			if len(group.Items) == 1 {
				conj = And
			}
		}
		if !conj.Valid() {
			return nil, fmt.Errorf(
				"unknown course conjunction %q", group.Conjunction,
			)
		}

		leaves := make([]Expr, 0, len(group.Items))
		for _, course := range group.Items {
			if course.ID == 0 {
				return nil, fmt.Errorf(
					"sending course %q has no identifier", course.Code(),
				)
			}
			leaves = append(leaves, Leaf(course.ID))
		}
		children = append(children, Node{Conj: conj, Children: leaves})
	}

	if len(children) == 0 {
		return nil, fmt.Errorf("no usable sending course groups")
	}
	return Node{Conj: top, Children: children}, nil
}
