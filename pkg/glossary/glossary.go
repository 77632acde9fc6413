// Package glossary builds a deduplicated catalog of course metadata
// from agreement documents, covering both sending and receiving
// institutions. When an institution's catalog changes a course across
// terms, the most recently offered record wins.
// This is a pure package - no I/O.
package glossary

import (
	"sort"

	"github.com/akash-pandit/CACourses/pkg/assist"
)

// Entry is course metadata attributed to one institution.
type Entry struct {
	CourseID int64
	InstID   int

	CourseCode string
	CourseName string

	MinUnits float64
	MaxUnits float64

	// Begin and End delimit the offering window as term strings.
	Begin string
	End   string
}

// complete reports that all required metadata is present. Partial
// records (blank code pieces, missing title) are common in raw data
// and carry nothing worth cataloging.
func (e Entry) complete() bool {
	return e.CourseID != 0 &&
		e.CourseCode != "" &&
		e.CourseName != "" &&
		e.MinUnits > 0 &&
		e.MaxUnits > 0
}

// Extract pulls course metadata from every embedded location of a
// document: the sending-side leaf courses nested inside requirement
// expressions (attributed to the community college) and the
// receiving-side course and series objects (attributed to the
// university). Exact duplicates collapse immediately.
func Extract(doc *assist.Document) []Entry {
	seen := make(map[Entry]bool)
	var res []Entry

	add := func(course assist.Course, instID int) {
		entry := Entry{
			CourseID:   course.ID,
			InstID:     instID,
			CourseCode: course.Code(),
			CourseName: course.CourseTitle,
			MinUnits:   course.MinUnits,
			MaxUnits:   course.MaxUnits,
			Begin:      course.Begin,
			End:        course.End,
		}
		if !entry.complete() || seen[entry] {
			return
		}
		seen[entry] = true
		res = append(res, entry)
	}

	for _, row := range doc.Rows {
		for _, group := range row.Sending.Items {
			for _, course := range group.Items {
				add(course, doc.CC)
			}
		}
		if row.Course != nil {
			add(*row.Course, doc.Uni)
		}
		if row.Series != nil {
			for _, course := range row.Series.Courses {
				add(course, doc.Uni)
			}
		}
	}
	return res
}

// Resolve collapses entries to one per course id. When metadata
// diverges across terms (renames, unit changes) the entry with the
// latest offering-window end term wins. After that, uniqueness of
// (CourseCode, InstID) is enforced as well, keeping the entry already
// selected by the course id pass; this handles catalog renumbering
// where one code briefly maps to two ids.
func Resolve(entries []Entry) []Entry {
	byID := make(map[int64]Entry)
	for _, entry := range entries {
		current, ok := byID[entry.CourseID]
		if !ok || TermKey(entry.End) > TermKey(current.End) {
			byID[entry.CourseID] = entry
		}
	}

	ids := make([]int64, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	type codeKey struct {
		code string
		inst int
	}
	byCode := make(map[codeKey]Entry, len(byID))
	var order []codeKey
	for _, id := range ids {
		entry := byID[id]
		key := codeKey{code: entry.CourseCode, inst: entry.InstID}
		current, ok := byCode[key]
		if !ok {
			byCode[key] = entry
			order = append(order, key)
			continue
		}
		if TermKey(entry.End) > TermKey(current.End) {
			byCode[key] = entry
		}
	}

	res := make([]Entry, len(order))
	for i, key := range order {
		res[i] = byCode[key]
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].CourseID < res[j].CourseID
	})
	return res
}
