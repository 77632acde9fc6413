// Package assist models raw ASSIST.org articulation agreement
// documents. One document covers one (community college, university)
// pair and holds a forest of articulation rows.
// This is a pure package - no I/O.
package assist

// Kind distinguishes the two physical layouts of agreement documents.
type Kind string

const (
	// KindPrefixes marks prefix-scoped documents: each row holds a
	// list of articulations under one course prefix.
	KindPrefixes Kind = "prefixes"
	// KindMajors marks major-scoped documents: each row holds a
	// single articulation of one major's requirements.
	KindMajors Kind = "majors"
)

// Kinds lists all document kinds in processing order.
func Kinds() []Kind {
	return []Kind{KindPrefixes, KindMajors}
}

// Course is the metadata of one course as it appears in a document.
// The same course can show up many times across documents and terms,
// sometimes with diverging metadata.
type Course struct {
	// ID is the courseIdentifierParentId, globally unique and stable
	// across catalog changes. Zero means the identifier was absent.
	ID int64

	Prefix       string
	CourseNumber string
	CourseTitle  string

	MinUnits float64
	MaxUnits float64

	// Begin and End delimit the offering window as term strings,
	// e.g. "Fall 2023". A blank End means currently offered.
	Begin string
	End   string
}

// Code renders the course code as "PREFIX NUMBER", e.g. "MATH 1A".
func (c Course) Code() string {
	if c.Prefix == "" || c.CourseNumber == "" {
		return ""
	}
	return c.Prefix + " " + c.CourseNumber
}

// Series groups university courses that share one articulation
// requirement, e.g. a two-course physics sequence.
type Series struct {
	Courses []Course
}

// CourseGroup is one sending-side group: community college courses
// combined by the group's own conjunction.
type CourseGroup struct {
	// Conjunction is "And" or "Or". Blank when the document omits it.
	Conjunction string
	Items       []Course
}

// SendingArticulation is the sending-side boolean expression of a row:
// course groups combined by the top-level group conjunction.
type SendingArticulation struct {
	// GroupConjunction combines the Items groups. Blank when the
	// document omits it; extraction defaults it to "Or".
	GroupConjunction string
	Items            []CourseGroup
}

// Empty reports that no sending-side courses exist, meaning no
// articulation exists for the row. This is a valid, common outcome,
// not an error.
func (s SendingArticulation) Empty() bool {
	for _, group := range s.Items {
		if len(group.Items) > 0 {
			return false
		}
	}
	return true
}

// Articulation is one logical row of a document: what the receiving
// side requires (a single course or a series) and what sending-side
// combination satisfies it.
type Articulation struct {
	Course  *Course
	Series  *Series
	Sending SendingArticulation
}

// Document is one decoded agreement file.
type Document struct {
	// CC is the sending (community college) institution id.
	CC int
	// Uni is the receiving (university) institution id.
	Uni int

	Kind Kind
	Rows []Articulation
}
