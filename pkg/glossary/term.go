package glossary

import (
	"strconv"
	"strings"
)

// Term order within a year: Winter < Spring < Summer < Fall. The same
// map serves quarter and semester institutions; semester schools just
// never emit Winter and Summer.
var termOrder = map[string]int{
	"winter": 0,
	"spring": 1,
	"summer": 2,
	"fall":   3,
}

// currentlyOffered sorts after every real term: a blank end term
// means the course is still in the catalog.
const currentlyOffered = int(^uint(0) >> 1)

// TermKey converts a term string like "Fall 2023" into a single
// orderable integer so recency comparisons are total. A blank or
// unparseable term is treated as currently offered, the latest
// possible value, not as an error.
func TermKey(term string) int {
	term = strings.TrimSpace(term)
	if term == "" {
		return currentlyOffered
	}

	season, yearStr, ok := strings.Cut(term, " ")
	if !ok {
		return currentlyOffered
	}
	quarter, ok := termOrder[strings.ToLower(season)]
	if !ok {
		return currentlyOffered
	}
	year, err := strconv.Atoi(strings.TrimSpace(yearStr))
	if err != nil {
		return currentlyOffered
	}

	return year*len(termOrder) + quarter
}
