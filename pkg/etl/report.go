package etl

import (
	"fmt"
	"maps"
	"slices"
	"sort"
	"strings"
	"sync"
)

// FailureReport maps each receiving institution to the sending
// institutions whose agreement document failed extraction. It gives
// operators visibility into gaps; it is not part of the relational
// output. Safe for concurrent use.
type FailureReport struct {
	mu    sync.Mutex
	pairs map[int][]int
}

// NewFailureReport creates an empty report.
func NewFailureReport() *FailureReport {
	return &FailureReport{pairs: make(map[int][]int)}
}

// Add records a failed (sending, receiving) document.
func (r *FailureReport) Add(cc, uni int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pairs[uni] = append(r.pairs[uni], cc)
}

// Empty reports whether no documents failed.
func (r *FailureReport) Empty() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.pairs) == 0
}

// Len returns the total number of failed documents.
func (r *FailureReport) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int
	for _, ccs := range r.pairs {
		n += len(ccs)
	}
	return n
}

// Pairs returns a copy of the report keyed by receiving institution,
// sending ids sorted.
func (r *FailureReport) Pairs() map[int][]int {
	r.mu.Lock()
	defer r.mu.Unlock()
	res := make(map[int][]int, len(r.pairs))
	for uni, ccs := range r.pairs {
		sorted := slices.Clone(ccs)
		sort.Ints(sorted)
		res[uni] = sorted
	}
	return res
}

// String renders the report one receiving institution per line.
func (r *FailureReport) String() string {
	pairs := r.Pairs()
	unis := slices.Sorted(maps.Keys(pairs))
	var lines []string
	for _, uni := range unis {
		ccs := make([]string, len(pairs[uni]))
		for i, cc := range pairs[uni] {
			ccs[i] = fmt.Sprintf("%d", cc)
		}
		lines = append(lines, fmt.Sprintf(
			"  %d <- %s", uni, strings.Join(ccs, ", "),
		))
	}
	return strings.Join(lines, "\n")
}
