package jsonschema

import (
	"sort"
	"sync"
)

// ResolveCache memoizes scalar promotion results. Scalar conflicts are
// the hottest path of a corpus-wide merge (the same Int/Float pair
// resolves thousands of times), and promotion is a pure function over
// a tiny domain, so entries are never invalidated.
// Safe for concurrent use.
type ResolveCache struct {
	mu     sync.Mutex
	pairs  map[[2]Kind]Kind
	hits   int
	misses int
}

// NewResolveCache creates an empty scalar promotion cache.
func NewResolveCache() *ResolveCache {
	return &ResolveCache{pairs: make(map[[2]Kind]Kind)}
}

// Stats returns the number of cache hits and misses so far.
func (c *ResolveCache) Stats() (hits, misses int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}

func (c *ResolveCache) resolve(a, b Kind) Kind {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := [2]Kind{a, b}
	if res, ok := c.pairs[key]; ok {
		c.hits++
		return res
	}
	c.misses++
	res := promote(a, b)
	c.pairs[key] = res
	// Promotion is commutative; prime the mirrored pair too.
	c.pairs[[2]Kind{b, a}] = res
	return res
}

// promote widens two scalar kinds to the least upper bound that can
// represent both: Bool < Int < Float < String.
func promote(a, b Kind) Kind {
	if a > b {
		return a
	}
	return b
}

// Merge folds a sequence of schemas into one superschema able to
// describe every input. The operation is idempotent, associative and
// commutative, so the order documents are merged in does not change
// the result.
//
// A nil cache is allowed; scalar resolution then runs unmemoized.
// Returns a SchemaConflictError when two fields have no common
// representable type (e.g. struct vs scalar); such a conflict must
// abort the whole corpus merge since a corrupted superschema would
// silently misparse unrelated documents.
func Merge(schemas []Schema, cache *ResolveCache) (Schema, error) {
	if len(schemas) == 0 {
		return Type{Kind: Struct}, nil
	}

	res := schemas[0]
	for _, sch := range schemas[1:] {
		merged, err := mergeTypes(res, sch, cache)
		if err != nil {
			return Type{}, err
		}
		res = merged
	}
	return res, nil
}

func mergeTypes(a, b Type, cache *ResolveCache) (Type, error) {
	// Identity check, fastest exit.
	if a.Equal(b) {
		return a, nil
	}

	// Null is the absorbing element.
	if a.Kind == Null {
		return b, nil
	}
	if b.Kind == Null {
		return a, nil
	}

	switch {
	case a.Kind == List && b.Kind == List:
		elem, err := mergeTypes(*a.Elem, *b.Elem, cache)
		if err != nil {
			return Type{}, err
		}
		return Type{Kind: List, Elem: &elem}, nil

	case a.Kind == Struct && b.Kind == Struct:
		return mergeStructs(a, b, cache)

	case a.Kind.IsScalar() && b.Kind.IsScalar():
		var kind Kind
		if cache != nil {
			kind = cache.resolve(a.Kind, b.Kind)
		} else {
			kind = promote(a.Kind, b.Kind)
		}
		return Type{Kind: kind}, nil

	default:
		return Type{}, ConflictError(a, b)
	}
}

func mergeStructs(a, b Type, cache *ResolveCache) (Type, error) {
	merged := make(map[string]Type, len(a.Fields))
	for _, f := range a.Fields {
		merged[f.Name] = f.Type
	}
	for _, f := range b.Fields {
		existing, ok := merged[f.Name]
		if !ok {
			// Fast path: new field.
			merged[f.Name] = f.Type
			continue
		}
		if existing.Equal(f.Type) {
			continue
		}
		res, err := mergeTypes(existing, f.Type, cache)
		if err != nil {
			return Type{}, err
		}
		merged[f.Name] = res
	}

	fields := make([]Field, 0, len(merged))
	for name, t := range merged {
		fields = append(fields, Field{Name: name, Type: t})
	}
	sort.Slice(fields, func(i, j int) bool {
		return fields[i].Name < fields[j].Name
	})
	return Type{Kind: Struct, Fields: fields}, nil
}
