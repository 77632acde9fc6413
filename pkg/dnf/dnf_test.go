package dnf_test

import (
	"encoding"
	"encoding/json"
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"github.com/akash-pandit/CACourses/pkg/articulation"
	"github.com/akash-pandit/CACourses/pkg/dnf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clauses extracts the converted clause matrix as sorted id slices,
// order-insensitive, for comparing conversions.
func clauses(e dnf.Expr) [][]int64 {
	res := make([][]int64, len(e.Items))
	for i, clause := range e.Items {
		ids := make([]int64, len(clause.Items))
		copy(ids, clause.Items)
		sort.Slice(ids, func(a, b int) bool { return ids[a] < ids[b] })
		res[i] = ids
	}
	sort.Slice(res, func(a, b int) bool {
		return fmt.Sprint(res[a]) < fmt.Sprint(res[b])
	})
	return res
}

func TestConvertLeaf(t *testing.T) {
	res := dnf.Convert(articulation.Leaf(42))
	assert.Equal(t, [][]int64{{42}}, clauses(res))
}

func TestConvertFlatNodes(t *testing.T) {
	t.Run("and over leaves is one clause", func(t *testing.T) {
		expr := articulation.Node{
			Conj: articulation.And,
			Children: []articulation.Expr{
				articulation.Leaf(1),
				articulation.Leaf(2),
			},
		}
		res := dnf.Convert(expr)
		assert.Equal(t, [][]int64{{1, 2}}, clauses(res))
	})

	t.Run("or over leaves is one clause each", func(t *testing.T) {
		expr := articulation.Node{
			Conj: articulation.Or,
			Children: []articulation.Expr{
				articulation.Leaf(1),
				articulation.Leaf(2),
			},
		}
		res := dnf.Convert(expr)
		assert.Equal(t, [][]int64{{1}, {2}}, clauses(res))
	})
}

func TestConvertDistributes(t *testing.T) {
	// And(Or(101, 102), And(205)) distributes to
	// {101, 205} | {102, 205}.
	expr := articulation.Node{
		Conj: articulation.And,
		Children: []articulation.Expr{
			articulation.Node{
				Conj: articulation.Or,
				Children: []articulation.Expr{
					articulation.Leaf(101),
					articulation.Leaf(102),
				},
			},
			articulation.Node{
				Conj:     articulation.And,
				Children: []articulation.Expr{articulation.Leaf(205)},
			},
		},
	}

	res := dnf.Convert(expr)
	assert.Equal(t, [][]int64{{101, 205}, {102, 205}}, clauses(res))
}

func TestConvertMixedDepth(t *testing.T) {
	// Or(1, And(2, 3)) stays {1} | {2, 3}.
	expr := articulation.Node{
		Conj: articulation.Or,
		Children: []articulation.Expr{
			articulation.Leaf(1),
			articulation.Node{
				Conj: articulation.And,
				Children: []articulation.Expr{
					articulation.Leaf(2),
					articulation.Leaf(3),
				},
			},
		},
	}

	res := dnf.Convert(expr)
	assert.Equal(t, [][]int64{{1}, {2, 3}}, clauses(res))
}

func TestConvertEmptyNode(t *testing.T) {
	t.Run("empty node has no clauses", func(t *testing.T) {
		res := dnf.Convert(articulation.Node{Conj: articulation.Or})
		assert.Empty(t, res.Items)
	})

	t.Run("empty conjunct annihilates and", func(t *testing.T) {
		expr := articulation.Node{
			Conj: articulation.And,
			Children: []articulation.Expr{
				articulation.Leaf(1),
				articulation.Node{Conj: articulation.Or},
			},
		}
		res := dnf.Convert(expr)
		assert.Empty(t, res.Items)
	})

	t.Run("empty disjunct is skipped", func(t *testing.T) {
		expr := articulation.Node{
			Conj: articulation.Or,
			Children: []articulation.Expr{
				articulation.Leaf(1),
				articulation.Node{Conj: articulation.And},
			},
		}
		res := dnf.Convert(expr)
		assert.Equal(t, [][]int64{{1}}, clauses(res))
	})
}

func TestMarshalShape(t *testing.T) {
	expr := articulation.Node{
		Conj: articulation.Or,
		Children: []articulation.Expr{
			articulation.Leaf(1),
			articulation.Node{
				Conj: articulation.And,
				Children: []articulation.Expr{
					articulation.Leaf(2),
					articulation.Leaf(3),
				},
			},
		},
	}

	raw, err := dnf.Convert(expr).Serialize()
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"conj":"Or","items":[
			{"conj":"And","items":[1]},
			{"conj":"And","items":[2,3]}
		]}`,
		string(raw))

	// Round-trips through encoding/json.
	var back dnf.Expr
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, clauses(dnf.Convert(expr)), clauses(back))
}

// Expr must stay off encoding.TextMarshaler. With that interface
// implemented via json.Marshal, encoding/json calls the method back
// on the receiver and the marshal never terminates.
func TestExprIsNotTextMarshaler(t *testing.T) {
	var e any = dnf.Convert(articulation.Leaf(1))
	_, ok := e.(encoding.TextMarshaler)
	assert.False(t, ok,
		"dnf.Expr must not implement encoding.TextMarshaler")
}

func TestSerializeMatchesPlainMarshal(t *testing.T) {
	flat := dnf.Convert(articulation.Leaf(1))

	raw, err := flat.Serialize()
	require.NoError(t, err)

	plain, err := json.Marshal(flat)
	require.NoError(t, err)
	assert.Equal(t, string(plain), string(raw),
		"serialization is the struct's own JSON shape")
}

// randomExpr builds a requirement tree of bounded depth, occasionally
// producing empty nodes the way malformed-but-decodable rows do.
func randomExpr(rng *rand.Rand, depth int) articulation.Expr {
	if depth == 0 || rng.Intn(3) == 0 {
		return articulation.Leaf(rng.Int63n(8) + 1)
	}

	conj := articulation.And
	if rng.Intn(2) == 0 {
		conj = articulation.Or
	}

	n := rng.Intn(4) // zero children happens
	children := make([]articulation.Expr, n)
	for i := range children {
		children[i] = randomExpr(rng, depth-1)
	}
	return articulation.Node{Conj: conj, Children: children}
}

func TestConvertPreservesSemantics(t *testing.T) {
	rng := rand.New(rand.NewSource(83))

	for range 500 {
		expr := randomExpr(rng, 5)
		flat := dnf.Convert(expr)

		// Compare on random subsets of the mentioned ids.
		ids := articulation.Leaves(expr)
		for range 20 {
			taken := make(map[int64]bool)
			for _, id := range ids {
				if rng.Intn(2) == 0 {
					taken[id] = true
				}
			}
			require.Equal(t,
				articulation.Eval(expr, taken), flat.Eval(taken),
				"tree %s, taken %v", expr, taken)
		}
	}
}

func TestConvertIdempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(19))

	for range 200 {
		expr := randomExpr(rng, 4)
		once := dnf.Convert(expr)
		twice := dnf.Convert(once.Tree())
		assert.Equal(t, clauses(once), clauses(twice))
	}
}
