package articulation_test

import (
	"testing"

	"github.com/akash-pandit/CACourses/pkg/articulation"
	"github.com/stretchr/testify/assert"
)

func TestEval(t *testing.T) {
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

	tests := []struct {
		msg   string
		taken map[int64]bool
		res   bool
	}{
		{"nothing taken", map[int64]bool{}, false},
		{"first disjunct", map[int64]bool{1: true}, true},
		{"partial conjunct", map[int64]bool{2: true}, false},
		{"full conjunct", map[int64]bool{2: true, 3: true}, true},
	}

	for _, v := range tests {
		assert.Equal(t, v.res, articulation.Eval(expr, v.taken), v.msg)
	}
}

func TestEvalEmptyNode(t *testing.T) {
	empty := articulation.Node{Conj: articulation.And}
	assert.False(t, articulation.Eval(empty, map[int64]bool{1: true}))
}

func TestLeaves(t *testing.T) {
	expr := articulation.Node{
		Conj: articulation.And,
		Children: []articulation.Expr{
			articulation.Leaf(5),
			articulation.Node{
				Conj: articulation.Or,
				Children: []articulation.Expr{
					articulation.Leaf(2),
					articulation.Leaf(5),
				},
			},
		},
	}
	assert.Equal(t, []int64{2, 5}, articulation.Leaves(expr))
}

func TestExprString(t *testing.T) {
	expr := articulation.Node{
		Conj: articulation.Or,
		Children: []articulation.Expr{
			articulation.Leaf(1),
			articulation.Node{
				Conj:     articulation.And,
				Children: []articulation.Expr{articulation.Leaf(2)},
			},
		},
	}
	assert.Equal(t, "Or(1, And(2))", expr.String())
}
