// Package dnf converts articulation requirement trees into
// disjunctive normal form: an Or of And-clauses over course ids.
// The flattened form lets the query side answer "does this course set
// satisfy the requirement" with a linear scan instead of a tree walk.
// This is a pure package - no I/O.
package dnf

import (
	"encoding/json"
	"fmt"

	"github.com/akash-pandit/CACourses/pkg/articulation"
)

// Clause is one And-group of course ids; taking every course in the
// clause satisfies it.
type Clause struct {
	Conj  articulation.Conj `json:"conj"`
	Items []int64           `json:"items"`
}

// Expr is a requirement in disjunctive normal form: satisfying any
// one clause satisfies the requirement. The serialized shape
// {"conj":"Or","items":[{"conj":"And","items":[...]}]} is
// self-describing, so consumers need no external convention to read
// it.
type Expr struct {
	Conj  articulation.Conj `json:"conj"`
	Items []Clause          `json:"items"`
}

// Convert flattens a requirement tree into DNF. It is total over
// well-formed input: nodes with empty children contribute no clauses,
// and every produced clause is non-empty. Clause count can grow
// combinatorially with And-of-Or nesting depth; that is inherent to
// DNF, the output is only required to be equivalent, not minimal.
//
// A conjunction outside {And, Or} is a contract violation upstream
// and panics rather than producing a silently-wrong empty result.
func Convert(e articulation.Expr) Expr {
	mat := matrix(e)
	res := Expr{Conj: articulation.Or, Items: make([]Clause, len(mat))}
	for i, row := range mat {
		res.Items[i] = Clause{Conj: articulation.And, Items: row}
	}
	return res
}

// Serialize renders the expression as JSON for relational storage.
// Must not be named MarshalText: encoding/json calls TextMarshaler
// methods back from json.Marshal, which recurses forever here.
func (e Expr) Serialize() ([]byte, error) {
	return json.Marshal(e)
}

// Eval evaluates the DNF against a set of taken course ids.
func (e Expr) Eval(taken map[int64]bool) bool {
	for _, clause := range e.Items {
		if clause.eval(taken) {
			return true
		}
	}
	return false
}

func (c Clause) eval(taken map[int64]bool) bool {
	for _, id := range c.Items {
		if !taken[id] {
			return false
		}
	}
	return true
}

// Tree converts the DNF back into an equivalent requirement tree,
// used to check conversion idempotence.
func (e Expr) Tree() articulation.Expr {
	children := make([]articulation.Expr, len(e.Items))
	for i, clause := range e.Items {
		leaves := make([]articulation.Expr, len(clause.Items))
		for j, id := range clause.Items {
			leaves[j] = articulation.Leaf(id)
		}
		children[i] = articulation.Node{
			Conj:     articulation.And,
			Children: leaves,
		}
	}
	return articulation.Node{Conj: articulation.Or, Children: children}
}

// matrix recursively flattens a requirement tree into a clause
// matrix.
func matrix(e articulation.Expr) [][]int64 {
	switch expr := e.(type) {
	case articulation.Leaf:
		return [][]int64{{int64(expr)}}

	case articulation.Node:
		if len(expr.Children) == 0 {
			// Semantically empty, contributes nothing.
			return nil
		}

		// Depth-1 short circuit: a node over pure leaves needs no
		// recursion.
		if leaves, ok := leafItems(expr.Children); ok {
			switch expr.Conj {
			case articulation.And:
				return [][]int64{leaves}
			case articulation.Or:
				res := make([][]int64, len(leaves))
				for i, id := range leaves {
					res[i] = []int64{id}
				}
				return res
			}
			panic(badConj(expr.Conj))
		}

		mats := make([][][]int64, len(expr.Children))
		for i, child := range expr.Children {
			mats[i] = matrix(child)
		}

		switch expr.Conj {
		case articulation.Or:
			// Associativity: nested Ors flatten by concatenation.
			var res [][]int64
			for _, mat := range mats {
				res = append(res, mat...)
			}
			return res

		case articulation.And:
			// Distributivity of And over Or: Cartesian product
			// across the children's matrices.
			return product(mats)
		}
		panic(badConj(expr.Conj))
	}
	panic(fmt.Sprintf("dnf: malformed expression %#v", e))
}

func leafItems(children []articulation.Expr) ([]int64, bool) {
	res := make([]int64, len(children))
	for i, child := range children {
		leaf, ok := child.(articulation.Leaf)
		if !ok {
			return nil, false
		}
		res[i] = int64(leaf)
	}
	return res, true
}

// product combines one clause from each child matrix into every
// possible joint clause. A child with no clauses annihilates the
// whole product: an unsatisfiable conjunct makes the And
// unsatisfiable.
func product(mats [][][]int64) [][]int64 {
	res := [][]int64{nil}
	for _, mat := range mats {
		if len(mat) == 0 {
			return nil
		}
		next := make([][]int64, 0, len(res)*len(mat))
		for _, acc := range res {
			for _, clause := range mat {
				joined := make([]int64, 0, len(acc)+len(clause))
				joined = append(joined, acc...)
				joined = append(joined, clause...)
				next = append(next, joined)
			}
		}
		res = next
	}
	return res
}

func badConj(c articulation.Conj) string {
	return fmt.Sprintf("dnf: unknown conjunction %q", c)
}
