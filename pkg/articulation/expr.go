// Package articulation extracts normalized articulation records from
// decoded ASSIST agreement documents. Each record ties one university
// course to a boolean expression over community college course ids.
// This is a pure package - no I/O.
package articulation

import (
	"fmt"
	"sort"
	"strings"
)

// Conj is a boolean conjunction. The string values match the raw
// documents and the serialized form consumed by the API layer.
type Conj string

const (
	And Conj = "And"
	Or  Conj = "Or"
)

// Valid reports whether the conjunction is one of the two known
// values.
func (c Conj) Valid() bool {
	return c == And || c == Or
}

// Expr is a recursive boolean expression over sending-side course
// ids: either a Leaf course id or a Node combining children with a
// conjunction.
type Expr interface {
	fmt.Stringer
	isExpr()
}

// Leaf is a single sending-side course id: the proposition "this
// course was taken".
type Leaf int64

// Node combines child expressions with a conjunction. A node with
// zero children is semantically empty; extraction never produces one.
type Node struct {
	Conj     Conj
	Children []Expr
}

func (Leaf) isExpr() {}
func (Node) isExpr() {}

func (l Leaf) String() string {
	return fmt.Sprintf("%d", int64(l))
}

func (n Node) String() string {
	parts := make([]string, len(n.Children))
	for i, child := range n.Children {
		parts[i] = child.String()
	}
	return fmt.Sprintf("%s(%s)", n.Conj, strings.Join(parts, ", "))
}

// Eval evaluates an expression against a set of taken course ids.
// An empty node contributes no satisfiable clause and is false, which
// mirrors how DNF conversion treats it.
func Eval(e Expr, taken map[int64]bool) bool {
	switch expr := e.(type) {
	case Leaf:
		return taken[int64(expr)]
	case Node:
		if len(expr.Children) == 0 {
			return false
		}
		switch expr.Conj {
		case And:
			for _, child := range expr.Children {
				if !Eval(child, taken) {
					return false
				}
			}
			return true
		case Or:
			for _, child := range expr.Children {
				if Eval(child, taken) {
					return true
				}
			}
			return false
		}
	}
	panic(fmt.Sprintf("articulation: malformed expression %#v", e))
}

// Leaves returns the sorted distinct course ids mentioned in the
// expression.
func Leaves(e Expr) []int64 {
	seen := make(map[int64]bool)
	var walk func(Expr)
	walk = func(e Expr) {
		switch expr := e.(type) {
		case Leaf:
			seen[int64(expr)] = true
		case Node:
			for _, child := range expr.Children {
				walk(child)
			}
		}
	}
	walk(e)

	res := make([]int64, 0, len(seen))
	for id := range seen {
		res = append(res, id)
	}
	sort.Slice(res, func(i, j int) bool { return res[i] < res[j] })
	return res
}
