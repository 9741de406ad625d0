package internal

import "fmt"

func NewEdge(a, b Point) Edge {
	if b.Less(a) {
		a, b = b, a
	}
	return Edge{a, b}
}

// The lower endpoint
func (e Edge) A() Point { return e.a }

// The upper endpoint
func (e Edge) B() Point { return e.b }

func (e Edge) Points() [2]Point {
	return [2]Point{e.a, e.b}
}

// Symmetric equality. Since edges are canonical this is the same as ==, but it
// reads better at call sites that care about the symmetry.
func (e Edge) Equal(other Edge) bool {
	return e == other
}

func (e Edge) Has(p Point) bool {
	return e.a == p || e.b == p
}

// Degenerate edges have coincident endpoints. They only arise from Voronoi
// duals of cocircular neighbors.
func (e Edge) IsDegenerate() bool {
	return e.a == e.b
}

func (e Edge) String() string {
	return fmt.Sprintf("%s-%s", e.a, e.b)
}

func (set EdgeSet) Add(e Edge) {
	set[e] = struct{}{}
}

func (set EdgeSet) Has(e Edge) bool {
	_, ok := set[e]
	return ok
}

func (set EdgeSet) Remove(e Edge) {
	delete(set, e)
}

func (set EdgeSet) Len() int {
	return len(set)
}

// Slice of the set's edges in canonical order
func (set EdgeSet) Slice() []Edge {
	result := make([]Edge, 0, len(set))
	for e := range set {
		result = append(result, e)
	}
	SortEdges(result)
	return result
}
