package internal

import (
	"fmt"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/delaunay/internal/dbg"
)

// Build a triangle in canonical form. The vertex order of the arguments is
// irrelevant: every permutation of the same three points yields the same
// value.
func NewTriangle(p, q, r Point) Triangle {
	// Rotate the lowest point to the front. Rotation keeps the winding.
	switch {
	case q.Less(p) && !r.Less(q):
		p, q, r = q, r, p
	case r.Less(p) && r.Less(q):
		p, q, r = r, p, q
	}

	switch o := Orient(p, q, r); {
	case o < 0:
		q, r = r, q
	case o == 0:
		// No winding to preserve, so fall back to a full sort
		if r.Less(q) {
			q, r = r, q
		}
	}
	return Triangle{p, q, r}
}

func (t Triangle) A() Point { return t.a }
func (t Triangle) B() Point { return t.b }
func (t Triangle) C() Point { return t.c }

func (t Triangle) Points() [3]Point {
	return [3]Point{t.a, t.b, t.c}
}

// The three sides, in winding order: AB, BC, CA.
func (t Triangle) Edges() [3]Edge {
	return [3]Edge{NewEdge(t.a, t.b), NewEdge(t.b, t.c), NewEdge(t.c, t.a)}
}

func (t Triangle) ContainsEdge(e Edge) bool {
	for _, side := range t.Edges() {
		if side == e {
			return true
		}
	}
	return false
}

func (t Triangle) HasVertex(p Point) bool {
	return t.a == p || t.b == p || t.c == p
}

func (t Triangle) SharesVertex(other Triangle) bool {
	return other.HasVertex(t.a) || other.HasVertex(t.b) || other.HasVertex(t.c)
}

// Twice the signed area. Canonical triangles are never clockwise, so this is
// positive for any non-degenerate triangle built with NewTriangle.
func (t Triangle) SignedArea2() int64 {
	return Orient(t.a, t.b, t.c)
}

func (t Triangle) Area() float64 {
	return float64(t.SignedArea2()) / 2
}

func (t Triangle) IsDegenerate() bool {
	return t.SignedArea2() == 0
}

func (t Triangle) String() string {
	return fmt.Sprintf("Triangle %s <%s, %s, %s>", t.DbgName(), t.a, t.b, t.c)
}

// Readable name for debug output, colored by shape: green for proper
// triangles, red for degenerate ones.
func (t Triangle) DbgName() string {
	name := dbg.Name(t)
	if t.IsDegenerate() {
		return aurora.Red(name).String()
	}
	return aurora.Green(name).String()
}

func (set TriangleSet) Add(t Triangle) {
	set[t] = struct{}{}
}

func (set TriangleSet) Has(t Triangle) bool {
	_, ok := set[t]
	return ok
}

func (set TriangleSet) Remove(t Triangle) {
	delete(set, t)
}

func (set TriangleSet) Len() int {
	return len(set)
}

func (set TriangleSet) Slice() []Triangle {
	result := make([]Triangle, 0, len(set))
	for t := range set {
		result = append(result, t)
	}
	SortTriangles(result)
	return result
}

func (set PointSet) Add(p Point) {
	set[p] = struct{}{}
}

func (set PointSet) Has(p Point) bool {
	_, ok := set[p]
	return ok
}

func (set PointSet) Equals(other PointSet) bool {
	if len(set) != len(other) {
		return false
	}
	for p := range set {
		if !other.Has(p) {
			return false
		}
	}
	return true
}
