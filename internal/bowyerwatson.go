package internal

import (
	"sort"

	"github.com/pkg/errors"
)

// Incremental Bowyer-Watson triangulation. Each inserted point invalidates the
// triangles whose circumcircles contain it; those are removed, and the cavity
// they leave is refilled with a fan of triangles around the new point. The
// working set starts as a single super triangle enclosing everything, and any
// triangle still touching it is dropped at the end. Predicates over those
// scaffold triangles are exact (see scaffold).
//
// There is no spatial index, so every insertion scans the whole working set.

// Mutable working set. The slice preserves insertion order so that results
// are deterministic; the set answers membership questions.
type triangulation struct {
	scaffold  scaffold
	triangles []Triangle
	present   TriangleSet
}

func newTriangulation(sc scaffold) *triangulation {
	tr := &triangulation{scaffold: sc, present: make(TriangleSet)}
	tr.add(sc.super)
	return tr
}

func (tr *triangulation) add(t Triangle) {
	if tr.present.Has(t) {
		fatalf("triangle %v is already in the triangulation", t)
	}
	tr.present.Add(t)
	tr.triangles = append(tr.triangles, t)
}

func (tr *triangulation) removeAll(bad []Triangle) {
	for _, t := range bad {
		tr.present.Remove(t)
	}
	kept := tr.triangles[:0]
	for _, t := range tr.triangles {
		if tr.present.Has(t) {
			kept = append(kept, t)
		}
	}
	tr.triangles = kept
}

// Collect every triangle whose circumcircle contains p, boundary inclusive.
func (tr *triangulation) badTriangles(p Point) ([]Triangle, error) {
	var bad []Triangle
	for _, t := range tr.triangles {
		inside, err := tr.scaffold.inCircumcircle(t, p)
		if err != nil {
			return nil, err
		}
		if inside {
			bad = append(bad, t)
		}
	}
	return bad, nil
}

// The boundary of the cavity left by removing the bad triangles: every edge
// that belongs to exactly one of them. Edges shared by two bad triangles are
// interior to the cavity and vanish.
func HoleBoundary(bad []Triangle) []Edge {
	counts := make(map[Edge]int, 3*len(bad))
	for _, t := range bad {
		for _, e := range t.Edges() {
			counts[e]++
		}
	}

	var boundary []Edge
	for _, t := range bad {
		for _, e := range t.Edges() {
			switch counts[e] {
			case 1:
				boundary = append(boundary, e)
			case 2:
				// Interior
			default:
				fatalf("edge %s is shared by %d triangles", e, counts[e])
			}
		}
	}
	return boundary
}

func (tr *triangulation) insert(p Point) error {
	bad, err := tr.badTriangles(p)
	if err != nil {
		return errors.Wrapf(err, "inserting %s", p)
	}
	if len(bad) == 0 {
		// Every point is strictly inside the super triangle, so at least the
		// triangle containing it must be bad.
		fatalf("point %s is outside every circumcircle", p)
	}

	boundary := HoleBoundary(bad)
	tr.removeAll(bad)

	for _, e := range boundary {
		t := NewTriangle(e.A(), e.B(), p)
		if tr.scaffold.isDegenerate(t) {
			return errors.Wrapf(ErrDegenerateTriangle, "inserting %s creates flat triangle with %s", p, e)
		}
		tr.add(t)
	}
	return nil
}

// Drop every triangle touching the super triangle and return the rest in
// canonical order.
func (tr *triangulation) finalize() []Triangle {
	result := make([]Triangle, 0, len(tr.triangles))
	for _, t := range tr.triangles {
		if !tr.scaffold.touches(t) {
			result = append(result, t)
		}
	}
	SortTriangles(result)
	return result
}

// Triangulate the points with default options.
func BowyerWatson(points []Point) ([]Triangle, error) {
	return Triangulate(points, DefaultOptions())
}

// Compute the Delaunay triangulation of the points, inserting them in the
// order given. The call is all or nothing: on error no triangles are
// returned.
func Triangulate(points []Point, opts Options) ([]Triangle, error) {
	if err := ValidateInput(points); err != nil {
		return nil, err
	}

	sc, err := newScaffold(points, opts)
	if err != nil {
		return nil, err
	}

	tr := newTriangulation(sc)
	for _, p := range points {
		if err := tr.insert(p); err != nil {
			return nil, err
		}
	}
	return tr.finalize(), nil
}

// Check the preconditions of Triangulate. Duplicate points are rejected
// rather than silently merged; use Dedup first to get the merging behavior.
func ValidateInput(points []Point) error {
	if len(points) < 3 {
		return errors.Wrapf(ErrInsufficientPoints, "got %d", len(points))
	}
	if err := checkRange(points); err != nil {
		return err
	}

	seen := make(PointSet, len(points))
	for _, p := range points {
		if seen.Has(p) {
			return errors.Wrapf(ErrDuplicatePoint, "%s", p)
		}
		seen.Add(p)
	}

	// With every point on one line there is no triangle to be had, and the
	// insertion loop would quietly produce an empty result.
	a, b := points[0], points[1]
	for _, c := range points[2:] {
		if !Collinear(a, b, c) {
			return nil
		}
	}
	return errors.Wrapf(ErrDegenerateTriangle, "all %d points are collinear", len(points))
}

// Remove repeated points, keeping the first occurrence of each and the order
// of the rest.
func Dedup(points []Point) []Point {
	seen := make(PointSet, len(points))
	result := make([]Point, 0, len(points))
	for _, p := range points {
		if seen.Has(p) {
			continue
		}
		seen.Add(p)
		result = append(result, p)
	}
	return result
}

func SortTriangles(triangles []Triangle) {
	sort.Slice(triangles, func(i, j int) bool {
		return compareTriangles(triangles[i], triangles[j]) < 0
	})
}

func SortEdges(edges []Edge) {
	sort.Slice(edges, func(i, j int) bool {
		if c := edges[i].a.Compare(edges[j].a); c != 0 {
			return c < 0
		}
		return edges[i].b.Less(edges[j].b)
	})
}

func compareTriangles(s, t Triangle) int {
	if c := s.a.Compare(t.a); c != 0 {
		return c
	}
	if c := s.b.Compare(t.b); c != 0 {
		return c
	}
	return s.c.Compare(t.c)
}
