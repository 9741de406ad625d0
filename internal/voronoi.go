package internal

import (
	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
)

// A Voronoi edge with exact float endpoints, before snapping to integer
// points.
type Segment struct {
	Start, End r2.Point
}

// Index every triangle by its sides. In a valid triangulation each edge maps
// to one triangle (hull) or two (interior).
func Neighbors(triangles []Triangle) map[Edge][]Triangle {
	index := make(map[Edge][]Triangle, 3*len(triangles))
	for _, t := range triangles {
		for _, e := range t.Edges() {
			index[e] = append(index[e], t)
		}
	}
	return index
}

// Build the Voronoi dual of a triangulation: one edge between the
// circumcenters of every pair of triangles that share a side. Circumcenters
// are truncated toward zero to integer points, so cocircular neighbors produce
// a zero length edge; it is kept so that every adjacency is represented.
//
// Hull cells are left open. No rays toward infinity are produced.
func Voronoi(triangles []Triangle) ([]Edge, error) {
	segments, err := VoronoiSegments(triangles)
	if err != nil {
		return nil, err
	}
	diagram := make(EdgeSet, len(segments))
	for _, s := range segments {
		diagram.Add(NewEdge(truncate(s.Start), truncate(s.End)))
	}
	return diagram.Slice(), nil
}

// Same walk as Voronoi, but with float endpoints. Each adjacency appears once,
// oriented from the canonically lower triangle to the higher one.
func VoronoiSegments(triangles []Triangle) ([]Segment, error) {
	if len(triangles) == 0 {
		return nil, ErrEmptyTriangulation
	}

	centers := make(map[Triangle]r2.Point, len(triangles))
	for _, t := range triangles {
		circle, err := t.Circumcircle()
		if err != nil {
			return nil, errors.Wrap(err, "voronoi")
		}
		centers[t] = circle.Center
	}

	index := Neighbors(triangles)
	var segments []Segment
	for _, t := range triangles {
		for _, e := range t.Edges() {
			for _, neighbor := range index[e] {
				// Every shared side is seen from both of its triangles. Only emit it
				// from the lower one.
				if compareTriangles(t, neighbor) >= 0 {
					continue
				}
				segments = append(segments, Segment{centers[t], centers[neighbor]})
			}
		}
	}
	return segments, nil
}

func truncate(p r2.Point) Point {
	return Point{X: int(p.X), Y: int(p.Y)}
}
