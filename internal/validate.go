package internal

import "github.com/pkg/errors"

// Check a triangulation of points for the two properties every Delaunay
// triangulation has:
// 1. No point lies strictly inside any triangle's circumcircle.
// 2. Every side belongs to one triangle (on the hull) or two (interior).
//
// This is quadratic, and meant for tests and debugging rather than routine
// use.
func CheckDelaunay(points []Point, triangles []Triangle) error {
	seen := make(TriangleSet, len(triangles))
	for _, t := range triangles {
		if seen.Has(t) {
			return errors.Errorf("triangle %v appears twice", t)
		}
		seen.Add(t)

		circle, err := t.Circumcircle()
		if err != nil {
			return err
		}
		for _, p := range points {
			if t.HasVertex(p) {
				continue
			}
			if circle.ContainsStrictly(p) {
				return errors.Errorf("point %s is inside the circumcircle of %v", p, t)
			}
		}
	}

	for e, sharing := range Neighbors(triangles) {
		if len(sharing) > 2 {
			return errors.Errorf("edge %s is shared by %d triangles", e, len(sharing))
		}
	}
	return nil
}

// Edges that belong to exactly one triangle
func HullEdges(triangles []Triangle) []Edge {
	hull := make(EdgeSet)
	for e, sharing := range Neighbors(triangles) {
		if len(sharing) == 1 {
			hull.Add(e)
		}
	}
	return hull.Slice()
}
