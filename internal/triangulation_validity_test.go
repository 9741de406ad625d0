package internal

// This contains no actual tests. It is just a helper for testing triangulation
// validity.

import (
	"sort"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to check that a triangulation is valid and complete. The rules are:
// 1. Every triangle is counterclockwise, with nonzero area.
// 2. The set of points in the triangles equals the set of input points.
// 3. No input point is strictly inside any triangle's circumcircle.
// 4. Every edge belongs to one or two triangles, never more.
// 5. The triangles tile the convex hull: their areas sum to the hull's area.
// 6. With h boundary edges, there are exactly 2n - 2 - h triangles.
func AssertValidTriangulation(t *testing.T, points []Point, triangles []Triangle) {
	t.Helper()
	require.NotEmpty(t, triangles, "triangulation of %d points is empty", len(points))

	inputPoints := make(PointSet)
	for _, p := range points {
		inputPoints.Add(p)
	}

	used := make(PointSet)
	var area2 int64
	for _, tri := range triangles {
		require.True(t, IsCCW(tri.A(), tri.B(), tri.C()), "not counterclockwise: %s", tri)
		for _, p := range tri.Points() {
			require.True(t, inputPoints.Has(p), "vertex %s of %s is not an input point", p, tri)
			used.Add(p)
		}
		area2 += tri.SignedArea2()
	}

	err := CheckDelaunay(points, triangles)
	require.NoError(t, err, "triangles:\n%s", spew.Sdump(triangles))

	assert.True(t, used.Equals(inputPoints), "set of points in the triangles must equal the input points")
	assert.Equal(t, hullArea2(points), area2, "sum of triangle areas must equal the hull area")
	h := len(HullEdges(triangles))
	assert.Len(t, triangles, 2*len(inputPoints)-2-h, "triangle count with %d boundary edges", h)
}

// Twice the area of the points' convex hull (monotone chain)
func hullArea2(points []Point) int64 {
	sorted := append([]Point(nil), points...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Less(sorted[j]) })

	chain := func(points []Point) []Point {
		var h []Point
		for _, p := range points {
			for len(h) >= 2 && Orient(h[len(h)-2], h[len(h)-1], p) <= 0 {
				h = h[:len(h)-1]
			}
			h = append(h, p)
		}
		return h[:len(h)-1]
	}
	reversed := make([]Point, len(sorted))
	for i, p := range sorted {
		reversed[len(sorted)-1-i] = p
	}
	hull := append(chain(sorted), chain(reversed)...)

	var area2 int64
	for i, p := range hull {
		q := hull[(i+1)%len(hull)]
		area2 += int64(p.X)*int64(q.Y) - int64(q.X)*int64(p.Y)
	}
	return area2
}

// Triangles compared as unordered vertex triples
func assertSameTriangles(t *testing.T, expected, actual []Triangle) {
	expectedSet := make(TriangleSet)
	for _, tri := range expected {
		expectedSet.Add(tri)
	}
	actualSet := make(TriangleSet)
	for _, tri := range actual {
		actualSet.Add(tri)
	}
	assert.Equal(t, expectedSet, actualSet)
}
