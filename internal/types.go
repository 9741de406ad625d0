package internal

// Points are plain integer values. They are compared exactly, and the
// lexicographic order below exists only so that edges and triangles have a
// canonical form. It has no geometric meaning.
type Point struct {
	X int
	Y int
}

// Coordinates are limited so that super triangle vertices, and every
// orientation product computed over them, fit comfortably in an int64.
const MaxCoordinate = 1 << 20

// Edges are unordered. The endpoints are stored with the lower point first, so
// that two edges over the same endpoints are == and hash identically no matter
// which order they were constructed in.
type Edge struct {
	a, b Point
}

// Triangles are unordered vertex triples, stored canonically: the lowest
// vertex comes first, followed by the other two in counterclockwise order. A
// degenerate triple has no winding, so its vertices are simply sorted.
type Triangle struct {
	a, b, c Point
}

type PointSet map[Point]struct{}

type EdgeSet map[Edge]struct{}

type TriangleSet map[Triangle]struct{}
