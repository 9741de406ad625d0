// Delaunay triangulation and Voronoi duals for integer point sets.
//
// Triangulation uses the incremental Bowyer-Watson algorithm: points are
// inserted one at a time into a mesh seeded with a super triangle that
// encloses all of them, and every insertion carves out the triangles whose
// circumcircles the new point falls in and refills the hole. The Voronoi dual
// connects the circumcenters of triangles that share a side.
//
// All operations are pure. They take and return plain values, hold no state
// between calls, and are safe to call concurrently.
package delaunay

import "github.com/osuushi/delaunay/internal"

type Point = internal.Point
type Edge = internal.Edge
type Triangle = internal.Triangle
type Circle = internal.Circle
type Segment = internal.Segment
type Options = internal.Options

const (
	MaxCoordinate       = internal.MaxCoordinate
	DefaultMarginFactor = internal.DefaultMarginFactor
	MinMarginFactor     = internal.MinMarginFactor
	MaxMarginFactor     = internal.MaxMarginFactor
)

var (
	ErrInsufficientPoints  = internal.ErrInsufficientPoints
	ErrDegenerateTriangle  = internal.ErrDegenerateTriangle
	ErrEmptyTriangulation  = internal.ErrEmptyTriangulation
	ErrDuplicatePoint      = internal.ErrDuplicatePoint
	ErrCoordinateRange     = internal.ErrCoordinateRange
	ErrInvalidMarginFactor = internal.ErrInvalidMarginFactor
)

func NewEdge(a, b Point) Edge {
	return internal.NewEdge(a, b)
}

// Vertex order does not matter; see Triangle for the canonical form.
func NewTriangle(a, b, c Point) Triangle {
	return internal.NewTriangle(a, b, c)
}

func DefaultOptions() Options {
	return internal.DefaultOptions()
}

// Compute a triangle strictly enclosing all the points, using the default
// margin factor.
func SuperTriangle(points []Point) (Triangle, error) {
	return internal.SuperTriangle(points, internal.DefaultOptions())
}

// Compute the Delaunay triangulation of at least 3 distinct, non-collinear
// points. Points are inserted in the order given; triangles are returned in
// canonical order, so repeated calls on the same input give equal results.
func BowyerWatson(points []Point) ([]Triangle, error) {
	return Triangulate(points, internal.DefaultOptions())
}

// Like BowyerWatson, with explicit options.
func Triangulate(points []Point, opts Options) (result []Triangle, err error) {
	defer func() {
		recoveredErr := internal.HandleTriangulatePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return internal.Triangulate(points, opts)
}

// Compute the Voronoi dual of a triangulation as the set of edges between
// circumcenters of adjacent triangles, snapped to integer points. Each dual
// edge appears once. Hull cells are left open: no rays to infinity are
// produced.
func Voronoi(triangles []Triangle) ([]Edge, error) {
	return internal.Voronoi(triangles)
}

// Like Voronoi, but with unsnapped float endpoints.
func VoronoiSegments(triangles []Triangle) ([]Segment, error) {
	return internal.VoronoiSegments(triangles)
}

// Remove repeated points, keeping first occurrences in order. BowyerWatson
// rejects duplicates, so run input through this first if merging them is the
// desired behavior.
func Dedup(points []Point) []Point {
	return internal.Dedup(points)
}

// Map each side to the triangles that have it.
func Neighbors(triangles []Triangle) map[Edge][]Triangle {
	return internal.Neighbors(triangles)
}

// Verify the empty circumcircle and manifold properties of a triangulation.
func CheckDelaunay(points []Point, triangles []Triangle) error {
	return internal.CheckDelaunay(points, triangles)
}
