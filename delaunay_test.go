package delaunay

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Smoke tests. The internals are already tested.

func TestSuperTriangle(t *testing.T) {
	super, err := SuperTriangle([]Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 10}})
	require.NoError(t, err)
	// Must strictly contain the whole bounding box, corners included
	for _, corner := range []Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}} {
		for _, side := range super.Edges() {
			tri := NewTriangle(side.A(), side.B(), corner)
			assert.False(t, tri.IsDegenerate(), "%s lies on a side of %s", corner, super)
		}
	}

	_, err = SuperTriangle([]Point{{X: 0, Y: 0}})
	assert.True(t, errors.Is(err, ErrInsufficientPoints))
}

func TestBowyerWatson(t *testing.T) {
	points := []Point{
		{X: 0, Y: 0},
		{X: 10, Y: 0},
		{X: 10, Y: 10},
		{X: 0, Y: 10},
	}

	triangles, err := BowyerWatson(points)
	assert.NoError(t, err)
	assert.Len(t, triangles, 2)
	assert.NoError(t, CheckDelaunay(points, triangles))

	again, err := BowyerWatson(points)
	assert.NoError(t, err)
	assert.Equal(t, triangles, again)

	edges, err := Voronoi(triangles)
	assert.NoError(t, err)
	assert.Len(t, edges, 1)
}

func TestBowyerWatsonErrors(t *testing.T) {
	_, err := BowyerWatson([]Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}})
	assert.True(t, errors.Is(err, ErrDegenerateTriangle), "got %v", err)

	_, err = BowyerWatson([]Point{{X: 0, Y: 0}, {X: 1, Y: 1}})
	assert.True(t, errors.Is(err, ErrInsufficientPoints), "got %v", err)

	_, err = BowyerWatson([]Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}, {X: 0, Y: 0}})
	assert.True(t, errors.Is(err, ErrDuplicatePoint), "got %v", err)

	triangles, err := BowyerWatson(Dedup([]Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}, {X: 0, Y: 0}}))
	assert.NoError(t, err)
	assert.Len(t, triangles, 1)

	_, err = Triangulate([]Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}, Options{MarginFactor: 1000})
	assert.True(t, errors.Is(err, ErrInvalidMarginFactor), "got %v", err)
}

func TestVoronoiErrors(t *testing.T) {
	_, err := Voronoi(nil)
	assert.True(t, errors.Is(err, ErrEmptyTriangulation))
}

func TestNeighbors(t *testing.T) {
	triangles, err := BowyerWatson([]Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}, {X: 5, Y: 4}})
	require.NoError(t, err)
	require.Len(t, triangles, 4)

	for e, sharing := range Neighbors(triangles) {
		if e.Has(Point{X: 5, Y: 4}) {
			assert.Len(t, sharing, 2, "spoke %s", e)
		} else {
			assert.Len(t, sharing, 1, "hull edge %s", e)
		}
	}

	segments, err := VoronoiSegments(triangles)
	require.NoError(t, err)
	assert.Len(t, segments, 4)
}
