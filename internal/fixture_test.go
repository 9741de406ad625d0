package internal

import (
	"embed"
	"log"
	"math"
	"math/rand"
)

// Fixtures are svg files in the fixtures/ directory, available by name sans
// extension. Each point is the center of a <circle>. If anything goes wrong,
// loading fails the whole test binary.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) []Point {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer fixture.Close()

	points, err := ReadSVGPoints(fixture)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}
	if len(points) == 0 {
		log.Fatalf("No circles found in fixture %q", name)
	}
	return points
}

// Some ad hoc fixtures

func Square() []Point {
	return []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
}

// Distinct pseudo random points in [0, size) x [0, size). The same seed always
// gives the same points in the same order.
func RandomPoints(seed int64, count, size int) []Point {
	rng := rand.New(rand.NewSource(seed))
	seen := make(PointSet, count)
	points := make([]Point, 0, count)
	for len(points) < count {
		p := Point{rng.Intn(size), rng.Intn(size)}
		if seen.Has(p) {
			continue
		}
		seen.Add(p)
		points = append(points, p)
	}
	return points
}

// A star shaped ring of points around a center, alternating between the outer
// and inner radius.
func Star(cx, cy, outer, inner, count int) []Point {
	points := make([]Point, 0, count)
	for i := 0; i < count; i++ {
		radius := outer
		if i%2 == 1 {
			radius = inner
		}
		angle := 2 * math.Pi * float64(i) / float64(count)
		points = append(points, Point{
			X: cx + int(math.Round(float64(radius)*math.Cos(angle))),
			Y: cy + int(math.Round(float64(radius)*math.Sin(angle))),
		})
	}
	return points
}
