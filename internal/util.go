package internal

import (
	"fmt"
	"math"
)

// Tolerance for comparing derived float values (circumcenters, areas) in
// tests and rendering. The predicates themselves never use it.
const Epsilon = 1e-9

func Equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Lexicographic comparison by X, then by Y. Returns -1, 0 or 1.
func (p Point) Compare(q Point) int {
	switch {
	case p.X < q.X:
		return -1
	case p.X > q.X:
		return 1
	case p.Y < q.Y:
		return -1
	case p.Y > q.Y:
		return 1
	}
	return 0
}

func (p Point) Less(q Point) bool {
	return p.Compare(q) < 0
}

func (p Point) InRange() bool {
	return abs(p.X) <= MaxCoordinate && abs(p.Y) <= MaxCoordinate
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Twice the signed area of abc. Positive when abc winds counterclockwise,
// negative when clockwise and zero when the points are collinear. This is exact
// as long as the coordinates stay within the range the bootstrap guarantees.
func Orient(a, b, c Point) int64 {
	abx := int64(b.X) - int64(a.X)
	aby := int64(b.Y) - int64(a.Y)
	acx := int64(c.X) - int64(a.X)
	acy := int64(c.Y) - int64(a.Y)
	return abx*acy - aby*acx
}

func IsCCW(a, b, c Point) bool {
	return Orient(a, b, c) > 0
}

func IsCW(a, b, c Point) bool {
	return Orient(a, b, c) < 0
}

func Collinear(a, b, c Point) bool {
	return Orient(a, b, c) == 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
