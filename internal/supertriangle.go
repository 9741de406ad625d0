package internal

import (
	"math/big"

	"github.com/pkg/errors"
)

// The super triangle's vertices sit a multiple of the bounding box span away
// from the box. The factor must stay finite: vertices are integer points, and
// a runaway multiplier would overflow the coordinate range.
const (
	DefaultMarginFactor = 20
	MinMarginFactor     = 3
	MaxMarginFactor     = 256
)

type Options struct {
	MarginFactor int
}

func DefaultOptions() Options {
	return Options{MarginFactor: DefaultMarginFactor}
}

func (o Options) Validate() error {
	if o.MarginFactor < MinMarginFactor || o.MarginFactor > MaxMarginFactor {
		return errors.Wrapf(ErrInvalidMarginFactor, "margin factor %d is outside [%d, %d]",
			o.MarginFactor, MinMarginFactor, MaxMarginFactor)
	}
	return nil
}

// Axis aligned bounding box of the points. The points must be non-empty.
func BoundingBox(points []Point) (min, max Point) {
	min, max = points[0], points[0]
	for _, p := range points[1:] {
		if p.X < min.X {
			min.X = p.X
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
	}
	return min, max
}

// Build a triangle that strictly contains every point. With the span s of the
// bounding box and its (floored) midpoint m, the vertices are:
//
//	            m + (0, M·s)
//	                 /\
//	                /  \
//	               / ┌┐ \
//	              /  └┘  \
//	m + (-M·s, -s) ------ m + (M·s, -s)
//
// where M is the margin factor. The bottom edge clears the box by at least s/2,
// and the slanted sides clear it by a wide margin for any M >= MinMarginFactor.
func SuperTriangle(points []Point, opts Options) (Triangle, error) {
	if len(points) < 3 {
		return Triangle{}, errors.Wrapf(ErrInsufficientPoints, "got %d", len(points))
	}
	if err := opts.Validate(); err != nil {
		return Triangle{}, err
	}
	if err := checkRange(points); err != nil {
		return Triangle{}, err
	}

	min, max := BoundingBox(points)
	span := max.X - min.X
	if h := max.Y - min.Y; h > span {
		span = h
	}
	if span < 1 {
		span = 1
	}
	mid := boxCenter(min, max)
	m := opts.MarginFactor

	return NewTriangle(
		Point{mid.X - m*span, mid.Y - span},
		Point{mid.X + m*span, mid.Y - span},
		Point{mid.X, mid.Y + m*span},
	), nil
}

// The super triangle as the triangulator sees it. Its vertices are stored as
// ordinary finite Points, but any predicate over a triangle touching them
// evaluates the super triangle stretched about the box center by liftFactor.
// That puts the super vertices outside the circumcircle of every triangle the
// input can form, however thin, so no hull triangle is lost to them.
type scaffold struct {
	super  Triangle
	center Point
}

// 2^256. Integer circumradii within the coordinate range are below 2^70, and
// the lifted determinants are polynomials in this factor whose coefficients
// stay far below it, so every sign is the one it takes in the limit.
var liftFactor = new(big.Int).Lsh(big.NewInt(1), 256)

func newScaffold(points []Point, opts Options) (scaffold, error) {
	super, err := SuperTriangle(points, opts)
	if err != nil {
		return scaffold{}, err
	}
	return scaffold{super: super, center: boxCenter(BoundingBox(points))}, nil
}

func (s scaffold) touches(t Triangle) bool {
	return t.SharesVertex(s.super)
}

func (s scaffold) lift(p Point) bigPoint {
	bp := newBigPoint(p)
	if !s.super.HasVertex(p) {
		return bp
	}
	cx, cy := big.NewInt(int64(s.center.X)), big.NewInt(int64(s.center.Y))
	bp.x.Sub(bp.x, cx).Mul(bp.x, liftFactor).Add(bp.x, cx)
	bp.y.Sub(bp.y, cy).Mul(bp.y, liftFactor).Add(bp.y, cy)
	return bp
}

func (s scaffold) liftTriangle(t Triangle) (a, b, c bigPoint) {
	return s.lift(t.a), s.lift(t.b), s.lift(t.c)
}

// Inclusive circumcircle test, exact for triangles touching the super
// triangle.
func (s scaffold) inCircumcircle(t Triangle, p Point) (bool, error) {
	if !s.touches(t) {
		return t.InCircumcircle(p)
	}
	a, b, c := s.liftTriangle(t)
	o := exactOrient(a, b, c)
	if o == 0 {
		return false, errors.Wrapf(ErrDegenerateTriangle, "scaffold triangle %s is flat", t)
	}
	return o*exactInCircle(a, b, c, s.lift(p)) >= 0, nil
}

func (s scaffold) isDegenerate(t Triangle) bool {
	if !s.touches(t) {
		return t.IsDegenerate()
	}
	return exactOrient(s.liftTriangle(t)) == 0
}

// Check that p lies strictly inside t. Boundary points are outside.
func StrictlyContains(t Triangle, p Point) bool {
	// Canonical triangles are counterclockwise, so the point must be strictly
	// left of every side.
	return IsCCW(t.a, t.b, p) && IsCCW(t.b, t.c, p) && IsCCW(t.c, t.a, p)
}

func boxCenter(min, max Point) Point {
	return Point{floorHalf(min.X + max.X), floorHalf(min.Y + max.Y)}
}

func floorHalf(v int) int {
	if v < 0 && v%2 != 0 {
		return v/2 - 1
	}
	return v / 2
}

func checkRange(points []Point) error {
	for _, p := range points {
		if !p.InRange() {
			return errors.Wrapf(ErrCoordinateRange, "point %s exceeds ±%d", p, MaxCoordinate)
		}
	}
	return nil
}
