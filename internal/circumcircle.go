package internal

import (
	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
)

type Circle struct {
	Center r2.Point
	Radius float64
}

// Compute the circle through the triangle's three vertices.
//
// Collinearity is decided on the exact integer orientation rather than by
// checking the float denominator for zero, so that nearly flat triangles with
// huge coordinates are not misclassified by rounding.
func (t Triangle) Circumcircle() (Circle, error) {
	if t.IsDegenerate() {
		return Circle{}, errors.Wrapf(ErrDegenerateTriangle, "vertices %s, %s, %s are collinear", t.a, t.b, t.c)
	}

	ax, ay := float64(t.a.X), float64(t.a.Y)
	bx, by := float64(t.b.X), float64(t.b.Y)
	cx, cy := float64(t.c.X), float64(t.c.Y)

	d := 2 * (ax*(by-cy) + bx*(cy-ay) + cx*(ay-by))

	aa := ax*ax + ay*ay
	bb := bx*bx + by*by
	cc := cx*cx + cy*cy

	center := r2.Point{
		X: (aa*(by-cy) + bb*(cy-ay) + cc*(ay-by)) / d,
		Y: (aa*(cx-bx) + bb*(ax-cx) + cc*(bx-ax)) / d,
	}
	radius := center.Sub(r2.Point{X: ax, Y: ay}).Norm()
	return Circle{Center: center, Radius: radius}, nil
}

// Check whether p lies inside the triangle's circumcircle. The boundary counts
// as inside, so cocircular points always invalidate the triangle.
//
// The test compares the query's distance to the center against the radius.
// Unlike the determinant form (see InCircleDeterminant) it does not depend on
// the winding of the vertices.
func (t Triangle) InCircumcircle(p Point) (bool, error) {
	circle, err := t.Circumcircle()
	if err != nil {
		return false, err
	}
	return circle.Contains(p), nil
}

// Inclusive containment
func (c Circle) Contains(p Point) bool {
	return c.distance(p) <= c.Radius
}

// Exclusive containment, with a small relative tolerance so that points which
// are cocircular up to rounding count as on the circle.
func (c Circle) ContainsStrictly(p Point) bool {
	return c.distance(p) < c.Radius*(1-Epsilon)
}

func (c Circle) distance(p Point) float64 {
	return c.Center.Sub(r2.Point{X: float64(p.X), Y: float64(p.Y)}).Norm()
}

// The classic in-circle determinant for d against the circle through a, b and
// c. The sign of the raw determinant is only meaningful for counterclockwise
// abc, so a clockwise triple has its result negated here. Positive means d is
// strictly inside, zero means cocircular and negative means outside.
//
// Collinear abc has no circle; the result is then zero or the sign of which
// side of the line d falls on, and should not be interpreted.
func InCircleDeterminant(a, b, c, d Point) float64 {
	adx, ady := float64(a.X-d.X), float64(a.Y-d.Y)
	bdx, bdy := float64(b.X-d.X), float64(b.Y-d.Y)
	cdx, cdy := float64(c.X-d.X), float64(c.Y-d.Y)

	det := (adx*adx+ady*ady)*(bdx*cdy-cdx*bdy) -
		(bdx*bdx+bdy*bdy)*(adx*cdy-cdx*ady) +
		(cdx*cdx+cdy*cdy)*(adx*bdy-bdx*ady)

	if IsCW(a, b, c) {
		return -det
	}
	return det
}
