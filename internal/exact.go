package internal

import "math/big"

// Exact predicates over arbitrary precision integers. These are only needed
// where the super triangle is involved: its vertices are lifted far beyond the
// int64 range before any test, so the fixed width Orient cannot be used.

type bigPoint struct {
	x, y *big.Int
}

func newBigPoint(p Point) bigPoint {
	return bigPoint{big.NewInt(int64(p.X)), big.NewInt(int64(p.Y))}
}

// Sign of the orientation of abc, as with Orient.
func exactOrient(a, b, c bigPoint) int {
	abx := new(big.Int).Sub(b.x, a.x)
	aby := new(big.Int).Sub(b.y, a.y)
	acx := new(big.Int).Sub(c.x, a.x)
	acy := new(big.Int).Sub(c.y, a.y)

	abx.Mul(abx, acy)
	aby.Mul(aby, acx)
	return abx.Cmp(aby)
}

// Sign of the raw in-circle determinant of d against abc. Positive means
// inside when abc is counterclockwise; callers must account for the winding.
func exactInCircle(a, b, c, d bigPoint) int {
	adx, ady := new(big.Int).Sub(a.x, d.x), new(big.Int).Sub(a.y, d.y)
	bdx, bdy := new(big.Int).Sub(b.x, d.x), new(big.Int).Sub(b.y, d.y)
	cdx, cdy := new(big.Int).Sub(c.x, d.x), new(big.Int).Sub(c.y, d.y)

	det := new(big.Int).Mul(liftedNorm(adx, ady), cross(bdx, bdy, cdx, cdy))
	det.Sub(det, new(big.Int).Mul(liftedNorm(bdx, bdy), cross(adx, ady, cdx, cdy)))
	det.Add(det, new(big.Int).Mul(liftedNorm(cdx, cdy), cross(adx, ady, bdx, bdy)))
	return det.Sign()
}

// x² + y²
func liftedNorm(x, y *big.Int) *big.Int {
	n := new(big.Int).Mul(x, x)
	return n.Add(n, new(big.Int).Mul(y, y))
}

// ux·vy − vx·uy
func cross(ux, uy, vx, vy *big.Int) *big.Int {
	c := new(big.Int).Mul(ux, vy)
	return c.Sub(c, new(big.Int).Mul(vx, uy))
}
