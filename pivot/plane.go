package pivot

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// pivotPlane is the plane an edge's ball center sweeps while pivoting: it
// passes through the edge midpoint m and the current ball center c_e, with
// an orthonormal in-plane basis (u, v) anchored so angle 0 points toward
// the edge's opposite vertex (spec §4.4.2 steps 2-3).
//
// Per spec §9's REDESIGN FLAGS, angles are measured with atan2 over the
// full (u, v) basis rather than acos, so the two rotational senses around
// the edge are distinguishable; and the basis vectors are unit-normalized
// rather than scaled by an arbitrary constant before the cross product.
type pivotPlane struct {
	origin r3.Vec
	normal r3.Vec
	u, v   r3.Vec
}

// buildPivotPlane constructs the pivoting plane for an edge with midpoint
// m, one endpoint at pv0, current ball center centerE, and opposite vertex
// position pOp.
func buildPivotPlane(m, pv0, centerE, pOp r3.Vec) pivotPlane {
	diff1 := r3.Unit(r3.Sub(pv0, m))
	diff2 := r3.Unit(r3.Sub(centerE, m))
	y := r3.Unit(r3.Cross(diff1, diff2))
	normal := r3.Unit(r3.Cross(diff2, y))

	zero := r3.Sub(pOp, m)
	zeroInPlane := projectOut(zero, normal)
	u := r3.Unit(zeroInPlane)
	v := r3.Unit(r3.Cross(normal, u))

	return pivotPlane{origin: m, normal: normal, u: u, v: v}
}

// projectOut removes the component of vec along unit vector n, leaving the
// part of vec orthogonal to n.
func projectOut(vec, n r3.Vec) r3.Vec {
	return r3.Sub(vec, r3.Scale(r3.Dot(vec, n), n))
}

// distanceTo returns the unsigned distance from p to the plane.
func (p pivotPlane) distanceTo(point r3.Vec) float64 {
	return math.Abs(r3.Dot(r3.Sub(point, p.origin), p.normal))
}

// angleOf projects point onto the plane and returns its angle, in
// [0, 2*pi), measured from the zero-angle reference u, increasing toward v.
func (p pivotPlane) angleOf(point r3.Vec) float64 {
	d := r3.Sub(point, p.origin)
	inPlane := projectOut(d, p.normal)
	x := r3.Dot(inPlane, p.u)
	y := r3.Dot(inPlane, p.v)

	a := math.Atan2(y, x)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}
