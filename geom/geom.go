// Package geom implements the pure, deterministic geometric primitives
// behind every pivot decision: the circumscribed circle of three points,
// the candidate ball center above a triangle, and the vertex-normal
// orientation check (spec §4.2).
//
// Every function here is side-effect free and allocation-light; none of
// them touch the spatial index or the front — they operate only on the
// three (or four) points passed in.
package geom

import (
	"math"

	"github.com/whatisor/BPA/bpaerr"
	"github.com/whatisor/BPA/cloud"
	"gonum.org/v1/gonum/spatial/r3"
)

// DefaultEpsilon is the recommended comparison epsilon for collinearity and
// degeneracy checks (spec §4.2).
const DefaultEpsilon = 1e-7

// Circle is the circumscribed circle of a triangle: its center and radius.
type Circle struct {
	Center r3.Vec
	Radius float64
}

// CircumscribedCircle computes the circle through p0, p1, p2 using
// barycentric weights (spec §4.2).
//
// Returns bpaerr.ErrCollinear if the three points are (numerically)
// collinear, i.e. the area term A = |d01 x d12| is smaller than eps.
//
// Complexity: O(1).
func CircumscribedCircle(p0, p1, p2 r3.Vec, eps float64) (Circle, error) {
	d01 := r3.Sub(p0, p1)
	d12 := r3.Sub(p1, p2)
	d02 := r3.Sub(p0, p2)
	d10 := r3.Scale(-1, d01)
	d20 := r3.Scale(-1, d02)
	d21 := r3.Scale(-1, d12)

	area2 := r3.Norm(r3.Cross(d01, d12))
	if area2 < eps {
		return Circle{}, bpaerr.ErrCollinear
	}

	norm01 := r3.Norm(d01)
	norm12 := r3.Norm(d12)
	norm02 := r3.Norm(d02)

	denom := 2 * area2 * area2
	alpha := (norm12 * norm12 * r3.Dot(d01, d02)) / denom
	beta := (norm02 * norm02 * r3.Dot(d10, d12)) / denom
	gamma := (norm01 * norm01 * r3.Dot(d20, d21)) / denom

	center := r3.Add(r3.Add(r3.Scale(alpha, p0), r3.Scale(beta, p1)), r3.Scale(gamma, p2))
	radius := (norm01 * norm12 * norm02) / (2 * area2)

	return Circle{Center: center, Radius: radius}, nil
}

// IsOriented reports whether candidate face normal n agrees with a majority
// of the three vertex normals n0, n1, n2 — true iff at most one of the dot
// products n.n_i is strictly negative (spec §4.2).
func IsOriented(n, n0, n1, n2 r3.Vec) bool {
	count := 0
	if r3.Dot(n0, n) < 0 {
		count++
	}
	if r3.Dot(n1, n) < 0 {
		count++
	}
	if r3.Dot(n2, n) < 0 {
		count++
	}
	return count <= 1
}

// BallCenter is the result of a successful CandidateBallCenter call: the
// ball center itself, the (possibly reordered) vertex sequence used to
// compute it, and the circumradius of the triangle that produced it.
type BallCenter struct {
	Center     r3.Vec
	Sequence   [3]cloud.VertexId
	Circumrad  float64
	FaceNormal r3.Vec
}

// CandidateBallCenter computes the center of a ball of radius rho resting
// tangentially on the three samples at ids[0], ids[1], ids[2] in c, per
// spec §4.2:
//
//  1. face normal n = (p1-p0) x (p2-p0); fails with bpaerr.ErrCollinear if
//     |n| < eps.
//  2. normalize n.
//  3. if the orientation check fails for (p0,p1,p2), swap p0<->p1 and
//     recompute n so the emitted winding faces the normals' majority side.
//  4. circumcircle of the (possibly reordered) triple.
//  5. fails with bpaerr.ErrBallTooSmall if rho^2 - r_c^2 <= 0.
//  6. center = circumcenter + sqrt(rho^2 - r_c^2) * n.
func CandidateBallCenter(c *cloud.Cloud, i0, i1, i2 cloud.VertexId, rho, eps float64) (BallCenter, error) {
	p0 := c.Position(i0)
	p1 := c.Position(i1)
	p2 := c.Position(i2)
	seq := [3]cloud.VertexId{i0, i1, i2}

	v10 := r3.Sub(p1, p0)
	v20 := r3.Sub(p2, p0)
	n := r3.Cross(v10, v20)
	if r3.Norm(n) < eps {
		return BallCenter{}, bpaerr.ErrCollinear
	}
	n = r3.Unit(n)

	if !IsOriented(n, c.Normal(i0), c.Normal(i1), c.Normal(i2)) {
		// Swap p0<->p1 so the face winds CCW toward the outside (spec §4.2 step 3).
		p0, p1 = p1, p0
		seq[0], seq[1] = seq[1], seq[0]

		v10 = r3.Sub(p1, p0)
		v20 = r3.Sub(p2, p0)
		n = r3.Unit(r3.Cross(v10, v20))
	}

	circle, err := CircumscribedCircle(p0, p1, p2, eps)
	if err != nil {
		return BallCenter{}, err
	}

	squared := rho*rho - circle.Radius*circle.Radius
	if squared <= 0 {
		return BallCenter{}, bpaerr.ErrBallTooSmall
	}
	height := math.Sqrt(squared)
	center := r3.Add(circle.Center, r3.Scale(height, n))

	return BallCenter{Center: center, Sequence: seq, Circumrad: circle.Radius, FaceNormal: n}, nil
}
