package pivot

import (
	"github.com/whatisor/BPA/cloud"
	"github.com/whatisor/BPA/front"
	"github.com/whatisor/BPA/geom"
	"gonum.org/v1/gonum/spatial/r3"
)

// pivotResult is the outcome of pivoting a single edge.
type pivotResult struct {
	triangle front.Triangle
	winner   cloud.VertexId
	found    bool
}

// pivot implements spec §4.4.2: rolls the ball about edge e, searching its
// 2*rho neighborhood for the candidate with the smallest pivoting angle
// that yields a valid, empty-balled, correctly-oriented triangle.
func (e *Engine) pivot(edge front.Edge) pivotResult {
	pv0 := e.cloud.Position(edge.A)
	pv1 := e.cloud.Position(edge.B)
	pOp := e.cloud.Position(edge.Opposite)
	m := edge.Midpoint(e.cloud)

	plane := buildPivotPlane(m, pv0, edge.Center, pOp)

	neighbors := e.index.Query(m, 2*e.rho)

	var (
		found     bool
		winner    cloud.VertexId
		winnerCtr geom.BallCenter
		bestAngle float64
	)

	for _, j := range neighbors {
		if j == edge.A || j == edge.B || j == edge.Opposite {
			continue
		}

		pj := e.cloud.Position(j)
		if plane.distanceTo(pj) > e.rho {
			e.events.candidateDiscarded(DiscardRange, edge.A, edge.B, j)
			continue
		}

		bc, err := geom.CandidateBallCenter(e.cloud, edge.A, edge.B, j, e.rho, e.cfg.Epsilon)
		if err != nil {
			e.events.candidateDiscarded(DiscardCollinear, edge.A, edge.B, j)
			continue
		}

		neighborhood := e.index.Query(bc.Center, e.rho)
		if !isEmptyBall(neighborhood, edge.A, edge.B, j) {
			e.events.candidateDiscarded(DiscardNeighbors, edge.A, edge.B, j)
			continue
		}

		// The final triangle is emitted as (edge.A, j, edge.B), a fixed
		// winding independent of whatever order CandidateBallCenter used
		// internally to find the ball center. Re-check that winding's own
		// face normal against the three vertex normals directly (spec
		// §4.4.2 step d) rather than inferring it from whether
		// CandidateBallCenter swapped — a swap flips the face normal it
		// used, so "no swap" and "this triangle's own winding is oriented"
		// are not the same condition.
		nFinal := r3.Cross(r3.Sub(pj, pv0), r3.Sub(pv1, pv0))
		if !geom.IsOriented(nFinal, e.cloud.Normal(edge.A), e.cloud.Normal(edge.B), e.cloud.Normal(j)) {
			e.events.candidateDiscarded(DiscardNormal, edge.A, edge.B, j)
			continue
		}

		angle := plane.angleOf(bc.Center)
		if !found || angle < bestAngle {
			found = true
			winner = j
			winnerCtr = bc
			bestAngle = angle
		}
	}

	if !found {
		return pivotResult{found: false}
	}

	tri := front.Triangle{V0: edge.A, V1: winner, V2: edge.B, Center: winnerCtr.Center}
	return pivotResult{triangle: tri, winner: winner, found: true}
}
