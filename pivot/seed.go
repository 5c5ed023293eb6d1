package pivot

import (
	"github.com/whatisor/BPA/cloud"
	"github.com/whatisor/BPA/front"
	"github.com/whatisor/BPA/geom"
)

// findSeed implements spec §4.4.1: scan unused samples in index order;
// for each one with at least two other samples (used or not) within
// 2*rho, try every strict combination of two further distinct unused
// neighbors as a candidate triangle, and accept the first one whose
// candidate ball is empty.
//
// Per spec §9's REDESIGN FLAGS (the original iterates unordered pairs
// (j,k), trying both orders and duplicating work), this scans strict
// combinations j < k over neighbor-list positions, which is both cheaper
// and gives a stable, deterministic tie-break order (spec §4.1's
// determinism contract).
func (e *Engine) findSeed() (front.Triangle, bool) {
	for i0 := cloud.VertexId(0); int(i0) < e.cloud.Len(); i0++ {
		if e.used.IsUsed(i0) {
			continue
		}

		neighbors := e.index.Query(e.cloud.Position(i0), 2*e.rho)
		candidates := excluding(neighbors, i0)
		if len(candidates) < 2 {
			continue
		}

		for j := 0; j < len(candidates); j++ {
			i1 := candidates[j]
			if e.used.IsUsed(i1) {
				continue
			}
			for k := j + 1; k < len(candidates); k++ {
				i2 := candidates[k]
				if e.used.IsUsed(i2) {
					continue
				}

				tri, ok := e.trySeed(i0, i1, i2)
				if ok {
					return tri, true
				}
			}
		}
	}
	return front.Triangle{}, false
}

// trySeed attempts to form a seed triangle from the three given ids,
// returning the resulting front.Triangle (with its final, possibly
// reordered, vertex sequence) on success.
func (e *Engine) trySeed(i0, i1, i2 cloud.VertexId) (front.Triangle, bool) {
	bc, err := geom.CandidateBallCenter(e.cloud, i0, i1, i2, e.rho, e.cfg.Epsilon)
	if err != nil {
		e.events.candidateDiscarded(DiscardCollinear, i0, i1, i2)
		return front.Triangle{}, false
	}

	neighborhood := e.index.Query(bc.Center, e.rho)
	if !isEmptyBall(neighborhood, i0, i1, i2) {
		e.events.candidateDiscarded(DiscardNeighbors, i0, i1, i2)
		return front.Triangle{}, false
	}

	v0, v1, v2 := bc.Sequence[0], bc.Sequence[1], bc.Sequence[2]
	e.used.MarkAllUsed(v0, v1, v2)
	e.events.seedFound(v0, v1, v2)

	return front.Triangle{V0: v0, V1: v1, V2: v2, Center: bc.Center}, true
}

// excluding returns ids with target removed, preserving order.
func excluding(ids []cloud.VertexId, target cloud.VertexId) []cloud.VertexId {
	out := make([]cloud.VertexId, 0, len(ids))
	for _, id := range ids {
		if id != target {
			out = append(out, id)
		}
	}
	return out
}
