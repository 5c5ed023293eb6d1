package pivot

import "github.com/whatisor/BPA/cloud"

// isEmptyBall is the empty-ball predicate (spec §4.4.3): true iff every
// element of neighborIds is one of excl0, excl1, excl2. A short-circuit: if
// neighborIds has more than three elements it cannot be fully accounted for
// by three exclusions, so the ball is non-empty without inspecting a
// single id.
func isEmptyBall(neighborIds []cloud.VertexId, excl0, excl1, excl2 cloud.VertexId) bool {
	if len(neighborIds) > 3 {
		return false
	}
	if len(neighborIds) == 0 {
		return true
	}
	for _, id := range neighborIds {
		if id != excl0 && id != excl1 && id != excl2 {
			return false
		}
	}
	return true
}
