// Package front maintains the evolving boundary of the reconstructed
// surface: a keyed collection of Edge records classified ACTIVE, BOUNDARY,
// or FROZEN (spec §4.3).
//
// Front owns all Edge records; callers reach them only through the
// operations below, which enforce the status-transition invariants
// (ACTIVE->FROZEN, ACTIVE->BOUNDARY, never ACTIVE->ACTIVE re-creation, and
// BOUNDARY is never reclassified — spec invariants I1/I2).
package front

import (
	"github.com/whatisor/BPA/bpaerr"
	"github.com/whatisor/BPA/cloud"
	"gonum.org/v1/gonum/spatial/r3"
)

// Status classifies an Edge's eligibility for pivoting.
type Status int

const (
	// Active edges are eligible for pivoting.
	Active Status = iota
	// Boundary edges could not be pivoted: no valid candidate was found.
	Boundary
	// Frozen edges are interior: both adjacent triangles have been emitted.
	Frozen
)

func (s Status) String() string {
	switch s {
	case Active:
		return "ACTIVE"
	case Boundary:
		return "BOUNDARY"
	case Frozen:
		return "FROZEN"
	default:
		return "UNKNOWN"
	}
}

// Key is the unordered vertex pair identifying an Edge in the Front.
type Key struct {
	A, B cloud.VertexId
}

// newKey returns the canonical (order-independent) Key for a, b.
func newKey(a, b cloud.VertexId) Key {
	if a <= b {
		return Key{A: a, B: b}
	}
	return Key{A: b, B: a}
}

// Edge is the Front's record for one unordered vertex pair: the opposite
// vertex and ball center of the triangle that introduced it, and its status
// (spec §3). The derived quantities are not cached; Midpoint and
// PivotingRadius compute them on demand.
type Edge struct {
	A, B     cloud.VertexId
	Opposite cloud.VertexId
	Center   r3.Vec
	Status   Status
}

// Key returns e's canonical lookup key.
func (e Edge) Key() Key { return newKey(e.A, e.B) }

// Midpoint returns (pa+pb)/2 given the positions of e's two endpoints.
func (e Edge) Midpoint(c *cloud.Cloud) r3.Vec {
	return r3.Scale(0.5, r3.Add(c.Position(e.A), c.Position(e.B)))
}

// PivotingRadius returns the radius of the circle traced by the ball center
// while pivoting about e: the distance from e's midpoint to its ball
// center (spec §3).
func (e Edge) PivotingRadius(c *cloud.Cloud) float64 {
	return r3.Norm(r3.Sub(e.Center, e.Midpoint(c)))
}

// Triangle identifies the triangle whose three edges are to be absorbed by
// InsertTriangleEdges: each edge's opposite vertex is the triangle's third
// vertex, and all three share the triangle's ball center.
type Triangle struct {
	V0, V1, V2 cloud.VertexId
	Center     r3.Vec
}

// Front is the keyed collection of Edge records forming the reconstruction
// boundary. The zero value is not usable; construct with New.
type Front struct {
	edges map[Key]*Edge
	// active is a FIFO/LIFO-agnostic work list of keys currently ACTIVE,
	// scanned lazily by PopActive to tolerate edges that were reclassified
	// out of ACTIVE after being queued.
	active []Key
}

// New returns an empty Front.
func New() *Front {
	return &Front{edges: make(map[Key]*Edge)}
}

// edgeOf returns the three (vertex-pair, opposite-vertex) triples implied by
// a Triangle, in emission order.
func edgeOf(t Triangle) [3]struct {
	a, b, opp cloud.VertexId
} {
	return [3]struct {
		a, b, opp cloud.VertexId
	}{
		{t.V0, t.V1, t.V2},
		{t.V1, t.V2, t.V0},
		{t.V2, t.V0, t.V1},
	}
}

// InsertTriangleEdges absorbs the three edges of a newly emitted triangle
// (spec §4.3):
//
//   - absent: insert ACTIVE, with opposite vertex and ball center from t.
//   - present and ACTIVE: reclassify to FROZEN (edge is now interior).
//   - present and BOUNDARY or FROZEN: leave unchanged (invariant I2).
func (f *Front) InsertTriangleEdges(t Triangle) {
	for _, e := range edgeOf(t) {
		key := newKey(e.a, e.b)
		existing, ok := f.edges[key]
		if !ok {
			rec := &Edge{A: e.a, B: e.b, Opposite: e.opp, Center: t.Center, Status: Active}
			f.edges[key] = rec
			f.active = append(f.active, key)
			continue
		}
		if existing.Status == Active {
			existing.Status = Frozen
		}
		// BOUNDARY or FROZEN: invariant I2, never reclassified.
	}
}

// PopActive removes and returns an arbitrary ACTIVE edge, or ok=false if
// none remain. Iteration policy is LIFO (spec §4.3 leaves the policy
// unspecified; any valid policy produces a valid mesh).
func (f *Front) PopActive() (Edge, bool) {
	for len(f.active) > 0 {
		key := f.active[len(f.active)-1]
		f.active = f.active[:len(f.active)-1]

		rec, ok := f.edges[key]
		if ok && rec.Status == Active {
			return *rec, true
		}
		// Stale entry: the edge was reclassified since being queued. Skip.
	}
	return Edge{}, false
}

// MarkBoundary transitions e (identified by its endpoints) from ACTIVE to
// BOUNDARY. Returns bpaerr.ErrEdgeNotActive if the edge is missing or not
// currently ACTIVE.
func (f *Front) MarkBoundary(key Key) error {
	rec, ok := f.edges[key]
	if !ok || rec.Status != Active {
		return bpaerr.ErrEdgeNotActive
	}
	rec.Status = Boundary
	return nil
}

// Empty reports whether any ACTIVE edge remains in the Front.
func (f *Front) Empty() bool {
	_, ok := f.peekActive()
	return !ok
}

// peekActive scans (without mutating) the active worklist for a still-live
// ACTIVE entry; used by Empty to avoid popping state it must not consume.
func (f *Front) peekActive() (Key, bool) {
	for i := len(f.active) - 1; i >= 0; i-- {
		key := f.active[i]
		if rec, ok := f.edges[key]; ok && rec.Status == Active {
			return key, true
		}
	}
	return Key{}, false
}

// Boundary returns a snapshot of every BOUNDARY edge currently in the
// Front, for diagnostics (spec §6, "residual Front ... available for
// diagnostics").
func (f *Front) Boundary() []Edge {
	var out []Edge
	for _, rec := range f.edges {
		if rec.Status == Boundary {
			out = append(out, *rec)
		}
	}
	return out
}

// Counts returns the number of edges currently in each status, for
// Stats reporting.
func (f *Front) Counts() (active, boundary, frozen int) {
	for _, rec := range f.edges {
		switch rec.Status {
		case Active:
			active++
		case Boundary:
			boundary++
		case Frozen:
			frozen++
		}
	}
	return active, boundary, frozen
}

// Lookup returns the Edge record for the unordered pair (a,b), if present.
func (f *Front) Lookup(a, b cloud.VertexId) (Edge, bool) {
	rec, ok := f.edges[newKey(a, b)]
	if !ok {
		return Edge{}, false
	}
	return *rec, true
}
