// Package pivot is the Pivoter/Driver: the state machine that finds seed
// triangles, drives edge pivoting, emits triangles, and updates the Front
// and the per-vertex used bitmap (spec §4.4).
//
// Engine carries all per-run state explicitly (cloud, spatial index, used
// bitmap, front) rather than as ambient globals, so a run can be
// constructed, executed, and inspected deterministically (spec §9,
// "Re-architect as an explicit engine-state value").
package pivot

import (
	"github.com/whatisor/BPA/bpaerr"
	"github.com/whatisor/BPA/cloud"
	"github.com/whatisor/BPA/front"
	"github.com/whatisor/BPA/spatial"
)

// Stats summarizes one run for diagnostics (SPEC_FULL §5, supplementing
// spec §6's "residual Front ... available for diagnostics").
type Stats struct {
	Seeds         int
	Pivots        int
	ActiveCount   int
	BoundaryCount int
	FrozenCount   int
}

// Result is the output of a full reconstruction run.
type Result struct {
	// Triangles are the emitted triangles, in discovery order (spec §3).
	Triangles []cloud.Triangle

	// Boundary is the residual set of BOUNDARY edges at termination,
	// available for diagnostics (spec §6).
	Boundary []front.Edge

	// Empty is true iff zero triangles were emitted (spec §7,
	// EmptyReconstruction). This is a successful, non-error outcome.
	Empty bool

	// Stats summarizes the run.
	Stats Stats
}

// Engine is the explicit, inspectable per-run state: the immutable cloud
// and spatial index, the mutable used-bitmap and Front, and the
// reconstruction parameters. Construct with NewEngine; run with Run.
type Engine struct {
	cloud  *cloud.Cloud
	index  *spatial.Index
	front  *front.Front
	used   *cloud.UsedSet
	rho    float64
	cfg    Config
	events events

	triangles []cloud.Triangle
	seeds     int
	pivots    int
}

// NewEngine validates rho and the supplied Options, builds the spatial
// index over c, and returns a ready-to-run Engine. Returns
// bpaerr.ErrNonPositiveRadius or bpaerr.ErrNonPositiveEpsilon on invalid
// input (spec §7, InvalidInput).
func NewEngine(c *cloud.Cloud, rho float64, opts ...Option) (*Engine, error) {
	if rho <= 0 {
		return nil, bpaerr.ErrNonPositiveRadius
	}

	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &Engine{
		cloud:  c,
		index:  spatial.New(c),
		front:  front.New(),
		used:   cloud.NewUsedSet(c.Len()),
		rho:    rho,
		cfg:    cfg,
		events: events{log: cfg.Logger},
	}, nil
}

// Run executes the main loop (spec §4.4.4):
//
//	while true:
//	  while Front.popActive() yields e: pivot(e)
//	  seed = findSeed()
//	  if seed is none: break
//	  emit seed; insertTriangleEdges(seed)
func (e *Engine) Run() Result {
	for {
		for {
			edge, ok := e.front.PopActive()
			if !ok {
				break
			}
			e.runPivot(edge)
		}

		seed, ok := e.findSeed()
		if !ok {
			break
		}
		e.seeds++
		e.emit(seed)
	}

	return e.result()
}

// runPivot pivots one active edge, emitting a new triangle on success or
// marking the edge BOUNDARY on failure (spec §4.4.2 steps 5-6).
func (e *Engine) runPivot(edge front.Edge) {
	res := e.pivot(edge)
	if !res.found {
		// MarkBoundary cannot fail here: edge was just popped ACTIVE and
		// the Front guarantees no concurrent mutation (spec §5).
		_ = e.front.MarkBoundary(edge.Key())
		e.events.edgeBoundary(edge.A, edge.B)
		return
	}

	e.used.MarkUsed(res.winner)
	e.events.edgePivoted(edge.A, edge.B, res.winner)
	e.pivots++
	e.emit(res.triangle)
}

// emit appends t to the output, marks its vertices used, and feeds its
// three edges back into the Front (spec §4.4, invariant I1).
func (e *Engine) emit(t front.Triangle) {
	e.used.MarkAllUsed(t.V0, t.V1, t.V2)
	e.triangles = append(e.triangles, cloud.Triangle{V0: t.V0, V1: t.V1, V2: t.V2, Center: t.Center})
	e.front.InsertTriangleEdges(t)
}

// result assembles the final Result and Stats from accumulated state.
func (e *Engine) result() Result {
	active, boundary, frozen := e.front.Counts()

	return Result{
		Triangles: e.triangles,
		Boundary:  e.front.Boundary(),
		Empty:     len(e.triangles) == 0,
		Stats: Stats{
			Seeds:         e.seeds,
			Pivots:        e.pivots,
			ActiveCount:   active,
			BoundaryCount: boundary,
			FrozenCount:   frozen,
		},
	}
}
