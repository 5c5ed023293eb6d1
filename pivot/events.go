package pivot

import (
	"github.com/rs/zerolog"

	"github.com/whatisor/BPA/cloud"
)

// DiscardReason names why a pivot or seed candidate was rejected. These are
// never surfaced as errors (spec §7); they exist purely for the
// candidate-discarded-* structured events in spec §6.
type DiscardReason string

// Discard reasons mirroring spec §6's event names.
const (
	DiscardNeighbors DiscardReason = "neighbors"
	DiscardNormal    DiscardReason = "normal"
	DiscardCollinear DiscardReason = "collinear"
	DiscardRange     DiscardReason = "range"
)

// events emits the structured, leveled observability events named in spec
// §6 through a caller-supplied zerolog.Logger. The engine performs no file
// or console I/O of its own (spec §1 Non-goal); the zero value's Logger is
// zerolog.Nop(), so events are silently dropped unless a sink is wired via
// WithLogger.
type events struct {
	log zerolog.Logger
}

func (e events) seedFound(v0, v1, v2 cloud.VertexId) {
	e.log.Debug().
		Int("v0", int(v0)).Int("v1", int(v1)).Int("v2", int(v2)).
		Msg("seed-found")
}

func (e events) edgePivoted(a, b, winner cloud.VertexId) {
	e.log.Debug().
		Int("a", int(a)).Int("b", int(b)).Int("winner", int(winner)).
		Msg("edge-pivoted")
}

func (e events) edgeBoundary(a, b cloud.VertexId) {
	e.log.Debug().
		Int("a", int(a)).Int("b", int(b)).
		Msg("edge-boundary")
}

func (e events) candidateDiscarded(reason DiscardReason, ids ...cloud.VertexId) {
	arr := zerolog.Arr()
	for _, id := range ids {
		arr.Int(int(id))
	}
	e.log.Trace().
		Str("reason", string(reason)).
		Array("ids", arr).
		Msg("candidate-discarded")
}
