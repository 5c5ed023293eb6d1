package cloud

import (
	"github.com/whatisor/BPA/bpaerr"
	"gonum.org/v1/gonum/spatial/r3"
)

// Cloud owns the full set of oriented samples ingested by the engine. It is
// built once from a caller-supplied slice and never mutated afterward.
//
// Complexity: NewCloud is O(N) in the number of samples; all other methods
// are O(1).
type Cloud struct {
	samples []Sample
}

// NewCloud validates and wraps samples into a Cloud. It returns
// bpaerr.ErrTooFewSamples if len(samples) < 3, bpaerr.ErrNonFiniteSample if
// any position or normal has a non-finite component, and
// bpaerr.ErrZeroNormal if any normal is (near) zero length. Per spec §7
// these, together with the radius and epsilon checks in pivot.NewEngine,
// are the only fatal, pre-reconstruction failures.
func NewCloud(samples []Sample) (*Cloud, error) {
	if len(samples) < 3 {
		return nil, bpaerr.ErrTooFewSamples
	}
	for _, s := range samples {
		if !finite(s.Position) || !finite(s.Normal) {
			return nil, bpaerr.ErrNonFiniteSample
		}
		if r3.Norm(s.Normal) <= normZeroEpsilon {
			return nil, bpaerr.ErrZeroNormal
		}
	}
	cp := make([]Sample, len(samples))
	copy(cp, samples)

	return &Cloud{samples: cp}, nil
}

// Len returns the number of samples in the cloud.
func (c *Cloud) Len() int { return len(c.samples) }

// At returns the sample at the given VertexId. The caller must ensure
// 0 <= id < c.Len(); out-of-range access is a programmer error (spec §4.1,
// "NaN input is a programmer error").
func (c *Cloud) At(id VertexId) Sample { return c.samples[id] }

// Position is a convenience accessor equivalent to c.At(id).Position.
func (c *Cloud) Position(id VertexId) r3.Vec { return c.samples[id].Position }

// Normal is a convenience accessor equivalent to c.At(id).Normal.
func (c *Cloud) Normal(id VertexId) r3.Vec { return c.samples[id].Normal }

// Samples returns the underlying sample slice. Callers must not mutate it;
// the returned slice aliases the Cloud's internal storage for read-only
// iteration (e.g. by the spatial index builder).
func (c *Cloud) Samples() []Sample { return c.samples }
