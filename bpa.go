package bpa

import (
	"github.com/whatisor/BPA/cloud"
	"github.com/whatisor/BPA/pivot"
)

// Option configures a reconstruction run. See WithEpsilon and WithLogger.
type Option = pivot.Option

// WithEpsilon overrides the comparison epsilon used by the geometry kernel
// for collinearity and degeneracy checks (default geom.DefaultEpsilon).
var WithEpsilon = pivot.WithEpsilon

// WithLogger wires a structured event sink for the run (default: no-op,
// the engine performs no I/O of its own).
var WithLogger = pivot.WithLogger

// Stats summarizes one reconstruction run for diagnostics.
type Stats = pivot.Stats

// Result is the output of Reconstruct.
type Result = pivot.Result

// Reconstruct runs the Ball-Pivoting algorithm over c with ball radius rho,
// returning the emitted triangle mesh and the residual Front for
// diagnostics. rho must be positive; c must already carry oriented,
// finite samples (see cloud.NewCloud).
//
// Reconstruct is deterministic: the same cloud, radius, and options always
// produce the same triangle sequence (spec property R2).
func Reconstruct(c *cloud.Cloud, rho float64, opts ...Option) (Result, error) {
	engine, err := pivot.NewEngine(c, rho, opts...)
	if err != nil {
		return Result{}, err
	}

	return engine.Run(), nil
}
