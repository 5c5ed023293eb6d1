// Package bpaerr collects the sentinel error values shared across the
// reconstruction engine's subpackages (cloud, geom, front, pivot).
//
// Following spec §7, only the input-validation sentinels are true failures
// (the InvalidInput kind: fatal, reported before any triangle is emitted).
// EmptyReconstruction and PartialReconstruction are *not* errors: an empty
// run is flagged by Result.Empty, and a partial run shows up as emitted
// triangles together with a non-empty Result.Boundary; Result carries no
// separate partial flag.
package bpaerr

import "errors"

// Input-validation sentinels. Fatal: reported before any triangle is emitted.
var (
	// ErrTooFewSamples indicates the cloud has fewer than 3 samples.
	ErrTooFewSamples = errors.New("bpa: cloud has fewer than 3 samples")

	// ErrNonPositiveRadius indicates the ball radius rho is <= 0.
	ErrNonPositiveRadius = errors.New("bpa: ball radius must be positive")

	// ErrNonFiniteSample indicates a sample position or normal contains a
	// NaN or +/-Inf component.
	ErrNonFiniteSample = errors.New("bpa: non-finite coordinate or normal")

	// ErrZeroNormal indicates a sample's normal has (near) zero length.
	ErrZeroNormal = errors.New("bpa: zero-length normal")

	// ErrNonPositiveEpsilon indicates a caller-supplied comparison epsilon is <= 0.
	ErrNonPositiveEpsilon = errors.New("bpa: comparison epsilon must be positive")
)

// Front/geometry sentinels. Never surfaced to the Reconstruct caller; they
// are local skip conditions recovered by the pivot driver (spec §7).
var (
	// ErrCollinear indicates three points are (numerically) collinear and
	// cannot determine a unique circumscribed circle.
	ErrCollinear = errors.New("bpa: points are collinear")

	// ErrBallTooSmall indicates rho is smaller than the triangle's circumradius,
	// so no ball of radius rho can rest tangentially on all three points.
	ErrBallTooSmall = errors.New("bpa: ball radius smaller than circumradius")

	// ErrEdgeNotActive indicates Front.MarkBoundary or a re-pivot was attempted
	// on an edge whose status is not ACTIVE.
	ErrEdgeNotActive = errors.New("bpa: edge is not ACTIVE")

	// ErrDuplicateEdge indicates an internal attempt to insert a second Edge
	// record for an unordered vertex pair that already has one of the same kind.
	// No package in this module returns it: front.InsertTriangleEdges
	// reclassifies or ignores a repeated pair instead of failing.
	ErrDuplicateEdge = errors.New("bpa: duplicate edge key")
)
