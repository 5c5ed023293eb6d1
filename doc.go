// Package bpa reconstructs a triangular mesh from an oriented point cloud
// using the Ball-Pivoting algorithm: given a ball radius rho, it rolls a
// virtual ball of that radius over the sample points and emits a triangle
// whenever the ball rests tangentially on three samples with no other
// sample inside it.
//
// 🏐 What is bpa?
//
//	A focused Go port of the ball-pivoting surface reconstruction core,
//	organized as:
//
//	  • cloud/   — the oriented input samples, the used-vertex bitmap
//	  • geom/    — pure geometry: circumcircles, candidate ball centers,
//	               vertex-normal orientation
//	  • spatial/ — radius-search index over the cloud (gonum k-d tree)
//	  • front/   — the evolving mesh boundary (ACTIVE/BOUNDARY/FROZEN edges)
//	  • pivot/   — the Pivoter/Driver state machine: seed discovery,
//	               edge pivoting, triangle emission, termination
//
// Acquisition of the input cloud, normal estimation, file I/O, and choice
// of rho are all the caller's responsibility — this package consumes an
// already-oriented cloud and a radius, and returns triangles.
//
// Quick usage:
//
//	c, err := cloud.NewCloud(samples)
//	res, err := bpa.Reconstruct(c, rho)
//	// res.Triangles is the emitted mesh; res.Boundary is the residual
//	// front for diagnostics; res.Empty flags a zero-triangle run.
//
// See SPEC_FULL.md and DESIGN.md in the repository root for the full
// component design and the grounding behind each package.
package bpa
