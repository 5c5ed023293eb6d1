// Package cloud defines the input data model for the ball-pivoting engine:
// oriented samples, the immutable point cloud that owns them, the per-vertex
// used-bitmap, and the emitted Triangle record.
//
// All APIs in this package are safe for concurrent reads; the cloud itself
// is never mutated after NewCloud returns (spec §3, "Immutable after
// ingestion"). UsedSet is the single mutable structure here and is owned
// and mutated exclusively by the pivot driver (spec §5).
package cloud

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// VertexId is the index of a Sample within its owning Cloud. VertexIds are
// used everywhere in place of pointers so the mesh graph's ownership stays
// acyclic (spec §9, "Re-architect around indices").
type VertexId int

// Sample is a single oriented point: a 3-D position and a unit surface
// normal. Samples are immutable once ingested into a Cloud.
type Sample struct {
	Position r3.Vec
	Normal   r3.Vec
}

// finite reports whether every component of v is a finite float64.
func finite(v r3.Vec) bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0) &&
		!math.IsNaN(v.Z) && !math.IsInf(v.Z, 0)
}

// Valid reports whether s has finite coordinates and a normal longer than
// normZeroEpsilon. The normal is not checked for unit length.
//
// Complexity: O(1).
func (s Sample) Valid() bool {
	if !finite(s.Position) || !finite(s.Normal) {
		return false
	}
	n := r3.Norm(s.Normal)

	return n > normZeroEpsilon
}

// normZeroEpsilon is the minimum acceptable normal length; shorter than this
// and the normal is considered degenerate (spec §7, ErrZeroNormal).
const normZeroEpsilon = 1e-9

// Triangle is an ordered triple of VertexIds together with the ball center
// that produced it. Orientation is counter-clockwise viewed from the side
// the vertex normals point toward. Triangles are immutable once appended to
// an output list (spec §3).
type Triangle struct {
	V0, V1, V2 VertexId
	Center     r3.Vec
}

// Vertices returns the triangle's three vertex ids in emission order.
func (t Triangle) Vertices() [3]VertexId {
	return [3]VertexId{t.V0, t.V1, t.V2}
}
