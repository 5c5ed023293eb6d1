// Package spatial wraps the input cloud with a radius-search query: given a
// point and a radius, it returns the VertexIds of every sample within the
// closed ball of that radius (spec §4.1).
//
// The index is backed by gonum's k-d tree (gonum.org/v1/gonum/spatial/kdtree),
// built once from the full cloud and never mutated afterward, giving the
// O(log N + k) query contract spec §4.1 requires.
package spatial

import (
	"sort"

	"github.com/whatisor/BPA/cloud"
	"gonum.org/v1/gonum/spatial/kdtree"
	"gonum.org/v1/gonum/spatial/r3"
)

// point is a single kdtree.Comparable: a 3-D position tagged with the
// VertexId it came from.
type point struct {
	pos r3.Vec
	id  cloud.VertexId
}

// Compare returns the signed distance along dimension d, matching
// kdtree.Comparable.Compare.
func (p point) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	q := c.(point)
	return dim(p.pos, d) - dim(q.pos, d)
}

// Dims reports the fixed dimensionality of a point (always 3).
func (p point) Dims() int { return 3 }

// Distance returns the squared Euclidean distance to c, matching
// kdtree.Comparable.Distance (gonum's kdtree keepers compare on the
// squared metric to avoid a sqrt per candidate).
func (p point) Distance(c kdtree.Comparable) float64 {
	q := c.(point)
	d := r3.Sub(p.pos, q.pos)
	return r3.Dot(d, d)
}

func dim(v r3.Vec, d kdtree.Dim) float64 {
	switch d {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// points implements kdtree.Interface over a slice of point values, sortable
// along any of the three dimensions for the tree's recursive partitioning.
type points []point

func (p points) Index(i int) kdtree.Comparable { return p[i] }
func (p points) Len() int                      { return len(p) }
func (p points) Slice(start, end int) kdtree.Interface { return p[start:end] }

// Pivot partitions p around the median value along dimension d and returns
// the new index of that median element, per kdtree.Interface's contract.
func (p points) Pivot(d kdtree.Dim) int {
	sort.Sort(&dimSorter{points: p, dim: d})
	return len(p) / 2
}

// dimSorter sorts a points slice along a single dimension; used only while
// building the tree (Pivot), never during queries.
type dimSorter struct {
	points points
	dim    kdtree.Dim
}

func (s *dimSorter) Len() int { return len(s.points) }
func (s *dimSorter) Less(i, j int) bool {
	return dim(s.points[i].pos, s.dim) < dim(s.points[j].pos, s.dim)
}
func (s *dimSorter) Swap(i, j int) { s.points[i], s.points[j] = s.points[j], s.points[i] }

// Index is the immutable radius-search structure built once over a Cloud.
type Index struct {
	tree *kdtree.Tree
}

// New builds an Index over every sample in c. Construction is O(N log N).
func New(c *cloud.Cloud) *Index {
	samples := c.Samples()
	pts := make(points, len(samples))
	for i, s := range samples {
		pts[i] = point{pos: s.Position, id: cloud.VertexId(i)}
	}

	return &Index{tree: kdtree.New(pts, true)}
}

// Query returns the VertexIds of every sample within the closed ball of
// radius r centered at q. Order is unspecified but stable across calls for
// a fixed (q, r) within one run (spec §4.1's determinism contract): gonum's
// DistKeeper heap is sorted by ascending distance before Query returns.
//
// Complexity: O(log N + k) where k is the result size.
func (idx *Index) Query(q r3.Vec, r float64) []cloud.VertexId {
	keeper := kdtree.NewDistKeeper(r * r)
	idx.tree.NearestSet(keeper, point{pos: q})
	keeper.Sort()

	out := make([]cloud.VertexId, 0, keeper.Len())
	for _, cd := range keeper.Heap {
		out = append(out, cd.Comparable.(point).id)
	}

	return out
}
