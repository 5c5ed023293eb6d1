package meshgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/whatisor/BPA/cloud"
	"github.com/whatisor/BPA/meshgraph"
	"gonum.org/v1/gonum/spatial/r3"
)

func tri(v0, v1, v2 cloud.VertexId) cloud.Triangle {
	return cloud.Triangle{V0: v0, V1: v1, V2: v2, Center: r3.Vec{}}
}

func TestFromTriangles_SingleComponent(t *testing.T) {
	g := meshgraph.FromTriangles([]cloud.Triangle{tri(0, 1, 2), tri(1, 2, 3)})

	comps := meshgraph.Components(g)
	require.Len(t, comps, 1)
	assert.Len(t, comps[0], 4)
}

func TestFromTriangles_TwoIslands(t *testing.T) {
	g := meshgraph.FromTriangles([]cloud.Triangle{tri(0, 1, 2), tri(10, 11, 12)})

	comps := meshgraph.Components(g)
	require.Len(t, comps, 2)
	assert.Len(t, comps[0], 3)
	assert.Len(t, comps[1], 3)
}

func TestNeighbors_ReturnsSortedAdjacency(t *testing.T) {
	g := meshgraph.FromTriangles([]cloud.Triangle{tri(0, 1, 2)})

	ns, err := g.Neighbors(0)
	require.NoError(t, err)
	assert.Equal(t, []cloud.VertexId{1, 2}, ns)

	_, err = g.Neighbors(99)
	assert.ErrorIs(t, err, meshgraph.ErrVertexNotFound)
}

func TestBFS_DepthIsShortestHopCount(t *testing.T) {
	g := meshgraph.FromTriangles([]cloud.Triangle{tri(0, 1, 2), tri(2, 3, 4)})

	res, err := meshgraph.BFS(g, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Depth[0])
	assert.Equal(t, 1, res.Depth[1])
	assert.LessOrEqual(t, res.Depth[3], 2)
}
