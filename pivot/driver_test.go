package pivot_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/whatisor/BPA/bpaerr"
	"github.com/whatisor/BPA/cloud"
	"github.com/whatisor/BPA/geom"
	"github.com/whatisor/BPA/pivot"
	"gonum.org/v1/gonum/spatial/r3"
)

func up(x, y, z float64) cloud.Sample {
	return cloud.Sample{Position: r3.Vec{X: x, Y: y, Z: z}, Normal: r3.Vec{X: 0, Y: 0, Z: 1}}
}

// S1 — single triangle.
func TestEngine_S1_SingleTriangle(t *testing.T) {
	c, err := cloud.NewCloud([]cloud.Sample{up(0, 0, 0), up(1, 0, 0), up(0, 1, 0)})
	require.NoError(t, err)

	eng, err := pivot.NewEngine(c, 1.0)
	require.NoError(t, err)

	res := eng.Run()
	require.Len(t, res.Triangles, 1)
	assert.False(t, res.Empty)

	tri := res.Triangles[0]
	seen := map[cloud.VertexId]bool{tri.V0: true, tri.V1: true, tri.V2: true}
	assert.Len(t, seen, 3)
	for _, id := range []cloud.VertexId{0, 1, 2} {
		assert.True(t, seen[id], "vertex %d should be part of the single triangle", id)
	}
	assert.Greater(t, tri.Center.Z, 0.0)
}

// S3 — under-sampled: samples 3*rho apart, no seed possible.
func TestEngine_S3_UnderSampled(t *testing.T) {
	c, err := cloud.NewCloud([]cloud.Sample{
		up(0, 0, 0),
		up(3, 0, 0),
		up(6, 0, 0), // kept isolated too; still need >=3 samples overall
	})
	require.NoError(t, err)

	eng, err := pivot.NewEngine(c, 1.0) // rho=1, spacing 3 => 3*rho apart
	require.NoError(t, err)

	res := eng.Run()
	assert.True(t, res.Empty)
	assert.Empty(t, res.Triangles)
	assert.Equal(t, 0, res.Stats.Seeds)
}

// B1 — collinear triple never produces a triangle.
func TestEngine_B1_CollinearTriple(t *testing.T) {
	c, err := cloud.NewCloud([]cloud.Sample{up(0, 0, 0), up(1, 0, 0), up(2, 0, 0)})
	require.NoError(t, err)

	eng, err := pivot.NewEngine(c, 5.0)
	require.NoError(t, err)

	res := eng.Run()
	assert.True(t, res.Empty)
	assert.Empty(t, res.Triangles)
}

// B2 — three non-collinear points with agreeing normals and circumradius
// <= rho: exactly one triangle.
func TestEngine_B2_NonCollinearAgreeingNormals(t *testing.T) {
	c, err := cloud.NewCloud([]cloud.Sample{up(0, 0, 0), up(1, 0, 0), up(0.5, 0.8, 0)})
	require.NoError(t, err)

	eng, err := pivot.NewEngine(c, 1.0)
	require.NoError(t, err)

	res := eng.Run()
	require.Len(t, res.Triangles, 1)
}

// S5 — ball too small: pairwise distance exceeds what rho can span.
func TestEngine_S5_BallTooSmall(t *testing.T) {
	c, err := cloud.NewCloud([]cloud.Sample{
		up(0, 0, 0),
		up(2.5, 0, 0),
		up(1.25, 2.5, 0),
	})
	require.NoError(t, err)

	eng, err := pivot.NewEngine(c, 1.0)
	require.NoError(t, err)

	res := eng.Run()
	assert.True(t, res.Empty)
}

func TestNewEngine_RejectsNonPositiveRadius(t *testing.T) {
	c, err := cloud.NewCloud([]cloud.Sample{up(0, 0, 0), up(1, 0, 0), up(0, 1, 0)})
	require.NoError(t, err)

	_, err = pivot.NewEngine(c, 0)
	require.ErrorIs(t, err, bpaerr.ErrNonPositiveRadius)

	_, err = pivot.NewEngine(c, -1)
	require.ErrorIs(t, err, bpaerr.ErrNonPositiveRadius)
}

func TestNewEngine_RejectsNonPositiveEpsilon(t *testing.T) {
	c, err := cloud.NewCloud([]cloud.Sample{up(0, 0, 0), up(1, 0, 0), up(0, 1, 0)})
	require.NoError(t, err)

	_, err = pivot.NewEngine(c, 1.0, pivot.WithEpsilon(0))
	require.ErrorIs(t, err, bpaerr.ErrNonPositiveEpsilon)
}

// S2 — regular grid: a 5x5 grid of unit-spaced samples at rho=0.75
// triangulates into exactly 32 triangles with 16 BOUNDARY perimeter edges
// (spec §8, scenario S2), and every emitted triangle respects the
// circumradius bound (P2) and orientation majority (P3).
func TestEngine_SmallGrid_InvariantsHold(t *testing.T) {
	var samples []cloud.Sample
	for x := 0; x < 5; x++ {
		for y := 0; y < 5; y++ {
			samples = append(samples, up(float64(x), float64(y), 0))
		}
	}
	c, err := cloud.NewCloud(samples)
	require.NoError(t, err)

	eng, err := pivot.NewEngine(c, 0.75)
	require.NoError(t, err)

	res := eng.Run()
	require.Len(t, res.Triangles, 32, "S2: 5x5 grid at rho=0.75 must triangulate into exactly 32 triangles")
	require.Len(t, res.Boundary, 16, "S2: perimeter must leave exactly 16 BOUNDARY edges")

	for _, tri := range res.Triangles {
		p0, p1, p2 := c.Position(tri.V0), c.Position(tri.V1), c.Position(tri.V2)
		circle, err := geom.CircumscribedCircle(p0, p1, p2, geom.DefaultEpsilon)
		require.NoError(t, err)
		assert.LessOrEqual(t, circle.Radius, 0.75+1e-9, "P2: circumradius must not exceed rho")

		n0, n1, n2 := c.Normal(tri.V0), c.Normal(tri.V1), c.Normal(tri.V2)
		faceNormal := r3.Unit(r3.Cross(r3.Sub(p1, p0), r3.Sub(p2, p0)))
		assert.True(t, geom.IsOriented(faceNormal, n0, n1, n2), "P3: winding must agree with vertex normals")
	}
}
