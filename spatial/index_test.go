package spatial_test

import (
	"testing"

	"github.com/whatisor/BPA/cloud"
	"github.com/whatisor/BPA/spatial"
	"gonum.org/v1/gonum/spatial/r3"
)

func grid() *cloud.Cloud {
	var samples []cloud.Sample
	for x := 0; x < 3; x++ {
		for y := 0; y < 3; y++ {
			samples = append(samples, cloud.Sample{
				Position: r3.Vec{X: float64(x), Y: float64(y), Z: 0},
				Normal:   r3.Vec{X: 0, Y: 0, Z: 1},
			})
		}
	}
	c, err := cloud.NewCloud(samples)
	if err != nil {
		panic(err)
	}
	return c
}

func TestIndex_QueryFindsNeighborsWithinRadius(t *testing.T) {
	c := grid()
	idx := spatial.New(c)

	got := idx.Query(r3.Vec{X: 1, Y: 1, Z: 0}, 1.01)
	// center (1,1) plus its four axis-aligned neighbors at distance 1.
	if len(got) != 5 {
		t.Fatalf("Query returned %d ids, want 5: %v", len(got), got)
	}
}

func TestIndex_QueryExcludesFartherSamples(t *testing.T) {
	c := grid()
	idx := spatial.New(c)

	got := idx.Query(r3.Vec{X: 0, Y: 0, Z: 0}, 0.5)
	if len(got) != 1 {
		t.Fatalf("Query(r=0.5) returned %d ids, want 1 (only the query's own sample)", len(got))
	}
}

func TestIndex_QueryEmptyFarFromCloud(t *testing.T) {
	c := grid()
	idx := spatial.New(c)

	got := idx.Query(r3.Vec{X: 100, Y: 100, Z: 100}, 0.1)
	if len(got) != 0 {
		t.Fatalf("Query far from the cloud returned %d ids, want 0", len(got))
	}
}
