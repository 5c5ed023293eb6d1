package pivot

import "github.com/whatisor/BPA/cloud"

// toVertexIds converts plain ints to VertexIds for table-driven test cases.
func toVertexIds(ids []int) []cloud.VertexId {
	out := make([]cloud.VertexId, len(ids))
	for i, id := range ids {
		out[i] = cloud.VertexId(id)
	}
	return out
}
