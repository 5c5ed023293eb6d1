// Package meshio adapts a reconstruction Result into interchange formats for
// downstream tools (mesh viewers, CAD import, other BPA ports), the same
// adapter role the teacher's converters package plays for external graph
// libraries — here the "external representation" is the Wavefront OBJ
// format rather than a graph library's native type.
package meshio

import (
	"fmt"
	"io"

	"github.com/whatisor/BPA/cloud"
)

// WriteOBJ writes c's positions as "v" records and triangles as 1-indexed
// "f" records in Wavefront OBJ format. Vertex normals are written as "vn"
// records and referenced from each face, since every sample in a Cloud
// already carries an oriented normal.
//
// Only vertices referenced by at least one triangle are meaningful to a
// consumer, but OBJ requires a dense vertex listing, so WriteOBJ emits the
// full cloud and lets unreferenced vertices go unused by any face — the
// same tradeoff the format imposes on any point-cloud-derived mesh.
func WriteOBJ(w io.Writer, c *cloud.Cloud, triangles []cloud.Triangle) error {
	for id := 0; id < c.Len(); id++ {
		p := c.Position(cloud.VertexId(id))
		if _, err := fmt.Fprintf(w, "v %g %g %g\n", p.X, p.Y, p.Z); err != nil {
			return err
		}
	}
	for id := 0; id < c.Len(); id++ {
		n := c.Normal(cloud.VertexId(id))
		if _, err := fmt.Fprintf(w, "vn %g %g %g\n", n.X, n.Y, n.Z); err != nil {
			return err
		}
	}
	for _, t := range triangles {
		v := t.Vertices()
		// OBJ indices are 1-based; vertex/normal index pairs are identical
		// here since WriteOBJ emits one normal per vertex.
		if _, err := fmt.Fprintf(w, "f %d//%d %d//%d %d//%d\n",
			v[0]+1, v[0]+1, v[1]+1, v[1]+1, v[2]+1, v[2]+1); err != nil {
			return err
		}
	}
	return nil
}
