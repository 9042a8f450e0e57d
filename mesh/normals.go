// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"cogentcore.org/scenec/base/errors"
	"cogentcore.org/scenec/math32"
)

// ComputeVertexNormals computes area-weighted vertex normals and stores
// them in a new 3-channel [Vertex] [Normal] attribute, returning its name.
// The name is [VertexNormalName], made unique if needed.
// Vertices that are not used by any facet get a zero normal.
func (ms *Mesh) ComputeVertexNormals() (string, error) {
	if ms.facetSize < 3 {
		return "", errors.New("mesh: normals require polygonal facets")
	}
	nv := ms.NumVertices()
	normals := make([]math32.Vector3, nv)
	for f := range ms.NumFacets() {
		fc := ms.Facet(f)
		p0 := math32.Vector3FromSlice(ms.Vertex(int(fc[0])))
		// fan triangulation; the cross product length is twice the area
		var fn math32.Vector3
		for k := 1; k+1 < len(fc); k++ {
			p1 := math32.Vector3FromSlice(ms.Vertex(int(fc[k])))
			p2 := math32.Vector3FromSlice(ms.Vertex(int(fc[k+1])))
			fn.SetAdd(p1.Sub(p0).Cross(p2.Sub(p0)))
		}
		for _, v := range fc {
			normals[v].SetAdd(fn)
		}
	}
	values := make([]float32, 0, 3*nv)
	for _, n := range normals {
		n = n.Normal()
		values = append(values, n.X, n.Y, n.Z)
	}
	name := ms.UniqueName(VertexNormalName)
	if _, err := ms.CreateAttribute(name, Vertex, Normal, 3, values); err != nil {
		return "", err
	}
	return name, nil
}
