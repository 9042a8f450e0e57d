// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"errors"
	"strings"
	"testing"

	"cogentcore.org/scenec/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func triangle(t *testing.T) *Mesh {
	ms, err := FromArrays(3, []float32{0, 0, 0, 1, 0, 0, 0, 1, 0}, 3, []uint32{0, 1, 2})
	require.NoError(t, err)
	return ms
}

func twoTriangles(t *testing.T) *Mesh {
	ms, err := FromArrays(3, []float32{0, 0, 0, 1, 0, 0, 1, 1, 0, 0, 1, 0}, 3, []uint32{0, 1, 2, 0, 2, 3})
	require.NoError(t, err)
	return ms
}

func TestFromArrays(t *testing.T) {
	ms := twoTriangles(t)
	assert.Equal(t, 3, ms.Dimension())
	assert.Equal(t, 4, ms.NumVertices())
	assert.Equal(t, 2, ms.NumFacets())
	assert.Equal(t, 6, ms.NumCorners())
	assert.Equal(t, []uint32{0, 2, 3}, ms.Facet(1))
	assert.Equal(t, []float32{1, 1, 0}, ms.Vertex(2))
	assert.Equal(t, math32.B3(0, 0, 0, 1, 1, 0), ms.BBox())
	assert.Equal(t, []string{VertexPositionName}, ms.AttributeNames())

	_, err := FromArrays(3, []float32{0, 0}, 3, nil)
	assert.Error(t, err)
	_, err = FromArrays(3, []float32{0, 0, 0}, 3, []uint32{0, 1, 2})
	assert.Error(t, err)
}

func TestEmptyMesh(t *testing.T) {
	ms := New(3, 3)
	assert.Equal(t, 0, ms.NumVertices())
	assert.True(t, ms.BBox().IsEmpty())
	i, err := ms.AddVertex(1, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, 0, i)
	_, err = ms.AddVertex(1, 2)
	assert.Error(t, err)
}

func TestCreateAttribute(t *testing.T) {
	ms := triangle(t)
	at, err := ms.CreateAttribute("size", Vertex, Scalar, 1, []float32{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, 3, at.Len())
	assert.Equal(t, []float32{2}, at.Value(1))

	_, err = ms.CreateAttribute("size", Vertex, Scalar, 1, []float32{1, 2, 3})
	assert.Error(t, err, "duplicate name")
	_, err = ms.CreateAttribute("bad", Facet, Scalar, 1, []float32{1, 2})
	assert.Error(t, err, "wrong count")
	_, err = ms.CreateAttribute("bad", Indexed, Scalar, 1, []float32{1})
	assert.Error(t, err)

	_, err = ms.CreateIndexedAttribute("uv", UV, 2, []float32{0, 0, 1, 1}, []uint32{0, 1, 1})
	require.NoError(t, err)
	assert.True(t, ms.IsAttributeIndexed("uv"))
	assert.False(t, ms.IsAttributeIndexed("size"))
	_, err = ms.CreateIndexedAttribute("uv2", UV, 2, []float32{0, 0}, []uint32{0, 1, 1})
	assert.Error(t, err, "index out of range")
}

func TestRenameAttribute(t *testing.T) {
	ms := triangle(t)
	_, err := ms.CreateAttribute("a", Vertex, Scalar, 1, []float32{1, 2, 3})
	require.NoError(t, err)
	_, err = ms.CreateAttribute("b", Facet, Scalar, 1, []float32{4})
	require.NoError(t, err)

	require.NoError(t, ms.RenameAttribute("a", "vertex_a_0"))
	assert.Equal(t, []string{VertexPositionName, "vertex_a_0", "b"}, ms.AttributeNames())
	at, err := ms.Attribute("vertex_a_0")
	require.NoError(t, err)
	assert.Equal(t, "vertex_a_0", at.Name)
	assert.False(t, ms.HasAttribute("a"))

	assert.Error(t, ms.RenameAttribute("b", "vertex_a_0"))
	assert.Error(t, ms.RenameAttribute(VertexPositionName, "p"))
	assert.True(t, errors.Is(ms.RenameAttribute("nope", "x"), ErrAttributeNotFound))

	require.NoError(t, ms.DeleteAttribute("b"))
	assert.Equal(t, []string{VertexPositionName, "vertex_a_0"}, ms.AttributeNames())
}

func TestCurrentName(t *testing.T) {
	ms := triangle(t)
	_, err := ms.CreateAttribute("a", Vertex, Scalar, 1, []float32{1, 2, 3})
	require.NoError(t, err)
	require.NoError(t, ms.RenameAttribute("a", "b"))
	require.NoError(t, ms.RenameAttribute("b", "c"))
	assert.Equal(t, "c", ms.CurrentName("a"))
	assert.Equal(t, "c", ms.CurrentName("b"))
	assert.Equal(t, "nope", ms.CurrentName("nope"))

	_, err = ms.CreateAttribute("a", Vertex, Scalar, 1, []float32{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, "a", ms.CurrentName("a"))
}

func TestUniqueName(t *testing.T) {
	ms := triangle(t)
	assert.Equal(t, "c", ms.UniqueName("c"))
	_, err := ms.CreateAttribute("c", Vertex, Scalar, 1, []float32{1, 2, 3})
	require.NoError(t, err)
	_, err = ms.CreateAttribute("c_1", Vertex, Scalar, 1, []float32{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, "c_2", ms.UniqueName("c"))
}

func TestScalePositions(t *testing.T) {
	ms := triangle(t)
	double := func(values []float32, nch int) error {
		assert.Equal(t, 3, nch)
		for i := range values {
			values[i] *= 2
		}
		return nil
	}
	require.NoError(t, ms.ScalePositions(double))
	require.NoError(t, ms.ScalePositions(double))
	assert.Equal(t, []float32{2, 0, 0}, ms.Vertex(1))

	_, err := ms.AddVertex(1, 1, 0)
	require.NoError(t, err)
	require.NoError(t, ms.ScalePositions(double))
	assert.Equal(t, []float32{2, 0, 0}, ms.Vertex(1))
	assert.Equal(t, []float32{2, 2, 0}, ms.Vertex(3))

	failed := errors.New("failed")
	err = ms.ScalePositions(func(values []float32, nch int) error {
		values[0] = 100
		return failed
	})
	assert.ErrorIs(t, err, failed)
	assert.Equal(t, []float32{0, 0, 0}, ms.Vertex(0))
}

func TestAttributeNotFound(t *testing.T) {
	ms := triangle(t)
	_, err := ms.CreateAttribute("size", Vertex, Scalar, 1, []float32{1, 2, 3})
	require.NoError(t, err)

	_, err = ms.Attribute("sise")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAttributeNotFound)
	assert.Contains(t, err.Error(), `did you mean "size"`)

	_, err = ms.Attribute("curvature")
	require.Error(t, err)
	assert.False(t, strings.Contains(err.Error(), "did you mean"))
}

func TestComputeVertexNormals(t *testing.T) {
	ms := twoTriangles(t)
	name, err := ms.ComputeVertexNormals()
	require.NoError(t, err)
	assert.Equal(t, VertexNormalName, name)
	at, err := ms.Attribute(name)
	require.NoError(t, err)
	assert.Equal(t, Normal, at.Usage)
	assert.Equal(t, Vertex, at.Element)
	for i := range ms.NumVertices() {
		assert.Equal(t, []float32{0, 0, 1}, at.Value(i))
	}

	name, err = ms.ComputeVertexNormals()
	require.NoError(t, err)
	assert.Equal(t, VertexNormalName+"_1", name)

	_, err = New(3, 0).ComputeVertexNormals()
	assert.Error(t, err)
}

func TestEdges(t *testing.T) {
	ms := twoTriangles(t)
	assert.Equal(t, [][2]uint32{{0, 1}, {1, 2}, {0, 2}, {2, 3}, {0, 3}}, ms.Edges())
}

func TestReadOBJ(t *testing.T) {
	src := `# quad
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vt 0 0
f 1/1 2/1 3/1 -1/1
`
	ms, err := ReadOBJ(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, 4, ms.NumVertices())
	assert.Equal(t, 2, ms.NumFacets())
	assert.Equal(t, []uint32{0, 2, 3}, ms.Facet(1))

	pts, err := ReadOBJ(strings.NewReader("v 0 0 0\nv 1 2 3\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, pts.NumVertices())
	assert.Equal(t, 0, pts.NumFacets())

	_, err = ReadOBJ(strings.NewReader("v 0 0 0\nf 1 2 3\n"))
	assert.Error(t, err)
}

func TestEnums(t *testing.T) {
	var el Element
	require.NoError(t, el.SetString("Facet"))
	assert.Equal(t, Facet, el)
	assert.Equal(t, "facet", el.String())
	assert.Error(t, el.SetString("edge"))

	var u Usage
	require.NoError(t, u.SetString("vector"))
	assert.True(t, u.IsGeneric())
	assert.False(t, Color.IsGeneric())
}
