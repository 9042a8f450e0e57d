// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compiler

import (
	"fmt"
	"runtime"
	"testing"
	"time"

	"cogentcore.org/scenec/colors"
	"cogentcore.org/scenec/colors/colormap"
	"cogentcore.org/scenec/grammar"
	"cogentcore.org/scenec/mesh"
	"cogentcore.org/scenec/scale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func triangle(t *testing.T) *mesh.Mesh {
	ms, err := mesh.FromArrays(3, []float32{0, 0, 0, 1, 0, 0, 0, 1, 0}, 3, []uint32{0, 1, 2})
	require.NoError(t, err)
	return ms
}

func withScalar(t *testing.T, ms *mesh.Mesh, name string, el mesh.Element, values ...float32) *mesh.Mesh {
	_, err := ms.CreateAttribute(name, el, mesh.Scalar, 1, values)
	require.NoError(t, err)
	return ms
}

func activeKeys(vw *View) []string {
	keys := make([]string, len(vw.ActiveAttributes))
	for i, at := range vw.ActiveAttributes {
		keys[i] = at.Key()
	}
	return keys
}

func TestSurfaceDefaults(t *testing.T) {
	ms := triangle(t)
	vw := NewView("surface", ms, grammar.Surface)
	require.NoError(t, Compile(vw))

	require.NotNil(t, vw.Position)
	assert.Equal(t, mesh.VertexPositionName, vw.Position.Data.Name)
	require.Len(t, vw.Position.Data.Scale, 2)
	assert.IsType(t, scale.Uniform{}, vw.Position.Data.Scale[0])
	assert.Equal(t, scale.Normalize{Min: []float32{-1}, Max: []float32{1}}, vw.Position.Data.Scale[1])

	require.NotNil(t, vw.Normal)
	assert.Equal(t, mesh.VertexNormalName, vw.Normal.Data.Name)
	assert.Empty(t, vw.Normal.Data.Scale)
	nat, err := ms.Attribute(vw.Normal.Data.Key())
	require.NoError(t, err)
	assert.Equal(t, mesh.Normal, nat.Usage)

	mat, ok := vw.Material.(*grammar.Diffuse)
	require.True(t, ok)
	assert.Equal(t, grammar.UniformColor(colors.Ivory), mat.Reflectance)

	assert.Nil(t, vw.Size)
	assert.Equal(t, []string{mesh.VertexPositionName, mesh.VertexNormalName}, activeKeys(vw))
}

func TestPointDefaults(t *testing.T) {
	ms := triangle(t)
	vw := NewView("points", ms, grammar.Point)
	require.NoError(t, Compile(vw))

	assert.NotNil(t, vw.Position)
	assert.Nil(t, vw.Normal)
	assert.False(t, ms.HasAttribute(mesh.VertexNormalName))
	assert.IsType(t, &grammar.Diffuse{}, vw.Material)
	assert.Equal(t, []string{mesh.VertexPositionName}, activeKeys(vw))
}

func TestPositionScaleRange(t *testing.T) {
	ms, err := mesh.FromArrays(3, []float32{0, 0, 0, 10, 0, 0, 0, 4, 2, 3, -6, 1}, 3, []uint32{0, 1, 2, 1, 3, 2})
	require.NoError(t, err)
	vw := NewView("scaled", ms, grammar.Surface)
	require.NoError(t, Compile(vw))

	for i := range ms.NumVertices() {
		for _, c := range ms.Vertex(i) {
			assert.GreaterOrEqual(t, c, float32(-1))
			assert.LessOrEqual(t, c, float32(1))
		}
	}
	bb := ms.BBox()
	assert.InDelta(t, -1, bb.Min.X, 1e-6)
	assert.InDelta(t, 1, bb.Max.X, 1e-6)
	assert.InDelta(t, 0, bb.Center().Y, 1e-6)
}

func TestEmptyMesh(t *testing.T) {
	ms := mesh.New(3, 3)
	vw := NewView("empty", ms, grammar.Point)
	require.NoError(t, Compile(vw))
	require.NotNil(t, vw.Position)
	assert.Empty(t, vw.Position.Data.Scale)
	assert.Equal(t, mesh.VertexPositionName, vw.Position.Data.Key())
}

func TestSizeRename(t *testing.T) {
	ms := withScalar(t, triangle(t), "size", mesh.Vertex, 1, 2, 3)
	vw := NewView("sized", ms, grammar.Point, grammar.NewSize(grammar.NewAttribute("size")))
	require.NoError(t, Compile(vw))

	assert.Equal(t, "vertex_size_0", vw.Size.Data.Key())
	assert.False(t, ms.HasAttribute("size"))
	at, err := ms.Attribute("vertex_size_0")
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 2, 3}, at.Values)

	n := 0
	for _, k := range activeKeys(vw) {
		if k == "vertex_size_0" {
			n++
		}
	}
	assert.Equal(t, 1, n)
}

func TestScaledAttribute(t *testing.T) {
	ms := withScalar(t, triangle(t), "size", mesh.Vertex, 1, 2, 3)
	vw := NewView("sized", ms, grammar.Point, grammar.NewSize(grammar.NewAttribute("size", scale.Uniform{Factor: 2})))
	require.NoError(t, Compile(vw))

	assert.Equal(t, "vertex_size_scaled_0", vw.Size.Data.Key())
	raw, err := ms.Attribute("size")
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 2, 3}, raw.Values)
	scaled, err := ms.Attribute("vertex_size_scaled_0")
	require.NoError(t, err)
	assert.Equal(t, []float32{2, 4, 6}, scaled.Values)
}

func TestRenameCollisionFree(t *testing.T) {
	ms := triangle(t)
	withScalar(t, ms, "a", mesh.Vertex, 0, 1, 2)
	withScalar(t, ms, "vertex_a_0", mesh.Vertex, 7, 7, 7)
	withScalar(t, ms, "b", mesh.Facet, 5)
	withScalar(t, ms, "face_b_0", mesh.Facet, 1)
	before := ms.AttributeNames()

	mat := grammar.NewPrincipled(grammar.UniformColor(colors.Ivory))
	mat.Metallic = grammar.NewScalarField("b", "")
	mat.Roughness = grammar.NewScalarField("a", "")
	vw := NewView("rename", ms, grammar.Point, grammar.NewSize(grammar.NewAttribute("a")), mat)
	require.NoError(t, Compile(vw))

	assert.Equal(t, "vertex_a_1", vw.Size.Data.Key())
	assert.Equal(t, "face_b_1", mat.Metallic.(*grammar.ScalarField).Data.Key())
	assert.Equal(t, "vertex_a_1", mat.Roughness.(*grammar.ScalarField).Data.Key())

	renamed := map[string]bool{}
	for _, at := range vw.ActiveAttributes[1:] {
		renamed[at.Key()] = true
	}
	assert.Len(t, renamed, 2)
	for _, nm := range before {
		if nm == "a" || nm == "b" {
			assert.False(t, ms.HasAttribute(nm), nm)
			continue
		}
		assert.True(t, ms.HasAttribute(nm), nm)
		assert.False(t, renamed[nm], nm)
	}
}

func TestFirstWriterWins(t *testing.T) {
	ms := triangle(t)
	first := grammar.NewSizeValue(1)
	mat := grammar.NewConductor("Au")
	vw := NewView("dups", ms, grammar.Point, first, mat, grammar.NewSizeValue(2), grammar.DefaultMaterial())
	require.NoError(t, Preprocess(vw))
	assert.Same(t, first, vw.Size)
	assert.Same(t, mat, vw.Material)

	vw2 := NewView("dups", ms, grammar.Point, first, mat, grammar.NewSizeValue(2), grammar.NewSizeValue(3))
	require.NoError(t, Preprocess(vw2))
	assert.Same(t, first, vw2.Size)
}

func TestPreprocessIdempotent(t *testing.T) {
	ms := triangle(t)
	pos := grammar.NewPosition(grammar.NewAttribute(mesh.VertexPositionName))
	nrm := grammar.NewNormal(grammar.NewAttribute(mesh.VertexPositionName))
	size := grammar.NewSizeValue(0.5)
	mat := grammar.NewPlastic(grammar.UniformColor(colors.Ivory))
	vw := NewView("explicit", ms, grammar.Surface, pos, nrm, size, mat)
	require.NoError(t, Preprocess(vw))
	require.NoError(t, Preprocess(vw))
	assert.Same(t, pos, vw.Position)
	assert.Same(t, nrm, vw.Normal)
	assert.Same(t, size, vw.Size)
	assert.Same(t, mat, vw.Material)
	assert.Len(t, ms.AttributeNames(), 1)

	dflt := NewView("defaults", ms, grammar.Surface)
	require.NoError(t, Preprocess(dflt))
	p, n, m := dflt.Position, dflt.Normal, dflt.Material
	names := ms.AttributeNames()
	require.NoError(t, Preprocess(dflt))
	assert.Same(t, p, dflt.Position)
	assert.Same(t, n, dflt.Normal)
	assert.Same(t, m, dflt.Material)
	assert.Equal(t, names, ms.AttributeNames())
}

func TestColormapPolicy(t *testing.T) {
	ms := withScalar(t, triangle(t), "a", mesh.Vertex, 0, 1, 2)
	vw := NewView("colored", ms, grammar.Surface, grammar.NewDiffuse(grammar.NewScalarField("a", "viridis")))
	require.NoError(t, Compile(vw))

	tex := vw.Material.(*grammar.Diffuse).Reflectance.(*grammar.ScalarField)
	assert.Equal(t, "a_color", tex.Data.Key())
	at, err := ms.Attribute(tex.Data.Key())
	require.NoError(t, err)
	assert.Equal(t, mesh.Color, at.Usage)
	assert.Equal(t, 3, at.NumChannels)
	cm, err := colormap.ByName("viridis")
	require.NoError(t, err)
	assert.Equal(t, cm.Sample(0).Slice(), at.Value(0))
	assert.Equal(t, cm.Sample(0.5).Slice(), at.Value(1))
	assert.Equal(t, cm.Sample(1).Slice(), at.Value(2))
	assert.Contains(t, activeKeys(vw), "a_color")
	assert.True(t, ms.HasAttribute("a"))

	// physical parameters are never color mapped
	ms2 := withScalar(t, triangle(t), "a", mesh.Vertex, 0, 1, 2)
	mat := grammar.NewPrincipled(grammar.UniformColor(colors.Ivory))
	mat.Metallic = grammar.NewScalarField("a", "viridis")
	vw2 := NewView("metal", ms2, grammar.Point, mat)
	require.NoError(t, Compile(vw2))
	mkey := mat.Metallic.(*grammar.ScalarField).Data.Key()
	assert.Equal(t, "vertex_a_0", mkey)
	mat2, err := ms2.Attribute(mkey)
	require.NoError(t, err)
	assert.Equal(t, mesh.Scalar, mat2.Usage)

	ms3 := withScalar(t, triangle(t), "a", mesh.Vertex, 0, 1, 2)
	rc := grammar.NewRoughConductor("Cr")
	rc.Alpha = grammar.NewScalarField("a", "viridis")
	require.NoError(t, Compile(NewView("rough", ms3, grammar.Point, rc)))
	assert.Equal(t, "vertex_a_0", rc.Alpha.(*grammar.ScalarField).Data.Key())
}

func TestTextureUV(t *testing.T) {
	ms := withScalar(t, triangle(t), "a", mesh.Vertex, 0, 1, 2)
	_, err := ms.CreateAttribute("uv", mesh.Vertex, mesh.UV, 2, []float32{0, 0, 1, 0, 0, 1})
	require.NoError(t, err)
	tex := grammar.NewScalarField("a", "")
	tex.UV = grammar.NewAttribute("uv")
	vw := NewView("uv", ms, grammar.Surface, grammar.NewRoughPlastic(tex))
	require.NoError(t, Compile(vw))
	require.NotNil(t, vw.UVAttribute)
	assert.Equal(t, "uv", vw.UVAttribute.Key())
	assert.NotContains(t, activeKeys(vw), "uv")
	assert.Contains(t, activeKeys(vw), "vertex_a_0")
}

func TestErrors(t *testing.T) {
	ms := withScalar(t, triangle(t), "size", mesh.Vertex, 1, 2, 3)
	vw := NewView("typo", ms, grammar.Point, grammar.NewSize(grammar.NewAttribute("sise")))
	err := Compile(vw)
	assert.ErrorIs(t, err, grammar.ErrAttributeNotFound)
	assert.ErrorContains(t, err, `did you mean "size"`)
	assert.ErrorContains(t, err, "typo")

	err = Compile(NewView("nodata", nil, grammar.Point))
	assert.ErrorIs(t, err, grammar.ErrMissingDataSource)

	err = Preprocess(NewView("nil", ms, grammar.Point, nil))
	assert.ErrorIs(t, err, grammar.ErrUnsupportedChannel)

	err = Compile(NewView("cmap", ms, grammar.Point, grammar.NewDiffuse(grammar.NewScalarField("size", "nope"))))
	assert.ErrorContains(t, err, "nope")

	err = Compile(NewView("nilpos", ms, grammar.Point, grammar.NewPosition(nil)))
	assert.ErrorIs(t, err, grammar.ErrAttributeNotFound)
	assert.ErrorContains(t, err, "position")

	err = Compile(NewView("nilnormal", ms, grammar.Surface, grammar.NewNormal(nil)))
	assert.ErrorIs(t, err, grammar.ErrAttributeNotFound)
	assert.ErrorContains(t, err, "normal")
}

func TestSharedData(t *testing.T) {
	ms := withScalar(t, triangle(t), "size", mesh.Vertex, 1, 2, 3)
	v0 := NewView("0", ms, grammar.Point, grammar.NewSize(grammar.NewAttribute("size")))
	v1 := NewView("1", ms, grammar.Point, grammar.NewSize(grammar.NewAttribute("size")))
	require.NoError(t, Compile(v0))
	require.NoError(t, Compile(v1))
	assert.Equal(t, "vertex_size_0", v0.Size.Data.Key())
	assert.Equal(t, "vertex_size_0", v1.Size.Data.Key())
}

func TestCompileAll(t *testing.T) {
	var views []*View
	var meshes []*mesh.Mesh
	for i := range 5 {
		ms := withScalar(t, triangle(t), "size", mesh.Vertex, 1, 2, 3)
		meshes = append(meshes, ms)
		views = append(views,
			NewView(fmt.Sprintf("%d/points", i), ms, grammar.Point, grammar.NewSize(grammar.NewAttribute("size"))),
			NewView(fmt.Sprintf("%d/surface", i), ms, grammar.Surface))
	}
	views = append(views, NewView("bad", meshes[0], grammar.Point, grammar.NewSize(grammar.NewAttribute("missing"))))

	err := CompileAll(views, 4)
	assert.ErrorIs(t, err, grammar.ErrAttributeNotFound)
	assert.ErrorContains(t, err, "bad")
	for i, vw := range views[:len(views)-1] {
		require.NotNil(t, vw.Position, vw.Name)
		if i%2 == 0 {
			assert.Equal(t, "vertex_size_0", vw.Size.Data.Key())
		} else {
			assert.NotNil(t, vw.Normal)
		}
	}
	for _, ms := range meshes {
		assert.True(t, ms.HasAttribute("vertex_size_0"))
	}
}

func TestCompileAllReusesWorkers(t *testing.T) {
	batch := func() []*View {
		var views []*View
		for i := range 4 {
			views = append(views, NewView(fmt.Sprintf("%d", i), triangle(t), grammar.Point))
		}
		return views
	}
	require.NoError(t, CompileAll(batch(), 4))
	time.Sleep(50 * time.Millisecond)
	before := runtime.NumGoroutine()
	for range 20 {
		require.NoError(t, CompileAll(batch(), 4))
	}
	time.Sleep(50 * time.Millisecond)
	assert.LessOrEqual(t, runtime.NumGoroutine(), before+2)
	assert.Same(t, compilePool(4), compilePool(4))
}

func TestGroupByData(t *testing.T) {
	a, b := triangle(t), triangle(t)
	views := []*View{
		NewView("0", a, grammar.Point),
		NewView("1", b, grammar.Point),
		NewView("2", nil, grammar.Point),
		NewView("3", a, grammar.Point),
	}
	assert.Equal(t, [][]int{{0, 3}, {1}, {2}}, groupByData(views))
}
