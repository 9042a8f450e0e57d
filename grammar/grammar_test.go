// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grammar

import (
	"testing"

	"cogentcore.org/scenec/colors"
	"cogentcore.org/scenec/scale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMark(t *testing.T) {
	var m Mark
	require.NoError(t, m.UnmarshalText([]byte("Surface")))
	assert.Equal(t, Surface, m)
	b, err := Curve.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "curve", string(b))
	assert.Error(t, m.SetString("line"))
	assert.Equal(t, "Mark(7)", Mark(7).String())
}

func TestAttributeKey(t *testing.T) {
	at := NewAttribute("size", scale.Uniform{Factor: 2})
	assert.Equal(t, "size", at.Key())
	at.ResolvedName = "vertex_size_0"
	assert.Equal(t, "vertex_size_0", at.Key())
}

func TestAttributeClone(t *testing.T) {
	at := NewAttribute("size", scale.Uniform{Factor: 2})
	cp := at.Clone()
	require.NotSame(t, at, cp)
	assert.Equal(t, at, cp)

	cp.ResolvedName = "x"
	cp.Scale[0] = scale.Uniform{Factor: 3}
	assert.Equal(t, "", at.ResolvedName)
	assert.Equal(t, scale.Uniform{Factor: 2}, at.Scale[0])

	norm := NewAttribute("pos", scale.Normalize{Min: []float32{-1}, Max: []float32{1}})
	ncp := norm.Clone()
	assert.Equal(t, norm, ncp)
	ncp.Scale[0].(scale.Normalize).Min[0] = 0
	assert.Equal(t, []float32{-1}, norm.Scale[0].(scale.Normalize).Min)

	var nilAt *Attribute
	assert.Nil(t, nilAt.Clone())
}

func TestCloneChannels(t *testing.T) {
	sf := NewScalarField("a", "viridis")
	sf.UV = NewAttribute("uv")
	chs := []Channel{
		NewPosition(NewAttribute("p")),
		NewNormal(NewAttribute("n")),
		NewSizeValue(2),
		NewDiffuse(sf),
		NewRoughPlastic(NewScalarField("b", "")),
		NewPrincipled(UniformColor(colors.Ivory)),
		NewRoughConductor("Cr"),
		NewConductor("Au"),
		NewMedium(),
	}
	cp := CloneChannels(chs)
	require.Len(t, cp, len(chs))
	for i := range chs {
		assert.Equal(t, chs[i], cp[i])
		assert.NotSame(t, chs[i], cp[i])
	}

	cp[0].(*Position).Data.ResolvedName = "changed"
	assert.Empty(t, chs[0].(*Position).Data.ResolvedName)
	csf := cp[3].(*Diffuse).Reflectance.(*ScalarField)
	csf.Data.ResolvedName = "changed"
	csf.UV.ResolvedName = "changed"
	assert.Empty(t, sf.Data.ResolvedName)
	assert.Empty(t, sf.UV.ResolvedName)
	crp := cp[4].(*RoughPlastic)
	crp.DiffuseReflectance.(*ScalarField).Data.ResolvedName = "changed"
	assert.Empty(t, chs[4].(*RoughPlastic).DiffuseReflectance.(*ScalarField).Data.ResolvedName)

	assert.Nil(t, CloneChannels(nil))
	assert.Nil(t, CloneChannel(nil))
}

func TestMaterialDefaults(t *testing.T) {
	d := DefaultMaterial()
	assert.Equal(t, colors.Ivory, d.Reflectance.(*Uniform).Color)

	rc := NewRoughConductor("Cr")
	assert.Equal(t, "beckmann", rc.Distribution)
	assert.InDelta(t, 0.1, rc.Alpha.(*Uniform).Scalar(), 1e-6)

	p := NewPlastic(UniformScalar(0.5))
	assert.InDelta(t, 1.49, p.IntIOR, 1e-6)
	assert.InDelta(t, 1.000277, p.ExtIOR, 1e-6)
	assert.InDelta(t, 1, p.SpecularReflectance.(*Uniform).Scalar(), 1e-6)

	rp := NewRoughPlastic(UniformScalar(0.5))
	assert.InDelta(t, 0.1, rp.Alpha, 1e-6)
	assert.Equal(t, p.IntIOR, rp.IntIOR)

	pr := NewPrincipled(UniformScalar(0.5))
	assert.InDelta(t, 0, pr.Metallic.(*Uniform).Scalar(), 1e-6)
	assert.InDelta(t, 0.5, pr.Roughness.(*Uniform).Scalar(), 1e-6)

	assert.Equal(t, colors.Grey(0.75), NewMedium().Albedo)
}
