// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grammar

import "cogentcore.org/scenec/colors"

// Texture is the binding of a material field: either a constant
// ([Uniform]) or a data-driven field ([ScalarField]).
type Texture interface {
	isTexture()

	// cloneTexture returns a copy that shares no attribute references.
	cloneTexture() Texture
}

// Uniform is a constant texture value. Color fields use the color directly;
// scalar fields (metallic, roughness, ...) use its red component, so scalar
// constants are made with [UniformScalar].
type Uniform struct {
	Color colors.RGB
}

// UniformScalar returns a [Uniform] holding the given scalar value.
func UniformScalar(v float32) *Uniform {
	return &Uniform{Color: colors.Grey(v)}
}

// UniformColor returns a [Uniform] holding the given color.
func UniformColor(c colors.RGB) *Uniform {
	return &Uniform{Color: c}
}

// Scalar returns the value of a scalar constant.
func (u *Uniform) Scalar() float32 {
	return u.Color.R
}

func (u *Uniform) isTexture() {}

func (u *Uniform) cloneTexture() Texture {
	cp := *u
	return &cp
}

// ScalarField is a texture driven by the values of a data attribute.
// When used for a visible color field and Colormap is set, the values
// are normalized and mapped through the named color map.
type ScalarField struct {

	// Data is the attribute providing the values.
	Data *Attribute

	// Colormap is the name of the color map, or "" for none.
	Colormap string

	// UV is the optional attribute with the texture coordinates
	// needed for parametric lookup.
	UV *Attribute
}

// NewScalarField returns a [ScalarField] over the named attribute
// using the given color map.
func NewScalarField(name, colormap string) *ScalarField {
	return &ScalarField{Data: NewAttribute(name), Colormap: colormap}
}

func (sf *ScalarField) isTexture() {}

func (sf *ScalarField) cloneTexture() Texture {
	return &ScalarField{Data: sf.Data.Clone(), Colormap: sf.Colormap, UV: sf.UV.Clone()}
}

// CloneTexture returns a deep copy of the given texture, or nil for nil.
func CloneTexture(tex Texture) Texture {
	if tex == nil {
		return nil
	}
	return tex.cloneTexture()
}
