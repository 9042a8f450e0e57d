// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grammar

import "cogentcore.org/scenec/colors"

// Material is the channel describing how a mark's surface scatters light.
// Its fields are either constants or [Texture] bindings.
type Material interface {
	Channel
	isMaterial()
}

// Diffuse is an ideally diffuse (Lambertian) material.
type Diffuse struct {

	// Reflectance is the visible base color.
	Reflectance Texture
}

// Conductor is a smooth metal, identified by its conductor name (e.g. "Cr").
type Conductor struct {
	Material string
}

// RoughConductor is a metal with a microfacet roughness model.
type RoughConductor struct {

	// Material is the conductor name (e.g. "Cr").
	Material string

	// Distribution is the microfacet distribution ("beckmann" or "ggx").
	Distribution string

	// Alpha is the roughness, sampled as a raw scalar.
	Alpha Texture
}

// Plastic is a diffuse base under a smooth dielectric coating.
type Plastic struct {

	// DiffuseReflectance is the visible base color.
	DiffuseReflectance Texture

	// SpecularReflectance scales the coating reflection, sampled as a raw scalar.
	SpecularReflectance Texture

	// IntIOR is the interior index of refraction.
	IntIOR float32

	// ExtIOR is the exterior index of refraction.
	ExtIOR float32
}

// RoughPlastic is a [Plastic] with a rough coating.
type RoughPlastic struct {
	Plastic

	// Distribution is the microfacet distribution ("beckmann" or "ggx").
	Distribution string

	// Alpha is the constant coating roughness.
	Alpha float32
}

// Principled is a physically based material with metallic / roughness
// parameterization.
type Principled struct {

	// Color is the visible base color.
	Color Texture

	// Metallic is the metalness, sampled as a raw scalar.
	Metallic Texture

	// Roughness is the surface roughness, sampled as a raw scalar.
	Roughness Texture
}

// Medium is a participating medium with a constant single-scattering albedo.
type Medium struct {
	Albedo colors.RGB
}

// DefaultMaterial returns the material used when a view has none:
// a [Diffuse] material with a neutral ivory reflectance.
func DefaultMaterial() *Diffuse {
	return &Diffuse{Reflectance: UniformColor(colors.Ivory)}
}

// NewDiffuse returns a [Diffuse] material with the given reflectance.
func NewDiffuse(reflectance Texture) *Diffuse {
	return &Diffuse{Reflectance: reflectance}
}

// NewConductor returns a [Conductor] of the given conductor name.
func NewConductor(material string) *Conductor {
	return &Conductor{Material: material}
}

// NewRoughConductor returns a [RoughConductor] with default roughness.
func NewRoughConductor(material string) *RoughConductor {
	return &RoughConductor{Material: material, Distribution: "beckmann", Alpha: UniformScalar(0.1)}
}

// NewPlastic returns a [Plastic] material with the given base color
// and default coating parameters.
func NewPlastic(diffuse Texture) *Plastic {
	return &Plastic{DiffuseReflectance: diffuse, SpecularReflectance: UniformScalar(1), IntIOR: 1.49, ExtIOR: 1.000277}
}

// NewRoughPlastic returns a [RoughPlastic] material with the given base
// color and default coating parameters.
func NewRoughPlastic(diffuse Texture) *RoughPlastic {
	return &RoughPlastic{Plastic: *NewPlastic(diffuse), Distribution: "beckmann", Alpha: 0.1}
}

// NewPrincipled returns a [Principled] material with the given base color
// that is non-metallic and moderately rough.
func NewPrincipled(color Texture) *Principled {
	return &Principled{Color: color, Metallic: UniformScalar(0), Roughness: UniformScalar(0.5)}
}

// NewMedium returns a [Medium] with the default albedo.
func NewMedium() *Medium {
	return &Medium{Albedo: colors.Grey(0.75)}
}

func (*Diffuse) isChannel()        {}
func (*Conductor) isChannel()      {}
func (*RoughConductor) isChannel() {}
func (*Plastic) isChannel()        {}
func (*RoughPlastic) isChannel()   {}
func (*Principled) isChannel()     {}
func (*Medium) isChannel()         {}

func (*Diffuse) isMaterial()        {}
func (*Conductor) isMaterial()      {}
func (*RoughConductor) isMaterial() {}
func (*Plastic) isMaterial()        {}
func (*RoughPlastic) isMaterial()   {}
func (*Principled) isMaterial()     {}
func (*Medium) isMaterial()         {}

func (m *Diffuse) cloneChannel() Channel {
	return &Diffuse{Reflectance: CloneTexture(m.Reflectance)}
}

func (m *Conductor) cloneChannel() Channel {
	cp := *m
	return &cp
}

func (m *RoughConductor) cloneChannel() Channel {
	cp := *m
	cp.Alpha = CloneTexture(m.Alpha)
	return &cp
}

func (m *Plastic) clonePlastic() Plastic {
	cp := *m
	cp.DiffuseReflectance = CloneTexture(m.DiffuseReflectance)
	cp.SpecularReflectance = CloneTexture(m.SpecularReflectance)
	return cp
}

func (m *Plastic) cloneChannel() Channel {
	cp := m.clonePlastic()
	return &cp
}

func (m *RoughPlastic) cloneChannel() Channel {
	cp := *m
	cp.Plastic = m.Plastic.clonePlastic()
	return &cp
}

func (m *Principled) cloneChannel() Channel {
	return &Principled{Color: CloneTexture(m.Color), Metallic: CloneTexture(m.Metallic), Roughness: CloneTexture(m.Roughness)}
}

func (m *Medium) cloneChannel() Channel {
	cp := *m
	return &cp
}
