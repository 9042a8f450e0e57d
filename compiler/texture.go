// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compiler

import (
	"fmt"
	"slices"

	"cogentcore.org/scenec/colors/colormap"
	"cogentcore.org/scenec/grammar"
	"cogentcore.org/scenec/math32"
	"cogentcore.org/scenec/math32/minmax"
	"cogentcore.org/scenec/mesh"
)

// resolveTexture computes the attributes a texture depends on. Uniform
// textures use no attributes. For a scalar field, the data attribute is
// scaled and, if colorize is set and the field has a color map, replaced
// by a color attribute sampled from the map. It returns the data
// attributes and the texture coordinate attribute, if any.
func resolveTexture(ms *mesh.Mesh, tex grammar.Texture, colorize bool) ([]*grammar.Attribute, *grammar.Attribute, error) {
	switch tex := tex.(type) {
	case nil, *grammar.Uniform:
		return nil, nil, nil
	case *grammar.ScalarField:
		if tex.Data == nil {
			return nil, nil, fmt.Errorf("scalar field: %w: no data attribute", grammar.ErrAttributeNotFound)
		}
		if err := computeScaledAttribute(ms, tex.Data); err != nil {
			return nil, nil, err
		}
		if colorize && tex.Colormap != "" {
			if err := applyColormap(ms, tex.Data, tex.Colormap); err != nil {
				return nil, nil, err
			}
		}
		if tex.UV != nil {
			if err := computeScaledAttribute(ms, tex.UV); err != nil {
				return nil, nil, fmt.Errorf("uv: %w", err)
			}
		}
		return []*grammar.Attribute{tex.Data}, tex.UV, nil
	}
	return nil, nil, fmt.Errorf("unsupported texture %T", tex)
}

// applyColormap maps the values of the attribute through the named
// color map into a new color attribute, which the reference then
// resolves to. Values are normalized to [0, 1] using their own range;
// multi-channel values use their length.
func applyColormap(ms *mesh.Mesh, at *grammar.Attribute, name string) error {
	cm, err := colormap.ByName(name)
	if err != nil {
		return fmt.Errorf("attribute %q: %w", at.Name, err)
	}
	src, err := ms.Attribute(at.Key())
	if err != nil {
		return fmt.Errorf("attribute %q: %w", at.Name, err)
	}
	n := src.Len()
	scalars := make([]float32, n)
	var rng minmax.F32
	rng.SetInfinity()
	for i := range n {
		v := src.Value(i)
		s := v[0]
		if len(v) > 1 {
			s = norm(v)
		}
		scalars[i] = s
		rng.FitValInRange(s)
	}
	dst := &mesh.Attribute{
		Name:        ms.UniqueName(at.Key() + "_color"),
		Element:     src.Element,
		Usage:       mesh.Color,
		NumChannels: 3,
		Values:      make([]float32, 0, 3*n),
		Indices:     slices.Clone(src.Indices),
	}
	for _, s := range scalars {
		dst.Values = append(dst.Values, cm.Sample(rng.NormValue(s)).Slice()...)
	}
	if err := ms.AddAttribute(dst); err != nil {
		return err
	}
	at.ResolvedName = dst.Name
	return nil
}

func norm(v []float32) float32 {
	var sum float32
	for _, x := range v {
		sum += x * x
	}
	return math32.Sqrt(sum)
}
