// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compiler

import (
	"fmt"

	"cogentcore.org/scenec/grammar"
)

// Process applies the scales of the resolved channels, resolves the
// textures of the material and renames the active attributes so that
// their names are unique and carry their element type. It must be
// called after [Preprocess].
func Process(vw *View) error {
	ms := vw.Data
	if ms == nil {
		return fmt.Errorf("view %q: %w", vw.Name, grammar.ErrMissingDataSource)
	}
	if vw.Position != nil {
		if err := computeScaledAttribute(ms, vw.Position.Data); err != nil {
			return fmt.Errorf("view %q: position: %w", vw.Name, err)
		}
		vw.addActive(vw.Position.Data)
	}
	if vw.Normal != nil {
		if err := computeScaledAttribute(ms, vw.Normal.Data); err != nil {
			return fmt.Errorf("view %q: normal: %w", vw.Name, err)
		}
		vw.addActive(vw.Normal.Data)
	}
	if vw.Size != nil && vw.Size.Data != nil {
		if err := computeScaledAttribute(ms, vw.Size.Data); err != nil {
			return fmt.Errorf("view %q: size: %w", vw.Name, err)
		}
		vw.addActive(vw.Size.Data)
	}
	if vw.Material != nil {
		if err := processMaterial(vw); err != nil {
			return fmt.Errorf("view %q: material: %w", vw.Name, err)
		}
	}
	for _, at := range vw.ActiveAttributes {
		if err := renameAttribute(vw, at); err != nil {
			return fmt.Errorf("view %q: %w", vw.Name, err)
		}
	}
	return nil
}

// processMaterial resolves the textures of the material fields. Fields
// that hold a visible base color are color mapped; fields holding
// physical parameters use the raw scalar values.
func processMaterial(vw *View) error {
	switch mat := vw.Material.(type) {
	case *grammar.Diffuse:
		return applyTexture(vw, "reflectance", mat.Reflectance, true)
	case *grammar.Conductor, *grammar.Medium:
		return nil
	case *grammar.RoughConductor:
		return applyTexture(vw, "alpha", mat.Alpha, false)
	case *grammar.Plastic:
		return processPlastic(vw, mat)
	case *grammar.RoughPlastic:
		return processPlastic(vw, &mat.Plastic)
	case *grammar.Principled:
		if err := applyTexture(vw, "color", mat.Color, true); err != nil {
			return err
		}
		if err := applyTexture(vw, "metallic", mat.Metallic, false); err != nil {
			return err
		}
		return applyTexture(vw, "roughness", mat.Roughness, false)
	}
	return fmt.Errorf("%T: %w", vw.Material, grammar.ErrUnsupportedMaterial)
}

func processPlastic(vw *View, mat *grammar.Plastic) error {
	if err := applyTexture(vw, "diffuse_reflectance", mat.DiffuseReflectance, true); err != nil {
		return err
	}
	return applyTexture(vw, "specular_reflectance", mat.SpecularReflectance, false)
}

// applyTexture resolves the texture of the named material field and
// registers its attributes with the view.
func applyTexture(vw *View, field string, tex grammar.Texture, colorize bool) error {
	ats, uv, err := resolveTexture(vw.Data, tex, colorize)
	if err != nil {
		return fmt.Errorf("%s: %w", field, err)
	}
	vw.addActive(ats...)
	if uv != nil {
		vw.UVAttribute = uv
	}
	return nil
}
