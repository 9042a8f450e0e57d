// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"

	"cogentcore.org/scenec/compiler"
	"cogentcore.org/scenec/grammar"
)

// setMaterial sets the BSDF (and interior medium) of the shape from the
// view material. Textures of point shapes are evaluated at vertex idx;
// for meshes (idx < 0) they refer to the mesh attribute by name.
func (sh *Shape) setMaterial(vw *compiler.View, idx int) error {
	tp := texParams{vw: vw, idx: idx}
	switch mat := vw.Material.(type) {
	case *grammar.Diffuse:
		sh.BSDF = map[string]any{"type": "diffuse"}
		tp.set(sh.BSDF, "reflectance", mat.Reflectance, true)
	case *grammar.Conductor:
		sh.BSDF = map[string]any{"type": "conductor", "material": mat.Material}
	case *grammar.RoughConductor:
		sh.BSDF = map[string]any{"type": "roughconductor", "material": mat.Material, "distribution": mat.Distribution}
		tp.set(sh.BSDF, "alpha", mat.Alpha, false)
	case *grammar.Plastic:
		sh.BSDF = map[string]any{"type": "plastic"}
		tp.setPlastic(sh.BSDF, mat)
	case *grammar.RoughPlastic:
		sh.BSDF = map[string]any{"type": "roughplastic", "distribution": mat.Distribution, "alpha": mat.Alpha}
		tp.setPlastic(sh.BSDF, &mat.Plastic)
	case *grammar.Principled:
		sh.BSDF = map[string]any{"type": "principled"}
		tp.set(sh.BSDF, "base_color", mat.Color, true)
		tp.set(sh.BSDF, "metallic", mat.Metallic, false)
		tp.set(sh.BSDF, "roughness", mat.Roughness, false)
	case *grammar.Medium:
		sh.BSDF = map[string]any{"type": "null"}
		sh.Interior = map[string]any{"type": "homogeneous", "albedo": rgb(mat.Albedo.Slice())}
	default:
		return fmt.Errorf("%T: %w", vw.Material, grammar.ErrUnsupportedMaterial)
	}
	return tp.err
}

// texParams evaluates textures, recording the first error.
type texParams struct {
	vw  *compiler.View
	idx int
	err error
}

func (tp *texParams) setPlastic(params map[string]any, mat *grammar.Plastic) {
	tp.set(params, "diffuse_reflectance", mat.DiffuseReflectance, true)
	tp.set(params, "specular_reflectance", mat.SpecularReflectance, false)
	params["int_ior"] = mat.IntIOR
	params["ext_ior"] = mat.ExtIOR
}

// set sets the named parameter from the texture; color tells whether
// the parameter is a color or a scalar.
func (tp *texParams) set(params map[string]any, name string, tex grammar.Texture, color bool) {
	if tp.err != nil {
		return
	}
	switch tex := tex.(type) {
	case nil:
	case *grammar.Uniform:
		if color {
			params[name] = rgb(tex.Color.Slice())
		} else {
			params[name] = tex.Scalar()
		}
	case *grammar.ScalarField:
		if tp.idx < 0 {
			params[name] = map[string]any{"type": "mesh_attribute", "name": tex.Data.Key()}
			return
		}
		at, err := vertexAttribute(tp.vw.Data, tex.Data)
		if err != nil {
			tp.err = fmt.Errorf("%s: %w", name, err)
			return
		}
		v := at.Value(tp.idx)
		if color && len(v) >= 3 {
			params[name] = rgb(v[:3])
		} else {
			params[name] = v[0]
		}
	}
}

func rgb(v []float32) map[string]any {
	return map[string]any{"type": "rgb", "value": []float32{v[0], v[1], v[2]}}
}
