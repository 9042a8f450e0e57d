// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene assembles compiled views into the flat list of shapes
// of a renderer scene description: a sphere for every point, a mesh
// reference for every surface and a curve set for every curve view.
package scene

import (
	"fmt"
	"log/slog"

	"cogentcore.org/scenec/compiler"
	"cogentcore.org/scenec/grammar"
	"cogentcore.org/scenec/math32"
	"cogentcore.org/scenec/mesh"
)

// Shape types.
const (
	Sphere      = "sphere"
	PLY         = "ply"
	LinearCurve = "linearcurve"
)

// Scene is a renderer scene description.
type Scene struct {
	Shapes []*Shape `json:"shapes" yaml:"shapes"`
}

// Shape is one renderer primitive.
type Shape struct {

	// Type is the shape type ([Sphere], [PLY] or [LinearCurve]).
	Type string `json:"type" yaml:"type"`

	// View is the name of the view the shape was made from.
	View string `json:"view" yaml:"view"`

	// Center is the center of a sphere.
	Center []float32 `json:"center,omitempty" yaml:"center,omitempty"`

	// Radius is the radius of a sphere or curve.
	Radius float32 `json:"radius,omitempty" yaml:"radius,omitempty"`

	// Filename is the file the geometry of a mesh or curve shape is
	// stored in, set when the scene is exported.
	Filename string `json:"filename,omitempty" yaml:"filename,omitempty"`

	// BSDF are the parameters of the surface scattering model.
	BSDF map[string]any `json:"bsdf" yaml:"bsdf"`

	// Interior are the parameters of the medium inside the shape, if any.
	Interior map[string]any `json:"interior,omitempty" yaml:"interior,omitempty"`

	// Mesh is the geometry of a mesh or curve shape.
	Mesh *mesh.Mesh `json:"-" yaml:"-"`

	// Attributes are the names of the mesh attributes used by the shape,
	// which are stored together with its geometry.
	Attributes []string `json:"attributes,omitempty" yaml:"attributes,omitempty"`

	// Edges are the vertex pairs of a curve shape.
	Edges [][2]uint32 `json:"-" yaml:"-"`
}

// Options are the renderer-side defaults used in assembling.
type Options struct {

	// PointRadius is the radius of spheres and curves without a size channel.
	PointRadius float32

	// SizeScale multiplies all sizes.
	SizeScale float32
}

// DefaultOptions returns the default [Options].
func DefaultOptions() Options {
	return Options{PointRadius: 0.01, SizeScale: 1}
}

// Assemble returns the scene made from the given compiled views, in order.
func Assemble(views []*compiler.View, opts Options) (*Scene, error) {
	if opts.SizeScale == 0 {
		opts.SizeScale = 1
	}
	sc := &Scene{}
	for _, vw := range views {
		if vw.Position == nil || vw.Material == nil {
			return nil, fmt.Errorf("scene: view %q is not compiled", vw.Name)
		}
		var err error
		switch vw.Mark {
		case grammar.Point:
			err = sc.addPoints(vw, opts)
		case grammar.Surface:
			err = sc.addSurface(vw)
		case grammar.Curve:
			err = sc.addCurves(vw, opts)
		default:
			err = fmt.Errorf("unknown mark %v", vw.Mark)
		}
		if err != nil {
			return nil, fmt.Errorf("scene: view %q: %w", vw.Name, err)
		}
	}
	slog.Debug("assembled scene", "views", len(views), "shapes", len(sc.Shapes))
	return sc, nil
}

func (sc *Scene) addPoints(vw *compiler.View, opts Options) error {
	pos, err := vertexAttribute(vw.Data, vw.Position.Data)
	if err != nil {
		return fmt.Errorf("position: %w", err)
	}
	var sizes *mesh.Attribute
	if vw.Size != nil && vw.Size.Data != nil {
		if sizes, err = vertexAttribute(vw.Data, vw.Size.Data); err != nil {
			return fmt.Errorf("size: %w", err)
		}
	}
	for i := range pos.Len() {
		radius := opts.PointRadius
		switch {
		case sizes != nil:
			radius = sizes.Value(i)[0]
		case vw.Size != nil:
			radius = vw.Size.Value
		}
		c := math32.Vector3FromSlice(pos.Value(i))
		sh := &Shape{Type: Sphere, View: vw.Name, Center: []float32{c.X, c.Y, c.Z}, Radius: radius * opts.SizeScale}
		if err := sh.setMaterial(vw, i); err != nil {
			return err
		}
		sc.Shapes = append(sc.Shapes, sh)
	}
	return nil
}

func (sc *Scene) addSurface(vw *compiler.View) error {
	sh := &Shape{Type: PLY, View: vw.Name, Mesh: vw.Data, Attributes: activeNames(vw)}
	if err := sh.setMaterial(vw, -1); err != nil {
		return err
	}
	sc.Shapes = append(sc.Shapes, sh)
	return nil
}

func (sc *Scene) addCurves(vw *compiler.View, opts Options) error {
	radius := opts.PointRadius
	if vw.Size != nil && vw.Size.Data == nil {
		radius = vw.Size.Value
	}
	sh := &Shape{Type: LinearCurve, View: vw.Name, Mesh: vw.Data, Radius: radius * opts.SizeScale, Edges: vw.Data.Edges(), Attributes: activeNames(vw)}
	if err := sh.setMaterial(vw, -1); err != nil {
		return err
	}
	sc.Shapes = append(sc.Shapes, sh)
	return nil
}

// activeNames returns the names of the active attributes of the view,
// without duplicates and without the vertex positions.
func activeNames(vw *compiler.View) []string {
	var names []string
	seen := map[string]bool{vw.Data.VertexPositionAttributeName(): true}
	for _, at := range vw.ActiveAttributes {
		if k := at.Key(); !seen[k] {
			seen[k] = true
			names = append(names, k)
		}
	}
	return names
}

// vertexAttribute returns the attribute the reference resolves to,
// which must have one entry per vertex.
func vertexAttribute(ms *mesh.Mesh, ref *grammar.Attribute) (*mesh.Attribute, error) {
	at, err := ms.Attribute(ref.Key())
	if err != nil {
		return nil, err
	}
	if at.Element != mesh.Vertex {
		return nil, fmt.Errorf("attribute %q is a %v attribute, not a vertex attribute", at.Name, at.Element)
	}
	return at, nil
}
