// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layer

import (
	"cmp"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"cogentcore.org/scenec/colors"
	"cogentcore.org/scenec/grammar"
	"cogentcore.org/scenec/mesh"
	"cogentcore.org/scenec/scale"
	"github.com/mitchellh/go-homedir"
	"golang.org/x/exp/maps"
	"gopkg.in/yaml.v3"
)

// OpenSpec reads a layer tree from the YAML file with the given path.
// Relative mesh file paths are relative to the directory of the file.
func OpenSpec(path string) (*Layer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	l, err := ReadSpec(f, filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

// ReadSpec reads a layer tree from YAML. A document has a meshes section
// defining named data sources, inline or loaded from OBJ files, and a
// layer section with the root layer:
//
//	meshes:
//	  tri:
//	    vertices: [[0, 0, 0], [1, 0, 0], [0, 1, 0]]
//	    facets: [[0, 1, 2]]
//	    attributes:
//	      size: {element: vertex, usage: scalar, values: [1, 2, 3]}
//	layer:
//	  data: tri
//	  children:
//	    - mark: point
//	      channels:
//	        - size: size
//	    - mark: surface
//	      channels:
//	        - material: {type: principled, color: {attribute: size, colormap: viridis}}
//
// Relative OBJ paths are resolved against dir.
func ReadSpec(r io.Reader, dir string) (*Layer, error) {
	var doc specDoc
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	meshes := map[string]*mesh.Mesh{}
	names := maps.Keys(doc.Meshes)
	slices.Sort(names)
	for _, name := range names {
		ms, err := doc.Meshes[name].build(dir)
		if err != nil {
			return nil, fmt.Errorf("mesh %q: %w", name, err)
		}
		meshes[name] = ms
	}
	return doc.Layer.build(meshes)
}

type specDoc struct {
	Meshes map[string]*meshSpec `yaml:"meshes"`
	Layer  *layerSpec           `yaml:"layer"`
}

type meshSpec struct {
	OBJ        string                    `yaml:"obj"`
	Dim        int                       `yaml:"dim"`
	Vertices   [][]float32               `yaml:"vertices"`
	Facets     [][]uint32                `yaml:"facets"`
	Attributes map[string]*attributeSpec `yaml:"attributes"`
}

type attributeSpec struct {
	Element string    `yaml:"element"`
	Usage   string    `yaml:"usage"`
	Values  yaml.Node `yaml:"values"`
}

func (sp *meshSpec) build(dir string) (*mesh.Mesh, error) {
	var ms *mesh.Mesh
	if sp.OBJ != "" {
		if len(sp.Vertices) > 0 || len(sp.Facets) > 0 {
			return nil, fmt.Errorf("obj and inline geometry are mutually exclusive")
		}
		path, err := homedir.Expand(sp.OBJ)
		if err != nil {
			return nil, err
		}
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}
		ms, err = mesh.OpenOBJ(path)
		if err != nil {
			return nil, err
		}
	} else {
		dim := sp.Dim
		if dim == 0 {
			dim = 3
			if len(sp.Vertices) > 0 {
				dim = len(sp.Vertices[0])
			}
		}
		facetSize := 3
		if len(sp.Facets) > 0 {
			facetSize = len(sp.Facets[0])
		}
		verts, err := flatten(sp.Vertices, dim, "vertex")
		if err != nil {
			return nil, err
		}
		facets, err := flatten(sp.Facets, facetSize, "facet")
		if err != nil {
			return nil, err
		}
		ms, err = mesh.FromArrays(dim, verts, facetSize, facets)
		if err != nil {
			return nil, err
		}
	}
	names := maps.Keys(sp.Attributes)
	slices.Sort(names)
	for _, name := range names {
		if err := sp.Attributes[name].build(ms, name); err != nil {
			return nil, fmt.Errorf("attribute %q: %w", name, err)
		}
	}
	return ms, nil
}

func (sp *attributeSpec) build(ms *mesh.Mesh, name string) error {
	el, usage := mesh.Vertex, mesh.Scalar
	if sp.Element != "" {
		if err := el.SetString(sp.Element); err != nil {
			return err
		}
	}
	if sp.Usage != "" {
		if err := usage.SetString(sp.Usage); err != nil {
			return err
		}
	}
	var flat []float32
	nch := 1
	if err := sp.Values.Decode(&flat); err != nil {
		var rows [][]float32
		if err := sp.Values.Decode(&rows); err != nil {
			return fmt.Errorf("line %d: values must be a list of numbers or of number lists", sp.Values.Line)
		}
		if len(rows) > 0 {
			nch = len(rows[0])
		}
		if flat, err = flatten(rows, nch, "value"); err != nil {
			return err
		}
	}
	_, err := ms.CreateAttribute(name, el, usage, nch, flat)
	return err
}

func flatten[T any](rows [][]T, n int, what string) ([]T, error) {
	flat := make([]T, 0, len(rows)*n)
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("%s %d has %d entries, want %d", what, i, len(row), n)
		}
		flat = append(flat, row...)
	}
	return flat, nil
}

type layerSpec struct {
	Name     string         `yaml:"name"`
	Data     string         `yaml:"data"`
	Mark     *grammar.Mark  `yaml:"mark"`
	Channels []*channelSpec `yaml:"channels"`
	Children []*layerSpec   `yaml:"children"`
}

func (sp *layerSpec) build(meshes map[string]*mesh.Mesh) (*Layer, error) {
	if sp == nil {
		return nil, fmt.Errorf("no layer defined")
	}
	l := &Layer{Name: sp.Name}
	if sp.Data != "" {
		ms, ok := meshes[sp.Data]
		if !ok {
			return nil, fmt.Errorf("layer %q: unknown mesh %q", sp.Name, sp.Data)
		}
		l.Settings.Data = ms
	}
	l.Settings.Mark = sp.Mark
	for i, csp := range sp.Channels {
		ch, err := csp.build()
		if err != nil {
			return nil, fmt.Errorf("layer %q: channel %d: %w", sp.Name, i, err)
		}
		l.Settings.Channels = append(l.Settings.Channels, ch)
	}
	for _, csp := range sp.Children {
		c, err := csp.build(meshes)
		if err != nil {
			return nil, err
		}
		l.Children = append(l.Children, c)
	}
	return l, nil
}

// channelSpec has exactly one of its fields set.
type channelSpec struct {
	Position *attributeRef `yaml:"position"`
	Normal   *attributeRef `yaml:"normal"`
	Size     *sizeSpec     `yaml:"size"`
	Material *materialSpec `yaml:"material"`
}

func (sp *channelSpec) build() (grammar.Channel, error) {
	var chs []grammar.Channel
	if sp.Position != nil {
		chs = append(chs, grammar.NewPosition(sp.Position.at))
	}
	if sp.Normal != nil {
		chs = append(chs, grammar.NewNormal(sp.Normal.at))
	}
	if sp.Size != nil {
		chs = append(chs, &grammar.Size{Data: sp.Size.at, Value: sp.Size.value})
	}
	if sp.Material != nil {
		mat, err := sp.Material.build()
		if err != nil {
			return nil, err
		}
		chs = append(chs, mat)
	}
	if len(chs) != 1 {
		return nil, fmt.Errorf("a channel must have exactly one of position, normal, size or material; got %d", len(chs))
	}
	return chs[0], nil
}

// attributeRef is an attribute name, or a mapping with the
// attribute name and its scales.
type attributeRef struct {
	at *grammar.Attribute
}

func (ar *attributeRef) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.ScalarNode {
		ar.at = grammar.NewAttribute(n.Value)
		return nil
	}
	var sp struct {
		Attribute string       `yaml:"attribute"`
		Scale     []*scaleSpec `yaml:"scale"`
	}
	if err := n.Decode(&sp); err != nil {
		return err
	}
	if sp.Attribute == "" {
		return fmt.Errorf("line %d: missing attribute name", n.Line)
	}
	ar.at = grammar.NewAttribute(sp.Attribute)
	for _, ssp := range sp.Scale {
		st, err := ssp.build()
		if err != nil {
			return fmt.Errorf("line %d: %w", n.Line, err)
		}
		ar.at.Scale = append(ar.at.Scale, st)
	}
	return nil
}

// sizeSpec is a constant number or an attribute reference.
type sizeSpec struct {
	attributeRef
	value float32
}

func (sp *sizeSpec) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.ScalarNode && n.Decode(&sp.value) == nil {
		return nil
	}
	return sp.attributeRef.UnmarshalYAML(n)
}

// scaleSpec has exactly one of its fields set.
type scaleSpec struct {
	Uniform   *float32   `yaml:"uniform"`
	Normalize *rangeSpec `yaml:"normalize"`
	Offset    []float32  `yaml:"offset"`
	Clip      *rangeSpec `yaml:"clip"`
	Log       *float32   `yaml:"log"`
}

type rangeSpec struct {
	Min []float32 `yaml:"min"`
	Max []float32 `yaml:"max"`
}

func (sp *scaleSpec) build() (scale.Step, error) {
	var steps []scale.Step
	if sp.Uniform != nil {
		steps = append(steps, scale.Uniform{Factor: *sp.Uniform})
	}
	if sp.Normalize != nil {
		steps = append(steps, scale.Normalize{Min: sp.Normalize.Min, Max: sp.Normalize.Max})
	}
	if sp.Offset != nil {
		steps = append(steps, scale.Offset{Vector: sp.Offset})
	}
	if sp.Clip != nil {
		steps = append(steps, scale.Clip{Min: sp.Clip.Min, Max: sp.Clip.Max})
	}
	if sp.Log != nil {
		steps = append(steps, scale.Log{Base: *sp.Log})
	}
	if len(steps) != 1 {
		return nil, fmt.Errorf("a scale must have exactly one of uniform, normalize, offset, clip or log; got %d", len(steps))
	}
	return steps[0], nil
}

// textureSpec is a number (scalar constant), a color name or hex string
// (color constant), or a mapping describing a scalar field.
type textureSpec struct {
	tex grammar.Texture
}

func (ts *textureSpec) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.ScalarNode {
		var v float32
		if n.Decode(&v) == nil {
			ts.tex = grammar.UniformScalar(v)
			return nil
		}
		c, err := colors.FromString(n.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", n.Line, err)
		}
		ts.tex = grammar.UniformColor(c)
		return nil
	}
	var ar attributeRef
	if err := ar.UnmarshalYAML(n); err != nil {
		return err
	}
	var sp struct {
		Colormap string `yaml:"colormap"`
		UV       string `yaml:"uv"`
	}
	if err := n.Decode(&sp); err != nil {
		return err
	}
	sf := &grammar.ScalarField{Data: ar.at, Colormap: sp.Colormap}
	if sp.UV != "" {
		sf.UV = grammar.NewAttribute(sp.UV)
	}
	ts.tex = sf
	return nil
}

type materialSpec struct {
	Type                string       `yaml:"type"`
	Reflectance         *textureSpec `yaml:"reflectance"`
	Material            string       `yaml:"material"`
	Distribution        string       `yaml:"distribution"`
	Alpha               *textureSpec `yaml:"alpha"`
	DiffuseReflectance  *textureSpec `yaml:"diffuse_reflectance"`
	SpecularReflectance *textureSpec `yaml:"specular_reflectance"`
	IntIOR              *float32     `yaml:"int_ior"`
	ExtIOR              *float32     `yaml:"ext_ior"`
	Color               *textureSpec `yaml:"color"`
	Metallic            *textureSpec `yaml:"metallic"`
	Roughness           *textureSpec `yaml:"roughness"`
	Albedo              *textureSpec `yaml:"albedo"`
}

func (ts *textureSpec) or(def grammar.Texture) grammar.Texture {
	if ts == nil {
		return def
	}
	return ts.tex
}

func (sp *materialSpec) build() (grammar.Material, error) {
	switch sp.Type {
	case "", "diffuse":
		return grammar.NewDiffuse(sp.Reflectance.or(grammar.UniformColor(colors.Ivory))), nil
	case "conductor":
		return grammar.NewConductor(cmp.Or(sp.Material, "Cr")), nil
	case "rough_conductor":
		m := grammar.NewRoughConductor(cmp.Or(sp.Material, "Cr"))
		m.Distribution = cmp.Or(sp.Distribution, m.Distribution)
		m.Alpha = sp.Alpha.or(m.Alpha)
		return m, nil
	case "plastic", "rough_plastic":
		p := grammar.NewPlastic(sp.DiffuseReflectance.or(grammar.UniformScalar(0.5)))
		p.SpecularReflectance = sp.SpecularReflectance.or(p.SpecularReflectance)
		if sp.IntIOR != nil {
			p.IntIOR = *sp.IntIOR
		}
		if sp.ExtIOR != nil {
			p.ExtIOR = *sp.ExtIOR
		}
		if sp.Type == "plastic" {
			return p, nil
		}
		rp := &grammar.RoughPlastic{Plastic: *p, Distribution: cmp.Or(sp.Distribution, "beckmann"), Alpha: 0.1}
		if sp.Alpha != nil {
			u, ok := sp.Alpha.tex.(*grammar.Uniform)
			if !ok {
				return nil, fmt.Errorf("rough_plastic alpha must be a constant")
			}
			rp.Alpha = u.Scalar()
		}
		return rp, nil
	case "principled":
		m := grammar.NewPrincipled(sp.Color.or(grammar.UniformScalar(0.5)))
		m.Metallic = sp.Metallic.or(m.Metallic)
		m.Roughness = sp.Roughness.or(m.Roughness)
		return m, nil
	case "medium":
		m := grammar.NewMedium()
		if sp.Albedo != nil {
			u, ok := sp.Albedo.tex.(*grammar.Uniform)
			if !ok {
				return nil, fmt.Errorf("medium albedo must be a constant")
			}
			m.Albedo = u.Color
		}
		return m, nil
	}
	return nil, fmt.Errorf("material type %q: %w", sp.Type, grammar.ErrUnsupportedMaterial)
}
