// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mesh provides a polygonal mesh with an ordered, mutable table
// of named attributes, which is the data source that scenes are
// compiled from.
//
// A Mesh is not safe for concurrent use: compiling views rename and
// add attributes, so all compiles over one mesh must be serialized.
package mesh

import (
	"fmt"
	"slices"
	"strconv"

	"cogentcore.org/scenec/base/errors"
	"cogentcore.org/scenec/math32"
)

// VertexPositionName is the name of the attribute holding vertex coordinates.
const VertexPositionName = "$vertex_to_position"

// VertexNormalName is the base name of computed vertex normal attributes.
const VertexNormalName = "@vertex_normal"

// ErrAttributeNotFound is returned when a named attribute does not exist.
var ErrAttributeNotFound = errors.New("attribute not found")

// Mesh is a polygonal mesh where every facet has the same number of
// vertices, together with an ordered table of attributes keyed by name.
// The vertex coordinates are themselves stored as the [Position]
// attribute named [VertexPositionName].
type Mesh struct {

	// dim is the dimension of the vertex coordinates (2 or 3).
	dim int

	// facetSize is the number of vertices per facet.
	facetSize int

	// facets are the flat facet vertex indices.
	facets []uint32

	// names is the ordered list of attribute names.
	names []string

	// attrs is the name to attribute mapping.
	attrs map[string]*Attribute

	// renamed maps old attribute names to the names they were renamed to.
	renamed map[string]string

	// rawPositions are the vertex coordinates before any scaling,
	// saved by the first call to [Mesh.ScalePositions].
	rawPositions []float32
}

// New returns a new empty [Mesh] with the given vertex dimension and
// number of vertices per facet (3 for triangle meshes).
func New(dim, facetSize int) *Mesh {
	ms := &Mesh{dim: dim, facetSize: facetSize, attrs: map[string]*Attribute{}, renamed: map[string]string{}}
	ms.addAttribute(&Attribute{Name: VertexPositionName, Element: Vertex, Usage: Position, NumChannels: dim})
	return ms
}

// FromArrays returns a new [Mesh] from flat vertex coordinates and
// flat facet indices.
func FromArrays(dim int, vertices []float32, facetSize int, facets []uint32) (*Mesh, error) {
	if dim < 1 {
		return nil, fmt.Errorf("mesh: invalid dimension %d", dim)
	}
	if len(vertices)%dim != 0 {
		return nil, fmt.Errorf("mesh: %d coordinates is not a multiple of dimension %d", len(vertices), dim)
	}
	ms := New(dim, facetSize)
	ms.positions().Values = append([]float32(nil), vertices...)
	if err := ms.AddFacets(facets...); err != nil {
		return nil, err
	}
	return ms, nil
}

func (ms *Mesh) positions() *Attribute {
	return ms.attrs[VertexPositionName]
}

// Dimension returns the dimension of the vertex coordinates.
func (ms *Mesh) Dimension() int {
	return ms.dim
}

// VertexPerFacet returns the number of vertices of every facet.
func (ms *Mesh) VertexPerFacet() int {
	return ms.facetSize
}

// NumVertices returns the number of vertices.
func (ms *Mesh) NumVertices() int {
	return ms.positions().Len()
}

// NumFacets returns the number of facets.
func (ms *Mesh) NumFacets() int {
	if ms.facetSize == 0 {
		return 0
	}
	return len(ms.facets) / ms.facetSize
}

// NumCorners returns the number of facet corners.
func (ms *Mesh) NumCorners() int {
	return len(ms.facets)
}

// AddVertex adds a vertex with the given coordinates, which must
// match the mesh dimension, and returns its index.
func (ms *Mesh) AddVertex(coords ...float32) (int, error) {
	if len(coords) != ms.dim {
		return 0, fmt.Errorf("mesh: vertex has %d coordinates, want %d", len(coords), ms.dim)
	}
	pos := ms.positions()
	pos.Values = append(pos.Values, coords...)
	if ms.rawPositions != nil {
		ms.rawPositions = append(ms.rawPositions, coords...)
	}
	return pos.Len() - 1, nil
}

// ScalePositions sets the vertex coordinates to the result of f applied
// to the unscaled coordinates, which are kept on the first call. Every
// call thus starts over from the coordinates the mesh was built with,
// no matter how often its positions have been scaled before.
func (ms *Mesh) ScalePositions(f func(values []float32, nch int) error) error {
	pos := ms.positions()
	if ms.rawPositions == nil {
		ms.rawPositions = slices.Clone(pos.Values)
	}
	values := slices.Clone(ms.rawPositions)
	if err := f(values, pos.NumChannels); err != nil {
		return err
	}
	copy(pos.Values, values)
	return nil
}

// AddFacets adds facets from the given flat vertex indices.
func (ms *Mesh) AddFacets(idx ...uint32) error {
	if ms.facetSize == 0 {
		if len(idx) > 0 {
			return errors.New("mesh: cannot add facets to a point cloud")
		}
		return nil
	}
	if len(idx)%ms.facetSize != 0 {
		return fmt.Errorf("mesh: %d indices is not a multiple of facet size %d", len(idx), ms.facetSize)
	}
	nv := uint32(ms.NumVertices())
	for _, i := range idx {
		if i >= nv {
			return fmt.Errorf("mesh: facet vertex index %d out of range [0, %d)", i, nv)
		}
	}
	ms.facets = append(ms.facets, idx...)
	return nil
}

// Vertex returns the coordinates of vertex i, as a slice into
// the position attribute.
func (ms *Mesh) Vertex(i int) []float32 {
	return ms.positions().Value(i)
}

// Facet returns the vertex indices of facet i.
func (ms *Mesh) Facet(i int) []uint32 {
	return ms.facets[i*ms.facetSize : (i+1)*ms.facetSize]
}

// BBox returns the bounding box of the vertices. 2D coordinates
// have a zero Z extent. The box is empty if there are no vertices.
func (ms *Mesh) BBox() math32.Box3 {
	bb := math32.B3Empty()
	for i := range ms.NumVertices() {
		bb.ExpandByPoint(math32.Vector3FromSlice(ms.Vertex(i)))
	}
	return bb
}

// Edges returns the unique undirected facet edges, in order of
// first appearance.
func (ms *Mesh) Edges() [][2]uint32 {
	var edges [][2]uint32
	seen := map[[2]uint32]bool{}
	for f := range ms.NumFacets() {
		fc := ms.Facet(f)
		for k := range fc {
			a, b := fc[k], fc[(k+1)%len(fc)]
			if a > b {
				a, b = b, a
			}
			e := [2]uint32{a, b}
			if a == b || seen[e] {
				continue
			}
			seen[e] = true
			edges = append(edges, e)
		}
	}
	return edges
}

///////////////////////////////////////////////////////////////
// Attribute table

// VertexPositionAttributeName returns the name of the vertex position attribute.
func (ms *Mesh) VertexPositionAttributeName() string {
	return VertexPositionName
}

// HasAttribute returns whether an attribute with the given name exists.
func (ms *Mesh) HasAttribute(name string) bool {
	_, ok := ms.attrs[name]
	return ok
}

// Attribute returns the attribute with the given name. The error
// wraps [ErrAttributeNotFound] and suggests a similar existing name.
func (ms *Mesh) Attribute(name string) (*Attribute, error) {
	at, ok := ms.attrs[name]
	if !ok {
		if s := ms.Suggest(name); s != "" {
			return nil, fmt.Errorf("%w: %q (did you mean %q?)", ErrAttributeNotFound, name, s)
		}
		return nil, fmt.Errorf("%w: %q", ErrAttributeNotFound, name)
	}
	return at, nil
}

// IsAttributeIndexed returns whether the named attribute exists and is [Indexed].
func (ms *Mesh) IsAttributeIndexed(name string) bool {
	at, ok := ms.attrs[name]
	return ok && at.IsIndexed()
}

// AttributeNames returns the attribute names in the order they were added.
func (ms *Mesh) AttributeNames() []string {
	return slices.Clone(ms.names)
}

// NumElements returns the number of entries an attribute associated
// with the given element must have. For [Indexed] attributes this is
// the number of corners, which is the length of the index list.
func (ms *Mesh) NumElements(el Element) int {
	switch el {
	case Vertex:
		return ms.NumVertices()
	case Corner, Indexed:
		return ms.NumCorners()
	case Facet:
		return ms.NumFacets()
	}
	return 0
}

// CreateAttribute adds a new non-indexed attribute with the given values,
// which are copied. It is an error if the name is taken or the number of
// values does not match the element count.
func (ms *Mesh) CreateAttribute(name string, el Element, usage Usage, numChannels int, values []float32) (*Attribute, error) {
	if el == Indexed {
		return nil, fmt.Errorf("mesh: use CreateIndexedAttribute for indexed attribute %q", name)
	}
	if err := ms.checkNew(name, numChannels); err != nil {
		return nil, err
	}
	if want := ms.NumElements(el) * numChannels; len(values) != want {
		return nil, fmt.Errorf("mesh: attribute %q has %d values, want %d (%d %s x %d channels)", name, len(values), want, ms.NumElements(el), el, numChannels)
	}
	at := &Attribute{Name: name, Element: el, Usage: usage, NumChannels: numChannels, Values: slices.Clone(values)}
	ms.addAttribute(at)
	return at, nil
}

// CreateIndexedAttribute adds a new [Indexed] attribute from a value table
// and one index into it per facet corner.
func (ms *Mesh) CreateIndexedAttribute(name string, usage Usage, numChannels int, values []float32, indices []uint32) (*Attribute, error) {
	if err := ms.checkNew(name, numChannels); err != nil {
		return nil, err
	}
	if len(values)%numChannels != 0 {
		return nil, fmt.Errorf("mesh: indexed attribute %q has %d values, not a multiple of %d channels", name, len(values), numChannels)
	}
	if len(indices) != ms.NumCorners() {
		return nil, fmt.Errorf("mesh: indexed attribute %q has %d indices, want %d corners", name, len(indices), ms.NumCorners())
	}
	n := uint32(len(values) / numChannels)
	for _, i := range indices {
		if i >= n {
			return nil, fmt.Errorf("mesh: indexed attribute %q index %d out of range [0, %d)", name, i, n)
		}
	}
	at := &Attribute{Name: name, Element: Indexed, Usage: usage, NumChannels: numChannels, Values: slices.Clone(values), Indices: slices.Clone(indices)}
	ms.addAttribute(at)
	return at, nil
}

// AddAttribute adds the given attribute under its own name.
// It is used for attributes derived from existing ones.
func (ms *Mesh) AddAttribute(at *Attribute) error {
	if err := ms.checkNew(at.Name, at.NumChannels); err != nil {
		return err
	}
	ms.addAttribute(at)
	return nil
}

func (ms *Mesh) checkNew(name string, numChannels int) error {
	if name == "" {
		return errors.New("mesh: attribute name is empty")
	}
	if ms.HasAttribute(name) {
		return fmt.Errorf("mesh: attribute %q already exists", name)
	}
	if numChannels < 1 {
		return fmt.Errorf("mesh: attribute %q has invalid number of channels %d", name, numChannels)
	}
	return nil
}

func (ms *Mesh) addAttribute(at *Attribute) {
	ms.names = append(ms.names, at.Name)
	ms.attrs[at.Name] = at
}

// RenameAttribute renames attribute old to new, keeping its position
// in the attribute order. The vertex position attribute cannot be renamed.
func (ms *Mesh) RenameAttribute(old, new string) error {
	if old == VertexPositionName {
		return errors.New("mesh: cannot rename the vertex position attribute")
	}
	at, err := ms.Attribute(old)
	if err != nil {
		return err
	}
	if old == new {
		return nil
	}
	if new == "" || ms.HasAttribute(new) {
		return fmt.Errorf("mesh: cannot rename %q: name %q is empty or taken", old, new)
	}
	idx := slices.Index(ms.names, old)
	ms.names[idx] = new
	delete(ms.attrs, old)
	at.Name = new
	ms.attrs[new] = at
	ms.renamed[old] = new
	return nil
}

// CurrentName returns the name under which the attribute originally
// called name is now stored, following renames. It returns name itself
// if an attribute has that name or it was never renamed.
func (ms *Mesh) CurrentName(name string) string {
	for range len(ms.renamed) + 1 {
		if ms.HasAttribute(name) {
			return name
		}
		next, ok := ms.renamed[name]
		if !ok {
			return name
		}
		name = next
	}
	return name
}

// DeleteAttribute removes the named attribute.
// The vertex position attribute cannot be deleted.
func (ms *Mesh) DeleteAttribute(name string) error {
	if name == VertexPositionName {
		return errors.New("mesh: cannot delete the vertex position attribute")
	}
	if _, err := ms.Attribute(name); err != nil {
		return err
	}
	ms.names = slices.DeleteFunc(ms.names, func(s string) bool { return s == name })
	delete(ms.attrs, name)
	return nil
}

// UniqueName returns the given name if no attribute has it,
// and otherwise the first of name_1, name_2, ... that is free.
func (ms *Mesh) UniqueName(name string) string {
	if !ms.HasAttribute(name) {
		return name
	}
	for i := 1; ; i++ {
		nm := name + "_" + strconv.Itoa(i)
		if !ms.HasAttribute(nm) {
			return nm
		}
	}
}
