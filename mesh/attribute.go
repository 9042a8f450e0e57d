// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

// Attribute is a named table of per-element values stored on a [Mesh].
// Values are stored flat, NumChannels floats per entry.
type Attribute struct {

	// Name is the key of the attribute in its mesh.
	Name string

	// Element is the mesh element the values are associated with.
	Element Element

	// Usage is the semantic role of the values.
	Usage Usage

	// NumChannels is the number of values per entry.
	NumChannels int

	// Values are the flat attribute values.
	Values []float32

	// Indices map each facet corner to an entry in Values.
	// It is only used for [Indexed] attributes.
	Indices []uint32
}

// Len returns the number of entries (not floats) in the value table.
func (at *Attribute) Len() int {
	if at.NumChannels == 0 {
		return 0
	}
	return len(at.Values) / at.NumChannels
}

// Value returns the values of entry i, as a slice into the value table.
func (at *Attribute) Value(i int) []float32 {
	return at.Values[i*at.NumChannels : (i+1)*at.NumChannels]
}

// IsIndexed returns whether this is an [Indexed] attribute.
func (at *Attribute) IsIndexed() bool {
	return at.Element == Indexed
}

// Clone returns a deep copy of the attribute with the given name.
func (at *Attribute) Clone(name string) *Attribute {
	cp := *at
	cp.Name = name
	cp.Values = append([]float32(nil), at.Values...)
	if at.Indices != nil {
		cp.Indices = append([]uint32(nil), at.Indices...)
	}
	return &cp
}
