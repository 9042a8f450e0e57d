// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package layer provides the tree of layers that a scene is specified
// with. Every layer may set a data source, a mark and channels, and
// every leaf of the tree becomes one view, using the settings of its
// nearest ancestors for everything it does not set itself.
//
// Layers are built with chained calls that return new layers and never
// modify the receiver, so a partially specified layer can be shared:
//
//	base := layer.New().Data(ms)
//	points := base.Mark(grammar.Point).Channel(grammar.NewSize(grammar.NewAttribute("size")))
//	surface := base.Mark(grammar.Surface)
//	views, err := layer.Merge(layer.Stack(points, surface))
package layer

import (
	"slices"

	"cogentcore.org/scenec/grammar"
	"cogentcore.org/scenec/mesh"
)

// Layer is a node of a layer tree.
type Layer struct {

	// Name is used in the path of the views and errors made from
	// this layer. If empty, the index of the layer in its parent is used.
	Name string

	// Settings are the settings of this layer itself.
	Settings Settings

	// Children are the child layers.
	Children []*Layer
}

// New returns a new empty layer.
func New() *Layer {
	return &Layer{}
}

// Stack returns a new layer with the given layers as children, so that
// they are all drawn in the same scene.
func Stack(layers ...*Layer) *Layer {
	return &Layer{Children: slices.Clone(layers)}
}

func (l *Layer) clone() *Layer {
	cp := *l
	cp.Settings.Channels = slices.Clone(l.Settings.Channels)
	cp.Children = slices.Clone(l.Children)
	return &cp
}

// Named returns a copy of the layer with the given name.
func (l *Layer) Named(name string) *Layer {
	cp := l.clone()
	cp.Name = name
	return cp
}

// Data returns a copy of the layer with the given data source.
func (l *Layer) Data(ms *mesh.Mesh) *Layer {
	cp := l.clone()
	cp.Settings.Data = ms
	return cp
}

// Mark returns a copy of the layer with the given mark.
func (l *Layer) Mark(m grammar.Mark) *Layer {
	cp := l.clone()
	cp.Settings.Mark = &m
	return cp
}

// Channel returns a copy of the layer with the given channels
// appended to its channels.
func (l *Layer) Channel(chs ...grammar.Channel) *Layer {
	cp := l.clone()
	cp.Settings.Channels = append(cp.Settings.Channels, chs...)
	return cp
}

// AddChild returns a copy of the layer with the given children appended.
func (l *Layer) AddChild(children ...*Layer) *Layer {
	cp := l.clone()
	cp.Children = append(cp.Children, children...)
	return cp
}

// Settings are the data source, mark and channels of a layer.
// Unset fields are nil.
type Settings struct {
	Data     *mesh.Mesh
	Mark     *grammar.Mark
	Channels []grammar.Channel
}

// Override returns the settings of a layer with these own settings
// under a parent with the given effective settings: every field set
// here is used, and every unset field comes from the parent. The
// channels are these channels followed by the parent's, so that the
// first channel of a kind is the one set closest to the layer.
// Neither value is modified.
func (st Settings) Override(parent Settings) Settings {
	res := parent
	if st.Data != nil {
		res.Data = st.Data
	}
	if st.Mark != nil {
		res.Mark = st.Mark
	}
	res.Channels = slices.Concat(st.Channels, parent.Channels)
	return res
}
