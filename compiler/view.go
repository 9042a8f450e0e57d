// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package compiler resolves the visual channels of views: it classifies
// and defaults channels, applies scales, resolves textures and color maps,
// and renames attributes so that the views can be assembled into a scene.
package compiler

import (
	"cogentcore.org/scenec/grammar"
	"cogentcore.org/scenec/mesh"
)

// View is one compiled leaf of a layer tree: a mark, its data source
// and the channels bound to it. It is built by the layer merge, updated
// in place by [Preprocess] and [Process], and then consumed by the
// scene assembler.
type View struct {

	// Name is the path of the originating layer, used in errors and logs.
	Name string

	// Mark is the kind of geometric primitive drawn for the data.
	Mark grammar.Mark

	// Data is the data source. Compiling the view adds and renames
	// its attributes.
	Data *mesh.Mesh

	// Channels are the channels in document order, before classification.
	Channels []grammar.Channel

	// Position is the resolved position channel.
	Position *grammar.Position

	// Normal is the resolved normal channel, if any.
	Normal *grammar.Normal

	// Size is the resolved size channel, if any.
	Size *grammar.Size

	// Material is the resolved material channel.
	Material grammar.Material

	// ActiveAttributes are the attributes used by the final output,
	// in the order they were registered.
	ActiveAttributes []*grammar.Attribute

	// UVAttribute is the texture coordinate attribute, if any
	// texture needs one.
	UVAttribute *grammar.Attribute
}

// NewView returns a new [View] of the given data source and mark with
// the given channels.
func NewView(name string, data *mesh.Mesh, mark grammar.Mark, channels ...grammar.Channel) *View {
	return &View{Name: name, Data: data, Mark: mark, Channels: channels}
}

func (vw *View) addActive(ats ...*grammar.Attribute) {
	vw.ActiveAttributes = append(vw.ActiveAttributes, ats...)
}

// Compile preprocesses and then processes the view.
func Compile(vw *View) error {
	if err := Preprocess(vw); err != nil {
		return err
	}
	return Process(vw)
}
