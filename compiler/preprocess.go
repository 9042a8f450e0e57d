// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compiler

import (
	"fmt"
	"log/slog"

	"cogentcore.org/scenec/grammar"
	"cogentcore.org/scenec/mesh"
	"cogentcore.org/scenec/scale"
)

// Preprocess classifies the channels of the view into its position,
// normal, size and material slots, and fills the empty slots with
// defaults derived from the data. When a view has several channels of
// the same kind, the first one is used and the others are ignored.
func Preprocess(vw *View) error {
	if vw.Data == nil {
		return fmt.Errorf("view %q: %w", vw.Name, grammar.ErrMissingDataSource)
	}
	for i, ch := range vw.Channels {
		switch ch := ch.(type) {
		case *grammar.Position:
			if vw.Position == nil {
				vw.Position = ch
			}
		case *grammar.Normal:
			if vw.Normal == nil {
				vw.Normal = ch
			}
		case *grammar.Size:
			if vw.Size == nil {
				vw.Size = ch
			}
		case grammar.Material:
			if vw.Material == nil {
				vw.Material = ch
			}
		default:
			return fmt.Errorf("view %q: channel %d (%T): %w", vw.Name, i, ch, grammar.ErrUnsupportedChannel)
		}
	}

	if vw.Position == nil {
		vw.Position = defaultPosition(vw)
	}
	if vw.Mark == grammar.Surface && vw.Normal == nil {
		name, err := vw.Data.ComputeVertexNormals()
		if err != nil {
			return fmt.Errorf("view %q: normal: %w", vw.Name, err)
		}
		slog.Debug("defaulted normal channel", "view", vw.Name, "attr", name)
		vw.Normal = grammar.NewNormal(grammar.NewAttribute(name))
	}
	if vw.Material == nil {
		slog.Debug("defaulted material channel", "view", vw.Name)
		vw.Material = grammar.DefaultMaterial()
	}
	return nil
}

// defaultPosition binds the vertex positions of the view data, scaled so
// that they fit in [-1, 1] in every dimension.
func defaultPosition(vw *View) *grammar.Position {
	ms := vw.Data
	at := grammar.NewAttribute(ms.VertexPositionAttributeName())
	if ms.NumVertices() == 0 {
		slog.Warn("position is not scaled", "view", vw.Name, "err", grammar.ErrDegenerateGeometry)
		return grammar.NewPosition(at)
	}
	size := ms.BBox().Size()
	diag := size.Length()
	factor := float32(1)
	if diag > 0 {
		factor = size.MaxComponent() / diag
	}
	at.Scale = scale.Chain{
		scale.Uniform{Factor: factor},
		scale.Normalize{Min: []float32{-1}, Max: []float32{1}},
	}
	slog.Debug("defaulted position channel", "view", vw.Name, "scale", at.Scale)
	return grammar.NewPosition(at)
}

// positionName reports whether the attribute refers to the vertex positions of ms.
func positionName(ms *mesh.Mesh, at *grammar.Attribute) bool {
	return at.Name == ms.VertexPositionAttributeName()
}
