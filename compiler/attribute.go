// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compiler

import (
	"fmt"

	"cogentcore.org/scenec/grammar"
	"cogentcore.org/scenec/mesh"
)

// computeScaledAttribute evaluates the scale chain of the attribute
// reference and points its resolved name at the attribute holding the
// result. Vertex positions are the mesh geometry and are scaled in
// place, always starting from the unscaled coordinates; any other scaled
// attribute is computed into a new attribute so that the raw values stay
// available to other views.
func computeScaledAttribute(ms *mesh.Mesh, at *grammar.Attribute) error {
	if at == nil {
		return fmt.Errorf("%w: no data attribute", grammar.ErrAttributeNotFound)
	}
	name := ms.CurrentName(at.Name)
	src, err := ms.Attribute(name)
	if err != nil {
		return fmt.Errorf("attribute %q: %w", at.Name, err)
	}
	if positionName(ms, at) {
		if err := ms.ScalePositions(at.Scale.Apply); err != nil {
			return fmt.Errorf("attribute %q: %w", at.Name, err)
		}
		at.ResolvedName = name
		return nil
	}
	if len(at.Scale) == 0 {
		at.ResolvedName = name
		return nil
	}
	dst := src.Clone(ms.UniqueName(name + "_scaled"))
	if err := at.Scale.Apply(dst.Values, dst.NumChannels); err != nil {
		return fmt.Errorf("attribute %q: %w", at.Name, err)
	}
	if err := ms.AddAttribute(dst); err != nil {
		return err
	}
	at.ResolvedName = dst.Name
	return nil
}
