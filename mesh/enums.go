// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"fmt"
	"strings"
)

// Element is the mesh element that an [Attribute] is associated with.
type Element int32

const (
	// Vertex attributes have one value per vertex.
	Vertex Element = iota

	// Corner attributes have one value per facet corner.
	Corner

	// Indexed attributes have a shared value table indexed per facet corner.
	Indexed

	// Facet attributes have one value per facet.
	Facet
)

var elementNames = [...]string{"vertex", "corner", "indexed", "facet"}

func (e Element) String() string {
	if e < 0 || int(e) >= len(elementNames) {
		return fmt.Sprintf("Element(%d)", int32(e))
	}
	return elementNames[e]
}

// SetString sets the element from its string name.
func (e *Element) SetString(s string) error {
	for i, nm := range elementNames {
		if strings.EqualFold(nm, s) {
			*e = Element(i)
			return nil
		}
	}
	return fmt.Errorf("mesh: %q is not a valid Element", s)
}

// Usage describes the semantic role of an [Attribute]'s values.
type Usage int32

const (
	// Scalar attributes have a single channel of generic values.
	Scalar Usage = iota

	// Vector attributes have multiple channels of generic values.
	Vector

	// Color attributes hold RGB color values in [0, 1].
	Color

	// Normal attributes hold unit normal vectors.
	Normal

	// Position attributes hold point coordinates.
	Position

	// UV attributes hold texture coordinates.
	UV
)

var usageNames = [...]string{"scalar", "vector", "color", "normal", "position", "uv"}

func (u Usage) String() string {
	if u < 0 || int(u) >= len(usageNames) {
		return fmt.Sprintf("Usage(%d)", int32(u))
	}
	return usageNames[u]
}

// SetString sets the usage from its string name.
func (u *Usage) SetString(s string) error {
	for i, nm := range usageNames {
		if strings.EqualFold(nm, s) {
			*u = Usage(i)
			return nil
		}
	}
	return fmt.Errorf("mesh: %q is not a valid Usage", s)
}

// IsGeneric returns whether the usage is a plain [Scalar] or [Vector],
// which output formats identify by name rather than by role.
func (u Usage) IsGeneric() bool {
	return u == Scalar || u == Vector
}
