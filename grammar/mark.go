// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grammar

import (
	"fmt"
	"strings"
)

// Mark is the geometric primitive type used to draw data.
type Mark int32

const (
	// Point draws every vertex as a sphere.
	Point Mark = iota

	// Curve draws every edge as a curve segment.
	Curve

	// Surface draws the facets as a surface mesh.
	Surface
)

var markNames = [...]string{"point", "curve", "surface"}

func (m Mark) String() string {
	if m < 0 || int(m) >= len(markNames) {
		return fmt.Sprintf("Mark(%d)", int32(m))
	}
	return markNames[m]
}

// SetString sets the mark from its case-insensitive name.
func (m *Mark) SetString(s string) error {
	for i, nm := range markNames {
		if strings.EqualFold(nm, s) {
			*m = Mark(i)
			return nil
		}
	}
	return fmt.Errorf("grammar: %q is not a valid Mark", s)
}

// MarshalText implements [encoding.TextMarshaler].
func (m Mark) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (m *Mark) UnmarshalText(text []byte) error {
	return m.SetString(string(text))
}
