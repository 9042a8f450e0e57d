// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colormap provides fixed color lookup tables that map
// a scalar value in the [0, 1] range onto a color.
package colormap

import (
	"fmt"
	"slices"

	"cogentcore.org/scenec/base/errors"
	"cogentcore.org/scenec/colors"
	"cogentcore.org/scenec/math32"
	"golang.org/x/exp/maps"
)

// Map is an immutable color lookup table. Values in [0, 1] are mapped
// linearly onto the ordered list of colors, interpolating between the
// two nearest entries.
type Map struct {

	// Name is the name of the color map.
	Name string

	// colors is the ordered lookup table.
	colors []colors.RGB
}

// New returns a new [Map] with the given name and colors.
// The colors are copied, so later changes to the given slice do
// not affect the map. At least one color is required.
func New(name string, clrs ...colors.RGB) (*Map, error) {
	if len(clrs) == 0 {
		return nil, fmt.Errorf("colormap.New: map %q has no colors", name)
	}
	return &Map{Name: name, colors: slices.Clone(clrs)}, nil
}

// FromHex returns a new [Map] with the given name from
// the given list of hex color strings.
func FromHex(name string, hexes ...string) (*Map, error) {
	clrs := make([]colors.RGB, len(hexes))
	for i, h := range hexes {
		c, err := colors.FromHex(h)
		if err != nil {
			return nil, fmt.Errorf("colormap.FromHex: map %q entry %d: %w", name, i, err)
		}
		clrs[i] = c
	}
	return New(name, clrs...)
}

// FromUint8 returns a new [Map] from rows of 8-bit RGB values.
// It panics if rows is empty, so it is only used for built-in tables.
func FromUint8(name string, rows ...[3]uint8) *Map {
	clrs := make([]colors.RGB, len(rows))
	for i, r := range rows {
		clrs[i] = colors.FromUint8(r[0], r[1], r[2])
	}
	return errors.Must1(New(name, clrs...))
}

// Len returns the number of entries in the table.
func (cm *Map) Len() int {
	return len(cm.colors)
}

// Color returns the table entry at the given index.
func (cm *Map) Color(idx int) colors.RGB {
	return cm.colors[idx]
}

// Sample returns the color for the given value. The value is clamped
// to [0, 1] and located at position t * (n-1) in the table, with linear
// interpolation between the two neighboring entries.
func (cm *Map) Sample(t float32) colors.RGB {
	n := len(cm.colors)
	if n == 1 || math32.IsNaN(t) {
		return cm.colors[0]
	}
	t = math32.Clamp(t, 0, 1)
	pos := t * float32(n-1)
	lo := int(pos)
	if lo >= n-1 {
		return cm.colors[n-1]
	}
	return cm.colors[lo].Lerp(cm.colors[lo+1], pos-float32(lo))
}

// AvailableMaps is the list of all available color maps, keyed by name.
// Additional maps can be registered with [Register].
var AvailableMaps = map[string]*Map{}

// Register adds the given map to [AvailableMaps], replacing any
// existing map with the same name.
func Register(cm *Map) {
	AvailableMaps[cm.Name] = cm
}

// ByName returns the available map with the given name.
func ByName(name string) (*Map, error) {
	cm, ok := AvailableMaps[name]
	if !ok {
		return nil, fmt.Errorf("colormap: unknown color map %q (available: %v)", name, AvailableMapsList())
	}
	return cm, nil
}

// AvailableMapsList returns a sorted list of all available color map names.
func AvailableMapsList() []string {
	names := maps.Keys(AvailableMaps)
	slices.Sort(names)
	return names
}
