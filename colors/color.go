// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides the linear RGB color value used for material
// constants and colormap entries, along with named colors and parsing.
package colors

import (
	"fmt"
	"image/color"
	"strings"

	"cogentcore.org/scenec/base/errors"
	"cogentcore.org/scenec/math32"
	"github.com/lucasb-eyer/go-colorful"
)

// RGB is a color with red, green and blue components in the [0, 1] range.
// This is the form in which renderers consume color constants.
type RGB struct {
	R float32
	G float32
	B float32
}

// Grey returns an [RGB] with all three components set to v.
// Scalar material parameters are represented this way.
func Grey(v float32) RGB {
	return RGB{v, v, v}
}

// FromRGBA returns the [RGB] for the given 8-bit color, ignoring alpha.
func FromRGBA(c color.RGBA) RGB {
	return RGB{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255}
}

// FromUint8 returns the [RGB] for the given 8-bit components.
func FromUint8(r, g, b uint8) RGB {
	return FromRGBA(color.RGBA{r, g, b, 255})
}

// AsRGBA returns the color as an opaque 8-bit [color.RGBA].
func (c RGB) AsRGBA() color.RGBA {
	cl := c.Clamp()
	return color.RGBA{uint8(cl.R*255 + 0.5), uint8(cl.G*255 + 0.5), uint8(cl.B*255 + 0.5), 255}
}

// Clamp returns the color with each component clamped to [0, 1].
func (c RGB) Clamp() RGB {
	return RGB{math32.Clamp(c.R, 0, 1), math32.Clamp(c.G, 0, 1), math32.Clamp(c.B, 0, 1)}
}

// Lerp returns the linear interpolation between c and o by amount t.
func (c RGB) Lerp(o RGB, t float32) RGB {
	return RGB{math32.Lerp(c.R, o.R, t), math32.Lerp(c.G, o.G, t), math32.Lerp(c.B, o.B, t)}
}

// Slice returns the components as a 3-element slice.
func (c RGB) Slice() []float32 {
	return []float32{c.R, c.G, c.B}
}

// Hex returns the color as a "#rrggbb" string.
func (c RGB) Hex() string {
	cl := c.Clamp()
	return colorful.Color{R: float64(cl.R), G: float64(cl.G), B: float64(cl.B)}.Hex()
}

func (c RGB) String() string {
	return fmt.Sprintf("rgb(%g, %g, %g)", c.R, c.G, c.B)
}

// FromHex parses the given "#rgb" or "#rrggbb" hex color string.
func FromHex(hex string) (RGB, error) {
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	if len(hex) == 4 {
		hex = string([]byte{'#', hex[1], hex[1], hex[2], hex[2], hex[3], hex[3]})
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return RGB{}, fmt.Errorf("colors.FromHex: could not process %q: %w", hex, err)
	}
	return RGB{float32(c.R), float32(c.G), float32(c.B)}, nil
}

// MustFromHex parses the given hex color string and panics on error.
func MustFromHex(hex string) RGB {
	return errors.Must1(FromHex(hex))
}

// FromName returns the color value specified
// by the given CSS standard color name. It returns
// an error if the name is not found.
func FromName(name string) (RGB, error) {
	c, ok := Map[strings.ToLower(name)]
	if !ok {
		return RGB{}, errors.New("colors.FromName: name not found: " + name)
	}
	return FromRGBA(c), nil
}

// MustFromName returns the color value specified
// by the given CSS standard color name. It panics
// if the name is not found.
func MustFromName(name string) RGB {
	return errors.Must1(FromName(name))
}

// FromString returns a color value from the given string,
// which can be a hex value ("#..." form) or a standard color name.
func FromString(str string) (RGB, error) {
	str = strings.TrimSpace(str)
	if strings.HasPrefix(str, "#") {
		return FromHex(str)
	}
	return FromName(str)
}
