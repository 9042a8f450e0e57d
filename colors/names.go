// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Based on golang.org/x/image/colornames
// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"
)

// Map contains named colors defined in the CSS spec that
// are useful as material constants.
var Map = map[string]color.RGBA{
	"aliceblue":      {0xf0, 0xf8, 0xff, 0xff}, // rgb(240, 248, 255)
	"antiquewhite":   {0xfa, 0xeb, 0xd7, 0xff}, // rgb(250, 235, 215)
	"beige":          {0xf5, 0xf5, 0xdc, 0xff}, // rgb(245, 245, 220)
	"black":          {0x00, 0x00, 0x00, 0xff}, // rgb(0, 0, 0)
	"blue":           {0x00, 0x00, 0xff, 0xff}, // rgb(0, 0, 255)
	"brown":          {0xa5, 0x2a, 0x2a, 0xff}, // rgb(165, 42, 42)
	"coral":          {0xff, 0x7f, 0x50, 0xff}, // rgb(255, 127, 80)
	"cornflowerblue": {0x64, 0x95, 0xed, 0xff}, // rgb(100, 149, 237)
	"crimson":        {0xdc, 0x14, 0x3c, 0xff}, // rgb(220, 20, 60)
	"cyan":           {0x00, 0xff, 0xff, 0xff}, // rgb(0, 255, 255)
	"darkgray":       {0xa9, 0xa9, 0xa9, 0xff}, // rgb(169, 169, 169)
	"darkgrey":       {0xa9, 0xa9, 0xa9, 0xff}, // rgb(169, 169, 169)
	"gold":           {0xff, 0xd7, 0x00, 0xff}, // rgb(255, 215, 0)
	"gray":           {0x80, 0x80, 0x80, 0xff}, // rgb(128, 128, 128)
	"green":          {0x00, 0x80, 0x00, 0xff}, // rgb(0, 128, 0)
	"grey":           {0x80, 0x80, 0x80, 0xff}, // rgb(128, 128, 128)
	"ivory":          {0xff, 0xff, 0xf0, 0xff}, // rgb(255, 255, 240)
	"lightgray":      {0xd3, 0xd3, 0xd3, 0xff}, // rgb(211, 211, 211)
	"lightgrey":      {0xd3, 0xd3, 0xd3, 0xff}, // rgb(211, 211, 211)
	"linen":          {0xfa, 0xf0, 0xe6, 0xff}, // rgb(250, 240, 230)
	"magenta":        {0xff, 0x00, 0xff, 0xff}, // rgb(255, 0, 255)
	"navy":           {0x00, 0x00, 0x80, 0xff}, // rgb(0, 0, 128)
	"orange":         {0xff, 0xa5, 0x00, 0xff}, // rgb(255, 165, 0)
	"purple":         {0x80, 0x00, 0x80, 0xff}, // rgb(128, 0, 128)
	"red":            {0xff, 0x00, 0x00, 0xff}, // rgb(255, 0, 0)
	"salmon":         {0xfa, 0x80, 0x72, 0xff}, // rgb(250, 128, 114)
	"silver":         {0xc0, 0xc0, 0xc0, 0xff}, // rgb(192, 192, 192)
	"steelblue":      {0x46, 0x82, 0xb4, 0xff}, // rgb(70, 130, 180)
	"teal":           {0x00, 0x80, 0x80, 0xff}, // rgb(0, 128, 128)
	"tomato":         {0xff, 0x63, 0x47, 0xff}, // rgb(255, 99, 71)
	"white":          {0xff, 0xff, 0xff, 0xff}, // rgb(255, 255, 255)
	"whitesmoke":     {0xf5, 0xf5, 0xf5, 0xff}, // rgb(245, 245, 245)
	"yellow":         {0xff, 0xff, 0x00, 0xff}, // rgb(255, 255, 0)
}

// Ivory is the neutral color used for default materials.
var Ivory = FromRGBA(Map["ivory"])
