// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package minmax provides a struct that holds Min and Max values.
package minmax

import "cogentcore.org/scenec/math32"

// F32 represents a min / max range for float32 values.
type F32 struct {
	Min float32
	Max float32
}

// Set sets the min and max values.
func (mr *F32) Set(mn, mx float32) {
	mr.Min = mn
	mr.Max = mx
}

// SetInfinity sets Min to +MaxFloat and Max to -MaxFloat, which is the
// starting point for iteratively calling [F32.FitValInRange].
func (mr *F32) SetInfinity() {
	mr.Min = math32.MaxFloat32
	mr.Max = -math32.MaxFloat32
}

// IsValid returns true if Min <= Max, which is false for a range
// that has not seen any value since [F32.SetInfinity].
func (mr *F32) IsValid() bool {
	return mr.Min <= mr.Max
}

// Range returns Max - Min.
func (mr *F32) Range() float32 {
	return mr.Max - mr.Min
}

// Scale returns 1 / Range, or 0 for an empty range.
func (mr *F32) Scale() float32 {
	r := mr.Range()
	if r != 0 {
		return 1 / r
	}
	return 0
}

// Midpoint returns the point halfway between Min and Max.
func (mr *F32) Midpoint() float32 {
	return 0.5 * (mr.Max + mr.Min)
}

// FitValInRange expands the range to include the given value,
// returning true if it had to be expanded.
func (mr *F32) FitValInRange(val float32) bool {
	adj := false
	if val < mr.Min {
		mr.Min = val
		adj = true
	}
	if val > mr.Max {
		mr.Max = val
		adj = true
	}
	return adj
}

// NormValue maps the value into the 0-1 unit range relative to Min and Max,
// after clipping it to the range. A zero-width range maps everything to 0.
func (mr *F32) NormValue(val float32) float32 {
	return (mr.ClipValue(val) - mr.Min) * mr.Scale()
}

// ClipValue clips the given value to the range. NaN stays NaN.
func (mr *F32) ClipValue(val float32) float32 {
	return math32.Clamp(val, mr.Min, mr.Max)
}
