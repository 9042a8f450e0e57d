// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scale provides composable numeric transforms that are applied
// to raw attribute values before they are used by a visual channel.
package scale

import (
	"fmt"
	"strings"

	"cogentcore.org/scenec/math32"
	"cogentcore.org/scenec/math32/minmax"
)

// Step is one numeric transform in a [Chain]. The set of steps is closed:
// every step type is defined in this package.
type Step interface {
	fmt.Stringer

	// apply transforms the flat values in place, where every
	// entry has nch channels.
	apply(values []float32, nch int) error
}

// Chain is an ordered list of steps, innermost first: each step is applied
// to the output of the previous one, so a [Normalize] uses the value range
// produced by the steps before it.
type Chain []Step

// Apply applies all steps of the chain in order to the flat values,
// which have nch channels per entry.
func (ch Chain) Apply(values []float32, nch int) error {
	if nch < 1 {
		return fmt.Errorf("scale: invalid number of channels %d", nch)
	}
	for _, st := range ch {
		if err := st.apply(values, nch); err != nil {
			return fmt.Errorf("scale: %v: %w", st, err)
		}
	}
	return nil
}

func (ch Chain) String() string {
	strs := make([]string, len(ch))
	for i, st := range ch {
		strs[i] = st.String()
	}
	return "[" + strings.Join(strs, " -> ") + "]"
}

// Uniform multiplies all values by a constant factor.
type Uniform struct {
	Factor float32
}

func (u Uniform) String() string {
	return fmt.Sprintf("Uniform(%g)", u.Factor)
}

func (u Uniform) apply(values []float32, nch int) error {
	for i := range values {
		values[i] *= u.Factor
	}
	return nil
}

// Normalize rescales the values into the box given by Min and Max, using the
// extent of the values themselves. A single uniform factor is used for all
// channels so that shapes keep their aspect ratio, and the data is centered
// in the target box. Min and Max have either one entry, used for every
// channel, or one entry per channel.
type Normalize struct {
	Min []float32
	Max []float32
}

func (n Normalize) String() string {
	return fmt.Sprintf("Normalize(%v, %v)", n.Min, n.Max)
}

func (n Normalize) apply(values []float32, nch int) error {
	if err := checkBroadcast("min", n.Min, nch); err != nil {
		return err
	}
	if err := checkBroadcast("max", n.Max, nch); err != nil {
		return err
	}
	if len(values) == 0 {
		return nil
	}
	ranges := channelRanges(values, nch)
	factor := math32.Infinity
	for c, rg := range ranges {
		target := broadcast(n.Max, c) - broadcast(n.Min, c)
		if target < 0 {
			return fmt.Errorf("max %g is less than min %g", broadcast(n.Max, c), broadcast(n.Min, c))
		}
		if r := rg.Range(); r > 0 {
			factor = math32.Min(factor, target/r)
		}
	}
	if math32.IsInf(factor, 1) {
		factor = 0
	}
	for i := range values {
		c := i % nch
		lo, hi := broadcast(n.Min, c), broadcast(n.Max, c)
		v := (values[i]-ranges[c].Midpoint())*factor + 0.5*(lo+hi)
		values[i] = math32.Clamp(v, lo, hi)
	}
	return nil
}

// Offset adds a constant vector to the values. Vector has either one
// entry, used for every channel, or one entry per channel.
type Offset struct {
	Vector []float32
}

func (o Offset) String() string {
	return fmt.Sprintf("Offset(%v)", o.Vector)
}

func (o Offset) apply(values []float32, nch int) error {
	if err := checkBroadcast("offset", o.Vector, nch); err != nil {
		return err
	}
	for i := range values {
		values[i] += broadcast(o.Vector, i%nch)
	}
	return nil
}

// Clip clamps the values into [Min, Max], channel by channel.
type Clip struct {
	Min []float32
	Max []float32
}

func (cl Clip) String() string {
	return fmt.Sprintf("Clip(%v, %v)", cl.Min, cl.Max)
}

func (cl Clip) apply(values []float32, nch int) error {
	if err := checkBroadcast("min", cl.Min, nch); err != nil {
		return err
	}
	if err := checkBroadcast("max", cl.Max, nch); err != nil {
		return err
	}
	for i := range values {
		c := i % nch
		values[i] = math32.Clamp(values[i], broadcast(cl.Min, c), broadcast(cl.Max, c))
	}
	return nil
}

// Log replaces every value by its logarithm in the given base,
// which defaults to e when zero. All values must be positive.
type Log struct {
	Base float32
}

func (l Log) String() string {
	return fmt.Sprintf("Log(%g)", l.Base)
}

func (l Log) apply(values []float32, nch int) error {
	div := float32(1)
	if l.Base != 0 {
		if l.Base <= 0 || l.Base == 1 {
			return fmt.Errorf("invalid base %g", l.Base)
		}
		div = math32.Log(l.Base)
	}
	for i, v := range values {
		if v <= 0 {
			return fmt.Errorf("value %g at index %d is not positive", v, i)
		}
		values[i] = math32.Log(v) / div
	}
	return nil
}

// channelRanges returns the min / max range of each channel.
func channelRanges(values []float32, nch int) []minmax.F32 {
	ranges := make([]minmax.F32, nch)
	for c := range ranges {
		ranges[c].SetInfinity()
	}
	for i, v := range values {
		ranges[i%nch].FitValInRange(v)
	}
	return ranges
}

func checkBroadcast(name string, vals []float32, nch int) error {
	if len(vals) != 1 && len(vals) != nch {
		return fmt.Errorf("%s has %d entries, want 1 or %d", name, len(vals), nch)
	}
	return nil
}

func broadcast(vals []float32, c int) float32 {
	if len(vals) == 1 {
		return vals[0]
	}
	return vals[c]
}
