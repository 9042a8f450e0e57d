// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package minmax

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestF32(t *testing.T) {
	var r F32
	r.SetInfinity()
	assert.False(t, r.IsValid())
	for _, v := range []float32{2, -1, 3} {
		r.FitValInRange(v)
	}
	assert.True(t, r.IsValid())
	assert.Equal(t, F32{-1, 3}, r)
	assert.False(t, r.FitValInRange(0))
	assert.Equal(t, float32(4), r.Range())
	assert.Equal(t, float32(1), r.Midpoint())
	assert.Equal(t, float32(0.5), r.NormValue(1))
	assert.Equal(t, float32(1), r.NormValue(10))
	assert.Equal(t, float32(-1), r.ClipValue(-5))

	r.Set(2, 2)
	assert.Equal(t, float32(0), r.Scale())
	assert.Equal(t, float32(0), r.NormValue(2))
}
