// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector3FromSlice(t *testing.T) {
	assert.Equal(t, Vec3(1, 2, 0), Vector3FromSlice([]float32{1, 2}))
	assert.Equal(t, Vec3(1, 2, 3), Vector3FromSlice([]float32{1, 2, 3, 4}))
	assert.Equal(t, Vector3{}, Vector3FromSlice(nil))
}

func TestVector3(t *testing.T) {
	a, b := Vec3(1, 0, 0), Vec3(0, 1, 0)
	assert.Equal(t, Vec3(0, 0, 1), a.Cross(b))
	assert.Equal(t, float32(0), a.Dot(b))
	assert.Equal(t, float32(5), Vec3(3, 4, 0).Length())
	n := Vec3(3, 4, 0).Normal()
	assert.InDelta(t, 0.6, n.X, 1e-6)
	assert.InDelta(t, 0.8, n.Y, 1e-6)
	assert.Equal(t, Vector3{}, Vector3{}.Normal())
	assert.Equal(t, float32(4), Vec3(3, 4, -5).MaxComponent())
	assert.Equal(t, float32(4), Vec3(3, 4, 0).Dim(1))
}

func TestBox3(t *testing.T) {
	b := B3Empty()
	assert.True(t, b.IsEmpty())
	assert.Equal(t, float32(0), b.Diagonal())
	b.SetFromPoints([]Vector3{Vec3(0, 0, 0), Vec3(2, 0, 0), Vec3(0, 2, 1)})
	assert.False(t, b.IsEmpty())
	assert.Equal(t, Vec3(2, 2, 1), b.Size())
	assert.Equal(t, Vec3(1, 1, 0.5), b.Center())
	assert.Equal(t, float32(3), b.Diagonal())
}

func TestClamp(t *testing.T) {
	assert.Equal(t, float32(1), Clamp[float32](3, 0, 1))
	assert.Equal(t, 0, Clamp(-2, 0, 1))
	assert.Equal(t, float32(2.5), Lerp(2, 3, 0.5))
}
