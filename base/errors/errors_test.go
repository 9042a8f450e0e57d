// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLog1(t *testing.T) {
	assert.Equal(t, 12, Log1(strconv.Atoi("12")))
	assert.Equal(t, 0, Log1(strconv.Atoi("twelve")))
}

func TestMust(t *testing.T) {
	assert.NotPanics(t, func() { Must(nil) })
	assert.Panics(t, func() { Must(New("boom")) })
	assert.Panics(t, func() { Must1(strconv.Atoi("x")) })
}

func TestStdlib(t *testing.T) {
	base := New("base")
	wrapped := fmt.Errorf("context: %w", base)
	assert.True(t, Is(wrapped, base))
	assert.Equal(t, base, Unwrap(wrapped))
	assert.Nil(t, Join(nil, nil))
}
