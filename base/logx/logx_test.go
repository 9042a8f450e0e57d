// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFromFlags(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LevelFromFlags(true, false, false))
	assert.Equal(t, slog.LevelInfo, LevelFromFlags(false, true, true))
	assert.Equal(t, slog.LevelError, LevelFromFlags(false, false, true))
	assert.Equal(t, slog.LevelWarn, LevelFromFlags(false, false, false))
}

func TestHandler(t *testing.T) {
	prev := UserLevel
	defer func() { UserLevel = prev }()
	UserLevel = slog.LevelInfo

	buf := &bytes.Buffer{}
	lg := slog.New(NewHandler(buf))
	lg.Debug("hidden")
	lg.With("view", 2).WithGroup("attr").Info("renaming attribute", "from", "size", "to", "vertex_size_0")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "renaming attribute")
	assert.Contains(t, out, "view=2")
	assert.Contains(t, out, "attr.from=size")
	assert.Contains(t, out, "attr.to=vertex_size_0")
}
