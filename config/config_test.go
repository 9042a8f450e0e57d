// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	c := New()
	assert.Equal(t, "scene", c.Output)
	assert.Equal(t, "yaml", c.Format)
	assert.Equal(t, "", c.Compress)
	assert.Equal(t, float32(0.01), c.PointRadius)
	assert.Equal(t, float32(1), c.SizeScale)
	assert.Equal(t, 4, c.Workers)
	assert.NoError(t, c.Validate())
}

func TestOpen(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "config.toml")
	src := "format = \"json\"\ncompress = \"zstd\"\npoint_radius = 0.5\n"
	require.NoError(t, os.WriteFile(fn, []byte(src), 0o644))
	c, err := Open(fn)
	require.NoError(t, err)
	assert.Equal(t, "json", c.Format)
	assert.Equal(t, "zstd", c.Compress)
	assert.Equal(t, float32(0.5), c.PointRadius)
	assert.Equal(t, "scene", c.Output)
	assert.Equal(t, float32(0.5), c.SceneOptions().PointRadius)

	require.NoError(t, os.WriteFile(fn, []byte("format = \"xml\"\n"), 0o644))
	_, err = Open(fn)
	assert.ErrorContains(t, err, "xml")

	_, err = Open(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "sub", "config.toml")
	c := New()
	c.Workers = 8
	c.Compress = "zlib"
	require.NoError(t, c.Save(fn))
	c2, err := Open(fn)
	require.NoError(t, err)
	assert.Equal(t, c, c2)
}
