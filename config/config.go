// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration struct for the scenec tool.
package config

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"cogentcore.org/scenec/base/errors"
	"cogentcore.org/scenec/base/iox/tomlx"
	"cogentcore.org/scenec/base/reflectx"
	"cogentcore.org/scenec/scene"
	"github.com/mitchellh/go-homedir"
)

// DefaultFile is the config file read from the user's home directory
// when no config file is given.
const DefaultFile = "~/.config/scenec/config.toml"

// Config is the main config struct that contains all of the
// configuration options for the scenec tool.
type Config struct {

	// the directory the scene and its geometry files are written to
	Output string `default:"scene" toml:"output"`

	// the encoding of the scene description (yaml or json)
	Format string `default:"yaml" toml:"format"`

	// the compression of the scene description ("", zstd or zlib)
	Compress string `toml:"compress"`

	// the radius of points and curves without a size channel
	PointRadius float32 `default:"0.01" toml:"point_radius"`

	// the factor all sizes are multiplied by
	SizeScale float32 `default:"1" toml:"size_scale"`

	// the number of views compiled concurrently
	Workers int `default:"4" toml:"workers"`

	// show debug messages
	VeryVerbose bool `toml:"very_verbose"`

	// show informational messages
	Verbose bool `toml:"verbose"`

	// only show errors
	Quiet bool `toml:"quiet"`
}

// New returns a new [Config] with all of its default values set.
func New() *Config {
	c := &Config{}
	errors.Must(reflectx.SetFromDefaultTags(c))
	return c
}

// Open returns the configuration read from the given TOML file over the
// defaults. A leading ~ in the filename is expanded to the home directory.
// If filename is empty, [DefaultFile] is read if it exists.
func Open(filename string) (*Config, error) {
	c := New()
	optional := filename == ""
	if optional {
		filename = DefaultFile
	}
	fn, err := homedir.Expand(filename)
	if err != nil {
		return nil, err
	}
	if err := tomlx.Open(c, fn); err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return c, nil
		}
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", fn, err)
	}
	return c, nil
}

// Validate returns an error if any of the options has an invalid value.
func (c *Config) Validate() error {
	switch c.Format {
	case "yaml", "json":
	default:
		return fmt.Errorf("invalid format %q (must be yaml or json)", c.Format)
	}
	switch c.Compress {
	case "", "zstd", "zlib":
	default:
		return fmt.Errorf("invalid compression %q (must be zstd or zlib)", c.Compress)
	}
	if c.PointRadius <= 0 || c.SizeScale <= 0 {
		return fmt.Errorf("point_radius and size_scale must be positive")
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1")
	}
	return nil
}

// OutputDir returns the output directory with a leading ~ expanded.
func (c *Config) OutputDir() (string, error) {
	dir, err := homedir.Expand(c.Output)
	if err != nil {
		return "", err
	}
	return filepath.Clean(dir), nil
}

// SceneOptions returns the scene assembly options.
func (c *Config) SceneOptions() scene.Options {
	return scene.Options{PointRadius: c.PointRadius, SizeScale: c.SizeScale}
}

// Save writes the configuration to the given TOML file.
func (c *Config) Save(filename string) error {
	fn, err := homedir.Expand(filename)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(fn), 0o755); err != nil {
		return err
	}
	return tomlx.Save(c, fn)
}
