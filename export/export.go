// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package export writes assembled scenes to disk: a scene description
// in YAML or JSON, optionally compressed, next to one PLY file for the
// geometry of every mesh and curve shape.
package export

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"cogentcore.org/scenec/base/iox"
	"cogentcore.org/scenec/base/iox/jsonx"
	"cogentcore.org/scenec/base/iox/yamlx"
	"cogentcore.org/scenec/scene"
)

// SceneName is the base name of written scene descriptions.
const SceneName = "scene"

// Options are the options for writing a scene.
type Options struct {

	// Dir is the directory all files are written to.
	Dir string

	// Format is the scene description encoding, "yaml" or "json".
	Format string

	// Compress is the compression of the scene description
	// ([None], [Zstd] or [Zlib]).
	Compress string
}

func encoderFor(format string) (iox.EncoderFunc, error) {
	switch format {
	case "yaml", "":
		return yamlx.NewEncoder, nil
	case "json":
		return jsonx.NewEncoder, nil
	}
	return nil, fmt.Errorf("export: unknown format %q", format)
}

// Write writes the geometry files of the scene, setting the Filename of
// its shapes, and then the scene description. It returns the path of
// the scene description.
func Write(sc *scene.Scene, opts Options) (string, error) {
	enc, err := encoderFor(opts.Format)
	if err != nil {
		return "", err
	}
	if _, ok := compressExts[opts.Compress]; !ok && opts.Compress != None {
		return "", fmt.Errorf("export: unknown compression %q", opts.Compress)
	}
	format := opts.Format
	if format == "" {
		format = "yaml"
	}
	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return "", err
	}
	for i, sh := range sc.Shapes {
		if sh.Mesh == nil {
			continue
		}
		sh.Filename = fmt.Sprintf("shape_%03d.ply", i)
		if err := writeGeometry(filepath.Join(opts.Dir, sh.Filename), sh); err != nil {
			return "", fmt.Errorf("export: view %q: %w", sh.View, err)
		}
	}

	fn := filepath.Join(opts.Dir, SceneName+"."+format)
	f, err := os.Create(fn + compressExts[opts.Compress])
	if err != nil {
		return "", err
	}
	ext, err := writeScene(f, sc, enc, opts.Compress)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return "", err
	}
	slog.Info("wrote scene", "file", fn+ext, "shapes", len(sc.Shapes))
	return fn + ext, nil
}

// writeScene encodes the scene description to w with the given
// compression, returning the extension of the compression.
func writeScene(w io.Writer, sc *scene.Scene, enc iox.EncoderFunc, compress string) (string, error) {
	cw, ext, err := compressWriter(w, compress)
	if err != nil {
		return "", err
	}
	if err := iox.Write(sc, cw, enc); err != nil {
		cw.Close()
		return "", err
	}
	return ext, cw.Close()
}

func writeGeometry(fn string, sh *scene.Shape) error {
	f, err := os.Create(fn)
	if err != nil {
		return err
	}
	err = WritePLY(f, sh.Mesh, sh.Attributes, sh.Edges)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

// Open reads a scene description written by [Write].
// Geometry files are not read.
func Open(filename string) (*scene.Scene, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f, filename)
}

// Read reads a scene description, with the encoding and compression
// given by the extensions of filename.
func Read(r io.Reader, filename string) (*scene.Scene, error) {
	dr, base, err := decompressReader(r, filename)
	if err != nil {
		return nil, err
	}
	defer dr.Close()
	sc := &scene.Scene{}
	switch filepath.Ext(base) {
	case ".json":
		err = jsonx.Read(sc, dr)
	case ".yaml", ".yml":
		err = yamlx.Read(sc, dr)
	default:
		return nil, fmt.Errorf("export: unknown scene format %q", base)
	}
	if err != nil {
		return nil, fmt.Errorf("export: %s: %w", filename, err)
	}
	return sc, nil
}
