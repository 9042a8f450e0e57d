// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package export

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
)

// Compression kinds.
const (
	None = ""
	Zstd = "zstd"
	Zlib = "zlib"
)

var compressExts = map[string]string{Zstd: ".zst", Zlib: ".zz"}

// compressWriter returns a writer compressing to w with the given kind of
// compression, and the file extension to add for it.
func compressWriter(w io.Writer, kind string) (io.WriteCloser, string, error) {
	switch kind {
	case None:
		return nopCloser{w}, "", nil
	case Zstd:
		zw, err := zstd.NewWriter(w)
		if err != nil {
			return nil, "", err
		}
		return zw, compressExts[kind], nil
	case Zlib:
		return zlib.NewWriter(w), compressExts[kind], nil
	}
	return nil, "", fmt.Errorf("export: unknown compression %q", kind)
}

// decompressReader returns a reader decompressing r according to the
// extension of filename, and the filename without that extension.
func decompressReader(r io.Reader, filename string) (io.ReadCloser, string, error) {
	ext := filepath.Ext(filename)
	base := filename[:len(filename)-len(ext)]
	switch ext {
	case compressExts[Zstd]:
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, "", err
		}
		return zr.IOReadCloser(), base, nil
	case compressExts[Zlib]:
		zr, err := zlib.NewReader(r)
		if err != nil {
			return nil, "", err
		}
		return zr, base, nil
	}
	return io.NopCloser(r), filename, nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
