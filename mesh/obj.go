// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// OpenOBJ reads a Wavefront OBJ file from the given path.
func OpenOBJ(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	ms, err := ReadOBJ(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ms, nil
}

// ReadOBJ reads the vertices and faces of a Wavefront OBJ stream into
// a 3D triangle mesh. Polygons are fan-triangulated; texture and normal
// indices in face records are ignored. A stream without faces yields
// a point cloud.
func ReadOBJ(r io.Reader) (*Mesh, error) {
	var verts []float32
	var faces []uint32
	sc := bufio.NewScanner(r)
	ln := 0
	for sc.Scan() {
		ln++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, fmt.Errorf("obj line %d: vertex needs 3 coordinates", ln)
			}
			for _, s := range fields[1:4] {
				v, err := strconv.ParseFloat(s, 32)
				if err != nil {
					return nil, fmt.Errorf("obj line %d: %w", ln, err)
				}
				verts = append(verts, float32(v))
			}
		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("obj line %d: face needs at least 3 vertices", ln)
			}
			idx := make([]uint32, 0, len(fields)-1)
			for _, s := range fields[1:] {
				i, err := objIndex(s, len(verts)/3)
				if err != nil {
					return nil, fmt.Errorf("obj line %d: %w", ln, err)
				}
				idx = append(idx, i)
			}
			for k := 1; k+1 < len(idx); k++ {
				faces = append(faces, idx[0], idx[k], idx[k+1])
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	facetSize := 3
	if len(faces) == 0 {
		facetSize = 0
	}
	return FromArrays(3, verts, facetSize, faces)
}

// objIndex parses a face vertex reference such as "3", "3/1" or "-1//2"
// into a zero-based vertex index.
func objIndex(s string, nv int) (uint32, error) {
	if k := strings.IndexByte(s, '/'); k >= 0 {
		s = s[:k]
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if i < 0 {
		i += nv
	} else {
		i--
	}
	if i < 0 || i >= nv {
		return 0, fmt.Errorf("vertex index %s out of range", s)
	}
	return uint32(i), nil
}
