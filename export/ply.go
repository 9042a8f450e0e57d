// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package export

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"cogentcore.org/scenec/mesh"
)

// property is one column of a PLY element.
type property struct {
	name    string
	at      *mesh.Attribute
	channel int
}

// properties returns the PLY properties for the given attribute:
// positions, normals, colors and texture coordinates use the names
// renderers recognize; other attributes use their own name, with the
// channel index appended for multi-channel values.
func properties(at *mesh.Attribute) []property {
	var names []string
	switch {
	case at.Usage == mesh.Normal && at.NumChannels == 3:
		names = []string{"nx", "ny", "nz"}
	case at.Usage == mesh.Color && at.NumChannels == 3:
		names = []string{"r", "g", "b"}
	case at.Usage == mesh.UV && at.NumChannels == 2:
		names = []string{"u", "v"}
	case at.NumChannels == 1:
		names = []string{at.Name}
	default:
		for c := range at.NumChannels {
			names = append(names, at.Name+"_"+strconv.Itoa(c))
		}
	}
	props := make([]property, len(names))
	for c, nm := range names {
		props[c] = property{name: nm, at: at, channel: c}
	}
	return props
}

// WritePLY writes the mesh in ASCII PLY format, with the named attributes
// as additional vertex or face properties. Corner and indexed attributes
// have no PLY representation and are skipped. If edges is non-nil, they
// are written as an edge element in place of the faces.
func WritePLY(w io.Writer, ms *mesh.Mesh, attrs []string, edges [][2]uint32) error {
	var vprops, fprops []property
	for _, name := range attrs {
		at, err := ms.Attribute(name)
		if err != nil {
			return err
		}
		switch at.Element {
		case mesh.Vertex:
			vprops = append(vprops, properties(at)...)
		case mesh.Facet:
			fprops = append(fprops, properties(at)...)
		default:
			slog.Warn("skipping attribute not representable in PLY", "attr", name, "element", at.Element)
		}
	}
	if edges != nil {
		fprops = nil
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "ply\nformat ascii 1.0\ncomment written by scenec\n")
	fmt.Fprintf(bw, "element vertex %d\nproperty float x\nproperty float y\nproperty float z\n", ms.NumVertices())
	for _, p := range vprops {
		fmt.Fprintf(bw, "property float %s\n", p.name)
	}
	if edges != nil {
		fmt.Fprintf(bw, "element edge %d\nproperty int vertex1\nproperty int vertex2\n", len(edges))
	} else {
		fmt.Fprintf(bw, "element face %d\nproperty list uchar int vertex_indices\n", ms.NumFacets())
		for _, p := range fprops {
			fmt.Fprintf(bw, "property float %s\n", p.name)
		}
	}
	fmt.Fprintf(bw, "end_header\n")

	var line []string
	for i := range ms.NumVertices() {
		v := ms.Vertex(i)
		line = line[:0]
		for c := range 3 {
			x := float32(0)
			if c < len(v) {
				x = v[c]
			}
			line = append(line, formatFloat(x))
		}
		for _, p := range vprops {
			line = append(line, formatFloat(p.at.Value(i)[p.channel]))
		}
		fmt.Fprintln(bw, strings.Join(line, " "))
	}
	if edges != nil {
		for _, e := range edges {
			fmt.Fprintf(bw, "%d %d\n", e[0], e[1])
		}
		return bw.Flush()
	}
	for i := range ms.NumFacets() {
		f := ms.Facet(i)
		line = append(line[:0], strconv.Itoa(len(f)))
		for _, vi := range f {
			line = append(line, strconv.FormatUint(uint64(vi), 10))
		}
		for _, p := range fprops {
			line = append(line, formatFloat(p.at.Value(i)[p.channel]))
		}
		fmt.Fprintln(bw, strings.Join(line, " "))
	}
	return bw.Flush()
}

func formatFloat(x float32) string {
	return strconv.FormatFloat(float64(x), 'g', -1, 32)
}
