// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compiler

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"cogentcore.org/scenec/grammar"
	"cogentcore.org/scenec/mesh"
)

// Prefixes of renamed attributes, by element type.
const (
	VertexPrefix = "vertex_"
	FacePrefix   = "face_"
)

// renameAttribute gives a generic (scalar or vector) attribute a name of
// the form <element>_<name>_<k> that no other attribute has, as the
// output format identifies attributes by name across elements.
// Positions, normals, colors and texture coordinates are identified by
// their role and keep their names.
func renameAttribute(vw *View, at *grammar.Attribute) error {
	ms := vw.Data
	name := ms.CurrentName(at.Key())
	src, err := ms.Attribute(name)
	if err != nil {
		return fmt.Errorf("attribute %q: %w", at.Name, err)
	}
	at.ResolvedName = name
	if !src.Usage.IsGeneric() {
		return nil
	}
	if strings.HasPrefix(name, VertexPrefix) || strings.HasPrefix(name, FacePrefix) {
		return nil
	}
	prefix := VertexPrefix
	if src.Element == mesh.Facet {
		prefix = FacePrefix
	}
	nw := uniqueSuffixed(ms, prefix+name)
	slog.Info("renaming attribute", "view", vw.Name, "from", name, "to", nw)
	if err := ms.RenameAttribute(name, nw); err != nil {
		return err
	}
	at.ResolvedName = nw
	return nil
}

// uniqueSuffixed returns the first of base_0, base_1, ... that is not
// the name of an attribute of ms.
func uniqueSuffixed(ms *mesh.Mesh, base string) string {
	for k := 0; ; k++ {
		nm := base + "_" + strconv.Itoa(k)
		if !ms.HasAttribute(nm) {
			return nm
		}
	}
}
