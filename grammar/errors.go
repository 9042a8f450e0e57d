// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grammar

import (
	"cogentcore.org/scenec/base/errors"
	"cogentcore.org/scenec/mesh"
)

// Errors reported while merging layer trees and compiling views.
// They are wrapped with the name of the originating layer, channel
// or attribute, so use [errors.Is] to test for them.
var (
	// ErrMissingMark is returned for a leaf layer without a resolved mark.
	ErrMissingMark = errors.New("missing mark")

	// ErrMissingDataSource is returned for a leaf layer without resolved data.
	ErrMissingDataSource = errors.New("missing data source")

	// ErrUnsupportedChannel is returned for a channel of an unknown type.
	ErrUnsupportedChannel = errors.New("unsupported channel")

	// ErrUnsupportedMaterial is returned for a material of an unknown type.
	ErrUnsupportedMaterial = errors.New("unsupported material")

	// ErrDegenerateGeometry reports data without vertices; it is
	// handled by skipping position scaling and is only logged.
	ErrDegenerateGeometry = errors.New("degenerate geometry")

	// ErrAttributeNotFound is returned when an attribute reference
	// does not resolve in its data source.
	ErrAttributeNotFound = mesh.ErrAttributeNotFound
)
