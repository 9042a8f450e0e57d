// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// suggestThreshold is the minimum similarity for a name to be suggested.
const suggestThreshold = 0.5

// Suggest returns the existing attribute name most similar to the given
// name, or "" if none is similar enough. It is used to improve
// attribute-not-found errors.
func (ms *Mesh) Suggest(name string) string {
	lev := metrics.NewLevenshtein()
	best := ""
	bestSim := 0.0
	for _, nm := range ms.names {
		sim := strutil.Similarity(name, nm, lev)
		if sim >= suggestThreshold && sim > bestSim {
			best, bestSim = nm, sim
		}
	}
	return best
}
