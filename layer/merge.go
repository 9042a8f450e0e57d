// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layer

import (
	"cmp"
	"fmt"
	"log/slog"
	"strconv"

	"cogentcore.org/scenec/base/errors"
	"cogentcore.org/scenec/compiler"
	"cogentcore.org/scenec/grammar"
)

// Merge walks the layer tree depth first and returns one view for
// every leaf, with the settings of the leaf merged over those of its
// ancestors. Every view gets its own copy of the channels, so that
// compiling a view does not affect the others. It is an error for a
// leaf to end up without a data source or mark; all such errors are
// returned, joined.
func Merge(root *Layer) ([]*compiler.View, error) {
	if root == nil {
		return nil, nil
	}
	var views []*compiler.View
	var errs []error
	var walk func(l *Layer, path string, inherited Settings)
	walk = func(l *Layer, path string, inherited Settings) {
		eff := l.Settings.Override(inherited)
		if len(l.Children) > 0 {
			for i, c := range l.Children {
				if c == nil {
					continue
				}
				walk(c, path+"/"+c.pathName(i), eff)
			}
			return
		}
		if eff.Data == nil {
			errs = append(errs, fmt.Errorf("layer %q: %w", path, grammar.ErrMissingDataSource))
			return
		}
		if eff.Mark == nil {
			errs = append(errs, fmt.Errorf("layer %q: %w", path, grammar.ErrMissingMark))
			return
		}
		views = append(views, compiler.NewView(path, eff.Data, *eff.Mark, grammar.CloneChannels(eff.Channels)...))
	}
	walk(root, cmp.Or(root.Name, "root"), Settings{})
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	slog.Debug("merged layers", "views", len(views))
	return views, nil
}

func (l *Layer) pathName(idx int) string {
	if l.Name != "" {
		return l.Name
	}
	return strconv.Itoa(idx)
}
