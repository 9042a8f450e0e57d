// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"path/filepath"
	"time"

	"cogentcore.org/scenec/base/errors"
	"cogentcore.org/scenec/config"
	"github.com/fsnotify/fsnotify"
)

// watchDelay is how long to wait for a burst of file events to settle
// before recompiling.
const watchDelay = 100 * time.Millisecond

// watchSpec returns a watcher for the given specification file. The
// directory is watched, since editors often save by replacing the file.
func watchSpec(spec string) (*fsnotify.Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(spec)); err != nil {
		w.Close()
		return nil, err
	}
	return w, nil
}

// runWatch recompiles the specification every time it changes, passing
// the result to done, until ctx is canceled. It closes the watcher.
func runWatch(ctx context.Context, w *fsnotify.Watcher, spec string, c *config.Config, done func(string, error)) error {
	defer w.Close()
	spec = filepath.Clean(spec)
	var settle <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) == spec && ev.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				settle = time.After(watchDelay)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			errors.Log(err)
		case <-settle:
			settle = nil
			done(compile(spec, c))
		}
	}
}
