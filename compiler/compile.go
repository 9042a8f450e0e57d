// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compiler

import (
	"log/slog"
	"sync"
	"time"

	"cogentcore.org/scenec/base/errors"
	"cogentcore.org/scenec/mesh"
	"github.com/Carmen-Shannon/automation/tools/worker"
)

// pools are the long-lived worker pools that [CompileAll] runs on,
// keyed by number of workers. Pool workers never exit, so pools are
// made once and shared by all calls.
var (
	pools   = map[int]worker.DynamicWorkerPool{}
	poolsMu sync.Mutex
)

// compilePool returns the shared pool with the given number of workers.
func compilePool(workers int) worker.DynamicWorkerPool {
	poolsMu.Lock()
	defer poolsMu.Unlock()
	pool, ok := pools[workers]
	if !ok {
		slog.Debug("starting compile pool", "workers", workers)
		pool = worker.NewDynamicWorkerPool(workers, 256, 1*time.Second)
		pools[workers] = pool
	}
	return pool
}

// CompileAll compiles all of the given views. Views that share a data
// source are compiled one after the other in their given order, since
// compiling mutates the data source; views over distinct data sources
// are compiled concurrently on up to workers goroutines. A failing view
// does not stop the others; all errors are returned joined, in view order.
func CompileAll(views []*View, workers int) error {
	groups := groupByData(views)
	errs := make([]error, len(views))
	compileGroup := func(idxs []int) {
		for _, i := range idxs {
			errs[i] = Compile(views[i])
		}
	}
	if workers <= 1 || len(groups) <= 1 {
		for _, idxs := range groups {
			compileGroup(idxs)
		}
		return errors.Join(errs...)
	}

	slog.Debug("compiling views", "views", len(views), "groups", len(groups), "workers", workers)
	pool := compilePool(workers)
	var wg sync.WaitGroup
	for id, idxs := range groups {
		wg.Add(1)
		pool.SubmitTask(worker.Task{
			ID: id,
			Do: func() (any, error) {
				defer wg.Done()
				compileGroup(idxs)
				return nil, nil
			},
		})
	}
	wg.Wait()
	return errors.Join(errs...)
}

// groupByData returns the indexes of the views grouped by data source,
// in order of first appearance. Views without data form their own group.
func groupByData(views []*View) [][]int {
	var groups [][]int
	index := map[*mesh.Mesh]int{}
	for i, vw := range views {
		if vw.Data == nil {
			groups = append(groups, []int{i})
			continue
		}
		g, ok := index[vw.Data]
		if !ok {
			g = len(groups)
			index[vw.Data] = g
			groups = append(groups, nil)
		}
		groups[g] = append(groups[g], i)
	}
	return groups
}
