// Copyright 2023 The STMPS Authors
// SPDX-License-Identifier: GPL-3.0-only

// Package background runs detached tasks.
//
// A task is submitted and never observed again: there is no handle, no
// cancellation and no ordering guarantee between tasks. The only way a task
// reports failure is the logger. Callers that need a completion signal must
// not use this package.
package background

import (
	"fmt"
	"sync"

	"github.com/sourcegraph/conc/panics"
	"github.com/spezifisch/vlcrepl/logger"
)

type Runner struct {
	logger logger.LoggerInterface

	// tracks in-flight tasks so tests can wait for them; never exposed as a handle
	inFlight sync.WaitGroup
}

func NewRunner(logger logger.LoggerInterface) *Runner {
	return &Runner{logger: logger}
}

// Go runs fn on its own goroutine. A returned error or a panic is logged
// under name and otherwise dropped.
func (r *Runner) Go(name string, fn func() error) {
	r.inFlight.Add(1)
	go func() {
		defer r.inFlight.Done()

		var err error
		if recovered := panics.Try(func() { err = fn() }); recovered != nil {
			r.logger.PrintError(name, fmt.Errorf("panic: %v", recovered.Value))
			r.logger.Debugf("%s", recovered.Stack)
			return
		}
		if err != nil {
			r.logger.PrintError(name, err)
			return
		}
		r.logger.Debugf("background task %s finished", name)
	}()
}
