// Copyright 2023 The STMPS Authors
// SPDX-License-Identifier: GPL-3.0-only

package main

import (
	"bytes"
	"sync"
)

// lineWriter turns writes into complete lines on a channel. A trailing
// partial line waits for the next write.
type lineWriter struct {
	lines chan<- string

	mu      sync.Mutex
	pending []byte
}

func (w *lineWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.pending = append(w.pending, p...)
	for {
		i := bytes.IndexByte(w.pending, '\n')
		if i < 0 {
			break
		}
		w.lines <- string(w.pending[:i])
		w.pending = w.pending[i+1:]
	}
	return len(p), nil
}
