// Copyright 2023 The STMPS Authors
// SPDX-License-Identifier: GPL-3.0-only

package logger

import (
	"fmt"
	"io"
	"sync"
	"sync/atomic"
)

// Logger is a leveled sink. In channel mode every line is queued on Prints
// for the UI to drain; in writer mode lines go straight to the writer.
type Logger struct {
	Prints chan string

	out     io.Writer
	outLock sync.Mutex
	debug   atomic.Bool
	dropped atomic.Uint64
}

var _ LoggerInterface = (*Logger)(nil)

// Init returns a logger in channel mode.
func Init() *Logger {
	return &Logger{Prints: make(chan string, 100)}
}

// InitWriter returns a logger that writes every line to w.
func InitWriter(w io.Writer) *Logger {
	return &Logger{out: w}
}

func (l *Logger) SetDebug(enabled bool) {
	l.debug.Store(enabled)
}

func (l *Logger) DebugEnabled() bool {
	return l.debug.Load()
}

// Dropped reports how many lines were discarded because nobody drained Prints.
func (l *Logger) Dropped() uint64 {
	return l.dropped.Load()
}

func (l *Logger) Print(s string) {
	l.emit(s)
}

func (l *Logger) Printf(s string, as ...interface{}) {
	l.emit(fmt.Sprintf(s, as...))
}

func (l *Logger) PrintError(source string, err error) {
	l.Printf("Error(%s) -> %s", source, err.Error())
}

func (l *Logger) Debugf(s string, as ...interface{}) {
	if !l.debug.Load() {
		return
	}
	l.emit("[debug] " + fmt.Sprintf(s, as...))
}

func (l *Logger) Warnf(s string, as ...interface{}) {
	l.emit("[warning] " + fmt.Sprintf(s, as...))
}

func (l *Logger) Errorf(s string, as ...interface{}) {
	l.emit("[error] " + fmt.Sprintf(s, as...))
}

func (l *Logger) emit(line string) {
	if l.out != nil {
		l.outLock.Lock()
		defer l.outLock.Unlock()
		fmt.Fprintln(l.out, line)
		return
	}
	if l.Prints == nil {
		return
	}
	// a stalled consumer must never block the caller
	select {
	case l.Prints <- line:
	default:
		l.dropped.Add(1)
	}
}
