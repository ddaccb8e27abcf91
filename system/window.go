// Copyright 2023 The STMPS Authors
// SPDX-License-Identifier: GPL-3.0-only

package system

import (
	"context"
	"errors"
	"strings"
)

type Runner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// Windows lists open top-level windows, one line per window.
type Windows struct {
	Runner Runner
	// Command is the lister argv; wmctrl -l prints "ID DESKTOP HOST TITLE".
	Command []string
}

func NewWindows(runner Runner, command []string) *Windows {
	if len(command) == 0 {
		command = []string{"wmctrl", "-l"}
	}
	return &Windows{Runner: runner, Command: command}
}

func (w *Windows) List(ctx context.Context) ([]string, error) {
	if len(w.Command) == 0 {
		return nil, errors.New("no window list command configured")
	}
	out, err := w.Runner.Run(ctx, w.Command[0], w.Command[1:]...)
	if err != nil {
		return nil, err
	}
	return splitLines(out), nil
}

func splitLines(out []byte) []string {
	var lines []string
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimRight(line, "\r")
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
