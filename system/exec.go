// Copyright 2023 The STMPS Authors
// SPDX-License-Identifier: GPL-3.0-only

// Package system wraps the OS collaborators: external commands, the window
// list, process listing and signaling, and the graphical session check.
//
// Commands run with exec and explicit argument slices. Nothing goes through
// a shell, so file names and window titles never need quoting.
package system

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// CommandError is returned when a command exits non-zero or cannot start.
type CommandError struct {
	Argv   []string
	Output []byte
	Err    error
}

func (e *CommandError) Error() string {
	out := strings.TrimSpace(string(e.Output))
	if out == "" {
		return fmt.Sprintf("%s: %s", strings.Join(e.Argv, " "), e.Err)
	}
	return fmt.Sprintf("%s: %s: %s", strings.Join(e.Argv, " "), e.Err, out)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// ExitCode returns the process exit status, or -1 if it never ran to exit.
func (e *CommandError) ExitCode() int {
	if exitErr, ok := e.Err.(*exec.ExitError); ok {
		return exitErr.ExitCode()
	}
	return -1
}

// Exec runs commands on the local machine.
type Exec struct{}

// Run executes name with args and returns combined stdout/stderr.
func (Exec) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	if err := cmd.Run(); err != nil {
		return out.Bytes(), &CommandError{
			Argv:   append([]string{name}, args...),
			Output: out.Bytes(),
			Err:    err,
		}
	}
	return out.Bytes(), nil
}
