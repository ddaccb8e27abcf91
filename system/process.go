// Copyright 2023 The STMPS Authors
// SPDX-License-Identifier: GPL-3.0-only

package system

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"syscall"

	"golang.org/x/sys/unix"
)

// Processes finds processes by exact binary name and signals them by PID.
type Processes struct {
	Runner Runner
	// Lister is the argv prefix; the binary name is appended.
	Lister []string

	kill func(pid int, sig unix.Signal) error
	self int
}

func NewProcesses(runner Runner, lister []string) *Processes {
	if len(lister) == 0 {
		lister = []string{"pgrep", "-x"}
	}
	return &Processes{
		Runner: runner,
		Lister: lister,
		kill:   unix.Kill,
		self:   os.Getpid(),
	}
}

// PIDs lists processes named name. No match is an empty list, not an error.
// The calling process is never included.
func (p *Processes) PIDs(ctx context.Context, name string) ([]int, error) {
	argv := append(append([]string{}, p.Lister...), name)
	out, err := p.Runner.Run(ctx, argv[0], argv[1:]...)
	if err != nil {
		var cmdErr *CommandError
		// pgrep exits 1 when nothing matched
		if errors.As(err, &cmdErr) && cmdErr.ExitCode() == 1 {
			return nil, nil
		}
		return nil, err
	}

	var pids []int
	for _, line := range splitLines(out) {
		pid, err := strconv.Atoi(line)
		if err != nil {
			return nil, fmt.Errorf("unexpected process list line %q", line)
		}
		if pid == p.self {
			continue
		}
		pids = append(pids, pid)
	}
	return pids, nil
}

func (p *Processes) Signal(pid int, sig syscall.Signal) error {
	if err := p.kill(pid, sig); err != nil {
		return fmt.Errorf("signal %s to pid %d: %w", unix.SignalName(sig), pid, err)
	}
	return nil
}
