// Copyright 2023 The STMPS Authors
// SPDX-License-Identifier: GPL-3.0-only

package vlcplayer

import (
	"context"
	"syscall"

	"go.uber.org/multierr"
	"golang.org/x/sys/unix"
)

// KillAll terminates every player process, then force kills whatever is
// still around after the grace period. Failures are logged, never returned.
func (p *Player) KillAll(ctx context.Context) {
	pids, err := p.processes.PIDs(ctx, p.opts.Binary)
	if err != nil {
		p.logger.PrintError("kill", err)
		return
	}
	if len(pids) == 0 {
		p.logger.Debugf("kill: no %s processes", p.opts.Binary)
		return
	}
	p.logger.Debugf("kill: terminating %v", pids)
	p.logFailures(p.signalAll(pids, unix.SIGTERM))

	p.sleep(p.opts.KillGrace)

	survivors, err := p.processes.PIDs(ctx, p.opts.Binary)
	if err != nil {
		p.logger.PrintError("kill", err)
		return
	}
	if len(survivors) == 0 {
		return
	}
	p.logger.Debugf("kill: force killing %v", survivors)
	p.logFailures(p.signalAll(survivors, unix.SIGKILL))
}

func (p *Player) signalAll(pids []int, sig syscall.Signal) error {
	var errs error
	for _, pid := range pids {
		errs = multierr.Append(errs, p.processes.Signal(pid, sig))
	}
	return errs
}

func (p *Player) logFailures(err error) {
	failures := multierr.Errors(err)
	for _, failure := range failures {
		p.logger.PrintError("kill", failure)
	}
	if len(failures) > 0 {
		p.logger.Debugf("kill: %d signal(s) failed", len(failures))
	}
}
