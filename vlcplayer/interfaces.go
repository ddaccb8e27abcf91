// Copyright 2023 The STMPS Authors
// SPDX-License-Identifier: GPL-3.0-only

package vlcplayer

import (
	"context"
	"syscall"

	"github.com/godbus/dbus/v5"
	"github.com/spezifisch/vlcrepl/remote"
)

// Remote is the self-healing control session, normally *remote.Session.
type Remote interface {
	GetProperty(ctx context.Context, name string) (dbus.Variant, error)
	SetProperty(ctx context.Context, name string, value interface{}) error
	Invoke(ctx context.Context, cmd remote.Command, args ...interface{}) error
}

// Runner runs an external command and returns its combined output. A
// non-zero exit is an error.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

type WindowLister interface {
	List(ctx context.Context) ([]string, error)
}

type ProcessManager interface {
	PIDs(ctx context.Context, name string) ([]int, error)
	Signal(pid int, sig syscall.Signal) error
}

type DisplayChecker interface {
	Active() bool
}

// Tasks runs detached work; see package background.
type Tasks interface {
	Go(name string, fn func() error)
}
