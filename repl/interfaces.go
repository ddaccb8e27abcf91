// Copyright 2023 The STMPS Authors
// SPDX-License-Identifier: GPL-3.0-only

package repl

import "context"

// Player is what the bindings and text commands drive, normally
// *vlcplayer.Player.
type Player interface {
	Seek(ctx context.Context, delta float64) error
	JumpTo(ctx context.Context, text string) error
	TogglePause(ctx context.Context) error
	Screenshot(ctx context.Context) error
	ShowInfo(ctx context.Context, format string) error
	Next(ctx context.Context) error
	Previous(ctx context.Context) error
	KillAll(ctx context.Context)
	SetVolume(ctx context.Context, volume float64) error
	AdjustVolume(ctx context.Context, delta float64) error
}
