// Copyright 2023 The STMPS Authors
// SPDX-License-Identifier: GPL-3.0-only

package repl

import "context"

const VolumeStep = 0.05

func seekBy(p Player, delta float64) Action {
	return func(ctx context.Context) error { return p.Seek(ctx, delta) }
}

// DefaultBindings is the stock keyboard layout.
func DefaultBindings(p Player) []Binding {
	return []Binding{
		{"H", "rewind 30 seconds", seekBy(p, -30)},
		{"h", "rewind 5 seconds", seekBy(p, -5)},
		{ArrowLeft, "(left arrow) rewind 1 second", seekBy(p, -1)},
		{"L", "fast forward 30 seconds", seekBy(p, 30)},
		{"l", "fast forward 5 seconds", seekBy(p, 5)},
		{ArrowRight, "(right arrow) fast forward 1 second", seekBy(p, 1)},
		{" ", "pause/unpause", p.TogglePause},
		{"s", "take a screenshot", p.Screenshot},
		{"i", "show info about currently playing file", func(ctx context.Context) error {
			return p.ShowInfo(ctx, "")
		}},
		{"n", "next file in playlist", p.Next},
		{"p", "previous file in playlist", p.Previous},
		{"K", "kill all VLC processes", func(ctx context.Context) error {
			p.KillAll(ctx)
			return nil
		}},
		{"+", "volume up", func(ctx context.Context) error {
			return p.AdjustVolume(ctx, VolumeStep)
		}},
		{"-", "volume down", func(ctx context.Context) error {
			return p.AdjustVolume(ctx, -VolumeStep)
		}},
	}
}

// DefaultTable builds the table for DefaultBindings.
func DefaultTable(p Player) (*Table, error) {
	return NewTable(DefaultBindings(p)...)
}
