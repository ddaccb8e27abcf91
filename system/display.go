// Copyright 2023 The STMPS Authors
// SPDX-License-Identifier: GPL-3.0-only

package system

import "os"

// Display reports whether a graphical session is reachable.
type Display struct {
	Getenv func(string) string
}

func NewDisplay() *Display {
	return &Display{Getenv: os.Getenv}
}

func (d *Display) Active() bool {
	return d.Getenv("DISPLAY") != "" || d.Getenv("WAYLAND_DISPLAY") != ""
}
