// Copyright 2023 The STMPS Authors
// SPDX-License-Identifier: GPL-3.0-only

package main

import (
	"github.com/rivo/tview"
	"github.com/spezifisch/vlcrepl/remote"
)

func makeModal(p tview.Primitive, width, height int) tview.Primitive {
	return tview.NewGrid().
		SetColumns(0, width, 0).
		SetRows(0, height, 0).
		AddItem(p, 1, 1, 1, 1, 0, 0, true)
}

func formatSessionStatus(connected bool, last remote.Outcome) string {
	switch {
	case last == remote.OutcomeFatal:
		return "[red::b]vlc unavailable[::-]"
	case last == remote.OutcomeRecovered:
		return "[yellow::b]vlc reconnected[::-]"
	case connected:
		return "[green::b]vlc connected[::-]"
	default:
		return "[gray]not connected[-]"
	}
}
