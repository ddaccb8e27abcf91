// Copyright 2023 The STMPS Authors
// SPDX-License-Identifier: GPL-3.0-only

package main

import (
	"time"

	"github.com/rivo/tview"
)

const maxLogLines = 500

// LogPage shows command output and log lines, newest at the bottom.
type LogPage struct {
	Root *tview.Flex

	logList *tview.List

	// external refs
	ui *Ui
}

func (ui *Ui) createLogPage() *LogPage {
	logPage := LogPage{
		ui: ui,
	}

	logPage.logList = tview.NewList().ShowSecondaryText(false)

	logPage.Root = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(logPage.logList, 0, 1, true)

	return &logPage
}

func (l *LogPage) Print(line string) {
	l.ui.app.QueueUpdateDraw(func() {
		l.add(line)
	})
}

// add must run on the ui goroutine.
func (l *LogPage) add(line string) {
	line = time.Now().Local().Format("(15:04:05) ") + tview.Escape(line)
	l.logList.AddItem(line, "", 0, nil)

	// Make sure the log list doesn't grow infinitely
	for l.logList.GetItemCount() > maxLogLines {
		l.logList.RemoveItem(0)
	}
	l.logList.SetCurrentItem(-1)
}
