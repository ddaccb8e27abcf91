// Copyright 2023 The STMPS Authors
// SPDX-License-Identifier: GPL-3.0-only

package main

import (
	"fmt"
	"strings"

	"github.com/rivo/tview"
	"github.com/spezifisch/vlcrepl/repl"
)

type HelpWidget struct {
	Root *tview.Flex

	helpBook                *tview.Flex
	leftColumn, rightColumn *tview.TextView

	// visible reflects whether the modal is shown
	visible bool

	// external references
	ui *Ui
}

func (ui *Ui) createHelpWidget() (m *HelpWidget) {
	m = &HelpWidget{
		ui: ui,
	}

	// two help columns side by side
	m.leftColumn = tview.NewTextView().
		SetTextAlign(tview.AlignLeft).
		SetDynamicColors(true)
	m.rightColumn = tview.NewTextView().
		SetTextAlign(tview.AlignLeft).
		SetDynamicColors(true).
		SetWordWrap(true)
	m.helpBook = tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(m.leftColumn, 38, 0, false).
		AddItem(m.rightColumn, 0, 1, true) // gets focus for scrolling

	m.Root = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(m.helpBook, 0, 1, true)

	m.Root.Box.SetBorder(true).SetTitle(" Help ")

	return
}

func (h *HelpWidget) RenderHelp(loop *repl.Loop) {
	h.leftColumn.SetText("[::b]Keys[::-]\n" + tview.Escape(keyHelp(loop.Table())))
	h.rightColumn.SetText("[::b]Commands[::-]\n" + tview.Escape(commandHelp()) +
		"\n\n[::b]Screen[::-]\n" + tview.Escape(strings.TrimSpace(helpScreen)))
}

func keyHelp(table *repl.Table) string {
	var b strings.Builder
	for _, binding := range table.Bindings() {
		fmt.Fprintf(&b, "%-6s%s\n", repl.KeyName(binding.Token), binding.Description)
	}
	return strings.TrimRight(b.String(), "\n")
}

func commandHelp() string {
	var b strings.Builder
	for _, c := range repl.TextCommands {
		fmt.Fprintf(&b, "%s\n  %s\n", c.Usage, c.Description)
	}
	return strings.TrimRight(b.String(), "\n")
}
