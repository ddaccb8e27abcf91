// Copyright 2023 The STMPS Authors
// SPDX-License-Identifier: GPL-3.0-only

package main

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

type MenuWidget struct {
	Root *tview.Flex

	buttonStyle     tcell.Style
	quitActiveStyle tcell.Style

	// external references
	ui *Ui
}

func (ui *Ui) createMenuWidget() (m *MenuWidget) {
	m = &MenuWidget{
		buttonStyle:     tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite),
		quitActiveStyle: tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorRed),

		ui: ui,
	}

	commandButton := tview.NewButton(":: command").
		SetStyle(m.buttonStyle).
		SetActivatedStyle(m.buttonStyle).
		SetSelectedFunc(func() {
			ui.FocusCommand()
		})

	helpButton := tview.NewButton("?: help").
		SetStyle(m.buttonStyle).
		SetActivatedStyle(m.buttonStyle).
		SetSelectedFunc(func() {
			ui.ShowHelp()
		})

	quitButton := tview.NewButton("Q: quit").
		SetStyle(m.buttonStyle).
		SetActivatedStyle(m.quitActiveStyle).
		SetSelectedFunc(func() {
			ui.Quit()
		})

	m.Root = tview.NewFlex().SetDirection(tview.FlexColumn)
	m.Root.AddItem(nil, 0, 1, false) // fill space to right-align the buttons
	m.Root.AddItem(commandButton, 12, 0, false)
	m.Root.AddItem(helpButton, 9, 0, false)
	m.Root.AddItem(quitButton, 9, 0, false)

	// clear background
	m.Root.Box = tview.NewBox()

	return
}
