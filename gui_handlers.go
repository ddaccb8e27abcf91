// Copyright 2023 The STMPS Authors
// SPDX-License-Identifier: GPL-3.0-only

package main

import (
	"github.com/gdamore/tcell/v2"
	"github.com/spezifisch/vlcrepl/repl"
)

func (ui *Ui) handleInput(event *tcell.EventKey) *tcell.EventKey {
	// the prompt and the help modal handle their own keys
	if ui.helpWidget.visible || ui.app.GetFocus() == ui.commandField {
		return event
	}

	switch event.Key() {
	case tcell.KeyCtrlC:
		ui.Quit()
		return nil
	}

	switch event.Rune() {
	case '?':
		ui.ShowHelp()
		return nil

	case ':':
		ui.FocusCommand()
		return nil

	case 'Q':
		ui.Quit()
		return nil
	}

	token, ok := keyToken(event)
	if !ok {
		return event
	}
	if repl.IsQuit(token) {
		ui.Quit()
		return nil
	}
	ui.submit(token)
	return nil
}

func (ui *Ui) handleCommandDone(key tcell.Key) {
	text := ui.commandField.GetText()
	ui.commandField.SetText("")
	ui.app.SetFocus(ui.logPage.Root)

	if key != tcell.KeyEnter || text == "" {
		return
	}
	if repl.IsQuit(text) {
		ui.Quit()
		return
	}
	ui.submit(text)
}

// submit hands input to the dispatch loop without waiting for it.
func (ui *Ui) submit(token string) {
	select {
	case ui.eventLoop.inputs <- token:
	default:
		ui.logger.Warnf("busy, dropped input %s", repl.KeyName(token))
	}
}

// keyToken maps a key press to the token the binding table uses.
func keyToken(event *tcell.EventKey) (string, bool) {
	switch event.Key() {
	case tcell.KeyLeft:
		return repl.ArrowLeft, true
	case tcell.KeyRight:
		return repl.ArrowRight, true
	case tcell.KeyRune:
		return string(event.Rune()), true
	}
	return "", false
}
