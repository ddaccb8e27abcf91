// Copyright 2023 The STMPS Authors
// SPDX-License-Identifier: GPL-3.0-only

package main

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/spezifisch/vlcrepl/logger"
	"github.com/spezifisch/vlcrepl/remote"
	"github.com/spezifisch/vlcrepl/repl"
)

// struct contains all the updatable elements of the Ui
type Ui struct {
	app   *tview.Application
	pages *tview.Pages

	// top bar
	titleStatus   *tview.TextView
	sessionStatus *tview.TextView

	// command prompt
	commandField *tview.InputField

	// bottom bar
	menuWidget *MenuWidget

	// log page
	logPage *LogPage

	// modals
	helpModal  tview.Primitive
	helpWidget *HelpWidget

	eventLoop *eventLoop
	output    <-chan string

	ctx    context.Context
	cancel context.CancelFunc

	loop    *repl.Loop
	session *remote.Session
	logger  *logger.Logger
}

const (
	// page identifiers (use these instead of hardcoding page names for showing/hiding)
	PageLog     = "log"
	PageHelpBox = "helpBox"
)

func InitGui(ctx context.Context,
	loop *repl.Loop,
	session *remote.Session,
	logger *logger.Logger,
	output <-chan string) (ui *Ui) {
	ui = &Ui{
		eventLoop: nil, // initialized by initEventLoops()
		output:    output,

		loop:    loop,
		session: session,
		logger:  logger,
	}
	ui.ctx, ui.cancel = context.WithCancel(ctx)

	ui.initEventLoops()

	ui.app = tview.NewApplication()
	ui.pages = tview.NewPages()

	// status text at the top
	statusLeft := fmt.Sprintf("[::b]%s[::-] v%s", Name, Version)
	ui.titleStatus = tview.NewTextView().SetText(statusLeft).
		SetTextAlign(tview.AlignLeft).
		SetDynamicColors(true).
		SetScrollable(false)

	ui.sessionStatus = tview.NewTextView().SetText(formatSessionStatus(false, remote.OutcomeNone)).
		SetTextAlign(tview.AlignRight).
		SetDynamicColors(true).
		SetScrollable(false)

	ui.menuWidget = ui.createMenuWidget()
	ui.helpWidget = ui.createHelpWidget()

	// help box modal
	ui.helpModal = makeModal(ui.helpWidget.Root, 80, 24)
	ui.helpWidget.Root.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if ui.helpWidget.visible && (event.Key() == tcell.KeyEscape || event.Rune() == '?') {
			ui.CloseHelp()
			return nil
		}
		return event
	})

	// text commands, opened with ':'
	ui.commandField = tview.NewInputField().
		SetLabel(loop.Prompt()).
		SetFieldBackgroundColor(tcell.ColorBlack)
	ui.commandField.SetDoneFunc(ui.handleCommandDone)

	// top bar: status text
	topBarFlex := tview.NewFlex().SetDirection(tview.FlexColumn).
		AddItem(ui.titleStatus, 0, 1, false).
		AddItem(ui.sessionStatus, 30, 0, false)

	// log page
	ui.logPage = ui.createLogPage()

	ui.pages.AddPage(PageLog, ui.logPage.Root, true, true).
		AddPage(PageHelpBox, ui.helpModal, true, false)

	rootFlex := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(topBarFlex, 1, 0, false).
		AddItem(ui.pages, 0, 1, true).
		AddItem(ui.commandField, 1, 0, false).
		AddItem(ui.menuWidget.Root, 1, 0, false)

	// add main input handler
	rootFlex.SetInputCapture(ui.handleInput)

	ui.app.SetRoot(rootFlex, true).
		SetFocus(ui.logPage.Root)

	return ui
}

func (ui *Ui) Run() error {
	// run gui/dispatch event handlers
	ui.runEventLoops()
	defer ui.cancel()

	ui.logger.Print("press ? for help, : for commands, Q to quit")

	// gui main loop (blocking)
	return ui.app.Run()
}

func (ui *Ui) ShowHelp() {
	ui.helpWidget.RenderHelp(ui.loop)

	ui.pages.ShowPage(PageHelpBox)
	ui.pages.SendToFront(PageHelpBox)
	ui.app.SetFocus(ui.helpModal)
	ui.helpWidget.visible = true
}

func (ui *Ui) CloseHelp() {
	ui.helpWidget.visible = false
	ui.pages.HidePage(PageHelpBox)
	ui.app.SetFocus(ui.logPage.Root)
}

func (ui *Ui) FocusCommand() {
	ui.app.SetFocus(ui.commandField)
}

func (ui *Ui) Quit() {
	ui.cancel()
	ui.app.Stop()
}
