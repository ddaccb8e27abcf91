// Copyright 2023 The STMPS Authors
// SPDX-License-Identifier: GPL-3.0-only

package main

type eventLoop struct {
	// keystrokes and commands waiting for the dispatch loop
	inputs chan string
}

func (ui *Ui) initEventLoops() {
	ui.eventLoop = &eventLoop{
		inputs: make(chan string, 32),
	}
}

func (ui *Ui) runEventLoops() {
	go ui.guiEventLoop()
	go ui.dispatchEventLoop()

	// stop the ui when we are told to terminate from outside
	go func() {
		<-ui.ctx.Done()
		ui.app.Stop()
	}()
}

// handle ui updates
func (ui *Ui) guiEventLoop() {
	for {
		select {
		case <-ui.ctx.Done():
			return

		case msg := <-ui.logger.Prints:
			// handle log page output
			ui.logPage.Print(msg)

		case line := <-ui.output:
			ui.logPage.Print(line)
		}
	}
}

// dispatchEventLoop is the only goroutine that touches the session, so
// inputs run strictly one after another.
func (ui *Ui) dispatchEventLoop() {
	for {
		select {
		case <-ui.ctx.Done():
			return

		case input := <-ui.eventLoop.inputs:
			if err := ui.loop.Dispatch(ui.ctx, input); err != nil {
				ui.logger.PrintError("dispatch", err)
			}

			status := formatSessionStatus(ui.session.Connected(), ui.session.LastOutcome())
			ui.app.QueueUpdateDraw(func() {
				ui.sessionStatus.SetText(status)
			})
		}
	}
}
