package main

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/spezifisch/vlcrepl/logger"
	"github.com/spezifisch/vlcrepl/remote"
	"github.com/spezifisch/vlcrepl/repl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUi(t *testing.T) *Ui {
	t.Helper()
	noop := func(context.Context) error { return nil }
	table, err := repl.NewTable(
		repl.Binding{Token: "l", Description: "fast forward 5 seconds", Action: noop},
		repl.Binding{Token: repl.ArrowLeft, Description: "rewind 1 second", Action: noop},
	)
	require.NoError(t, err)

	l := logger.Init()
	loop := repl.NewLoop(table, nil, &bytes.Buffer{}, l, "")
	return InitGui(context.Background(), loop, nil, l, make(chan string))
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func queued(ui *Ui) []string {
	var out []string
	for {
		select {
		case token := <-ui.eventLoop.inputs:
			out = append(out, token)
		default:
			return out
		}
	}
}

func TestKeyToken(t *testing.T) {
	tests := []struct {
		event *tcell.EventKey
		token string
		ok    bool
	}{
		{runeKey('l'), "l", true},
		{runeKey(' '), " ", true},
		{runeKey('+'), "+", true},
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), repl.ArrowLeft, true},
		{tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), repl.ArrowRight, true},
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), "", false},
		{tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), "", false},
	}
	for _, tt := range tests {
		t.Run(tt.event.Name(), func(t *testing.T) {
			token, ok := keyToken(tt.event)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.token, token)
		})
	}
}

func TestHandleInputSubmitsTokens(t *testing.T) {
	ui := newTestUi(t)

	assert.Nil(t, ui.handleInput(runeKey('l')))
	assert.Nil(t, ui.handleInput(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone)))
	assert.Nil(t, ui.handleInput(runeKey('x')))

	// keys without a token are left to the focused widget
	up := tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone)
	assert.Equal(t, up, ui.handleInput(up))

	assert.Equal(t, []string{"l", repl.ArrowLeft, "x"}, queued(ui))
}

func TestHandleInputHelp(t *testing.T) {
	ui := newTestUi(t)

	assert.Nil(t, ui.handleInput(runeKey('?')))
	assert.True(t, ui.helpWidget.visible)

	// while help is up the keys belong to it
	key := runeKey('l')
	assert.Equal(t, key, ui.handleInput(key))
	assert.Empty(t, queued(ui))

	ui.CloseHelp()
	assert.False(t, ui.helpWidget.visible)
}

func TestCommandPrompt(t *testing.T) {
	ui := newTestUi(t)

	assert.Nil(t, ui.handleInput(runeKey(':')))
	assert.Equal(t, ui.commandField, ui.app.GetFocus())

	// typing goes to the prompt, not the bindings
	key := runeKey('l')
	assert.Equal(t, key, ui.handleInput(key))

	ui.commandField.SetText("seek 10")
	ui.handleCommandDone(tcell.KeyEnter)
	assert.Equal(t, "", ui.commandField.GetText())
	assert.NotEqual(t, ui.commandField, ui.app.GetFocus())

	ui.FocusCommand()
	ui.commandField.SetText("go 1:00")
	ui.handleCommandDone(tcell.KeyEscape)

	assert.Equal(t, []string{"seek 10"}, queued(ui))
}

func TestQuit(t *testing.T) {
	for _, key := range []*tcell.EventKey{
		runeKey('Q'),
		runeKey('q'),
		tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl),
	} {
		t.Run(key.Name(), func(t *testing.T) {
			ui := newTestUi(t)
			assert.Nil(t, ui.handleInput(key))
			assert.Error(t, ui.ctx.Err())
			assert.Empty(t, queued(ui))
		})
	}

	ui := newTestUi(t)
	ui.FocusCommand()
	ui.commandField.SetText("exit")
	ui.handleCommandDone(tcell.KeyEnter)
	assert.Error(t, ui.ctx.Err())
}

func TestSubmitDropsWhenBusy(t *testing.T) {
	ui := newTestUi(t)
	for i := 0; i < cap(ui.eventLoop.inputs)+5; i++ {
		ui.submit(fmt.Sprint(i))
	}
	assert.Len(t, queued(ui), cap(ui.eventLoop.inputs))
}

func TestFormatSessionStatus(t *testing.T) {
	assert.Contains(t, formatSessionStatus(false, remote.OutcomeNone), "not connected")
	assert.Contains(t, formatSessionStatus(true, remote.OutcomeOK), "connected")
	assert.Contains(t, formatSessionStatus(true, remote.OutcomeRecovered), "reconnected")
	assert.Contains(t, formatSessionStatus(false, remote.OutcomeFatal), "unavailable")
}

func TestHelpText(t *testing.T) {
	ui := newTestUi(t)
	keys := keyHelp(ui.loop.Table())
	assert.Contains(t, keys, "l     fast forward 5 seconds")
	assert.Contains(t, keys, "left  rewind 1 second")
	assert.Contains(t, commandHelp(), "go TIMESTAMP")
}

func TestLineWriter(t *testing.T) {
	lines := make(chan string, 10)
	w := &lineWriter{lines: lines}

	fmt.Fprint(w, "first\nsec")
	fmt.Fprint(w, "ond\n")
	fmt.Fprintln(w, "third")
	fmt.Fprint(w, "partial")
	close(lines)

	var got []string
	for l := range lines {
		got = append(got, l)
	}
	assert.Equal(t, []string{"first", "second", "third"}, got)
}
