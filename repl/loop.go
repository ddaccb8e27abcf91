// Copyright 2023 The STMPS Authors
// SPDX-License-Identifier: GPL-3.0-only

package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/spezifisch/vlcrepl/logger"
)

const DefaultPrompt = "vlc-repl> "

type CommandDoc struct {
	Usage       string
	Description string
}

// TextCommands documents the commands tried after the binding table.
var TextCommands = []CommandDoc{
	{"seek N", "seek forward or backward N seconds"},
	{"go TIMESTAMP", "jump to a particular timestamp"},
	{"info [FORMAT]", "show info, FORMAT is a Go template over .Filename .Dirname .Position .Clock .WindowTitle"},
	{"volume V", "set volume, 0 to 1"},
	{"help", "show this help"},
	{"q, quit, exit", "leave"},
}

// IsQuit reports whether the host should end the loop.
func IsQuit(input string) bool {
	switch strings.TrimSpace(input) {
	case "q", "quit", "exit":
		return true
	}
	return false
}

// Loop dispatches one input at a time. It never ends on its own; the host
// owns quitting.
type Loop struct {
	table  *Table
	player Player
	out    io.Writer
	logger logger.LoggerInterface
	prompt string
}

func NewLoop(table *Table, player Player, out io.Writer, logger logger.LoggerInterface, prompt string) *Loop {
	if prompt == "" {
		prompt = DefaultPrompt
	}
	return &Loop{table: table, player: player, out: out, logger: logger, prompt: prompt}
}

func (l *Loop) Prompt() string {
	return l.prompt
}

func (l *Loop) Table() *Table {
	return l.table
}

// Dispatch runs the action for input. Only player failures are returned;
// bad arguments are ignored and unknown input is reported on the output.
func (l *Loop) Dispatch(ctx context.Context, input string) error {
	if b, ok := l.table.Lookup(input); ok {
		l.logger.Debugf("key %s: %s", KeyName(input), b.Description)
		return b.Action(ctx)
	}

	command, arg, _ := strings.Cut(strings.TrimSpace(input), " ")
	arg = strings.TrimSpace(arg)
	switch command {
	case "":
		return nil
	case "seek":
		delta, ok := parseNumber(arg)
		if !ok || math.Abs(delta) > maxSeekSeconds {
			l.logger.Debugf("seek: %q is not a usable number", arg)
			return nil
		}
		return l.player.Seek(ctx, delta)
	case "go":
		return l.player.JumpTo(ctx, arg)
	case "info":
		return l.player.ShowInfo(ctx, arg)
	case "volume":
		volume, ok := parseNumber(arg)
		if !ok {
			l.logger.Debugf("volume: %q is not a usable number", arg)
			return nil
		}
		return l.player.SetVolume(ctx, volume)
	case "help", "?":
		l.WriteHelp(l.out)
		return nil
	}

	fmt.Fprintf(l.out, "unknown command %q, try help\n", input)
	return nil
}

// seek offsets travel as int64 microseconds
const maxSeekSeconds = math.MaxInt64 / 1e6

// parseNumber is strconv.ParseFloat without NaN and the infinities.
func parseNumber(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// WriteHelp lists the bindings in table order, then the text commands.
func (l *Loop) WriteHelp(w io.Writer) {
	for _, b := range l.table.Bindings() {
		fmt.Fprintf(w, "  %-14s %s\n", KeyName(b.Token), b.Description)
	}
	for _, c := range TextCommands {
		fmt.Fprintf(w, "  %-14s %s\n", c.Usage, c.Description)
	}
}

// Run is the line based host: one line is one token. Player failures are
// printed and the loop goes on. It returns on a quit command, at the end of
// input or as soon as ctx is done, even while waiting for a line.
func (l *Loop) Run(ctx context.Context, in io.Reader) error {
	lines := make(chan string)
	readErr := make(chan error, 1)
	done := make(chan struct{})
	defer close(done)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
		readErr <- scanner.Err()
	}()

	for {
		fmt.Fprint(l.out, l.prompt)
		if err := ctx.Err(); err != nil {
			fmt.Fprintln(l.out)
			return err
		}

		var line string
		var ok bool
		select {
		case <-ctx.Done():
			fmt.Fprintln(l.out)
			return ctx.Err()
		case line, ok = <-lines:
		}
		if !ok {
			fmt.Fprintln(l.out)
			return <-readErr
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		if IsQuit(line) {
			return nil
		}
		if err := l.Dispatch(ctx, line); err != nil {
			fmt.Fprintf(l.out, "error: %v\n", err)
		}
	}
}
