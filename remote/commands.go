// Copyright 2023 The STMPS Authors
// SPDX-License-Identifier: GPL-3.0-only

package remote

import (
	"errors"
	"fmt"
)

// Command is a method of the MPRIS player interface this tool knows how to
// call. Anything outside this set cannot be invoked.
type Command int

const (
	PlayPause Command = iota
	Play
	Pause
	Stop
	Next
	Previous
	// Seek takes one int64 offset in microseconds; negative seeks backwards.
	Seek
)

var ErrBadArguments = errors.New("bad command arguments")

type commandDef struct {
	method string
	arity  int
}

var commandDefs = [...]commandDef{
	PlayPause: {"PlayPause", 0},
	Play:      {"Play", 0},
	Pause:     {"Pause", 0},
	Stop:      {"Stop", 0},
	Next:      {"Next", 0},
	Previous:  {"Previous", 0},
	Seek:      {"Seek", 1},
}

func (c Command) Valid() bool {
	return c >= 0 && int(c) < len(commandDefs)
}

// Method is the D-Bus member name, without the interface prefix.
func (c Command) Method() string {
	if !c.Valid() {
		return ""
	}
	return commandDefs[c].method
}

func (c Command) Arity() int {
	if !c.Valid() {
		return -1
	}
	return commandDefs[c].arity
}

func (c Command) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Command(%d)", int(c))
	}
	return commandDefs[c].method
}

// check validates a call before anything is sent to the player.
func (c Command) check(args []interface{}) error {
	if !c.Valid() {
		return fmt.Errorf("%w: unknown command %s", ErrBadArguments, c)
	}
	if len(args) != c.Arity() {
		return fmt.Errorf("%w: %s takes %d argument(s), got %d", ErrBadArguments, c, c.Arity(), len(args))
	}
	if c == Seek {
		if _, ok := args[0].(int64); !ok {
			return fmt.Errorf("%w: Seek offset must be int64 microseconds, got %T", ErrBadArguments, args[0])
		}
	}
	return nil
}
