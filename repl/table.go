// Copyright 2023 The STMPS Authors
// SPDX-License-Identifier: GPL-3.0-only

// Package repl maps keystrokes and short text commands to player actions.
package repl

import (
	"context"
	"errors"
	"fmt"
)

var ErrDuplicateToken = errors.New("duplicate token")

type Action func(ctx context.Context) error

// Binding ties one input token to an action. Tokens are matched exactly;
// arrow keys use their escape sequences.
type Binding struct {
	Token       string
	Description string
	Action      Action
}

// Table is an ordered set of bindings.
type Table struct {
	bindings []Binding
	index    map[string]int
}

func NewTable(bindings ...Binding) (*Table, error) {
	t := &Table{index: make(map[string]int, len(bindings))}
	for _, b := range bindings {
		if b.Token == "" {
			return nil, errors.New("binding without token")
		}
		if b.Action == nil {
			return nil, fmt.Errorf("binding %s has no action", KeyName(b.Token))
		}
		if _, ok := t.index[b.Token]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateToken, KeyName(b.Token))
		}
		t.index[b.Token] = len(t.bindings)
		t.bindings = append(t.bindings, b)
	}
	return t, nil
}

func (t *Table) Lookup(token string) (Binding, bool) {
	i, ok := t.index[token]
	if !ok {
		return Binding{}, false
	}
	return t.bindings[i], true
}

// Bindings returns the bindings in declaration order.
func (t *Table) Bindings() []Binding {
	out := make([]Binding, len(t.bindings))
	copy(out, t.bindings)
	return out
}

const (
	ArrowLeft  = "\x1b[D"
	ArrowRight = "\x1b[C"
)

// KeyName is how a token is shown to the user.
func KeyName(token string) string {
	switch token {
	case " ":
		return "space"
	case ArrowLeft:
		return "left"
	case ArrowRight:
		return "right"
	}
	return token
}
