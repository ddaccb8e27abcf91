// Copyright 2023 The STMPS Authors
// SPDX-License-Identifier: GPL-3.0-only

package remote

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/spezifisch/vlcrepl/logger"
)

const DefaultSettleDelay = time.Second

var (
	// ErrPlayerUnavailable is fatal for the current operation: a call failed
	// again right after a successful reconnect.
	ErrPlayerUnavailable = errors.New("player not available")
	// ErrPlayerNotRunning means no player could be reached even after
	// starting one. It also matches ErrPlayerUnavailable.
	ErrPlayerNotRunning = fmt.Errorf("%w: player is not running", ErrPlayerUnavailable)
)

// UnavailableError carries the failed operation and the last bus error.
type UnavailableError struct {
	Op    string
	Kind  error
	Cause error
}

func (e *UnavailableError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s (%s)", e.Op, e.Kind, e.Cause)
}

func (e *UnavailableError) Unwrap() []error {
	return []error{e.Kind, e.Cause}
}

// Outcome classifies how a session primitive finished.
type Outcome int

const (
	OutcomeNone Outcome = iota
	// OutcomeOK: the existing handle served the call.
	OutcomeOK
	// OutcomeRecovered: the first attempt failed (or there was no handle),
	// the reconnect worked and the retried call succeeded.
	OutcomeRecovered
	// OutcomeFatal: the error returned is an UnavailableError.
	OutcomeFatal
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeRecovered:
		return "recovered"
	case OutcomeFatal:
		return "fatal"
	default:
		return "none"
	}
}

// Session owns the one handle to the player's control interface and heals
// it: every primitive tries once, reconnects once, and retries once.
//
// A Session is not safe for concurrent use; it belongs to the goroutine
// running the key loop.
type Session struct {
	connector Connector
	starter   Starter
	logger    logger.LoggerInterface

	settleDelay time.Duration
	sleep       func(time.Duration)

	endpoint Endpoint
	last     Outcome
}

type SessionOption func(*Session)

func WithSettleDelay(d time.Duration) SessionOption {
	return func(s *Session) {
		s.settleDelay = d
	}
}

// WithSleep replaces the blocking sleep used for the settle delay.
func WithSleep(sleep func(time.Duration)) SessionOption {
	return func(s *Session) {
		s.sleep = sleep
	}
}

// NewSession does not connect; the first primitive does. starter may be nil,
// in which case a missing player is not launched.
func NewSession(connector Connector, starter Starter, logger logger.LoggerInterface, opts ...SessionOption) *Session {
	s := &Session{
		connector:   connector,
		starter:     starter,
		logger:      logger,
		settleDelay: DefaultSettleDelay,
		sleep:       time.Sleep,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Connected reports whether a handle is currently held. It does not probe it.
func (s *Session) Connected() bool {
	return s.endpoint != nil
}

// LastOutcome is the outcome of the most recent primitive.
func (s *Session) LastOutcome() Outcome {
	return s.last
}

func (s *Session) GetProperty(ctx context.Context, name string) (dbus.Variant, error) {
	var value dbus.Variant
	err := s.do(ctx, "get "+name, func(ep Endpoint) error {
		var err error
		value, err = ep.GetProperty(ctx, name)
		return err
	})
	return value, err
}

func (s *Session) SetProperty(ctx context.Context, name string, value interface{}) error {
	return s.do(ctx, "set "+name, func(ep Endpoint) error {
		return ep.SetProperty(ctx, name, value)
	})
}

// Invoke calls cmd on the player; any reply value is discarded. Argument
// mistakes are reported without touching the bus.
func (s *Session) Invoke(ctx context.Context, cmd Command, args ...interface{}) error {
	if err := cmd.check(args); err != nil {
		return err
	}
	return s.do(ctx, "call "+cmd.String(), func(ep Endpoint) error {
		return ep.Call(ctx, cmd.Method(), args...)
	})
}

// Reconnect drops the current handle and acquires a new one. When no player
// answers it starts one, blocks for the settle delay and tries exactly once
// more; failing that it returns ErrPlayerNotRunning.
func (s *Session) Reconnect(ctx context.Context) error {
	s.endpoint = nil

	ep, err := s.connector.Connect(ctx)
	if err == nil {
		s.endpoint = ep
		return nil
	}

	s.logger.Debugf("no player on the bus (%v), starting one", err)
	if s.starter != nil {
		s.starter.StartBackground(ctx)
	}
	s.sleep(s.settleDelay)

	ep, err = s.connector.Connect(ctx)
	if err != nil {
		return &UnavailableError{Op: "connect", Kind: ErrPlayerNotRunning, Cause: err}
	}
	s.endpoint = ep
	return nil
}

func (s *Session) do(ctx context.Context, op string, call func(Endpoint) error) error {
	outcome, err := s.attempt(ctx, op, call)
	s.last = outcome
	if outcome == OutcomeRecovered {
		s.logger.Debugf("%s: recovered after reconnect", op)
	}
	return err
}

func (s *Session) attempt(ctx context.Context, op string, call func(Endpoint) error) (Outcome, error) {
	if s.endpoint != nil {
		err := call(s.endpoint)
		if err == nil {
			return OutcomeOK, nil
		}
		s.logger.Debugf("%s failed: %v", op, err)
	}

	if err := s.Reconnect(ctx); err != nil {
		var unavailable *UnavailableError
		if errors.As(err, &unavailable) {
			unavailable.Op = op
		}
		return OutcomeFatal, err
	}

	if err := call(s.endpoint); err != nil {
		s.endpoint = nil
		return OutcomeFatal, &UnavailableError{Op: op, Kind: ErrPlayerUnavailable, Cause: err}
	}
	return OutcomeRecovered, nil
}
