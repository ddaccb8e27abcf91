// Copyright 2023 The STMPS Authors
// SPDX-License-Identifier: GPL-3.0-only

package remote

import (
	"context"

	"github.com/godbus/dbus/v5"
)

// Endpoint is a live handle to a player's control interface. Any error it
// returns means the handle can no longer be trusted.
type Endpoint interface {
	GetProperty(ctx context.Context, name string) (dbus.Variant, error)
	SetProperty(ctx context.Context, name string, value interface{}) error
	Call(ctx context.Context, method string, args ...interface{}) error
}

// Connector acquires a fresh Endpoint for the running player.
type Connector interface {
	Connect(ctx context.Context) (Endpoint, error)
}

// Starter launches the player without waiting for it.
type Starter interface {
	StartBackground(ctx context.Context)
}
