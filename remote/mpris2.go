// Copyright 2023 The STMPS Authors
// SPDX-License-Identifier: GPL-3.0-only

package remote

import (
	"context"
	"errors"
	"fmt"

	"github.com/godbus/dbus/v5"
	"github.com/spezifisch/vlcrepl/logger"
)

const (
	MprisPath            = dbus.ObjectPath("/org/mpris/MediaPlayer2")
	MprisPlayerInterface = "org.mpris.MediaPlayer2.Player"
	// DefaultBusName is the well-known name VLC registers for MPRIS2.
	DefaultBusName = "org.mpris.MediaPlayer2.vlc"

	dbusNameHasOwner  = "org.freedesktop.DBus.NameHasOwner"
	dbusPropertiesGet = "org.freedesktop.DBus.Properties.Get"
	dbusPropertiesSet = "org.freedesktop.DBus.Properties.Set"
)

var ErrNoOwner = errors.New("name has no owner")

// MprisConnector reaches a player by its well-known name on the session bus.
type MprisConnector struct {
	busName string
	logger  logger.LoggerInterface

	dial func() (*dbus.Conn, error)
	conn *dbus.Conn
}

var _ Connector = (*MprisConnector)(nil)

func NewMprisConnector(busName string, logger_ logger.LoggerInterface) *MprisConnector {
	if busName == "" {
		busName = DefaultBusName
	}
	return &MprisConnector{
		busName: busName,
		logger:  logger_,
		dial: func() (*dbus.Conn, error) {
			return dbus.ConnectSessionBus()
		},
	}
}

// Connect reuses the bus connection while it is alive and checks that
// somebody owns the player's name. Only then is an endpoint handed out.
func (m *MprisConnector) Connect(ctx context.Context) (Endpoint, error) {
	if m.conn == nil || !m.conn.Connected() {
		conn, err := m.dial()
		if err != nil {
			return nil, fmt.Errorf("session bus: %w", err)
		}
		m.conn = conn
	}

	var hasOwner bool
	call := m.conn.BusObject().CallWithContext(ctx, dbusNameHasOwner, 0, m.busName)
	if err := call.Store(&hasOwner); err != nil {
		m.Close()
		return nil, fmt.Errorf("%s: %w", dbusNameHasOwner, err)
	}
	if !hasOwner {
		return nil, fmt.Errorf("%s: %w", m.busName, ErrNoOwner)
	}

	return &mprisEndpoint{obj: m.conn.Object(m.busName, MprisPath)}, nil
}

// Close drops the bus connection, if any.
func (m *MprisConnector) Close() {
	if m.conn == nil {
		return
	}
	if err := m.conn.Close(); err != nil {
		m.logger.PrintError("mpris Close", err)
	}
	m.conn = nil
}

type mprisEndpoint struct {
	obj dbus.BusObject
}

func (e *mprisEndpoint) GetProperty(ctx context.Context, name string) (dbus.Variant, error) {
	var value dbus.Variant
	call := e.obj.CallWithContext(ctx, dbusPropertiesGet, 0, MprisPlayerInterface, name)
	if err := call.Store(&value); err != nil {
		return dbus.Variant{}, err
	}
	return value, nil
}

func (e *mprisEndpoint) SetProperty(ctx context.Context, name string, value interface{}) error {
	return e.obj.CallWithContext(ctx, dbusPropertiesSet, 0, MprisPlayerInterface, name, dbus.MakeVariant(value)).Err
}

func (e *mprisEndpoint) Call(ctx context.Context, method string, args ...interface{}) error {
	return e.obj.CallWithContext(ctx, MprisPlayerInterface+"."+method, 0, args...).Err
}
