// Copyright 2023 The STMPS Authors
// SPDX-License-Identifier: GPL-3.0-only

package main

import (
	"io"

	"github.com/spezifisch/vlcrepl/background"
	"github.com/spezifisch/vlcrepl/logger"
	"github.com/spezifisch/vlcrepl/remote"
	"github.com/spezifisch/vlcrepl/repl"
	"github.com/spezifisch/vlcrepl/system"
	"github.com/spezifisch/vlcrepl/vlcplayer"
)

// app owns the one control session and everything built on it.
type app struct {
	config    Config
	logger    logger.LoggerInterface
	connector *remote.MprisConnector
	session   *remote.Session
	launcher  *vlcplayer.Launcher
	player    *vlcplayer.Player
}

// newApp wires the components. Nothing connects until the first command.
func newApp(cfg Config, log logger.LoggerInterface, out io.Writer) *app {
	runner := system.Exec{}
	tasks := background.NewRunner(log)

	launcher := vlcplayer.NewLauncher(runner, system.NewDisplay(), tasks, log, cfg.Binary)
	connector := remote.NewMprisConnector(cfg.BusName, log)
	session := remote.NewSession(connector, launcher, log, remote.WithSettleDelay(cfg.SettleDelay))

	player := vlcplayer.NewPlayer(vlcplayer.Deps{
		Remote:    session,
		Windows:   system.NewWindows(runner, cfg.WindowList),
		Processes: system.NewProcesses(runner, cfg.ProcessList),
		Runner:    runner,
		Tasks:     tasks,
		Output:    out,
		Logger:    log,
	}, cfg.playerOptions())

	return &app{
		config:    cfg,
		logger:    log,
		connector: connector,
		session:   session,
		launcher:  launcher,
		player:    player,
	}
}

// newLoop builds the dispatch loop with the default key table.
func (a *app) newLoop(out io.Writer) (*repl.Loop, error) {
	table, err := repl.DefaultTable(a.player)
	if err != nil {
		return nil, err
	}
	return repl.NewLoop(table, a.player, out, a.logger, a.config.Prompt), nil
}

func (a *app) Close() {
	a.connector.Close()
}
