// Copyright 2023 The STMPS Authors
// SPDX-License-Identifier: GPL-3.0-only

package vlcplayer

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spezifisch/vlcrepl/logger"
	"github.com/spezifisch/vlcrepl/timestamp"
)

// Launcher starts new player processes. It also serves as the session's
// starter when the player has to be brought up for a reconnect.
type Launcher struct {
	runner  Runner
	display DisplayChecker
	tasks   Tasks
	logger  logger.LoggerInterface
	binary  string

	home func() (string, error)
}

func NewLauncher(runner Runner, display DisplayChecker, tasks Tasks, logger logger.LoggerInterface, binary string) *Launcher {
	if binary == "" {
		binary = DefaultBinary
	}
	return &Launcher{
		runner:  runner,
		display: display,
		tasks:   tasks,
		logger:  logger,
		binary:  binary,
		home:    os.UserHomeDir,
	}
}

// Launch plays filename fullscreen from start until stop, both timestamps.
// Unparsable times count as 0, and a stop of 0 plays to the end. Without a
// filename the player is started bare. Inline runs block until the player
// exits.
func (l *Launcher) Launch(ctx context.Context, filename, start, stop string, background bool) {
	if !l.display.Active() {
		l.logger.Warnf("not connected to a display")
		return
	}
	args, err := l.launchArgs(filename, start, stop)
	if err != nil {
		l.logger.PrintError("launch", err)
		return
	}
	l.run(ctx, "launch", args, background)
}

// LaunchMany plays filenames fullscreen as one playlist.
func (l *Launcher) LaunchMany(ctx context.Context, filenames []string, background bool) {
	if !l.display.Active() {
		l.logger.Warnf("not connected to a display")
		return
	}
	var args []string
	if len(filenames) > 0 {
		args = append([]string{"--fullscreen"}, filenames...)
	}
	l.run(ctx, "launch many", args, background)
}

// StartBackground brings up a bare player without waiting for it.
func (l *Launcher) StartBackground(ctx context.Context) {
	l.Launch(ctx, "", "", "", true)
}

func (l *Launcher) run(ctx context.Context, name string, args []string, background bool) {
	l.logger.Debugf("%s: %s %s", name, l.binary, strings.Join(args, " "))
	if background {
		bgCtx := context.WithoutCancel(ctx)
		l.tasks.Go(name, func() error {
			_, err := l.runner.Run(bgCtx, l.binary, args...)
			return err
		})
		return
	}
	if _, err := l.runner.Run(ctx, l.binary, args...); err != nil {
		l.logger.PrintError(name, err)
	}
}

func (l *Launcher) launchArgs(filename, start, stop string) ([]string, error) {
	if filename == "" {
		return nil, nil
	}
	fullpath, err := l.absPath(filename)
	if err != nil {
		return nil, err
	}
	startSec, _ := timestamp.Parse(start)
	stopSec, _ := timestamp.Parse(stop)

	args := []string{"--fullscreen", "--start-time", formatSeconds(startSec)}
	if stopSec != 0 {
		args = append(args, "--stop-time", formatSeconds(stopSec))
	}
	return append(args, fullpath), nil
}

func (l *Launcher) absPath(filename string) (string, error) {
	if filename == "~" || strings.HasPrefix(filename, "~/") {
		home, err := l.home()
		if err != nil {
			return "", err
		}
		filename = filepath.Join(home, filename[1:])
	}
	return filepath.Abs(filename)
}

func formatSeconds(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
