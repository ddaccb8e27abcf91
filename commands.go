// Copyright 2023 The STMPS Authors
// SPDX-License-Identifier: GPL-3.0-only

package main

import (
	"fmt"

	"github.com/spezifisch/vlcrepl/logger"
	"github.com/spf13/cobra"
)

func (c *cli) newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start the interactive REPL",
		Args:  cobra.NoArgs,
		RunE:  c.runRepl,
	}
}

func (c *cli) newStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start [FILENAME] [STARTTIME] [STOPTIME]",
		Short: "Start FILENAME at a specific start time (and/or end at a specific stop time)",
		Long: `Start VLC fullscreen with FILENAME. STARTTIME and STOPTIME are timestamps
such as 90, 1:30 or 1m30s; unparsable times count as 0 and a STOPTIME of 0 plays
to the end. Without FILENAME a bare VLC is started. Blocks until VLC exits.`,
		Args: cobra.MaximumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			var filename, start, stop string
			switch len(args) {
			case 3:
				stop = args[2]
				fallthrough
			case 2:
				start = args[1]
				fallthrough
			case 1:
				filename = args[0]
			}

			a := newApp(c.cfg, c.oneShotLogger(), cmd.OutOrStdout())
			defer a.Close()
			a.launcher.Launch(cmd.Context(), filename, start, stop, false)
			return nil
		},
	}
}

func (c *cli) newPlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play FILE...",
		Short: "Play the files fullscreen as one playlist",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := newApp(c.cfg, c.oneShotLogger(), cmd.OutOrStdout())
			defer a.Close()
			a.launcher.LaunchMany(cmd.Context(), args, false)
			return nil
		},
	}
}

func (c *cli) newKillCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kill",
		Short: "Kill all VLC processes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := newApp(c.cfg, c.oneShotLogger(), cmd.OutOrStdout())
			defer a.Close()
			a.player.KillAll(cmd.Context())
			return nil
		},
	}
}

func (c *cli) newInfoCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show info about the currently playing file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := newApp(c.cfg, c.oneShotLogger(), cmd.OutOrStdout())
			defer a.Close()
			return a.player.ShowInfo(cmd.Context(), format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "Go template over .Filename .Dirname .Position .Clock .WindowTitle")
	return cmd
}

func (c *cli) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", Name, Version)
			return nil
		},
	}
}

func (c *cli) runRepl(cmd *cobra.Command, args []string) error {
	if c.isTerminal() {
		return c.runGui(cmd)
	}

	l := c.oneShotLogger()
	a := newApp(c.cfg, l, cmd.OutOrStdout())
	defer a.Close()
	loop, err := a.newLoop(cmd.OutOrStdout())
	if err != nil {
		return err
	}
	return loop.Run(cmd.Context(), cmd.InOrStdin())
}

func (c *cli) runGui(cmd *cobra.Command) error {
	l := logger.Init()
	l.SetDebug(c.cfg.Debug)

	output := make(chan string, 100)
	writer := &lineWriter{lines: output}
	a := newApp(c.cfg, l, writer)
	defer a.Close()
	loop, err := a.newLoop(writer)
	if err != nil {
		return err
	}

	ui := InitGui(cmd.Context(), loop, a.session, l, output)
	return ui.Run()
}
