// Copyright 2023 The STMPS Authors
// SPDX-License-Identifier: GPL-3.0-only

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/spezifisch/vlcrepl/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

var osExit = os.Exit // A variable to allow mocking os.Exit in tests

const DEVELOPMENT = "development"

// Name is the program name shown in the UI and version output
const Name = "vlcrepl"

// Version is the program version; usually set from BuildInfo
var Version string = DEVELOPMENT

var errConfig = errors.New("configuration")

// cli holds what the commands share: the config source, resolved settings
// and the standard streams.
type cli struct {
	v          *viper.Viper
	configFile string
	cfg        Config

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	// isTerminal decides between the full screen and the line based REPL
	isTerminal func() bool
}

func newCLI() *cli {
	return &cli{
		v:      viper.New(),
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
		isTerminal: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
		},
	}
}

func newRootCmd(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:   Name,
		Short: "Control a running VLC from the terminal",
		Long: `vlcrepl controls VLC media player over MPRIS2.
Without a subcommand it starts an interactive REPL with single key bindings.`,
		Args:              cobra.NoArgs,
		PersistentPreRunE: c.loadConfig,
		RunE:              c.runRepl,
		SilenceUsage:      true,
	}
	root.SetIn(c.stdin)
	root.SetOut(c.stdout)
	root.SetErr(c.stderr)

	root.PersistentFlags().StringVar(&c.configFile, "config", "", "use config `file`")
	root.PersistentFlags().Bool("debug", false, "log debug messages")
	_ = c.v.BindPFlag("log.debug", root.PersistentFlags().Lookup("debug"))

	root.AddCommand(
		c.newReplCmd(),
		c.newStartCmd(),
		c.newPlayCmd(),
		c.newKillCmd(),
		c.newInfoCmd(),
		c.newVersionCmd(),
	)
	return root
}

func (c *cli) loadConfig(cmd *cobra.Command, args []string) error {
	if err := readConfig(c.v, c.configFile); err != nil {
		return fmt.Errorf("%w: %w", errConfig, err)
	}
	cfg, err := loadConfig(c.v)
	if err != nil {
		return fmt.Errorf("%w: %w", errConfig, err)
	}
	c.cfg = cfg
	return nil
}

// oneShotLogger writes straight to stderr; only the full screen REPL
// collects log lines in the UI.
func (c *cli) oneShotLogger() *logger.Logger {
	l := logger.InitWriter(c.stderr)
	l.SetDebug(c.cfg.Debug)
	return l
}

// return codes:
// 0 - OK
// 1 - generic errors
// 2 - config errors
func exitCode(err error) int {
	if errors.Is(err, errConfig) {
		return 2
	}
	return 1
}

func main() {
	if Version == DEVELOPMENT {
		if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" {
			Version = bi.Main.Version
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd(newCLI()).ExecuteContext(ctx)
	stop()
	if err != nil {
		osExit(exitCode(err))
	}
}
