// Copyright 2023 The STMPS Authors
// SPDX-License-Identifier: GPL-3.0-only

package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spezifisch/vlcrepl/remote"
	"github.com/spezifisch/vlcrepl/repl"
	"github.com/spezifisch/vlcrepl/vlcplayer"
	"github.com/spf13/viper"
)

// Config is the resolved configuration: defaults < config file < environment < flags.
type Config struct {
	Binary       string
	BusName      string
	WindowMarker string
	SettleDelay  time.Duration
	KillGrace    time.Duration

	WindowList  []string
	Screenshot  string
	ProcessList []string

	Prompt     string
	InfoFormat string

	Debug bool
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("player.binary", vlcplayer.DefaultBinary)
	v.SetDefault("player.bus_name", remote.DefaultBusName)
	v.SetDefault("player.window_marker", vlcplayer.DefaultWindowMarker)
	v.SetDefault("player.settle_delay", remote.DefaultSettleDelay)
	v.SetDefault("player.kill_grace", vlcplayer.DefaultKillGrace)
	v.SetDefault("tools.window_list", []string{"wmctrl", "-l"})
	v.SetDefault("tools.screenshot", vlcplayer.DefaultScreenshotTool)
	v.SetDefault("tools.process_list", []string{"pgrep", "-x"})
	v.SetDefault("repl.prompt", repl.DefaultPrompt)
	v.SetDefault("repl.info_format", vlcplayer.DefaultInfoFormat)
	v.SetDefault("log.debug", false)
}

// readConfig loads configFile, or vlcrepl.toml from the default locations.
// Only an explicitly named file has to exist.
func readConfig(v *viper.Viper, configFile string) error {
	setDefaults(v)

	v.SetEnvPrefix("VLCREPL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		// use custom config file
		v.SetConfigFile(configFile)
	} else {
		// lookup default dirs
		v.SetConfigName("vlcrepl")
		v.SetConfigType("toml")
		v.AddConfigPath("$HOME/.config/vlcrepl")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("config file error: %w", err)
	}
	return nil
}

func loadConfig(v *viper.Viper) (Config, error) {
	c := Config{
		Binary:       v.GetString("player.binary"),
		BusName:      v.GetString("player.bus_name"),
		WindowMarker: v.GetString("player.window_marker"),
		SettleDelay:  v.GetDuration("player.settle_delay"),
		KillGrace:    v.GetDuration("player.kill_grace"),
		WindowList:   v.GetStringSlice("tools.window_list"),
		Screenshot:   v.GetString("tools.screenshot"),
		ProcessList:  v.GetStringSlice("tools.process_list"),
		Prompt:       v.GetString("repl.prompt"),
		InfoFormat:   v.GetString("repl.info_format"),
		Debug:        v.GetBool("log.debug"),
	}

	// validate
	if c.Binary == "" {
		return Config{}, errors.New("config property player.binary must not be empty")
	}
	if c.BusName == "" {
		return Config{}, errors.New("config property player.bus_name must not be empty")
	}
	if len(c.WindowList) == 0 || len(c.ProcessList) == 0 {
		return Config{}, errors.New("config properties tools.window_list and tools.process_list must not be empty")
	}
	if c.SettleDelay < 0 || c.KillGrace < 0 {
		return Config{}, errors.New("config durations must not be negative")
	}
	return c, nil
}

func (c Config) playerOptions() vlcplayer.Options {
	return vlcplayer.Options{
		Binary:         c.Binary,
		WindowMarker:   c.WindowMarker,
		ScreenshotTool: c.Screenshot,
		KillGrace:      c.KillGrace,
		InfoFormat:     c.InfoFormat,
	}
}
