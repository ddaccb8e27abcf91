// Copyright 2023 The STMPS Authors
// SPDX-License-Identifier: GPL-3.0-only

// Package vlcplayer drives a running VLC: playback commands and metadata go
// through the MPRIS session, everything else through external tools.
package vlcplayer

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/spezifisch/vlcrepl/logger"
	"github.com/spezifisch/vlcrepl/remote"
	"github.com/spezifisch/vlcrepl/timestamp"
)

const (
	DefaultBinary         = "vlc"
	DefaultWindowMarker   = "VLC media player"
	DefaultScreenshotTool = "import"
	DefaultKillGrace      = time.Second
	DefaultInfoFormat     = "{{.Position}} {{.Dirname}}/{{.Filename}}"

	microsPerSecond = 1000000
)

type Options struct {
	// Binary is the player executable, also used to find its processes.
	Binary string
	// WindowMarker is matched against window titles to find the player.
	WindowMarker string
	// ScreenshotTool is called as: tool -window TITLE OUTFILE
	ScreenshotTool string
	KillGrace      time.Duration
	InfoFormat     string
}

func DefaultOptions() Options {
	return Options{
		Binary:         DefaultBinary,
		WindowMarker:   DefaultWindowMarker,
		ScreenshotTool: DefaultScreenshotTool,
		KillGrace:      DefaultKillGrace,
		InfoFormat:     DefaultInfoFormat,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Binary == "" {
		o.Binary = d.Binary
	}
	if o.WindowMarker == "" {
		o.WindowMarker = d.WindowMarker
	}
	if o.ScreenshotTool == "" {
		o.ScreenshotTool = d.ScreenshotTool
	}
	if o.KillGrace <= 0 {
		o.KillGrace = d.KillGrace
	}
	if o.InfoFormat == "" {
		o.InfoFormat = d.InfoFormat
	}
	return o
}

// Deps are the collaborators a Player talks to.
type Deps struct {
	Remote    Remote
	Windows   WindowLister
	Processes ProcessManager
	Runner    Runner
	Tasks     Tasks
	// Output receives ShowInfo text; defaults to stdout.
	Output io.Writer
	Logger logger.LoggerInterface
}

type Player struct {
	remote    Remote
	windows   WindowLister
	processes ProcessManager
	runner    Runner
	tasks     Tasks
	out       io.Writer
	logger    logger.LoggerInterface

	opts  Options
	sleep func(time.Duration)
}

func NewPlayer(deps Deps, opts Options) *Player {
	out := deps.Output
	if out == nil {
		out = os.Stdout
	}
	return &Player{
		remote:    deps.Remote,
		windows:   deps.Windows,
		processes: deps.Processes,
		runner:    deps.Runner,
		tasks:     deps.Tasks,
		out:       out,
		logger:    deps.Logger,
		opts:      opts.withDefaults(),
		sleep:     time.Sleep,
	}
}

func (p *Player) Options() Options {
	return p.opts
}

// Position is the playback position in seconds, never negative.
func (p *Player) Position(ctx context.Context) (float64, error) {
	v, err := p.remote.GetProperty(ctx, "Position")
	if err != nil {
		return 0, err
	}
	raw, ok := asInt64(v)
	if !ok {
		return 0, fmt.Errorf("unexpected Position type %s", v.Signature())
	}
	if raw < 0 {
		raw = 0
	}
	return float64(raw) / microsPerSecond, nil
}

// CurrentFilePath is the decoded media URL, or "" when nothing is loaded.
func (p *Player) CurrentFilePath(ctx context.Context) (string, error) {
	meta, err := p.remote.GetProperty(ctx, "Metadata")
	if err != nil {
		return "", err
	}
	raw := metadataURL(meta)
	if raw == "" {
		return "", nil
	}
	return decodeURL(raw), nil
}

func (p *Player) Filename(ctx context.Context) (string, error) {
	path, err := p.CurrentFilePath(ctx)
	if err != nil {
		return "", err
	}
	return baseName(path), nil
}

// Dirname is the local directory of the current file, "" for URLs without
// a scheme or when nothing is loaded.
func (p *Player) Dirname(ctx context.Context) (string, error) {
	path, err := p.CurrentFilePath(ctx)
	if err != nil {
		return "", err
	}
	return dirName(path), nil
}

// WindowTitle is the title of the player's window, or "" if there is none
// or the window list could not be read.
func (p *Player) WindowTitle(ctx context.Context) string {
	lines, err := p.windows.List(ctx)
	if err != nil {
		p.logger.Debugf("window list: %v", err)
		return ""
	}
	return windowTitle(lines, p.opts.WindowMarker)
}

func (p *Player) TogglePause(ctx context.Context) error {
	return p.remote.Invoke(ctx, remote.PlayPause)
}

func (p *Player) Play(ctx context.Context) error {
	return p.remote.Invoke(ctx, remote.Play)
}

func (p *Player) Pause(ctx context.Context) error {
	return p.remote.Invoke(ctx, remote.Pause)
}

func (p *Player) Stop(ctx context.Context) error {
	return p.remote.Invoke(ctx, remote.Stop)
}

func (p *Player) Next(ctx context.Context) error {
	return p.remote.Invoke(ctx, remote.Next)
}

func (p *Player) Previous(ctx context.Context) error {
	return p.remote.Invoke(ctx, remote.Previous)
}

// Seek moves by delta seconds; negative goes back.
// NaN and infinities are rejected; offsets beyond the int64 microsecond range
// are clamped to it.
func (p *Player) Seek(ctx context.Context, delta float64) error {
	if math.IsNaN(delta) || math.IsInf(delta, 0) {
		return fmt.Errorf("%w: seek by %v", remote.ErrBadArguments, delta)
	}
	return p.remote.Invoke(ctx, remote.Seek, toMicros(delta))
}

func toMicros(seconds float64) int64 {
	us := math.Round(seconds * microsPerSecond)
	switch {
	// float64(math.MaxInt64) is 2^63, one past the range
	case us >= math.MaxInt64:
		return math.MaxInt64
	case us <= math.MinInt64:
		return math.MinInt64
	}
	return int64(us)
}

// JumpTo seeks to an absolute timestamp in the current file. Text that is
// not a timestamp is ignored.
func (p *Player) JumpTo(ctx context.Context, text string) error {
	target, ok := timestamp.Parse(text)
	if !ok {
		p.logger.Debugf("go: %q is not a timestamp", text)
		return nil
	}
	position, err := p.Position(ctx)
	if err != nil {
		return err
	}
	return p.Seek(ctx, target-math.Floor(position))
}

// Volume is the MPRIS volume, 1.0 being 100%.
func (p *Player) Volume(ctx context.Context) (float64, error) {
	v, err := p.remote.GetProperty(ctx, "Volume")
	if err != nil {
		return 0, err
	}
	volume, ok := asFloat64(v)
	if !ok {
		return 0, fmt.Errorf("unexpected Volume type %s", v.Signature())
	}
	return volume, nil
}

// SetVolume clamps to [0, 1]. NaN is rejected.
func (p *Player) SetVolume(ctx context.Context, volume float64) error {
	if math.IsNaN(volume) {
		return fmt.Errorf("%w: volume %v", remote.ErrBadArguments, volume)
	}
	volume = math.Max(0, math.Min(1, volume))
	return p.remote.SetProperty(ctx, "Volume", volume)
}

func (p *Player) AdjustVolume(ctx context.Context, delta float64) error {
	volume, err := p.Volume(ctx)
	if err != nil {
		return err
	}
	return p.SetVolume(ctx, volume+delta)
}
