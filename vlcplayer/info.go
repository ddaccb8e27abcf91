// Copyright 2023 The STMPS Authors
// SPDX-License-Identifier: GPL-3.0-only

package vlcplayer

import (
	"bytes"
	"context"
	"fmt"
	"text/template"

	"github.com/spezifisch/vlcrepl/timestamp"
)

// Info is a snapshot of what the player is doing. Its fields come from
// separate queries and are not guaranteed to be consistent with each other.
type Info struct {
	Filename    string
	Dirname     string
	Position    float64
	WindowTitle string
}

// Clock is Position as M:SS or H:MM:SS.
func (i Info) Clock() string {
	return timestamp.Format(i.Position)
}

func (p *Player) Info(ctx context.Context) (Info, error) {
	var info Info
	var err error

	if info.Filename, err = p.Filename(ctx); err != nil {
		return Info{}, err
	}
	if info.Dirname, err = p.Dirname(ctx); err != nil {
		return Info{}, err
	}
	if info.Position, err = p.Position(ctx); err != nil {
		return Info{}, err
	}
	info.WindowTitle = p.WindowTitle(ctx)
	return info, nil
}

// ShowInfo prints Info through a text/template format, e.g.
// "{{.Position}} {{.Dirname}}/{{.Filename}}". An empty format uses the
// configured default. A broken format is logged and nothing is printed.
func (p *Player) ShowInfo(ctx context.Context, format string) error {
	if format == "" {
		format = p.opts.InfoFormat
	}
	tmpl, err := template.New("info").Option("missingkey=error").Parse(format)
	if err != nil {
		p.logger.PrintError("info format", err)
		return nil
	}

	info, err := p.Info(ctx)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, info); err != nil {
		p.logger.PrintError("info format", err)
		return nil
	}
	fmt.Fprintln(p.out, buf.String())
	return nil
}
