// Copyright 2023 The STMPS Authors
// SPDX-License-Identifier: GPL-3.0-only

package vlcplayer

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"strings"
)

// Screenshot captures the player window next to the current file. The file
// name carries the playback position, so captures sort by time. Nothing
// happens for streams without a local directory.
//
// Only the capture tool is detached. Directory, file name, position and
// window title are read first on the calling goroutine, because the session
// is not safe for concurrent use; the window query blocks the caller. The
// detached capture only logs its failures.
func (p *Player) Screenshot(ctx context.Context) error {
	dir, err := p.Dirname(ctx)
	if err != nil {
		return err
	}
	if dir == "" {
		p.logger.Debugf("screenshot: no local directory for current media")
		return nil
	}
	file, err := p.Filename(ctx)
	if err != nil {
		return err
	}
	position, err := p.Position(ctx)
	if err != nil {
		return err
	}
	title := p.WindowTitle(ctx)

	outfile := filepath.Join(dir, screenshotName(file, position))
	tool := p.opts.ScreenshotTool
	bgCtx := context.WithoutCancel(ctx)
	p.tasks.Go("screenshot", func() error {
		_, err := p.runner.Run(bgCtx, tool, "-window", title, outfile)
		return err
	})
	p.logger.Printf("screenshot: %s", outfile)
	return nil
}

// screenshotName is screenshot--<base>--<position>.png, the position fixed
// to four decimals and zero padded to twelve characters.
func screenshotName(file string, position float64) string {
	return fmt.Sprintf("screenshot--%s--%012.4f.png", stripExt(file), position)
}

// stripExt drops the extension; leading dots do not start one.
func stripExt(name string) string {
	ext := path.Ext(strings.TrimLeft(name, "."))
	return name[:len(name)-len(ext)]
}
