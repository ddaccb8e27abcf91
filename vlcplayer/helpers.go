// Copyright 2023 The STMPS Authors
// SPDX-License-Identifier: GPL-3.0-only

package vlcplayer

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/godbus/dbus/v5"
)

func asInt64(v dbus.Variant) (int64, bool) {
	switch val := v.Value().(type) {
	case int64:
		return val, true
	case int32:
		return int64(val), true
	case uint64:
		return int64(val), true
	case uint32:
		return int64(val), true
	default:
		return 0, false
	}
}

func asFloat64(v dbus.Variant) (float64, bool) {
	switch val := v.Value().(type) {
	case float64:
		return val, true
	case int64:
		return float64(val), true
	default:
		return 0, false
	}
}

func asString(v dbus.Variant) string {
	if s, ok := v.Value().(string); ok {
		return s
	}
	if p, ok := v.Value().(dbus.ObjectPath); ok {
		return string(p)
	}
	return ""
}

// metadataURL pulls xesam:url out of a Metadata variant, or "".
func metadataURL(meta dbus.Variant) string {
	raw, ok := meta.Value().(map[string]dbus.Variant)
	if !ok {
		return ""
	}
	u, ok := raw["xesam:url"]
	if !ok {
		return ""
	}
	return asString(u)
}

// decodeURL undoes percent encoding, with '+' read as a space. Malformed
// escapes leave the text as it was.
func decodeURL(raw string) string {
	decoded, err := url.QueryUnescape(raw)
	if err != nil {
		return raw
	}
	return decoded
}

// baseName is everything after the final '/'.
func baseName(p string) string {
	return p[strings.LastIndex(p, "/")+1:]
}

// dirName is everything before the final '/', trailing slashes trimmed,
// with the URL scheme ("file://") removed. Without a scheme it is "".
func dirName(p string) string {
	i := strings.LastIndex(p, "/")
	if i < 0 {
		return ""
	}
	head := p[:i]
	if strings.Trim(head, "/") != "" {
		head = strings.TrimRight(head, "/")
	}
	_, dir, found := strings.Cut(head, "://")
	if !found {
		return ""
	}
	return dir
}

// wmctrl -l: window id, desktop, host, then the title
var windowLine = regexp.MustCompile(`^(?:\S+\s+){3}(.*)$`)

// windowTitle returns the title of the first line mentioning marker.
func windowTitle(lines []string, marker string) string {
	for _, line := range lines {
		if !strings.Contains(line, marker) {
			continue
		}
		m := windowLine.FindStringSubmatch(line)
		if m == nil {
			return ""
		}
		return m[1]
	}
	return ""
}
