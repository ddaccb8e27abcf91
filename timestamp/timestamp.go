// Copyright 2023 The STMPS Authors
// SPDX-License-Identifier: GPL-3.0-only

// Package timestamp converts human timestamps to seconds and back.
package timestamp

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Parse accepts "HH:MM:SS", "MM:SS", plain seconds ("90", "12.5") and Go
// durations ("1h2m3s"). The boolean is false when text is not a timestamp,
// so callers can tell "0 seconds" apart from "unparsable".
func Parse(text string) (float64, bool) {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0, false
	}

	if strings.Contains(s, ":") {
		return parseClock(s)
	}

	if v, ok := parseNumber(s); ok {
		return v, true
	}

	d, err := time.ParseDuration(s)
	if err != nil || d < 0 {
		return 0, false
	}
	return d.Seconds(), true
}

func parseClock(s string) (float64, bool) {
	parts := strings.Split(s, ":")
	if len(parts) > 3 {
		return 0, false
	}

	total := 0.0
	for i, part := range parts {
		last := i == len(parts)-1
		var v float64
		var ok bool
		if last {
			v, ok = parseNumber(part)
		} else {
			v, ok = parseInteger(part)
		}
		if !ok {
			return 0, false
		}
		// only the leading field may exceed its unit
		if i > 0 && v >= 60 {
			return 0, false
		}
		total = total*60 + v
	}
	return total, true
}

func parseInteger(s string) (float64, bool) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, false
	}
	return float64(n), true
}

func parseNumber(s string) (float64, bool) {
	if s == "" || s[0] == '+' || s[0] == '-' {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// Format renders seconds as M:SS, or H:MM:SS past the hour.
func Format(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	s := int(seconds)
	h := s / 3600
	m := (s % 3600) / 60
	sec := s % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, sec)
	}
	return fmt.Sprintf("%d:%02d", m, sec)
}
