// Copyright © 2026 Winmux contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: report/report.go
// Summary: Human-readable chain snapshot listings for console sinks.

package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"winmux/wm"
)

// Render returns a listing of a chain snapshot, one line per window in
// chain order.
func Render(states []wm.WindowState) string {
	var b strings.Builder
	Write(&b, states)
	return b.String()
}

// Write streams the listing to w. Window names are padded by display
// width so the geometry columns line up even with wide runes.
func Write(w io.Writer, states []wm.WindowState) {
	if len(states) == 0 {
		fmt.Fprintln(w, "  (no windows)")
		return
	}

	nameWidth := 0
	for _, s := range states {
		if width := runewidth.StringWidth(s.Name); width > nameWidth {
			nameWidth = width
		}
	}

	for _, s := range states {
		padded := runewidth.FillRight(s.Name, nameWidth)
		fmt.Fprintf(w, "  [id=%2d] \"%s\" (%s), selected=%v\n", s.ID, padded, s.Bounds, s.Selected)
	}
}
