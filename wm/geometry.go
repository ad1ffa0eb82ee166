// Copyright © 2026 Winmux contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: wm/geometry.go
// Summary: Rectangle and position value types with point containment.

package wm

import "fmt"

// Minimum window dimensions. A window must at least be able to hold a
// close box in its top-right corner.
const (
	MinWindowWidth  = 4
	MinWindowHeight = 4
)

// Default close box dimensions, overridable through Metrics.
const (
	DefaultCloseBoxWidth  = 2
	DefaultCloseBoxHeight = 2
)

// Position is a point in global coordinates.
type Position struct {
	X int
	Y int
}

// String renders the position as "(x,y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Rectangle stores a region's position and size in global coordinates.
// The region covers [X, X+Width) x [Y, Y+Height).
type Rectangle struct {
	X      int
	Y      int
	Width  int
	Height int
}

// NewRectangle builds a rectangle, clamping dimensions up to the given
// minimums. Pass zero minimums to keep the dimensions as given.
func NewRectangle(x, y, width, height, minWidth, minHeight int) Rectangle {
	if width < minWidth {
		width = minWidth
	}
	if height < minHeight {
		height = minHeight
	}
	return Rectangle{X: x, Y: y, Width: width, Height: height}
}

// Right returns the exclusive right edge.
func (r Rectangle) Right() int {
	return r.X + r.Width
}

// Bottom returns the exclusive bottom edge.
func (r Rectangle) Bottom() int {
	return r.Y + r.Height
}

// Contains reports whether the position falls inside the rectangle.
func (r Rectangle) Contains(p Position) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// String renders the rectangle with its corner coordinates.
func (r Rectangle) String() string {
	return fmt.Sprintf("x1=%2d, y1=%2d, x2=%2d, y2=%2d", r.X, r.Y, r.Right(), r.Bottom())
}

// Metrics holds the configurable window geometry constants: the minimum
// window size and the size of the close box carved out of the top-right
// corner of every window.
type Metrics struct {
	MinWidth       int
	MinHeight      int
	CloseBoxWidth  int
	CloseBoxHeight int
}

// DefaultMetrics returns the stock window geometry.
func DefaultMetrics() Metrics {
	return Metrics{
		MinWidth:       MinWindowWidth,
		MinHeight:      MinWindowHeight,
		CloseBoxWidth:  DefaultCloseBoxWidth,
		CloseBoxHeight: DefaultCloseBoxHeight,
	}
}

// closeBoxFor derives the close box rectangle for a window covering bounds.
// The box hugs the top-right corner and is expressed in the same global
// coordinates as the bounds, so no local-to-global conversion is needed
// during hit-testing.
func (m Metrics) closeBoxFor(bounds Rectangle) Rectangle {
	w := m.CloseBoxWidth
	h := m.CloseBoxHeight
	if w <= 0 {
		w = DefaultCloseBoxWidth
	}
	if h <= 0 {
		h = DefaultCloseBoxHeight
	}
	if w > bounds.Width {
		w = bounds.Width
	}
	if h > bounds.Height {
		h = bounds.Height
	}
	return Rectangle{X: bounds.Right() - w, Y: bounds.Y, Width: w, Height: h}
}
