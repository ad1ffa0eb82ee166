// Copyright © 2026 Winmux contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: wm/window.go
// Summary: Window handler with its selection/close state machine.
// Usage: Windows are registered on a Chain, which delivers messages to them.

package wm

import (
	"fmt"
	"sync/atomic"
)

// nextWindowID hands out unique numeric window IDs.
var nextWindowID atomic.Int64

// windowState tracks where a window is in its lifecycle.
type windowState int

const (
	stateIdle windowState = iota
	stateSelected
	stateClosed
)

// Result is a window's verdict on a delivered message.
type Result struct {
	// Consumed stops the chain from offering the message to later windows.
	Consumed bool
	// CloseRequest asks the owning chain to remove this window.
	CloseRequest bool
}

// Window is a named rectangular region that can consume messages. A window
// is exclusively owned by the chain it is registered on; it keeps no
// back-reference to the chain.
type Window struct {
	id       int64
	name     string
	bounds   Rectangle
	closeBox Rectangle
	state    windowState
}

// NewWindow creates an unselected window with the default metrics. The
// dimensions are clamped up to the minimum window size.
func NewWindow(name string, x, y, width, height int) *Window {
	return NewWindowWithMetrics(name, x, y, width, height, DefaultMetrics())
}

// NewWindowWithMetrics creates a window using explicit geometry constants.
func NewWindowWithMetrics(name string, x, y, width, height int, m Metrics) *Window {
	bounds := NewRectangle(x, y, width, height, m.MinWidth, m.MinHeight)
	return &Window{
		id:       nextWindowID.Add(1),
		name:     name,
		bounds:   bounds,
		closeBox: m.closeBoxFor(bounds),
	}
}

// ID returns the window's unique numeric ID.
func (w *Window) ID() int64 {
	return w.id
}

// Name returns the window's name.
func (w *Window) Name() string {
	return w.name
}

// Bounds returns the window's region.
func (w *Window) Bounds() Rectangle {
	return w.bounds
}

// CloseBox returns the close affordance sub-region.
func (w *Window) CloseBox() Rectangle {
	return w.closeBox
}

// Selected reports whether this window holds the selection.
func (w *Window) Selected() bool {
	return w.state == stateSelected
}

// Closed reports whether this window has been closed. A closed window
// never re-enters a chain.
func (w *Window) Closed() bool {
	return w.state == stateClosed
}

// Process delivers a message to the window and returns whether the window
// consumed it and whether it wants to be removed from its chain.
func (w *Window) Process(msg Message) Result {
	if w.state == stateClosed {
		return Result{}
	}
	switch msg.Kind {
	case ButtonDown:
		return w.handleButtonDown(msg)
	case ButtonUp:
		return w.handleButtonUp(msg)
	case CloseWindow:
		return w.handleClose(msg)
	default:
		return Result{}
	}
}

// handleButtonDown selects the window when hit. Deselecting every other
// window is the chain's job, so a miss is simply not consumed.
func (w *Window) handleButtonDown(msg Message) Result {
	if !w.bounds.Contains(msg.Pos) {
		return Result{}
	}
	w.state = stateSelected
	return Result{Consumed: true}
}

// handleButtonUp only means something to the selected window. A release
// in the close box forwards to the close handler; anywhere else inside
// the bounds the click is absorbed without further action.
func (w *Window) handleButtonUp(msg Message) Result {
	if w.state != stateSelected {
		return Result{}
	}
	if !w.bounds.Contains(msg.Pos) {
		return Result{}
	}
	if w.closeBox.Contains(msg.Pos) {
		return w.handleClose(msg)
	}
	return Result{Consumed: true}
}

func (w *Window) handleClose(Message) Result {
	w.state = stateClosed
	return Result{Consumed: true, CloseRequest: true}
}

// deselect drops the selection if held. Returns true if the state changed.
func (w *Window) deselect() bool {
	if w.state != stateSelected {
		return false
	}
	w.state = stateIdle
	return true
}

// String renders the window the way chain listings print it.
func (w *Window) String() string {
	return fmt.Sprintf("[id=%2d] %q (%s), selected=%v", w.id, w.name, w.bounds, w.Selected())
}
