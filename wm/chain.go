// Copyright © 2026 Winmux contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: wm/chain.go
// Summary: Ordered handler chain with first-consumer-wins message dispatch.
// Usage: Construct with NewChain, register windows, then Send messages.
// Notes: Traversal order is registration order, never geometric order.

package wm

import (
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrDuplicateName is returned when registering a window whose name is
	// already present in the chain.
	ErrDuplicateName = errors.New("wm: duplicate window name")
	// ErrWindowClosed is returned when registering a window that has
	// already been closed.
	ErrWindowClosed = errors.New("wm: window already closed")
	// ErrNilWindow is returned when registering a nil window.
	ErrNilWindow = errors.New("wm: nil window")
)

// WindowState is a read-only view of one chain entry, in chain order.
type WindowState struct {
	ID       int64
	Name     string
	Bounds   Rectangle
	Selected bool
}

// Chain owns an ordered collection of windows and dispatches messages to
// them in registration order until one consumes the message.
//
// The contract is single-threaded: one logical owner drives all
// Register/Unregister/Send calls. The mutex guards list structure so that
// an embedding mistake corrupts nothing, the same way the handler list is
// locked in comparable window systems, but overlapping Send calls are not
// defined behavior.
type Chain struct {
	mu      sync.Mutex
	windows []*Window
	events  *EventDispatcher
}

// NewChain creates an empty chain.
func NewChain() *Chain {
	return &Chain{
		windows: make([]*Window, 0),
		events:  NewEventDispatcher(),
	}
}

// Events returns the dispatcher collaborators subscribe to for chain
// lifecycle notifications.
func (c *Chain) Events() *EventDispatcher {
	return c.events
}

// Register appends a window to the end of the chain. Names must be unique
// within the chain; a duplicate fails loudly and leaves the chain
// untouched, since collaborators rely on name-based lookup.
func (c *Chain) Register(w *Window) error {
	if w == nil {
		return ErrNilWindow
	}
	if w.Closed() {
		return fmt.Errorf("register %q: %w", w.name, ErrWindowClosed)
	}

	c.mu.Lock()
	for _, existing := range c.windows {
		if existing.name == w.name {
			c.mu.Unlock()
			return fmt.Errorf("register %q: %w", w.name, ErrDuplicateName)
		}
	}
	c.windows = append(c.windows, w)
	c.mu.Unlock()

	c.events.Broadcast(Event{Type: EventChainChanged, Payload: WindowPayload{ID: w.id, Name: w.name}})
	return nil
}

// Unregister removes the named window if present. Removing an unknown
// name is a silent no-op, so cleanup stays idempotent.
func (c *Chain) Unregister(name string) {
	c.mu.Lock()
	payload, removed := c.removeLocked(name)
	c.mu.Unlock()

	if removed {
		c.events.Broadcast(Event{Type: EventChainChanged, Payload: payload})
	}
}

// removeLocked removes the named window preserving the order of the rest.
// Caller must hold c.mu.
func (c *Chain) removeLocked(name string) (WindowPayload, bool) {
	for i, w := range c.windows {
		if w.name == name {
			c.windows = append(c.windows[:i], c.windows[i+1:]...)
			return WindowPayload{ID: w.id, Name: w.name}, true
		}
	}
	return WindowPayload{}, false
}

// Send walks the chain in registration order, offering the message to
// each window until one consumes it. Returns whether any window consumed
// the message; an unconsumed message is dropped, not an error.
//
// A window may request its own removal while processing (the close
// transition). The traversal runs over the order captured when Send began,
// and the removal is applied right after that window's consumption
// decision, so the requesting window still reports its consumption and no
// other window is skipped or revisited within the same call.
func (c *Chain) Send(msg Message) bool {
	c.mu.Lock()
	order := make([]*Window, len(c.windows))
	copy(order, c.windows)
	c.mu.Unlock()

	consumed := false
	var consumer *Window
	for _, w := range order {
		if w.Closed() {
			continue
		}
		res := w.Process(msg)
		if res.CloseRequest {
			c.mu.Lock()
			c.removeLocked(w.name)
			c.mu.Unlock()
			c.events.Broadcast(Event{Type: EventWindowClosed, Payload: WindowPayload{ID: w.id, Name: w.name}})
		}
		if res.Consumed {
			consumed = true
			consumer = w
			break
		}
	}

	if msg.Kind == ButtonDown {
		c.applySelection(consumer)
	}
	return consumed
}

// applySelection enforces the at-most-one-selected invariant after a
// ButtonDown dispatch: every window other than the consumer (which may be
// nil for a click on empty space) drops the selection.
func (c *Chain) applySelection(selected *Window) {
	c.mu.Lock()
	order := make([]*Window, len(c.windows))
	copy(order, c.windows)
	c.mu.Unlock()

	for _, w := range order {
		if w == selected {
			continue
		}
		if w.deselect() {
			c.events.Broadcast(Event{Type: EventWindowDeselected, Payload: WindowPayload{ID: w.id, Name: w.name}})
		}
	}
	if selected != nil {
		c.events.Broadcast(Event{Type: EventWindowSelected, Payload: WindowPayload{ID: selected.id, Name: selected.name}})
	}
}

// Snapshot returns the chain's windows in order with their selection
// flags. The result holds no references into the chain.
func (c *Chain) Snapshot() []WindowState {
	c.mu.Lock()
	defer c.mu.Unlock()

	states := make([]WindowState, 0, len(c.windows))
	for _, w := range c.windows {
		states = append(states, WindowState{
			ID:       w.id,
			Name:     w.name,
			Bounds:   w.bounds,
			Selected: w.Selected(),
		})
	}
	return states
}

// Len returns the number of registered windows.
func (c *Chain) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.windows)
}
