// Copyright © 2026 Winmux contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: wm/dispatcher.go
// Summary: Chain lifecycle event fan-out to subscribed listeners.
// Usage: External collaborators (journal, status sinks) subscribe via Chain.Events().

package wm

import "sync"

// EventType defines the type of a chain lifecycle event.
type EventType int

const (
	// EventWindowSelected fires when a ButtonDown lands in a window.
	EventWindowSelected EventType = iota
	// EventWindowDeselected fires for each window that loses the selection.
	EventWindowDeselected
	// EventWindowClosed fires when a window closes and leaves the chain.
	EventWindowClosed
	// EventChainChanged fires when chain membership changes by registration
	// or explicit unregistration.
	EventChainChanged
)

// String returns the event type's name.
func (t EventType) String() string {
	switch t {
	case EventWindowSelected:
		return "window-selected"
	case EventWindowDeselected:
		return "window-deselected"
	case EventWindowClosed:
		return "window-closed"
	case EventChainChanged:
		return "chain-changed"
	default:
		return "unknown"
	}
}

// WindowPayload identifies the window an event refers to.
type WindowPayload struct {
	ID   int64
	Name string
}

// Event represents a chain lifecycle notification. It has a type and can
// carry an arbitrary data payload.
type Event struct {
	Type    EventType
	Payload interface{}
}

// Listener is an interface that any component can implement to receive
// chain events.
type Listener interface {
	// OnEvent is the callback method for receiving events.
	OnEvent(event Event)
}

// ListenerFunc adapts a plain function to the Listener interface.
type ListenerFunc func(Event)

// OnEvent calls the wrapped function.
func (f ListenerFunc) OnEvent(event Event) {
	f(event)
}

// EventDispatcher manages a list of listeners and broadcasts events to them.
type EventDispatcher struct {
	mu        sync.RWMutex
	listeners []Listener
}

// NewEventDispatcher creates a new dispatcher.
func NewEventDispatcher() *EventDispatcher {
	return &EventDispatcher{
		listeners: make([]Listener, 0),
	}
}

// Subscribe adds a new listener to receive events.
func (d *EventDispatcher) Subscribe(listener Listener) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.listeners = append(d.listeners, listener)
}

// Unsubscribe removes a listener.
func (d *EventDispatcher) Unsubscribe(listener Listener) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i, l := range d.listeners {
		if l == listener {
			d.listeners = append(d.listeners[:i], d.listeners[i+1:]...)
			break
		}
	}
}

// Broadcast sends an event to all subscribed listeners.
func (d *EventDispatcher) Broadcast(event Event) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, l := range d.listeners {
		l.OnEvent(event)
	}
}
