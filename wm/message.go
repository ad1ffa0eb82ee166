// Copyright © 2026 Winmux contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: wm/message.go
// Summary: Message value type passed through the handler chain.

package wm

import "fmt"

// MessageKind identifies the kind of a message.
type MessageKind int

const (
	// ButtonDown is a pointer button press at a position.
	ButtonDown MessageKind = iota
	// ButtonUp is a pointer button release at a position.
	ButtonUp
	// CloseWindow asks the receiving window to close.
	CloseWindow
)

// String returns the kind's name.
func (k MessageKind) String() string {
	switch k {
	case ButtonDown:
		return "ButtonDown"
	case ButtonUp:
		return "ButtonUp"
	case CloseWindow:
		return "Close"
	default:
		return fmt.Sprintf("MessageKind(%d)", int(k))
	}
}

// Message is an immutable value carrying a kind and a position. Messages
// flow through a chain but are never stored by it.
type Message struct {
	Kind MessageKind
	Pos  Position
}

// NewMessage constructs a message.
func NewMessage(kind MessageKind, x, y int) Message {
	return Message{Kind: kind, Pos: Position{X: x, Y: y}}
}

// String renders the message as "Kind at (x,y)".
func (m Message) String() string {
	return fmt.Sprintf("%s at %s", m.Kind, m.Pos)
}
