// Copyright © 2026 Winmux contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: wm/pointer.go
// Summary: Translates terminal pointer state transitions into chain messages.

package wm

import "github.com/gdamore/tcell/v2"

// PointerTranslator turns raw terminal mouse state into chain messages.
// Terminal mouse reports carry the full button mask on every event, so
// presses and releases are detected as edges against the previous mask.
type PointerTranslator struct {
	prevButtons tcell.ButtonMask
}

// NewPointerTranslator creates a translator with no buttons held.
func NewPointerTranslator() *PointerTranslator {
	return &PointerTranslator{}
}

const wheelMask = tcell.WheelUp | tcell.WheelDown | tcell.WheelLeft | tcell.WheelRight

// Translate converts one mouse report into zero or more messages.
// Wheel reports are ignored without touching the held-button state, since
// they often do not carry held buttons correctly.
func (t *PointerTranslator) Translate(x, y int, buttons tcell.ButtonMask) []Message {
	if buttons&wheelMask != 0 {
		return nil
	}

	prev := t.prevButtons
	t.prevButtons = buttons

	pressed := buttons&tcell.Button1 != 0 && prev&tcell.Button1 == 0
	released := buttons&tcell.Button1 == 0 && prev&tcell.Button1 != 0

	var msgs []Message
	if pressed {
		msgs = append(msgs, NewMessage(ButtonDown, x, y))
	}
	if released {
		msgs = append(msgs, NewMessage(ButtonUp, x, y))
	}
	return msgs
}

// TranslateEvent converts a tcell mouse event.
func (t *PointerTranslator) TranslateEvent(ev *tcell.EventMouse) []Message {
	if ev == nil {
		return nil
	}
	x, y := ev.Position()
	return t.Translate(x, y, ev.Buttons())
}

// Reset clears the held-button state, e.g. after the screen is suspended.
func (t *PointerTranslator) Reset() {
	t.prevButtons = 0
}
