// Copyright © 2026 Winmux contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: wm/driver_tcell.go
// Summary: Terminal driver abstraction and its tcell implementation.
// Usage: The interactive command polls a driver for pointer input.

package wm

import "github.com/gdamore/tcell/v2"

// ScreenDriver is the terminal surface pointer input is read from. It
// exists so tests can drive the event loop without a real terminal.
type ScreenDriver interface {
	Init() error
	Fini()
	Size() (int, int)
	EnableMouse()
	PollEvent() tcell.Event
}

// TcellScreenDriver adapts a tcell.Screen to the ScreenDriver interface.
type TcellScreenDriver struct {
	screen tcell.Screen
}

// NewTcellScreenDriver wraps the provided screen.
func NewTcellScreenDriver(screen tcell.Screen) *TcellScreenDriver {
	return &TcellScreenDriver{screen: screen}
}

// NewDefaultScreenDriver allocates a tcell screen for the current terminal.
func NewDefaultScreenDriver() (*TcellScreenDriver, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewTcellScreenDriver(screen), nil
}

func (d *TcellScreenDriver) Init() error {
	return d.screen.Init()
}

func (d *TcellScreenDriver) Fini() {
	d.screen.Fini()
}

func (d *TcellScreenDriver) Size() (int, int) {
	return d.screen.Size()
}

func (d *TcellScreenDriver) EnableMouse() {
	d.screen.EnableMouse()
}

func (d *TcellScreenDriver) PollEvent() tcell.Event {
	return d.screen.PollEvent()
}
