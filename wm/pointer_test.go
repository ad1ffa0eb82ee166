package wm

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestPointerPressAndReleaseEdges(t *testing.T) {
	tr := NewPointerTranslator()

	msgs := tr.Translate(5, 5, tcell.Button1)
	if len(msgs) != 1 || msgs[0].Kind != ButtonDown {
		t.Fatalf("press edge should produce one ButtonDown, got %v", msgs)
	}
	if msgs[0].Pos != (Position{5, 5}) {
		t.Fatalf("position = %v", msgs[0].Pos)
	}

	// Held button, no edge.
	if msgs := tr.Translate(6, 5, tcell.Button1); len(msgs) != 0 {
		t.Fatalf("drag without edge should produce nothing, got %v", msgs)
	}

	msgs = tr.Translate(6, 5, tcell.ButtonNone)
	if len(msgs) != 1 || msgs[0].Kind != ButtonUp {
		t.Fatalf("release edge should produce one ButtonUp, got %v", msgs)
	}
}

func TestPointerIgnoresWheelWithoutDroppingDragState(t *testing.T) {
	tr := NewPointerTranslator()
	tr.Translate(5, 5, tcell.Button1)

	if msgs := tr.Translate(5, 5, tcell.WheelUp); len(msgs) != 0 {
		t.Fatalf("wheel reports should be ignored, got %v", msgs)
	}

	// The button is still considered held, so this release is an edge.
	msgs := tr.Translate(5, 5, tcell.ButtonNone)
	if len(msgs) != 1 || msgs[0].Kind != ButtonUp {
		t.Fatalf("release after wheel should still be detected, got %v", msgs)
	}
}

func TestPointerReset(t *testing.T) {
	tr := NewPointerTranslator()
	tr.Translate(5, 5, tcell.Button1)
	tr.Reset()

	if msgs := tr.Translate(5, 5, tcell.ButtonNone); len(msgs) != 0 {
		t.Fatalf("reset must clear held buttons, got %v", msgs)
	}
}

func TestTranslateEventNil(t *testing.T) {
	tr := NewPointerTranslator()
	if msgs := tr.TranslateEvent(nil); msgs != nil {
		t.Fatalf("nil event should produce nothing, got %v", msgs)
	}
}

func TestTranslateEvent(t *testing.T) {
	tr := NewPointerTranslator()
	ev := tcell.NewEventMouse(22, 1, tcell.Button1, 0)

	msgs := tr.TranslateEvent(ev)
	if len(msgs) != 1 || msgs[0].Kind != ButtonDown || msgs[0].Pos != (Position{22, 1}) {
		t.Fatalf("unexpected translation: %v", msgs)
	}
}
