package journal

import (
	"path/filepath"
	"testing"
	"time"

	"winmux/wm"
)

func newTestJournal(t *testing.T) *Journal {
	t.Helper()
	j, err := New(filepath.Join(t.TempDir(), "journal.db"))
	if err != nil {
		t.Fatalf("open journal: %v", err)
	}
	t.Cleanup(func() { j.Close() })
	return j
}

func TestRecordAndRecent(t *testing.T) {
	j := newTestJournal(t)

	base := time.Now()
	j.Record(Entry{At: base, Kind: "ButtonDown", X: 22, Y: 1, Consumed: true, Window: "Window 2"})
	j.Record(Entry{At: base.Add(time.Second), Kind: "ButtonUp", X: 22, Y: 1, Consumed: true, Window: "Window 2"})
	j.Flush()

	entries, err := j.Recent(10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	// Newest first.
	if entries[0].Kind != "ButtonUp" || entries[1].Kind != "ButtonDown" {
		t.Fatalf("unexpected order: %v %v", entries[0].Kind, entries[1].Kind)
	}
	if entries[1].X != 22 || entries[1].Y != 1 || !entries[1].Consumed || entries[1].Window != "Window 2" {
		t.Fatalf("entry fields lost: %+v", entries[1])
	}
}

func TestRecordMessage(t *testing.T) {
	j := newTestJournal(t)

	j.RecordMessage(wm.NewMessage(wm.ButtonDown, 4, 4), false, "")
	j.Flush()

	entries, err := j.Recent(1)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Kind != "ButtonDown" || entries[0].Consumed {
		t.Fatalf("unexpected entry: %+v", entries[0])
	}
}

func TestJournalRecordsChainEvents(t *testing.T) {
	j := newTestJournal(t)

	chain := wm.NewChain()
	chain.Events().Subscribe(j)
	if err := chain.Register(wm.NewWindow("Window 1", 0, 0, 10, 10)); err != nil {
		t.Fatal(err)
	}
	chain.Send(wm.NewMessage(wm.CloseWindow, 0, 0))
	j.Flush()

	entries, err := j.Recent(10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected register + close events, got %d: %+v", len(entries), entries)
	}

	kinds := map[string]bool{}
	for _, e := range entries {
		kinds[e.Kind] = true
	}
	if !kinds["event:chain-changed"] || !kinds["event:window-closed"] {
		t.Fatalf("unexpected event kinds: %+v", entries)
	}
}

func TestRecentLimit(t *testing.T) {
	j := newTestJournal(t)

	for i := 0; i < 10; i++ {
		j.Record(Entry{Kind: "ButtonDown", X: i})
	}
	j.Flush()

	entries, err := j.Recent(3)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("limit ignored, got %d entries", len(entries))
	}
}

func TestCloseFlushesPendingEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")
	j, err := New(path)
	if err != nil {
		t.Fatalf("open journal: %v", err)
	}

	j.Record(Entry{Kind: "ButtonDown"})
	if err := j.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := New(path)
	if err != nil {
		t.Fatalf("reopen journal: %v", err)
	}
	defer reopened.Close()

	entries, err := reopened.Recent(10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("pending entry lost on close, got %d entries", len(entries))
	}
}
