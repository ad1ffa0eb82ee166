// Copyright © 2026 Winmux contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: journal/journal.go
// Summary: SQLite-backed dispatch journal with async batched writes.
//
// Records every message sent through a chain together with its outcome,
// plus chain lifecycle events. The chain itself is never persisted; the
// journal is an append-only record of traffic.

package journal

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"winmux/wm"
)

// Entry is one recorded dispatch or chain event.
type Entry struct {
	At       time.Time
	Kind     string
	X        int
	Y        int
	Consumed bool
	// Window names the consuming or affected window, empty if none.
	Window string
}

// Config holds journal tuning knobs.
type Config struct {
	// DBPath is the path to the SQLite database file.
	DBPath string

	// BatchSize is the number of entries to accumulate before flushing.
	// Default: 50
	BatchSize int

	// BatchTimeout is how long to wait before flushing a partial batch.
	// Default: 2s
	BatchTimeout time.Duration

	// ChannelBuffer is the size of the async write channel.
	// Default: 256
	ChannelBuffer int
}

// DefaultConfig returns sensible defaults.
func DefaultConfig(dbPath string) Config {
	return Config{
		DBPath:        dbPath,
		BatchSize:     50,
		BatchTimeout:  2 * time.Second,
		ChannelBuffer: 256,
	}
}

const journalSchema = `
CREATE TABLE IF NOT EXISTS dispatches (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    at INTEGER NOT NULL,              -- UnixNano
    kind TEXT NOT NULL,
    x INTEGER NOT NULL DEFAULT 0,
    y INTEGER NOT NULL DEFAULT 0,
    consumed INTEGER NOT NULL DEFAULT 0,
    window TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_dispatches_at ON dispatches(at);
`

// Journal records chain traffic to SQLite. Writes are batched on a
// background goroutine; Flush forces pending entries to disk.
type Journal struct {
	config Config
	db     *sql.DB

	batchChan chan Entry
	stopCh    chan struct{}
	doneCh    chan struct{}
	flushCh   chan chan struct{}

	closeOnce sync.Once
	mu        sync.Mutex
}

// New opens (or creates) a journal at the given path.
func New(dbPath string) (*Journal, error) {
	return NewWithConfig(DefaultConfig(dbPath))
}

// NewWithConfig opens a journal with custom configuration.
func NewWithConfig(config Config) (*Journal, error) {
	if config.BatchSize <= 0 {
		config.BatchSize = 50
	}
	if config.BatchTimeout <= 0 {
		config.BatchTimeout = 2 * time.Second
	}
	if config.ChannelBuffer <= 0 {
		config.ChannelBuffer = 256
	}

	dir := filepath.Dir(config.DBPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	dsn := config.DBPath +
		"?_pragma=journal_mode(WAL)" +
		"&_pragma=synchronous(NORMAL)" +
		"&_pragma=temp_store(MEMORY)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if _, err := db.Exec(journalSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	j := &Journal{
		config:    config,
		db:        db,
		batchChan: make(chan Entry, config.ChannelBuffer),
		stopCh:    make(chan struct{}),
		doneCh:    make(chan struct{}),
		flushCh:   make(chan chan struct{}),
	}

	go j.batchWriter()

	return j, nil
}

// Record queues an entry for writing. A zero At is stamped with the
// current time.
func (j *Journal) Record(e Entry) {
	if e.At.IsZero() {
		e.At = time.Now()
	}
	select {
	case j.batchChan <- e:
	case <-j.stopCh:
	}
}

// RecordMessage queues a dispatch outcome.
func (j *Journal) RecordMessage(msg wm.Message, consumed bool, window string) {
	j.Record(Entry{
		Kind:     msg.Kind.String(),
		X:        msg.Pos.X,
		Y:        msg.Pos.Y,
		Consumed: consumed,
		Window:   window,
	})
}

// OnEvent implements wm.Listener so the journal can subscribe to a
// chain's event dispatcher and record lifecycle changes.
func (j *Journal) OnEvent(event wm.Event) {
	entry := Entry{Kind: "event:" + event.Type.String()}
	if payload, ok := event.Payload.(wm.WindowPayload); ok {
		entry.Window = payload.Name
	}
	j.Record(entry)
}

// Flush blocks until all pending entries are written.
func (j *Journal) Flush() {
	done := make(chan struct{})
	select {
	case j.flushCh <- done:
		<-done
	case <-j.stopCh:
	}
}

// Close flushes pending writes and closes the database.
func (j *Journal) Close() error {
	j.closeOnce.Do(func() {
		close(j.stopCh)
	})
	<-j.doneCh
	return j.db.Close()
}

// Recent returns up to limit entries, newest first.
func (j *Journal) Recent(limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 50
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	rows, err := j.db.Query(
		"SELECT at, kind, x, y, consumed, window FROM dispatches ORDER BY at DESC, id DESC LIMIT ?",
		limit)
	if err != nil {
		return nil, fmt.Errorf("query journal: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var at int64
		var consumed int
		if err := rows.Scan(&at, &e.Kind, &e.X, &e.Y, &consumed, &e.Window); err != nil {
			return nil, fmt.Errorf("scan journal row: %w", err)
		}
		e.At = time.Unix(0, at)
		e.Consumed = consumed != 0
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// batchWriter runs in a background goroutine, batching entries and
// flushing them periodically.
func (j *Journal) batchWriter() {
	defer close(j.doneCh)

	batch := make([]Entry, 0, j.config.BatchSize)
	timer := time.NewTimer(j.config.BatchTimeout)
	defer timer.Stop()

	flush := func() {
		if len(batch) == 0 {
			return
		}
		j.flushBatch(batch)
		batch = batch[:0]
	}

	for {
		select {
		case entry := <-j.batchChan:
			batch = append(batch, entry)
			if len(batch) >= j.config.BatchSize {
				flush()
				timer.Reset(j.config.BatchTimeout)
			}

		case <-timer.C:
			flush()
			timer.Reset(j.config.BatchTimeout)

		case done := <-j.flushCh:
			// Manual flush request - drain channel first
			draining := true
			for draining {
				select {
				case entry := <-j.batchChan:
					batch = append(batch, entry)
				default:
					draining = false
				}
			}
			flush()
			close(done)

		case <-j.stopCh:
			// Drain channel and flush before exit
			for {
				select {
				case entry := <-j.batchChan:
					batch = append(batch, entry)
				default:
					flush()
					return
				}
			}
		}
	}
}

// flushBatch writes a batch of entries in a single transaction.
func (j *Journal) flushBatch(batch []Entry) {
	if len(batch) == 0 {
		return
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	tx, err := j.db.Begin()
	if err != nil {
		log.Printf("Journal: Failed to begin transaction: %v", err)
		return
	}

	stmt, err := tx.Prepare("INSERT INTO dispatches (at, kind, x, y, consumed, window) VALUES (?, ?, ?, ?, ?, ?)")
	if err != nil {
		log.Printf("Journal: Failed to prepare statement: %v", err)
		tx.Rollback()
		return
	}
	defer stmt.Close()

	for _, e := range batch {
		consumed := 0
		if e.Consumed {
			consumed = 1
		}
		if _, err := stmt.Exec(e.At.UnixNano(), e.Kind, e.X, e.Y, consumed, e.Window); err != nil {
			log.Printf("Journal: Failed to insert entry: %v", err)
			tx.Rollback()
			return
		}
	}

	if err := tx.Commit(); err != nil {
		log.Printf("Journal: Failed to commit batch: %v", err)
	}
}
