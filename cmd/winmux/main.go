// Copyright © 2026 Winmux contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/winmux/main.go
// Summary: Winmux command: scripted demo, interactive pointer mode, journal dump.
// Usage: Run `winmux` for the scripted demo, `winmux -interactive` for live input.

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"winmux/config"
	"winmux/journal"
	"winmux/report"
	"winmux/wm"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	fs := flag.NewFlagSet("winmux", flag.ContinueOnError)

	// Mode flags
	interactive := fs.Bool("interactive", false, "Read pointer input from the terminal instead of running the scripted demo")
	dumpJournal := fs.Bool("dump-journal", false, "Print recorded dispatch history and exit")

	// Journal flags
	withJournal := fs.Bool("with-journal", false, "Record dispatches to the journal")
	journalPath := fs.String("journal", "", "SQLite journal path (default: from config)")
	dumpLimit := fs.Int("limit", 20, "Number of entries to print with -dump-journal")

	// Shared flags
	logFile := fs.String("log", "", "Append logs to this file instead of stderr")
	saveConfig := fs.Bool("save-config", false, "Write the effective configuration to disk and exit")

	if err := fs.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	cfg := config.System()
	if err := config.Err(); err != nil {
		log.Printf("Main: Using default config: %v", err)
	}

	if *saveConfig {
		if err := config.SaveSystem(); err != nil {
			return fmt.Errorf("save config: %w", err)
		}
		return nil
	}

	dbPath, err := resolveJournalPath(cfg, *journalPath)
	if err != nil {
		return err
	}

	if *dumpJournal {
		return dumpRecent(dbPath, *dumpLimit)
	}

	var jnl *journal.Journal
	if *withJournal || cfg.GetBool("journal", "enabled", false) {
		jnl, err = journal.NewWithConfig(journalConfigFrom(cfg, dbPath))
		if err != nil {
			return fmt.Errorf("open journal: %w", err)
		}
		defer jnl.Close()
	}

	chain, err := buildChain(cfg)
	if err != nil {
		return err
	}
	if jnl != nil {
		chain.Events().Subscribe(jnl)
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return fmt.Errorf("interactive mode requires a terminal")
		}
		driver, err := wm.NewDefaultScreenDriver()
		if err != nil {
			return fmt.Errorf("open screen: %w", err)
		}
		return runInteractive(chain, jnl, driver)
	}
	return runDemo(chain, jnl)
}

// metricsFromConfig bridges the window section to wm geometry constants.
func metricsFromConfig(cfg config.Config) wm.Metrics {
	defaults := wm.DefaultMetrics()
	return wm.Metrics{
		MinWidth:       cfg.GetInt("window", "min_width", defaults.MinWidth),
		MinHeight:      cfg.GetInt("window", "min_height", defaults.MinHeight),
		CloseBoxWidth:  cfg.GetInt("window", "close_box_width", defaults.CloseBoxWidth),
		CloseBoxHeight: cfg.GetInt("window", "close_box_height", defaults.CloseBoxHeight),
	}
}

// buildChain registers the configured window layout on a fresh chain.
func buildChain(cfg config.Config) (*wm.Chain, error) {
	metrics := metricsFromConfig(cfg)
	chain := wm.NewChain()

	for i, def := range cfg.GetMapList("demo", "windows") {
		name := def.GetString("name", fmt.Sprintf("Window %d", i+1))
		w := wm.NewWindowWithMetrics(name,
			def.GetInt("x", 0),
			def.GetInt("y", 0),
			def.GetInt("width", 0),
			def.GetInt("height", 0),
			metrics)
		if err := chain.Register(w); err != nil {
			return nil, fmt.Errorf("build chain: %w", err)
		}
	}
	return chain, nil
}

// journalConfigFrom applies the journal section's tuning to the stock
// journal configuration.
func journalConfigFrom(cfg config.Config, dbPath string) journal.Config {
	jc := journal.DefaultConfig(dbPath)
	jc.BatchSize = cfg.GetInt("journal", "batch_size", jc.BatchSize)
	return jc
}

func resolveJournalPath(cfg config.Config, flagPath string) (string, error) {
	if flagPath != "" {
		return flagPath, nil
	}
	if path := cfg.GetString("journal", "db_path", ""); path != "" {
		return path, nil
	}
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve journal path: %w", err)
	}
	return filepath.Join(configDir, "winmux", "journal.db"), nil
}

// consumerTracker remembers the window named by the latest selection or
// close event, attributing dispatch outcomes for the journal.
type consumerTracker struct {
	name string
}

func (t *consumerTracker) OnEvent(event wm.Event) {
	if event.Type != wm.EventWindowSelected && event.Type != wm.EventWindowClosed {
		return
	}
	if payload, ok := event.Payload.(wm.WindowPayload); ok {
		t.name = payload.Name
	}
}

func dispatch(chain *wm.Chain, jnl *journal.Journal, tracker *consumerTracker, msg wm.Message) bool {
	tracker.name = ""
	consumed := chain.Send(msg)
	if consumed && tracker.name == "" {
		// Absorbed input raises no event; the selected window took it.
		for _, s := range chain.Snapshot() {
			if s.Selected {
				tracker.name = s.Name
				break
			}
		}
	}
	if jnl != nil {
		jnl.RecordMessage(msg, consumed, tracker.name)
	}
	return consumed
}

// runDemo drives the scripted scenario: select each window in turn, then
// close the second one through its close box.
func runDemo(chain *wm.Chain, jnl *journal.Journal) error {
	tracker := &consumerTracker{}
	chain.Events().Subscribe(tracker)

	fmt.Println("Handler chain demo")
	fmt.Println("Initial windows:")
	report.Write(os.Stdout, chain.Snapshot())

	steps := []wm.Message{
		wm.NewMessage(wm.ButtonDown, 22, 1),
		wm.NewMessage(wm.ButtonUp, 22, 1),
		wm.NewMessage(wm.ButtonDown, 35, 11),
		wm.NewMessage(wm.ButtonUp, 35, 11),
		wm.NewMessage(wm.ButtonDown, 4, 4),
		wm.NewMessage(wm.ButtonUp, 4, 4),
		wm.NewMessage(wm.ButtonDown, 24, 0),
		wm.NewMessage(wm.ButtonUp, 24, 0),
	}

	for _, msg := range steps {
		consumed := dispatch(chain, jnl, tracker, msg)
		target := tracker.name
		if target == "" {
			target = "(none)"
		}
		fmt.Printf("--> %s: consumed=%v window=%s\n", msg, consumed, target)
	}

	fmt.Println("Final windows:")
	report.Write(os.Stdout, chain.Snapshot())

	if jnl != nil {
		jnl.Flush()
	}
	return nil
}

// runInteractive feeds live terminal pointer input into the chain until
// ESC or q is pressed. Nothing is drawn; the terminal is only an input
// source, and dispatch outcomes go to the log.
func runInteractive(chain *wm.Chain, jnl *journal.Journal, driver wm.ScreenDriver) error {
	if err := driver.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer driver.Fini()
	driver.EnableMouse()

	tracker := &consumerTracker{}
	chain.Events().Subscribe(tracker)
	translator := wm.NewPointerTranslator()

	width, height := driver.Size()
	log.Printf("Main: Interactive mode started on %dx%d terminal, %d windows registered", width, height, chain.Len())

	for {
		ev := driver.PollEvent()
		switch tev := ev.(type) {
		case nil:
			return nil
		case *tcell.EventKey:
			if tev.Key() == tcell.KeyEscape || tev.Rune() == 'q' {
				log.Printf("Main: Interactive mode stopped")
				if jnl != nil {
					jnl.Flush()
				}
				return nil
			}
		case *tcell.EventMouse:
			for _, msg := range translator.TranslateEvent(tev) {
				consumed := dispatch(chain, jnl, tracker, msg)
				log.Printf("Dispatch: %s consumed=%v window=%q", msg, consumed, tracker.name)
			}
		}
	}
}

func dumpRecent(dbPath string, limit int) error {
	jnl, err := journal.New(dbPath)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	defer jnl.Close()

	entries, err := jnl.Recent(limit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("journal is empty")
		return nil
	}

	for _, e := range entries {
		window := e.Window
		if window == "" {
			window = "-"
		}
		fmt.Printf("%s  %-22s (%3d,%3d) consumed=%-5v %s\n",
			e.At.Format(time.RFC3339), e.Kind, e.X, e.Y, e.Consumed, window)
	}
	return nil
}
