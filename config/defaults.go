// Copyright © 2026 Winmux contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/defaults.go
// Summary: Default values for the winmux configuration file.

package config

func applySystemDefaults(cfg Config) {
	if cfg == nil {
		return
	}
	cfg.RegisterDefaults("window", Section{
		"min_width":        4,
		"min_height":       4,
		"close_box_width":  2,
		"close_box_height": 2,
	})
	cfg.RegisterDefaults("journal", Section{
		"enabled":    false,
		"db_path":    "",
		"batch_size": 50,
	})
	cfg.RegisterDefaults("demo", Section{
		"windows": defaultDemoWindows(),
	})
}

// defaultDemoWindows is the stock three-window layout the demo command
// drives its scripted scenario against.
func defaultDemoWindows() []map[string]interface{} {
	return []map[string]interface{}{
		{"name": "Window 1", "x": 0, "y": 0, "width": 10, "height": 10},
		{"name": "Window 2", "x": 20, "y": 0, "width": 5, "height": 5},
		{"name": "Window 3", "x": 30, "y": 10, "width": 15, "height": 15},
	}
}
