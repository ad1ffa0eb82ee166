// Copyright © 2026 Winmux contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/types.go
// Summary: Typed access helpers for config store data.

package config

import (
	"encoding/json"
	"strconv"
)

// Section returns the named section or nil if missing.
func (c Config) Section(sectionName string) Section {
	if c == nil {
		return nil
	}
	if sectionName == "" {
		return Section(c)
	}
	if raw, ok := c[sectionName]; ok {
		switch v := raw.(type) {
		case Section:
			return v
		case map[string]interface{}:
			return Section(v)
		}
	}
	return nil
}

// RegisterDefaults ensures a section has defaults without overwriting existing keys.
func (c Config) RegisterDefaults(sectionName string, defaults Section) {
	if c == nil || defaults == nil {
		return
	}
	section := c.Section(sectionName)
	if section == nil {
		section = make(Section)
		if sectionName == "" {
			for k, v := range defaults {
				if _, ok := c[k]; !ok {
					c[k] = v
				}
			}
			return
		}
		c[sectionName] = section
	}

	for key, value := range defaults {
		if _, ok := section[key]; !ok {
			section[key] = value
		}
	}
}

// GetString retrieves a string value from the config.
func (c Config) GetString(sectionName, key, defaultValue string) string {
	return c.Section(sectionName).GetString(key, defaultValue)
}

// GetInt retrieves an integer value from the config.
func (c Config) GetInt(sectionName, key string, defaultValue int) int {
	return c.Section(sectionName).GetInt(key, defaultValue)
}

// GetBool retrieves a boolean value from the config.
func (c Config) GetBool(sectionName, key string, defaultValue bool) bool {
	return c.Section(sectionName).GetBool(key, defaultValue)
}

// GetMapList retrieves a list of maps from the config, e.g. the demo
// window layout. Entries that are not maps are skipped.
func (c Config) GetMapList(sectionName, key string) []Section {
	section := c.Section(sectionName)
	if section == nil {
		return nil
	}
	raw, ok := section[key]
	if !ok {
		return nil
	}

	var out []Section
	appendEntry := func(entry interface{}) {
		switch v := entry.(type) {
		case Section:
			out = append(out, v)
		case map[string]interface{}:
			out = append(out, Section(v))
		}
	}

	switch list := raw.(type) {
	case []interface{}:
		for _, entry := range list {
			appendEntry(entry)
		}
	case []Section:
		out = append(out, list...)
	case []map[string]interface{}:
		for _, entry := range list {
			out = append(out, Section(entry))
		}
	}
	return out
}

// GetString retrieves a string from the section.
func (s Section) GetString(key, defaultValue string) string {
	if s == nil {
		return defaultValue
	}
	if val, ok := s[key]; ok {
		if strVal, ok := val.(string); ok {
			return strVal
		}
	}
	return defaultValue
}

// GetInt retrieves an integer from the section.
func (s Section) GetInt(key string, defaultValue int) int {
	if s == nil {
		return defaultValue
	}
	if val, ok := s[key]; ok {
		switch v := val.(type) {
		case int:
			return v
		case float64:
			return int(v)
		case float32:
			return int(v)
		case json.Number:
			if parsed, err := v.Int64(); err == nil {
				return int(parsed)
			}
		case string:
			if parsed, err := strconv.Atoi(v); err == nil {
				return parsed
			}
		}
	}
	return defaultValue
}

// GetBool retrieves a boolean from the section.
func (s Section) GetBool(key string, defaultValue bool) bool {
	if s == nil {
		return defaultValue
	}
	if val, ok := s[key]; ok {
		switch v := val.(type) {
		case bool:
			return v
		case string:
			if parsed, err := strconv.ParseBool(v); err == nil {
				return parsed
			}
		case json.Number:
			if parsed, err := v.Int64(); err == nil {
				return parsed != 0
			}
		case float64:
			return v != 0
		case int:
			return v != 0
		}
	}
	return defaultValue
}
