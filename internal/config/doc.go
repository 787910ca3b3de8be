// Package config loads and merges redline configuration from multiple
// sources.
//
// Precedence (highest to lowest):
//  1. CLI flags
//  2. Environment variables (REDLINE_CONTEXT_LINES, REDLINE_FORMAT,
//     REDLINE_STORE_DIR)
//  3. Config file ($XDG_CONFIG_HOME/redline/config.json)
//  4. Built-in defaults
//
// Use [Load] to obtain a merged [Config], [Save] to write the config file,
// and [SetField] to update a single key.
package config
