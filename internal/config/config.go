package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"github.com/quillworks/redline/internal/diff"
)

// Config represents the redline configuration.
type Config struct {
	ContextLines int    `json:"contextLines"`
	Format       string `json:"format"`
	StoreDir     string `json:"storeDir,omitempty"`
}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		ContextLines: diff.DefaultContextLines,
		Format:       "text",
	}
}

// ConfigDir returns the platform-appropriate config directory for redline.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "redline"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "redline"), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "redline"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "redline"), nil
	default:
		return filepath.Join(home, ".config", "redline"), nil
	}
}

// ConfigPath returns the full path to the config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// LoadFile loads config from the config file. Returns zero Config and nil
// error if the file doesn't exist.
func LoadFile() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// Save writes the config to the config file.
func Save(cfg Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Load builds the effective config by merging: defaults <- file <- env <-
// overrides. The overrides map comes from CLI flags (only explicitly set
// values should be present).
func Load(overrides map[string]string) (Config, error) {
	cfg := Default()

	fileCfg, err := LoadFile()
	if err != nil {
		return Config{}, err
	}
	mergeFile(&cfg, fileCfg)
	mergeEnv(&cfg)
	mergeOverrides(&cfg, overrides)

	if cfg.ContextLines < 0 {
		cfg.ContextLines = 0
	}
	return cfg, nil
}

func mergeFile(dst *Config, src Config) {
	if src.ContextLines > 0 {
		dst.ContextLines = src.ContextLines
	}
	if src.Format != "" {
		dst.Format = src.Format
	}
	if src.StoreDir != "" {
		dst.StoreDir = src.StoreDir
	}
}

func mergeEnv(cfg *Config) {
	if v := os.Getenv("REDLINE_CONTEXT_LINES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.ContextLines = n
		}
	}
	if v := os.Getenv("REDLINE_FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv("REDLINE_STORE_DIR"); v != "" {
		cfg.StoreDir = v
	}
}

func mergeOverrides(cfg *Config, overrides map[string]string) {
	if overrides == nil {
		return
	}
	if v, ok := overrides["contextLines"]; ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.ContextLines = n
		}
	}
	if v, ok := overrides["format"]; ok && v != "" {
		cfg.Format = v
	}
	if v, ok := overrides["storeDir"]; ok && v != "" {
		cfg.StoreDir = v
	}
}

// SetField sets a single config field by key name. Returns error if the key
// is unknown.
func SetField(cfg *Config, key, value string) error {
	switch key {
	case "contextLines":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("contextLines must be an integer: %w", err)
		}
		if n < 0 {
			return fmt.Errorf("contextLines must be >= 0, got %d", n)
		}
		cfg.ContextLines = n
	case "format":
		cfg.Format = value
	case "storeDir":
		cfg.StoreDir = value
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}
