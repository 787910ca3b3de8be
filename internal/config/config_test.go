package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.ContextLines != 2 {
		t.Errorf("Default contextLines = %d, want 2", cfg.ContextLines)
	}
	if cfg.Format != "text" {
		t.Errorf("Default format = %q, want %q", cfg.Format, "text")
	}
	if cfg.StoreDir != "" {
		t.Errorf("Default storeDir = %q, want empty (platform default)", cfg.StoreDir)
	}
}

func TestMergeEnv(t *testing.T) {
	t.Setenv("REDLINE_CONTEXT_LINES", "5")
	t.Setenv("REDLINE_FORMAT", "json")
	t.Setenv("REDLINE_STORE_DIR", "/tmp/redline-sessions")

	cfg := Default()
	mergeEnv(&cfg)

	if cfg.ContextLines != 5 {
		t.Errorf("contextLines = %d, want 5", cfg.ContextLines)
	}
	if cfg.Format != "json" {
		t.Errorf("format = %q, want json", cfg.Format)
	}
	if cfg.StoreDir != "/tmp/redline-sessions" {
		t.Errorf("storeDir = %q, want /tmp/redline-sessions", cfg.StoreDir)
	}
}

func TestMergeEnv_InvalidIntIgnored(t *testing.T) {
	t.Setenv("REDLINE_CONTEXT_LINES", "many")
	cfg := Default()
	mergeEnv(&cfg)
	if cfg.ContextLines != 2 {
		t.Errorf("contextLines = %d, want default 2 for non-integer env", cfg.ContextLines)
	}
}

func TestMergeOverrides(t *testing.T) {
	cfg := Default()
	mergeOverrides(&cfg, map[string]string{
		"contextLines": "0",
		"format":       "markdown",
	})

	if cfg.ContextLines != 0 {
		t.Errorf("contextLines = %d, want 0 (flags may force zero context)", cfg.ContextLines)
	}
	if cfg.Format != "markdown" {
		t.Errorf("format = %q, want markdown", cfg.Format)
	}
}

func TestLoad_ClampsNegativeContext(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("REDLINE_CONTEXT_LINES", "-4")

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.ContextLines != 0 {
		t.Errorf("contextLines = %d, want 0 (negatives clamped)", cfg.ContextLines)
	}
}

func TestSaveAndLoadFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := Default()
	cfg.ContextLines = 4
	cfg.Format = "markdown"
	if err := Save(cfg); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	loaded, err := LoadFile()
	if err != nil {
		t.Fatalf("LoadFile error: %v", err)
	}
	if loaded.ContextLines != 4 || loaded.Format != "markdown" {
		t.Errorf("loaded = %+v, want saved values back", loaded)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := LoadFile()
	if err != nil {
		t.Fatalf("LoadFile error for missing file: %v", err)
	}
	if cfg != (Config{}) {
		t.Errorf("LoadFile for missing file = %+v, want zero Config", cfg)
	}
}

func TestLoadFile_Corrupt(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	if err := os.MkdirAll(filepath.Join(dir, "redline"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "redline", "config.json"), []byte("{bad"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFile(); err == nil {
		t.Error("LoadFile should report corrupt config")
	}
}

func TestLoad_Precedence(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	if err := Save(Config{ContextLines: 3, Format: "json"}); err != nil {
		t.Fatal(err)
	}
	t.Setenv("REDLINE_FORMAT", "markdown")

	cfg, err := Load(map[string]string{"contextLines": "7"})
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.ContextLines != 7 {
		t.Errorf("contextLines = %d, want 7 (flag beats file)", cfg.ContextLines)
	}
	if cfg.Format != "markdown" {
		t.Errorf("format = %q, want markdown (env beats file)", cfg.Format)
	}
}

func TestSetField(t *testing.T) {
	cfg := Default()

	if err := SetField(&cfg, "contextLines", "6"); err != nil {
		t.Fatalf("SetField error: %v", err)
	}
	if cfg.ContextLines != 6 {
		t.Errorf("contextLines = %d, want 6", cfg.ContextLines)
	}

	if err := SetField(&cfg, "format", "patch"); err != nil {
		t.Fatalf("SetField error: %v", err)
	}
	if cfg.Format != "patch" {
		t.Errorf("format = %q, want patch", cfg.Format)
	}

	if err := SetField(&cfg, "contextLines", "x"); err == nil {
		t.Error("SetField should reject non-integer contextLines")
	}
	if err := SetField(&cfg, "contextLines", "-1"); err == nil {
		t.Error("SetField should reject negative contextLines")
	}
	if err := SetField(&cfg, "nope", "v"); err == nil {
		t.Error("SetField should reject unknown keys")
	}
}
