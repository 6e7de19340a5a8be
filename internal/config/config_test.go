package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Reader.WPM != nil || cfg.Reader.Zen != nil {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}

func TestLoadConfigReaderTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := "[reader]\nwpm = 350\nzen = true\n# step = 25\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Reader.WPM == nil || *cfg.Reader.WPM != 350 {
		t.Fatalf("expected wpm 350, got %+v", cfg.Reader.WPM)
	}
	if cfg.Reader.Zen == nil || !*cfg.Reader.Zen {
		t.Fatalf("expected zen true")
	}
	if cfg.Reader.Step != nil {
		t.Fatalf("commented key should stay unset")
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[reader]\nwpm = \"fast\"\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestDefaultPathsFollowXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/cfg")
	t.Setenv("XDG_DATA_HOME", "/tmp/data")
	if got := DefaultConfigPath(); got != filepath.Join("/tmp/cfg", "tuiread", "config.toml") {
		t.Fatalf("unexpected config path %q", got)
	}
	if got := DefaultDBPath(); got != filepath.Join("/tmp/data", "tuiread", "tuiread.db") {
		t.Fatalf("unexpected db path %q", got)
	}
}
