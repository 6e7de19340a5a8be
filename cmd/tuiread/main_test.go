package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/verte-zerg/tuiread/internal/config"
	"github.com/verte-zerg/tuiread/internal/model"
)

func TestDefaultConfigTemplateDecodes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		t.Fatalf("template should decode: %v", err)
	}
	if cfg.Reader.WPM != nil || cfg.Reader.History != nil {
		t.Fatalf("template values should all be commented out: %+v", cfg.Reader)
	}
}

func TestResolveConfigFlagsOverrideFile(t *testing.T) {
	cmd := newRootCmd()
	if err := cmd.ParseFlags([]string{"--wpm", "700", "--no-history"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	fileWPM, fileStep, fileZen, fileHistory := 300, 25, true, true
	cfg := resolveConfig(cmd, config.FileConfig{Reader: config.ReaderConfig{
		WPM:     &fileWPM,
		Step:    &fileStep,
		Zen:     &fileZen,
		History: &fileHistory,
	}})
	if cfg.WPM != 700 {
		t.Fatalf("flag should win over file, got wpm %d", cfg.WPM)
	}
	if cfg.Step != 25 || !cfg.Zen {
		t.Fatalf("file values should apply when flags are unset: %+v", cfg)
	}
	if cfg.History {
		t.Fatalf("--no-history should disable history")
	}
	if cfg.Jump != defaultJump {
		t.Fatalf("expected default jump, got %d", cfg.Jump)
	}
}

func TestValidateConfig(t *testing.T) {
	if err := validateConfig(model.Config{WPM: 0, Step: 50, Jump: 10}); err != nil {
		t.Fatalf("wpm is clamped later, not rejected: %v", err)
	}
	if err := validateConfig(model.Config{Step: 0, Jump: 10}); err == nil {
		t.Fatalf("expected error for zero step")
	}
	if err := validateConfig(model.Config{Step: 10, Jump: -1}); err == nil {
		t.Fatalf("expected error for negative jump")
	}
}
