package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadFrom(t.TempDir())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Mode != ModeLocal {
		t.Fatalf("expected local mode, got %q", cfg.Mode)
	}
	if !strings.HasSuffix(cfg.Path, ".ledger.db") || strings.HasPrefix(cfg.Path, "~") {
		t.Fatalf("expected expanded store path, got %q", cfg.Path)
	}
	if cfg.APIURL != "http://localhost:3000/api" {
		t.Fatalf("unexpected api url %q", cfg.APIURL)
	}
	if cfg.APITimeout != 10*time.Second {
		t.Fatalf("unexpected timeout %s", cfg.APITimeout)
	}
	if cfg.LogLevel != "info" || cfg.LogFile != "" {
		t.Fatalf("unexpected log settings %q %q", cfg.LogLevel, cfg.LogFile)
	}
	if cfg.Source != "" {
		t.Fatalf("expected no config file, got %q", cfg.Source)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	body := "mode: remote\npath: /var/lib/ledger\napi:\n  url: http://api.test/api\n  timeout: 3s\nlog:\n  level: debug\n"
	if err := os.WriteFile(filepath.Join(dir, ".ledger.yaml"), []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadFrom(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Mode != ModeRemote || cfg.BasePath() != "/var/lib/ledger" {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.APIURL != "http://api.test/api" || cfg.APITimeout != 3*time.Second {
		t.Fatalf("unexpected api settings %+v", cfg)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("unexpected log level %q", cfg.LogLevel)
	}
	if cfg.Source == "" {
		t.Fatalf("expected config source to be reported")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("LEDGER_API_URL", "http://env.test/api")
	t.Setenv("LEDGER_MODE", "remote")

	cfg, err := LoadFrom(t.TempDir())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.APIURL != "http://env.test/api" || cfg.Mode != ModeRemote {
		t.Fatalf("env not applied: %+v", cfg)
	}
}

func TestLoadRejectsUnknownMode(t *testing.T) {
	t.Setenv("LEDGER_MODE", "cloud")
	if _, err := LoadFrom(t.TempDir()); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}

func TestParseMode(t *testing.T) {
	if m, err := ParseMode(" Remote "); err != nil || m != ModeRemote {
		t.Fatalf("ParseMode = %q, %v", m, err)
	}
}
