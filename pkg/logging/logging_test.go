package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNewConsole(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{Level: "debug", Console: &buf})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	l.WithField("key", "7").Debug("created")

	var line map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("expected a JSON line, got %q: %v", buf.String(), err)
	}
	for _, k := range []string{"timestamp", "level", "message", "key"} {
		if _, ok := line[k]; !ok {
			t.Fatalf("missing %q in %v", k, line)
		}
	}
	if line["message"] != "created" {
		t.Fatalf("unexpected message %v", line["message"])
	}
}

func TestNewUnknownLevel(t *testing.T) {
	l, err := New(Config{Level: "chatty"})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if l.GetLevel() != logrus.InfoLevel {
		t.Fatalf("expected info level, got %s", l.GetLevel())
	}
}

func TestNewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "ledger.log")
	l, err := New(Config{Level: "info", File: path})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	l.Warn("load failed")
	l.Debug("hidden")
	if err := l.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "load failed") {
		t.Fatalf("expected warning in log file, got %q", data)
	}
	if strings.Contains(string(data), "hidden") {
		t.Fatalf("debug line written at info level")
	}
}
