package theme

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/ledger/pkg/store"
)

func init() {
	color.NoColor = true
}

type testConfig string

func (c testConfig) BasePath() string { return string(c) }

func TestTheme(t *testing.T) {
	p, err := store.Load(testConfig(t.TempDir()))
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	prefs := store.NewPrefs(p, func() bool { return true })

	steps := []struct {
		action Action
		want   string
	}{
		{Show, "theme: dark (from terminal)"},
		{Light, "theme: light"},
		{Toggle, "theme: dark"},
		{Dark, "theme: dark"},
	}
	for _, step := range steps {
		var buf bytes.Buffer
		th := Theme{Prefs: prefs, Action: step.action, Out: &buf}
		if err := th.Do(context.Background()); err != nil {
			t.Fatalf("%q: %v", step.action, err)
		}
		if got := strings.TrimSpace(buf.String()); got != step.want {
			t.Fatalf("%q: got %q, want %q", step.action, got, step.want)
		}
	}
}

func TestParseAction(t *testing.T) {
	if _, err := ParseAction("blue"); err == nil {
		t.Fatalf("expected error for unknown theme")
	}
	if a, err := ParseAction("toggle"); err != nil || a != Toggle {
		t.Fatalf("ParseAction = %q, %v", a, err)
	}
}
