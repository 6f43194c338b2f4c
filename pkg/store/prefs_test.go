package store

import "testing"

func TestPrefsFallBackToAmbient(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	dark := NewPrefs(p, func() bool { return true })
	if !dark.DarkMode() {
		t.Fatalf("expected ambient dark mode")
	}
	if NewPrefs(p, nil).DarkMode() {
		t.Fatalf("expected light mode without an ambient preference")
	}

	if err := dark.SetDarkMode(false); err != nil {
		t.Fatalf("set: %v", err)
	}
	if dark.DarkMode() {
		t.Fatalf("stored preference should win over ambient")
	}
	if _, ok, err := dark.Stored(); err != nil || !ok {
		t.Fatalf("expected stored preference, got ok=%v err=%v", ok, err)
	}
}

func TestPrefsToggle(t *testing.T) {
	base := t.TempDir()
	p, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	pr := NewPrefs(p, nil)
	got, err := pr.ToggleDarkMode()
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !got {
		t.Fatalf("expected dark after toggling from light")
	}

	reopened, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	if !NewPrefs(reopened, nil).DarkMode() {
		t.Fatalf("toggle not persisted")
	}
}
