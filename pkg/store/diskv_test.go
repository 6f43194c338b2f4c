package store

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmptyValueIsAnError(t *testing.T) {
	base := t.TempDir()
	p, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	if err := os.WriteFile(filepath.Join(base, KeyTransactions), nil, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	var v []int
	found, err := p.Load(KeyTransactions, &v)
	if err == nil || found {
		t.Fatalf("expected decode error for empty value, got found=%v err=%v", found, err)
	}

	found, err = p.Load(KeyDarkMode, &v)
	if err != nil || found {
		t.Fatalf("missing key: found=%v err=%v", found, err)
	}
}

func TestSaveWritesOutsideBasePath(t *testing.T) {
	base := filepath.Join(t.TempDir(), "ledger.db")
	p, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	if err := p.Save(KeyTransactions, []int{1, 2}); err != nil {
		t.Fatalf("save: %v", err)
	}

	entries, err := os.ReadDir(base)
	if err != nil {
		t.Fatalf("read base: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != KeyTransactions {
		var names []string
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Fatalf("expected only %q under the base path, got %q", KeyTransactions, names)
	}

	tmp := tempDir(base)
	if filepath.Dir(tmp) != filepath.Dir(base) || tmp == base {
		t.Fatalf("temp dir %q is not a sibling of %q", tmp, base)
	}
	var got []int
	if ok, err := p.Load(KeyTransactions, &got); err != nil || !ok || len(got) != 2 {
		t.Fatalf("reload: ok=%v err=%v got=%v", ok, err, got)
	}
}
