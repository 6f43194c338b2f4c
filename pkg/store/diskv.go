package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/peterbourgon/diskv/v3"
)

const (
	// KeyTransactions holds the full local transaction collection.
	KeyTransactions = "transactions"
	// KeyDarkMode holds the display preference.
	KeyDarkMode = "darkMode"
)

// Config is what persistence needs from the loaded configuration.
type Config interface {
	BasePath() string
}

// Persistence defines the key-value contract of the local ledger. Values are
// stored as JSON under flat keys.
type Persistence interface {
	// Load decodes the value stored under key into v. It reports false when
	// nothing is stored. An empty or undecodable value is an error.
	Load(key string, v interface{}) (bool, error)
	Save(key string, v interface{}) error
	Watch(ctx context.Context) (<-chan Event, error)
	BasePath() string
}

// Load creates a Persistence backed by diskv rooted at cfg.BasePath().
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		return nil, errors.New("store: config required")
	}
	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		TempDir:           tempDir(basePath),
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		// No cache: another process may write the same keys.
		CacheSizeMax: 0,
	}), basePath: basePath}, nil
}

// tempDir sits next to the base path so writes land by rename and the
// watcher never sees partial files.
func tempDir(basePath string) string {
	clean := filepath.Clean(basePath)
	return filepath.Join(filepath.Dir(clean), "."+filepath.Base(clean)+".tmp")
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) BasePath() string {
	return p.basePath
}

func (p *persistence) Load(key string, v interface{}) (bool, error) {
	val, err := p.d.Read(key)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("store: read %s: %w", key, err)
	}
	if len(val) == 0 {
		return false, fmt.Errorf("store: decode %s: empty value", key)
	}
	if err := json.Unmarshal(val, v); err != nil {
		return false, fmt.Errorf("store: decode %s: %w", key, err)
	}
	return true, nil
}

func (p *persistence) Save(key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", key, err)
	}
	if err := p.d.Write(key, data); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}

// Keys are stored as files directly under the base path.
func keyToPathTransform(s string) *diskv.PathKey {
	return &diskv.PathKey{
		Path:     []string{},
		FileName: s,
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return pathKey.FileName
}
