// Package config loads the ledger settings from .ledger.yaml, the LEDGER_*
// environment and defaults.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	KeyMode       = "mode"
	KeyPath       = "path"
	KeyAPIURL     = "api.url"
	KeyAPITimeout = "api.timeout"
	KeyLogLevel   = "log.level"
	KeyLogFile    = "log.file"
)

// Mode selects the backing store.
type Mode string

const (
	ModeLocal  Mode = "local"
	ModeRemote Mode = "remote"
)

func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeLocal, ModeRemote:
		return m, nil
	}
	return "", fmt.Errorf("unknown mode %q, expected local or remote", s)
}

type Config struct {
	Mode       Mode
	Path       string
	APIURL     string
	APITimeout time.Duration
	LogLevel   string
	LogFile    string

	// Source is the config file that was read, or "" when none was found.
	Source string
}

// BasePath is the directory of the local store.
func (c *Config) BasePath() string {
	return c.Path
}

// Load reads .ledger.yaml from $LEDGER_CONFIG_PATH or the working directory.
func Load() (*Config, error) {
	var paths []string
	if override := os.Getenv("LEDGER_CONFIG_PATH"); override != "" {
		paths = append(paths, override)
	}
	paths = append(paths, "./")
	return LoadFrom(paths...)
}

// LoadFrom reads .ledger.yaml from the first of paths that has one. A missing
// file is not an error.
func LoadFrom(paths ...string) (*Config, error) {
	v := viper.New()
	v.SetDefault(KeyMode, string(ModeLocal))
	v.SetDefault(KeyPath, "~/.ledger.db")
	v.SetDefault(KeyAPIURL, "http://localhost:3000/api")
	v.SetDefault(KeyAPITimeout, "10s")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFile, "")

	v.SetConfigName(".ledger") // .yaml is implicit
	v.SetEnvPrefix("LEDGER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	mode, err := ParseMode(v.GetString(KeyMode))
	if err != nil {
		return nil, err
	}
	path, err := homedir.Expand(v.GetString(KeyPath))
	if err != nil {
		return nil, fmt.Errorf("expand %s: %w", KeyPath, err)
	}
	logFile := v.GetString(KeyLogFile)
	if logFile != "" {
		if logFile, err = homedir.Expand(logFile); err != nil {
			return nil, fmt.Errorf("expand %s: %w", KeyLogFile, err)
		}
	}

	return &Config{
		Mode:       mode,
		Path:       path,
		APIURL:     v.GetString(KeyAPIURL),
		APITimeout: v.GetDuration(KeyAPITimeout),
		LogLevel:   v.GetString(KeyLogLevel),
		LogFile:    logFile,
		Source:     v.ConfigFileUsed(),
	}, nil
}
