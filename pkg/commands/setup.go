package commands

import (
	"os"

	"github.com/muesli/termenv"

	"tableflip.dev/ledger/pkg/app"
	"tableflip.dev/ledger/pkg/config"
	"tableflip.dev/ledger/pkg/logging"
)

// loadConfig reads the config file and environment, then applies --mode.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := global.Apply(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadService opens the configured ledger. Logs go to the configured file, or
// to stderr for the CLI. The UI owns the terminal and never logs to it.
func loadService(ui bool) (*app.Service, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	lc := logging.Config{Level: cfg.LogLevel, File: cfg.LogFile}
	if !ui && cfg.LogFile == "" {
		lc.Console = os.Stderr
	}
	log, err := logging.New(lc)
	if err != nil {
		return nil, nil, err
	}

	svc, err := app.New(app.Options{
		Config:  cfg,
		Ambient: termenv.HasDarkBackground,
		Log:     log,
	})
	if err != nil {
		_ = log.Close()
		return nil, nil, err
	}
	return svc, func() { _ = log.Close() }, nil
}
