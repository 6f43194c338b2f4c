// Package logging builds the logrus logger shared by the commands and UI.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
)

type Config struct {
	Level string
	// File, when set, receives every log line in addition to Console.
	File string
	// Console is the terminal output; nil means logs go to File only.
	Console io.Writer
}

// Logger is a logrus logger that owns its log file, if any.
type Logger struct {
	*logrus.Logger
	file *os.File
}

// New returns a JSON logger at cfg.Level. An unknown level falls back to info.
func New(cfg Config) (*Logger, error) {
	logger := logrus.New()

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyLevel: "level",
			logrus.FieldKeyMsg:   "message",
		},
	})

	l := &Logger{Logger: logger}

	var outputs []io.Writer
	if cfg.Console != nil {
		outputs = append(outputs, cfg.Console)
	}
	if cfg.File != "" {
		if err := l.openFile(cfg.File); err != nil {
			return nil, err
		}
		outputs = append(outputs, l.file)
	}

	switch len(outputs) {
	case 0:
		logger.SetOutput(io.Discard)
	case 1:
		logger.SetOutput(outputs[0])
	default:
		logger.SetOutput(io.MultiWriter(outputs...))
	}
	return l, nil
}

func (l *Logger) openFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	l.file = file
	return nil
}

// Close closes the log file.
func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}
