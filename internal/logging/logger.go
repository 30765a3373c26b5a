// Package logging sets up the logrus logger. The TUI owns the terminal, so
// log output goes to a file.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/feedrank/feedrank/internal/datadir"
)

// DefaultFile is the log file name inside the data directory.
const DefaultFile = "feedrank.log"

// New builds a text logger writing to w at the given level.
func New(w io.Writer, level string) (*logrus.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return &logrus.Logger{
		Out:   w,
		Hooks: make(logrus.LevelHooks),
		Formatter: &logrus.TextFormatter{
			DisableColors: true,
			FullTimestamp: true,
		},
		Level:    lvl,
		ExitFunc: os.Exit,
	}, nil
}

// ParseLevel accepts logrus level names case-insensitively; empty means info.
func ParseLevel(level string) (logrus.Level, error) {
	level = strings.TrimSpace(level)
	if level == "" {
		return logrus.InfoLevel, nil
	}
	lvl, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		return 0, fmt.Errorf("log level: %w", err)
	}
	return lvl, nil
}

// DefaultPath returns <data dir>/feedrank.log.
func DefaultPath() (string, error) {
	return datadir.File(DefaultFile)
}

// Open appends to the log file at path (DefaultPath when empty) and also
// routes the logrus standard logger there. The returned closer closes the
// file.
func Open(path, level string) (*logrus.Logger, io.Closer, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, nil, err
		}
		path = p
	}
	if err := datadir.EnsureParent(path); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	log, err := New(f, level)
	if err != nil {
		f.Close()
		return nil, nil, err
	}

	std := logrus.StandardLogger()
	std.SetOutput(f)
	std.SetFormatter(log.Formatter)
	std.SetLevel(log.Level)

	return log, f, nil
}
