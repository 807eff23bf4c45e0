// Package logging builds the process logger.
//
// tcell owns the terminal while the game runs, so nothing is written to
// stdout or stderr. Entries go to a size-rotated log file instead.
package logging

import (
	"io"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/samdwyer/minesweeper/internal/config"
)

// Rotation limits for the log file.
const (
	maxSizeMB  = 5
	maxBackups = 3
	maxAgeDays = 7
)

// New returns a logger configured from cfg. With an empty LogFile the
// logger discards everything.
func New(cfg config.Config) (*logrus.Logger, error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}

	log := logrus.New()
	log.SetOutput(io.Discard)
	log.SetLevel(level)

	if cfg.LogFile == "" {
		return log, nil
	}

	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   cfg.LogFile,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
		Level:      level,
		Formatter: &logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		},
	})
	if err != nil {
		return nil, err
	}
	log.AddHook(hook)

	return log, nil
}
