// Package logging builds the diagnostic logger. User-facing diagnostics
// (skipped patterns and files) are printed by the command itself; this
// logger carries debug and warning records about the run.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/praetorian-inc/linegrep/pkg/config"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New returns a logger writing to stderr, or to a rotating file when
// cfg.File is set. The closer releases the file.
func New(cfg config.LogConfig, stderr io.Writer) (zerolog.Logger, io.Closer, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		return zerolog.Nop(), nopCloser{}, err
	}
	if level == zerolog.NoLevel {
		level = zerolog.WarnLevel
	}

	if cfg.File == "" {
		w := zerolog.ConsoleWriter{Out: stderr, NoColor: true, PartsExclude: []string{zerolog.TimestampFieldName}}
		return zerolog.New(w).Level(level), nopCloser{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.File), 0755); err != nil {
		return zerolog.Nop(), nopCloser{}, err
	}
	rotating := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	}
	return zerolog.New(rotating).Level(level).With().Timestamp().Logger(), rotating, nil
}
