// Package logging builds the process-wide slog logger.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

const (
	FormatText = "text"
	FormatJSON = "json"

	timeFormat = "2006-01-02T15:04:05.000Z07:00"
)

type Config struct {
	Level  string // debug, info, warn, error
	Format string // text or json
	File   string // optional, appended to
}

func (c *Config) Validate() error {
	if _, err := ParseLevel(c.Level); err != nil {
		return err
	}

	switch strings.ToLower(c.Format) {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("unknown log format %q", c.Format)
	}

	return nil
}

func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
	return level, nil
}

// Setup builds a logger writing to stdout, plus LOG_FILE when configured.
// The returned closer releases the log file and is safe to call when no file is open.
func Setup(config *Config) (*slog.Logger, func() error, error) {
	return setup(config, os.Stdout)
}

func setup(config *Config, stdout io.Writer) (*slog.Logger, func() error, error) {
	if err := config.Validate(); err != nil {
		return nil, nil, err
	}
	level, _ := ParseLevel(config.Level)

	handlers := []slog.Handler{consoleHandler(stdout, level, config.Format)}
	closer := func() error { return nil }

	if config.File != "" {
		if err := os.MkdirAll(filepath.Dir(config.File), 0o755); err != nil {
			return nil, nil, fmt.Errorf("create log directory: %w", err)
		}

		file, err := os.OpenFile(config.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}

		handlers = append(handlers, slog.NewTextHandler(file, &slog.HandlerOptions{Level: level}))
		closer = file.Close
	}

	return slog.New(newFanoutHandler(handlers...)), closer, nil
}

func consoleHandler(w io.Writer, level slog.Level, format string) slog.Handler {
	if strings.EqualFold(format, FormatJSON) {
		return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	}

	return tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: timeFormat,
		NoColor:    !isTerminal(w),
	})
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
