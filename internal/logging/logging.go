// Package logging builds the diagnostic logger. The terminal belongs to the
// UI, so records go to a file; API credentials are masked before writing.
package logging

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"regexp"
	"strings"

	"github.com/m-mizutani/masq"
)

// apiKeyInlinePattern matches "api_key=<value>" fragments inside free text
var apiKeyInlinePattern = regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`)

// New creates a text logger writing to w at the given level.
// Unrecognized levels default to info.
func New(level string, w io.Writer) *slog.Logger {
	lvl := parseLevel(level)
	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl == slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// OpenFile opens (or creates) the log file and returns a logger on it.
// The standard library logger is redirected to the same file.
func OpenFile(path, level string) (*slog.Logger, io.Closer, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file %s: %w", path, err)
	}
	log.SetOutput(f)
	return New(level, f), f, nil
}

// Discard returns a logger that drops every record
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	return masq.New(
		masq.WithFieldName("api_key"),
		masq.WithFieldName("key"),
		masq.WithFieldName("x-rapidapi-key"),
		masq.WithFieldPrefix("secret"),
		masq.WithRegex(apiKeyInlinePattern),
	)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
