// Package logging wraps a global zerolog logger.
//
// The TUI owns the terminal, so interactive sessions log to a file (or
// nowhere) while CLI subcommands log to stderr.
package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type Config struct {
	// Level is one of trace, debug, info, warn, error, disabled.
	Level string
	// Format is json or console.
	Format string
	// File receives log output when set. Empty means Output is used.
	File string
	// Output is the fallback writer. Nil discards.
	Output io.Writer
}

var (
	log    zerolog.Logger = zerolog.Nop()
	mu     sync.RWMutex
	closer io.Closer
)

// Init (re)configures the global logger. It returns an error only when the
// log file cannot be opened.
func Init(cfg Config) error {
	mu.Lock()
	defer mu.Unlock()

	if closer != nil {
		_ = closer.Close()
		closer = nil
	}

	out := cfg.Output
	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
			return fmt.Errorf("create log dir: %w", err)
		}
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		out = f
		closer = f
	}
	if out == nil {
		out = io.Discard
	}

	if strings.EqualFold(cfg.Format, "console") {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05", NoColor: cfg.File != ""}
	}

	zerolog.TimeFieldFormat = time.RFC3339
	log = zerolog.New(out).Level(ParseLevel(cfg.Level)).With().Timestamp().Logger()
	return nil
}

// Close releases the log file, if any.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if closer == nil {
		return nil
	}
	err := closer.Close()
	closer = nil
	log = zerolog.Nop()
	return err
}

// ParseLevel maps a level name to a zerolog level. Unknown names mean info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

func Logger() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return log
}

func Warn() *zerolog.Event { l := Logger(); return l.Warn() }

type sessionKey struct{}

// WithSession tags ctx with a short correlation id for one browsing session.
func WithSession(ctx context.Context) context.Context {
	return context.WithValue(ctx, sessionKey{}, uuid.New().String()[:8])
}

// SessionID returns the id stored by WithSession, or "".
func SessionID(ctx context.Context) string {
	id, _ := ctx.Value(sessionKey{}).(string)
	return id
}

// Ctx returns the global logger enriched with the session id found in ctx.
func Ctx(ctx context.Context) *zerolog.Logger {
	l := Logger()
	if id := SessionID(ctx); id != "" {
		l = l.With().Str("session", id).Logger()
	}
	return &l
}
