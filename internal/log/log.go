package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

var (
	minLevel atomic.Int32
	loggerMu sync.RWMutex
	logger   = newLogger(os.Stdout)
	output   io.Writer = os.Stdout
)

func init() {
	zerolog.TimestampFieldName = "ts"
	zerolog.LevelFieldName = "level"
	zerolog.MessageFieldName = "msg"
	zerolog.ErrorFieldName = "err"
	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerolog.TimestampFunc = func() time.Time { return time.Now().UTC() }
	minLevel.Store(int32(zerolog.InfoLevel))
}

func newLogger(w io.Writer) *zerolog.Logger {
	l := zerolog.New(w).With().Timestamp().Logger()
	return &l
}

// SetLevel updates the minimum logging level accepted by the global logger.
// Supported levels are "debug", "info", "warn", and "error". Values are
// case-insensitive.
func SetLevel(level string) error {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "", "info":
		minLevel.Store(int32(zerolog.InfoLevel))
	case "debug":
		minLevel.Store(int32(zerolog.DebugLevel))
	case "warn", "warning":
		minLevel.Store(int32(zerolog.WarnLevel))
	case "error":
		minLevel.Store(int32(zerolog.ErrorLevel))
	default:
		return fmt.Errorf("unknown log level: %s", level)
	}
	return nil
}

// Enabled reports whether entries at lvl pass the current level.
func Enabled(lvl zerolog.Level) bool {
	return lvl >= zerolog.Level(minLevel.Load())
}

// Logger returns the underlying zerolog logger.
func Logger() *zerolog.Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return logger
}

// SetOutput rebuilds the global logger to write JSON lines to w.
func SetOutput(w io.Writer) {
	if w == nil {
		panic("log: nil writer provided")
	}
	loggerMu.Lock()
	defer loggerMu.Unlock()
	logger = newLogger(w)
	output = w
}

// ReplaceLogger installs a custom zerolog logger.
func ReplaceLogger(l *zerolog.Logger) {
	if l == nil {
		panic("log: nil logger provided")
	}
	loggerMu.Lock()
	defer loggerMu.Unlock()
	logger = l
	output = nil
}

// Info logs a message at the info level using the global logger.
func Info(ctx context.Context, msg string, args ...any) {
	write(ctx, zerolog.InfoLevel, msg, args)
}

// Debug logs a message at the debug level using the global logger.
func Debug(ctx context.Context, msg string, args ...any) {
	write(ctx, zerolog.DebugLevel, msg, args)
}

// Warn logs a message at the warn level using the global logger.
func Warn(ctx context.Context, msg string, args ...any) {
	write(ctx, zerolog.WarnLevel, msg, args)
}

// Error logs a message at the error level using the global logger.
func Error(ctx context.Context, msg string, args ...any) {
	write(ctx, zerolog.ErrorLevel, msg, args)
}

// args are alternating keys and values, as with slog.
func write(ctx context.Context, lvl zerolog.Level, msg string, args []any) {
	if !Enabled(lvl) {
		return
	}
	event := Logger().WithLevel(lvl).Ctx(withContext(ctx))
	if len(args) > 0 {
		event = event.Fields(args)
	}
	event.Msg(msg)
}

func withContext(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}

// Sync flushes the output installed with SetOutput when it supports it.
func Sync() error {
	type syncer interface {
		Sync() error
	}
	loggerMu.RLock()
	out := output
	loggerMu.RUnlock()
	if s, ok := out.(syncer); ok {
		return s.Sync()
	}
	return nil
}
