package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	applog "atelier/internal/log"
)

const slowQueryThreshold = 200 * time.Millisecond

// gormLogger routes GORM output through the application logger.
type gormLogger struct {
	level         logger.LogLevel
	slowThreshold time.Duration
}

func newGormLogger() *gormLogger {
	return &gormLogger{level: logger.Warn, slowThreshold: slowQueryThreshold}
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	clone := *l
	clone.level = level
	return &clone
}

func (l *gormLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	if l.level >= logger.Info {
		applog.Info(ctx, fmt.Sprintf(msg, args...), "component", "gorm")
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	if l.level >= logger.Warn {
		applog.Warn(ctx, fmt.Sprintf(msg, args...), "component", "gorm")
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	if l.level >= logger.Error {
		applog.Error(ctx, fmt.Sprintf(msg, args...), "component", "gorm")
	}
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	switch {
	case err != nil && l.level >= logger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		sql, rows := fc()
		applog.Error(ctx, "query failed", "component", "gorm", "error", err, "sql", sql, "rows", rows, "elapsed", elapsed.String())
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= logger.Warn:
		sql, rows := fc()
		applog.Warn(ctx, "slow query", "component", "gorm", "sql", sql, "rows", rows, "elapsed", elapsed.String())
	case l.level >= logger.Info:
		sql, rows := fc()
		applog.Debug(ctx, "query", "component", "gorm", "sql", sql, "rows", rows, "elapsed", elapsed.String())
	}
}
