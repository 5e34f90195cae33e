package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"onduty/config"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const defaultGormSlowThreshold = 200 * time.Millisecond

// gormSlogLogger adapts GORM's logger.Interface onto the shared slog logger
// so query logs land in the same structured stream as the rest of the app.
type gormSlogLogger struct {
	logger        *slog.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
}

func newGormSlogLogger(baseLogger *slog.Logger, cfg *config.Config) logger.Interface {
	level := logger.Warn
	if cfg != nil && cfg.Env.Debug {
		level = logger.Info
	}

	return &gormSlogLogger{
		logger:        baseLogger,
		level:         level,
		slowThreshold: defaultGormSlowThreshold,
	}
}

func (l *gormSlogLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *gormSlogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.log(ctx, slog.LevelInfo, logger.Info, msg, args...)
}

func (l *gormSlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.log(ctx, slog.LevelWarn, logger.Warn, msg, args...)
}

func (l *gormSlogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.log(ctx, slog.LevelError, logger.Error, msg, args...)
}

func (l *gormSlogLogger) log(ctx context.Context, slogLevel slog.Level, gormLevel logger.LogLevel, msg string, args ...any) {
	if l.level < gormLevel || l.logger == nil {
		return
	}

	l.logger.LogAttrs(ctx, slogLevel, "GORM log",
		slog.String("message", fmt.Sprintf(msg, args...)),
	)
}

func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	if l.logger == nil || l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	slow := l.slowThreshold > 0 && elapsed > l.slowThreshold

	// ErrRecordNotFound is an expected outcome for lookups, not a failure.
	failed := err != nil && !errors.Is(err, gorm.ErrRecordNotFound)

	switch {
	case failed && l.level >= logger.Error:
		l.trace(ctx, slog.LevelError, "GORM query failed", sqlAndRowsFn, elapsed,
			slog.String("error", err.Error()))
	case slow && l.level >= logger.Warn:
		l.trace(ctx, slog.LevelWarn, "GORM slow query", sqlAndRowsFn, elapsed,
			slog.Duration("slowThreshold", l.slowThreshold))
	case l.level >= logger.Info:
		l.trace(ctx, slog.LevelInfo, "GORM query", sqlAndRowsFn, elapsed)
	}
}

func (l *gormSlogLogger) trace(ctx context.Context, level slog.Level, msg string, sqlAndRowsFn func() (string, int64), elapsed time.Duration, extra ...slog.Attr) {
	sql, rows := sqlAndRowsFn()
	attrs := append([]slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	}, extra...)

	l.logger.LogAttrs(ctx, level, msg, attrs...)
}
