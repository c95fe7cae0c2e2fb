// Package gormlog adapts GORM statement logging to slog.
package gormlog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"food/config"
	deliverycontext "food/internal/delivery/context"
	"food/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const defaultSlowThreshold = 200 * time.Millisecond

type slogLogger struct {
	base          *slog.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
}

// New returns a GORM logger writing through base. Debug mode logs every statement.
func New(base *slog.Logger, cfg *config.Config) logger.Interface {
	level := logger.Warn
	if cfg != nil && cfg.Env.Debug {
		level = logger.Info
	}

	return &slogLogger{
		base:          base,
		level:         level,
		slowThreshold: defaultSlowThreshold,
	}
}

func (l *slogLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *slogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.log(ctx, logger.Info, slog.LevelInfo, msg, args...)
}

func (l *slogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.log(ctx, logger.Warn, slog.LevelWarn, msg, args...)
}

func (l *slogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.log(ctx, logger.Error, slog.LevelError, msg, args...)
}

// Trace logs failed statements, slow statements and, at Info level, every statement.
// Record-not-found is expected by the repositories and never logged as a failure.
func (l *slogLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.base == nil || l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)

	switch {
	case err != nil && l.level >= logger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		attrs := append(l.statementAttrs(ctx, fc, elapsed), slog.String("error", err.Error()))
		l.base.LogAttrs(ctx, slog.LevelError, "GORM query failed", attrs...)
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= logger.Warn:
		attrs := append(l.statementAttrs(ctx, fc, elapsed), slog.Duration("slowThreshold", l.slowThreshold))
		l.base.LogAttrs(ctx, slog.LevelWarn, "GORM slow query", attrs...)
	case l.level >= logger.Info:
		l.base.LogAttrs(ctx, slog.LevelDebug, "GORM query", l.statementAttrs(ctx, fc, elapsed)...)
	}
}

func (l *slogLogger) log(ctx context.Context, threshold logger.LogLevel, level slog.Level, msg string, args ...any) {
	if l.base == nil || l.level < threshold {
		return
	}

	l.base.LogAttrs(ctx, level, "GORM "+level.String(), slog.String("message", fmt.Sprintf(msg, args...)))
}

func (l *slogLogger) statementAttrs(ctx context.Context, fc func() (string, int64), elapsed time.Duration) []slog.Attr {
	sql, rows := fc()

	attrs := make([]slog.Attr, 0, 5)
	attrs = append(attrs,
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	)
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		attrs = append(attrs, slog.String("request_id", requestID))
	}

	return attrs
}
