package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"seely/config"
	deliverycontext "seely/internal/delivery/context"
	"seely/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const defaultGormSlowThreshold = 200 * time.Millisecond

// gormSlogLogger routes GORM output through slog. Every query is logged in debug mode,
// otherwise only failures and slow statements.
type gormSlogLogger struct {
	logger        *slog.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
}

var _ logger.Interface = (*gormSlogLogger)(nil)

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

// log returns the request-scoped logger so queries carry the request_id.
func (l *gormSlogLogger) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, l.logger)
}

func (l *gormSlogLogger) emit(ctx context.Context, min logger.LogLevel, level slog.Level, msg string, format string, args ...any) {
	if l.logger == nil || l.level < min {
		return
	}

	l.log(ctx).LogAttrs(ctx, level, msg, slog.String("message", fmt.Sprintf(format, args...)))
}

func (l *gormSlogLogger) Info(ctx context.Context, format string, args ...any) {
	l.emit(ctx, logger.Info, slog.LevelInfo, "GORM info", format, args...)
}

func (l *gormSlogLogger) Warn(ctx context.Context, format string, args ...any) {
	l.emit(ctx, logger.Warn, slog.LevelWarn, "GORM warn", format, args...)
}

func (l *gormSlogLogger) Error(ctx context.Context, format string, args ...any) {
	l.emit(ctx, logger.Error, slog.LevelError, "GORM error", format, args...)
}

func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	if l.logger == nil || l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)

	var (
		level slog.Level
		msg   string
		extra slog.Attr
	)
	switch {
	// Lookups report misses as ErrRecordNotFound; the repositories map those.
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.level >= logger.Error:
		level, msg, extra = slog.LevelError, "GORM query failed", slog.String("error", err.Error())
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= logger.Warn:
		level, msg, extra = slog.LevelWarn, "GORM slow query", slog.Duration("slowThreshold", l.slowThreshold)
	case l.level >= logger.Info:
		level, msg = slog.LevelInfo, "GORM query"
	default:
		return
	}

	sql, rows := sqlAndRowsFn()
	attrs := []slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	}
	if extra.Key != "" {
		attrs = append(attrs, extra)
	}

	l.log(ctx).LogAttrs(ctx, level, msg, attrs...)
}

// ParamsFilter drops bound values from logged SQL so password hashes never reach the log.
func (l *gormSlogLogger) ParamsFilter(_ context.Context, sql string, _ ...any) (string, []any) {
	return sql, nil
}
