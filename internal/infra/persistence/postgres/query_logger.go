package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"bakery/config"
	deliverycontext "bakery/internal/delivery/context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const defaultSlowQueryThreshold = 200 * time.Millisecond

// queryLogger sends GORM output to slog. Records go to the request-scoped
// logger when ctx carries one, so statements share the request_id of the
// call that issued them.
type queryLogger struct {
	base *slog.Logger
	mode gormlogger.LogLevel
	slow time.Duration
}

func newQueryLogger(base *slog.Logger, cfg *config.Config) *queryLogger {
	l := &queryLogger{base: base, mode: gormlogger.Warn, slow: defaultSlowQueryThreshold}
	if cfg == nil {
		return l
	}
	if cfg.Env.Debug {
		l.mode = gormlogger.Info
	}
	if cfg.Bakery != nil && cfg.Bakery.SlowQueryThreshold > 0 {
		l.slow = cfg.Bakery.SlowQueryThreshold
	}

	return l
}

func (l *queryLogger) LogMode(mode gormlogger.LogLevel) gormlogger.Interface {
	next := *l
	next.mode = mode

	return &next
}

func (l *queryLogger) Info(ctx context.Context, msg string, args ...any) {
	l.message(ctx, gormlogger.Info, slog.LevelInfo, msg, args)
}

func (l *queryLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.message(ctx, gormlogger.Warn, slog.LevelWarn, msg, args)
}

func (l *queryLogger) Error(ctx context.Context, msg string, args ...any) {
	l.message(ctx, gormlogger.Error, slog.LevelError, msg, args)
}

func (l *queryLogger) message(ctx context.Context, want gormlogger.LogLevel, level slog.Level, msg string, args []any) {
	if l.mode < want {
		return
	}
	if logger := l.logger(ctx); logger != nil {
		logger.LogAttrs(ctx, level, "[DB] "+fmt.Sprintf(msg, args...))
	}
}

// Trace reports failed statements, slow ones, and in debug mode every statement.
// A missing record is an expected outcome of FindByID and is not an error here.
func (l *queryLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	logger := l.logger(ctx)
	if logger == nil || l.mode == gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	var (
		level slog.Level
		msg   string
		extra slog.Attr
	)
	switch {
	case err != nil && l.mode >= gormlogger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		level, msg, extra = slog.LevelError, "[DB] Statement failed", slog.String("error", err.Error())
	case l.slow > 0 && elapsed > l.slow && l.mode >= gormlogger.Warn:
		level, msg, extra = slog.LevelWarn, "[DB] Slow statement", slog.Duration("threshold", l.slow)
	case l.mode >= gormlogger.Info:
		level, msg = slog.LevelInfo, "[DB] Statement"
	default:
		return
	}

	sql, rows := fc()
	attrs := []slog.Attr{
		slog.String("sql", sql),
		slog.Int64("rows", rows),
		slog.Duration("elapsed", elapsed),
	}
	if extra.Key != "" {
		attrs = append(attrs, extra)
	}
	logger.LogAttrs(ctx, level, msg, attrs...)
}

func (l *queryLogger) logger(ctx context.Context) *slog.Logger {
	return deliverycontext.Logger(ctx, l.base)
}
