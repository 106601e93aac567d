package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dezh-tech/immortal/pkg/logger"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// gormAdapter routes gorm's logging through the global logger.
type gormAdapter struct {
	level         gormLogger.LogLevel
	slowThreshold time.Duration
}

func newGormLogger(slowThreshold time.Duration) gormLogger.Interface {
	return &gormAdapter{
		level:         gormLogger.Warn,
		slowThreshold: slowThreshold,
	}
}

func (l *gormAdapter) LogMode(level gormLogger.LogLevel) gormLogger.Interface {
	adapter := *l
	adapter.level = level

	return &adapter
}

func (l *gormAdapter) Info(_ context.Context, msg string, data ...any) {
	if l.level >= gormLogger.Info {
		logger.Info(fmt.Sprintf(msg, data...))
	}
}

func (l *gormAdapter) Warn(_ context.Context, msg string, data ...any) {
	if l.level >= gormLogger.Warn {
		logger.Warn(fmt.Sprintf(msg, data...))
	}
}

func (l *gormAdapter) Error(_ context.Context, msg string, data ...any) {
	if l.level >= gormLogger.Error {
		logger.Error(fmt.Sprintf(msg, data...))
	}
}

func (l *gormAdapter) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gormLogger.Silent {
		return
	}

	elapsed := time.Since(begin)

	switch {
	case err != nil && l.level >= gormLogger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		sql, rows := fc()
		logger.Error("query failed", "sql", sql, "rows", rows, "elapsed", elapsed.String(), "err", err)
	case l.slowThreshold != 0 && elapsed > l.slowThreshold && l.level >= gormLogger.Warn:
		sql, rows := fc()
		logger.Warn("slow query", "sql", sql, "rows", rows, "elapsed", elapsed.String())
	case l.level >= gormLogger.Info:
		sql, rows := fc()
		logger.Debug("query", "sql", sql, "rows", rows, "elapsed", elapsed.String())
	}
}
