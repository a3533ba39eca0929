package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"bookmarks/config"
	"bookmarks/internal/errors"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newCapturingGormLogger(cfg *config.Config) (logger.Interface, *bytes.Buffer) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return newGormSlogLogger(base, cfg), &buf
}

func sqlFn(sql string) func() (string, int64) {
	return func() (string, int64) { return sql, 1 }
}

func TestGormSlogLogger_Trace(t *testing.T) {
	t.Run("failed query is logged as error", func(t *testing.T) {
		l, buf := newCapturingGormLogger(&config.Config{})
		l.Trace(context.Background(), time.Now(), sqlFn(`SELECT 1`), errors.New("boom"))

		assert.Contains(t, buf.String(), `"msg":"GORM query failed"`)
		assert.Contains(t, buf.String(), `"component":"gorm"`)
		assert.Contains(t, buf.String(), `"error":"boom"`)
	})

	t.Run("record not found is ignored", func(t *testing.T) {
		l, buf := newCapturingGormLogger(&config.Config{})
		l.Trace(context.Background(), time.Now(), sqlFn(`SELECT 1`), gorm.ErrRecordNotFound)

		assert.Empty(t, buf.String())
	})

	t.Run("slow query uses configured threshold", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.Env.Log.SlowQuery = time.Millisecond
		l, buf := newCapturingGormLogger(cfg)
		l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn(`SELECT pg_sleep(1)`), nil)

		assert.Contains(t, buf.String(), `"msg":"GORM slow query"`)
	})

	t.Run("fast query only logged in debug mode", func(t *testing.T) {
		l, buf := newCapturingGormLogger(&config.Config{})
		l.Trace(context.Background(), time.Now(), sqlFn(`SELECT 1`), nil)
		assert.Empty(t, buf.String())

		cfg := &config.Config{}
		cfg.Env.Debug = true
		l, buf = newCapturingGormLogger(cfg)
		l.Trace(context.Background(), time.Now(), sqlFn(`SELECT 1`), nil)
		assert.Contains(t, buf.String(), `"msg":"GORM query"`)
	})

	t.Run("silent mode logs nothing", func(t *testing.T) {
		l, buf := newCapturingGormLogger(&config.Config{})
		l.LogMode(logger.Silent).Trace(context.Background(), time.Now(), sqlFn(`SELECT 1`), errors.New("boom"))

		assert.Empty(t, buf.String())
	})
}
