package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"drivesafe/config"
	deliverycontext "drivesafe/internal/delivery/context"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestGormLogger(debug bool) (*gormSlogLogger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	l := newGormSlogLogger(slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), cfg)

	return l.(*gormSlogLogger), buf
}

func sqlFn(sql string) func() (string, int64) {
	return func() (string, int64) { return sql, 1 }
}

func TestGormSlogLogger_Trace(t *testing.T) {
	t.Run("query error", func(t *testing.T) {
		l, buf := newTestGormLogger(false)
		l.Trace(context.Background(), time.Now(), sqlFn("INSERT INTO accidents"), errors.New("boom"))

		assert.Contains(t, buf.String(), "GORM query failed")
		assert.Contains(t, buf.String(), "INSERT INTO accidents")
	})

	t.Run("record not found is quiet", func(t *testing.T) {
		l, buf := newTestGormLogger(false)
		l.Trace(context.Background(), time.Now(), sqlFn("SELECT 1"), gorm.ErrRecordNotFound)

		assert.Empty(t, buf.String())
	})

	t.Run("slow query", func(t *testing.T) {
		l, buf := newTestGormLogger(false)
		l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn("SELECT pg_sleep(1)"), nil)

		assert.Contains(t, buf.String(), "GORM slow query")
	})

	t.Run("fast query only in debug", func(t *testing.T) {
		l, buf := newTestGormLogger(false)
		l.Trace(context.Background(), time.Now(), sqlFn("SELECT 1"), nil)
		assert.Empty(t, buf.String())

		l, buf = newTestGormLogger(true)
		l.Trace(context.Background(), time.Now(), sqlFn("SELECT 1"), nil)
		assert.Contains(t, buf.String(), "GORM query")
	})

	t.Run("silent", func(t *testing.T) {
		l, buf := newTestGormLogger(true)
		l.LogMode(logger.Silent).Trace(context.Background(), time.Now(), sqlFn("SELECT 1"), errors.New("boom"))

		assert.Empty(t, buf.String())
	})
}

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	l, base := newTestGormLogger(false)

	scoped := &bytes.Buffer{}
	ctx := deliverycontext.WithLogger(context.Background(),
		slog.New(slog.NewJSONHandler(scoped, nil)).With(slog.String("request_id", "req-7")))

	l.Trace(ctx, time.Now(), sqlFn("UPDATE notifications"), errors.New("boom"))

	assert.Empty(t, base.String())
	assert.Contains(t, scoped.String(), "req-7")
}
