package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"bakery/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolWatcher_Sample(t *testing.T) {
	var buf bytes.Buffer
	samples := []sql.DBStats{
		{WaitCount: 4, WaitDuration: 10 * time.Millisecond},
		{WaitCount: 6, WaitDuration: 20 * time.Millisecond, OpenConnections: 5, InUse: 5},
		{WaitCount: 8, WaitDuration: 120 * time.Millisecond, OpenConnections: 5, InUse: 5},
	}
	w := &poolWatcher{
		logger: slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})),
		stats: func() sql.DBStats {
			next := samples[0]
			samples = samples[1:]
			return next
		},
		prev: sql.DBStats{WaitCount: 4, WaitDuration: 10 * time.Millisecond},
	}

	w.sample(context.Background())
	assert.Empty(t, buf.String(), "no new waiters")

	w.sample(context.Background())
	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "waits=2")
	assert.Contains(t, buf.String(), "avgWait=5ms")

	buf.Reset()
	w.sample(context.Background())
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "waited=100ms")
}

func TestMigrate_Disabled(t *testing.T) {
	db, mock := newMockDB(t)
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	require.NoError(t, migrate(db, nil, logger))
	require.NoError(t, migrate(db, &config.BakeryConfig{AutoMigrate: false}, logger))
	assert.NoError(t, mock.ExpectationsWereMet())
}
