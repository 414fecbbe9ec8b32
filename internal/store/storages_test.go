package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-exchange-admin/internal/config"
	"github.com/MKhiriev/go-exchange-admin/internal/logger"
	"github.com/MKhiriev/go-exchange-admin/models"
)

func TestNewDB_EmptyDSN(t *testing.T) {
	_, err := NewDB(context.Background(), config.DB{}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnsupportedDSN)
}

func TestIsPostgresDSN(t *testing.T) {
	assert.True(t, isPostgresDSN("postgres://u:p@localhost:5432/db"))
	assert.True(t, isPostgresDSN("postgresql://localhost/db"))
	assert.False(t, isPostgresDSN("exchange_admin.db"))
	assert.False(t, isPostgresDSN("file:test.db?cache=shared"))
}

// ── SQLite round trip ──

func TestStorages_SQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	cfg := config.Storage{DB: config.DB{DSN: filepath.Join(t.TempDir(), "admin.db")}}

	storages, err := NewStorages(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { storages.Close() })

	require.NoError(t, storages.Ping(ctx))

	_, err = storages.ExchangeUserRepository.CreateUser(ctx, models.ExchangeUser{UID: 100, CreatedBy: "alice"})
	require.NoError(t, err)

	_, err = storages.ExchangeUserRepository.CreateUser(ctx, models.ExchangeUser{UID: 100, CreatedBy: "alice"})
	require.ErrorIs(t, err, ErrUserAlreadyExists)

	first, err := storages.EventRepository.AppendEvent(ctx, models.CommandResult{UID: 100, ResultCode: models.ResultCodeSuccess, Message: "SUCCESS"})
	require.NoError(t, err)
	second, err := storages.EventRepository.AppendEvent(ctx, models.CommandResult{UID: 100, ResultCode: models.ResultCodeUserAlreadyExists, Message: "USER_MGMT_USER_ALREADY_EXISTS"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.Index)
	assert.Greater(t, second.Index, first.Index)

	all, err := storages.EventRepository.ListEventsFrom(ctx, 0, 10)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, models.ResultCodeUserAlreadyExists, all[1].CommandResult.ResultCode)

	tail, err := storages.EventRepository.ListEventsFrom(ctx, second.Index, 10)
	require.NoError(t, err)
	require.Len(t, tail, 1)
	assert.Equal(t, second.Index, tail[0].Index)
}
