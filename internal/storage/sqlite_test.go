package storage_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/hearthledger/backend/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func connect(t *testing.T) *storage.SQLite {
	t.Helper()

	s, err := storage.Connect(filepath.Join(t.TempDir(), "finance.db"))
	require.Nil(t, err, "database initialization failed")

	t.Cleanup(func() {
		_ = s.Close()
	})

	return s
}

func TestLoadWithoutSnapshot(t *testing.T) {
	s := connect(t)

	_, err := s.Load(context.Background())
	assert.ErrorIs(t, err, storage.ErrNoSnapshot)
}

func TestSaveAndLoad(t *testing.T) {
	s := connect(t)
	ctx := context.Background()

	require.Nil(t, s.Save(ctx, []byte(`{"profile":{}}`)))

	data, err := s.Load(ctx)
	require.Nil(t, err)
	assert.Equal(t, `{"profile":{}}`, string(data))

	// A second save overwrites, it does not append
	require.Nil(t, s.Save(ctx, []byte(`{"projects":[]}`)))

	data, err = s.Load(ctx)
	require.Nil(t, err)
	assert.Equal(t, `{"projects":[]}`, string(data))
}

func TestClear(t *testing.T) {
	s := connect(t)
	ctx := context.Background()

	// Clearing an empty store works
	assert.Nil(t, s.Clear(ctx))

	require.Nil(t, s.Save(ctx, []byte(`{}`)))
	require.Nil(t, s.Clear(ctx))

	_, err := s.Load(ctx)
	assert.ErrorIs(t, err, storage.ErrNoSnapshot)

	// Clear is idempotent
	assert.Nil(t, s.Clear(ctx))
}

func TestPing(t *testing.T) {
	s := connect(t)
	assert.Nil(t, s.Ping(context.Background()))
}
