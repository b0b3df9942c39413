package database

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/killallgit/podcastr/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize(t *testing.T) {
	tests := []struct {
		name    string
		dbPath  string
		wantErr bool
	}{
		{
			name:   "in-memory database",
			dbPath: ":memory:",
		},
		{
			name:   "file database in nested directory",
			dbPath: filepath.Join(t.TempDir(), "nested", "pages.db"),
		},
		{
			name:   "empty path falls back to memory",
			dbPath: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, err := Initialize(tt.dbPath, false)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, conn)
			defer conn.Close()

			assert.NoError(t, conn.HealthCheck())
		})
	}
}

func TestHealthCheckAfterClose(t *testing.T) {
	conn, err := Initialize(":memory:", false)
	require.NoError(t, err)
	require.NoError(t, conn.Close())

	assert.Error(t, conn.HealthCheck())

	var nilDB *DB
	assert.Error(t, nilDB.HealthCheck())
}

func TestMigrateAndRollback(t *testing.T) {
	conn, err := Initialize(":memory:", false)
	require.NoError(t, err)
	defer conn.Close()

	assert.Equal(t, map[string]bool{"page_cache": false}, conn.TableStatus())

	require.NoError(t, conn.Migrate())
	assert.Equal(t, map[string]bool{"page_cache": true}, conn.TableStatus())

	entry := models.PageCacheEntry{
		Key:       "page:episode:a",
		Value:     []byte(`{"id":"a"}`),
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, conn.Create(&entry).Error)

	// Migrating twice keeps existing rows
	require.NoError(t, conn.Migrate())
	var count int64
	require.NoError(t, conn.Model(&models.PageCacheEntry{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	require.NoError(t, conn.Rollback())
	assert.Equal(t, map[string]bool{"page_cache": false}, conn.TableStatus())
}
