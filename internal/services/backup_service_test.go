package services_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/isdelr/bloglist-be/internal/database"
	"github.com/isdelr/bloglist-be/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackupService_CreateBackup(t *testing.T) {
	db := newTestDB(t)
	backupDir := t.TempDir()
	svc := services.NewBackupService(db, nil, backupDir, 7)

	path, err := svc.CreateBackup()
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	// The snapshot is itself a usable database.
	snapshot, err := database.New(path)
	require.NoError(t, err)
	defer snapshot.Close()

	var count int
	require.NoError(t, snapshot.QueryRow("SELECT COUNT(*) FROM users").Scan(&count))
	assert.Equal(t, 0, count)
}

func TestBackupService_PruneKeepsMostRecent(t *testing.T) {
	db := newTestDB(t)
	backupDir := t.TempDir()
	svc := services.NewBackupService(db, nil, backupDir, 2)

	// Pre-seed stale backups older than anything CreateBackup will produce.
	for _, name := range []string{"bloglist-20200101-000000.db", "bloglist-20200102-000000.db"} {
		require.NoError(t, os.WriteFile(filepath.Join(backupDir, name), []byte("stale"), 0644))
	}

	path, err := svc.CreateBackup()
	require.NoError(t, err)

	entries, err := os.ReadDir(backupDir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	_, err = os.Stat(path)
	assert.NoError(t, err, "the newest backup must survive pruning")
}
