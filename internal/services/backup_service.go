package services

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const backupPrefix = "bloglist-"

// BackupServiceProvider defines the interface for backup services.
type BackupServiceProvider interface {
	CreateBackup() (string, error)
}

// BackupService snapshots the database into timestamped files, keeping only
// the most recent ones.
type BackupService struct {
	db         *sql.DB
	backupPath string
	keep       int
	eventSvc   EventServiceProvider
}

// NewBackupService creates a new BackupService.
func NewBackupService(db *sql.DB, eventSvc EventServiceProvider, backupPath string, keep int) *BackupService {
	return &BackupService{db: db, backupPath: backupPath, keep: keep, eventSvc: eventSvc}
}

// CreateBackup writes a consistent snapshot of the database to the backup
// directory and prunes old snapshots. Returns the path of the new file.
// VACUUM INTO produces a coherent copy even while writes are in flight.
func (s *BackupService) CreateBackup() (string, error) {
	name := backupPrefix + time.Now().UTC().Format("20060102-150405") + ".db"
	dest := filepath.Join(s.backupPath, name)

	if _, err := s.db.Exec("VACUUM INTO ?", dest); err != nil {
		return "", fmt.Errorf("failed to snapshot database: %w", err)
	}

	if err := s.prune(); err != nil {
		log.Warn().Err(err).Msg("Failed to prune old backups")
	}

	if s.eventSvc != nil {
		if err := s.eventSvc.CreateEvent("backup_created", "info", "Database backup created: "+name); err != nil {
			log.Warn().Err(err).Msg("Failed to record backup event")
		}
	}

	log.Info().Str("path", dest).Msg("Database backup created")
	return dest, nil
}

// prune removes the oldest backups beyond the retention count. Timestamped
// names sort lexically in chronological order.
func (s *BackupService) prune() error {
	entries, err := os.ReadDir(s.backupPath)
	if err != nil {
		return err
	}

	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if !entry.IsDir() && strings.HasPrefix(name, backupPrefix) && strings.HasSuffix(name, ".db") {
			names = append(names, name)
		}
	}
	if len(names) <= s.keep {
		return nil
	}

	sort.Strings(names)
	for _, name := range names[:len(names)-s.keep] {
		if err := os.Remove(filepath.Join(s.backupPath, name)); err != nil {
			return err
		}
	}
	return nil
}
