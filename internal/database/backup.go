package database

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"tablero/internal/config"
)

// BackupService copies the sqlite file to a snapshot directory on an
// interval and prunes snapshots past retention.
type BackupService struct {
	dbPath   string
	config   config.BackupConfig
	interval time.Duration
	logger   *zerolog.Logger
}

func NewBackupService(dbPath string, cfg config.BackupConfig, interval time.Duration, logger *zerolog.Logger) *BackupService {
	return &BackupService{dbPath: dbPath, config: cfg, interval: interval, logger: logger}
}

// Start runs until the context is cancelled. The first snapshot is taken
// immediately.
func (s *BackupService) Start(ctx context.Context) {
	if !s.config.Enabled {
		s.logger.Info().Msg("backup service disabled")
		return
	}

	s.logger.Info().Dur("interval", s.interval).Msg("backup service started")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	if err := s.PerformBackup(); err != nil {
		s.logger.Error().Err(err).Msg("initial backup failed")
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.PerformBackup(); err != nil {
				s.logger.Error().Err(err).Msg("scheduled backup failed")
			}
			s.CleanupOldBackups()
		}
	}
}

// PerformBackup writes one timestamped snapshot of the database file.
func (s *BackupService) PerformBackup() error {
	if _, err := os.Stat(s.config.Path); os.IsNotExist(err) {
		if err := os.MkdirAll(s.config.Path, 0o755); err != nil {
			return fmt.Errorf("create backup directory: %w", err)
		}
	}

	timestamp := time.Now().Format("20060102_150405")
	backupPath := filepath.Join(s.config.Path, fmt.Sprintf("tablero_%s.db", timestamp))

	s.logger.Info().Str("path", backupPath).Msg("performing database backup")

	source, err := os.Open(s.dbPath)
	if err != nil {
		return err
	}
	defer source.Close()

	destination, err := os.Create(backupPath)
	if err != nil {
		return err
	}
	defer destination.Close()

	if _, err = io.Copy(destination, source); err != nil {
		return err
	}

	s.logger.Info().Msg("backup completed")
	return nil
}

// CleanupOldBackups removes snapshots older than the retention window.
func (s *BackupService) CleanupOldBackups() {
	if s.config.RetentionDays <= 0 {
		return
	}

	files, err := os.ReadDir(s.config.Path)
	if err != nil {
		s.logger.Error().Err(err).Msg("read backup directory for cleanup")
		return
	}

	cutoff := time.Now().AddDate(0, 0, -s.config.RetentionDays)

	for _, file := range files {
		if file.IsDir() {
			continue
		}
		info, err := file.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			s.logger.Info().Str("file", file.Name()).Msg("deleting old backup")
			os.Remove(filepath.Join(s.config.Path, file.Name()))
		}
	}
}
