// Package datastore persists a single JSON document on disk with atomic
// writes, post-write verification and rotating backups.
package datastore

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// ErrNotExist is returned by Read when the document has never been written.
var ErrNotExist = errors.New("datastore: document does not exist")

// Config holds configuration options for a File.
type Config struct {
	FilePath    string
	BackupCount int // Number of backup files to keep
}

// DefaultConfig returns a default configuration.
func DefaultConfig(filePath string) Config {
	return Config{
		FilePath:    filePath,
		BackupCount: 3,
	}
}

// File is a whole-document store. It is safe for concurrent use.
type File struct {
	mu           sync.Mutex
	config       Config
	lastChecksum string // checksum of last read or written content
}

// New creates a File, making sure its directory exists.
func New(config Config) (*File, error) {
	if config.FilePath == "" {
		return nil, fmt.Errorf("datastore: file path cannot be empty")
	}
	if err := os.MkdirAll(filepath.Dir(config.FilePath), 0o755); err != nil {
		return nil, fmt.Errorf("datastore: create directory: %w", err)
	}
	return &File{config: config}, nil
}

// Path returns the document path.
func (f *File) Path() string { return f.config.FilePath }

// Read returns the current document.
func (f *File) Read() ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.config.FilePath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotExist
	}
	if err != nil {
		return nil, fmt.Errorf("datastore: read: %w", err)
	}
	f.lastChecksum = checksum(data)
	return data, nil
}

// Write replaces the document. Writing unchanged content is a no-op.
func (f *File) Write(data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	sum := checksum(data)
	if sum == f.lastChecksum {
		return nil
	}

	if f.config.BackupCount > 0 {
		if err := f.createBackup(); err != nil {
			log.Warn().Str("component", "datastore").Err(err).Msg("Failed to create backup")
		}
	}

	if err := f.writeFileAtomic(data); err != nil {
		return err
	}
	if err := f.verifyFile(sum); err != nil {
		return fmt.Errorf("datastore: verification failed: %w", err)
	}

	f.lastChecksum = sum
	return nil
}

// Backups lists the backup files, oldest first.
func (f *File) Backups() []string {
	matches, err := filepath.Glob(f.config.FilePath + ".backup.*")
	if err != nil {
		return nil
	}
	slices.Sort(matches)
	return matches
}

// writeFileAtomic writes to a temporary file, syncs it and renames it over
// the document.
func (f *File) writeFileAtomic(data []byte) error {
	tmp := f.config.FilePath + ".tmp"

	file, err := os.OpenFile(tmp, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("datastore: open temp file: %w", err)
	}
	if _, err := file.Write(data); err != nil {
		file.Close()
		os.Remove(tmp)
		return fmt.Errorf("datastore: write temp file: %w", err)
	}
	if err := file.Sync(); err != nil {
		file.Close()
		os.Remove(tmp)
		return fmt.Errorf("datastore: sync temp file: %w", err)
	}
	if err := file.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("datastore: close temp file: %w", err)
	}

	if err := os.Rename(tmp, f.config.FilePath); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("datastore: rename temp file: %w", err)
	}
	return nil
}

func (f *File) verifyFile(want string) error {
	actual, err := os.ReadFile(f.config.FilePath)
	if err != nil {
		return err
	}
	if checksum(actual) != want {
		return errors.New("checksum mismatch")
	}
	return nil
}

// createBackup copies the current document to a timestamped backup and
// drops the oldest backups beyond the limit.
func (f *File) createBackup() error {
	src, err := os.Open(f.config.FilePath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	defer src.Close()

	stamp := time.Now().UTC().Format("20060102_150405.000000000")
	dst, err := os.Create(f.config.FilePath + ".backup." + stamp)
	if err != nil {
		return err
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return err
	}
	if err := dst.Close(); err != nil {
		return err
	}

	f.cleanupOldBackups()
	return nil
}

// cleanupOldBackups relies on the timestamp suffix sorting chronologically.
func (f *File) cleanupOldBackups() {
	backups := f.Backups()
	for len(backups) > f.config.BackupCount {
		if err := os.Remove(backups[0]); err != nil {
			log.Warn().Str("component", "datastore").Err(err).Str("file", backups[0]).Msg("Failed to remove old backup")
		}
		backups = backups[1:]
	}
}

func checksum(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
