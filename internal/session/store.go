// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Karthikeya Naik

// Package session owns the client-side access-key session: a single durable
// key-value entry (one file under the user config directory) plus the
// in-memory state derived from it. It is the only writer of that file.
//
// The store is deliberately network-free: establishing a session is the
// caller's responsibility and happens only after the Vault Service has
// accepted the key.
package session

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"

	"github.com/Karthikeya-Naik/VaultDrop/internal/config"
	"github.com/Karthikeya-Naik/VaultDrop/internal/logger"
)

const (
	configDirName  = "vaultdrop"
	keyFileName    = "access_key"
	keyFileMode    = 0o600
	configDirMode  = 0o700
	lockFileSuffix = ".lock"
)

// Store holds the current session and mirrors it to durable storage.
// All methods are synchronous; the UI is single-threaded, so the only
// concurrency hazard is another process, which the file lock covers.
type Store struct {
	path string
	lock *flock.Flock
	log  *logger.Logger

	key     string
	existed bool
}

// NewStore builds a Store persisting to cfg.KeyFilePath, or to
// <user config dir>/vaultdrop/access_key when the path is empty. The parent
// directory is created if needed.
func NewStore(cfg config.ClientSession, log *logger.Logger) (*Store, error) {
	path := cfg.KeyFilePath
	if path == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("resolve user config dir: %w", err)
		}
		path = filepath.Join(base, configDirName, keyFileName)
	}

	if err := os.MkdirAll(filepath.Dir(path), configDirMode); err != nil {
		return nil, fmt.Errorf("create session dir: %w", err)
	}

	return &Store{
		path: path,
		lock: flock.New(path + lockFileSuffix),
		log:  log,
	}, nil
}

// Restore reads the persisted key, if any, and establishes the in-memory
// session from it. It reports whether a session was restored. Whether the
// vault existed before this session is unknown after a restore, so the
// store assumes it did — the flag only varies empty-state copy and never
// gates access.
func (s *Store) Restore() (bool, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read session file: %w", err)
	}

	key := strings.TrimSpace(string(data))
	if key == "" {
		return false, nil
	}

	s.key = key
	s.existed = true
	s.log.Debug().Msg("session restored from disk")
	return true, nil
}

// Establish sets the active session and persists the key durably. It must
// be called only after the Vault Service accepted the key. On return the
// persisted key and the in-memory key are equal.
func (s *Store) Establish(key string, existed bool) error {
	if err := s.lock.Lock(); err != nil {
		return fmt.Errorf("lock session file: %w", err)
	}
	defer func() { _ = s.lock.Unlock() }()

	if err := os.WriteFile(s.path, []byte(key), keyFileMode); err != nil {
		return fmt.Errorf("persist access key: %w", err)
	}

	s.key = key
	s.existed = existed
	s.log.Debug().Bool("existed", existed).Msg("session established")
	return nil
}

// Clear removes the session from memory and from disk. Idempotent: clearing
// an absent session succeeds.
func (s *Store) Clear() error {
	if err := s.lock.Lock(); err != nil {
		return fmt.Errorf("lock session file: %w", err)
	}
	defer func() { _ = s.lock.Unlock() }()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove session file: %w", err)
	}

	s.key = ""
	s.existed = false
	s.log.Debug().Msg("session cleared")
	return nil
}

// Key returns the active access key, or an empty string when no session is
// active.
func (s *Store) Key() string {
	return s.key
}

// Active reports whether a session is currently established.
func (s *Store) Active() bool {
	return s.key != ""
}

// KeyExisted reports whether the vault for the current key existed before
// this session began. Informational only.
func (s *Store) KeyExisted() bool {
	return s.existed
}
