// Package store persists the full user graph (users, accounts, nested
// transactions) as a single JSON snapshot file.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/bankbook-dev/bankbook/internal/user"
)

func init() {
	// The snapshot schema records amounts as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Store reads and writes the snapshot at a fixed path.
type Store struct {
	path string
	log  zerolog.Logger
}

// New creates a Store for the given snapshot path.
func New(path string, log zerolog.Logger) *Store {
	return &Store{path: path, log: log}
}

// Path returns the snapshot path.
func (s *Store) Path() string {
	return s.path
}

// Save writes all users to the snapshot. The write is atomic: a temp file
// in the same directory is renamed over the previous snapshot, so a crash
// mid-write cannot corrupt it.
func (s *Store) Save(users []*user.User) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	exports := make([]user.Export, len(users))
	for i, u := range users {
		exports[i] = u.Export()
	}

	tmp := s.path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("creating snapshot temp file: %w", err)
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(exports); err != nil {
		f.Close()
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing snapshot temp file: %w", err)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replacing snapshot: %w", err)
	}
	return nil
}

// Load reads all users from the snapshot. A missing file is an empty
// ledger, not an error. A user whose snapshot fails to parse is logged and
// skipped so one bad record does not block the rest of the load.
func (s *Store) Load() ([]*user.User, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening snapshot: %w", err)
	}
	defer f.Close()

	var exports []user.Export
	if err := json.NewDecoder(f).Decode(&exports); err != nil {
		return nil, fmt.Errorf("decoding snapshot %s: %w", s.path, err)
	}

	var users []*user.User
	for i, e := range exports {
		u, err := user.FromExport(e)
		if err != nil {
			s.log.Warn().Err(err).Int("index", i).Int("user_id", e.UserID).
				Msg("skipping unreadable user snapshot")
			continue
		}
		users = append(users, u)
	}
	return users, nil
}
