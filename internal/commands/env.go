package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/bankbook-dev/bankbook/internal/auditlog"
	"github.com/bankbook-dev/bankbook/internal/config"
	"github.com/bankbook-dev/bankbook/internal/store"
	"github.com/bankbook-dev/bankbook/internal/user"
)

// env bundles what every subcommand needs: the resolved project directory,
// its config, the snapshot store, and a logger.
type env struct {
	dir   string
	cfg   *config.Config
	store *store.Store
	log   zerolog.Logger
}

// loadEnv resolves the --dir flag and wires up config, store, and logger.
// A missing config file falls back to defaults so read-only commands work
// in an uninitialized directory.
func loadEnv(cmd *cobra.Command) (*env, error) {
	dir, err := cmd.Flags().GetString("dir")
	if err != nil {
		return nil, err
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	cfg, err := config.Load(filepath.Join(absDir, config.FileName))
	if errors.Is(err, fs.ErrNotExist) {
		cfg = config.Default()
	} else if err != nil {
		return nil, err
	}

	logger := newLogger(cfg.Log.Level)
	st := store.New(filepath.Join(absDir, cfg.Data.File), logger)

	return &env{dir: absDir, cfg: cfg, store: st, log: logger}, nil
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}

// audit records one command outcome. Audit failures are logged, never
// fatal: the ledger mutation already happened.
func (e *env) audit(userID int, action, details string, opErr error) {
	if !e.cfg.Audit.Enabled {
		return
	}
	outcome := "ok"
	if opErr != nil {
		outcome = opErr.Error()
	}
	entry := auditlog.NewEntry(userID, action, details, outcome)
	if err := auditlog.Append(e.dir, []auditlog.Entry{entry}); err != nil {
		e.log.Warn().Err(err).Msg("appending audit log")
	}
}

// findUser locates a user by id in the loaded snapshot.
func findUser(users []*user.User, id int) (*user.User, error) {
	for _, u := range users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, fmt.Errorf("user %d not found", id)
}
