// Package store is the persistence layer: a SQLite file holding the question
// catalog, the append-only answer log, and the experience ledger. Repositories
// expose typed access; everything above the store works in domain types.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store holds the bun handle and provides access to repositories.
type Store struct {
	sqldb *sql.DB
	db    *bun.DB
}

// Open connects to the SQLite database at dsn, applies the recommended
// pragmas, creates missing tables, and seeds the question catalog when it is
// empty.
func Open(dsn string) (*Store, error) {
	sqldb, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(sqldb); err != nil {
		sqldb.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	db := bun.NewDB(sqldb, sqlitedialect.New())

	ctx := context.Background()
	if err := createTables(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	if err := seedQuestions(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("seed questions: %w", err)
	}

	return &Store{sqldb: sqldb, db: db}, nil
}

// DB returns the underlying bun handle for raw queries.
func (s *Store) DB() *bun.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Questions returns the question catalog repository.
func (s *Store) Questions() *QuestionRepo {
	return &QuestionRepo{db: s.db}
}

// Answers returns the answer log repository.
func (s *Store) Answers() *AnswerRepo {
	return &AnswerRepo{db: s.db}
}

// Experience returns the experience ledger repository.
func (s *Store) Experience() *ExperienceRepo {
	return &ExperienceRepo{db: s.db}
}

// ResetUser erases one player's answer history and experience grants. The
// question catalog is untouched.
func (s *Store) ResetUser(ctx context.Context, userID string) error {
	if _, err := s.db.NewDelete().Model((*AnswerRow)(nil)).Where("user_id = ?", userID).Exec(ctx); err != nil {
		return fmt.Errorf("clear answer log: %w", err)
	}
	if _, err := s.db.NewDelete().Model((*ExperienceRow)(nil)).Where("user_id = ?", userID).Exec(ctx); err != nil {
		return fmt.Errorf("clear experience log: %w", err)
	}
	return nil
}

func createTables(ctx context.Context, db *bun.DB) error {
	models := []any{
		(*QuestionRow)(nil),
		(*AnswerRow)(nil),
		(*ExperienceRow)(nil),
	}
	for _, m := range models {
		if _, err := db.NewCreateTable().Model(m).IfNotExists().Exec(ctx); err != nil {
			return err
		}
	}
	return nil
}

// applyPragmas configures SQLite for optimal single-user performance.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. QUIZDUNGEON_DB environment variable
// 2. $XDG_DATA_HOME/quizdungeon/quizdungeon.db
// 3. ~/.local/share/quizdungeon/quizdungeon.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("QUIZDUNGEON_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "quizdungeon", "quizdungeon.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
