// Package sqlite implements the repository on an embedded SQLite file.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"chore-app/config"

	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

const createdAtLayout = "2006-01-02T15:04:05.000000000Z07:00"

// SQLite wraps a database/sql handle on a modernc sqlite file.
type SQLite struct {
	baseCtx context.Context
	log     *zap.SugaredLogger
	db      *sql.DB
	cfg     config.SQLiteConfig
	now     func() time.Time
}

// New creates a SQLite repository instance.
func New(ctx context.Context, log *zap.SugaredLogger, cfg *config.Config) *SQLite {
	return &SQLite{
		baseCtx: ctx,
		log:     log.Named("repo.sqlite"),
		cfg:     cfg.SQLite,
		now:     time.Now,
	}
}

// OnStart opens the database file and applies migrations.
func (s *SQLite) OnStart(_ context.Context) error {
	if err := os.MkdirAll(filepath.Dir(s.cfg.Path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
		return fmt.Errorf("create dirs: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", s.cfg.Path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(s.baseCtx); err != nil {
		_ = db.Close()
		return fmt.Errorf("ping sqlite: %w", err)
	}

	if err := goose.SetDialect("sqlite3"); err != nil {
		_ = db.Close()
		return fmt.Errorf("migrate dialect: %w", err)
	}
	if err := goose.UpContext(s.baseCtx, db, s.cfg.MigrationsDir); err != nil {
		_ = db.Close()
		return fmt.Errorf("migrate: %w", err)
	}

	s.db = db
	s.log.Infow("sqlite ready", "path", s.cfg.Path)
	return nil
}

// OnStop closes the database handle.
func (s *SQLite) OnStop(_ context.Context) error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func encodeList(list []string) (string, error) {
	if list == nil {
		list = []string{}
	}
	b, err := json.Marshal(list)
	if err != nil {
		return "", fmt.Errorf("encode list: %w", err)
	}
	return string(b), nil
}

func decodeList(raw string) ([]string, error) {
	list := make([]string, 0)
	if raw == "" {
		return list, nil
	}
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil, fmt.Errorf("decode list: %w", err)
	}
	return list, nil
}

func constraintCode(err error) int {
	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code()
	}
	return 0
}

func isUniqueViolation(err error) bool {
	code := constraintCode(err)
	return code == sqlite3.SQLITE_CONSTRAINT_UNIQUE || code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY
}

func isForeignKeyViolation(err error) bool {
	return constraintCode(err) == sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY
}

func isCheckViolation(err error) bool {
	return constraintCode(err) == sqlite3.SQLITE_CONSTRAINT_CHECK
}
