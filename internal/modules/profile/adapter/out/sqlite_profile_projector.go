package out

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"cctune/internal/modules/profile/domain"
	profileout "cctune/internal/modules/profile/port/out"

	_ "modernc.org/sqlite"
)

// SQLiteProfileProjector keeps a flat read model of every profile across
// every settings file. The text files stay the source of truth; this index
// only feeds listings.
type SQLiteProfileProjector struct {
	db *sql.DB
}

func NewSQLiteProfileProjector(dbPath string) (profileout.ProfileIndexProjector, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	projector := &SQLiteProfileProjector{db: db}
	if err := projector.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return projector, nil
}

func (s *SQLiteProfileProjector) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS profiles (
  file_path TEXT NOT NULL,
  name TEXT NOT NULL,
  temperature TEXT NOT NULL,
  white_balance REAL NOT NULL,
  tint REAL NOT NULL,
  updated_at TEXT NOT NULL,
  PRIMARY KEY (file_path, name)
);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create profiles table: %w", err)
	}
	return nil
}

func (s *SQLiteProfileProjector) Reset(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM profiles`); err != nil {
		return fmt.Errorf("reset profiles: %w", err)
	}
	return nil
}

// UpsertFile replaces the file's slice of the index with the document's
// current profiles, dropping entries for profiles that no longer exist.
func (s *SQLiteProfileProjector) UpsertFile(ctx context.Context, doc domain.Document, at time.Time) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM profiles WHERE file_path = ?`, doc.Path); err != nil {
		return fmt.Errorf("clear file rows: %w", err)
	}
	const stmt = `
INSERT INTO profiles (file_path, name, temperature, white_balance, tint, updated_at)
VALUES (?, ?, ?, ?, ?, ?);
`
	stamped := at.UTC().Format(time.RFC3339)
	for _, p := range doc.Profiles() {
		if _, err := tx.ExecContext(ctx, stmt, doc.Path, p.Name, p.Temperature, p.WhiteBalance, p.Tint, stamped); err != nil {
			return fmt.Errorf("insert profile %s: %w", p.Name, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (s *SQLiteProfileProjector) List(ctx context.Context) ([]profileout.IndexRow, error) {
	const query = `
SELECT file_path, name, temperature, white_balance, tint, updated_at
FROM profiles
ORDER BY file_path, name;
`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query profiles: %w", err)
	}
	defer func() { _ = rows.Close() }()

	out := []profileout.IndexRow{}
	for rows.Next() {
		var row profileout.IndexRow
		var stamped string
		if err := rows.Scan(&row.FilePath, &row.Name, &row.Temperature, &row.WhiteBalance, &row.Tint, &stamped); err != nil {
			return nil, fmt.Errorf("scan profile row: %w", err)
		}
		row.UpdatedAt, _ = time.Parse(time.RFC3339, stamped)
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate profiles: %w", err)
	}
	return out, nil
}
