// Package store handles SQLite persistence of reading history.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/verte-zerg/tuiread/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access for session data.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY,
			started_at TEXT NOT NULL,
			ended_at TEXT NOT NULL,
			source TEXT NOT NULL,
			tokens INTEGER NOT NULL,
			start_index INTEGER NOT NULL,
			end_index INTEGER NOT NULL,
			words_shown INTEGER NOT NULL,
			start_wpm INTEGER NOT NULL,
			end_wpm INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_ended_at ON sessions(ended_at);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InsertSession stores a finished reading session.
func (s *Store) InsertSession(ctx context.Context, stats model.SessionStats) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO sessions (started_at, ended_at, source, tokens, start_index, end_index, words_shown, start_wpm, end_wpm, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		stats.StartedAt.Format(time.RFC3339Nano),
		stats.EndedAt.Format(time.RFC3339Nano),
		stats.Source,
		stats.Tokens,
		stats.StartIndex,
		stats.EndIndex,
		stats.WordsShown,
		stats.StartWPM,
		stats.EndWPM,
		stats.DurationMs,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListSessions returns sessions matching cfg, oldest first. Last keeps only
// the most recent N.
func (s *Store) ListSessions(ctx context.Context, cfg model.HistoryConfig) ([]model.SessionAggregate, error) {
	clauses := []string{"1=1"}
	args := []any{}
	if cfg.Since != nil {
		clauses = append(clauses, "ended_at >= ?")
		args = append(args, cfg.Since.Format(time.RFC3339Nano))
	}
	query := fmt.Sprintf(`SELECT id, ended_at, source, tokens, end_index, words_shown, end_wpm, duration_ms
		FROM sessions
		WHERE %s
		ORDER BY ended_at ASC, id ASC`, strings.Join(clauses, " AND "))
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var sessions []model.SessionAggregate
	for rows.Next() {
		var agg model.SessionAggregate
		var endedAt string
		if err := rows.Scan(&agg.SessionID, &endedAt, &agg.Source, &agg.Tokens, &agg.EndIndex, &agg.WordsShown, &agg.EndWPM, &agg.DurationMs); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339Nano, endedAt)
		if err != nil {
			return nil, err
		}
		agg.EndedAt = parsed
		sessions = append(sessions, agg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if cfg.Last > 0 && len(sessions) > cfg.Last {
		sessions = sessions[len(sessions)-cfg.Last:]
	}
	return sessions, nil
}
