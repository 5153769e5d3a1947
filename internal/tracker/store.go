// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tracker persists per-scene word counts and computes running
// totals, per-chapter statistics, and milestone projections.
package tracker

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/story-engine/pkg/types"
)

const (
	indexDir   = "index"
	dbFile     = "counts.db"
	exportFile = "counts.yaml"
)

// Store manages the word-count SQLite database.
type Store struct {
	db      *sql.DB
	dataDir string
}

// NewStore opens or creates the word-count database at
// dataDir/index/counts.db, creating the schema if it does not exist.
func NewStore(cfg types.TrackerConfig) (*Store, error) {
	dbDir := filepath.Join(cfg.DataDir, indexDir)
	if err := os.MkdirAll(dbDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	dbPath := filepath.Join(dbDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, dataDir: cfg.DataDir}

	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS chapters (
			name TEXT PRIMARY KEY,
			pos INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS scene_counts (
			chapter TEXT NOT NULL REFERENCES chapters(name),
			scene INTEGER NOT NULL,
			words INTEGER NOT NULL,
			recorded_at TEXT NOT NULL,
			PRIMARY KEY (chapter, scene)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_scene_counts_chapter ON scene_counts(chapter)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record upserts one scene word count. New chapters are appended to the
// chapter order; re-recording a scene overwrites its count.
func (s *Store) Record(ctx context.Context, chapter string, scene, words int) error {
	if scene < 1 {
		return fmt.Errorf("scene must be positive, got %d", scene)
	}
	if words < 0 {
		return fmt.Errorf("words must be non-negative, got %d", words)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var pos int
	err = tx.QueryRowContext(ctx, `SELECT pos FROM chapters WHERE name = ?`, chapter).Scan(&pos)
	if err == sql.ErrNoRows {
		if err := tx.QueryRowContext(ctx,
			`SELECT COALESCE(MAX(pos), 0) + 1 FROM chapters`,
		).Scan(&pos); err != nil {
			return fmt.Errorf("assigning chapter position: %w", err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO chapters (name, pos) VALUES (?, ?)`, chapter, pos,
		); err != nil {
			return fmt.Errorf("inserting chapter: %w", err)
		}
	} else if err != nil {
		return fmt.Errorf("looking up chapter: %w", err)
	}

	recordedAt := time.Now().UTC().Format(time.RFC3339)
	_, err = tx.ExecContext(ctx,
		`INSERT INTO scene_counts (chapter, scene, words, recorded_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(chapter, scene) DO UPDATE SET
			words=excluded.words, recorded_at=excluded.recorded_at`,
		chapter, scene, words, recordedAt,
	)
	if err != nil {
		return fmt.Errorf("upserting scene count: %w", err)
	}

	return tx.Commit()
}

// Counts returns all recorded counts in chapter order then scene order.
func (s *Store) Counts(ctx context.Context) ([]types.SceneWordCount, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT sc.chapter, sc.scene, sc.words, sc.recorded_at
		 FROM scene_counts sc
		 JOIN chapters c ON c.name = sc.chapter
		 ORDER BY c.pos, sc.scene`)
	if err != nil {
		return nil, fmt.Errorf("querying scene counts: %w", err)
	}
	defer rows.Close()

	var counts []types.SceneWordCount
	for rows.Next() {
		var c types.SceneWordCount
		var recordedAt string
		if err := rows.Scan(&c.Chapter, &c.Scene, &c.Words, &recordedAt); err != nil {
			return nil, fmt.Errorf("scanning scene count: %w", err)
		}
		if t, err := time.Parse(time.RFC3339, recordedAt); err == nil {
			c.RecordedAt = t
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating scene counts: %w", err)
	}

	return counts, nil
}
