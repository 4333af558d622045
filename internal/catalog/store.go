// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog indexes extracted passage files into a SQLite database
// with FTS5 full-text search, so a fixture set can be queried by keyword
// without the benchmark harness.
package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/benchprep/pkg/types"
)

// Store manages the fixture catalog SQLite database.
type Store struct {
	db         *sql.DB
	cfg        types.CatalogConfig
	maxResults int
}

// NewStore opens or creates the catalog database at cfg.DBPath and
// creates the schema if it does not exist.
func NewStore(cfg types.CatalogConfig) (*Store, error) {
	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating catalog directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", cfg.DBPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening catalog database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{db: db, cfg: cfg, maxResults: maxResults}

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
		`CREATE TABLE IF NOT EXISTS passages (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			seq INTEGER NOT NULL UNIQUE,
			title TEXT NOT NULL,
			question TEXT,
			path TEXT NOT NULL,
			content TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_passages_title ON passages(title)`,
		`CREATE TABLE IF NOT EXISTS indexing_status (
			path TEXT PRIMARY KEY,
			file_mod_time TEXT
		)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	// FTS5 virtual table with triggers for sync.
	var ftsExists int
	if err := s.db.QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name='passages_fts'`,
	).Scan(&ftsExists); err != nil {
		return fmt.Errorf("checking FTS table: %w", err)
	}

	if ftsExists == 0 {
		ftsStatements := []string{
			`CREATE VIRTUAL TABLE passages_fts USING fts5(title, content, content=passages, content_rowid=rowid)`,
			`CREATE TRIGGER passages_ai AFTER INSERT ON passages BEGIN
				INSERT INTO passages_fts(rowid, title, content) VALUES (new.rowid, new.title, new.content);
			END`,
			`CREATE TRIGGER passages_ad AFTER DELETE ON passages BEGIN
				INSERT INTO passages_fts(passages_fts, rowid, title, content) VALUES('delete', old.rowid, old.title, old.content);
			END`,
			`CREATE TRIGGER passages_au AFTER UPDATE ON passages BEGIN
				INSERT INTO passages_fts(passages_fts, rowid, title, content) VALUES('delete', old.rowid, old.title, old.content);
				INSERT INTO passages_fts(rowid, title, content) VALUES (new.rowid, new.title, new.content);
			END`,
		}
		for _, stmt := range ftsStatements {
			if _, err := s.db.Exec(stmt); err != nil {
				return fmt.Errorf("creating FTS infrastructure: %w", err)
			}
		}
	}

	return nil
}

// IngestSummary holds counts from a catalog indexing run.
type IngestSummary struct {
	Indexed int
	Updated int
	Skipped int
	Failed  int
}

// Total returns the number of passage files processed.
func (s IngestSummary) Total() int {
	return s.Indexed + s.Updated + s.Skipped + s.Failed
}

// Ingest reads passage files from the extracted directory and populates
// the database, pairing each passage with its card via the sequence
// number in the filename. Files whose modification time is unchanged
// since the last run are skipped.
func (s *Store) Ingest(ctx context.Context, w io.Writer) (IngestSummary, error) {
	entries, err := os.ReadDir(s.cfg.ExtractedDir)
	if err != nil {
		return IngestSummary{}, fmt.Errorf("reading extracted directory %s: %w", s.cfg.ExtractedDir, err)
	}

	cards, err := loadCards(s.cfg.CardPath)
	if err != nil {
		fmt.Fprintf(w, "warning: %v (titles fall back to filenames)\n", err)
	}

	var summary IngestSummary

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".txt") {
			continue
		}

		select {
		case <-ctx.Done():
			return summary, ctx.Err()
		default:
		}

		name := entry.Name()
		seq, fallbackTitle, ok := parsePassageName(name)
		if !ok {
			fmt.Fprintf(w, "skipped %s (unrecognized name)\n", name)
			summary.Skipped++
			continue
		}

		path := filepath.Join(s.cfg.ExtractedDir, name)

		info, err := entry.Info()
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", name, err)
			summary.Failed++
			continue
		}
		modTime := info.ModTime().UTC().Format(time.RFC3339Nano)

		var storedModTime string
		err = s.db.QueryRowContext(ctx,
			`SELECT file_mod_time FROM indexing_status WHERE path = ?`, path,
		).Scan(&storedModTime)

		if err == nil && storedModTime == modTime {
			fmt.Fprintf(w, "skipped %s\n", name)
			summary.Skipped++
			continue
		}
		isUpdate := err == nil

		content, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", name, err)
			summary.Failed++
			continue
		}

		title, question := fallbackTitle, ""
		if seq-1 >= 0 && seq-1 < len(cards) {
			title = cards[seq-1].Title
			question = cards[seq-1].Question
		}

		if err := s.ingestPassage(ctx, seq, title, question, path, string(content), modTime); err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", name, err)
			summary.Failed++
			continue
		}

		if isUpdate {
			fmt.Fprintf(w, "updated %s\n", name)
			summary.Updated++
		} else {
			fmt.Fprintf(w, "indexed %s\n", name)
			summary.Indexed++
		}
	}

	fmt.Fprintf(w, "\nindexed: %d, updated: %d, skipped: %d, failed: %d\n",
		summary.Indexed, summary.Updated, summary.Skipped, summary.Failed)

	return summary, nil
}

// ingestPassage replaces any stored passage for seq and records the file
// modification time, in one transaction.
func (s *Store) ingestPassage(ctx context.Context, seq int, title, question, path, content, modTime string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM passages WHERE seq = ?`, seq); err != nil {
		return fmt.Errorf("deleting stale passage: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO passages (seq, title, question, path, content) VALUES (?, ?, ?, ?, ?)`,
		seq, title, question, path, content,
	); err != nil {
		return fmt.Errorf("inserting passage: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO indexing_status (path, file_mod_time) VALUES (?, ?)
		 ON CONFLICT(path) DO UPDATE SET file_mod_time = excluded.file_mod_time`,
		path, modTime,
	); err != nil {
		return fmt.Errorf("recording indexing status: %w", err)
	}

	return tx.Commit()
}

// parsePassageName splits an extracted passage filename of the form
// 001_title.txt into its sequence number and title part.
func parsePassageName(name string) (seq int, title string, ok bool) {
	base := strings.TrimSuffix(name, ".txt")
	num, rest, found := strings.Cut(base, "_")
	if !found {
		return 0, "", false
	}
	seq, err := strconv.Atoi(num)
	if err != nil || seq <= 0 {
		return 0, "", false
	}
	return seq, rest, true
}
