// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog indexes extracted paper metadata in a local SQLite
// database so papers from earlier reviews can be searched and exported.
// Implements: ingest per topic, keyword and free-text search, YAML/JSON export.
package catalog

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/litreview/pkg/types"
)

const (
	indexDir = "index"
	dbFile   = "catalog.db"
)

// Store manages the catalog SQLite database.
type Store struct {
	db         *sql.DB
	dir        string
	maxResults int
}

// NewStore opens or creates the catalog database at dir/index/catalog.db
// and creates the schema if it does not exist.
func NewStore(cfg types.CatalogConfig) (*Store, error) {
	dbDir := filepath.Join(cfg.Dir, indexDir)
	if err := os.MkdirAll(dbDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	dbPath := filepath.Join(dbDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{
		db:         db,
		dir:        cfg.Dir,
		maxResults: maxResults,
	}

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
		`CREATE TABLE IF NOT EXISTS papers (
			id TEXT PRIMARY KEY,
			topic TEXT NOT NULL,
			title TEXT NOT NULL,
			authors TEXT,
			publication_date TEXT,
			source_link TEXT,
			indexed_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS paper_keywords (
			paper_id TEXT NOT NULL REFERENCES papers(id) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			keyword TEXT NOT NULL,
			PRIMARY KEY (paper_id, position)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_papers_topic ON papers(topic)`,
		`CREATE INDEX IF NOT EXISTS idx_keywords_keyword ON paper_keywords(keyword COLLATE NOCASE)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// IngestSummary holds counts from one ingest run.
type IngestSummary struct {
	Indexed int
	Updated int
}

// Total returns the number of records processed.
func (s IngestSummary) Total() int {
	return s.Indexed + s.Updated
}

// PaperID derives the stable catalog identifier for a record: the first 12
// hex characters of SHA-256(topic + title + source link).
func PaperID(topic string, rec types.PaperMetadata) string {
	h := sha256.New()
	h.Write([]byte(topic))
	h.Write([]byte(rec.Title))
	h.Write([]byte(rec.SourceLink))
	return fmt.Sprintf("%x", h.Sum(nil))[:12]
}

// Ingest stores records under topic in a single transaction. Records
// already in the catalog are updated and their keywords replaced. One
// status line per record is written to w.
func (s *Store) Ingest(ctx context.Context, topic string, records []types.PaperMetadata, w io.Writer) (IngestSummary, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return IngestSummary{}, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC().Format(time.RFC3339)
	var summary IngestSummary

	for _, rec := range records {
		select {
		case <-ctx.Done():
			return IngestSummary{}, ctx.Err()
		default:
		}

		id := PaperID(topic, rec)

		var exists int
		if err := tx.QueryRowContext(ctx, `SELECT count(*) FROM papers WHERE id = ?`, id).Scan(&exists); err != nil {
			return IngestSummary{}, fmt.Errorf("checking paper %s: %w", id, err)
		}

		_, err := tx.ExecContext(ctx,
			`INSERT INTO papers (id, topic, title, authors, publication_date, source_link, indexed_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?)
			 ON CONFLICT(id) DO UPDATE SET
				topic=excluded.topic, title=excluded.title, authors=excluded.authors,
				publication_date=excluded.publication_date, source_link=excluded.source_link,
				indexed_at=excluded.indexed_at`,
			id, topic, rec.Title, rec.Authors, rec.PublicationDate, rec.SourceLink, now,
		)
		if err != nil {
			return IngestSummary{}, fmt.Errorf("upserting paper %s: %w", id, err)
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM paper_keywords WHERE paper_id = ?`, id); err != nil {
			return IngestSummary{}, fmt.Errorf("deleting old keywords: %w", err)
		}
		for i, kw := range rec.Keywords {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO paper_keywords (paper_id, position, keyword) VALUES (?, ?, ?)`,
				id, i, kw,
			); err != nil {
				return IngestSummary{}, fmt.Errorf("inserting keyword %q: %w", kw, err)
			}
		}

		if exists > 0 {
			fmt.Fprintf(w, "updated %s (%s)\n", id, rec.Title)
			summary.Updated++
		} else {
			fmt.Fprintf(w, "indexed %s (%s)\n", id, rec.Title)
			summary.Indexed++
		}
	}

	if err := tx.Commit(); err != nil {
		return IngestSummary{}, fmt.Errorf("committing ingest: %w", err)
	}

	fmt.Fprintf(w, "\nindexed: %d, updated: %d\n", summary.Indexed, summary.Updated)
	return summary, nil
}
