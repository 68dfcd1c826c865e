// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/pdiddy/litreview/pkg/types"
)

// QueryOptions holds parameters for catalog searches.
type QueryOptions struct {
	// Query is matched as a substring of title, authors, or any keyword.
	Query string

	// Keyword filters to papers carrying this keyword, ignoring case.
	Keyword string

	// Topic filters to papers indexed under this topic.
	Topic string

	// MaxResults limits result count. Zero uses the store default.
	MaxResults int
}

// IsEmpty reports whether the query has no search terms or filters.
func (q QueryOptions) IsEmpty() bool {
	return q.Query == "" && q.Keyword == "" && q.Topic == ""
}

// Result is a catalog entry: the stored record plus its catalog identity.
type Result struct {
	types.PaperMetadata `yaml:",inline"`

	// ID is the catalog identifier from PaperID.
	ID string `json:"id" yaml:"id"`

	// Topic is the review topic the paper was indexed under.
	Topic string `json:"topic" yaml:"topic"`

	// IndexedAt is when the paper was last ingested (RFC 3339).
	IndexedAt string `json:"indexed_at" yaml:"indexed_at"`
}

// Search returns papers matching opts, ordered by topic then title.
// Empty options match every paper.
func (s *Store) Search(ctx context.Context, opts QueryOptions) ([]Result, error) {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	var (
		qb   strings.Builder
		args []any
	)

	qb.WriteString(
		`SELECT p.id, p.topic, p.title, p.authors, p.publication_date, p.source_link, p.indexed_at
		FROM papers p
		WHERE 1=1`)

	if opts.Query != "" {
		like := "%" + escapeLike(opts.Query) + "%"
		qb.WriteString(` AND (p.title LIKE ? ESCAPE '\' OR p.authors LIKE ? ESCAPE '\'
			OR EXISTS (SELECT 1 FROM paper_keywords k WHERE k.paper_id = p.id AND k.keyword LIKE ? ESCAPE '\'))`)
		args = append(args, like, like, like)
	}
	if opts.Keyword != "" {
		qb.WriteString(` AND EXISTS (SELECT 1 FROM paper_keywords k
			WHERE k.paper_id = p.id AND k.keyword = ? COLLATE NOCASE)`)
		args = append(args, strings.TrimSpace(opts.Keyword))
	}
	if opts.Topic != "" {
		qb.WriteString(` AND p.topic = ?`)
		args = append(args, opts.Topic)
	}

	qb.WriteString(` ORDER BY p.topic, p.title LIMIT ?`)
	args = append(args, maxResults)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying catalog: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var (
			r                   Result
			authors, date, link sql.NullString
			indexedAt           sql.NullString
		)
		if err := rows.Scan(&r.ID, &r.Topic, &r.Title, &authors, &date, &link, &indexedAt); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		r.Authors = authors.String
		r.PublicationDate = date.String
		r.SourceLink = link.String
		r.IndexedAt = indexedAt.String
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}
	rows.Close()

	for i := range results {
		kws, err := s.keywords(ctx, results[i].ID)
		if err != nil {
			return nil, err
		}
		results[i].Keywords = kws
	}
	return results, nil
}

// keywords returns a paper's keywords in their original order.
func (s *Store) keywords(ctx context.Context, paperID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT keyword FROM paper_keywords WHERE paper_id = ? ORDER BY position`, paperID)
	if err != nil {
		return nil, fmt.Errorf("querying keywords for %s: %w", paperID, err)
	}
	defer rows.Close()

	kws := []string{}
	for rows.Next() {
		var kw string
		if err := rows.Scan(&kw); err != nil {
			return nil, fmt.Errorf("scanning keyword: %w", err)
		}
		kws = append(kws, kw)
	}
	return kws, rows.Err()
}

// escapeLike escapes LIKE wildcards so the query is matched literally.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
