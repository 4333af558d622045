// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"fmt"
)

// QueryResult is one passage matched by a catalog query.
type QueryResult struct {
	Seq      int    `json:"seq"`
	Title    string `json:"title"`
	Question string `json:"question,omitempty"`
	Path     string `json:"path"`
	Snippet  string `json:"snippet"`
}

// Query runs an FTS5 full-text search over passage titles and contents,
// ranked by relevance. maxResults of zero uses the store default.
func (s *Store) Query(ctx context.Context, query string, maxResults int) ([]QueryResult, error) {
	if query == "" {
		return nil, fmt.Errorf("query text required")
	}
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT p.seq, p.title, p.question, p.path,
			snippet(passages_fts, 1, '[', ']', '...', 12)
		FROM passages_fts
		JOIN passages p ON p.rowid = passages_fts.rowid
		WHERE passages_fts MATCH ?
		ORDER BY passages_fts.rank
		LIMIT ?`,
		query, maxResults,
	)
	if err != nil {
		return nil, fmt.Errorf("querying catalog: %w", err)
	}
	defer rows.Close()

	var results []QueryResult
	for rows.Next() {
		var r QueryResult
		if err := rows.Scan(&r.Seq, &r.Title, &r.Question, &r.Path, &r.Snippet); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating results: %w", err)
	}

	return results, nil
}
