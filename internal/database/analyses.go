package database

import "database/sql"

// InsertAnalysis stores one scoring run. details is the factor breakdown
// serialized as JSON.
func (db *DB) InsertAnalysis(postID int64, score int, grade string, keyword *string, details string) (int64, error) {
	result, err := db.conn.Exec(
		`INSERT INTO analyses (post_id, score, grade, keyword, details)
		VALUES (?, ?, ?, ?, ?)`,
		postID, score, grade, keyword, details,
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// GetAnalysis returns one analysis joined with its post, or nil if not found.
func (db *DB) GetAnalysis(id int64) (*AnalysisRow, error) {
	row := db.conn.QueryRow(
		`SELECT a.id, a.post_id, a.score, a.grade, a.keyword, a.details, a.analyzed_at,
		p.title, p.url
		FROM analyses a JOIN posts p ON a.post_id = p.id
		WHERE a.id = ?`, id,
	)
	var r AnalysisRow
	err := row.Scan(&r.ID, &r.PostID, &r.Score, &r.Grade, &r.Keyword, &r.Details,
		&r.AnalyzedAt, &r.Title, &r.URL)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// GetRecentAnalyses returns the latest analyses joined with their posts,
// newest first.
func (db *DB) GetRecentAnalyses(limit int) ([]AnalysisRow, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := db.conn.Query(
		`SELECT a.id, a.post_id, a.score, a.grade, a.keyword, a.details, a.analyzed_at,
		p.title, p.url
		FROM analyses a JOIN posts p ON a.post_id = p.id
		ORDER BY a.id DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanAnalysisRows(rows)
}

// GetAnalysesForPost returns every analysis of one post, newest first.
// Useful for tracking a post's score across edits.
func (db *DB) GetAnalysesForPost(postID int64) ([]AnalysisRow, error) {
	rows, err := db.conn.Query(
		`SELECT a.id, a.post_id, a.score, a.grade, a.keyword, a.details, a.analyzed_at,
		p.title, p.url
		FROM analyses a JOIN posts p ON a.post_id = p.id
		WHERE a.post_id = ? ORDER BY a.id DESC`, postID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanAnalysisRows(rows)
}

func scanAnalysisRows(rows *sql.Rows) ([]AnalysisRow, error) {
	var out []AnalysisRow
	for rows.Next() {
		var r AnalysisRow
		if err := rows.Scan(&r.ID, &r.PostID, &r.Score, &r.Grade, &r.Keyword,
			&r.Details, &r.AnalyzedAt, &r.Title, &r.URL); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// InsertRewrite stores one LLM rewrite of an analyzed post.
func (db *DB) InsertRewrite(analysisID int64, draft string, model *string) (int64, error) {
	result, err := db.conn.Exec(
		"INSERT INTO rewrites (analysis_id, draft, model) VALUES (?, ?, ?)",
		analysisID, draft, model,
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// GetRewritesForAnalysis returns stored rewrites for an analysis, newest first.
func (db *DB) GetRewritesForAnalysis(analysisID int64) ([]Rewrite, error) {
	rows, err := db.conn.Query(
		`SELECT id, analysis_id, draft, model, created_at
		FROM rewrites WHERE analysis_id = ? ORDER BY id DESC`, analysisID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Rewrite
	for rows.Next() {
		var r Rewrite
		if err := rows.Scan(&r.ID, &r.AnalysisID, &r.Draft, &r.Model, &r.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// GetStats returns aggregate database statistics.
func (db *DB) GetStats() (*Stats, error) {
	s := &Stats{}

	queries := []struct {
		sql  string
		dest *int
	}{
		{"SELECT COUNT(*) FROM posts", &s.TotalPosts},
		{"SELECT COUNT(*) FROM analyses", &s.TotalAnalyses},
		{"SELECT COALESCE(ROUND(AVG(score)), 0) FROM analyses", &s.AverageScore},
		{"SELECT COALESCE(MAX(score), 0) FROM analyses", &s.BestScore},
		{"SELECT COUNT(*) FROM rewrites", &s.Rewrites},
	}

	for _, q := range queries {
		if err := db.conn.QueryRow(q.sql).Scan(q.dest); err != nil {
			return nil, err
		}
	}

	return s, nil
}
