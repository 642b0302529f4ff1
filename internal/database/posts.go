package database

import "database/sql"

// InsertPost inserts a post. Posts with a URL are deduplicated on it:
// re-inserting an existing URL updates the stored content and returns the
// existing ID.
func (db *DB) InsertPost(url *string, title, content string, source, keyword *string) (int64, error) {
	if url != nil {
		var existing int64
		err := db.conn.QueryRow("SELECT id FROM posts WHERE url = ?", *url).Scan(&existing)
		if err == nil {
			_, err = db.conn.Exec(
				"UPDATE posts SET title = ?, content = ?, keyword = ? WHERE id = ?",
				title, content, keyword, existing,
			)
			return existing, err
		}
		if err != sql.ErrNoRows {
			return 0, err
		}
	}

	result, err := db.conn.Exec(
		`INSERT INTO posts (url, title, source, content, keyword)
		VALUES (?, ?, ?, ?, ?)`,
		url, title, source, content, keyword,
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// GetPost returns a post by ID, or nil if not found.
func (db *DB) GetPost(id int64) (*Post, error) {
	row := db.conn.QueryRow(
		`SELECT id, url, title, source, content, keyword, collected_at
		FROM posts WHERE id = ?`, id,
	)
	var p Post
	err := row.Scan(&p.ID, &p.URL, &p.Title, &p.Source, &p.Content, &p.Keyword, &p.CollectedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetPostByURL returns a post by URL, or nil if not found.
func (db *DB) GetPostByURL(url string) (*Post, error) {
	row := db.conn.QueryRow(
		`SELECT id, url, title, source, content, keyword, collected_at
		FROM posts WHERE url = ?`, url,
	)
	var p Post
	err := row.Scan(&p.ID, &p.URL, &p.Title, &p.Source, &p.Content, &p.Keyword, &p.CollectedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}
