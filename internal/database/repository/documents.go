package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// Document is a cached markup document as last fetched from url.
type Document struct {
	URL       string
	Revision  string
	Body      []byte
	FetchedAt time.Time
}

// DocumentRepo handles cached documents.
type DocumentRepo struct {
	db *sql.DB
}

func NewDocumentRepo(db *sql.DB) *DocumentRepo { return &DocumentRepo{db: db} }

func (r *DocumentRepo) Put(ctx context.Context, d Document) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO documents(url, revision, body, fetched_at) VALUES (?, ?, ?, ?)
	ON CONFLICT(url) DO UPDATE SET revision=excluded.revision, body=excluded.body, fetched_at=excluded.fetched_at;
	`, d.URL, d.Revision, d.Body, d.FetchedAt)
	return err
}

// Get returns nil, nil when url has not been cached.
func (r *DocumentRepo) Get(ctx context.Context, url string) (*Document, error) {
	row := r.db.QueryRowContext(ctx, `SELECT url, revision, body, fetched_at FROM documents WHERE url = ?`, url)
	var d Document
	if err := row.Scan(&d.URL, &d.Revision, &d.Body, &d.FetchedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &d, nil
}

func (r *DocumentRepo) List(ctx context.Context) ([]Document, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT url, revision, body, fetched_at FROM documents ORDER BY url`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Document
	for rows.Next() {
		var d Document
		if err := rows.Scan(&d.URL, &d.Revision, &d.Body, &d.FetchedAt); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
