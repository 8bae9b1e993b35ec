package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"icisdportal/internal/domain"
)

type documentStore struct {
	DB *sql.DB
}

// NewDocumentStore returns a DocumentStore backed by the documents table.
// Each namespace key holds one JSON document; Save rewrites the whole
// document, matching the store's one-key-per-collection discipline.
func NewDocumentStore(db *sql.DB) domain.DocumentStore {
	return &documentStore{DB: db}
}

// EnsureSchema creates the documents table if it does not exist.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS documents (
			key        TEXT PRIMARY KEY,
			doc        JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`
	if _, err := db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("create documents table: %w", err)
	}
	return nil
}

func (s *documentStore) Load(ctx context.Context, key string) ([]byte, error) {
	query := `
		SELECT doc
		FROM documents
		WHERE key = $1
	`
	var doc []byte
	err := s.DB.QueryRowContext(ctx, query, key).Scan(&doc)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrDocumentNotFound
		}
		return nil, err
	}
	return doc, nil
}

func (s *documentStore) Save(ctx context.Context, key string, doc []byte) error {
	query := `
		INSERT INTO documents (key, doc, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE
		SET doc = EXCLUDED.doc, updated_at = NOW()
	`
	_, err := s.DB.ExecContext(ctx, query, key, doc)
	return err
}

func (s *documentStore) Delete(ctx context.Context, key string) error {
	query := `DELETE FROM documents WHERE key = $1`
	_, err := s.DB.ExecContext(ctx, query, key)
	return err
}
